// Package metrics provides Prometheus instrumentation for sluice components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for sluice components.
type Registry struct {
	// Admission Metrics
	AdmissionRequests *prometheus.CounterVec
	AdmissionAllowed  *prometheus.CounterVec
	AdmissionDenied   *prometheus.CounterVec
	BucketLevel       *prometheus.GaugeVec
	TrackedBuckets    *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by sluice components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		AdmissionRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sluice",
				Subsystem: "admission",
				Name:      "requests_total",
				Help:      "Total number of admission checks",
			},
			[]string{"keeper_type", "keeper_name"},
		),

		AdmissionAllowed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sluice",
				Subsystem: "admission",
				Name:      "allowed_total",
				Help:      "Total number of allowed requests",
			},
			[]string{"keeper_type", "keeper_name"},
		),

		AdmissionDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sluice",
				Subsystem: "admission",
				Name:      "denied_total",
				Help:      "Total number of denied requests",
			},
			[]string{"keeper_type", "keeper_name"},
		),

		BucketLevel: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "sluice",
				Subsystem: "admission",
				Name:      "bucket_level",
				Help:      "Fill level of the most recently checked bucket",
			},
			[]string{"keeper_type", "keeper_name"},
		),

		TrackedBuckets: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "sluice",
				Subsystem: "admission",
				Name:      "tracked_buckets",
				Help:      "Number of identities with a stored bucket",
			},
			[]string{"keeper_type", "keeper_name"},
		),
	}
}
