package keeper

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/sluice/pkg/admission/limiter"
	"github.com/vnykmshr/sluice/pkg/metrics"
)

const keeperType = "leaky_bucket"

// MetricsKeeper wraps an Admitter with Prometheus metrics collection.
type MetricsKeeper struct {
	admitter Admitter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new Keeper with metrics enabled.
func NewWithMetrics(capacity int, leakRate float64, name string) (*MetricsKeeper, error) {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{
		Capacity: capacity,
		LeakRate: leakRate,
		Clock:    SystemClock{},
	}, name, config)
}

// NewWithConfigAndMetrics creates a new Keeper with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) (*MetricsKeeper, error) {
	base, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}
	return Instrument(base, name, metricsConfig), nil
}

// Instrument wraps an existing Admitter (a Keeper or a Sharded) with
// metrics collection under the given name.
func Instrument(admitter Admitter, name string, metricsConfig metrics.Config) *MetricsKeeper {
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsKeeper{
		admitter: admitter,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
}

// Admit reports whether one unit of work for identity may proceed now.
func (mk *MetricsKeeper) Admit(identity string) bool {
	allowed := mk.admitter.Admit(identity)
	mk.record(identity, allowed)
	return allowed
}

// AdmitAt reports whether one unit of work for identity may proceed at
// the given timestamp, in seconds.
func (mk *MetricsKeeper) AdmitAt(identity string, timestamp float64) bool {
	allowed := mk.admitter.AdmitAt(identity, timestamp)
	mk.record(identity, allowed)
	return allowed
}

// Inspect returns the stored bucket for identity, if any.
func (mk *MetricsKeeper) Inspect(identity string) (limiter.Bucket, bool) {
	return mk.admitter.Inspect(identity)
}

// Capacity returns the maximum sustained bucket level.
func (mk *MetricsKeeper) Capacity() int {
	return mk.admitter.Capacity()
}

// LeakRate returns the units drained per second.
func (mk *MetricsKeeper) LeakRate() float64 {
	return mk.admitter.LeakRate()
}

// Size returns the number of identities with a stored bucket.
func (mk *MetricsKeeper) Size() int {
	return mk.admitter.Size()
}

// EnableMetrics enables metrics collection.
func (mk *MetricsKeeper) EnableMetrics(config metrics.Config) error {
	mk.enabled = config.Enabled

	if config.Registry != nil {
		mk.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mk *MetricsKeeper) DisableMetrics() {
	mk.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mk *MetricsKeeper) MetricsEnabled() bool {
	return mk.enabled
}

// record updates the counters and gauges for one admission decision.
func (mk *MetricsKeeper) record(identity string, allowed bool) {
	if !mk.enabled {
		return
	}

	mk.registry.AdmissionRequests.WithLabelValues(keeperType, mk.name).Inc()
	if allowed {
		mk.registry.AdmissionAllowed.WithLabelValues(keeperType, mk.name).Inc()
	} else {
		mk.registry.AdmissionDenied.WithLabelValues(keeperType, mk.name).Inc()
	}

	if b, ok := mk.admitter.Inspect(identity); ok {
		mk.registry.BucketLevel.WithLabelValues(keeperType, mk.name).Set(b.Level)
	}
	mk.registry.TrackedBuckets.WithLabelValues(keeperType, mk.name).Set(float64(mk.admitter.Size()))
}
