package keeper

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/sluice/internal/testutil"
	"github.com/vnykmshr/sluice/pkg/metrics"
)

func newTestMetricsConfig() metrics.Config {
	return metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	}
}

func TestMetricsKeeper_DecisionsPassThrough(t *testing.T) {
	mk, err := NewWithConfigAndMetrics(Config{
		Capacity: 2,
		LeakRate: 1.0,
	}, "test", newTestMetricsConfig())
	testutil.AssertNoError(t, err)

	// Metrics must not change the admission decisions
	testutil.AssertEqual(t, mk.AdmitAt("user1", 0.0), true)
	testutil.AssertEqual(t, mk.AdmitAt("user1", 0.0), true)
	testutil.AssertEqual(t, mk.AdmitAt("user1", 0.0), false)

	b, ok := mk.Inspect("user1")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, b.Level, 2.0)
	testutil.AssertEqual(t, mk.Size(), 1)
	testutil.AssertEqual(t, mk.Capacity(), 2)
	testutil.AssertEqual(t, mk.LeakRate(), 1.0)
}

func TestMetricsKeeper_InvalidConfig(t *testing.T) {
	_, err := NewWithConfigAndMetrics(Config{
		Capacity: 0,
		LeakRate: 1.0,
	}, "test", newTestMetricsConfig())
	testutil.AssertError(t, err)
}

func TestMetricsKeeper_EnableDisable(t *testing.T) {
	mk, err := NewWithConfigAndMetrics(Config{
		Capacity: 5,
		LeakRate: 1.0,
	}, "test", newTestMetricsConfig())
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, mk.MetricsEnabled(), true)

	mk.DisableMetrics()
	testutil.AssertEqual(t, mk.MetricsEnabled(), false)

	// Decisions still work with metrics disabled
	testutil.AssertEqual(t, mk.AdmitAt("user1", 0.0), true)

	err = mk.EnableMetrics(newTestMetricsConfig())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, mk.MetricsEnabled(), true)
}

func TestInstrument_WrapsSharded(t *testing.T) {
	s, err := NewSharded(3, 1.0, 4)
	testutil.AssertNoError(t, err)

	mk := Instrument(s, "sharded_test", newTestMetricsConfig())

	testutil.AssertEqual(t, mk.AdmitAt("user1", 0.0), true)
	testutil.AssertEqual(t, mk.AdmitAt("user2", 0.0), true)
	testutil.AssertEqual(t, mk.Size(), 2)
}
