package keeper

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/sluice/pkg/metrics"
)

// Example_metricsBasic demonstrates metrics collection for a keeper.
func Example_metricsBasic() {
	// Create a separate registry to avoid conflicts
	customRegistry := prometheus.NewRegistry()
	metricsConfig := metrics.Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	// Capacity 3, leaking 1 unit per second
	mk, err := NewWithConfigAndMetrics(Config{
		Capacity: 3,
		LeakRate: 1.0,
	}, "api_requests", metricsConfig)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Make some requests at a fixed timestamp
	for i := 0; i < 5; i++ {
		if mk.AdmitAt("client", 0.0) {
			fmt.Printf("Request %d: Allowed\n", i+1)
		} else {
			fmt.Printf("Request %d: Denied\n", i+1)
		}
	}

	fmt.Printf("Tracked identities: %d\n", mk.Size())

	// Output:
	// Request 1: Allowed
	// Request 2: Allowed
	// Request 3: Allowed
	// Request 4: Denied
	// Request 5: Denied
	// Tracked identities: 1
}
