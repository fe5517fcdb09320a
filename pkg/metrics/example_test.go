package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.AdmissionRequests.WithLabelValues("keeper", "api").Add(10)
	registry.AdmissionAllowed.WithLabelValues("keeper", "api").Add(8)
	registry.AdmissionDenied.WithLabelValues("keeper", "api").Add(2)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	registry := NewRegistry(config.Registry)

	registry.AdmissionRequests.WithLabelValues("sharded", "uploads").Add(12)
	registry.BucketLevel.WithLabelValues("sharded", "uploads").Set(3.5)

	fmt.Println("Custom registry in use")

	// Output:
	// Custom registry in use
}
