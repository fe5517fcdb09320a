/*
Package keeper provides concurrent ownership of a limiter State.

The limiter package is a pure state machine: every admission check
consumes a State and returns a new one, and the caller is responsible
for publishing the result. When many goroutines share one logical
limiter, two concurrent checks for the same identity must not both read
the same stale state, or the limiter double-admits. Keeper encapsulates
that discipline.

Basic usage:

	k, err := keeper.New(10, 5.0) // capacity 10, leaks 5 units/sec
	if err != nil {
		log.Fatal(err)
	}

	if k.Admit("user1") {
		// Process request
	}

Keeper guards a single State reference with a mutex; every admission
check runs read-compute-publish under the lock. This is the simplest
correct embedding and is sufficient for most services.

Sharding:

Buckets for different identities are independent, so identities can be
partitioned across independent Keepers without changing semantics.
Sharded routes each identity to a fixed shard by hash, so admission
checks for unrelated identities never contend:

	s, err := keeper.NewSharded(10, 5.0, 32)
	if err != nil {
		log.Fatal(err)
	}
	s.Admit("user1")

Metrics:

MetricsKeeper decorates any Admitter with Prometheus counters for
requests, allows, and denials, plus gauges for the last observed bucket
level and the number of tracked identities:

	mk, err := keeper.NewWithMetrics(10, 5.0, "api_requests")

Clocks:

Keepers read time from a Clock (the system clock by default) and feed
the core floating-point Unix seconds. Tests inject a mock clock;
AdmitAt bypasses the clock entirely for callers that carry their own
timestamps.
*/
package keeper
