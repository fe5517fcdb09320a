/*
Package admission provides leaky bucket admission control primitives.

This package tree has two layers:

  - limiter: the pure core. An immutable State holds one bucket per
    identity under a shared capacity and leak rate; Admit is a pure
    function from (State, identity, timestamp) to (decision, State).
  - keeper: the concurrent embedding. A Keeper owns the authoritative
    State and serializes admission checks; Sharded partitions
    identities across independent Keepers; MetricsKeeper adds
    Prometheus instrumentation.

Choosing a layer:

Use the limiter package directly when the surrounding system already
owns the state-threading discipline, when timestamps come from outside
(replay, simulation, tests), or when old snapshots must remain
observable. Use the keeper package when many goroutines share one
in-process limiter and wall-clock time is the right clock:

	// Pure core: the caller threads state
	state, _ := limiter.New(5, 1.0)
	allowed, state := state.Admit("user1", 0.0)

	// Keeper: goroutine-safe, clock-driven
	k, _ := keeper.New(5, 1.0)
	allowed = k.Admit("user1")

Both layers enforce the same contract: one unit of capacity per
admitted request, continuous drainage at the leak rate, denied requests
drain but never add, and per-identity timestamps never regress.
*/
package admission
