/*
Package limiter implements leaky bucket admission control as a pure,
immutable state machine.

Each identity owns a virtual bucket that fills by one unit per admitted
request and drains continuously at a fixed leak rate. A request is
admitted only if the drained bucket still has headroom for one more
unit. Capacity bounds the burst an identity can produce; the leak rate
bounds its sustained throughput.

Basic usage:

	state, err := limiter.New(5, 1.0) // capacity 5, leaks 1 unit/sec
	if err != nil {
		log.Fatal(err)
	}

	allowed, state := state.Admit("user1", 0.0)
	if allowed {
		// Process request
	}

Value Semantics:

Every Admit call returns a new State; the input State is never
modified. The caller threads the returned State into the next call:

	allowed, state = state.Admit("user1", 1.0)
	allowed, state = state.Admit("user1", 1.2)

Because old snapshots stay valid, the package composes with any
concurrency discipline. For the common case of one limiter shared by
many goroutines, see the keeper package, which serializes the
read-compute-publish cycle behind a mutex.

Timestamps:

The package does not read a clock. Callers supply timestamps in
whatever unit matches the leak rate (typically seconds); monotonic and
wall clocks both work. A timestamp that runs backwards for an identity
is clamped to the bucket's last recorded time, so out-of-order requests
drain nothing rather than draining negatively.

Inspection:

Inspect returns the raw stored bucket without simulating further
drainage; the level it reports is the level as of the bucket's last
update. Info additionally reports the limiter's shared capacity and
leak rate for debugging.
*/
package limiter
