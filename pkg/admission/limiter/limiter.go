package limiter

import (
	"math"

	"github.com/vnykmshr/sluice/pkg/common/validation"
)

// Bucket is the stored record for a single identity: the fill level and
// the timestamp at which that level was last valid.
//
// Timestamps are caller-supplied clock readings, typically in seconds.
// The algorithm only requires that they are comparable and share a unit
// with the leak rate.
type Bucket struct {
	// Level is the amount of water currently in the bucket.
	Level float64

	// LastUpdate is the timestamp at which Level was recorded.
	LastUpdate float64
}

// State is an immutable snapshot of a limiter: the shared configuration
// plus one Bucket per identity seen so far.
//
// State has value semantics. No method mutates the receiver; Admit
// returns a new State and leaves the old one intact, so callers may
// keep, compare, or discard earlier snapshots freely. Create a State
// with New.
type State struct {
	capacity int
	leakRate float64
	buckets  map[string]Bucket
}

// Info combines a Bucket with the limiter's shared configuration,
// for debugging and reporting.
type Info struct {
	Level      float64
	LastUpdate float64
	Capacity   int
	LeakRate   float64
}

// New creates an empty limiter State. Capacity is the maximum level a
// bucket may hold; leakRate is the amount drained per unit of elapsed
// time. Both must be positive; otherwise the returned error unwraps to
// errors.ErrInvalidConfiguration.
func New(capacity int, leakRate float64) (State, error) {
	if err := validation.ValidatePositive("limiter", "capacity", capacity); err != nil {
		return State{}, err
	}
	if err := validation.ValidatePositiveFloat("limiter", "leakRate", leakRate); err != nil {
		return State{}, err
	}

	return State{
		capacity: capacity,
		leakRate: leakRate,
		buckets:  make(map[string]Bucket),
	}, nil
}

// Admit decides whether one unit of work for identity may proceed at
// the given timestamp. It returns the decision and a new State that
// reflects it; the receiver is unchanged.
//
// The bucket first drains at the leak rate for the time elapsed since
// its last update, then the unit is admitted iff the drained level plus
// one fits within capacity. A denied unit is never added to the bucket,
// but the drainage and the updated timestamp are still committed.
//
// A timestamp earlier than the bucket's last update is evaluated as if
// it arrived at the last update (zero elapsed time, never negative
// drain), which keeps stored timestamps non-decreasing per identity.
func (s State) Admit(identity string, timestamp float64) (bool, State) {
	b, ok := s.buckets[identity]
	if !ok {
		// First request for this identity: conceptually empty bucket.
		b = Bucket{Level: 0, LastUpdate: timestamp}
	}

	effective := math.Max(timestamp, b.LastUpdate)
	elapsed := effective - b.LastUpdate
	level := math.Max(0, b.Level-elapsed*s.leakRate)

	allowed := level+1 <= float64(s.capacity)
	if allowed {
		level++
	}

	return allowed, s.withBucket(identity, Bucket{Level: level, LastUpdate: effective})
}

// Inspect returns the stored Bucket for identity as of its last update,
// without projecting any further drainage. The second return value is
// false if the identity has never been through Admit.
func (s State) Inspect(identity string) (Bucket, bool) {
	b, ok := s.buckets[identity]
	return b, ok
}

// Info returns the stored Bucket for identity together with the
// limiter's shared configuration.
func (s State) Info(identity string) (Info, bool) {
	b, ok := s.buckets[identity]
	if !ok {
		return Info{}, false
	}
	return Info{
		Level:      b.Level,
		LastUpdate: b.LastUpdate,
		Capacity:   s.capacity,
		LeakRate:   s.leakRate,
	}, true
}

// Capacity returns the maximum sustained bucket level.
func (s State) Capacity() int {
	return s.capacity
}

// LeakRate returns the amount drained per unit of elapsed time.
func (s State) LeakRate() float64 {
	return s.leakRate
}

// Size returns the number of identities with a stored bucket.
func (s State) Size() int {
	return len(s.buckets)
}

// withBucket returns a copy of s with one bucket replaced or inserted.
func (s State) withBucket(identity string, b Bucket) State {
	buckets := make(map[string]Bucket, len(s.buckets)+1)
	for k, v := range s.buckets {
		buckets[k] = v
	}
	buckets[identity] = b

	return State{
		capacity: s.capacity,
		leakRate: s.leakRate,
		buckets:  buckets,
	}
}
