package keeper

import (
	"sync"
	"time"

	"github.com/vnykmshr/sluice/pkg/admission/limiter"
)

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Admitter is the operation surface shared by Keeper, Sharded, and the
// metrics decorator. Admission checks cost one unit of bucket capacity
// and report the decision; Inspect exposes the raw stored bucket.
type Admitter interface {
	// Admit reports whether one unit of work for identity may proceed now.
	Admit(identity string) bool

	// AdmitAt reports whether one unit of work for identity may proceed
	// at the given timestamp, in seconds.
	AdmitAt(identity string, timestamp float64) bool

	// Inspect returns the stored bucket for identity, if any.
	Inspect(identity string) (limiter.Bucket, bool)

	// Capacity returns the maximum sustained bucket level.
	Capacity() int

	// LeakRate returns the units drained per second.
	LeakRate() float64

	// Size returns the number of identities with a stored bucket.
	Size() int
}

// Keeper owns an authoritative limiter State and serializes concurrent
// admission checks against it. The pure core leaves the
// read-compute-publish cycle to its caller; Keeper is that caller for
// the common case of one in-process limiter shared by many goroutines.
type Keeper struct {
	mu    sync.Mutex
	state limiter.State
	clock Clock
}

// Config holds configuration options for creating a Keeper.
type Config struct {
	// Capacity is the maximum sustained level of each identity's bucket.
	Capacity int

	// LeakRate is the number of units drained per second.
	LeakRate float64

	// Clock provides the current time. If nil, SystemClock is used.
	Clock Clock
}

// New creates a Keeper using the system clock. Capacity and leakRate
// must be positive; otherwise the error unwraps to
// errors.ErrInvalidConfiguration.
func New(capacity int, leakRate float64) (*Keeper, error) {
	return NewWithConfig(Config{
		Capacity: capacity,
		LeakRate: leakRate,
		Clock:    SystemClock{},
	})
}

// NewWithConfig creates a Keeper with the specified configuration.
func NewWithConfig(config Config) (*Keeper, error) {
	state, err := limiter.New(config.Capacity, config.LeakRate)
	if err != nil {
		return nil, err
	}
	if config.Clock == nil {
		config.Clock = SystemClock{}
	}

	return &Keeper{
		state: state,
		clock: config.Clock,
	}, nil
}

// Admit reports whether one unit of work for identity may proceed now.
func (k *Keeper) Admit(identity string) bool {
	return k.AdmitAt(identity, seconds(k.clock.Now()))
}

// AdmitAt reports whether one unit of work for identity may proceed at
// the given timestamp, in seconds. Holding the lock across the
// read-compute-publish cycle prevents two concurrent checks for the
// same identity from reading the same stale level.
func (k *Keeper) AdmitAt(identity string, timestamp float64) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	allowed, next := k.state.Admit(identity, timestamp)
	k.state = next
	return allowed
}

// Inspect returns the stored bucket for identity, if any.
func (k *Keeper) Inspect(identity string) (limiter.Bucket, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state.Inspect(identity)
}

// State returns the current immutable State snapshot. The snapshot
// stays valid after the Keeper moves on.
func (k *Keeper) State() limiter.State {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

// Capacity returns the maximum sustained bucket level.
func (k *Keeper) Capacity() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state.Capacity()
}

// LeakRate returns the units drained per second.
func (k *Keeper) LeakRate() float64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state.LeakRate()
}

// Size returns the number of identities with a stored bucket.
func (k *Keeper) Size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state.Size()
}

// seconds converts a time.Time to floating-point Unix seconds, the unit
// the core's leak rate is expressed in.
func seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
