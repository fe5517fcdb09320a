package keeper

import (
	"hash/fnv"

	"github.com/vnykmshr/sluice/pkg/admission/limiter"
	"github.com/vnykmshr/sluice/pkg/common/validation"
)

// DefaultShardCount is the shard count used by NewSharded when the
// caller passes 0.
const DefaultShardCount = 16

// Sharded splits identities across independent Keepers so that
// unrelated identities never contend on one lock. Buckets for different
// identities are independent, so routing each identity to a fixed shard
// by hash preserves single-Keeper semantics.
type Sharded struct {
	shards []*Keeper
}

// NewSharded creates a sharded keeper with the given shard count.
// A shard count of 0 selects DefaultShardCount; negative counts are
// rejected.
func NewSharded(capacity int, leakRate float64, shards int) (*Sharded, error) {
	return NewShardedWithConfig(Config{
		Capacity: capacity,
		LeakRate: leakRate,
	}, shards)
}

// NewShardedWithConfig creates a sharded keeper with the specified
// configuration. All shards share the configuration, including the
// clock.
func NewShardedWithConfig(config Config, shards int) (*Sharded, error) {
	if shards == 0 {
		shards = DefaultShardCount
	}
	if err := validation.ValidatePositive("keeper", "shards", shards); err != nil {
		return nil, err
	}

	s := &Sharded{shards: make([]*Keeper, shards)}
	for i := range s.shards {
		k, err := NewWithConfig(config)
		if err != nil {
			return nil, err
		}
		s.shards[i] = k
	}
	return s, nil
}

// Admit reports whether one unit of work for identity may proceed now.
func (s *Sharded) Admit(identity string) bool {
	return s.shard(identity).Admit(identity)
}

// AdmitAt reports whether one unit of work for identity may proceed at
// the given timestamp, in seconds.
func (s *Sharded) AdmitAt(identity string, timestamp float64) bool {
	return s.shard(identity).AdmitAt(identity, timestamp)
}

// Inspect returns the stored bucket for identity, if any.
func (s *Sharded) Inspect(identity string) (limiter.Bucket, bool) {
	return s.shard(identity).Inspect(identity)
}

// Capacity returns the maximum sustained bucket level.
func (s *Sharded) Capacity() int {
	return s.shards[0].Capacity()
}

// LeakRate returns the units drained per second.
func (s *Sharded) LeakRate() float64 {
	return s.shards[0].LeakRate()
}

// Size returns the number of identities with a stored bucket, summed
// across shards.
func (s *Sharded) Size() int {
	total := 0
	for _, k := range s.shards {
		total += k.Size()
	}
	return total
}

// ShardCount returns the number of shards.
func (s *Sharded) ShardCount() int {
	return len(s.shards)
}

// shard routes an identity to its fixed shard by FNV-1a hash.
func (s *Sharded) shard(identity string) *Keeper {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identity))
	return s.shards[h.Sum32()%uint32(len(s.shards))]
}
