// Package sharded partitions a keyspace across N independent policy
// instances, each guarded by its own lock, so that concurrent callers
// touching different keys don't contend on a single mutex. It is
// generic over any of policy/lru, policy/lruk, policy/lfu, policy/lfuavg
// or policy/arc via a factory closure, grounded on the donor's
// cache.New (shard-count defaulting, power-of-two rounding) and the
// reference CacheLRUHash/CacheLFUHash (ceil-division per-shard capacity).
package sharded

import (
	"github.com/polycache/polycache/internal/util"
	"github.com/polycache/polycache/policy"
)

// Cache partitions a Policy[K,V] across a fixed number of shards.
type Cache[K comparable, V any] struct {
	shards []policy.Policy[K, V]
	stats  []shardStats
	n      int
}

type shardStats struct {
	_      util.CacheLinePad
	hits   util.PaddedAtomicUint64
	misses util.PaddedAtomicUint64
}

// New builds a Cache with n shards (0 selects util.ReasonableShardCount),
// each constructed by factory with a ceil-divided slice of capacity so
// that the sum of shard capacities is never less than the requested
// total. capacity < 0 is a programmer error and panics.
func New[K comparable, V any](capacity, n int, factory func(shardCapacity int) policy.Policy[K, V]) *Cache[K, V] {
	if capacity < 0 {
		panic("sharded: capacity must be >= 0")
	}
	if n <= 0 {
		n = util.ReasonableShardCount()
	}
	perShard := (capacity + n - 1) / n

	shards := make([]policy.Policy[K, V], n)
	for i := range shards {
		shards[i] = factory(perShard)
	}
	return &Cache[K, V]{
		shards: shards,
		stats:  make([]shardStats, n),
		n:      n,
	}
}

// Put routes k→v to the shard owning k.
func (c *Cache[K, V]) Put(k K, v V) {
	c.shards[c.indexFor(k)].Put(k, v)
}

// Get routes k to the shard owning it.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	idx := c.indexFor(k)
	v, ok := c.shards[idx].Get(k)
	if ok {
		c.stats[idx].hits.Add(1)
	} else {
		c.stats[idx].misses.Add(1)
	}
	return v, ok
}

// Remove deletes k from its shard if the underlying policy supports
// deletion, reporting whether it was found.
func (c *Cache[K, V]) Remove(k K) bool {
	r, ok := c.shards[c.indexFor(k)].(policy.Remover[K])
	if !ok {
		return false
	}
	return r.Remove(k)
}

// Purge clears every shard whose underlying policy supports it.
func (c *Cache[K, V]) Purge() {
	for _, s := range c.shards {
		if p, ok := s.(policy.Purger); ok {
			p.Purge()
		}
	}
}

// Len returns the total number of resident entries across all shards,
// for policies that expose a Len() method.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		if l, ok := s.(interface{ Len() int }); ok {
			total += l.Len()
		}
	}
	return total
}

// Stats returns the aggregate hit/miss counts observed across all
// shards. Per-shard counters are padded to a cache line each so that
// concurrent Get calls landing on different shards never false-share.
func (c *Cache[K, V]) Stats() (hits, misses uint64) {
	for i := range c.stats {
		hits += c.stats[i].hits.Load()
		misses += c.stats[i].misses.Load()
	}
	return hits, misses
}

func (c *Cache[K, V]) indexFor(k K) int {
	return util.ShardIndex(util.HashOf(k), c.n)
}
