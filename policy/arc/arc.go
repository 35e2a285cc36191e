// Package arc implements an Adaptive Replacement Cache as two
// cooperating halves — an LRU half for recency and an LFU half for
// frequency — each with its own ghost list of recently evicted keys.
// A ghost hit on one half shifts one unit of capacity from the other
// half to it, letting the cache adapt to the workload's recency/
// frequency balance over time. Grounded line-for-line on the reference
// CacheARC/CacheARCLRUPart/CacheARCLFUPart, which deliberately does not
// enforce a strict T1/T2/B1/B2 partition: Put always writes through to
// the LRU half, and additionally to the LFU half when the key is
// already resident there.
package arc

import (
	"errors"
	"sync"

	"github.com/polycache/polycache/policy"
)

// ErrNotFound is returned by GetStrict on a miss.
var ErrNotFound = errors.New("arc: key not found")

// Cache is a thread-safe Adaptive Replacement Cache.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	lru     *lruHalf[K, V]
	lfu     *lfuHalf[K, V]
	metrics policy.Metrics
}

// New returns a Cache where each half starts at full capacity (matching
// the reference, which constructs both halves at the same capacity
// rather than splitting it); transformThreshold is the number of LRU-half
// accesses after which an entry is promoted into the LFU half as well.
// transformThreshold <= 0 defaults to 2.
func New[K comparable, V any](capacity, transformThreshold int, opts ...policy.Option) *Cache[K, V] {
	if capacity < 0 {
		panic("arc: capacity must be >= 0")
	}
	if transformThreshold <= 0 {
		transformThreshold = 2
	}
	o := policy.Build(opts)
	return &Cache[K, V]{
		lru:     newLRUHalf[K, V](capacity, transformThreshold),
		lfu:     newLFUHalf[K, V](capacity),
		metrics: o.Metrics,
	}
}

// Get returns the value for k, trying the LRU half first and falling
// back to the LFU half. A hit against the LRU half that crosses the
// promotion threshold also writes the entry into the LFU half.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkGhostLocked(k)

	if v, found, promote := c.lru.get(k); found {
		if promote {
			c.lfu.put(k, v)
		}
		c.metrics.Hit()
		return v, true
	}
	if v, ok := c.lfu.get(k); ok {
		c.metrics.Hit()
		return v, true
	}
	c.metrics.Miss()
	var zero V
	return zero, false
}

// GetStrict is Get's escalated-failure form: it returns ErrNotFound
// instead of a false ok on a miss.
func (c *Cache[K, V]) GetStrict(k K) (V, error) {
	v, ok := c.Get(k)
	if !ok {
		return v, ErrNotFound
	}
	return v, nil
}

// Put inserts or updates k→v. It always writes through to the LRU half;
// if k is already resident in the LFU half it is written there too,
// deliberately not maintaining a strict partition between the halves.
func (c *Cache[K, V]) Put(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checkGhostLocked(k)

	inLFU := c.lfu.contains(k)
	c.lru.put(k, v)
	if inLFU {
		c.lfu.put(k, v)
	}
	c.metrics.Size(c.lru.len() + c.lfu.len())
}

// Len returns the number of entries resident across both halves (a key
// present in both is counted twice, matching the halves' independent
// bookkeeping).
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.len() + c.lfu.len()
}

// checkGhostLocked implements the coordinator table: a ghost hit on one
// half shrinks the other half by one slot (evicting from it if
// necessary) and grows the hit half by the same slot, so the combined
// capacity of the two halves never changes.
func (c *Cache[K, V]) checkGhostLocked(k K) {
	if c.lru.checkGhost(k) {
		if c.lfu.decreaseCapacity() {
			c.lru.increaseCapacity()
		}
		return
	}
	if c.lfu.checkGhost(k) {
		if c.lru.decreaseCapacity() {
			c.lfu.increaseCapacity()
		}
	}
}

var _ policy.Policy[string, int] = (*Cache[string, int])(nil)
