// Package lruk implements the LRU-K admission filter: a key must be
// observed K times before it is promoted into the main cache, guarding
// against one-off scans polluting it. History is tracked by a nested
// LRU of per-key observation counts, grounded directly on the reference
// CacheLRUK (history counted via a nested LRU; Get increments the
// history count even on a main-cache hit).
package lruk

import (
	"sync"

	"github.com/polycache/polycache/policy"
	"github.com/polycache/polycache/policy/lru"
)

// Cache is a thread-safe LRU-K cache: a main lru.Cache plus a bounded
// history of observation counts for keys not yet admitted.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	k       int
	main    *lru.Cache[K, V]
	hist    *lru.Cache[K, int]
	pending map[K]V
	metrics policy.Metrics
}

// New returns a Cache admitting a key to the mainCapacity-sized main
// cache only after it has been observed k times, tracking observations
// for up to histCapacity distinct not-yet-admitted keys. k < 1 is a
// programmer error and panics.
func New[K comparable, V any](mainCapacity, histCapacity, k int, opts ...policy.Option) *Cache[K, V] {
	if k < 1 {
		panic("lruk: k must be >= 1")
	}
	o := policy.Build(opts)
	return &Cache[K, V]{
		k:       k,
		main:    lru.New[K, V](mainCapacity),
		hist:    lru.New[K, int](histCapacity),
		pending: make(map[K]V),
		metrics: o.Metrics,
	}
}

// Put records an observation of k→v. If k is already in the main cache
// its value is updated directly; otherwise the observation count is
// bumped and k is admitted to the main cache once the count reaches K.
func (c *Cache[K, V]) Put(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.main.Get(k); ok {
		c.main.Put(k, v)
		return
	}
	count, _ := c.hist.Get(k)
	count++
	c.hist.Put(k, count)
	c.pending[k] = v
	if count >= c.k {
		c.admitLocked(k, v)
	}
}

// Get returns the value for k. Every call counts as an observation,
// even one that hits the main cache directly — this over-counting on
// an already-admitted key is preserved from the reference
// implementation. On a main-cache miss, if the bumped observation
// count reaches K and a pending value exists (recorded by an earlier
// Put), the key is admitted and the call reports a hit.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	count, _ := c.hist.Get(k)
	count++
	c.hist.Put(k, count)

	if v, ok := c.main.Get(k); ok {
		c.metrics.Hit()
		return v, true
	}
	if count >= c.k {
		if v, ok := c.pending[k]; ok {
			c.admitLocked(k, v)
			c.metrics.Hit()
			return v, true
		}
	}
	c.metrics.Miss()
	var zero V
	return zero, false
}

// Remove deletes k from the main cache or from pending history,
// reporting whether it was found in either.
func (c *Cache[K, V]) Remove(k K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removedMain := c.main.Remove(k)
	if _, ok := c.pending[k]; ok {
		delete(c.pending, k)
		c.hist.Remove(k)
		return true
	}
	return removedMain
}

// Len returns the number of entries resident in the main cache (history
// observations that haven't been admitted yet are not counted).
func (c *Cache[K, V]) Len() int {
	return c.main.Len()
}

func (c *Cache[K, V]) admitLocked(k K, v V) {
	c.hist.Remove(k)
	delete(c.pending, k)
	c.main.Put(k, v)
}

var _ policy.Policy[string, int] = (*Cache[string, int])(nil)
var _ policy.Remover[string] = (*Cache[string, int])(nil)
