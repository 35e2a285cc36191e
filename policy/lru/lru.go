// Package lru implements a classic move-to-front Least-Recently-Used
// cache: O(1) Put/Get/Remove via a map plus an intrusive list where the
// front is most-recently-used and the back is the eviction candidate.
package lru

import (
	"sync"

	"github.com/polycache/polycache/internal/list"
	"github.com/polycache/polycache/policy"
)

// Cache is a thread-safe, fixed-capacity LRU cache.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	cap     int
	index   map[K]*list.Node[K, V]
	order   *list.List[K, V]
	metrics policy.Metrics
}

// New returns a Cache holding at most capacity entries. capacity == 0
// degrades to an inert cache (Put is a no-op, Get always misses);
// capacity < 0 is a programmer error and panics.
func New[K comparable, V any](capacity int, opts ...policy.Option) *Cache[K, V] {
	if capacity < 0 {
		panic("lru: capacity must be >= 0")
	}
	o := policy.Build(opts)
	return &Cache[K, V]{
		cap:     capacity,
		index:   make(map[K]*list.Node[K, V], capacity),
		order:   list.New[K, V](),
		metrics: o.Metrics,
	}
}

// Put inserts or updates k→v, promoting it to most-recently-used.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.cap == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.index[k]; ok {
		n.Val = v
		c.order.MoveToFront(n)
		return
	}
	if len(c.index) >= c.cap {
		c.evictLocked()
	}
	n := &list.Node[K, V]{Key: k, Val: v, Aux: 1}
	c.order.PushFront(n)
	c.index[k] = n
	c.metrics.Size(len(c.index))
}

// Get returns the value for k and promotes it to most-recently-used.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	if c.cap == 0 {
		var zero V
		return zero, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[k]
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, false
	}
	n.Aux++
	c.order.MoveToFront(n)
	c.metrics.Hit()
	return n.Val, true
}

// Remove deletes k if present and reports whether it was found.
func (c *Cache[K, V]) Remove(k K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[k]
	if !ok {
		return false
	}
	c.order.Remove(n)
	delete(c.index, k)
	c.metrics.Size(len(c.index))
	return true
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

func (c *Cache[K, V]) evictLocked() {
	victim := c.order.Back()
	if victim == nil {
		return
	}
	c.order.Remove(victim)
	delete(c.index, victim.Key)
	c.metrics.Evict(policy.EvictPolicy)
}

var _ policy.Policy[string, int] = (*Cache[string, int])(nil)
var _ policy.Remover[string] = (*Cache[string, int])(nil)
