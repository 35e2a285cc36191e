// Package lfu implements a Least-Frequently-Used cache using
// per-frequency bucket lists, grounded on the reference CacheLFU's
// FreqList/freqListMap_ structure: each frequency level owns its own
// list, eviction pops the oldest entry from the minimum non-empty
// frequency's list, and Put on an already-resident key updates the
// value in place without bumping its frequency.
package lfu

import (
	"sync"

	"github.com/polycache/polycache/internal/list"
	"github.com/polycache/polycache/policy"
)

// Cache is a thread-safe, fixed-capacity LFU cache.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	cap     int
	index   map[K]*list.Node[K, V]
	buckets map[int]*list.List[K, V]
	minFreq int
	metrics policy.Metrics
}

// New returns a Cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...policy.Option) *Cache[K, V] {
	if capacity < 0 {
		panic("lfu: capacity must be >= 0")
	}
	o := policy.Build(opts)
	return &Cache[K, V]{
		cap:     capacity,
		index:   make(map[K]*list.Node[K, V], capacity),
		buckets: make(map[int]*list.List[K, V]),
		metrics: o.Metrics,
	}
}

// Put inserts k→v. Updating an existing key leaves its frequency
// untouched, matching the reference's behavior of not counting an
// overwrite as an access.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.cap == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.index[k]; ok {
		n.Val = v
		return
	}
	if len(c.index) >= c.cap {
		c.evictLocked()
	}
	n := &list.Node[K, V]{Key: k, Val: v, Aux: 1}
	c.bucketLocked(1).PushBack(n)
	c.index[k] = n
	c.minFreq = 1
	c.metrics.Size(len(c.index))
}

// Get returns the value for k and bumps its frequency by one.
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

	oldFreq := n.Aux
	old := c.buckets[oldFreq]
	old.Remove(n)
	emptied := old.Empty()
	if emptied {
		delete(c.buckets, oldFreq)
	}
	n.Aux++
	c.bucketLocked(n.Aux).PushBack(n)
	if emptied && oldFreq == c.minFreq {
		c.minFreq = n.Aux
	}
	c.metrics.Hit()
	return n.Val, true
}

// Purge clears all entries and resets frequency state.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[K]*list.Node[K, V], c.cap)
	c.buckets = make(map[int]*list.List[K, V])
	c.minFreq = 0
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

func (c *Cache[K, V]) bucketLocked(freq int) *list.List[K, V] {
	b, ok := c.buckets[freq]
	if !ok {
		b = list.New[K, V]()
		c.buckets[freq] = b
	}
	return b
}

func (c *Cache[K, V]) evictLocked() {
	b := c.buckets[c.minFreq]
	if b == nil {
		return
	}
	victim := b.PopFront()
	if victim == nil {
		return
	}
	if b.Empty() {
		delete(c.buckets, c.minFreq)
	}
	delete(c.index, victim.Key)
	c.metrics.Evict(policy.EvictPolicy)
	// The reference bumps minFreq by one here, which is only correct
	// when the next non-empty bucket happens to be minFreq+1. Recompute
	// from scratch instead, per the safer-port guidance.
	c.recomputeMinFreqLocked()
}

func (c *Cache[K, V]) recomputeMinFreqLocked() {
	if len(c.index) == 0 {
		c.minFreq = 0
		return
	}
	min := 0
	for f := range c.buckets {
		if min == 0 || f < min {
			min = f
		}
	}
	c.minFreq = min
}

var _ policy.Policy[string, int] = (*Cache[string, int])(nil)
var _ policy.Purger = (*Cache[string, int])(nil)
