// Package lfuavg implements LFU with average-frequency aging: on top of
// the same per-frequency bucket structure as lfu, it tracks the average
// frequency across resident entries and periodically "ages" every entry
// down once that average exceeds a configured ceiling, so a cache that
// ran hot a long time ago doesn't permanently out-rank fresher entries.
// Grounded on the reference CacheLFUAvg.
package lfuavg

import (
	"math"
	"sort"
	"sync"

	"github.com/polycache/polycache/internal/list"
	"github.com/polycache/polycache/policy"
)

// DefaultMaxAvgFreq matches the reference implementation's default
// ceiling, chosen large enough to make aging a rare, cold-path event
// under normal workloads rather than something every access risks
// triggering.
const DefaultMaxAvgFreq = 1_000_000

// Cache is a thread-safe, fixed-capacity LFU cache with average-frequency
// aging.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	cap        int
	maxAvgFreq int
	totalFreq  int
	index      map[K]*list.Node[K, V]
	buckets    map[int]*list.List[K, V]
	minFreq    int
	metrics    policy.Metrics
}

// New returns a Cache holding at most capacity entries, aging all
// entries down whenever the average frequency exceeds maxAvgFreq.
// maxAvgFreq <= 0 selects DefaultMaxAvgFreq.
func New[K comparable, V any](capacity, maxAvgFreq int, opts ...policy.Option) *Cache[K, V] {
	if capacity < 0 {
		panic("lfuavg: capacity must be >= 0")
	}
	if maxAvgFreq <= 0 {
		maxAvgFreq = DefaultMaxAvgFreq
	}
	o := policy.Build(opts)
	return &Cache[K, V]{
		cap:        capacity,
		maxAvgFreq: maxAvgFreq,
		minFreq:    math.MaxInt,
		index:      make(map[K]*list.Node[K, V], capacity),
		buckets:    make(map[int]*list.List[K, V]),
		metrics:    o.Metrics,
	}
}

// Put inserts k→v; updating an existing key bumps its frequency, since
// the reference's average-aging variant treats a re-Put as an access
// (unlike plain lfu's silent overwrite).
func (c *Cache[K, V]) Put(k K, v V) {
	if c.cap == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.index[k]; ok {
		n.Val = v
		c.bumpLocked(n)
		return
	}
	if len(c.index) >= c.cap {
		c.evictLocked()
	}
	n := &list.Node[K, V]{Key: k, Val: v, Aux: 1}
	c.bucketLocked(1).PushBack(n)
	c.index[k] = n
	if c.minFreq > 1 {
		c.minFreq = 1
	}
	c.addFreqLocked(1)
	c.metrics.Size(len(c.index))
}

// Get returns the value for k and bumps its frequency.
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
	c.bumpLocked(n)
	c.metrics.Hit()
	return n.Val, true
}

// Purge clears all entries and resets frequency/aging state.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = make(map[K]*list.Node[K, V], c.cap)
	c.buckets = make(map[int]*list.List[K, V])
	c.minFreq = math.MaxInt
	c.totalFreq = 0
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

func (c *Cache[K, V]) bumpLocked(n *list.Node[K, V]) {
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
	c.addFreqLocked(1)
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
	c.totalFreq -= victim.Aux
	if c.totalFreq < 0 {
		c.totalFreq = 0
	}
	c.metrics.Evict(policy.EvictPolicy)
	c.recomputeMinFreqLocked()
}

// addFreqLocked accounts delta into the running total and, if the
// resulting average frequency exceeds the configured ceiling, runs an
// aging pass that lowers every entry's frequency by half the ceiling
// (floored at 1) before it can grow without bound.
func (c *Cache[K, V]) addFreqLocked(delta int) {
	c.totalFreq += delta
	if len(c.index) == 0 {
		return
	}
	avg := c.totalFreq / len(c.index)
	if avg > c.maxAvgFreq {
		c.agePassLocked()
	}
}

func (c *Cache[K, V]) agePassLocked() {
	half := c.maxAvgFreq / 2
	if half < 1 {
		half = 1
	}

	freqs := make([]int, 0, len(c.buckets))
	for f := range c.buckets {
		freqs = append(freqs, f)
	}
	sort.Ints(freqs)

	newBuckets := make(map[int]*list.List[K, V], len(freqs))
	sum := 0
	for _, f := range freqs {
		b := c.buckets[f]
		for {
			n := b.PopFront()
			if n == nil {
				break
			}
			nf := n.Aux - half
			if nf < 1 {
				nf = 1
			}
			n.Aux = nf
			sum += nf
			nb, ok := newBuckets[nf]
			if !ok {
				nb = list.New[K, V]()
				newBuckets[nf] = nb
			}
			nb.PushBack(n)
		}
	}
	c.buckets = newBuckets
	c.totalFreq = sum
	c.recomputeMinFreqLocked()
}

func (c *Cache[K, V]) recomputeMinFreqLocked() {
	if len(c.index) == 0 {
		c.minFreq = math.MaxInt
		return
	}
	min := math.MaxInt
	for f := range c.buckets {
		if f < min {
			min = f
		}
	}
	c.minFreq = min
}

var _ policy.Policy[string, int] = (*Cache[string, int])(nil)
var _ policy.Purger = (*Cache[string, int])(nil)
