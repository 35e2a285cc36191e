// Package polycache collects a family of in-process, thread-safe cache
// policies — LRU, LRU-K, LFU, LFU with average-frequency aging, and ARC —
// under a uniform Put/Get contract, plus a hash-sharded wrapper that
// partitions the keyspace across independent policy instances to reduce
// lock contention.
//
// Design
//
//   - Each policy (policy/lru, policy/lruk, policy/lfu, policy/lfuavg,
//     policy/arc) is a self-contained generic type: a map for lookups plus
//     one or more intrusive linked lists (internal/list) for ordering.
//     There is no shared shard-level list; LFU's per-frequency buckets and
//     ARC's two ghost-coupled halves each need their own structures.
//
//   - Sharding (sharded.Cache) is generic over any policy via a factory
//     closure, so the same wrapper works whether the underlying policy is
//     LRU or ARC. Shard count defaults to 2×GOMAXPROCS rounded up to a
//     power of two, capped at 256; per-shard capacity is the requested total divided by the
//     shard count, rounded up.
//
//   - Metrics: every policy constructor accepts a variadic policy.Option;
//     policy.WithMetrics attaches a policy.Metrics sink receiving
//     Hit/Miss/Evict/Size signals. metrics/prom adapts that interface to
//     Prometheus.
//
// Basic usage
//
//	c := lru.New[string, []byte](10_000)
//	c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v
//	}
//	c.Remove("a")
//
// Choosing a policy
//
// LRU is the right default. LRU-K resists one-off scan pollution at the
// cost of a history cache. LFU and LFU-Avg favor long-run access
// frequency over recency; LFU-Avg additionally ages old hotspots down so
// they don't permanently dominate. ARC adapts between recency and
// frequency automatically based on ghost-list feedback, at roughly twice
// the bookkeeping cost of plain LRU.
//
// Sharding
//
//	c := sharded.New[string, string](100_000, 0, func(cap int) policy.Policy[string, string] {
//	    return arc.New[string, string](cap, 2)
//	})
//
// Thread-safety & complexity
//
// All methods on every policy type are safe for concurrent use. Put/Get
// are O(1) expected for LRU, LRU-K and ARC's LRU half; LFU/LFU-Avg's
// eviction recomputes the minimum non-empty frequency bucket, which is
// O(distinct frequencies currently resident), not O(1), but is a rare
// cold-path operation rather than one paid on every access.
//
// See SPEC_FULL.md and DESIGN.md for the full module design and the
// grounding behind each implementation choice.
package polycache
