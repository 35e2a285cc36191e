// Command bench runs a synthetic Zipf-distributed workload against a
// chosen eviction policy (optionally sharded) and exposes optional
// pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	pmet "github.com/polycache/polycache/metrics/prom"
	"github.com/polycache/polycache/policy"
	"github.com/polycache/polycache/policy/arc"
	"github.com/polycache/polycache/policy/lfu"
	"github.com/polycache/polycache/policy/lfuavg"
	"github.com/polycache/polycache/policy/lru"
	"github.com/polycache/polycache/policy/lruk"
	"github.com/polycache/polycache/sharded"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		shards   = flag.Int("shards", 0, "number of shards (0=auto, 1=unsharded)")
		pol      = flag.String("policy", "lru", "eviction policy: lru | lruk | lfu | lfuavg | arc")

		lrukK           = flag.Int("lruk_k", 2, "lru-k: observations required before admission")
		lrukHistFactor  = flag.Int("lruk_hist_factor", 2, "lru-k: history capacity = cap/lruk_hist_factor")
		lfuavgMaxFreq   = flag.Int("lfuavg_max_avg_freq", 0, "lfu-avg: aging ceiling (0=default)")
		arcTransformAt  = flag.Int("arc_transform_threshold", 2, "arc: accesses before LRU->LFU promotion")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "polycache", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build cache ----
	factory, err := policyFactory(*pol, *lrukK, *lrukHistFactor, *lfuavgMaxFreq, *arcTransformAt, metrics)
	if err != nil {
		log.Fatalf("%v", err)
	}
	c := sharded.New[string, string](*capacity, *shards, factory)

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Put(k, "v"+strconv.Itoa(i))
	}

	// ---- Snapshot flags for goroutines ----
	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation ----
	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if _, ok := c.Get(keyByZipf()); ok {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					k := keyByZipf()
					c.Put(k, "v"+strconv.Itoa(localR.Int()))
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	// ---- Report ----
	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("policy=%s cap=%d shards=%d workers=%d keys=%d dur=%v seed=%d\n",
		*pol, *capacity, *shards, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, missesN, hitRate)
	fmt.Printf("Len()=%d\n", c.Len())

	shardHits, shardMisses := c.Stats()
	fmt.Printf("shard-level hits=%d misses=%d\n", shardHits, shardMisses)
}

// policyFactory returns a closure sharded.New uses to build each shard's
// policy instance, with per-policy flags plumbed through. It is handed
// the already-ceil-divided per-shard capacity, not the total.
func policyFactory(
	name string,
	lrukK, lrukHistFactor, lfuavgMaxFreq, arcTransformAt int,
	metrics policy.Metrics,
) (func(shardCapacity int) policy.Policy[string, string], error) {
	switch name {
	case "lru":
		return func(cap int) policy.Policy[string, string] {
			return lru.New[string, string](cap, policy.WithMetrics(metrics))
		}, nil
	case "lruk":
		histFactor := lrukHistFactor
		if histFactor <= 0 {
			histFactor = 1
		}
		return func(cap int) policy.Policy[string, string] {
			hist := cap / histFactor
			if hist <= 0 {
				hist = cap
			}
			return lruk.New[string, string](cap, hist, lrukK, policy.WithMetrics(metrics))
		}, nil
	case "lfu":
		return func(cap int) policy.Policy[string, string] {
			return lfu.New[string, string](cap, policy.WithMetrics(metrics))
		}, nil
	case "lfuavg":
		return func(cap int) policy.Policy[string, string] {
			return lfuavg.New[string, string](cap, lfuavgMaxFreq, policy.WithMetrics(metrics))
		}, nil
	case "arc":
		return func(cap int) policy.Policy[string, string] {
			return arc.New[string, string](cap, arcTransformAt, policy.WithMetrics(metrics))
		}, nil
	default:
		return nil, fmt.Errorf("unknown policy: %q (use lru, lruk, lfu, lfuavg or arc)", name)
	}
}
