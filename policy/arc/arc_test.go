package arc

import "testing"

// A B1-style ghost hit (a key evicted from the LRU half, then put back)
// shifts one unit of capacity from the LFU half to the LRU half.
func TestARC_GhostHitOnLRUHalfShiftsCapacity(t *testing.T) {
	t.Parallel()

	c := New[string, string](2, 2)
	c.Put("1", "a")
	c.Put("2", "b")
	c.Put("3", "c") // evicts "1" from the LRU half into its ghost list

	lruCapBefore, lfuCapBefore := c.lru.cap, c.lfu.cap

	c.Put("1", "a") // ghost hit on "1"

	if c.lru.cap != lruCapBefore+1 {
		t.Fatalf("expected LRU half capacity to grow by one, got %d -> %d", lruCapBefore, c.lru.cap)
	}
	if c.lfu.cap != lfuCapBefore-1 {
		t.Fatalf("expected LFU half capacity to shrink by one, got %d -> %d", lfuCapBefore, c.lfu.cap)
	}
	if c.lru.cap+c.lfu.cap != lruCapBefore+lfuCapBefore {
		t.Fatalf("expected combined capacity to stay constant, got %d", c.lru.cap+c.lfu.cap)
	}
}

// Crossing the promotion threshold on the LRU half also writes the
// entry into the LFU half, without evicting it from the LRU half (the
// non-strict partition the reference implementation keeps).
func TestARC_PromotionThresholdCopiesIntoLFUHalf(t *testing.T) {
	t.Parallel()

	c := New[string, string](4, 2)
	c.Put("k", "v")
	c.Get("k") // 1st access after put: accessCount goes 1 -> 2, crosses threshold

	if !c.lfu.contains("k") {
		t.Fatalf("expected promotion to have copied %q into the LFU half", "k")
	}
	if _, ok := c.lru.index["k"]; !ok {
		t.Fatalf("expected %q to remain in the LRU half too", "k")
	}
}

func TestARC_GetStrictReturnsErrNotFoundOnMiss(t *testing.T) {
	t.Parallel()

	c := New[string, string](2, 2)
	if _, err := c.GetStrict("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	c.Put("present", "v")
	v, err := c.GetStrict("present")
	if err != nil || v != "v" {
		t.Fatalf("expected hit with no error, got %v,%v", v, err)
	}
}

func TestARC_NegativeCapacityPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected New with negative capacity to panic")
		}
	}()
	New[string, string](-1, 2)
}
