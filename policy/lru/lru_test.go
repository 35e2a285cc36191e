package lru

import "testing"

// Deterministic eviction order: with capacity 2, putting three keys in
// order must evict the least recently touched one.
func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3) // evicts "a"

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected %q to be evicted", "a")
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Fatalf("expected %q to survive with value 2, got %v,%v", "b", v, ok)
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("expected %q to survive with value 3, got %v,%v", "c", v, ok)
	}
}

// A Get between two Puts should protect the touched key from eviction.
func TestLRU_GetPromotesToMostRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")       // "a" is now MRU, "b" is LRU
	c.Put("c", 3) // should evict "b", not "a"

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected %q to be evicted", "b")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected %q to survive", "a")
	}
}

func TestLRU_UpdateExistingKeyDoesNotGrowCache(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("a", 2)

	if c.Len() != 1 {
		t.Fatalf("expected Len()==1 after re-putting an existing key, got %d", c.Len())
	}
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Fatalf("expected updated value 2, got %v,%v", v, ok)
	}
}

func TestLRU_RemoveDeletesEntry(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)

	if !c.Remove("a") {
		t.Fatalf("expected Remove to report the key was present")
	}
	if c.Remove("a") {
		t.Fatalf("expected a second Remove to report the key absent")
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected %q to be gone after Remove", "a")
	}
}

func TestLRU_ZeroCapacityIsInert(t *testing.T) {
	t.Parallel()

	c := New[string, int](0)
	c.Put("a", 1)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("zero-capacity cache must never hold entries")
	}
	if c.Len() != 0 {
		t.Fatalf("expected Len()==0, got %d", c.Len())
	}
}

func TestLRU_NegativeCapacityPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected New with negative capacity to panic")
		}
	}()
	New[string, int](-1)
}
