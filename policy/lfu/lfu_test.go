package lfu

import "testing"

// Among entries tied at the minimum frequency, the oldest admitted one
// is evicted first.
func TestLFU_EvictsOldestAtMinimumFrequency(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	// Both "a" and "b" sit at frequency 1; "a" is older.
	c.Put("c", 3) // evicts "a"

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected %q to be evicted", "a")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("expected %q to survive", "b")
	}
}

// Accessing a key raises it out of the minimum-frequency bucket and
// protects it from eviction even though it was admitted first.
func TestLFU_GetProtectsFromEviction(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a") // "a" now has frequency 2, "b" stays at 1
	c.Put("c", 3) // evicts "b", the sole entry left at minimum frequency

	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected %q to be evicted", "b")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected %q to survive", "a")
	}
}

// Overwriting an existing key must not bump its frequency.
func TestLFU_PutOnExistingKeyDoesNotBumpFrequency(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)
	c.Get("a") // freq(a) = 2
	c.Put("b", 2)
	c.Put("a", 99) // overwrite, freq(a) must remain 2

	n := c.index["a"]
	if n.Aux != 2 {
		t.Fatalf("expected freq(a)==2 after overwrite, got %d", n.Aux)
	}
	if v, _ := c.Get("a"); v != 99 {
		t.Fatalf("expected overwritten value 99, got %d", v)
	}
}

func TestLFU_PurgeResetsState(t *testing.T) {
	t.Parallel()

	c := New[string, int](2)
	c.Put("a", 1)
	c.Get("a")
	c.Purge()

	if c.Len() != 0 {
		t.Fatalf("expected Len()==0 after Purge, got %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected Purge to remove all entries")
	}
	// A fresh Put after Purge should behave like a cold cache.
	c.Put("z", 42)
	if v, ok := c.Get("z"); !ok || v != 42 {
		t.Fatalf("expected cache to be usable after Purge, got %v,%v", v, ok)
	}
}

func TestLFU_ZeroCapacityIsInert(t *testing.T) {
	t.Parallel()

	c := New[string, int](0)
	c.Put("a", 1)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("zero-capacity cache must never hold entries")
	}
}
