package lruk

import "testing"

// Two Puts of the same key reach the K=2 observation threshold and admit
// it, so a subsequent Get hits against the main cache.
func TestLRUK_AdmitsAfterKPuts(t *testing.T) {
	t.Parallel()

	c := New[string, string](2, 4, 2)
	c.Put("x", "a")
	c.Put("x", "a")

	if v, ok := c.Get("x"); !ok || v != "a" {
		t.Fatalf("expected hit with value %q after K puts, got %v,%v", "a", v, ok)
	}
}

// A single Put is only one observation and does not admit the key, but
// a following Get counts as the second observation, so that same Get
// admits the key and hits with the pending value.
func TestLRUK_GetCountsAsObservation(t *testing.T) {
	t.Parallel()

	c := New[string, string](2, 4, 2)
	c.Put("y", "b")

	if v, ok := c.Get("y"); !ok || v != "b" {
		t.Fatalf("expected the second observation (this Get) to admit and hit, got %v,%v", v, ok)
	}
}

// A key touched fewer than K times, and never retried, never leaks into
// the main cache.
func TestLRUK_NeverAdmittedBelowThreshold(t *testing.T) {
	t.Parallel()

	c := New[string, string](2, 4, 3)
	c.Put("z", "c")
	c.Put("z", "c")

	if c.main.Len() != 0 {
		t.Fatalf("expected main cache to stay empty below K observations, got Len()=%d", c.main.Len())
	}
}

func TestLRUK_RemovePendingHistoryEntry(t *testing.T) {
	t.Parallel()

	c := New[string, string](2, 4, 5)
	c.Put("w", "d")

	if !c.Remove("w") {
		t.Fatalf("expected Remove to find the pending history entry")
	}
	if _, ok := c.pending["w"]; ok {
		t.Fatalf("expected pending entry to be cleared by Remove")
	}
}

func TestLRUK_KLessThanOnePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected New with k<1 to panic")
		}
	}()
	New[string, string](2, 4, 0)
}
