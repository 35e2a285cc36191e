package list

import "testing"

func TestList_PushFrontOrdersMostRecentAtFront(t *testing.T) {
	t.Parallel()

	l := New[string, int]()
	a := &Node[string, int]{Key: "a", Val: 1}
	b := &Node[string, int]{Key: "b", Val: 2}
	l.PushFront(a)
	l.PushFront(b)

	if l.Front().Key != "b" {
		t.Fatalf("expected front to be the most recently pushed node")
	}
	if l.Back().Key != "a" {
		t.Fatalf("expected back to be the least recently pushed node")
	}
	if l.Len() != 2 {
		t.Fatalf("expected Len()==2, got %d", l.Len())
	}
}

func TestList_MoveToFrontRelocatesNode(t *testing.T) {
	t.Parallel()

	l := New[string, int]()
	a := &Node[string, int]{Key: "a"}
	b := &Node[string, int]{Key: "b"}
	l.PushFront(a)
	l.PushFront(b)

	l.MoveToFront(a)

	if l.Front().Key != "a" || l.Back().Key != "b" {
		t.Fatalf("expected MoveToFront to relocate the node without changing length")
	}
	if l.Len() != 2 {
		t.Fatalf("expected Len()==2 after MoveToFront, got %d", l.Len())
	}
}

func TestList_RemoveUnlinksAndDecrementsLen(t *testing.T) {
	t.Parallel()

	l := New[string, int]()
	a := &Node[string, int]{Key: "a"}
	b := &Node[string, int]{Key: "b"}
	l.PushFront(a)
	l.PushFront(b)

	l.Remove(a)

	if l.Len() != 1 {
		t.Fatalf("expected Len()==1 after Remove, got %d", l.Len())
	}
	if l.Front().Key != "b" || l.Back().Key != "b" {
		t.Fatalf("expected the sole remaining node to be both front and back")
	}
}

func TestList_PopFrontDrainsInOrder(t *testing.T) {
	t.Parallel()

	l := New[string, int]()
	l.PushBack(&Node[string, int]{Key: "a"})
	l.PushBack(&Node[string, int]{Key: "b"})
	l.PushBack(&Node[string, int]{Key: "c"})

	var order []string
	for n := l.PopFront(); n != nil; n = l.PopFront() {
		order = append(order, n.Key)
	}
	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
	if !l.Empty() {
		t.Fatalf("expected list to be empty after draining")
	}
}

func TestList_EmptyListOperationsReturnNil(t *testing.T) {
	t.Parallel()

	l := New[string, int]()
	if l.Front() != nil || l.Back() != nil || l.PopFront() != nil || l.PopBack() != nil {
		t.Fatalf("expected all read operations on an empty list to return nil")
	}
}
