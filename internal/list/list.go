// Package list provides a generic intrusive doubly-linked list with
// sentinel head/tail nodes, shared by every eviction/admission policy.
// A Node belongs to at most one List at a time; Aux is free for the
// owning policy to use as a counter (access count, frequency) without
// a separate side map.
package list

// Node is one entry of a List. Key and Val are the policy's view of the
// entry; Aux is scratch space the owning policy uses however it needs
// (LRU stores an access counter, LFU/LFU-Avg store the current
// frequency). prev/next/owner are only ever touched by List.
type Node[K comparable, V any] struct {
	Key K
	Val V
	Aux int

	prev, next *Node[K, V]
	owner      *List[K, V]
}

// List is a doubly linked list with sentinel head/tail nodes, giving
// O(1) push/remove/move regardless of position. Front() is the most
// recently pushed-to-front end; Back() is the opposite end. Callers
// decide what "front" means for their policy (MRU vs admission order).
type List[K comparable, V any] struct {
	head, tail *Node[K, V]
	len        int
}

// New returns an empty list.
func New[K comparable, V any]() *List[K, V] {
	l := &List[K, V]{head: &Node[K, V]{}, tail: &Node[K, V]{}}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// Len returns the number of nodes currently in the list.
func (l *List[K, V]) Len() int { return l.len }

// Empty reports whether the list has no nodes.
func (l *List[K, V]) Empty() bool { return l.len == 0 }

// PushFront inserts n at the front. n must not already belong to a list.
func (l *List[K, V]) PushFront(n *Node[K, V]) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
	n.owner = l
	l.len++
}

// PushBack inserts n at the back. n must not already belong to a list.
func (l *List[K, V]) PushBack(n *Node[K, V]) {
	n.next = l.tail
	n.prev = l.tail.prev
	l.tail.prev.next = n
	l.tail.prev = n
	n.owner = l
	l.len++
}

// MoveToFront relocates n (already in this list) to the front.
func (l *List[K, V]) MoveToFront(n *Node[K, V]) {
	l.unlink(n)
	l.PushFront(n)
}

// MoveToBack relocates n (already in this list) to the back.
func (l *List[K, V]) MoveToBack(n *Node[K, V]) {
	l.unlink(n)
	l.PushBack(n)
}

// Remove detaches n from the list.
func (l *List[K, V]) Remove(n *Node[K, V]) {
	l.unlink(n)
	n.prev, n.next, n.owner = nil, nil, nil
}

// PopFront removes and returns the front node, or nil if the list is empty.
func (l *List[K, V]) PopFront() *Node[K, V] {
	n := l.Front()
	if n == nil {
		return nil
	}
	l.Remove(n)
	return n
}

// PopBack removes and returns the back node, or nil if the list is empty.
func (l *List[K, V]) PopBack() *Node[K, V] {
	n := l.Back()
	if n == nil {
		return nil
	}
	l.Remove(n)
	return n
}

// Front returns the front node, or nil if the list is empty.
func (l *List[K, V]) Front() *Node[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.head.next
}

// Back returns the back node, or nil if the list is empty.
func (l *List[K, V]) Back() *Node[K, V] {
	if l.len == 0 {
		return nil
	}
	return l.tail.prev
}

func (l *List[K, V]) unlink(n *Node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.len--
}
