package arc

import "github.com/polycache/polycache/internal/list"

// lruHalf is the recency-tracking half of an ARC cache: a plain LRU
// main list plus a FIFO ghost list of recently evicted keys. Grounded
// on the reference ARCLRUCache.
type lruHalf[K comparable, V any] struct {
	cap      int
	ghostCap int

	transformThreshold int

	main  *list.List[K, V]
	index map[K]*list.Node[K, V]

	ghost      *list.List[K, struct{}]
	ghostIndex map[K]*list.Node[K, struct{}]
}

func newLRUHalf[K comparable, V any](capacity, transformThreshold int) *lruHalf[K, V] {
	return &lruHalf[K, V]{
		cap:                capacity,
		ghostCap:           capacity,
		transformThreshold: transformThreshold,
		main:               list.New[K, V](),
		index:              make(map[K]*list.Node[K, V]),
		ghost:              list.New[K, struct{}](),
		ghostIndex:         make(map[K]*list.Node[K, struct{}]),
	}
}

// get promotes k to most-recently-used and reports whether its access
// count has crossed transformThreshold, signaling the coordinator that
// it should be promoted into the LFU half as well.
func (h *lruHalf[K, V]) get(k K) (v V, found, shouldPromote bool) {
	n, ok := h.index[k]
	if !ok {
		return v, false, false
	}
	h.main.MoveToFront(n)
	n.Aux++
	return n.Val, true, n.Aux >= h.transformThreshold
}

// put inserts or updates k→v, evicting the least-recently-used entry
// into the ghost list if the half is full. Per the reference, updating
// an existing key does not bump its access count.
func (h *lruHalf[K, V]) put(k K, v V) bool {
	if h.cap == 0 {
		return false
	}
	if n, ok := h.index[k]; ok {
		n.Val = v
		h.main.MoveToFront(n)
		return true
	}
	if len(h.index) >= h.cap {
		h.evictLeastRecent()
	}
	n := &list.Node[K, V]{Key: k, Val: v, Aux: 1}
	h.main.PushFront(n)
	h.index[k] = n
	return true
}

func (h *lruHalf[K, V]) evictLeastRecent() {
	victim := h.main.Back()
	if victim == nil {
		return
	}
	h.main.Remove(victim)
	delete(h.index, victim.Key)
	h.addGhost(victim.Key)
}

func (h *lruHalf[K, V]) addGhost(k K) {
	if h.ghost.Len() >= h.ghostCap {
		h.removeOldestGhost()
	}
	gn := &list.Node[K, struct{}]{Key: k}
	h.ghost.PushFront(gn)
	h.ghostIndex[k] = gn
}

func (h *lruHalf[K, V]) removeOldestGhost() {
	victim := h.ghost.Back()
	if victim == nil {
		return
	}
	h.ghost.Remove(victim)
	delete(h.ghostIndex, victim.Key)
}

// checkGhost removes k from the ghost list if present and reports
// whether it was found there.
func (h *lruHalf[K, V]) checkGhost(k K) bool {
	n, ok := h.ghostIndex[k]
	if !ok {
		return false
	}
	h.ghost.Remove(n)
	delete(h.ghostIndex, k)
	return true
}

func (h *lruHalf[K, V]) increaseCapacity() {
	h.cap++
	h.ghostCap++
}

// decreaseCapacity shrinks the half by one slot, evicting if it is
// currently full. It refuses to shrink below zero.
func (h *lruHalf[K, V]) decreaseCapacity() bool {
	if h.cap <= 0 {
		return false
	}
	if len(h.index) >= h.cap {
		h.evictLeastRecent()
	}
	if h.ghost.Len() >= h.ghostCap {
		h.removeOldestGhost()
	}
	h.cap--
	h.ghostCap--
	return true
}

func (h *lruHalf[K, V]) len() int { return len(h.index) }
