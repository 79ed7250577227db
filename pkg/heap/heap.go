// Package heap implements a generalized d-ary, page-aware max-heap over
// an abstract random-access cursor. Two tunable parameters, a fanout F
// and a page factor P, are bundled into a Geometry value; sift-up and
// sift-down use hole propagation rather than swaps, which for
// move-expensive element types cuts the number of moves roughly
// threefold.
//
// The heap is not thread-safe and keeps no state between calls. The
// element moves of a sift use a single element-sized local — the
// "hole" temporary. Sift indices are kept relative to the caller's
// first and rebased with a plain integer add at every cursor access,
// rather than through a wrapper Cursor. The log.Assert precondition
// checks in the sift loops and in Push box their key/value arguments
// into interface values, which allocates on every call whether or not
// log.Debug is set, so the operations are not allocation-free.
package heap

import (
	"dheap/pkg/cursor"
	"dheap/pkg/log"
)

// Heap is a max-heap engine parameterised by a Geometry and a strict
// weak ordering comparator. It holds no elements itself; every method
// takes the caller's Cursor and an index range.
type Heap[T any] struct {
	Geometry Geometry
	Less     cursor.Ordering[T]
}

// New returns a Heap with the given geometry and comparator.
func New[T any](g Geometry, less cursor.Ordering[T]) *Heap[T] {
	return &Heap[T]{Geometry: g, Less: less}
}

// NewDefault returns a Heap using DefaultGeometry (F=4, P=1).
func NewDefault[T any](less cursor.Ordering[T]) *Heap[T] {
	return New(DefaultGeometry(), less)
}

// IsHeapUntil scans [first, last) and returns the index of the first
// violation of the heap property, or last if none is found.
func (h *Heap[T]) IsHeapUntil(c cursor.Cursor[T], first, last int) int {
	n := last - first
	for u := 1; u < n; u++ {
		p := h.Geometry.Parent(u)
		if h.Less(c.At(first+p), c.At(first+u)) {
			return first + u
		}
	}
	return last
}

// IsHeap reports whether [first, last) satisfies the heap property.
func (h *Heap[T]) IsHeap(c cursor.Cursor[T], first, last int) bool {
	return h.IsHeapUntil(c, first, last) == last
}

// Make rearranges [first, last) into a heap in O(n) comparisons and
// moves. Postcondition: IsHeap(first, last).
func (h *Heap[T]) Make(c cursor.Cursor[T], first, last int) {
	n := last - first
	if n <= 1 {
		return
	}

	var start int
	if h.Geometry.PageFactor == 1 {
		// Skip pure-leaf nodes, which have no children.
		start = (n - 2) / h.Geometry.Fanout
	} else {
		// The paged layout's leaves aren't contiguous at the tail, so
		// the leaf-skip shortcut doesn't generalize cheaply; visit
		// every internal slot instead.
		start = n - 2
	}

	for i := start; i >= 0; i-- {
		item := c.At(first + i)
		siftDown(c, h.Geometry, h.Less, first, n, i, item)
	}

	if log.Debug {
		log.Assert(h.IsHeap(c, first, last), "Make: postcondition violated", "first", first, "last", last)
	}
}

// Push restores the heap property after a new element has been placed
// at last-1. Precondition: [first, last-1) is a heap.
func (h *Heap[T]) Push(c cursor.Cursor[T], first, last int) {
	n := last - first
	log.Assert(n > 0, "Push: empty range", "first", first, "last", last)

	item := c.At(last - 1)
	siftUp(c, h.Geometry, h.Less, first, 0, n-1, item)

	if log.Debug {
		log.Assert(h.IsHeap(c, first, last), "Push: postcondition violated", "first", first, "last", last)
	}
}

// Pop moves the maximum to last-1 and restores the heap property over
// [first, last-1). Precondition: [first, last) is a heap.
func (h *Heap[T]) Pop(c cursor.Cursor[T], first, last int) {
	n := last - first
	if log.Debug {
		log.Assert(h.IsHeap(c, first, last), "Pop: precondition violated", "first", first, "last", last)
	}

	if n <= 1 {
		return
	}

	tmp := c.At(last - 1)
	c.Set(last-1, c.At(first))
	siftDown(c, h.Geometry, h.Less, first, n-1, 0, tmp)

	if log.Debug {
		log.Assert(h.IsHeap(c, first, last-1), "Pop: postcondition violated", "first", first, "last", last-1)
	}
}

// Sort rearranges a heap [first, last) into ascending order. The order
// of equal keys is deterministic, fixed by the max-child tie policy in
// siftDown, but the sort is not stable: equal keys may be reordered
// relative to each other.
func (h *Heap[T]) Sort(c cursor.Cursor[T], first, last int) {
	for size := last - first; size >= 2; size-- {
		end := first + size
		tmp := c.At(end - 1)
		c.Set(end-1, c.At(first))
		siftDown(c, h.Geometry, h.Less, first, size-1, 0, tmp)
	}
}

// RestoreAfterIncrease restores the heap property after the element at
// item has grown. Requires [first, item) to already be heap-valid.
func (h *Heap[T]) RestoreAfterIncrease(c cursor.Cursor[T], first, item int) {
	hole := item - first
	value := c.At(item)
	siftUp(c, h.Geometry, h.Less, first, 0, hole, value)
}

// RestoreAfterDecrease restores the heap property after the element at
// item has shrunk, by sifting down from item over the full range
// [first, last). item == first (sift-down from the root) is valid and
// is exactly what Merge relies on after a range's head advances.
func (h *Heap[T]) RestoreAfterDecrease(c cursor.Cursor[T], first, item, last int) {
	n := last - first
	hole := item - first
	value := c.At(item)

	if n <= 1 {
		c.Set(item, value)
		return
	}

	siftDown(c, h.Geometry, h.Less, first, n, hole, value)
}

// Remove excises the element at item, leaving its value at a[n-1], and
// leaves [first, last-1) a heap of size n-1.
func (h *Heap[T]) Remove(c cursor.Cursor[T], first, item, last int) {
	n := last - first
	k := n - 1
	hIdx := item - first

	if hIdx == k {
		return
	}

	// tmp is the current last element; the excised value moves into its
	// slot, which is the final resting place the postcondition promises.
	tmp := c.At(last - 1)
	displaced := c.At(item)
	c.Set(last-1, displaced)

	// displaced is the removed value that used to sit at item. If tmp
	// (the former last element) is smaller than it, tmp may be too small
	// for its new position and must sift down; otherwise it may be too
	// large for an ancestor and must sift up.
	if h.Less(tmp, displaced) {
		siftDown(c, h.Geometry, h.Less, first, k, hIdx, tmp)
	} else {
		siftUp(c, h.Geometry, h.Less, first, 0, hIdx, tmp)
	}

	if log.Debug {
		log.Assert(h.IsHeap(c, first, last-1), "Remove: postcondition violated", "first", first, "last", last-1)
	}
}
