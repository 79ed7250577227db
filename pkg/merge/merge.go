// Package merge implements k-way merge of already-ascending input
// ranges on top of a heap.Heap of range cursors keyed by their current
// head element.
package merge

import (
	"dheap/pkg/cursor"
	"dheap/pkg/heap"
	"dheap/pkg/log"
)

// Range is a non-empty, ascending-sorted input sequence: a (Begin, End)
// cursor pair. Begin advances toward End as the merge progresses;
// Begin must not equal End on entry.
type Range[T any] struct {
	C     cursor.Cursor[T]
	Begin int
	End   int
}

func (r Range[T]) head() T { return r.C.At(r.Begin) }

// Merger merges k sorted Range[T] values into an output Cursor using a
// fixed Geometry and comparator. Build one with New and reuse it
// across calls to Merge to avoid re-deriving the meta-comparator.
type Merger[T any] struct {
	heap *heap.Heap[Range[T]]
}

// New returns a Merger using the given heap geometry and element
// comparator.
func New[T any](g heap.Geometry, less cursor.Ordering[T]) *Merger[T] {
	// Compare ranges by their current head, in reverse, so the heap
	// rooted at index 0 holds the range whose head is smallest. Ties
	// among ranges with equal heads resolve via the max-child rule in
	// heap's sift-down: deterministic, but not stable across input
	// order.
	rless := func(a, b Range[T]) bool {
		return less(b.head(), a.head())
	}
	return &Merger[T]{heap: heap.New(g, rless)}
}

// NewDefault returns a Merger using heap.DefaultGeometry (F=4, P=1).
func NewDefault[T any](less cursor.Ordering[T]) *Merger[T] {
	return New(heap.DefaultGeometry(), less)
}

// Merge merges ranges into out starting at outStart, in ascending
// order, and returns the number of elements written (the sum of each
// range's length). ranges is permuted in place; on return every
// range's Begin equals its End.
func (m *Merger[T]) Merge(ranges []Range[T], out cursor.Cursor[T], outStart int) int {
	k := len(ranges)
	log.Assert(k > 0, "Merge: no input ranges", "k", k)
	for i, r := range ranges {
		log.Assert(r.Begin != r.End, "Merge: empty input range", "index", i)
	}

	rc := cursor.Slice[Range[T]](ranges)
	m.heap.Make(rc, 0, k)

	written := 0
	size := k

	for size > 0 {
		r := rc.At(0)
		out.Set(outStart+written, r.head())
		written++
		r.Begin++

		if r.Begin == r.End {
			// Real swap, not an overwrite: the exhausted range (with
			// Begin == End) must end up at index size-1, not get
			// discarded, so every range's Begin == End on return. When
			// size-1 is already 0 there's only one slot, the swap is
			// with itself: just write r back.
			if size-1 != 0 {
				tail := rc.At(size - 1)
				rc.Set(size-1, r)
				rc.Set(0, tail)
			} else {
				rc.Set(0, r)
			}
			size--
			if size == 0 {
				break
			}
		} else {
			rc.Set(0, r)
		}

		// The range now at the root — whether it's the one that just
		// advanced, or one swapped in from the tail after exhaustion —
		// needs to find its heap position. In gheap's terms its
		// "value" (the reversed head comparison) just decreased, so
		// this is the decrease-fix, not a fresh sift-up: a newly
		// swapped-in range can belong anywhere in the heap, not only
		// below the root.
		m.heap.RestoreAfterDecrease(rc, 0, 0, size)
	}

	return written
}
