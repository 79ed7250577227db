package heap

import (
	"dheap/pkg/cursor"
	"dheap/pkg/log"
)

// siftUp walks the hole at index hole toward root, moving ancestors
// down into the hole while they are less than item, then writes item
// into the final hole position. root, hole, and the indices Geometry
// computes are all relative to first; first is added at every access
// so callers never need a wrapper cursor. Precondition: hole >= root.
func siftUp[T any](c cursor.Cursor[T], g Geometry, less cursor.Ordering[T], first, root, hole int, item T) {
	log.Assert(hole >= root, "siftUp: hole below root", "hole", hole, "root", root)

	for hole > root {
		p := g.Parent(hole)
		log.Assert(p >= root, "siftUp: parent below root", "parent", p, "root", root)

		if !less(c.At(first+p), item) {
			break
		}

		c.Set(first+hole, c.At(first+p))
		hole = p
	}

	c.Set(first+hole, item)
}

// siftDown walks the hole at index hole toward the leaves, repeatedly
// moving the largest child into the hole, then finishes with a
// siftUp call from the original root. The descent never compares
// item, so the trailing siftUp is what places item at its correct
// height on the final path; it moves item up whenever item is larger
// than the children that were moved above it, which can happen for an
// ordinary pop as well as for remove and restoreAfterDecrease.
// Precondition: 0 <= hole < n.
//
// hole == 0 (sift-down from the root) is the case nway_merge's
// restore-after-decrease call relies on: the range at ranges[0] has
// just had its head advance, so its heap-ordering position must be
// re-sifted from the root over the still-current [first, last) range.
func siftDown[T any](c cursor.Cursor[T], g Geometry, less cursor.Ordering[T], first, n, hole int, item T) {
	log.Assert(hole >= 0 && hole < n, "siftDown: hole out of range", "hole", hole, "n", n)

	root := hole
	rem := (n - 1) % g.Fanout

	for {
		child := g.FirstChild(hole)
		if child >= n-rem {
			if child < n {
				// A short run of rem < Fanout children remains; the
				// heap's structure guarantees child+rem == n here.
				best := maxChild(c, less, first, child, child+rem)
				c.Set(first+hole, c.At(first+best))
				hole = best
			}
			break
		}

		best := maxChild(c, less, first, child, child+g.Fanout)
		c.Set(first+hole, c.At(first+best))
		hole = best
	}

	siftUp(c, g, less, first, root, hole, item)
}

// maxChild returns the index of the largest element among the
// first-relative indices [lo, hi). Ties are broken toward the highest
// index: a later sibling equal to the current max replaces it. This
// is part of the contract, not an implementation accident — it
// determines which equal element surfaces first during Sort and
// Merge.
func maxChild[T any](c cursor.Cursor[T], less cursor.Ordering[T], first, lo, hi int) int {
	best := lo
	bestVal := c.At(first + lo)

	for i := lo + 1; i < hi; i++ {
		v := c.At(first + i)
		if !less(v, bestVal) {
			best = i
			bestVal = v
		}
	}

	return best
}
