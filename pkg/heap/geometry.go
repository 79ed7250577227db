package heap

import (
	"fmt"

	"dheap/pkg/common"
)

// Geometry bundles the two layout parameters that define an implicit
// d-ary heap: the fanout F (children per node) and the page factor P
// (F-slot chunks per page). P == 1 is the classic, non-paged layout;
// P > 1 clusters a parent with its F children inside contiguous pages
// so that sibling traversal during sift-down stays within one page.
type Geometry struct {
	Fanout     int
	PageFactor int

	// pageSize is Fanout * PageFactor, slots per page beyond the root.
	pageSize int

	// pageLeaves is (Fanout-1)*PageFactor + 1, the number of leaves per
	// page that receive a child page.
	pageLeaves int
}

// NewGeometry validates and constructs a Geometry. F must be >= 2 and
// P must be >= 1.
func NewGeometry(fanout, pageFactor int) (Geometry, error) {
	if fanout < common.MinFanout {
		return Geometry{}, fmt.Errorf("dheap: fanout must be >= %d, got %d", common.MinFanout, fanout)
	}
	if pageFactor < common.MinPageFactor {
		return Geometry{}, fmt.Errorf("dheap: page factor must be >= %d, got %d", common.MinPageFactor, pageFactor)
	}

	return Geometry{
		Fanout:     fanout,
		PageFactor: pageFactor,
		pageSize:   fanout * pageFactor,
		pageLeaves: (fanout-1)*pageFactor + 1,
	}, nil
}

// DefaultGeometry returns the 4-ary, non-paged layout (F=4, P=1), a
// strong general baseline.
func DefaultGeometry() Geometry {
	g, _ := NewGeometry(4, 1)
	return g
}

// PagedGeometry returns a binary heap laid out in pages of 512 two-slot
// chunks, 1024 slots per page (F=2, P=512).
func PagedGeometry() Geometry {
	g, _ := NewGeometry(2, 512)
	return g
}

// Paged reports whether this geometry uses the paged layout (P > 1).
func (g Geometry) Paged() bool {
	return g.PageFactor > 1
}

// Parent returns the index of u's parent. u must be > 0.
func (g Geometry) Parent(u int) int {
	if g.PageFactor == 1 {
		return (u - 1) / g.Fanout
	}

	uPrime := u - 1
	if uPrime < g.Fanout {
		return 0
	}

	v := uPrime % g.pageSize
	if v >= g.Fanout {
		// Parent and child share a page.
		return uPrime - v + v/g.Fanout
	}

	// Parent lives on the previous page.
	w := uPrime/g.pageSize - 1
	return (w/g.pageLeaves+1)*g.pageSize + (w % g.pageLeaves) - g.pageLeaves + 1
}

// FirstChild returns the index of the first of u's Fanout children, or
// common.MaxIndex if that index would overflow.
func (g Geometry) FirstChild(u int) int {
	if g.PageFactor == 1 {
		if u > (common.MaxIndex-1)/g.Fanout {
			return common.MaxIndex
		}
		return u*g.Fanout + 1
	}

	if u == 0 {
		return 1
	}

	uPrime := u - 1
	v := (uPrime % g.pageSize) + 1

	if v < g.pageSize/g.Fanout {
		// Children share the page with u.
		vPrime := v * (g.Fanout - 1)
		if uPrime > common.MaxIndex-2-vPrime {
			return common.MaxIndex
		}
		return uPrime + vPrime + 2
	}

	// Children lie on a later page.
	vSecond := v + (uPrime/g.pageSize+1)*g.pageLeaves - g.pageSize
	if vSecond > (common.MaxIndex-1)/g.pageSize {
		return common.MaxIndex
	}
	return vSecond*g.pageSize + 1
}
