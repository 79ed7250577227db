package heap

import (
	"sort"
	"testing"

	"dheap/pkg/cursor"
	"dheap/pkg/testutil"
)

func lessInt(a, b int) bool { return a < b }

func TestMakeHeapBinary(t *testing.T) {
	h := New[int](mustGeometry(t, 2, 1), lessInt)
	data := cursor.Slice[int]{3, 1, 4, 1, 5, 9, 2, 6}

	h.Make(data, 0, len(data))

	if !h.IsHeap(data, 0, len(data)) {
		t.Fatalf("not a heap after Make: %v", []int(data))
	}

	n := len(data)
	for n > 1 {
		h.Pop(data, 0, n)
		n--
	}

	want := []int{1, 1, 2, 3, 4, 5, 6, 9}
	got := []int(data)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPushHeap(t *testing.T) {
	h := New[int](mustGeometry(t, 4, 1), lessInt)
	data := cursor.Slice[int]{9, 5, 6, 1, 2, 3}

	h.Make(data, 0, len(data)-1)
	h.Push(data, 0, len(data))

	if !h.IsHeap(data, 0, len(data)) {
		t.Fatalf("not a heap after Push: %v", []int(data))
	}
}

func TestSortHeap(t *testing.T) {
	h := NewDefault[int](lessInt)
	input := testutil.RandomInts(200)
	data := cursor.Slice[int](append([]int(nil), input...))

	h.Make(data, 0, len(data))
	h.Sort(data, 0, len(data))

	if !sort.IntsAreSorted(data) {
		t.Fatalf("not sorted: %v", []int(data))
	}

	wantCounts := counts(input)
	gotCounts := counts(data)
	if !mapsEqual(wantCounts, gotCounts) {
		t.Fatal("multiset changed by Sort")
	}
}

func TestSortHeapDescendingInput(t *testing.T) {
	h := NewDefault[int](lessInt)
	data := make(cursor.Slice[int], 100)
	for i := range data {
		data[i] = len(data) - i
	}

	h.Make(data, 0, len(data))
	h.Sort(data, 0, len(data))

	if !sort.IntsAreSorted(data) {
		t.Fatalf("not sorted: %v", []int(data))
	}
}

func TestRemoveFromHeap(t *testing.T) {
	h := NewDefault[int](lessInt)
	input := testutil.RandomInts(32)
	data := cursor.Slice[int](append([]int(nil), input...))
	h.Make(data, 0, len(data))

	removeAt := 17
	removedWant := data[removeAt]

	h.Remove(data, 0, removeAt, len(data))

	if got := data[len(data)-1]; got != removedWant {
		t.Fatalf("Remove left %d at tail, want %d", got, removedWant)
	}
	if !h.IsHeap(data, 0, len(data)-1) {
		t.Fatalf("not a heap after Remove: %v", []int(data[:len(data)-1]))
	}
}

func TestRestoreAfterIncrease(t *testing.T) {
	h := NewDefault[int](lessInt)
	input := testutil.RandomInts(64)
	data := cursor.Slice[int](append([]int(nil), input...))
	h.Make(data, 0, len(data))

	maxVal := data[0]
	data[40] = maxVal + 1000

	h.RestoreAfterIncrease(data, 0, 40)

	if data[0] != maxVal+1000 {
		t.Fatalf("increased element did not bubble to root: root=%d", data[0])
	}
	if !h.IsHeap(data, 0, len(data)) {
		t.Fatalf("not a heap after RestoreAfterIncrease: %v", []int(data))
	}
}

func TestRestoreAfterDecrease(t *testing.T) {
	h := NewDefault[int](lessInt)
	input := testutil.RandomInts(64)
	data := cursor.Slice[int](append([]int(nil), input...))
	h.Make(data, 0, len(data))

	data[0] = -1 << 30

	h.RestoreAfterDecrease(data, 0, 0, len(data))

	if !h.IsHeap(data, 0, len(data)) {
		t.Fatalf("not a heap after RestoreAfterDecrease: %v", []int(data))
	}
}

func TestPagedGeometryMatchesSimpleResults(t *testing.T) {
	input := testutil.RandomInts(150)

	simple := cursor.Slice[int](append([]int(nil), input...))
	paged := cursor.Slice[int](append([]int(nil), input...))

	hs := New[int](mustGeometry(t, 2, 1), lessInt)
	hp := New[int](mustGeometry(t, 2, 512), lessInt)

	hs.Make(simple, 0, len(simple))
	hp.Make(paged, 0, len(paged))

	hs.Sort(simple, 0, len(simple))
	hp.Sort(paged, 0, len(paged))

	for i := range simple {
		if simple[i] != paged[i] {
			t.Fatalf("simple and paged layouts sorted differently at %d: %d vs %d", i, simple[i], paged[i])
		}
	}
}

func mustGeometry(t *testing.T, fanout, pageFactor int) Geometry {
	t.Helper()
	g, err := NewGeometry(fanout, pageFactor)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func counts(s []int) map[int]int {
	m := map[int]int{}
	for _, v := range s {
		m[v]++
	}
	return m
}

func mapsEqual(a, b map[int]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
