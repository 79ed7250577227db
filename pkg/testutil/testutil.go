// Package testutil provides randomized fixture generation for the
// property tests in pkg/heap and pkg/merge, following the teacher's
// pkg/testutil (github.com/daicang/mk) which builds random KV fixtures
// on top of github.com/google/gofuzz.
package testutil

import (
	"sort"

	fuzz "github.com/google/gofuzz"
)

var f = fuzz.New().NilChance(0).NumElements(1, 1)

// RandomInts returns n random ints, suitable for driving heap
// make/push/pop/sort property checks.
func RandomInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		var v int32
		f.Fuzz(&v)
		out[i] = int(v)
	}
	return out
}

// RandomStrings returns n random short strings.
func RandomStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		var s string
		f.Fuzz(&s)
		out[i] = s
	}
	return out
}

// SortedIntRuns splits count random ints into k ascending runs of
// roughly equal size, for feeding pkg/merge's Merge.
func SortedIntRuns(k, count int) [][]int {
	all := RandomInts(count)
	sort.Ints(all)

	runs := make([][]int, k)
	per := count / k
	idx := 0
	for i := 0; i < k; i++ {
		size := per
		if i == k-1 {
			size = count - idx
		}
		runs[i] = append([]int(nil), all[idx:idx+size]...)
		idx += size
	}
	return runs
}
