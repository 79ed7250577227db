// Package common holds types and constants shared across the dheap packages.
package common

import "math"

// MaxIndex is the sentinel FirstChild returns when the true child index
// would overflow the addressable range. Callers that walk downward
// compare against the heap size before using it, which they naturally do.
const MaxIndex = math.MaxInt

// MinFanout is the smallest allowed fanout F.
const MinFanout = 2

// MinPageFactor is the smallest allowed page factor P.
// P == 1 denotes the classic, non-paged layout.
const MinPageFactor = 1
