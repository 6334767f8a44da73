package btree

import "cmp"

// CompareFunc totally orders keys of type K. It must return a negative
// number if a < b, zero if a == b, and a positive number if a > b.
// Equality is derived from this single comparator: a == b iff
// cmp(a,b) == 0.
type CompareFunc[K any] func(a, b K) int

// OrderedCompare returns the natural CompareFunc for any type satisfying
// cmp.Ordered, built on the standard library's own comparison semantics.
func OrderedCompare[K cmp.Ordered]() CompareFunc[K] {
	return cmp.Compare[K]
}
