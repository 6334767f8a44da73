package index

import (
	"github.com/Niko256/BP-Tree-Index/internal/compositekey"
)

// CompositeIndex associates records of type R with a multi-component
// compositekey.Key, the Go analogue of the original's
// CompositeIndex<RecordType, Keys...>. Go cannot parameterize a type
// over a variadic list of key component types the way the C++ origin's
// non-type template parameter pack does, so component extraction is a
// single KeyFunc returning a compositekey.Key built from the record.
type CompositeIndex[R any] struct {
	inner *Index[compositekey.Key, R]
}

// NewComposite builds an empty CompositeIndex extracting a composite key
// from each record with keyFunc.
func NewComposite[R any](keyFunc func(R) compositekey.Key) *CompositeIndex[R] {
	return &CompositeIndex[R]{
		inner: New[compositekey.Key, R](compositekey.Compare, keyFunc),
	}
}

// NewCompositeWithOrder builds an empty CompositeIndex like NewComposite,
// but with an explicit branching factor for the underlying tree.
func NewCompositeWithOrder[R any](order int, keyFunc func(R) compositekey.Key) *CompositeIndex[R] {
	return &CompositeIndex[R]{
		inner: NewWithOrder[compositekey.Key, R](order, compositekey.Compare, keyFunc),
	}
}

// Insert adds record, keyed by keyFunc(record).
func (ix *CompositeIndex[R]) Insert(record R) error {
	return ix.inner.Insert(record)
}

// Remove deletes the entry for key, if present.
func (ix *CompositeIndex[R]) Remove(key compositekey.Key) {
	ix.inner.Remove(key)
}

// Update moves the mapping at oldKey to newKey.
func (ix *CompositeIndex[R]) Update(oldKey, newKey compositekey.Key) error {
	return ix.inner.Update(oldKey, newKey)
}

// Contains reports whether key has an entry in the index.
func (ix *CompositeIndex[R]) Contains(key compositekey.Key) bool {
	return ix.inner.Contains(key)
}

// Find returns the record stored for key, if any.
func (ix *CompositeIndex[R]) Find(key compositekey.Key) (R, bool) {
	return ix.inner.Find(key)
}

// RangeSearch returns, in ascending key order, the records whose
// composite keys fall in [lo, hi].
func (ix *CompositeIndex[R]) RangeSearch(lo, hi compositekey.Key) []R {
	return ix.inner.RangeSearch(lo, hi)
}

// FindIf returns, in ascending key order, every record satisfying pred.
func (ix *CompositeIndex[R]) FindIf(pred func(R) bool) []R {
	return ix.inner.FindIf(pred)
}

// FindByComponent linearly scans every record for one whose composite
// key has value at component position i, the Go equivalent of the
// original's find_by_component<I>(). Go generics cannot parameterize on
// a runtime index the way a C++ non-type template parameter can, so this
// is an explicit linear scan rather than a specialized tree lookup.
func (ix *CompositeIndex[R]) FindByComponent(i int, value compositekey.Component) []R {
	return ix.inner.FindIf(func(record R) bool {
		key := ix.inner.keyFunc(record)
		if i < 0 || i >= key.Len() {
			return false
		}
		return key.At(i).CompareTo(value) == 0
	})
}

// Size returns the number of entries in the index.
func (ix *CompositeIndex[R]) Size() int {
	return ix.inner.Size()
}

// FillFactor forwards the underlying tree's FillFactor.
func (ix *CompositeIndex[R]) FillFactor() float64 {
	return ix.inner.FillFactor()
}
