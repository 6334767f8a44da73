package index

import (
	"github.com/pkg/errors"

	"github.com/Niko256/BP-Tree-Index/internal/btree"
)

// recordID is the position of a record within an Index's record slice.
// It plays the role the original C++ origin's RecordId template
// parameter plays, but is fixed here to a slice index rather than a
// caller-supplied identifier type, since the record slice itself is the
// storage the index owns.
type recordID = int

// Index associates records of type R with an ordered key of type K,
// extracted from each record by KeyFunc, and backed by a btree.Tree
// mapping K to a recordID. It is the Go analogue of the original C++
// origin's Index<RecordType, KeyType, Compare>.
type Index[K any, R any] struct {
	tree    *btree.Tree[K, recordID]
	records []R
	keyFunc func(R) K
}

// New builds an empty Index ordering keys with cmp and extracting a
// record's key with keyFunc, using the tree's default order.
func New[K any, R any](cmp btree.CompareFunc[K], keyFunc func(R) K) *Index[K, R] {
	return NewWithOrder[K, R](btree.DefaultOrder, cmp, keyFunc)
}

// NewWithOrder builds an empty Index like New, but with an explicit
// branching factor for the underlying tree, forwarding to
// btree.NewWithOrder.
func NewWithOrder[K any, R any](order int, cmp btree.CompareFunc[K], keyFunc func(R) K) *Index[K, R] {
	return &Index[K, R]{
		tree:    btree.NewWithOrder[K, recordID](order, cmp),
		keyFunc: keyFunc,
	}
}

// Insert adds record, keyed by keyFunc(record). It fails with
// ErrDuplicateKey if a record with the same key already exists, leaving
// the index unchanged.
func (ix *Index[K, R]) Insert(record R) error {
	key := ix.keyFunc(record)
	id := len(ix.records)
	if err := ix.tree.Insert(key, id); err != nil {
		return errors.Wrapf(ErrDuplicateKey, "insert: %v", err)
	}
	ix.records = append(ix.records, record)
	return nil
}

// Remove deletes the entry for key, if present. Removing an absent key
// is a silent no-op, matching the underlying tree's Remove semantics.
func (ix *Index[K, R]) Remove(key K) {
	ix.tree.Remove(key)
}

// Update moves the mapping at oldKey to newKey, preserving the
// underlying record. It implements the original's "remove the old key,
// insert the new one" update semantics: the record itself is not
// touched, only the key it is addressed by.
func (ix *Index[K, R]) Update(oldKey, newKey K) error {
	ids := ix.tree.Find(oldKey)
	if len(ids) == 0 {
		return errors.Wrapf(ErrKeyNotFound, "update: key not found")
	}
	id := ids[0]

	ix.tree.Remove(oldKey)
	if err := ix.tree.Insert(newKey, id); err != nil {
		// Restore the original mapping so a failed update leaves the
		// index exactly as it was found.
		ix.tree.Insert(oldKey, id)
		return errors.Wrapf(ErrDuplicateKey, "update: %v", err)
	}
	return nil
}

// Contains reports whether key has an entry in the index.
func (ix *Index[K, R]) Contains(key K) bool {
	return len(ix.tree.Find(key)) > 0
}

// Find returns the record stored for key, if any.
func (ix *Index[K, R]) Find(key K) (R, bool) {
	ids := ix.tree.Find(key)
	if len(ids) == 0 {
		var zero R
		return zero, false
	}
	return ix.records[ids[0]], true
}

// RangeSearch returns, in ascending key order, the records whose keys
// fall in [lo, hi].
func (ix *Index[K, R]) RangeSearch(lo, hi K) []R {
	ids := ix.tree.RangeSearch(lo, hi)
	out := make([]R, len(ids))
	for i, id := range ids {
		out[i] = ix.records[id]
	}
	return out
}

// FindIf returns, in ascending key order, every record satisfying pred.
func (ix *Index[K, R]) FindIf(pred func(R) bool) []R {
	ids := ix.tree.FindIf(func(_ K, id recordID) bool {
		return pred(ix.records[id])
	})
	out := make([]R, len(ids))
	for i, id := range ids {
		out[i] = ix.records[id]
	}
	return out
}

// GetRecord returns the record stored at id, the Go equivalent of the
// original's get_record(RecordId).
func (ix *Index[K, R]) GetRecord(id int) (R, bool) {
	if id < 0 || id >= len(ix.records) {
		var zero R
		return zero, false
	}
	return ix.records[id], true
}

// Size returns the number of entries in the index.
func (ix *Index[K, R]) Size() int {
	return ix.tree.Size()
}

// FillFactor forwards the underlying tree's FillFactor.
func (ix *Index[K, R]) FillFactor() float64 {
	return ix.tree.FillFactor()
}
