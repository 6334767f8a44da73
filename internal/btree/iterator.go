package btree

// Iterator walks a Tree's entries in ascending key order via the leaf
// linked list, mirroring the teacher's BPlusIterator. An iterator is a
// snapshot of a position: it is not synchronized with the tree, and a
// mutation to the tree after an iterator is obtained invalidates it, the
// same caveat the teacher documents for its own iterator.
type Iterator[K any, V any] struct {
	leaf *node[K, V]
	idx  int
}

// ConstIterator is the read-only view of Iterator. Go has no const
// qualifier to distinguish the two at the type level, so both iterator
// kinds share one implementation; callers that want read-only semantics
// simply don't call mutating Tree methods while holding one.
type ConstIterator[K any, V any] struct {
	Iterator[K, V]
}

// Begin returns an iterator positioned at the first entry in ascending
// key order.
func (t *Tree[K, V]) Begin() *Iterator[K, V] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &Iterator[K, V]{leaf: t.leftmostLeaf(), idx: 0}
}

// End returns an iterator positioned past the last entry. Comparing
// against End() is the idiomatic way to detect exhaustion, matching the
// teacher's begin/end iterator pair.
func (t *Tree[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{}
}

// Valid reports whether the iterator is positioned at a real entry.
func (it *Iterator[K, V]) Valid() bool {
	return it.leaf != nil && it.idx < len(it.leaf.keys)
}

// KeyValue returns the key and value at the iterator's current position.
// It panics with ErrIteratorOutOfRange if the iterator is not Valid.
func (it *Iterator[K, V]) KeyValue() (K, V) {
	if !it.Valid() {
		panic(ErrIteratorOutOfRange)
	}
	return it.leaf.keys[it.idx], it.leaf.values[it.idx]
}

// Next advances the iterator to the following entry, crossing into the
// next leaf via the leaf link when the current leaf is exhausted.
func (it *Iterator[K, V]) Next() {
	if it.leaf == nil {
		return
	}
	it.idx++
	for it.leaf != nil && it.idx >= len(it.leaf.keys) {
		it.leaf = it.leaf.next
		it.idx = 0
	}
}

// Equal reports whether it and other are positioned at the same entry.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	if !it.Valid() && !other.Valid() {
		return true
	}
	return it.leaf == other.leaf && it.idx == other.idx
}

// All materializes every key/value pair in ascending order. Convenience
// wrapper around Begin/Next for callers that don't need early exit.
func (t *Tree[K, V]) All() []struct {
	Key K
	Val V
} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []struct {
		Key K
		Val V
	}
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = leaf.next {
		for i, k := range leaf.keys {
			out = append(out, struct {
				Key K
				Val V
			}{k, leaf.values[i]})
		}
	}
	return out
}

// FilterIterator adapts an Iterator to skip entries that don't satisfy a
// predicate, the same filter-adapter shape the teacher layers over its
// own iterator for conditional scans.
type FilterIterator[K any, V any] struct {
	it   *Iterator[K, V]
	pred func(K, V) bool
}

// Filter returns a FilterIterator starting at the first entry (if any)
// satisfying pred.
func (t *Tree[K, V]) Filter(pred func(K, V) bool) *FilterIterator[K, V] {
	fi := &FilterIterator[K, V]{it: t.Begin(), pred: pred}
	fi.advanceToMatch()
	return fi
}

func (fi *FilterIterator[K, V]) advanceToMatch() {
	for fi.it.Valid() {
		k, v := fi.it.KeyValue()
		if fi.pred(k, v) {
			return
		}
		fi.it.Next()
	}
}

// Valid reports whether the filter iterator is positioned at a matching
// entry.
func (fi *FilterIterator[K, V]) Valid() bool {
	return fi.it.Valid()
}

// KeyValue returns the key and value at the filter iterator's current
// position.
func (fi *FilterIterator[K, V]) KeyValue() (K, V) {
	return fi.it.KeyValue()
}

// Next advances to the next entry satisfying the predicate.
func (fi *FilterIterator[K, V]) Next() {
	fi.it.Next()
	fi.advanceToMatch()
}
