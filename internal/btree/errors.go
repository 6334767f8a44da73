package btree

import "github.com/pkg/errors"

// Tree errors.
var (
	// ErrDuplicateKey is returned by Insert when the key already exists.
	// The tree never silently updates on insert; callers that want
	// upsert semantics must Remove then Insert.
	ErrDuplicateKey = errors.New("btree: duplicate key")

	// ErrIteratorOutOfRange is a programmer error: dereferencing an
	// iterator positioned past the end of the tree.
	ErrIteratorOutOfRange = errors.New("btree: iterator out of range")

	// ErrOutOfRange is a programmer error: an indexed leaf read past the
	// leaf's populated size.
	ErrOutOfRange = errors.New("btree: index out of range")
)
