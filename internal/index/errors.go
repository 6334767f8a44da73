package index

import "github.com/pkg/errors"

var (
	// ErrDuplicateKey is returned by Insert when a record's extracted key
	// already exists in the index.
	ErrDuplicateKey = errors.New("index: duplicate key")

	// ErrKeyNotFound is returned by Update when the given key has no
	// entry in the index. Remove of an absent key is a silent no-op.
	ErrKeyNotFound = errors.New("index: key not found")
)
