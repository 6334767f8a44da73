package compositekey

// Key is an ordered tuple of Components, compared lexicographically:
// the first component that differs between two keys decides the order.
// This is the fixed-arity C++ CompositeKey<Keys...> template expressed
// as a slice, since Go generics cannot parameterize a type over an
// arbitrary-length list of distinct component types.
type Key []Component

// New builds a Key from its components in index order.
func New(components ...Component) Key {
	k := make(Key, len(components))
	copy(k, components)
	return k
}

// Len returns the number of components in the key.
func (k Key) Len() int {
	return len(k)
}

// At returns the component at index i, the Go equivalent of the
// original's get<I>().
func (k Key) At(i int) Component {
	return k[i]
}

// Less reports whether k sorts before other. Keys being compared must
// have matching component kinds at every shared position; mismatched
// kinds panic via Component.CompareTo's type assertion. When one key is
// a prefix of the other, the shorter key sorts first.
func (k Key) Less(other Key) bool {
	return k.compare(other) < 0
}

// Equal reports whether k and other have identical components.
func (k Key) Equal(other Key) bool {
	return k.compare(other) == 0
}

func (k Key) compare(other Key) int {
	n := k.Len()
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if c := k[i].CompareTo(other[i]); c != 0 {
			return c
		}
	}
	return len(k) - len(other)
}

// MatchesPrefix reports whether the first n components of k equal the
// first n components of other, the analogue of the original's
// matches_prefix<N>().
func (k Key) MatchesPrefix(other Key, n int) bool {
	if n > k.Len() || n > other.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if k[i].CompareTo(other[i]) != 0 {
			return false
		}
	}
	return true
}

// Compare returns a three-way ordering between k and other, suitable for
// use as a btree.CompareFunc[Key] when building a Tree keyed by Key.
func Compare(a, b Key) int {
	return a.compare(b)
}
