package btree

import "sync"

// node is the single physical node representation for both leaves and
// internal nodes, distinguished by the leaf flag — the same shape the
// tree's C++ origin uses (a single Node struct with an is_leaf_ flag)
// rather than two Go types, which keeps split/merge/redistribute
// symmetric between the two kinds.
//
// For a leaf node: keys[i] corresponds to values[i], and next links to
// the following leaf in ascending key order (nil for the last leaf).
// For an internal node: keys[i] separates children[i] from children[i+1],
// so len(children) == len(keys)+1, and next/values are unused.
//
// mu is reserved for a future finer-grained locking scheme (crabbing);
// the current design takes only the tree-level lock on the critical
// path, per the concurrency model in the package doc.
type node[K any, V any] struct {
	mu sync.RWMutex

	leaf bool

	keys   []K
	values []V // leaf only

	children []*node[K, V] // internal only
	next     *node[K, V]   // leaf only; non-owning ordering link
}

func newLeaf[K any, V any]() *node[K, V] {
	return &node[K, V]{leaf: true}
}

func newInternal[K any, V any]() *node[K, V] {
	return &node[K, V]{leaf: false}
}

func minKeys(order int) int {
	return (order - 1) / 2
}

// size returns the number of keys held by the node.
func (n *node[K, V]) size() int {
	return len(n.keys)
}

// isFull reports whether the node has reached the maximum key count for
// the given order and must split on the next insertion.
func (n *node[K, V]) isFull(order int) bool {
	return len(n.keys) >= order-1
}

// isUnderflow reports whether a non-root node has fewer than the minimum
// key count for the given order.
func (n *node[K, V]) isUnderflow(order int) bool {
	return len(n.keys) < minKeys(order)
}

// canLend reports whether the node has more than the minimum key count
// and can spare one key to an underflowing sibling.
func (n *node[K, V]) canLend(order int) bool {
	return len(n.keys) > minKeys(order)
}

// findIndex performs a binary search for key among the node's keys.
// It returns the index at which key would be inserted to keep keys
// sorted, and whether an exact match was found at that index.
func (n *node[K, V]) findIndex(key K, cmp CompareFunc[K]) (int, bool) {
	lo, hi := 0, len(n.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		c := cmp(n.keys[mid], key)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// childIndexForKey returns the index of the child that should hold key.
// It finds the smallest separator index i such that key < keys[i]; if no
// such separator exists, it returns len(keys), the last child. Only
// valid on internal nodes.
func (n *node[K, V]) childIndexForKey(key K, cmp CompareFunc[K]) int {
	lo, hi := 0, len(n.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if cmp(key, n.keys[mid]) < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// insertLeafAt inserts a key/value pair at index i, shifting later
// entries right. Only valid on leaf nodes.
func (n *node[K, V]) insertLeafAt(i int, key K, val V) {
	var zeroK K
	var zeroV V
	n.keys = append(n.keys, zeroK)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key

	n.values = append(n.values, zeroV)
	copy(n.values[i+1:], n.values[i:])
	n.values[i] = val
}

// removeLeafAt removes and returns the key/value pair at index i,
// shifting later entries left. Only valid on leaf nodes.
func (n *node[K, V]) removeLeafAt(i int) (K, V) {
	key := n.keys[i]
	val := n.values[i]
	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	n.values = append(n.values[:i], n.values[i+1:]...)
	return key, val
}

// insertInternalAt inserts a separator key at index i and its right
// child at index i+1, shifting later entries right. Only valid on
// internal nodes.
func (n *node[K, V]) insertInternalAt(i int, key K, rightChild *node[K, V]) {
	var zeroK K
	n.keys = append(n.keys, zeroK)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key

	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = rightChild
}

// prependInternal inserts a separator key and its left child at the
// front of the node, shifting existing entries right. Only valid on
// internal nodes; used when redistributing a key from a left sibling.
func (n *node[K, V]) prependInternal(key K, leftChild *node[K, V]) {
	var zeroK K
	n.keys = append(n.keys, zeroK)
	copy(n.keys[1:], n.keys[:len(n.keys)-1])
	n.keys[0] = key

	n.children = append(n.children, nil)
	copy(n.children[1:], n.children[:len(n.children)-1])
	n.children[0] = leftChild
}

// childIndex returns the position of child within n.children, comparing
// by pointer identity, or -1 if not found. This mirrors the parent
// lookup described for structural operations: comparing child pointers
// by identity rather than re-deriving position from keys.
func (n *node[K, V]) childIndex(child *node[K, V]) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}
