// Package btree implements a generic, in-memory, concurrent B+ tree used
// as the attribute index underlying the index.Index and
// index.CompositeIndex wrappers.
//
// # Overview
//
// The tree maps ordered keys to record identifiers. It supports:
//
//   - O(log n) point lookup, insertion, and deletion
//   - Range and predicate scans, plus prefix scans for string/byte keys
//   - Efficient ordered iteration via a leaf-linked list
//   - Deep copy and move of whole trees
//
// # Node Structure
//
// Every node carries its own keys, a leaf flag, and either a values
// slice (leaf) or a children slice (internal node). Leaves additionally
// carry a forward-only, non-owning link to the next leaf in ascending key
// order.
//
// # Usage
//
//	tree := btree.New[string, int](btree.OrderedCompare[string]())
//	err := tree.Insert("uid=alice", 42)
//	values := tree.Find("uid=alice")
//
// # Concurrency
//
// All operations acquire the tree-level lock: readers shared, mutators
// exclusive. Iterators hold no locks and are invalidated by any mutation
// that happens after they were obtained.
package btree
