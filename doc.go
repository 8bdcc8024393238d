// Package etree provides Tree, an in-memory ordered key-value container
// backed by an unbalanced binary search tree.
//
// The tree supports point lookup, insertion which overwrites the value of an
// existing key, and deletion which repairs the tree so that no subtree is
// lost. Nodes never point back to their parents: deletion tracks the slot
// that owns the node being removed, and each node only records whether it is
// the root, a left child or a right child.
//
//	t := etree.New[string, int]()
//	t.Insert("a", 1)
//	v, ok := t.Find("a") // 1, true
//	err := t.Delete("b") // ErrKeyNotFound
package etree
