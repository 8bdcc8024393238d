package etree

import (
	"cmp"
)

// Tree is an ordered key-value container backed by an unbalanced binary
// search tree.
//
// Keys are ordered by a three-way compare function: every key in the left
// subtree of a node compares less than the node's key, and every key in the
// right subtree compares greater. Inserting an existing key overwrites its
// value in place.
//
// Tree is not safe for concurrent use, callers must serialize access. All
// operations walk the tree iteratively, so a degenerate tree costs O(n) time
// but never deep recursion.
type Tree[K, V any] struct {
	root    *node[K, V]
	size    int
	compare func(a, b K) int

	opt *options
}

// New creates an empty tree for keys with a natural order.
func New[K cmp.Ordered, V any](options ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], options...)
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b. It panics if compare is nil.
func NewFunc[K, V any](compare func(a, b K) int, options ...Option) *Tree[K, V] {
	if compare == nil {
		panic("etree: nil compare function")
	}

	opt := defaultOptions()
	for _, o := range options {
		o.apply(opt)
	}

	return &Tree[K, V]{
		root:    nil,
		size:    0,
		compare: compare,
		opt:     opt,
	}
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Find returns the value stored for key and true, or the zero value and
// false if key is not present.
func (t *Tree[K, V]) Find(key K) (value V, ok bool) {
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c == 0:
			return n.value, true
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	return value, false
}

// Insert stores value for key. If key is already present its value is
// overwritten and the shape of the tree does not change.
func (t *Tree[K, V]) Insert(key K, value V) {
	slot, r := &t.root, roleRoot
	for *slot != nil {
		n := *slot
		c := t.compare(key, n.key)
		switch {
		case c == 0:
			n.value = value
			return
		case c < 0:
			slot, r = &n.left, roleLeftChild
		default:
			slot, r = &n.right, roleRightChild
		}
	}

	*slot = newNode(key, value, r)
	t.size++
}

// Delete removes key from the tree. It returns ErrKeyNotFound and leaves the
// tree untouched if key is not present.
func (t *Tree[K, V]) Delete(key K) error {
	slot := t.search(key)
	if *slot == nil {
		return ErrKeyNotFound
	}

	t.unlink(slot)
	t.size--

	return nil
}

// search returns the slot which owns the node holding key, or the empty slot
// where such a node would be inserted.
func (t *Tree[K, V]) search(key K) **node[K, V] {
	slot := &t.root
	for *slot != nil {
		n := *slot
		c := t.compare(key, n.key)
		switch {
		case c == 0:
			return slot
		case c < 0:
			slot = &n.left
		default:
			slot = &n.right
		}
	}

	return slot
}

// unlink removes the node owned by slot and repairs the tree so that every
// key of its subtrees stays reachable. The replacement always takes over the
// removed node's role, since it now lives in the same slot.
func (t *Tree[K, V]) unlink(slot **node[K, V]) {
	n := *slot
	kind := classify(n)

	switch kind {
	case kindLeaf:
		*slot = nil
	case kindSingleLeft:
		n.left.role = n.role
		*slot = n.left
	case kindSingleRight:
		n.right.role = n.role
		*slot = n.right
	case kindTwoChildren:
		// promote the left subtree, every key in it is less than every key of
		// the right subtree, so the right subtree hangs off its last node.
		promoted := n.left
		promoted.role = n.role
		last := promoted.rightmost()
		last.right = n.right
		n.right.role = roleRightChild
		*slot = promoted
		t.opt.logger.Log("delete %v (%s): promoted %v, right subtree %v attached under %v",
			n.key, n.role, promoted.key, n.right.key, last.key)
	}

	if kind != kindTwoChildren {
		t.opt.logger.Log("delete %v (%s): %s", n.key, n.role, kind)
	}

	n.left, n.right = nil, nil
}
