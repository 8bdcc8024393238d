package etree

// role records how a node is owned: by the tree's root slot, or by the left
// or right slot of its parent.
type role uint8

const (
	roleRoot role = iota
	roleLeftChild
	roleRightChild
)

func (r role) String() string {
	switch r {
	case roleRoot:
		return "root"
	case roleLeftChild:
		return "left"
	case roleRightChild:
		return "right"
	default:
		return "unknown"
	}
}

// childKind classifies a node by which of its child slots are occupied.
type childKind uint8

const (
	kindLeaf childKind = iota
	kindSingleLeft
	kindSingleRight
	kindTwoChildren
)

func (k childKind) String() string {
	switch k {
	case kindLeaf:
		return "leaf"
	case kindSingleLeft:
		return "single left child"
	case kindSingleRight:
		return "single right child"
	case kindTwoChildren:
		return "two children"
	default:
		return "unknown"
	}
}

// node is a single key value pair in the tree. A node exclusively owns its
// left and right subtrees, it never points back to its parent.
type node[K, V any] struct {
	key   K
	value V
	role  role

	left  *node[K, V]
	right *node[K, V]
}

func newNode[K, V any](key K, value V, r role) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
		role:  r,
	}
}

func classify[K, V any](n *node[K, V]) childKind {
	switch {
	case n.left == nil && n.right == nil:
		return kindLeaf
	case n.right == nil:
		return kindSingleLeft
	case n.left == nil:
		return kindSingleRight
	default:
		return kindTwoChildren
	}
}

// rightmost returns the last node of the subtree rooted at n, which is the
// node holding the greatest key and has no right child.
func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}

	return n
}
