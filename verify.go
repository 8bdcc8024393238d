package etree

import (
	"github.com/pkg/errors"
)

// bound is an exclusive key limit inherited from an ancestor.
type bound[K any] struct {
	key K
	set bool
}

type verifyFrame[K, V any] struct {
	n      *node[K, V]
	want   role
	lo, hi bound[K]
}

// Verify walks the whole tree and checks that every key lies strictly
// between the keys of the ancestors it descends from, that every node's role
// matches the slot owning it, and that Len matches the number of nodes.
func (t *Tree[K, V]) Verify() error {
	if t.root == nil {
		if t.size != 0 {
			return errors.Wrapf(ErrSizeMismatch, "empty tree reports %d keys", t.size)
		}
		return nil
	}

	count := 0
	stack := make([]verifyFrame[K, V], 0, 32)
	stack = append(stack, verifyFrame[K, V]{n: t.root, want: roleRoot})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if f.n.role != f.want {
			return errors.Wrapf(ErrRoleMismatch, "key %v has role %s, owned by %s slot", f.n.key, f.n.role, f.want)
		}
		if f.lo.set && t.compare(f.n.key, f.lo.key) <= 0 {
			return errors.Wrapf(ErrOrderViolated, "key %v is not greater than ancestor %v", f.n.key, f.lo.key)
		}
		if f.hi.set && t.compare(f.n.key, f.hi.key) >= 0 {
			return errors.Wrapf(ErrOrderViolated, "key %v is not less than ancestor %v", f.n.key, f.hi.key)
		}

		self := bound[K]{key: f.n.key, set: true}
		if f.n.right != nil {
			stack = append(stack, verifyFrame[K, V]{n: f.n.right, want: roleRightChild, lo: self, hi: f.hi})
		}
		if f.n.left != nil {
			stack = append(stack, verifyFrame[K, V]{n: f.n.left, want: roleLeftChild, lo: f.lo, hi: self})
		}
	}

	if count != t.size {
		return errors.Wrapf(ErrSizeMismatch, "reachable %d, recorded %d", count, t.size)
	}

	return nil
}
