package etree

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xlab/treeprint"
)

type printFrame[K, V any] struct {
	n      *node[K, V]
	branch treeprint.Tree
}

// Print writes the shape of the tree to w, one node per line. Children are
// prefixed with "L:" or "R:". It is meant for debugging, the layout is not
// stable across versions.
func (t *Tree[K, V]) Print(w io.Writer) error {
	if _, err := io.WriteString(w, t.String()); err != nil {
		return errors.Wrap(err, "print tree")
	}

	return nil
}

// String renders the tree the same way Print does.
func (t *Tree[K, V]) String() string {
	if t.root == nil {
		return "(empty)\n"
	}

	root := treeprint.NewWithRoot(t.label(t.root))
	stack := []printFrame[K, V]{{n: t.root, branch: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range [2]*node[K, V]{f.n.left, f.n.right} {
			if child == nil {
				continue
			}
			if classify(child) == kindLeaf {
				f.branch.AddNode(t.label(child))
				continue
			}
			stack = append(stack, printFrame[K, V]{n: child, branch: f.branch.AddBranch(t.label(child))})
		}
	}

	return root.String()
}

func (t *Tree[K, V]) label(n *node[K, V]) string {
	var side string
	switch n.role {
	case roleLeftChild:
		side = "L: "
	case roleRightChild:
		side = "R: "
	}

	if !t.opt.printValues {
		return fmt.Sprintf("%s%v", side, n.key)
	}

	return fmt.Sprintf("%s%v=%v", side, n.key, n.value)
}
