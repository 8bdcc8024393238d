package etree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_classify(t *testing.T) {
	child := func() *node[int, int] { return newNode(0, 0, roleLeftChild) }

	tests := []struct {
		name string
		n    *node[int, int]
		want childKind
	}{
		{
			name: "leaf",
			n:    &node[int, int]{},
			want: kindLeaf,
		},
		{
			name: "single left",
			n:    &node[int, int]{left: child()},
			want: kindSingleLeft,
		},
		{
			name: "single right",
			n:    &node[int, int]{right: child()},
			want: kindSingleRight,
		},
		{
			name: "two children",
			n:    &node[int, int]{left: child(), right: child()},
			want: kindTwoChildren,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.n))
		})
	}
}

func Test_node_rightmost(t *testing.T) {
	n := newNode(10, "a", roleRoot)
	assert.Same(t, n, n.rightmost())

	n.left = newNode(5, "b", roleLeftChild)
	assert.Same(t, n, n.rightmost())

	n.right = newNode(20, "c", roleRightChild)
	n.right.right = newNode(30, "d", roleRightChild)
	n.right.right.left = newNode(25, "e", roleLeftChild)
	assert.Equal(t, 30, n.rightmost().key)
}

func Test_role_String(t *testing.T) {
	assert.Equal(t, "root", roleRoot.String())
	assert.Equal(t, "left", roleLeftChild.String())
	assert.Equal(t, "right", roleRightChild.String())
	assert.Equal(t, "unknown", role(9).String())
}

func Test_childKind_String(t *testing.T) {
	assert.Equal(t, "leaf", kindLeaf.String())
	assert.Equal(t, "two children", kindTwoChildren.String())
	assert.Equal(t, "unknown", childKind(9).String())
}
