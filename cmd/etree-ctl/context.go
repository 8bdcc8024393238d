package main

import (
	"context"

	etree "github.com/yeqown/enchanted-tree"
)

type treeContextKeyType uint

var treeContextKey treeContextKeyType = 0

func contextWithTree(ctx context.Context, tree *etree.Tree[string, string]) context.Context {
	return context.WithValue(ctx, treeContextKey, tree)
}

func treeFromContext(ctx context.Context) *etree.Tree[string, string] {
	v := ctx.Value(treeContextKey)
	if v == nil {
		panic("no tree in context")
	}

	return v.(*etree.Tree[string, string])
}
