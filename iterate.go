package aabbtree

import (
	"iter"

	"github.com/npillmayer/aabbtree/bbox"
)

// RangeLeaf returns an iterator over all leaves in depth-first order,
// yielding each leaf's box and payload.
//
// The tree must not be mutated while iterating.
func (t *Tree[U]) RangeLeaf() iter.Seq2[bbox.Box, U] {
	return func(yield func(bbox.Box, U) bool) {
		if t.Empty() {
			return
		}
		walkLeaves[U](t.root, yield)
	}
}

func walkLeaves[U any](n treeNode[U], yield func(bbox.Box, U) bool) bool {
	switch n := n.(type) {
	case *leafNode[U]:
		return yield(n.box, n.data)
	case *innerNode[U]:
		return walkLeaves[U](n.left, yield) && walkLeaves[U](n.right, yield)
	}
	panic("aabbtree: unknown node variant")
}

// EachLeaf visits all leaves in depth-first order.
//
// The callback receives each leaf's box and payload. Iteration stops at the
// first callback error and returns that error to the caller.
func (t *Tree[U]) EachLeaf(f func(bbox.Box, U) error) error {
	var err error
	for box, data := range t.RangeLeaf() {
		if err = f(box, data); err != nil {
			break
		}
	}
	return err
}
