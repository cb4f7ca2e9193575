package aabbtree

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/aabbtree/bbox"
)

// EqFunc is a binary equality predicate over payload values. The tree uses
// it exclusively during removal to recognize the leaf to delete among
// candidates whose box already passed the containment pre-filter.
type EqFunc[U any] func(a, b U) bool

// Tree is a dynamic, height-balanced AABB tree over payloads of type U.
//
// A tree created by New or NewFunc is empty. Inserting the same box/payload
// pair twice creates two independent leaves; removal then deletes an
// arbitrary matching leaf per call.
//
// A Tree must not be mutated concurrently, see the package documentation.
type Tree[U any] struct {
	root treeNode[U]
	eq   EqFunc[U]
}

// New creates an empty tree with value equality over payloads.
func New[U comparable]() *Tree[U] {
	return NewFunc[U](func(a, b U) bool { return a == b })
}

// NewFunc creates an empty tree with a client-supplied equality predicate
// over payloads.
func NewFunc[U any](eq EqFunc[U]) *Tree[U] {
	assert(eq != nil, "aabbtree: equality predicate must not be nil")
	return &Tree[U]{eq: eq}
}

// Insert inserts a box and its payload into the tree.
//
// Duplicate box/payload pairs are accepted and create distinct leaves; the
// tree enforces no uniqueness.
func (t *Tree[U]) Insert(bounds bbox.Box, data U) {
	if t.root == nil {
		t.root = &leafNode[U]{box: bounds, data: data}
	} else {
		t.root = t.insertNode(t.root, bounds, data)
	}
	assert(abs(t.root.balance()) < 2, "aabbtree: tree out of balance after insert")
}

// Remove removes the leaf inserted with the given box whose payload matches
// data under the tree's equality predicate. It reports whether such a leaf
// was found; the tree is unchanged when it reports false.
//
// A box not contained in the root bounds cannot match any leaf and is
// rejected without descending the tree.
func (t *Tree[U]) Remove(bounds bbox.Box, data U) bool {
	if t.root == nil {
		return false
	}
	if !t.root.bounds().Contains(bounds) {
		return false
	}
	switch res := t.removeNode(t.root, bounds, data); res.kind {
	case removedLeaf:
		t.root = nil
		return true
	case removeReplaced:
		t.root = res.node
		assert(abs(t.root.balance()) < 2, "aabbtree: tree out of balance after remove")
		return true
	}
	return false
}

// Empty reports whether the tree has no leaves.
func (t *Tree[U]) Empty() bool {
	return t == nil || t.root == nil
}

// Height returns the length of the longest path from the root to a leaf.
// An empty tree has height 0, a sole leaf root height 1.
func (t *Tree[U]) Height() int {
	if t.Empty() {
		return 0
	}
	return t.root.height()
}

// Bounds returns the merged bounds of all leaves in the tree.
//
// Calling Bounds on an empty tree is a usage error; callers are expected to
// check Empty first. The call degrades gracefully by returning the bbox.NaN
// sentinel rather than panicking.
func (t *Tree[U]) Bounds() bbox.Box {
	if t.Empty() {
		return bbox.NaN
	}
	return t.root.bounds()
}

// Count returns the number of leaves in the tree. It runs in O(n).
func (t *Tree[U]) Count() int {
	if t.Empty() {
		return 0
	}
	return countLeaves[U](t.root)
}

func countLeaves[U any](n treeNode[U]) int {
	switch n := n.(type) {
	case *leafNode[U]:
		return 1
	case *innerNode[U]:
		return countLeaves[U](n.left) + countLeaves[U](n.right)
	}
	panic("aabbtree: unknown node variant")
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
