package aabbtree

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/aabbtree/bbox"
)

// treeNode is the closed node variant type. The only implementations are
// leafNode and innerNode; all tree algorithms match the variants explicitly.
type treeNode[U any] interface {
	bounds() bbox.Box
	height() int
	balance() int
}

// A leafNode carries one client payload and the exact box it was inserted
// with. Its height is 1 and its balance is 0.
type leafNode[U any] struct {
	box  bbox.Box
	data U
}

func (l *leafNode[U]) bounds() bbox.Box { return l.box }
func (l *leafNode[U]) height() int      { return 1 }
func (l *leafNode[U]) balance() int     { return 0 }

// An innerNode carries no payload. It owns exactly two subtrees and caches
// the merge of their bounds and its height. Both caches are re-derived
// bottom-up after every structural change below the node.
type innerNode[U any] struct {
	box         bbox.Box
	left, right treeNode[U]
	hgt         int
}

func newInnerNode[U any](left, right treeNode[U]) *innerNode[U] {
	assert(left != nil && right != nil, "inner node requires two children")
	n := &innerNode[U]{left: left, right: right}
	n.update()
	return n
}

func (n *innerNode[U]) bounds() bbox.Box { return n.box }
func (n *innerNode[U]) height() int      { return n.hgt }

// balance is the signed height difference of the subtrees; positive means
// the right subtree is taller.
func (n *innerNode[U]) balance() int {
	return n.right.height() - n.left.height()
}

// update re-derives the cached bounds and height from the children.
func (n *innerNode[U]) update() {
	n.box = n.left.bounds().MergedWith(n.right.bounds())
	n.hgt = 1 + max(n.left.height(), n.right.height())
}

// volumeIncrease is the greedy descent metric: the volume growth of bounds
// when box is merged into it.
func volumeIncrease(bounds, box bbox.Box) float64 {
	return bounds.MergedWith(box).Volume() - bounds.Volume()
}

// insertNode inserts box/data into the subtree rooted at n and returns the
// subtree's new root.
//
// An inner node keeps its identity: it descends into whichever child grows
// the least (ties go to the left candidate), re-derives its caches and
// rebalances. A leaf gives up its position in the parent slot and returns a
// fresh inner node over itself and a new leaf for box/data.
func (t *Tree[U]) insertNode(n treeNode[U], box bbox.Box, data U) treeNode[U] {
	switch n := n.(type) {
	case *leafNode[U]:
		return newInnerNode[U](n, &leafNode[U]{box: box, data: data})
	case *innerNode[U]:
		if volumeIncrease(n.left.bounds(), box) <= volumeIncrease(n.right.bounds(), box) {
			n.left = t.insertNode(n.left, box, data)
		} else {
			n.right = t.insertNode(n.right, box, data)
		}
		n.update()
		t.rebalance(n)
		return n
	}
	panic("aabbtree: unknown node variant")
}

// A removal is the result of removeNode, propagated bottom-up. A single
// nullable node pointer cannot distinguish "not found" from "the matched
// leaf was this very child", so the outcome is explicit.
type removal[U any] struct {
	kind removalKind
	node treeNode[U] // replacement subtree root, set for removeReplaced
}

type removalKind uint8

const (
	// removeNotFound leaves the subtree untouched.
	removeNotFound removalKind = iota
	// removeReplaced carries the subtree's (possibly unchanged) new root.
	removeReplaced
	// removedLeaf means the matched leaf was the subtree root itself; the
	// parent promotes the sibling into its own slot.
	removedLeaf
)

// removeNode removes the leaf matching box/data from the subtree rooted at n.
// The box only prunes the search; the equality predicate decides the match.
func (t *Tree[U]) removeNode(n treeNode[U], box bbox.Box, data U) removal[U] {
	switch n := n.(type) {
	case *leafNode[U]:
		if t.eq(data, n.data) {
			return removal[U]{kind: removedLeaf}
		}
		return removal[U]{kind: removeNotFound}
	case *innerNode[U]:
		if res, found := t.removeFromChild(n, &n.left, &n.right, box, data); found {
			return res
		}
		if res, found := t.removeFromChild(n, &n.right, &n.left, box, data); found {
			return res
		}
		return removal[U]{kind: removeNotFound}
	}
	panic("aabbtree: unknown node variant")
}

// removeFromChild attempts the removal through one child slot of n.
//
// If the child's bounds do not contain box, no leaf below the child can
// match and the search is pruned. If the matched leaf is the child itself,
// the sibling is promoted to take n's place in n's parent; n and the matched
// leaf drop out of the tree. A deeper match replaces the child slot with the
// subtree's new root and re-derives n's caches.
func (t *Tree[U]) removeFromChild(n *innerNode[U], child, sibling *treeNode[U], box bbox.Box, data U) (removal[U], bool) {
	if !(*child).bounds().Contains(box) {
		return removal[U]{}, false
	}
	switch res := t.removeNode(*child, box, data); res.kind {
	case removedLeaf:
		// n collapses: the sibling takes over n's slot in the parent.
		return removal[U]{kind: removeReplaced, node: *sibling}, true
	case removeReplaced:
		*child = res.node
		n.update()
		t.rebalance(n)
		return removal[U]{kind: removeReplaced, node: n}, true
	}
	return removal[U]{}, false
}

// rebalance restores |balance| <= 1 for n by relocating leaves from the
// taller subtree into the shorter one. Correction is purely local: ancestors
// are re-checked by the insert/remove recursion on its way back up, never
// from here.
//
// A single relocation almost always suffices, since only one insert or
// removal happened below n. It is not guaranteed to: the relocated leaf may
// leave the taller side's height unchanged while failing to grow the shorter
// side. The loop covers those shapes. It terminates because every relocation
// moves a leaf out of the taller subtree, whose height cannot survive an
// emptying leaf count.
func (t *Tree[U]) rebalance(n *innerNode[U]) {
	for {
		switch b := n.balance(); {
		case b < -1:
			t.relocateLeaf(&n.left, &n.right)
		case b > 1:
			t.relocateLeaf(&n.right, &n.left)
		default:
			return
		}
		n.update()
	}
}

// relocateLeaf moves the rebalance candidate from the higher subtree into
// the lower one.
func (t *Tree[U]) relocateLeaf(higher, lower *treeNode[U]) {
	candidate := rebalanceCandidate[U](*higher, (*lower).bounds())
	box, data := candidate.box, candidate.data
	T().Debugf("aabbtree: rebalancing, relocating leaf %v", box)

	res := t.removeNode(*higher, box, data)
	// higher is at least two levels taller than lower, so removing a leaf
	// from it always yields a replacement root.
	assert(res.kind == removeReplaced, "rebalance candidate not found in taller subtree")
	*higher = res.node
	*lower = t.insertNode(*lower, box, data)
}

// rebalanceCandidate finds the leaf under n whose relocation would grow the
// given bounds the least. The winner of the pairwise least-growth comparison
// is propagated up from the leaves; the search is depth-first greedy, not a
// global minimization.
func rebalanceCandidate[U any](n treeNode[U], bounds bbox.Box) *leafNode[U] {
	switch n := n.(type) {
	case *leafNode[U]:
		return n
	case *innerNode[U]:
		leftCandidate := rebalanceCandidate[U](n.left, bounds)
		rightCandidate := rebalanceCandidate[U](n.right, bounds)
		if volumeIncrease(leftCandidate.box, bounds) <= volumeIncrease(rightCandidate.box, bounds) {
			return leftCandidate
		}
		return rightCandidate
	}
	panic("aabbtree: unknown node variant")
}
