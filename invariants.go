package aabbtree

import "fmt"

// Check validates the structural invariants of the whole tree:
//
//   - every inner node's bounds equals the merge of its children's bounds,
//   - every inner node's cached height equals 1 + max(child heights),
//   - every inner node's subtree heights differ by at most one level,
//   - every node is reachable from exactly one parent slot.
//
// An empty tree is valid. A non-nil error indicates an implementation bug in
// the mutation algorithms, never a usage error.
func (t *Tree[U]) Check() error {
	if t.Empty() {
		return nil
	}
	seen := make(map[treeNode[U]]bool)
	return checkNode[U](t.root, seen)
}

func checkNode[U any](n treeNode[U], seen map[treeNode[U]]bool) error {
	if n == nil {
		return fmt.Errorf("%w: nil child slot", ErrInvariantViolated)
	}
	if seen[n] {
		return fmt.Errorf("%w: node %v reachable from two parent slots", ErrInvariantViolated, n.bounds())
	}
	seen[n] = true
	inner, ok := n.(*innerNode[U])
	if !ok {
		return nil
	}
	if err := checkNode[U](inner.left, seen); err != nil {
		return err
	}
	if err := checkNode[U](inner.right, seen); err != nil {
		return err
	}
	if merged := inner.left.bounds().MergedWith(inner.right.bounds()); inner.box != merged {
		return fmt.Errorf("%w: cached bounds %v, children merge to %v", ErrInvariantViolated, inner.box, merged)
	}
	if h := 1 + max(inner.left.height(), inner.right.height()); inner.hgt != h {
		return fmt.Errorf("%w: cached height %d, children imply %d", ErrInvariantViolated, inner.hgt, h)
	}
	if b := inner.balance(); abs(b) > 1 {
		return fmt.Errorf("%w: node %v has balance %d", ErrInvariantViolated, inner.box, b)
	}
	return nil
}
