package aabbtree

import "errors"

var (
	// ErrInvariantViolated signals a corrupted tree structure detected by Check.
	// It indicates an implementation bug, not a usage error.
	ErrInvariantViolated = errors.New("aabbtree: structural invariant violated")
)
