package bbox

import "errors"

var (
	// ErrCorruptCorners signals a box whose min corner exceeds its max corner.
	ErrCorruptCorners = errors.New("bbox: min corner exceeds max corner")
)
