package bbox

import (
	"fmt"
	"math"
)

// Vec is a point in 3-D space.
type Vec [3]float64

// NaNVec is a vector with all components set to NaN. It is used as a corner
// of the sentinel box returned for queries on empty trees.
var NaNVec = Vec{math.NaN(), math.NaN(), math.NaN()}

// IsNaN reports whether any component of v is NaN.
func (v Vec) IsNaN() bool {
	return math.IsNaN(v[0]) || math.IsNaN(v[1]) || math.IsNaN(v[2])
}

func (v Vec) String() string {
	return fmt.Sprintf("%g %g %g", v[0], v[1], v[2])
}

// Box is an axis-aligned bounding box, represented by its min and max corners.
//
// Boxes are immutable values: operations return new boxes.
type Box struct {
	Min, Max Vec
}

// NaN is the sentinel box with all corners set to NaN. It is recognizably
// invalid and will never compare equal to any box, including itself.
var NaN = Box{Min: NaNVec, Max: NaNVec}

// New creates a box from two corners.
//
// Returns an error if min exceeds max in any dimension. NaN corners are
// accepted, so the sentinel box remains constructible.
func New(min, max Vec) (Box, error) {
	for i := range min {
		if min[i] > max[i] {
			return Box{}, fmt.Errorf("%w: min %v, max %v", ErrCorruptCorners, min, max)
		}
	}
	return Box{Min: min, Max: max}, nil
}

// Must creates a box from two corners and panics on invalid input.
// It is intended for literals and tests.
func Must(min, max Vec) Box {
	b, err := New(min, max)
	if err != nil {
		panic(err.Error())
	}
	return b
}

// IsNaN reports whether b is the sentinel box (any corner component NaN).
func (b Box) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

// Contains reports whether other is fully enclosed by b. Enclosure is
// non-strict: a box contains itself.
func (b Box) Contains(other Box) bool {
	for i := range b.Min {
		if other.Min[i] < b.Min[i] || other.Max[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether b and other share at least one point.
func (b Box) Intersects(other Box) bool {
	for i := range b.Min {
		if b.Max[i] < other.Min[i] || other.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// MergedWith returns the smallest box enclosing both b and other.
//
// Volume is monotonic under merge: the volume of the merged box is never
// smaller than the volume of either input.
func (b Box) MergedWith(other Box) Box {
	var merged Box
	for i := range b.Min {
		merged.Min[i] = math.Min(b.Min[i], other.Min[i])
		merged.Max[i] = math.Max(b.Max[i], other.Max[i])
	}
	return merged
}

// Size returns the edge lengths of b.
func (b Box) Size() Vec {
	var size Vec
	for i := range b.Min {
		size[i] = b.Max[i] - b.Min[i]
	}
	return size
}

// Center returns the center point of b.
func (b Box) Center() Vec {
	var c Vec
	for i := range b.Min {
		c[i] = (b.Min[i] + b.Max[i]) / 2
	}
	return c
}

// Volume returns the volume of b.
func (b Box) Volume() float64 {
	size := b.Size()
	return size[0] * size[1] * size[2]
}

func (b Box) String() string {
	return fmt.Sprintf("[ (%s) (%s) ]", b.Min, b.Max)
}
