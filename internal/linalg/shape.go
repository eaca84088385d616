package linalg

import "fmt"

// Shape describes a container's extent: one dimension (length) for the
// vector family, two dimensions (rows, cols) for the matrix family.
type Shape []int

// NumElements returns the total number of elements the shape spans.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Validate checks that every dimension is non-negative. Zero-extent
// containers are legal; negative dimensions are a construction error.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("linalg: dimension %d is negative (%d): %w", i, dim, ErrShapeMismatch)
		}
	}
	return nil
}
