package linalg

import "errors"

// Sentinel errors for the container algebra. All conditions are synchronous
// and recoverable by the caller; no operation performs a partial write. Wrap
// with fmt.Errorf("ctx: %w", ErrX) when context is needed; callers match
// with errors.Is.
var (
	// ErrIndexOutOfBounds is returned by At/Set when an index falls outside
	// the container's shape.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrShapeMismatch is returned when elementwise operands disagree in
	// length or dimensions, or when a container is constructed from a
	// mismatched element count (ragged rows, wrong data length).
	ErrShapeMismatch = errors.New("linalg: shape mismatch")

	// ErrDimensionMismatch is returned by matrix multiplication when the
	// inner dimensions disagree (lhs.Cols != rhs.Rows).
	ErrDimensionMismatch = errors.New("linalg: inner dimension mismatch")

	// ErrRangeOutOfBounds is returned when a slice range exceeds the source
	// container's extent.
	ErrRangeOutOfBounds = errors.New("linalg: slice range out of bounds")

	// ErrAliasingViolation is returned when a mutable view or an in-place
	// mutation would overlap another live access to the same storage.
	ErrAliasingViolation = errors.New("linalg: aliasing violation")
)
