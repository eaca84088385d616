package linalg

import "fmt"

// MutVector is the owning, interior-mutable vector shape. Elements update
// in place without reallocation or identity change; structural resize (full
// profile only) may reallocate. In-place access respects the borrow ledger:
// it fails with ErrAliasingViolation while an overlapping view is live.
type MutVector[T Element] struct {
	st *storage[T]
}

// NewMutVector creates an interior-mutable vector from a literal sequence.
func NewMutVector[T Element](values ...T) *MutVector[T] {
	return &MutVector[T]{st: storageFrom(values)}
}

// MutVectorOf creates an interior-mutable vector by copying values.
func MutVectorOf[T Element](values []T) *MutVector[T] {
	return &MutVector[T]{st: storageFrom(values)}
}

// FillMutVector creates an interior-mutable vector of n copies of value.
func FillMutVector[T Element](n int, value T) (*MutVector[T], error) {
	v, err := FillVector(n, value)
	if err != nil {
		return nil, err
	}
	return &MutVector[T]{st: v.st}, nil
}

// MutVectorFrom copies any vector shape into a fresh interior-mutable
// container.
func MutVectorFrom[T Element](v VectorOperand[T]) *MutVector[T] {
	return &MutVector[T]{st: storageFrom(rawOf(v))}
}

// Len returns the number of elements.
func (v *MutVector[T]) Len() int {
	return len(v.st.data)
}

// Shape returns the vector's shape.
func (v *MutVector[T]) Shape() Shape {
	return Shape{v.Len()}
}

// At returns the element at index i.
func (v *MutVector[T]) At(i int) (T, error) {
	return vecAt(v, i)
}

// Set updates the element at index i in place.
func (v *MutVector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.Len() {
		return fmt.Errorf("linalg: index %d outside length %d: %w", i, v.Len(), ErrIndexOutOfBounds)
	}
	if err := v.st.exclusiveCheck(span{i, i + 1}); err != nil {
		return err
	}
	v.st.data[i] = value
	return nil
}

// Values returns a copy of the vector's elements.
func (v *MutVector[T]) Values() []T {
	out := make([]T, v.Len())
	copy(out, v.st.data)
	return out
}

// ToOwned copies the elements into a fresh default-mode owning vector.
func (v *MutVector[T]) ToOwned() *Vector[T] {
	return &Vector[T]{st: storageFrom(v.st.data)}
}

// Slice constructs a read-only view over [lo, hi).
func (v *MutVector[T]) Slice(lo, hi int) (*VectorSlice[T], error) {
	return sliceVector(v.st, 0, v.Len(), lo, hi)
}

// SliceMut constructs a mutable view over [lo, hi). The view has exclusive
// access to the range for its whole lifetime: constructing it fails with
// ErrAliasingViolation while any overlapping view is live, and while it is
// live every overlapping access through the owner fails the same way.
func (v *MutVector[T]) SliceMut(lo, hi int) (*MutVectorSlice[T], error) {
	if lo < 0 || hi < lo || hi > v.Len() {
		return nil, fmt.Errorf("linalg: range [%d,%d) outside length %d: %w", lo, hi, v.Len(), ErrRangeOutOfBounds)
	}
	ext := span{lo, hi}
	b, err := v.st.acquire(ext, true)
	if err != nil {
		return nil, err
	}
	return &MutVectorSlice[T]{st: v.st, off: lo, n: hi - lo, b: b}, nil
}

// String returns a human-readable representation.
func (v *MutVector[T]) String() string {
	return fmt.Sprintf("MutVector%v%v", v.Shape(), v.st.data)
}

func (v *MutVector[T]) variant() Variant   { return OwnedMut }
func (v *MutVector[T]) store() *storage[T] { return v.st }
func (v *MutVector[T]) extent() span       { return span{0, len(v.st.data)} }
