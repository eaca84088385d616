package linalg

import "fmt"

// Vector is the owning, exterior-immutable vector shape. It owns its
// backing storage and exposes no in-place mutation: every elementwise
// "update" is modeled as producing a new container. It is the default
// result shape of every vector operation.
type Vector[T Element] struct {
	st *storage[T]
}

// NewVector creates a vector from a literal sequence of values.
func NewVector[T Element](values ...T) *Vector[T] {
	return &Vector[T]{st: storageFrom(values)}
}

// VectorOf creates a vector by copying values.
func VectorOf[T Element](values []T) *Vector[T] {
	return &Vector[T]{st: storageFrom(values)}
}

// FillVector creates a vector of n copies of value.
func FillVector[T Element](n int, value T) (*Vector[T], error) {
	if err := (Shape{n}).Validate(); err != nil {
		return nil, err
	}
	st := newStorage[T](n)
	for i := range st.data {
		st.data[i] = value
	}
	return &Vector[T]{st: st}, nil
}

// VectorFromFunc creates a vector of length n by collecting f(0) .. f(n-1).
func VectorFromFunc[T Element](n int, f func(i int) T) (*Vector[T], error) {
	if err := (Shape{n}).Validate(); err != nil {
		return nil, err
	}
	st := newStorage[T](n)
	for i := range st.data {
		st.data[i] = f(i)
	}
	return &Vector[T]{st: st}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.st.data)
}

// Shape returns the vector's shape.
func (v *Vector[T]) Shape() Shape {
	return Shape{v.Len()}
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	return vecAt(v, i)
}

// Values returns a copy of the vector's elements. The copy never aliases
// the vector's storage.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.Len())
	copy(out, v.st.data)
	return out
}

// ToOwned returns a deep copy in the default owning mode.
func (v *Vector[T]) ToOwned() *Vector[T] {
	return &Vector[T]{st: storageFrom(v.st.data)}
}

// Slice constructs a read-only view over [lo, hi). The view borrows the
// vector's storage and must be Released when no longer needed.
func (v *Vector[T]) Slice(lo, hi int) (*VectorSlice[T], error) {
	return sliceVector(v.st, 0, v.Len(), lo, hi)
}

// String returns a human-readable representation.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector%v%v", v.Shape(), v.st.data)
}

func (v *Vector[T]) variant() Variant    { return Owned }
func (v *Vector[T]) store() *storage[T]  { return v.st }
func (v *Vector[T]) extent() span        { return span{0, len(v.st.data)} }
