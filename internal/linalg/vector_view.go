package linalg

import "fmt"

// VectorSlice is a borrowed, read-only window over an owning vector's
// storage. It never owns storage; ToOwned is its only allocating operation.
// The underlying borrow stays live until Release is called.
type VectorSlice[T Element] struct {
	st  *storage[T]
	off int
	n   int
	b   *borrow
}

// VectorSliceOf wraps values as a read-only vector view without copying.
// The view adopts the slice as anonymous backing storage; the caller must
// not mutate values while the view is in use.
func VectorSliceOf[T Element](values []T) *VectorSlice[T] {
	st := adoptStorage(values)
	b, _ := st.acquire(span{0, len(values)}, false)
	return &VectorSlice[T]{st: st, off: 0, n: len(values), b: b}
}

// Len returns the number of elements visible through the view.
func (s *VectorSlice[T]) Len() int {
	return s.n
}

// Shape returns the view's shape, fixed at construction.
func (s *VectorSlice[T]) Shape() Shape {
	return Shape{s.n}
}

// At returns the element at index i of the view.
func (s *VectorSlice[T]) At(i int) (T, error) {
	return vecAt(s, i)
}

// ToOwned copies the viewed elements into a fresh owning vector. Later
// mutation of the source does not affect the copy.
func (s *VectorSlice[T]) ToOwned() *Vector[T] {
	return &Vector[T]{st: storageFrom(rawOf(s))}
}

// Slice constructs a read-only sub-view over [lo, hi) of this view.
func (s *VectorSlice[T]) Slice(lo, hi int) (*VectorSlice[T], error) {
	return sliceVector(s.st, s.off, s.n, lo, hi)
}

// Release ends the view's borrow. The view must not be used afterwards.
// Releasing twice is a no-op.
func (s *VectorSlice[T]) Release() {
	s.st.release(s.b)
}

// String returns a human-readable representation.
func (s *VectorSlice[T]) String() string {
	return fmt.Sprintf("VectorSlice%v%v", s.Shape(), rawOf(s))
}

func (s *VectorSlice[T]) variant() Variant   { return View }
func (s *VectorSlice[T]) store() *storage[T] { return s.st }
func (s *VectorSlice[T]) extent() span       { return span{s.off, s.off + s.n} }

// MutVectorSlice is a borrowed window that writes directly into its owner's
// storage at the mapped offset. It holds an exclusive borrow for its whole
// lifetime. Used as a binary-operator operand it contributes its current
// values without side effect; only the explicit Set, *Assign and
// *InPlace operations write through it.
type MutVectorSlice[T Element] struct {
	st  *storage[T]
	off int
	n   int
	b   *borrow
}

// MutVectorSliceOf wraps values as a mutable vector view without copying.
func MutVectorSliceOf[T Element](values []T) *MutVectorSlice[T] {
	st := adoptStorage(values)
	b, _ := st.acquire(span{0, len(values)}, true)
	return &MutVectorSlice[T]{st: st, off: 0, n: len(values), b: b}
}

// Len returns the number of elements visible through the view.
func (s *MutVectorSlice[T]) Len() int {
	return s.n
}

// Shape returns the view's shape, fixed at construction.
func (s *MutVectorSlice[T]) Shape() Shape {
	return Shape{s.n}
}

// At returns the element at index i of the view.
func (s *MutVectorSlice[T]) At(i int) (T, error) {
	return vecAt(s, i)
}

// Set writes value at index i of the view, directly into the owner's
// storage. The view's exclusive borrow makes the write race-free.
func (s *MutVectorSlice[T]) Set(i int, value T) error {
	if i < 0 || i >= s.n {
		return fmt.Errorf("linalg: index %d outside length %d: %w", i, s.n, ErrIndexOutOfBounds)
	}
	s.st.data[s.off+i] = value
	return nil
}

// ToOwned copies the viewed elements into a fresh owning vector.
func (s *MutVectorSlice[T]) ToOwned() *Vector[T] {
	return &Vector[T]{st: storageFrom(rawOf(s))}
}

// Release ends the view's exclusive borrow. The view must not be used
// afterwards. Releasing twice is a no-op.
func (s *MutVectorSlice[T]) Release() {
	s.st.release(s.b)
}

// String returns a human-readable representation.
func (s *MutVectorSlice[T]) String() string {
	return fmt.Sprintf("MutVectorSlice%v%v", s.Shape(), rawOf(s))
}

func (s *MutVectorSlice[T]) variant() Variant   { return ViewMut }
func (s *MutVectorSlice[T]) store() *storage[T] { return s.st }
func (s *MutVectorSlice[T]) extent() span       { return span{s.off, s.off + s.n} }

// sliceVector bounds-checks [lo, hi) against a window of length n starting
// at base, and registers a shared borrow for the resulting view.
func sliceVector[T Element](st *storage[T], base, n, lo, hi int) (*VectorSlice[T], error) {
	if lo < 0 || hi < lo || hi > n {
		return nil, fmt.Errorf("linalg: range [%d,%d) outside length %d: %w", lo, hi, n, ErrRangeOutOfBounds)
	}
	ext := span{base + lo, base + hi}
	b, err := st.acquire(ext, false)
	if err != nil {
		return nil, err
	}
	return &VectorSlice[T]{st: st, off: ext.lo, n: hi - lo, b: b}, nil
}
