package linalg

import (
	"fmt"

	"github.com/adv-linalg/advlinalg/internal/parallel"
)

// VectorOperand is implemented by every vector shape in the catalog:
// Vector, MutVector, VectorSlice and MutVectorSlice. The interface is
// sealed; callers combine operands through the operator methods and never
// implement or import a capability interface themselves.
type VectorOperand[T Element] interface {
	// Len returns the number of elements.
	Len() int
	// Shape returns the operand's shape.
	Shape() Shape
	// At returns the element at index i.
	At(i int) (T, error)

	variant() Variant
	store() *storage[T]
	extent() span
}

// kernelCfg bounds the parallel elementwise engine. Small containers run
// sequentially; the chunk floor keeps goroutine overhead below the work.
var kernelCfg = func() parallel.Config {
	cfg := parallel.DefaultConfig()
	cfg.MinChunkSize = 4096
	return cfg
}()

// rawOf returns the operand's elements as a contiguous slice of backing
// storage. Read-only use inside kernels; never handed to callers.
func rawOf[T Element](v VectorOperand[T]) []T {
	e := v.extent()
	return v.store().data[e.lo:e.hi]
}

func vecAt[T Element](v VectorOperand[T], i int) (T, error) {
	var zero T
	if i < 0 || i >= v.Len() {
		return zero, fmt.Errorf("linalg: index %d outside length %d: %w", i, v.Len(), ErrIndexOutOfBounds)
	}
	return rawOf(v)[i], nil
}

// vecElementwise resolves op against the table and applies f pairwise.
// Operands are read-only inputs regardless of their own mutability; the
// result is always a fresh owning default vector.
func vecElementwise[T Element](op Op, l, r VectorOperand[T], f func(a, b T) T) (*Vector[T], error) {
	if _, err := resolvePair(op, l.variant(), r.variant()); err != nil {
		return nil, err
	}
	if l.Len() != r.Len() {
		return nil, fmt.Errorf("linalg: %s: operand shapes %v and %v differ: %w", op, l.Shape(), r.Shape(), ErrShapeMismatch)
	}
	la, ra := rawOf(l), rawOf(r)
	out := make([]T, len(la))
	parallel.For(len(out), func(i int) {
		out[i] = f(la[i], ra[i])
	}, kernelCfg)
	return &Vector[T]{st: adoptStorage(out)}, nil
}

// vecDot resolves the dot product and reduces sequentially.
func vecDot[T Element](l, r VectorOperand[T]) (T, error) {
	var acc T
	if _, err := resolvePair(OpDot, l.variant(), r.variant()); err != nil {
		return acc, err
	}
	if l.Len() != r.Len() {
		return acc, fmt.Errorf("linalg: %s: operand shapes %v and %v differ: %w", OpDot, l.Shape(), r.Shape(), ErrShapeMismatch)
	}
	la, ra := rawOf(l), rawOf(r)
	for i := range la {
		acc += la[i] * ra[i]
	}
	return acc, nil
}

// vecScale broadcasts a scalar over the operand; no shape comparison.
func vecScale[T Element](v VectorOperand[T], s T) (*Vector[T], error) {
	if _, err := resolveScalar(v.variant()); err != nil {
		return nil, err
	}
	va := rawOf(v)
	out := make([]T, len(va))
	parallel.For(len(out), func(i int) {
		out[i] = va[i] * s
	}, kernelCfg)
	return &Vector[T]{st: adoptStorage(out)}, nil
}

// vecAssign applies f pairwise into dst's storage. ledgerCheck guards
// owner-side writes; mutable views pass false because their exclusive
// borrow already proves sole access. An operand overlapping dst at a
// different offset is snapshotted so the update reads pre-write values.
func vecAssign[T Element](op Op, dst VectorOperand[T], r VectorOperand[T], ledgerCheck bool, f func(a, b T) T) error {
	if _, err := resolvePair(op, dst.variant(), r.variant()); err != nil {
		return err
	}
	if dst.Len() != r.Len() {
		return fmt.Errorf("linalg: %s: operand shapes %v and %v differ: %w", op, dst.Shape(), r.Shape(), ErrShapeMismatch)
	}
	if ledgerCheck {
		if err := dst.store().exclusiveCheck(dst.extent()); err != nil {
			return err
		}
	}
	da, ra := rawOf(dst), rawOf(r)
	if dst.store() == r.store() && dst.extent().overlaps(r.extent()) && dst.extent() != r.extent() {
		ra = append([]T(nil), ra...)
	}
	for i := range da {
		da[i] = f(da[i], ra[i])
	}
	return nil
}

func vecScaleAssign[T Element](dst VectorOperand[T], s T, ledgerCheck bool) error {
	if _, err := resolveScalar(dst.variant()); err != nil {
		return err
	}
	if ledgerCheck {
		if err := dst.store().exclusiveCheck(dst.extent()); err != nil {
			return err
		}
	}
	da := rawOf(dst)
	for i := range da {
		da[i] *= s
	}
	return nil
}

// VectorsEqual reports whether two vector shapes hold the same elements.
func VectorsEqual[T Element](a, b VectorOperand[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	aa, ba := rawOf(a), rawOf(b)
	for i := range aa {
		if aa[i] != ba[i] {
			return false
		}
	}
	return true
}

// Vector operators. Every ordered pair of vector shapes resolves through
// the same table entries, so the set below is total over the catalog.

// Add returns the elementwise sum as a fresh owning vector.
func (v *Vector[T]) Add(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpAdd, v, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning vector.
func (v *Vector[T]) Sub(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpSub, v, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning vector.
func (v *Vector[T]) MulElem(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpMulElem, v, o, mul[T])
}

// Dot returns the dot product.
func (v *Vector[T]) Dot(o VectorOperand[T]) (T, error) {
	return vecDot[T](v, o)
}

// Scale returns the vector scaled by s as a fresh owning vector.
func (v *Vector[T]) Scale(s T) (*Vector[T], error) {
	return vecScale[T](v, s)
}

// Add returns the elementwise sum as a fresh owning default vector; the
// receiver is not modified.
func (v *MutVector[T]) Add(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpAdd, v, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning default vector.
func (v *MutVector[T]) Sub(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpSub, v, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning default vector.
func (v *MutVector[T]) MulElem(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpMulElem, v, o, mul[T])
}

// Dot returns the dot product.
func (v *MutVector[T]) Dot(o VectorOperand[T]) (T, error) {
	return vecDot[T](v, o)
}

// Scale returns the vector scaled by s as a fresh owning default vector.
func (v *MutVector[T]) Scale(s T) (*Vector[T], error) {
	return vecScale[T](v, s)
}

// AddAssign adds o into the receiver in place, reusing its storage.
func (v *MutVector[T]) AddAssign(o VectorOperand[T]) error {
	return vecAssign(OpAdd, v, o, true, add[T])
}

// SubAssign subtracts o from the receiver in place.
func (v *MutVector[T]) SubAssign(o VectorOperand[T]) error {
	return vecAssign(OpSub, v, o, true, sub[T])
}

// MulElemAssign multiplies the receiver elementwise by o in place.
func (v *MutVector[T]) MulElemAssign(o VectorOperand[T]) error {
	return vecAssign(OpMulElem, v, o, true, mul[T])
}

// ScaleAssign scales the receiver in place.
func (v *MutVector[T]) ScaleAssign(s T) error {
	return vecScaleAssign[T](v, s, true)
}

// Add returns the elementwise sum as a fresh owning vector.
func (s *VectorSlice[T]) Add(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpAdd, s, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning vector.
func (s *VectorSlice[T]) Sub(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpSub, s, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning vector.
func (s *VectorSlice[T]) MulElem(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpMulElem, s, o, mul[T])
}

// Dot returns the dot product.
func (s *VectorSlice[T]) Dot(o VectorOperand[T]) (T, error) {
	return vecDot[T](s, o)
}

// Scale returns the view's elements scaled by s as a fresh owning vector.
func (s *VectorSlice[T]) Scale(v T) (*Vector[T], error) {
	return vecScale[T](s, v)
}

// Add returns the elementwise sum as a fresh owning vector. The view is a
// read-only input here; it is not written.
func (s *MutVectorSlice[T]) Add(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpAdd, s, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning vector.
func (s *MutVectorSlice[T]) Sub(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpSub, s, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning vector.
func (s *MutVectorSlice[T]) MulElem(o VectorOperand[T]) (*Vector[T], error) {
	return vecElementwise(OpMulElem, s, o, mul[T])
}

// Dot returns the dot product.
func (s *MutVectorSlice[T]) Dot(o VectorOperand[T]) (T, error) {
	return vecDot[T](s, o)
}

// Scale returns the view's elements scaled by s as a fresh owning vector.
func (s *MutVectorSlice[T]) Scale(v T) (*Vector[T], error) {
	return vecScale[T](s, v)
}

// AddAssign adds o into the viewed region of the owner's storage.
func (s *MutVectorSlice[T]) AddAssign(o VectorOperand[T]) error {
	return vecAssign(OpAdd, s, o, false, add[T])
}

// SubAssign subtracts o from the viewed region in place.
func (s *MutVectorSlice[T]) SubAssign(o VectorOperand[T]) error {
	return vecAssign(OpSub, s, o, false, sub[T])
}

// MulElemAssign multiplies the viewed region elementwise by o in place.
func (s *MutVectorSlice[T]) MulElemAssign(o VectorOperand[T]) error {
	return vecAssign(OpMulElem, s, o, false, mul[T])
}

// ScaleAssign scales the viewed region in place.
func (s *MutVectorSlice[T]) ScaleAssign(v T) error {
	return vecScaleAssign[T](s, v, false)
}
