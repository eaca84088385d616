package linalg

import (
	"fmt"

	"github.com/adv-linalg/advlinalg/internal/parallel"
)

// MatrixOperand is implemented by every matrix shape in the catalog:
// Matrix, MutMatrix, MatrixView and MutMatrixView. Like VectorOperand it is
// sealed; callers never implement it.
type MatrixOperand[T Element] interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// Shape returns the operand's shape.
	Shape() Shape
	// At returns the element at row i, column j.
	At(i, j int) (T, error)

	variant() Variant
	store() *storage[T]
	layout() blockLayout
}

// rowCfg parallelizes row-structured kernels (matmul, matvec); rows carry
// enough work each that a lower chunk floor pays off than for flat
// elementwise loops.
var rowCfg = parallel.DefaultConfig()

// rowOf returns row i of the operand as a contiguous slice of backing
// storage, handling strided views.
func rowOf[T Element](m MatrixOperand[T], i int) []T {
	lay := m.layout()
	lo := (lay.rowOff+i)*lay.stride + lay.colOff
	return m.store().data[lo : lo+m.Cols()]
}

func matAt[T Element](m MatrixOperand[T], i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return zero, fmt.Errorf("linalg: index (%d,%d) outside shape %v: %w", i, j, m.Shape(), ErrIndexOutOfBounds)
	}
	return rowOf(m, i)[j], nil
}

// matSpan is the flat storage extent an operand covers.
func matSpan[T Element](m MatrixOperand[T]) span {
	return blockSpan(m.layout(), m.Rows(), m.Cols())
}

// matElementwise resolves op against the table and applies f pairwise over
// equal-shaped operands. The result is always a fresh owning default
// matrix.
func matElementwise[T Element](op Op, l, r MatrixOperand[T], f func(a, b T) T) (*Matrix[T], error) {
	if _, err := resolvePair(op, l.variant(), r.variant()); err != nil {
		return nil, err
	}
	if !l.Shape().Equal(r.Shape()) {
		return nil, fmt.Errorf("linalg: %s: operand shapes %v and %v differ: %w", op, l.Shape(), r.Shape(), ErrShapeMismatch)
	}
	rows, cols := l.Rows(), l.Cols()
	out := make([]T, rows*cols)
	parallel.For(rows, func(i int) {
		lrow, rrow := rowOf(l, i), rowOf(r, i)
		orow := out[i*cols : (i+1)*cols]
		for j := range orow {
			orow[j] = f(lrow[j], rrow[j])
		}
	}, rowCfg)
	return &Matrix[T]{st: adoptStorage(out), rows: rows, cols: cols}, nil
}

// matScale broadcasts a scalar over the operand; no shape comparison.
func matScale[T Element](m MatrixOperand[T], s T) (*Matrix[T], error) {
	if _, err := resolveScalar(m.variant()); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]T, rows*cols)
	parallel.For(rows, func(i int) {
		mrow := rowOf(m, i)
		orow := out[i*cols : (i+1)*cols]
		for j := range orow {
			orow[j] = mrow[j] * s
		}
	}, rowCfg)
	return &Matrix[T]{st: adoptStorage(out), rows: rows, cols: cols}, nil
}

// matMul is the structural product: inner dimensions must agree, and the
// result has shape (l.Rows, r.Cols).
func matMul[T Element](l, r MatrixOperand[T]) (*Matrix[T], error) {
	if _, err := resolvePair(OpMatMul, l.variant(), r.variant()); err != nil {
		return nil, err
	}
	if l.Cols() != r.Rows() {
		return nil, fmt.Errorf("linalg: %s: inner dimensions of %v and %v disagree: %w", OpMatMul, l.Shape(), r.Shape(), ErrDimensionMismatch)
	}
	rows, inner, cols := l.Rows(), l.Cols(), r.Cols()
	out := make([]T, rows*cols)
	parallel.For(rows, func(i int) {
		lrow := rowOf(l, i)
		orow := out[i*cols : (i+1)*cols]
		for k := 0; k < inner; k++ {
			a := lrow[k]
			rrow := rowOf(r, k)
			for j := range orow {
				orow[j] += a * rrow[j]
			}
		}
	}, rowCfg)
	return &Matrix[T]{st: adoptStorage(out), rows: rows, cols: cols}, nil
}

// matVec is the cross-family product: (rows×cols) × (cols) → (rows).
func matVec[T Element](m MatrixOperand[T], v VectorOperand[T]) (*Vector[T], error) {
	if _, err := resolvePair(OpMatVec, m.variant(), v.variant()); err != nil {
		return nil, err
	}
	if m.Cols() != v.Len() {
		return nil, fmt.Errorf("linalg: %s: inner dimensions of %v and %v disagree: %w", OpMatVec, m.Shape(), v.Shape(), ErrDimensionMismatch)
	}
	va := rawOf(v)
	out := make([]T, m.Rows())
	parallel.For(m.Rows(), func(i int) {
		row := rowOf(m, i)
		var acc T
		for j := range row {
			acc += row[j] * va[j]
		}
		out[i] = acc
	}, rowCfg)
	return &Vector[T]{st: adoptStorage(out)}, nil
}

// matAssign applies f pairwise into dst's storage, row by row.
func matAssign[T Element](op Op, dst, r MatrixOperand[T], ledgerCheck bool, f func(a, b T) T) error {
	if _, err := resolvePair(op, dst.variant(), r.variant()); err != nil {
		return err
	}
	if !dst.Shape().Equal(r.Shape()) {
		return fmt.Errorf("linalg: %s: operand shapes %v and %v differ: %w", op, dst.Shape(), r.Shape(), ErrShapeMismatch)
	}
	if ledgerCheck {
		if err := dst.store().exclusiveCheck(matSpan(dst)); err != nil {
			return err
		}
	}
	src := r
	if dst.store() == r.store() && matSpan(dst).overlaps(matSpan(r)) &&
		(dst.layout() != r.layout() || dst.Rows() != r.Rows() || dst.Cols() != r.Cols()) {
		// Overlapping operand at a different offset: snapshot it so the
		// update reads pre-write values.
		snap := newStorage[T](r.Rows() * r.Cols())
		for i := 0; i < r.Rows(); i++ {
			copy(snap.data[i*r.Cols():(i+1)*r.Cols()], rowOf(r, i))
		}
		src = &Matrix[T]{st: snap, rows: r.Rows(), cols: r.Cols()}
	}
	for i := 0; i < dst.Rows(); i++ {
		drow, srow := rowOf(dst, i), rowOf(src, i)
		for j := range drow {
			drow[j] = f(drow[j], srow[j])
		}
	}
	return nil
}

func matScaleAssign[T Element](dst MatrixOperand[T], s T, ledgerCheck bool) error {
	if _, err := resolveScalar(dst.variant()); err != nil {
		return err
	}
	if ledgerCheck {
		if err := dst.store().exclusiveCheck(matSpan(dst)); err != nil {
			return err
		}
	}
	for i := 0; i < dst.Rows(); i++ {
		drow := rowOf(dst, i)
		for j := range drow {
			drow[j] *= s
		}
	}
	return nil
}

// Matrix operators. Every ordered pair of matrix shapes resolves through
// the same table entries, so the set below is total over the catalog.

// Add returns the elementwise sum as a fresh owning matrix.
func (m *Matrix[T]) Add(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpAdd, m, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning matrix.
func (m *Matrix[T]) Sub(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpSub, m, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning matrix.
func (m *Matrix[T]) MulElem(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpMulElem, m, o, mul[T])
}

// Scale returns the matrix scaled by s as a fresh owning matrix.
func (m *Matrix[T]) Scale(s T) (*Matrix[T], error) {
	return matScale[T](m, s)
}

// MatMul returns the matrix product; the operands' inner dimensions must
// agree.
func (m *Matrix[T]) MatMul(o MatrixOperand[T]) (*Matrix[T], error) {
	return matMul[T](m, o)
}

// MulVec returns the matrix-vector product as a fresh owning vector.
func (m *Matrix[T]) MulVec(v VectorOperand[T]) (*Vector[T], error) {
	return matVec[T](m, v)
}

// Add returns the elementwise sum as a fresh owning default matrix; the
// receiver is not modified.
func (m *MutMatrix[T]) Add(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpAdd, m, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning default matrix.
func (m *MutMatrix[T]) Sub(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpSub, m, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning default matrix.
func (m *MutMatrix[T]) MulElem(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpMulElem, m, o, mul[T])
}

// Scale returns the matrix scaled by s as a fresh owning default matrix.
func (m *MutMatrix[T]) Scale(s T) (*Matrix[T], error) {
	return matScale[T](m, s)
}

// MatMul returns the matrix product.
func (m *MutMatrix[T]) MatMul(o MatrixOperand[T]) (*Matrix[T], error) {
	return matMul[T](m, o)
}

// MulVec returns the matrix-vector product as a fresh owning vector.
func (m *MutMatrix[T]) MulVec(v VectorOperand[T]) (*Vector[T], error) {
	return matVec[T](m, v)
}

// AddAssign adds o into the receiver in place, reusing its storage.
func (m *MutMatrix[T]) AddAssign(o MatrixOperand[T]) error {
	return matAssign(OpAdd, m, o, true, add[T])
}

// SubAssign subtracts o from the receiver in place.
func (m *MutMatrix[T]) SubAssign(o MatrixOperand[T]) error {
	return matAssign(OpSub, m, o, true, sub[T])
}

// MulElemAssign multiplies the receiver elementwise by o in place.
func (m *MutMatrix[T]) MulElemAssign(o MatrixOperand[T]) error {
	return matAssign(OpMulElem, m, o, true, mul[T])
}

// ScaleAssign scales the receiver in place.
func (m *MutMatrix[T]) ScaleAssign(s T) error {
	return matScaleAssign[T](m, s, true)
}

// Add returns the elementwise sum as a fresh owning matrix.
func (v *MatrixView[T]) Add(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpAdd, v, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning matrix.
func (v *MatrixView[T]) Sub(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpSub, v, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning matrix.
func (v *MatrixView[T]) MulElem(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpMulElem, v, o, mul[T])
}

// Scale returns the viewed block scaled by s as a fresh owning matrix.
func (v *MatrixView[T]) Scale(s T) (*Matrix[T], error) {
	return matScale[T](v, s)
}

// MatMul returns the matrix product.
func (v *MatrixView[T]) MatMul(o MatrixOperand[T]) (*Matrix[T], error) {
	return matMul[T](v, o)
}

// MulVec returns the matrix-vector product as a fresh owning vector.
func (v *MatrixView[T]) MulVec(o VectorOperand[T]) (*Vector[T], error) {
	return matVec[T](v, o)
}

// Add returns the elementwise sum as a fresh owning matrix. The view is a
// read-only input here; it is not written.
func (v *MutMatrixView[T]) Add(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpAdd, v, o, add[T])
}

// Sub returns the elementwise difference as a fresh owning matrix.
func (v *MutMatrixView[T]) Sub(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpSub, v, o, sub[T])
}

// MulElem returns the elementwise product as a fresh owning matrix.
func (v *MutMatrixView[T]) MulElem(o MatrixOperand[T]) (*Matrix[T], error) {
	return matElementwise(OpMulElem, v, o, mul[T])
}

// Scale returns the viewed block scaled by s as a fresh owning matrix.
func (v *MutMatrixView[T]) Scale(s T) (*Matrix[T], error) {
	return matScale[T](v, s)
}

// MatMul returns the matrix product.
func (v *MutMatrixView[T]) MatMul(o MatrixOperand[T]) (*Matrix[T], error) {
	return matMul[T](v, o)
}

// MulVec returns the matrix-vector product as a fresh owning vector.
func (v *MutMatrixView[T]) MulVec(o VectorOperand[T]) (*Vector[T], error) {
	return matVec[T](v, o)
}

// AddAssign adds o into the viewed region of the owner's storage.
func (v *MutMatrixView[T]) AddAssign(o MatrixOperand[T]) error {
	return matAssign(OpAdd, v, o, false, add[T])
}

// SubAssign subtracts o from the viewed region in place.
func (v *MutMatrixView[T]) SubAssign(o MatrixOperand[T]) error {
	return matAssign(OpSub, v, o, false, sub[T])
}

// MulElemAssign multiplies the viewed region elementwise by o in place.
func (v *MutMatrixView[T]) MulElemAssign(o MatrixOperand[T]) error {
	return matAssign(OpMulElem, v, o, false, mul[T])
}

// ScaleAssign scales the viewed region in place.
func (v *MutMatrixView[T]) ScaleAssign(s T) error {
	return matScaleAssign[T](v, s, false)
}

// MatricesEqual reports whether two matrix shapes hold the same elements.
func MatricesEqual[T Element](a, b MatrixOperand[T]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		arow, brow := rowOf(a, i), rowOf(b, i)
		for j := range arow {
			if arow[j] != brow[j] {
				return false
			}
		}
	}
	return true
}
