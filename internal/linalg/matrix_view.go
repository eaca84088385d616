package linalg

import "fmt"

// blockLayout maps a view's (i, j) coordinates onto flat storage offsets:
// flat = (rowOff+i)*stride + colOff + j.
type blockLayout struct {
	rowOff int
	colOff int
	stride int
}

// blockSpan is the convex hull of a block's flat extent. Two blocks on
// disjoint column ranges of the same rows therefore conflict
// conservatively; the ledger errs toward refusing a borrow, never toward
// admitting an overlapping one.
func blockSpan(lay blockLayout, rows, cols int) span {
	if rows == 0 || cols == 0 {
		return span{}
	}
	lo := lay.rowOff*lay.stride + lay.colOff
	hi := (lay.rowOff+rows-1)*lay.stride + lay.colOff + cols
	return span{lo, hi}
}

// blockBounds validates [r0, r1) × [c0, c1) against a rows×cols window and
// returns the composed layout.
func blockBounds(base blockLayout, rows, cols, r0, r1, c0, c1 int) (blockLayout, int, int, error) {
	if r0 < 0 || r1 < r0 || r1 > rows || c0 < 0 || c1 < c0 || c1 > cols {
		return blockLayout{}, 0, 0, fmt.Errorf("linalg: block [%d,%d)x[%d,%d) outside shape %v: %w",
			r0, r1, c0, c1, Shape{rows, cols}, ErrRangeOutOfBounds)
	}
	lay := blockLayout{
		rowOff: base.rowOff + r0,
		colOff: base.colOff + c0,
		stride: base.stride,
	}
	return lay, r1 - r0, c1 - c0, nil
}

func sliceMatrix[T Element](st *storage[T], base blockLayout, rows, cols, r0, r1, c0, c1 int) (*MatrixView[T], error) {
	lay, vr, vc, err := blockBounds(base, rows, cols, r0, r1, c0, c1)
	if err != nil {
		return nil, err
	}
	b, err := st.acquire(blockSpan(lay, vr, vc), false)
	if err != nil {
		return nil, err
	}
	return &MatrixView[T]{st: st, lay: lay, rows: vr, cols: vc, b: b}, nil
}

// MatrixView is a borrowed, read-only window over an owning matrix's
// storage, possibly strided (a sub-block). It never owns storage; ToOwned
// is its only allocating operation.
type MatrixView[T Element] struct {
	st   *storage[T]
	lay  blockLayout
	rows int
	cols int
	b    *borrow
}

// Rows returns the number of rows visible through the view.
func (v *MatrixView[T]) Rows() int { return v.rows }

// Cols returns the number of columns visible through the view.
func (v *MatrixView[T]) Cols() int { return v.cols }

// Dims returns (rows, cols).
func (v *MatrixView[T]) Dims() (int, int) { return v.rows, v.cols }

// Shape returns the view's shape, fixed at construction.
func (v *MatrixView[T]) Shape() Shape { return Shape{v.rows, v.cols} }

// At returns the element at row i, column j of the view.
func (v *MatrixView[T]) At(i, j int) (T, error) {
	return matAt(v, i, j)
}

// ToOwned copies the viewed block into a fresh owning matrix. Later
// mutation of the source does not affect the copy.
func (v *MatrixView[T]) ToOwned() *Matrix[T] {
	st := newStorage[T](v.rows * v.cols)
	for i := 0; i < v.rows; i++ {
		copy(st.data[i*v.cols:(i+1)*v.cols], rowOf(v, i))
	}
	return &Matrix[T]{st: st, rows: v.rows, cols: v.cols}
}

// Block constructs a read-only sub-view of this view.
func (v *MatrixView[T]) Block(r0, r1, c0, c1 int) (*MatrixView[T], error) {
	return sliceMatrix(v.st, v.lay, v.rows, v.cols, r0, r1, c0, c1)
}

// Release ends the view's borrow. The view must not be used afterwards.
// Releasing twice is a no-op.
func (v *MatrixView[T]) Release() {
	v.st.release(v.b)
}

// String returns a human-readable representation.
func (v *MatrixView[T]) String() string {
	return fmt.Sprintf("MatrixView%v", v.Shape())
}

func (v *MatrixView[T]) variant() Variant    { return View }
func (v *MatrixView[T]) store() *storage[T]  { return v.st }
func (v *MatrixView[T]) layout() blockLayout { return v.lay }

// MutMatrixView is a borrowed matrix window that writes directly into its
// owner's storage. It holds an exclusive borrow over its flat extent for
// its whole lifetime. Used as a binary-operator operand it contributes its
// current values without side effect.
type MutMatrixView[T Element] struct {
	st   *storage[T]
	lay  blockLayout
	rows int
	cols int
	b    *borrow
}

// Rows returns the number of rows visible through the view.
func (v *MutMatrixView[T]) Rows() int { return v.rows }

// Cols returns the number of columns visible through the view.
func (v *MutMatrixView[T]) Cols() int { return v.cols }

// Dims returns (rows, cols).
func (v *MutMatrixView[T]) Dims() (int, int) { return v.rows, v.cols }

// Shape returns the view's shape, fixed at construction.
func (v *MutMatrixView[T]) Shape() Shape { return Shape{v.rows, v.cols} }

// At returns the element at row i, column j of the view.
func (v *MutMatrixView[T]) At(i, j int) (T, error) {
	return matAt(v, i, j)
}

// Set writes value at row i, column j, directly into the owner's storage.
func (v *MutMatrixView[T]) Set(i, j int, value T) error {
	if i < 0 || i >= v.rows || j < 0 || j >= v.cols {
		return fmt.Errorf("linalg: index (%d,%d) outside shape %v: %w", i, j, v.Shape(), ErrIndexOutOfBounds)
	}
	v.st.data[(v.lay.rowOff+i)*v.lay.stride+v.lay.colOff+j] = value
	return nil
}

// ToOwned copies the viewed block into a fresh owning matrix.
func (v *MutMatrixView[T]) ToOwned() *Matrix[T] {
	st := newStorage[T](v.rows * v.cols)
	for i := 0; i < v.rows; i++ {
		copy(st.data[i*v.cols:(i+1)*v.cols], rowOf(v, i))
	}
	return &Matrix[T]{st: st, rows: v.rows, cols: v.cols}
}

// Release ends the view's exclusive borrow. The view must not be used
// afterwards. Releasing twice is a no-op.
func (v *MutMatrixView[T]) Release() {
	v.st.release(v.b)
}

// String returns a human-readable representation.
func (v *MutMatrixView[T]) String() string {
	return fmt.Sprintf("MutMatrixView%v", v.Shape())
}

func (v *MutMatrixView[T]) variant() Variant    { return ViewMut }
func (v *MutMatrixView[T]) store() *storage[T]  { return v.st }
func (v *MutMatrixView[T]) layout() blockLayout { return v.lay }
