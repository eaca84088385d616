package linalg

import "fmt"

// MutMatrix is the owning, interior-mutable matrix shape. Elements update
// in place without reallocation or identity change. In-place access
// respects the borrow ledger.
type MutMatrix[T Element] struct {
	st   *storage[T]
	rows int
	cols int
}

// NewMutMatrix creates an interior-mutable matrix from a row sequence.
func NewMutMatrix[T Element](rows [][]T) (*MutMatrix[T], error) {
	m, err := NewMatrix(rows)
	if err != nil {
		return nil, err
	}
	return &MutMatrix[T]{st: m.st, rows: m.rows, cols: m.cols}, nil
}

// MutMatrixOf creates an interior-mutable rows×cols matrix from row-major
// data.
func MutMatrixOf[T Element](data []T, rows, cols int) (*MutMatrix[T], error) {
	m, err := MatrixOf(data, rows, cols)
	if err != nil {
		return nil, err
	}
	return &MutMatrix[T]{st: m.st, rows: m.rows, cols: m.cols}, nil
}

// FillMutMatrix creates an interior-mutable rows×cols matrix of copies of
// value.
func FillMutMatrix[T Element](rows, cols int, value T) (*MutMatrix[T], error) {
	m, err := FillMatrix(rows, cols, value)
	if err != nil {
		return nil, err
	}
	return &MutMatrix[T]{st: m.st, rows: m.rows, cols: m.cols}, nil
}

// MutMatrixFrom copies any matrix shape into a fresh interior-mutable
// container.
func MutMatrixFrom[T Element](m MatrixOperand[T]) *MutMatrix[T] {
	rows, cols := m.Rows(), m.Cols()
	st := newStorage[T](rows * cols)
	for i := 0; i < rows; i++ {
		copy(st.data[i*cols:(i+1)*cols], rowOf(m, i))
	}
	return &MutMatrix[T]{st: st, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *MutMatrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *MutMatrix[T]) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *MutMatrix[T]) Dims() (int, int) { return m.rows, m.cols }

// Shape returns the matrix's shape.
func (m *MutMatrix[T]) Shape() Shape { return Shape{m.rows, m.cols} }

// At returns the element at row i, column j.
func (m *MutMatrix[T]) At(i, j int) (T, error) {
	return matAt(m, i, j)
}

// Set updates the element at row i, column j in place.
func (m *MutMatrix[T]) Set(i, j int, value T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("linalg: index (%d,%d) outside shape %v: %w", i, j, m.Shape(), ErrIndexOutOfBounds)
	}
	flat := i*m.cols + j
	if err := m.st.exclusiveCheck(span{flat, flat + 1}); err != nil {
		return err
	}
	m.st.data[flat] = value
	return nil
}

// ToOwned copies the elements into a fresh default-mode owning matrix.
func (m *MutMatrix[T]) ToOwned() *Matrix[T] {
	return &Matrix[T]{st: storageFrom(m.st.data), rows: m.rows, cols: m.cols}
}

// Block constructs a read-only view over rows [r0, r1) and columns
// [c0, c1).
func (m *MutMatrix[T]) Block(r0, r1, c0, c1 int) (*MatrixView[T], error) {
	return sliceMatrix(m.st, blockLayout{stride: m.cols}, m.rows, m.cols, r0, r1, c0, c1)
}

// BlockMut constructs a mutable view over rows [r0, r1) and columns
// [c0, c1). The view has exclusive access to the covered storage span for
// its whole lifetime.
func (m *MutMatrix[T]) BlockMut(r0, r1, c0, c1 int) (*MutMatrixView[T], error) {
	layout, rows, cols, err := blockBounds(blockLayout{stride: m.cols}, m.rows, m.cols, r0, r1, c0, c1)
	if err != nil {
		return nil, err
	}
	ext := blockSpan(layout, rows, cols)
	b, err := m.st.acquire(ext, true)
	if err != nil {
		return nil, err
	}
	return &MutMatrixView[T]{st: m.st, lay: layout, rows: rows, cols: cols, b: b}, nil
}

// RowMut constructs a mutable view of row i.
func (m *MutMatrix[T]) RowMut(i int) (*MutMatrixView[T], error) {
	return m.BlockMut(i, i+1, 0, m.cols)
}

// String returns a human-readable representation.
func (m *MutMatrix[T]) String() string {
	return fmt.Sprintf("MutMatrix%v%v", m.Shape(), m.st.data)
}

func (m *MutMatrix[T]) variant() Variant    { return OwnedMut }
func (m *MutMatrix[T]) store() *storage[T]  { return m.st }
func (m *MutMatrix[T]) layout() blockLayout { return blockLayout{stride: m.cols} }
