package linalg

import "fmt"

// Matrix is the owning, exterior-immutable matrix shape. Elements are
// stored row-major; every elementwise "update" produces a new container.
// It is the default result shape of every matrix operation.
type Matrix[T Element] struct {
	st   *storage[T]
	rows int
	cols int
}

// NewMatrix creates a matrix from a row sequence. All rows must have the
// same length; a ragged input fails with ErrShapeMismatch.
func NewMatrix[T Element](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{st: newStorage[T](0)}, nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("linalg: row %d has %d elements, want %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
	}
	st := newStorage[T](len(rows) * cols)
	for i, row := range rows {
		copy(st.data[i*cols:(i+1)*cols], row)
	}
	return &Matrix[T]{st: st, rows: len(rows), cols: cols}, nil
}

// MatrixOf creates a rows×cols matrix by copying row-major data. The data
// length must equal rows*cols.
func MatrixOf[T Element](data []T, rows, cols int) (*Matrix[T], error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("linalg: shape %v requires %d elements, got %d: %w", shape, shape.NumElements(), len(data), ErrShapeMismatch)
	}
	return &Matrix[T]{st: storageFrom(data), rows: rows, cols: cols}, nil
}

// FillMatrix creates a rows×cols matrix of copies of value.
func FillMatrix[T Element](rows, cols int, value T) (*Matrix[T], error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}
	st := newStorage[T](rows * cols)
	for i := range st.data {
		st.data[i] = value
	}
	return &Matrix[T]{st: st, rows: rows, cols: cols}, nil
}

// MatrixFromFunc creates a rows×cols matrix by collecting f(i, j).
func MatrixFromFunc[T Element](rows, cols int, f func(i, j int) T) (*Matrix[T], error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}
	st := newStorage[T](rows * cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			st.data[i*cols+j] = f(i, j)
		}
	}
	return &Matrix[T]{st: st, rows: rows, cols: cols}, nil
}

// Identity creates the n×n identity matrix.
func Identity[T Element](n int) (*Matrix[T], error) {
	m, err := FillMatrix[T](n, n, 0)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.st.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix[T]) Dims() (int, int) { return m.rows, m.cols }

// Shape returns the matrix's shape.
func (m *Matrix[T]) Shape() Shape { return Shape{m.rows, m.cols} }

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) (T, error) {
	return matAt(m, i, j)
}

// ToOwned returns a deep copy in the default owning mode.
func (m *Matrix[T]) ToOwned() *Matrix[T] {
	return &Matrix[T]{st: storageFrom(m.st.data), rows: m.rows, cols: m.cols}
}

// Block constructs a read-only view over rows [r0, r1) and columns
// [c0, c1). The view must be Released when no longer needed.
func (m *Matrix[T]) Block(r0, r1, c0, c1 int) (*MatrixView[T], error) {
	return sliceMatrix(m.st, blockLayout{stride: m.cols}, m.rows, m.cols, r0, r1, c0, c1)
}

// Row constructs a read-only view of row i.
func (m *Matrix[T]) Row(i int) (*MatrixView[T], error) {
	return m.Block(i, i+1, 0, m.cols)
}

// Col constructs a read-only view of column j.
func (m *Matrix[T]) Col(j int) (*MatrixView[T], error) {
	return m.Block(0, m.rows, j, j+1)
}

// String returns a human-readable representation.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("Matrix%v%v", m.Shape(), m.st.data)
}

func (m *Matrix[T]) variant() Variant     { return Owned }
func (m *Matrix[T]) store() *storage[T]   { return m.st }
func (m *Matrix[T]) layout() blockLayout  { return blockLayout{stride: m.cols} }
