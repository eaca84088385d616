//go:build !advlinalg_nostd

package linalg

import "fmt"

// Runtime-variable-shape operations, available under the full profile only.
// Building with -tags advlinalg_nostd removes them at compile time; the
// shape catalog and the operation table are otherwise identical.

// DynamicSizing reports whether runtime-variable shapes are compiled in.
const DynamicSizing = true

// Append returns a new vector holding the receiver's elements followed by
// values. The receiver is unchanged: growth is exterior mutation.
func (v *Vector[T]) Append(values ...T) *Vector[T] {
	out := make([]T, 0, v.Len()+len(values))
	out = append(out, v.st.data...)
	out = append(out, values...)
	return &Vector[T]{st: adoptStorage(out)}
}

// ConcatVectors concatenates any vector shapes into a fresh owning vector.
func ConcatVectors[T Element](vs ...VectorOperand[T]) *Vector[T] {
	total := 0
	for _, v := range vs {
		total += v.Len()
	}
	out := make([]T, 0, total)
	for _, v := range vs {
		out = append(out, rawOf(v)...)
	}
	return &Vector[T]{st: adoptStorage(out)}
}

// Resize grows or shrinks the vector in place to length n, filling new
// elements with fill. The reallocation would invalidate every live view,
// so it requires an idle borrow ledger.
func (v *MutVector[T]) Resize(n int, fill T) error {
	if err := (Shape{n}).Validate(); err != nil {
		return err
	}
	if !v.st.idle() {
		return fmt.Errorf("linalg: resize with live views: %w", ErrAliasingViolation)
	}
	old := v.st.data
	next := make([]T, n)
	copied := copy(next, old)
	for i := copied; i < n; i++ {
		next[i] = fill
	}
	v.st.data = next
	return nil
}

// Reshape reinterprets the matrix as rows×cols. The element count must be
// preserved. The result shares the receiver's storage: both containers are
// exterior-immutable, so the sharing is unobservable.
func (m *Matrix[T]) Reshape(rows, cols int) (*Matrix[T], error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != m.rows*m.cols {
		return nil, fmt.Errorf("linalg: cannot reshape %v into %v: %w", m.Shape(), shape, ErrShapeMismatch)
	}
	return &Matrix[T]{st: m.st, rows: rows, cols: cols}, nil
}

// ConcatRows stacks matrix shapes vertically into a fresh owning matrix.
// All operands must share a column count.
func ConcatRows[T Element](ms ...MatrixOperand[T]) (*Matrix[T], error) {
	if len(ms) == 0 {
		return &Matrix[T]{st: newStorage[T](0)}, nil
	}
	cols := ms[0].Cols()
	rows := 0
	for _, m := range ms {
		if m.Cols() != cols {
			return nil, fmt.Errorf("linalg: concat rows: %v has %d columns, want %d: %w", m.Shape(), m.Cols(), cols, ErrShapeMismatch)
		}
		rows += m.Rows()
	}
	out := make([]T, 0, rows*cols)
	for _, m := range ms {
		for i := 0; i < m.Rows(); i++ {
			out = append(out, rowOf(m, i)...)
		}
	}
	return &Matrix[T]{st: adoptStorage(out), rows: rows, cols: cols}, nil
}

// Resize grows or shrinks the matrix in place to rows×cols, preserving the
// overlapping block and filling new elements with fill. Requires an idle
// borrow ledger.
func (m *MutMatrix[T]) Resize(rows, cols int, fill T) error {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return err
	}
	if !m.st.idle() {
		return fmt.Errorf("linalg: resize with live views: %w", ErrAliasingViolation)
	}
	next := make([]T, rows*cols)
	for i := range next {
		next[i] = fill
	}
	keepRows := min(rows, m.rows)
	keepCols := min(cols, m.cols)
	for i := 0; i < keepRows; i++ {
		copy(next[i*cols:i*cols+keepCols], m.st.data[i*m.cols:i*m.cols+keepCols])
	}
	m.st.data = next
	m.rows, m.cols = rows, cols
	return nil
}
