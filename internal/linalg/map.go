package linalg

import "fmt"

// Elementwise transformations. Map-style methods always produce a fresh
// owning default container; the InPlace variants exist only on the
// interior-mutable shapes and reuse their storage.

func vecMap[T Element](v VectorOperand[T], f func(value T) T) *Vector[T] {
	va := rawOf(v)
	out := make([]T, len(va))
	for i := range out {
		out[i] = f(va[i])
	}
	return &Vector[T]{st: adoptStorage(out)}
}

func vecMapIndex[T Element](v VectorOperand[T], f func(i int) T) *Vector[T] {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = f(i)
	}
	return &Vector[T]{st: adoptStorage(out)}
}

func vecMapEnumerate[T Element](v VectorOperand[T], f func(i int, value T) T) *Vector[T] {
	va := rawOf(v)
	out := make([]T, len(va))
	for i := range out {
		out[i] = f(i, va[i])
	}
	return &Vector[T]{st: adoptStorage(out)}
}

// vecCombine zips two equal-length operands pairwise through f.
func vecCombine[T Element](l, r VectorOperand[T], f func(a, b T) T) (*Vector[T], error) {
	if l.Len() != r.Len() {
		return nil, fmt.Errorf("linalg: combine: operand shapes %v and %v differ: %w", l.Shape(), r.Shape(), ErrShapeMismatch)
	}
	la, ra := rawOf(l), rawOf(r)
	out := make([]T, len(la))
	for i := range out {
		out[i] = f(la[i], ra[i])
	}
	return &Vector[T]{st: adoptStorage(out)}, nil
}

func vecMapInPlace[T Element](v VectorOperand[T], ledgerCheck bool, f func(i int, value T) T) error {
	if ledgerCheck {
		if err := v.store().exclusiveCheck(v.extent()); err != nil {
			return err
		}
	}
	va := rawOf(v)
	for i := range va {
		va[i] = f(i, va[i])
	}
	return nil
}

// Map applies f to every element, collecting the results.
func (v *Vector[T]) Map(f func(value T) T) *Vector[T] { return vecMap[T](v, f) }

// MapIndex collects f(i) for every index.
func (v *Vector[T]) MapIndex(f func(i int) T) *Vector[T] { return vecMapIndex[T](v, f) }

// MapEnumerate collects f(i, value) for every element.
func (v *Vector[T]) MapEnumerate(f func(i int, value T) T) *Vector[T] {
	return vecMapEnumerate[T](v, f)
}

// Combine zips the vector with o pairwise through f.
func (v *Vector[T]) Combine(o VectorOperand[T], f func(a, b T) T) (*Vector[T], error) {
	return vecCombine[T](v, o, f)
}

// Map applies f to every element, collecting the results into a fresh
// default-mode vector.
func (v *MutVector[T]) Map(f func(value T) T) *Vector[T] { return vecMap[T](v, f) }

// MapIndex collects f(i) for every index.
func (v *MutVector[T]) MapIndex(f func(i int) T) *Vector[T] { return vecMapIndex[T](v, f) }

// MapEnumerate collects f(i, value) for every element.
func (v *MutVector[T]) MapEnumerate(f func(i int, value T) T) *Vector[T] {
	return vecMapEnumerate[T](v, f)
}

// Combine zips the vector with o pairwise through f.
func (v *MutVector[T]) Combine(o VectorOperand[T], f func(a, b T) T) (*Vector[T], error) {
	return vecCombine[T](v, o, f)
}

// MapInPlace rewrites every element as f(value), reusing storage.
func (v *MutVector[T]) MapInPlace(f func(value T) T) error {
	return vecMapInPlace[T](v, true, func(_ int, value T) T { return f(value) })
}

// MapEnumerateInPlace rewrites every element as f(i, value).
func (v *MutVector[T]) MapEnumerateInPlace(f func(i int, value T) T) error {
	return vecMapInPlace[T](v, true, f)
}

// Map applies f to every viewed element, collecting the results.
func (s *VectorSlice[T]) Map(f func(value T) T) *Vector[T] { return vecMap[T](s, f) }

// MapIndex collects f(i) for every index of the view.
func (s *VectorSlice[T]) MapIndex(f func(i int) T) *Vector[T] { return vecMapIndex[T](s, f) }

// MapEnumerate collects f(i, value) for every viewed element.
func (s *VectorSlice[T]) MapEnumerate(f func(i int, value T) T) *Vector[T] {
	return vecMapEnumerate[T](s, f)
}

// Combine zips the view with o pairwise through f.
func (s *VectorSlice[T]) Combine(o VectorOperand[T], f func(a, b T) T) (*Vector[T], error) {
	return vecCombine[T](s, o, f)
}

// Map applies f to every viewed element, collecting the results.
func (s *MutVectorSlice[T]) Map(f func(value T) T) *Vector[T] { return vecMap[T](s, f) }

// MapIndex collects f(i) for every index of the view.
func (s *MutVectorSlice[T]) MapIndex(f func(i int) T) *Vector[T] { return vecMapIndex[T](s, f) }

// MapEnumerate collects f(i, value) for every viewed element.
func (s *MutVectorSlice[T]) MapEnumerate(f func(i int, value T) T) *Vector[T] {
	return vecMapEnumerate[T](s, f)
}

// Combine zips the view with o pairwise through f.
func (s *MutVectorSlice[T]) Combine(o VectorOperand[T], f func(a, b T) T) (*Vector[T], error) {
	return vecCombine[T](s, o, f)
}

// MapInPlace rewrites every viewed element as f(value), writing through to
// the owner's storage.
func (s *MutVectorSlice[T]) MapInPlace(f func(value T) T) error {
	return vecMapInPlace[T](s, false, func(_ int, value T) T { return f(value) })
}

// MapEnumerateInPlace rewrites every viewed element as f(i, value).
func (s *MutVectorSlice[T]) MapEnumerateInPlace(f func(i int, value T) T) error {
	return vecMapInPlace[T](s, false, f)
}

func matMap[T Element](m MatrixOperand[T], f func(value T) T) *Matrix[T] {
	rows, cols := m.Rows(), m.Cols()
	out := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		mrow := rowOf(m, i)
		orow := out[i*cols : (i+1)*cols]
		for j := range orow {
			orow[j] = f(mrow[j])
		}
	}
	return &Matrix[T]{st: adoptStorage(out), rows: rows, cols: cols}
}

func matMapEnumerate[T Element](m MatrixOperand[T], f func(i, j int, value T) T) *Matrix[T] {
	rows, cols := m.Rows(), m.Cols()
	out := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		mrow := rowOf(m, i)
		orow := out[i*cols : (i+1)*cols]
		for j := range orow {
			orow[j] = f(i, j, mrow[j])
		}
	}
	return &Matrix[T]{st: adoptStorage(out), rows: rows, cols: cols}
}

func matMapInPlace[T Element](m MatrixOperand[T], ledgerCheck bool, f func(i, j int, value T) T) error {
	if ledgerCheck {
		if err := m.store().exclusiveCheck(matSpan(m)); err != nil {
			return err
		}
	}
	for i := 0; i < m.Rows(); i++ {
		mrow := rowOf(m, i)
		for j := range mrow {
			mrow[j] = f(i, j, mrow[j])
		}
	}
	return nil
}

// Map applies f to every element, collecting the results.
func (m *Matrix[T]) Map(f func(value T) T) *Matrix[T] { return matMap[T](m, f) }

// MapEnumerate collects f(i, j, value) for every element.
func (m *Matrix[T]) MapEnumerate(f func(i, j int, value T) T) *Matrix[T] {
	return matMapEnumerate[T](m, f)
}

// Map applies f to every element, collecting the results into a fresh
// default-mode matrix.
func (m *MutMatrix[T]) Map(f func(value T) T) *Matrix[T] { return matMap[T](m, f) }

// MapEnumerate collects f(i, j, value) for every element.
func (m *MutMatrix[T]) MapEnumerate(f func(i, j int, value T) T) *Matrix[T] {
	return matMapEnumerate[T](m, f)
}

// MapInPlace rewrites every element as f(value), reusing storage.
func (m *MutMatrix[T]) MapInPlace(f func(value T) T) error {
	return matMapInPlace[T](m, true, func(_, _ int, value T) T { return f(value) })
}

// MapEnumerateInPlace rewrites every element as f(i, j, value).
func (m *MutMatrix[T]) MapEnumerateInPlace(f func(i, j int, value T) T) error {
	return matMapInPlace[T](m, true, f)
}

// Map applies f to every viewed element, collecting the results.
func (v *MatrixView[T]) Map(f func(value T) T) *Matrix[T] { return matMap[T](v, f) }

// MapEnumerate collects f(i, j, value) for every viewed element.
func (v *MatrixView[T]) MapEnumerate(f func(i, j int, value T) T) *Matrix[T] {
	return matMapEnumerate[T](v, f)
}

// Map applies f to every viewed element, collecting the results.
func (v *MutMatrixView[T]) Map(f func(value T) T) *Matrix[T] { return matMap[T](v, f) }

// MapEnumerate collects f(i, j, value) for every viewed element.
func (v *MutMatrixView[T]) MapEnumerate(f func(i, j int, value T) T) *Matrix[T] {
	return matMapEnumerate[T](v, f)
}

// MapInPlace rewrites every viewed element as f(value), writing through to
// the owner's storage.
func (v *MutMatrixView[T]) MapInPlace(f func(value T) T) error {
	return matMapInPlace[T](v, false, func(_, _ int, value T) T { return f(value) })
}

// MapEnumerateInPlace rewrites every viewed element as f(i, j, value).
func (v *MutMatrixView[T]) MapEnumerateInPlace(f func(i, j int, value T) T) error {
	return matMapInPlace[T](v, false, f)
}
