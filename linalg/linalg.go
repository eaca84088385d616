// Copyright 2026 The adv-linalg Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/adv-linalg/advlinalg/internal/linalg"
)

// Element is the constraint for supported container element types:
// numeric value types supporting +, - and *.
type Element = linalg.Element

// Shape describes a container's extent: {length} for vectors,
// {rows, cols} for matrices.
type Shape = linalg.Shape

// Variant identifies one concrete container shape of a family.
type Variant = linalg.Variant

// The container shape catalog.
const (
	Owned    Variant = linalg.Owned
	OwnedMut Variant = linalg.OwnedMut
	View     Variant = linalg.View
	ViewMut  Variant = linalg.ViewMut
)

// Op identifies an operator of the container algebra.
type Op = linalg.Op

// The supported operator set.
const (
	OpAdd     Op = linalg.OpAdd
	OpSub     Op = linalg.OpSub
	OpMulElem Op = linalg.OpMulElem
	OpScale   Op = linalg.OpScale
	OpDot     Op = linalg.OpDot
	OpMatMul  Op = linalg.OpMatMul
	OpMatVec  Op = linalg.OpMatVec
)

// Sentinel errors. Match with errors.Is.
var (
	ErrIndexOutOfBounds  = linalg.ErrIndexOutOfBounds
	ErrShapeMismatch     = linalg.ErrShapeMismatch
	ErrDimensionMismatch = linalg.ErrDimensionMismatch
	ErrRangeOutOfBounds  = linalg.ErrRangeOutOfBounds
	ErrAliasingViolation = linalg.ErrAliasingViolation
)

// DynamicSizing reports whether runtime-variable shapes are compiled in
// (false under -tags advlinalg_nostd).
const DynamicSizing = linalg.DynamicSizing

// Vector is the owning, exterior-immutable vector shape.
type Vector[T Element] = linalg.Vector[T]

// MutVector is the owning, interior-mutable vector shape.
type MutVector[T Element] = linalg.MutVector[T]

// VectorSlice is a borrowed, read-only window over a vector's storage.
type VectorSlice[T Element] = linalg.VectorSlice[T]

// MutVectorSlice is a borrowed window that writes through to its owner.
type MutVectorSlice[T Element] = linalg.MutVectorSlice[T]

// Matrix is the owning, exterior-immutable matrix shape.
type Matrix[T Element] = linalg.Matrix[T]

// MutMatrix is the owning, interior-mutable matrix shape.
type MutMatrix[T Element] = linalg.MutMatrix[T]

// MatrixView is a borrowed, read-only window over a matrix's storage.
type MatrixView[T Element] = linalg.MatrixView[T]

// MutMatrixView is a borrowed matrix window that writes through to its
// owner.
type MutMatrixView[T Element] = linalg.MutMatrixView[T]

// VectorOperand is the sealed interface implemented by every vector shape.
// Callers hold operands but never implement the interface.
type VectorOperand[T Element] = linalg.VectorOperand[T]

// MatrixOperand is the sealed interface implemented by every matrix shape.
type MatrixOperand[T Element] = linalg.MatrixOperand[T]

// Catalog enumeration

// Variants returns the full shape catalog in a fixed order.
func Variants() []Variant { return linalg.Variants() }

// Ops returns the full operator set in a fixed order.
func Ops() []Op { return linalg.Ops() }

// VerifyOperationTable checks the operation resolution table is total over
// the full operator × variant × variant cross-product.
func VerifyOperationTable() error { return linalg.VerifyOperationTable() }

// Vector construction

// NewVector creates a vector from a literal sequence of values.
func NewVector[T Element](values ...T) *Vector[T] { return linalg.NewVector(values...) }

// VectorOf creates a vector by copying values.
func VectorOf[T Element](values []T) *Vector[T] { return linalg.VectorOf(values) }

// FillVector creates a vector of n copies of value.
func FillVector[T Element](n int, value T) (*Vector[T], error) { return linalg.FillVector(n, value) }

// VectorFromFunc creates a vector of length n by collecting f(0) .. f(n-1).
func VectorFromFunc[T Element](n int, f func(i int) T) (*Vector[T], error) {
	return linalg.VectorFromFunc(n, f)
}

// NewMutVector creates an interior-mutable vector from a literal sequence.
func NewMutVector[T Element](values ...T) *MutVector[T] { return linalg.NewMutVector(values...) }

// MutVectorOf creates an interior-mutable vector by copying values.
func MutVectorOf[T Element](values []T) *MutVector[T] { return linalg.MutVectorOf(values) }

// FillMutVector creates an interior-mutable vector of n copies of value.
func FillMutVector[T Element](n int, value T) (*MutVector[T], error) {
	return linalg.FillMutVector(n, value)
}

// MutVectorFrom copies any vector shape into a fresh interior-mutable
// container.
func MutVectorFrom[T Element](v VectorOperand[T]) *MutVector[T] { return linalg.MutVectorFrom(v) }

// VectorSliceOf wraps values as a read-only vector view without copying.
func VectorSliceOf[T Element](values []T) *VectorSlice[T] { return linalg.VectorSliceOf(values) }

// MutVectorSliceOf wraps values as a mutable vector view without copying.
func MutVectorSliceOf[T Element](values []T) *MutVectorSlice[T] {
	return linalg.MutVectorSliceOf(values)
}

// Matrix construction

// NewMatrix creates a matrix from a row sequence; rows must have equal
// lengths.
func NewMatrix[T Element](rows [][]T) (*Matrix[T], error) { return linalg.NewMatrix(rows) }

// MatrixOf creates a rows×cols matrix by copying row-major data.
func MatrixOf[T Element](data []T, rows, cols int) (*Matrix[T], error) {
	return linalg.MatrixOf(data, rows, cols)
}

// FillMatrix creates a rows×cols matrix of copies of value.
func FillMatrix[T Element](rows, cols int, value T) (*Matrix[T], error) {
	return linalg.FillMatrix(rows, cols, value)
}

// MatrixFromFunc creates a rows×cols matrix by collecting f(i, j).
func MatrixFromFunc[T Element](rows, cols int, f func(i, j int) T) (*Matrix[T], error) {
	return linalg.MatrixFromFunc(rows, cols, f)
}

// Identity creates the n×n identity matrix.
func Identity[T Element](n int) (*Matrix[T], error) { return linalg.Identity[T](n) }

// NewMutMatrix creates an interior-mutable matrix from a row sequence.
func NewMutMatrix[T Element](rows [][]T) (*MutMatrix[T], error) { return linalg.NewMutMatrix(rows) }

// MutMatrixOf creates an interior-mutable rows×cols matrix from row-major
// data.
func MutMatrixOf[T Element](data []T, rows, cols int) (*MutMatrix[T], error) {
	return linalg.MutMatrixOf(data, rows, cols)
}

// FillMutMatrix creates an interior-mutable rows×cols matrix of copies of
// value.
func FillMutMatrix[T Element](rows, cols int, value T) (*MutMatrix[T], error) {
	return linalg.FillMutMatrix(rows, cols, value)
}

// MutMatrixFrom copies any matrix shape into a fresh interior-mutable
// container.
func MutMatrixFrom[T Element](m MatrixOperand[T]) *MutMatrix[T] { return linalg.MutMatrixFrom(m) }

// Comparison helpers

// VectorsEqual reports whether two vector shapes hold the same elements.
func VectorsEqual[T Element](a, b VectorOperand[T]) bool { return linalg.VectorsEqual(a, b) }

// MatricesEqual reports whether two matrix shapes hold the same elements.
func MatricesEqual[T Element](a, b MatrixOperand[T]) bool { return linalg.MatricesEqual(a, b) }
