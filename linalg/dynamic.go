// Copyright 2026 The adv-linalg Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

//go:build !advlinalg_nostd

package linalg

import (
	"github.com/adv-linalg/advlinalg/internal/linalg"
)

// ConcatVectors concatenates any vector shapes into a fresh owning vector.
// Full profile only.
func ConcatVectors[T Element](vs ...VectorOperand[T]) *Vector[T] {
	return linalg.ConcatVectors(vs...)
}

// ConcatRows stacks matrix shapes vertically into a fresh owning matrix.
// Full profile only.
func ConcatRows[T Element](ms ...MatrixOperand[T]) (*Matrix[T], error) {
	return linalg.ConcatRows(ms...)
}
