// Copyright 2026 The adv-linalg Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the public API for the adv-linalg container
// algebra: vector and matrix container shapes and the complete set of
// cross-shape arithmetic operations between them.
//
// # Overview
//
// The catalog holds four shapes per family:
//   - Vector / Matrix: owning, exterior-immutable — every elementwise
//     "update" produces a new container
//   - MutVector / MutMatrix: owning, interior-mutable — elements update in
//     place without the container changing identity
//   - VectorSlice / MatrixView: borrowed read-only windows
//   - MutVectorSlice / MutMatrixView: borrowed windows that write through
//     to the owner's storage
//
// Any two shapes of a family combine through Add, Sub, MulElem, Dot,
// Scale, MatMul and MulVec; the operation resolution table is total over
// the catalog (VerifyOperationTable checks the full cross-product), and
// every container-producing operation yields a fresh owning default
// container.
//
// # Basic Usage
//
//	a := linalg.NewVector(1.0, 2.0, 3.0)
//	b := linalg.NewVector(3.0, 2.0, 1.0)
//
//	sum, _ := a.Add(b)      // Vector[4 4 4]
//	dot, _ := a.Dot(b)      // 10
//
//	view, _ := a.Slice(0, 2)
//	defer view.Release()
//	head := view.ToOwned()  // Vector[1 2]
//
// # Aliasing Discipline
//
// Views borrow their owner's storage: any number of read-only views may
// overlap, but a mutable view excludes every overlapping access — other
// views and in-place mutation through the owner — for as long as it is
// live. Violations fail fast with ErrAliasingViolation. Release a view
// when done with it.
//
// # Profiles
//
// Building with -tags advlinalg_nostd removes the runtime-variable-shape
// operations (Append, Resize, Reshape, Concat*) at compile time; the shape
// catalog and operation table are unchanged. DynamicSizing reports the
// active profile.
package linalg
