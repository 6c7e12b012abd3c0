// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// BLAS is the Backend that forwards to gonum's blas64 and lapack64.
//
// gonum is row-major, so a column-major buffer is seen by it as the
// transpose of the matrix it holds. An upper triangular U therefore
// appears as the lower triangular Uᵀ, and the transposition and side
// arguments below are chosen to undo that.
type BLAS struct{}

func lower(n int, u []float64) blas64.Triangular {
	return blas64.Triangular{
		Uplo:   blas.Lower,
		Diag:   blas.NonUnit,
		N:      n,
		Stride: n,
		Data:   u,
	}
}

func general(n int, a []float64) blas64.General {
	return blas64.General{Rows: n, Cols: n, Stride: n, Data: a}
}

func flip(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}
	return blas.NoTrans
}

func (BLAS) Trsv(t blas.Transpose, n int, u, x []float64) {
	blas64.Trsv(flip(t), lower(n, u), blas64.Vector{N: n, Inc: 1, Data: x})
}

func (BLAS) Trmv(t blas.Transpose, n int, u, x []float64) {
	blas64.Trmv(flip(t), lower(n, u), blas64.Vector{N: n, Inc: 1, Data: x})
}

// Trsm solves op(U)·Y = B. Transposing both sides gives
// Yᵀ·op(U)ᵀ = Bᵀ, a right-side solve on the row-major view, where
// op(U)ᵀ is Uᵀ (the stored lower matrix) for NoTrans.
func (BLAS) Trsm(t blas.Transpose, n int, u, b []float64) {
	blas64.Trsm(blas.Right, t, 1, lower(n, u), general(n, b))
}

func (BLAS) Trmm(t blas.Transpose, n int, u, b []float64) {
	blas64.Trmm(blas.Right, t, 1, lower(n, u), general(n, b))
}

// GemmNT computes C = A·Bᵀ, which on the row-major views is
// Cᵀ = B·Aᵀ.
func (BLAS) GemmNT(n int, a, b, c []float64) {
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, general(n, b), general(n, a), 0, general(n, c))
}

func (BLAS) Potrf(n int, a []float64) bool {
	_, ok := lapack64.Potrf(blas64.Symmetric{
		Uplo:   blas.Lower,
		N:      n,
		Stride: n,
		Data:   a,
	})
	return ok
}
