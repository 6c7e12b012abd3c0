// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg provides the small set of triangular linear algebra
// primitives needed to evaluate Cholesky-parameterized densities
// without forming an explicit inverse.
//
// All matrices are square, n×n, and stored column-major: element
// (i, j) of a is a[i+j*n]. Triangular arguments are upper triangular
// and only their upper triangle (diagonal included) is read; the
// contents of the strict lower triangle are ignored.
//
// Two backends are provided. Native is a plain Go reference
// implementation. BLAS forwards to gonum's blas64 and lapack64, and
// therefore to whatever implementation has been installed with
// blas64.Use and lapack64.Use.
package linalg // import "github.com/nimble-go/nimdist/linalg"

import (
	"math"

	"gonum.org/v1/gonum/blas"
)

// A Backend implements the triangular primitives.
//
// Transposition is expressed with blas.NoTrans and blas.Trans, where
// op(U) = U for NoTrans and op(U) = Uᵀ for Trans.
type Backend interface {
	// Trsv solves op(U)·y = x for y, overwriting x with y.
	Trsv(t blas.Transpose, n int, u, x []float64)

	// Trmv computes x = op(U)·x.
	Trmv(t blas.Transpose, n int, u, x []float64)

	// Trsm solves op(U)·Y = B for Y, overwriting the n×n matrix b.
	Trsm(t blas.Transpose, n int, u, b []float64)

	// Trmm computes B = op(U)·B for the n×n matrix b.
	Trmm(t blas.Transpose, n int, u, b []float64)

	// GemmNT computes C = A·Bᵀ for general n×n a and b. c must not
	// alias a or b.
	GemmNT(n int, a, b, c []float64)

	// Potrf overwrites the upper triangle of the symmetric matrix a
	// with its Cholesky factor U, a = UᵀU. It reports false if a is
	// not positive definite, in which case a is partially
	// overwritten.
	Potrf(n int, a []float64) bool
}

var impl Backend = BLAS{}

// Use sets the Backend used by the distributions in this module.
// It is not safe to call Use concurrently with any distribution
// function.
func Use(b Backend) {
	impl = b
}

// Implementation returns the current Backend.
func Implementation() Backend {
	return impl
}

// LogDiag returns Σ ln u[i,i] for the n×n column-major matrix u.
func LogDiag(n int, u []float64) float64 {
	s := 0.0
	for i := 0; i < n*n; i += n + 1 {
		s += math.Log(u[i])
	}
	return s
}

// PositiveDiag reports whether every diagonal entry of u is > 0.
func PositiveDiag(n int, u []float64) bool {
	for i := 0; i < n*n; i += n + 1 {
		if !(u[i] > 0) {
			return false
		}
	}
	return true
}

// CholLogDet returns Σ ln diag(chol(a)), which is half the log
// determinant of the symmetric positive definite matrix a. The
// Cholesky factor is computed in place in a. ok is false if a is not
// positive definite.
func CholLogDet(b Backend, n int, a []float64) (logDet float64, ok bool) {
	if !b.Potrf(n, a) {
		return math.NaN(), false
	}
	return LogDiag(n, a), true
}

// TransposeUpper replaces the n×n matrix a with the transpose of its
// upper triangle, so an upper triangular factor U becomes the lower
// triangular Uᵀ with zeros above the diagonal.
func TransposeUpper(n int, a []float64) {
	for j := 0; j < n; j++ {
		for i := 0; i < j; i++ {
			a[j+i*n] = a[i+j*n]
			a[i+j*n] = 0
		}
	}
}
