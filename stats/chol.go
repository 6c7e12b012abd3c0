// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/nimble-go/nimdist/validity"
)

// Ownership says what a function may do with the buffers it is
// given.
type Ownership uint8

const (
	// Borrow leaves the caller's buffers untouched. Any scratch
	// space is allocated for the call.
	Borrow Ownership = iota

	// Move cedes the named buffers to the callee for the duration
	// of the call. Their contents are unspecified afterwards.
	Move
)

func (o Ownership) String() string {
	if o == Move {
		return "Move"
	}
	return "Borrow"
}

// WishartParam selects what the Cholesky factor passed to Dwish and
// Rwish is a factor of.
type WishartParam uint8

const (
	// Scale means chol is the upper Cholesky factor of the scale
	// matrix S.
	Scale WishartParam = iota

	// Rate means chol is the upper Cholesky factor of S⁻¹.
	Rate
)

func (p WishartParam) String() string {
	if p == Rate {
		return "Rate"
	}
	return "Scale"
}

// CholParam selects what the Cholesky factor passed to the
// multivariate normal and t functions is a factor of.
type CholParam uint8

const (
	// Covariance means chol is the upper Cholesky factor of the
	// covariance (or scale) matrix Σ.
	Covariance CholParam = iota

	// Precision means chol is the upper Cholesky factor of Σ⁻¹.
	Precision
)

func (p CholParam) String() string {
	if p == Precision {
		return "Precision"
	}
	return "Covariance"
}

// scratch returns buf itself if own is Move, otherwise a copy of it.
func scratch(buf []float64, own Ownership) []float64 {
	if own == Move {
		return buf
	}
	return append([]float64(nil), buf...)
}

// checkUpper classifies the upper triangle of the n×n matrix u.
func checkUpper(n int, u []float64) validity.Kind {
	k := validity.Ordinary
	for j := 0; j < n; j++ {
		k = validity.Merge(k, validity.CheckSlices(u[j*n:j*n+j+1]))
		if k == validity.Missing {
			break
		}
	}
	return k
}

// finiteUpper reports whether the upper triangle of u is finite.
func finiteUpper(n int, u []float64) bool {
	for j := 0; j < n; j++ {
		if !validity.AllFinite(u[j*n : j*n+j+1]) {
			return false
		}
	}
	return true
}

// sumSq returns Σ x[i]².
func sumSq(x []float64) float64 {
	return floats.Dot(x, x)
}

// lgamma is math.Lgamma without the sign.
func lgamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}
