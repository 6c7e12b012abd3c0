// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements densities, distribution functions,
// quantiles and samplers for the distributions used by a model
// runtime.
//
// The multivariate distributions (Wishart, multivariate normal and
// multivariate t) are parameterized by the upper Cholesky factor of
// their scale, covariance or precision matrix and never form an
// explicit inverse. Matrices are n×n, column-major.
//
// Every function follows the same order of checks. A Missing operand
// (validity.NA) gives NA. Otherwise an Invalid operand (any other NaN)
// or a parameter outside its domain gives NaN. Otherwise an
// observation outside the support gives a structural zero: 0, or -Inf
// on the log scale. Only then is the value computed. None of these
// cases is an error and nothing in this package panics on numeric
// input. Buffer lengths are the caller's responsibility; see package
// nimble for a layer that checks them.
//
// Samplers draw from the rand.Source they are given, usually an
// rng.Session, in a fixed order documented on each function.
package stats // import "github.com/nimble-go/nimdist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

const (
	ln2       = math.Ln2
	lnSqrtPi  = 0.572364942924700087071713675677 // ln(√π)
	lnSqrt2Pi = 0.918938533204672741780329736406 // ln(√(2π))

	// sumTol is the tolerance used when a vector must sum to a
	// given total.
	sumTol = 10 * 2.220446049250313e-16
)
