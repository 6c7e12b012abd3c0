// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nimble-go/nimdist/validity"
)

// Ddirch returns the Dirichlet density with concentration alpha at
// x. x and alpha have the same length K.
//
// Ddirch returns NaN if any alpha[i] <= 0. It returns a structural
// zero if any x[i] is outside [0, 1] or if x does not sum to 1 within
// 10 machine epsilons.
func Ddirch(x, alpha []float64, giveLog bool) float64 {
	if k := validity.CheckSlices(x, alpha); k != validity.Ordinary {
		return validity.Sentinel(k)
	}
	for _, a := range alpha {
		if a <= 0 {
			return nan
		}
	}
	if !validity.AllFinite(alpha) {
		return d0(giveLog)
	}
	for _, xi := range x {
		if xi < 0 || xi > 1 {
			return d0(giveLog)
		}
	}
	if math.Abs(floats.Sum(x)-1) > sumTol {
		return d0(giveLog)
	}

	dens := lgamma(floats.Sum(alpha))
	for i, a := range alpha {
		if a != 1 {
			dens += (a - 1) * math.Log(x[i])
		}
		dens -= lgamma(a)
	}
	return dexpLog(dens, giveLog)
}

// Rdirch fills dst with a draw from the Dirichlet distribution with
// concentration alpha, len(dst) == len(alpha).
//
// One Gamma(alpha[i], 1) variate is drawn for each i in order and the
// results are normalized by their sum. If any alpha[i] is not a
// positive finite number, dst is filled with NaN (or NA) and no draws
// are made.
func Rdirch(dst, alpha []float64, src rand.Source) {
	if k := validity.CheckSlices(alpha); k != validity.Ordinary {
		validity.Fill(dst, k)
		return
	}
	for _, a := range alpha {
		if !(a > 0) || math.IsInf(a, 1) {
			validity.Fill(dst, validity.Invalid)
			return
		}
	}
	for i, a := range alpha {
		dst[i] = distuv.Gamma{Alpha: a, Beta: 1, Src: src}.Rand()
	}
	floats.Scale(1/floats.Sum(dst), dst)
}
