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

// Dmulti returns the multinomial probability of the counts x in
// size trials with category probabilities prob. prob need not sum to
// 1; it is normalized by its sum.
//
// Dmulti returns NaN if size is not a non-negative integer, or if any
// prob[i] is negative or the probabilities do not have a positive
// finite sum. It returns a structural zero if a count is not a
// non-negative finite integer or the counts do not sum to size.
// Counts within 1e-7 of an integer are rounded.
func Dmulti(x []float64, size float64, prob []float64, giveLog bool) float64 {
	k := validity.Merge(validity.Check(size), validity.CheckSlices(x, prob))
	if k != validity.Ordinary {
		return validity.Sentinel(k)
	}
	if size < 0 || math.IsInf(size, 0) || notInt(size) {
		return nan
	}
	size = math.RoundToEven(size)
	for _, p := range prob {
		if p < 0 {
			return nan
		}
	}
	sumProb := floats.Sum(prob)
	if !(sumProb > 0) || math.IsInf(sumProb, 0) {
		return nan
	}

	logSum := math.Log(sumProb)
	dens := lgamma(size + 1)
	sumX := 0.0
	for i, xi := range x {
		if math.IsInf(xi, 0) || xi < 0 || notInt(xi) {
			return d0(giveLog)
		}
		xi = math.RoundToEven(xi)
		sumX += xi
		if xi == 0 && prob[i] == 0 {
			continue
		}
		dens += xi*(math.Log(prob[i])-logSum) - lgamma(xi+1)
	}
	if math.Abs(sumX-size) > sumTol {
		return d0(giveLog)
	}
	return dexpLog(dens, giveLog)
}

// Rmulti fills dst with a draw of counts for size trials over
// len(prob) categories, len(dst) == len(prob). prob is normalized by
// its sum, in place if own is Move.
//
// The draw is a sequence of conditional binomials over the first K-1
// categories in order; a binomial is drawn only while trials remain
// and the category's probability is neither zero nor the whole of
// what remains. The last category takes the remaining trials.
//
// If the parameters are invalid, as for Dmulti, dst is filled with
// NaN (or NA).
func Rmulti(dst []float64, size float64, prob []float64, own Ownership, src rand.Source) {
	if k := validity.Merge(validity.Check(size), validity.CheckSlices(prob)); k != validity.Ordinary {
		validity.Fill(dst, k)
		return
	}
	sumProb := floats.Sum(prob)
	if size < 0 || math.IsInf(size, 0) || notInt(size) || !(sumProb > 0) || math.IsInf(sumProb, 0) || floats.Min(prob) < 0 {
		validity.Fill(dst, validity.Invalid)
		return
	}
	p := scratch(prob, own)
	floats.Scale(1/sumProb, p)

	n := math.RoundToEven(size)
	for i := range dst {
		dst[i] = 0
	}
	K := len(p)
	if K == 0 {
		return
	}
	pTot := 1.0
	for k := 0; k < K-1; k++ {
		if p[k] != 0 {
			pp := p[k] / pTot
			if pp > 0 && pp < 1 {
				dst[k] = distuv.Binomial{N: n, P: pp, Src: src}.Rand()
			} else {
				dst[k] = n
			}
			n -= dst[k]
		}
		if n <= 0 {
			return
		}
		pTot -= p[k]
	}
	dst[K-1] = n
}
