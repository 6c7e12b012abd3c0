// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dexp returns the density at x of the exponential distribution with
// the given rate. It returns NaN if rate < 0 or rate is +Inf.
func Dexp(x, rate float64, giveLog bool) float64 {
	if v, ok := missing(x, rate); ok {
		return v
	}
	scale := 1 / rate
	if scale <= 0 {
		return nan
	}
	if x < 0 {
		return d0(giveLog)
	}
	if giveLog {
		return -x/scale - math.Log(scale)
	}
	return math.Exp(-x/scale) / scale
}

// Pexp returns the exponential distribution function at q.
func Pexp(q, rate float64, lowerTail, logP bool) float64 {
	if v, ok := missing(q, rate); ok {
		return v
	}
	scale := 1 / rate
	if scale < 0 {
		return nan
	}
	if q <= 0 {
		return pt0(lowerTail, logP)
	}
	x := -(q / scale)
	if lowerTail {
		if logP {
			return log1Exp(x)
		}
		return -math.Expm1(x)
	}
	if logP {
		return x
	}
	return math.Exp(x)
}

// Qexp returns the exponential quantile function at p.
func Qexp(p, rate float64, lowerTail, logP bool) float64 {
	if v, ok := missing(p, rate); ok {
		return v
	}
	scale := 1 / rate
	if scale < 0 || badP(p, logP) {
		return nan
	}
	if isZeroP(p, lowerTail, logP) {
		return 0
	}
	// log of the upper-tail probability.
	var lq float64
	switch {
	case lowerTail && logP:
		lq = log1Exp(p)
	case lowerTail:
		lq = math.Log1p(-p)
	case logP:
		lq = p
	default:
		lq = math.Log(p)
	}
	return -scale * lq
}

// Rexp draws one exponential variate. A rate of +Inf gives 0; a
// negative, zero or NaN rate gives NaN without drawing.
func Rexp(rate float64, src rand.Source) float64 {
	if v, ok := missing(rate); ok {
		return v
	}
	scale := 1 / rate
	if math.IsInf(scale, 0) || scale <= 0 {
		if scale == 0 {
			return 0
		}
		return nan
	}
	return distuv.Exponential{Rate: rate, Src: src}.Rand()
}

// ExpDist is an exponential distribution.
type ExpDist struct {
	// Rate is the rate parameter λ. Rate > 0.
	Rate float64
}

func (d ExpDist) PDF(x float64) float64 {
	return Dexp(x, d.Rate, false)
}

func (d ExpDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d ExpDist) CDF(x float64) float64 {
	return Pexp(x, d.Rate, true, false)
}

func (d ExpDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

func (d ExpDist) InvCDF(p float64) float64 {
	return Qexp(p, d.Rate, true, false)
}

func (d ExpDist) InvCDFEach(ps []float64) []float64 {
	return each(d.InvCDF, ps)
}

func (d ExpDist) Bounds() (float64, float64) {
	return 0, d.InvCDF(0.9999)
}

func (d ExpDist) Mean() float64 {
	return 1 / d.Rate
}

func (d ExpDist) Variance() float64 {
	return 1 / (d.Rate * d.Rate)
}
