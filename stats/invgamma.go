// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// The inverse-gamma distribution with shape α and rate r is the
// distribution of 1/Y where Y is gamma distributed with shape α and
// scale r. Its density is
//
//	f(x) = r^-α / Γ(α) · x^(-α-1) · exp(-1/(r·x)).
//
// In gonum's terms Y is distuv.Gamma{Alpha: α, Beta: 1/r}.

func invGammaY(shape, rate float64) distuv.Gamma {
	return distuv.Gamma{Alpha: shape, Beta: 1 / rate}
}

// Dinvgamma returns the inverse-gamma density at x. It returns NaN if
// shape < 0 or rate <= 0, and a structural zero for x <= 0.
func Dinvgamma(x, shape, rate float64, giveLog bool) float64 {
	if v, ok := missing(x, shape, rate); ok {
		return v
	}
	if shape < 0 || rate <= 0 {
		return nan
	}
	if x <= 0 || math.IsInf(x, 1) || shape == 0 || math.IsInf(shape, 1) || math.IsInf(rate, 1) {
		return d0(giveLog)
	}
	dens := invGammaY(shape, rate).LogProb(1/x) - 2*math.Log(x)
	return dexpLog(dens, giveLog)
}

// Pinvgamma returns the inverse-gamma distribution function at q.
func Pinvgamma(q, shape, rate float64, lowerTail, logP bool) float64 {
	if v, ok := missing(q, shape, rate); ok {
		return v
	}
	if shape < 0 || rate <= 0 {
		return nan
	}
	if q <= 0 || shape == 0 {
		return pt0(lowerTail, logP)
	}
	if math.IsInf(q, 1) {
		return pt1(lowerTail, logP)
	}
	// P(X <= q) = P(Y >= 1/q).
	y := invGammaY(shape, rate)
	return ptail(y.Survival(1/q), y.CDF(1/q), lowerTail, logP)
}

// Qinvgamma returns the inverse-gamma quantile function at p.
func Qinvgamma(p, shape, rate float64, lowerTail, logP bool) float64 {
	if v, ok := missing(p, shape, rate); ok {
		return v
	}
	if shape < 0 || rate <= 0 || badP(p, logP) {
		return nan
	}
	if isZeroP(p, lowerTail, logP) {
		return 0
	}
	if isOneP(p, lowerTail, logP) || shape == 0 {
		return inf
	}
	// x is the quantile of X iff 1/x is the quantile of Y for the
	// opposite tail.
	var y float64
	if lowerTail {
		y = mathext.GammaIncRegCompInv(shape, probP(p, logP))
	} else {
		y = mathext.GammaIncRegInv(shape, probP(p, logP))
	}
	return 1 / (y * rate)
}

// Rinvgamma draws one inverse-gamma variate as the reciprocal of a
// gamma variate.
func Rinvgamma(shape, rate float64, src rand.Source) float64 {
	if v, ok := missing(shape, rate); ok {
		return v
	}
	if shape <= 0 || rate <= 0 {
		if rate == 0 || shape == 0 {
			return inf
		}
		return nan
	}
	if math.IsInf(shape, 1) || math.IsInf(rate, 1) {
		return 0
	}
	y := invGammaY(shape, rate)
	y.Src = src
	return 1 / y.Rand()
}

// InvGammaDist is an inverse-gamma distribution.
type InvGammaDist struct {
	// Shape is the shape parameter α. Shape > 0.
	Shape float64

	// Rate is the rate parameter r. Rate > 0. 1/X has scale Rate.
	Rate float64
}

func (d InvGammaDist) PDF(x float64) float64 {
	return Dinvgamma(x, d.Shape, d.Rate, false)
}

func (d InvGammaDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d InvGammaDist) CDF(x float64) float64 {
	return Pinvgamma(x, d.Shape, d.Rate, true, false)
}

func (d InvGammaDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

func (d InvGammaDist) InvCDF(p float64) float64 {
	return Qinvgamma(p, d.Shape, d.Rate, true, false)
}

func (d InvGammaDist) InvCDFEach(ps []float64) []float64 {
	return each(d.InvCDF, ps)
}

// Bounds returns the 0.01% and 99% quantiles. The upper tail of an
// inverse-gamma distribution is heavy.
func (d InvGammaDist) Bounds() (float64, float64) {
	return d.InvCDF(0.0001), d.InvCDF(0.99)
}

// Mean returns the mean, which is +Inf for Shape <= 1.
func (d InvGammaDist) Mean() float64 {
	if d.Shape <= 1 {
		return inf
	}
	return 1 / (d.Rate * (d.Shape - 1))
}
