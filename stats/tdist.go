// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// stdT returns the standard t distribution with df degrees of
// freedom, or the standard normal if df is +Inf.
func stdT(df float64) interface {
	LogProb(float64) float64
	CDF(float64) float64
	Survival(float64) float64
	Quantile(float64) float64
} {
	if math.IsInf(df, 1) {
		return distuv.UnitNormal
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
}

// Dt returns the density at x of the t distribution with df degrees
// of freedom, location mu and scale sigma.
//
// Dt returns NaN if sigma < 0 or df <= 0. A sigma of 0 is a point
// mass at mu, with density +Inf there. A non-finite sigma gives a
// structural zero.
func Dt(x, df, mu, sigma float64, giveLog bool) float64 {
	if v, ok := missing(x, df, mu, sigma); ok {
		return v
	}
	if math.IsInf(sigma, 0) {
		return d0(giveLog)
	}
	if sigma < 0 || df <= 0 {
		return nan
	}
	if sigma == 0 {
		if x == mu {
			return inf
		}
		return d0(giveLog)
	}
	z := (x - mu) / sigma
	if math.IsInf(z, 0) {
		return d0(giveLog)
	}
	return dexpLog(stdT(df).LogProb(z)-math.Log(sigma), giveLog)
}

// Pt returns the t distribution function at q.
func Pt(q, df, mu, sigma float64, lowerTail, logP bool) float64 {
	if v, ok := missing(q, df, mu, sigma); ok {
		return v
	}
	if math.IsInf(q, 0) && q == mu {
		return nan
	}
	if sigma < 0 || df <= 0 {
		return nan
	}
	if sigma == 0 {
		if q < mu {
			return pt0(lowerTail, logP)
		}
		return pt1(lowerTail, logP)
	}
	z := (q - mu) / sigma
	if math.IsInf(z, 0) {
		if z < 0 {
			return pt0(lowerTail, logP)
		}
		return pt1(lowerTail, logP)
	}
	t := stdT(df)
	return ptail(t.CDF(z), t.Survival(z), lowerTail, logP)
}

// Qt returns the t quantile function at p.
func Qt(p, df, mu, sigma float64, lowerTail, logP bool) float64 {
	if v, ok := missing(p, df, mu, sigma); ok {
		return v
	}
	if sigma < 0 {
		return nan
	}
	if sigma == 0 {
		return mu
	}
	if df <= 0 || badP(p, logP) {
		return nan
	}
	if isZeroP(p, lowerTail, logP) {
		return -inf
	}
	if isOneP(p, lowerTail, logP) {
		return inf
	}
	// The standard t is symmetric, so an upper-tail p is the
	// negated lower-tail quantile of p.
	z := stdT(df).Quantile(probP(p, logP))
	if !lowerTail {
		z = -z
	}
	return mu + sigma*z
}

// Rt draws one t variate with df degrees of freedom, location mu and
// scale sigma. For finite df it draws one normal and one gamma
// variate; for infinite df, one normal.
func Rt(df, mu, sigma float64, src rand.Source) float64 {
	if v, ok := missing(df, mu, sigma); ok {
		return v
	}
	if df <= 0 || sigma < 0 || math.IsInf(mu, 0) || math.IsInf(sigma, 0) {
		return nan
	}
	if math.IsInf(df, 1) {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}.Rand()
	}
	return distuv.StudentsT{Mu: mu, Sigma: sigma, Nu: df, Src: src}.Rand()
}

// TDist is a location-scale t distribution.
type TDist struct {
	// Nu is the degrees of freedom. Nu > 0; +Inf gives a normal
	// distribution.
	Nu float64

	// Mu and Sigma are the location and scale. Sigma > 0.
	Mu, Sigma float64
}

func (d TDist) PDF(x float64) float64 {
	return Dt(x, d.Nu, d.Mu, d.Sigma, false)
}

func (d TDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d TDist) CDF(x float64) float64 {
	return Pt(x, d.Nu, d.Mu, d.Sigma, true, false)
}

func (d TDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

func (d TDist) InvCDF(p float64) float64 {
	return Qt(p, d.Nu, d.Mu, d.Sigma, true, false)
}

func (d TDist) InvCDFEach(ps []float64) []float64 {
	return each(d.InvCDF, ps)
}

func (d TDist) Bounds() (float64, float64) {
	return d.InvCDF(0.001), d.InvCDF(0.999)
}
