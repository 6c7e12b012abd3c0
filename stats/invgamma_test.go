// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestInvGammaDist(t *testing.T) {
	// With shape 1, 1/X is exponential with mean r, so
	// P(X <= x) = exp(-1/(r·x)).
	const r = 2
	dist := InvGammaDist{Shape: 1, Rate: r}
	pdf := func(x float64) float64 { return math.Exp(-1/(r*x)) / (r * x * x) }
	testFunc(t, fmt.Sprintf("%+v.PDF", dist), dist.PDF,
		map[float64]float64{
			-1:  0,
			0:   0,
			0.1: pdf(0.1),
			1:   pdf(1),
			7:   pdf(7),
			inf: 0,
		})
	testFunc(t, fmt.Sprintf("%+v.CDF", dist), dist.CDF,
		map[float64]float64{
			-1:  0,
			0:   0,
			0.5: math.Exp(-1),
			4:   math.Exp(-0.125),
			inf: 1,
		})
	testFunc(t, fmt.Sprintf("%+v.InvCDF", dist), dist.InvCDF,
		map[float64]float64{
			0:                0,
			math.Exp(-1):     0.5,
			math.Exp(-0.125): 4,
			1:                inf,
		})
	if m := dist.Mean(); m != inf {
		t.Errorf("Mean = %v; want +Inf", m)
	}

	// Shape 2: P(X <= x) = exp(-z)(1+z) with z = 1/(r·x).
	dist = InvGammaDist{Shape: 2, Rate: 0.5}
	for _, x := range []float64{0.2, 1, 3} {
		z := 1 / (0.5 * x)
		if want, got := math.Exp(-z)*(1+z), dist.CDF(x); !aeq(want, got) {
			t.Errorf("%+v.CDF(%v) = %v; want %v", dist, x, got, want)
		}
		if want, got := z*z*math.Exp(-z)/x, dist.PDF(x); !aeq(want, got) {
			t.Errorf("%+v.PDF(%v) = %v; want %v", dist, x, got, want)
		}
	}
	if m := dist.Mean(); m != 2 {
		t.Errorf("Mean = %v; want 2", m)
	}
}

func TestInvGammaTails(t *testing.T) {
	for _, shape := range []float64{0.5, 1, 3.5} {
		for _, q := range []float64{0.05, 0.7, 12} {
			lower := Pinvgamma(q, shape, 1.5, true, false)
			upper := Pinvgamma(q, shape, 1.5, false, false)
			if !raeq(1, lower+upper) {
				t.Errorf("Pinvgamma(%v, %v): %v + %v != 1", q, shape, lower, upper)
			}
			for _, lowerTail := range []bool{true, false} {
				for _, logP := range []bool{true, false} {
					p := Pinvgamma(q, shape, 1.5, lowerTail, logP)
					if got := Qinvgamma(p, shape, 1.5, lowerTail, logP); math.Abs(got-q) > 1e-6*q {
						t.Errorf("Qinvgamma(Pinvgamma(%v, %v), %v, %v) = %v", q, shape, lowerTail, logP, got)
					}
				}
			}
		}
	}
}

func TestInvGammaEdges(t *testing.T) {
	for _, test := range []struct {
		shape, rate float64
	}{{-1, 1}, {1, 0}, {1, -1}} {
		if v := Dinvgamma(1, test.shape, test.rate, false); !isNaN(v) {
			t.Errorf("Dinvgamma(1, %v, %v) = %v; want NaN", test.shape, test.rate, v)
		}
		if v := Pinvgamma(1, test.shape, test.rate, true, false); !isNaN(v) {
			t.Errorf("Pinvgamma(1, %v, %v) = %v; want NaN", test.shape, test.rate, v)
		}
		if v := Qinvgamma(0.5, test.shape, test.rate, true, false); !isNaN(v) {
			t.Errorf("Qinvgamma(0.5, %v, %v) = %v; want NaN", test.shape, test.rate, v)
		}
	}
	if v := Dinvgamma(-2, 1, 1, true); v != math.Inf(-1) {
		t.Errorf("log Dinvgamma(-2) = %v; want -Inf", v)
	}

	src := rand.NewSource(1)
	if v := Rinvgamma(0, 1, src); v != inf {
		t.Errorf("Rinvgamma(0, 1) = %v; want +Inf", v)
	}
	if v := Rinvgamma(-1, 1, src); !isNaN(v) {
		t.Errorf("Rinvgamma(-1, 1) = %v; want NaN", v)
	}
}

func TestRinvgamma(t *testing.T) {
	// The median of 1/X is the median of a gamma variate.
	const draws = 20000
	src := rand.NewSource(2)
	dist := InvGammaDist{Shape: 3, Rate: 2}
	median := dist.InvCDF(0.5)
	below := 0
	for i := 0; i < draws; i++ {
		if Rinvgamma(3, 2, src) <= median {
			below++
		}
	}
	if frac := float64(below) / draws; math.Abs(frac-0.5) > 0.02 {
		t.Errorf("fraction below median = %v; want 0.5", frac)
	}
}
