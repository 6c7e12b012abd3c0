// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nimble

import (
	"golang.org/x/exp/rand"

	"github.com/nimble-go/nimdist/recycle"
	"github.com/nimble-go/nimdist/rng"
	"github.com/nimble-go/nimdist/stats"
)

// Tail selects the tail and scale of a probability for the P and Q
// functions.
type Tail struct {
	Upper bool // upper tail, P[X > x]
	Log   bool // probabilities on the log scale
}

// params checks that each named parameter vector is non-empty when
// there is work to do.
func params(n int, names []string, ps ...[]float64) error {
	if n == 0 {
		return nil
	}
	for i, p := range ps {
		if err := nonEmpty(names[i], p); err != nil {
			return err
		}
	}
	return nil
}

var (
	rateName    = []string{"rate"}
	invGamNames = []string{"shape", "rate"}
	tNames      = []string{"df", "mu", "sigma"}

	intervalNames = []string{"t"}
)

// Dexp returns the exponential density at each x, recycling rate.
func Dexp(x, rate []float64, giveLog bool) ([]float64, error) {
	if err := params(len(x), rateName, rate); err != nil {
		return nil, err
	}
	return recycle.D1(x, rate, func(x, rate float64) float64 {
		return stats.Dexp(x, rate, giveLog)
	}), nil
}

// Pexp returns the exponential distribution function at each q.
func Pexp(q, rate []float64, tail Tail) ([]float64, error) {
	if err := params(len(q), rateName, rate); err != nil {
		return nil, err
	}
	return recycle.D1(q, rate, func(q, rate float64) float64 {
		return stats.Pexp(q, rate, !tail.Upper, tail.Log)
	}), nil
}

// Qexp returns the exponential quantile function at each p.
func Qexp(p, rate []float64, tail Tail) ([]float64, error) {
	if err := params(len(p), rateName, rate); err != nil {
		return nil, err
	}
	return recycle.D1(p, rate, func(p, rate float64) float64 {
		return stats.Qexp(p, rate, !tail.Upper, tail.Log)
	}), nil
}

// Rexp draws n exponential variates, recycling rate.
func Rexp(s *rng.Stream, n int, rate []float64) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if err := params(n, rateName, rate); err != nil {
		return nil, err
	}
	var out []float64
	s.Do(func(src rand.Source) {
		out = recycle.R1(n, rate, func(rate float64) float64 {
			return stats.Rexp(rate, src)
		})
	})
	return out, nil
}

// Dinvgamma returns the inverse-gamma density at each x, recycling
// shape and rate.
func Dinvgamma(x, shape, rate []float64, giveLog bool) ([]float64, error) {
	if err := params(len(x), invGamNames, shape, rate); err != nil {
		return nil, err
	}
	return recycle.D2(x, shape, rate, func(x, shape, rate float64) float64 {
		return stats.Dinvgamma(x, shape, rate, giveLog)
	}), nil
}

// Pinvgamma returns the inverse-gamma distribution function at each q.
func Pinvgamma(q, shape, rate []float64, tail Tail) ([]float64, error) {
	if err := params(len(q), invGamNames, shape, rate); err != nil {
		return nil, err
	}
	return recycle.D2(q, shape, rate, func(q, shape, rate float64) float64 {
		return stats.Pinvgamma(q, shape, rate, !tail.Upper, tail.Log)
	}), nil
}

// Qinvgamma returns the inverse-gamma quantile function at each p.
func Qinvgamma(p, shape, rate []float64, tail Tail) ([]float64, error) {
	if err := params(len(p), invGamNames, shape, rate); err != nil {
		return nil, err
	}
	return recycle.D2(p, shape, rate, func(p, shape, rate float64) float64 {
		return stats.Qinvgamma(p, shape, rate, !tail.Upper, tail.Log)
	}), nil
}

// Rinvgamma draws n inverse-gamma variates.
func Rinvgamma(s *rng.Stream, n int, shape, rate []float64) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if err := params(n, invGamNames, shape, rate); err != nil {
		return nil, err
	}
	var out []float64
	s.Do(func(src rand.Source) {
		out = recycle.R2(n, shape, rate, func(shape, rate float64) float64 {
			return stats.Rinvgamma(shape, rate, src)
		})
	})
	return out, nil
}

// Dt returns the location-scale t density at each x, recycling df,
// mu and sigma.
func Dt(x, df, mu, sigma []float64, giveLog bool) ([]float64, error) {
	if err := params(len(x), tNames, df, mu, sigma); err != nil {
		return nil, err
	}
	return recycle.D3(x, df, mu, sigma, func(x, df, mu, sigma float64) float64 {
		return stats.Dt(x, df, mu, sigma, giveLog)
	}), nil
}

// Pt returns the location-scale t distribution function at each q.
func Pt(q, df, mu, sigma []float64, tail Tail) ([]float64, error) {
	if err := params(len(q), tNames, df, mu, sigma); err != nil {
		return nil, err
	}
	return recycle.D3(q, df, mu, sigma, func(q, df, mu, sigma float64) float64 {
		return stats.Pt(q, df, mu, sigma, !tail.Upper, tail.Log)
	}), nil
}

// Qt returns the location-scale t quantile function at each p.
func Qt(p, df, mu, sigma []float64, tail Tail) ([]float64, error) {
	if err := params(len(p), tNames, df, mu, sigma); err != nil {
		return nil, err
	}
	return recycle.D3(p, df, mu, sigma, func(p, df, mu, sigma float64) float64 {
		return stats.Qt(p, df, mu, sigma, !tail.Upper, tail.Log)
	}), nil
}

// Rt draws n location-scale t variates.
func Rt(s *rng.Stream, n int, df, mu, sigma []float64) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if err := params(n, tNames, df, mu, sigma); err != nil {
		return nil, err
	}
	var out []float64
	s.Do(func(src rand.Source) {
		out = recycle.R3(n, df, mu, sigma, func(df, mu, sigma float64) float64 {
			return stats.Rt(df, mu, sigma, src)
		})
	})
	return out, nil
}
