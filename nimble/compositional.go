// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nimble

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/nimble-go/nimdist/recycle"
	"github.com/nimble-go/nimdist/rng"
	"github.com/nimble-go/nimdist/stats"
	"github.com/nimble-go/nimdist/validity"
)

func sameLen(xName string, x []float64, pName string, p []float64) error {
	if len(x) != len(p) {
		return fmt.Errorf("%w: %s has length %d, %s has length %d", ErrDimMismatch, xName, len(x), pName, len(p))
	}
	return nil
}

// Ddirch returns the Dirichlet density at x. x and alpha must have
// the same, non-zero, length.
func Ddirch(x, alpha []float64, giveLog bool) (float64, error) {
	if err := nonEmpty("alpha", alpha); err != nil {
		return 0, err
	}
	if err := sameLen("x", x, "alpha", alpha); err != nil {
		return 0, err
	}
	return stats.Ddirch(x, alpha, giveLog), nil
}

// Rdirch draws a Dirichlet vector of length len(alpha). An empty
// alpha gives an empty result.
func Rdirch(s *rng.Stream, alpha []float64) ([]float64, error) {
	out := make([]float64, len(alpha))
	if len(alpha) == 0 {
		return out, nil
	}
	s.Do(func(src rand.Source) {
		stats.Rdirch(out, alpha, src)
	})
	return out, nil
}

// sumTol is the tolerance on the difference between the sum of the
// multinomial counts and size.
const sumTol = 10 * 2.220446049250313e-16

// Dmulti returns the multinomial probability of counts x. x and prob
// must have the same, non-zero, length, and the counts must sum to
// size. Counts that are Missing, Invalid or not finite are passed
// through unchecked so that the usual numeric results apply, as are
// non-integer counts that sum to size, which have probability zero.
func Dmulti(x []float64, size float64, prob []float64, giveLog bool) (float64, error) {
	if err := nonEmpty("prob", prob); err != nil {
		return 0, err
	}
	if err := sameLen("x", x, "prob", prob); err != nil {
		return 0, err
	}
	if validity.AllFinite(x) && validity.IsFinite(size) {
		sum := floats.Sum(x)
		if math.Abs(sum-size) > sumTol {
			return 0, fmt.Errorf("%w: counts sum to %v, size is %v", ErrSizeMismatch, sum, size)
		}
	}
	return stats.Dmulti(x, size, prob, giveLog), nil
}

// Rmulti draws multinomial counts for size trials over len(prob)
// categories. prob is not modified. An empty prob gives an empty
// result.
func Rmulti(s *rng.Stream, size float64, prob []float64) ([]float64, error) {
	out := make([]float64, len(prob))
	if len(prob) == 0 {
		return out, nil
	}
	s.Do(func(src rand.Source) {
		stats.Rmulti(out, size, prob, stats.Borrow, src)
	})
	return out, nil
}

// Dcat returns the categorical probability of each element of x.
func Dcat(x, prob []float64, giveLog bool) ([]float64, error) {
	if len(x) == 0 {
		return []float64{}, nil
	}
	if err := nonEmpty("prob", prob); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = stats.Dcat(xi, prob, giveLog)
	}
	return out, nil
}

// Rcat draws n categories.
func Rcat(s *rng.Stream, n int, prob []float64) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if n > 0 {
		if err := nonEmpty("prob", prob); err != nil {
			return nil, err
		}
	}
	out := make([]float64, n)
	s.Do(func(src rand.Source) {
		for i := range out {
			out[i] = stats.Rcat(prob, src)
		}
	})
	return out, nil
}

// Dinterval returns the interval-censoring indicator for each
// element of x, recycling t. c must be sorted; this is not checked.
func Dinterval(x, t, c []float64, giveLog bool) ([]float64, error) {
	if len(x) > 0 {
		if err := nonEmpty("t", t); err != nil {
			return nil, err
		}
	}
	return recycle.D1(x, t, func(x, t float64) float64 {
		return stats.Dinterval(x, t, c, giveLog)
	}), nil
}

// Rinterval returns the interval containing t for n values of t,
// recycled. It makes no draws.
func Rinterval(n int, t, c []float64) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if err := params(n, intervalNames, t); err != nil {
		return nil, err
	}
	return recycle.R1(n, t, func(t float64) float64 {
		return stats.Rinterval(t, c)
	}), nil
}

// Dconstraint returns the constraint indicator for each element of
// x, recycling cond.
func Dconstraint(x, cond []float64, giveLog bool) ([]float64, error) {
	if len(x) > 0 {
		if err := nonEmpty("cond", cond); err != nil {
			return nil, err
		}
	}
	return recycle.D1(x, cond, func(x, cond float64) float64 {
		return stats.Dconstraint(x, cond, giveLog)
	}), nil
}

// Rconstraint returns n values of cond, recycled.
func Rconstraint(n int, cond []float64) ([]float64, error) {
	if err := checkCount(n); err != nil {
		return nil, err
	}
	if n > 0 {
		if err := nonEmpty("cond", cond); err != nil {
			return nil, err
		}
	}
	return recycle.R1(n, cond, stats.Rconstraint), nil
}
