// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nimble

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/nimble-go/nimdist/rng"
	"github.com/nimble-go/nimdist/stats"
)

// cholDims checks that chol is square and n×n.
func cholDims(chol Matrix, n int) error {
	if err := chol.check("chol"); err != nil {
		return err
	}
	if chol.N != n {
		return fmt.Errorf("%w: chol is %d×%d, want %d×%d", ErrDimMismatch, chol.N, chol.N, n, n)
	}
	return nil
}

// meanDims checks that mean can be recycled to length n. A mean
// longer than n is truncated.
func meanDims(mean []float64, n int) error {
	if n > 0 {
		return nonEmpty("mean", mean)
	}
	return nil
}

// Dwish returns the Wishart density at x. See stats.Dwish.
func Dwish(x, chol Matrix, df float64, param stats.WishartParam, giveLog bool, own stats.Ownership) (float64, error) {
	if err := x.check("x"); err != nil {
		return 0, err
	}
	if err := cholDims(chol, x.N); err != nil {
		return 0, err
	}
	return stats.Dwish(x.Data, chol.Data, df, x.N, param, giveLog, own), nil
}

// Rwish draws a Wishart matrix with the dimension of chol. See
// stats.Rwish.
func Rwish(s *rng.Stream, chol Matrix, df float64, param stats.WishartParam, own stats.Ownership) (Matrix, error) {
	if err := chol.check("chol"); err != nil {
		return Matrix{}, err
	}
	w := Matrix{N: chol.N, Data: make([]float64, chol.N*chol.N)}
	s.Do(func(src rand.Source) {
		stats.Rwish(w.Data, chol.Data, df, chol.N, param, own, src)
	})
	return w, nil
}

// Dmnorm returns the multivariate normal density at x. mean is
// recycled to len(x). See stats.Dmnorm.
func Dmnorm(x, mean []float64, chol Matrix, param stats.CholParam, giveLog bool, own stats.Ownership) (float64, error) {
	if err := mvDims(x, mean, chol); err != nil {
		return 0, err
	}
	return stats.Dmnorm(x, mean, chol.Data, param, giveLog, own), nil
}

// Rmnorm draws a multivariate normal vector with the dimension of
// chol. See stats.Rmnorm.
func Rmnorm(s *rng.Stream, mean []float64, chol Matrix, param stats.CholParam) ([]float64, error) {
	if err := chol.check("chol"); err != nil {
		return nil, err
	}
	if err := meanDims(mean, chol.N); err != nil {
		return nil, err
	}
	out := make([]float64, chol.N)
	s.Do(func(src rand.Source) {
		stats.Rmnorm(out, mean, chol.Data, param, src)
	})
	return out, nil
}

// Dmvt returns the multivariate t density at x. See stats.Dmvt.
func Dmvt(x, mean []float64, chol Matrix, df float64, param stats.CholParam, giveLog bool, own stats.Ownership) (float64, error) {
	if err := mvDims(x, mean, chol); err != nil {
		return 0, err
	}
	return stats.Dmvt(x, mean, chol.Data, df, param, giveLog, own), nil
}

// Rmvt draws a multivariate t vector with the dimension of chol. See
// stats.Rmvt.
func Rmvt(s *rng.Stream, mean []float64, chol Matrix, df float64, param stats.CholParam) ([]float64, error) {
	if err := chol.check("chol"); err != nil {
		return nil, err
	}
	if err := meanDims(mean, chol.N); err != nil {
		return nil, err
	}
	out := make([]float64, chol.N)
	s.Do(func(src rand.Source) {
		stats.Rmvt(out, mean, chol.Data, df, param, src)
	})
	return out, nil
}

func mvDims(x, mean []float64, chol Matrix) error {
	if err := cholDims(chol, len(x)); err != nil {
		return err
	}
	return meanDims(mean, len(x))
}
