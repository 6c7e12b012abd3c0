// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/nimble-go/nimdist/nimble"
	"github.com/nimble-go/nimdist/rng"
)

type evalFunc func() ([]float64, error)

// quartet runs the operation selected by cfg.op. A nil function means
// the distribution does not support that operation.
func (cfg *config) quartet(d, p, q evalFunc, r func(*rng.Stream) ([]float64, error)) ([]float64, error) {
	var f evalFunc
	switch cfg.op {
	case "d":
		f = d
	case "p":
		f = p
	case "q":
		f = q
	case "r":
		if cfg.n < 0 {
			return nil, fmt.Errorf("%w: -n must not be negative", errUsage)
		}
		s, err := newStream(cfg.rng, cfg.seed)
		if err != nil {
			return nil, err
		}
		f = func() ([]float64, error) { return r(s) }
	default:
		return nil, fmt.Errorf("%w: unknown -op %q", errUsage, cfg.op)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: -dist %s does not support -op %s", errUsage, cfg.dist, cfg.op)
	}
	return f()
}

// param returns the named parameter, or def if it was not given and
// def is non-nil.
func (cfg *config) param(name string, def []float64) ([]float64, error) {
	if v, ok := cfg.params[name]; ok {
		return v, nil
	}
	if def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("%w: -dist %s needs parameter %s", errUsage, cfg.dist, name)
}

// run evaluates cfg.op for cfg.dist over xs.
func run(cfg config, xs []float64) ([]float64, error) {
	switch cfg.dist {
	case "exp":
		rate, err := cfg.param("rate", nil)
		if err != nil {
			return nil, err
		}
		return cfg.quartet(
			func() ([]float64, error) { return nimble.Dexp(xs, rate, cfg.giveLog) },
			func() ([]float64, error) { return nimble.Pexp(xs, rate, cfg.tail) },
			func() ([]float64, error) { return nimble.Qexp(xs, rate, cfg.tail) },
			func(s *rng.Stream) ([]float64, error) { return nimble.Rexp(s, cfg.n, rate) })

	case "invgamma":
		shape, err := cfg.param("shape", nil)
		if err != nil {
			return nil, err
		}
		rate, err := cfg.param("rate", nil)
		if err != nil {
			return nil, err
		}
		return cfg.quartet(
			func() ([]float64, error) { return nimble.Dinvgamma(xs, shape, rate, cfg.giveLog) },
			func() ([]float64, error) { return nimble.Pinvgamma(xs, shape, rate, cfg.tail) },
			func() ([]float64, error) { return nimble.Qinvgamma(xs, shape, rate, cfg.tail) },
			func(s *rng.Stream) ([]float64, error) { return nimble.Rinvgamma(s, cfg.n, shape, rate) })

	case "t":
		df, err := cfg.param("df", nil)
		if err != nil {
			return nil, err
		}
		mu, _ := cfg.param("mu", []float64{0})
		sigma, _ := cfg.param("sigma", []float64{1})
		return cfg.quartet(
			func() ([]float64, error) { return nimble.Dt(xs, df, mu, sigma, cfg.giveLog) },
			func() ([]float64, error) { return nimble.Pt(xs, df, mu, sigma, cfg.tail) },
			func() ([]float64, error) { return nimble.Qt(xs, df, mu, sigma, cfg.tail) },
			func(s *rng.Stream) ([]float64, error) { return nimble.Rt(s, cfg.n, df, mu, sigma) })

	case "cat":
		prob, err := cfg.param("prob", nil)
		if err != nil {
			return nil, err
		}
		return cfg.quartet(
			func() ([]float64, error) { return nimble.Dcat(xs, prob, cfg.giveLog) },
			nil, nil,
			func(s *rng.Stream) ([]float64, error) { return nimble.Rcat(s, cfg.n, prob) })

	case "interval":
		c, err := cfg.param("c", []float64{})
		if err != nil {
			return nil, err
		}
		t, err := cfg.param("t", nil)
		if err != nil {
			return nil, err
		}
		return cfg.quartet(
			func() ([]float64, error) { return nimble.Dinterval(xs, t, c, cfg.giveLog) },
			nil, nil,
			func(*rng.Stream) ([]float64, error) { return nimble.Rinterval(cfg.n, t, c) })

	case "constraint":
		cond, err := cfg.param("cond", nil)
		if err != nil {
			return nil, err
		}
		return cfg.quartet(
			func() ([]float64, error) { return nimble.Dconstraint(xs, cond, cfg.giveLog) },
			nil, nil,
			func(*rng.Stream) ([]float64, error) { return nimble.Rconstraint(cfg.n, cond) })
	}
	return nil, fmt.Errorf("%w: unknown -dist %q", errUsage, cfg.dist)
}
