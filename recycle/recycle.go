// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recycle applies scalar distribution functions element-wise
// under the classic recycling rule: for observation i, a parameter
// vector p contributes p[i mod len(p)].
//
// The D functions evaluate f once per element of the observation
// vector x and return a result of the same length. The R functions
// evaluate f n times for samplers, which have no observation vector.
// Parameter vectors must not be empty unless there is nothing to
// evaluate.
//
// When every parameter is a single value, the per-parameter cursors
// are skipped entirely.
package recycle // import "github.com/nimble-go/nimdist/recycle"

// cursor walks a parameter vector cyclically.
type cursor struct {
	v []float64
	i int
}

func (c *cursor) next() float64 {
	x := c.v[c.i]
	if c.i++; c.i == len(c.v) {
		c.i = 0
	}
	return x
}

func scalar(ps ...[]float64) bool {
	for _, p := range ps {
		if len(p) != 1 {
			return false
		}
	}
	return true
}

// D1 returns f(x[i], a[i mod len(a)]) for each i.
func D1(x, a []float64, f func(x, a float64) float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	if scalar(a) {
		a0 := a[0]
		for i, xi := range x {
			out[i] = f(xi, a0)
		}
		return out
	}
	ca := cursor{v: a}
	for i, xi := range x {
		out[i] = f(xi, ca.next())
	}
	return out
}

// D2 is D1 with two parameter vectors.
func D2(x, a, b []float64, f func(x, a, b float64) float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	if scalar(a, b) {
		a0, b0 := a[0], b[0]
		for i, xi := range x {
			out[i] = f(xi, a0, b0)
		}
		return out
	}
	ca, cb := cursor{v: a}, cursor{v: b}
	for i, xi := range x {
		out[i] = f(xi, ca.next(), cb.next())
	}
	return out
}

// D3 is D1 with three parameter vectors.
func D3(x, a, b, c []float64, f func(x, a, b, c float64) float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	if scalar(a, b, c) {
		a0, b0, c0 := a[0], b[0], c[0]
		for i, xi := range x {
			out[i] = f(xi, a0, b0, c0)
		}
		return out
	}
	ca, cb, cc := cursor{v: a}, cursor{v: b}, cursor{v: c}
	for i, xi := range x {
		out[i] = f(xi, ca.next(), cb.next(), cc.next())
	}
	return out
}

// R1 returns f(a[i mod len(a)]) for i in [0, n). Calls are made in
// order of i, so a sampler's draws are made in output order.
func R1(n int, a []float64, f func(a float64) float64) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if scalar(a) {
		a0 := a[0]
		for i := range out {
			out[i] = f(a0)
		}
		return out
	}
	ca := cursor{v: a}
	for i := range out {
		out[i] = f(ca.next())
	}
	return out
}

// R2 is R1 with two parameter vectors.
func R2(n int, a, b []float64, f func(a, b float64) float64) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if scalar(a, b) {
		a0, b0 := a[0], b[0]
		for i := range out {
			out[i] = f(a0, b0)
		}
		return out
	}
	ca, cb := cursor{v: a}, cursor{v: b}
	for i := range out {
		out[i] = f(ca.next(), cb.next())
	}
	return out
}

// R3 is R1 with three parameter vectors.
func R3(n int, a, b, c []float64, f func(a, b, c float64) float64) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if scalar(a, b, c) {
		a0, b0, c0 := a[0], b[0], c[0]
		for i := range out {
			out[i] = f(a0, b0, c0)
		}
		return out
	}
	ca, cb, cc := cursor{v: a}, cursor{v: b}, cursor{v: c}
	for i := range out {
		out[i] = f(ca.next(), cb.next(), cc.next())
	}
	return out
}
