// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/nimble-go/nimdist/linalg"
	"github.com/nimble-go/nimdist/validity"
)

func aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

// raeq is aeq with a tolerance relative to the magnitude of expect.
func raeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= 1e-9*math.Max(1, math.Abs(expect))
}

// same reports whether got is expect, treating NA and NaN as
// distinct values.
func same(expect, got float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return validity.Classify(expect) == validity.Classify(got)
	}
	return aeq(expect, got)
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if !same(want, got) {
			t.Errorf("%s(%v) = %v; want %v", name, x, got, want)
		}
	}
}

// forBackends runs f once for each linear algebra backend.
func forBackends(t *testing.T, f func(t *testing.T)) {
	old := linalg.Implementation()
	defer linalg.Use(old)
	for _, be := range []struct {
		name string
		b    linalg.Backend
	}{{"Native", linalg.Native{}}, {"BLAS", linalg.BLAS{}}} {
		linalg.Use(be.b)
		t.Run(be.name, f)
	}
}

// randSPD returns a random n×n symmetric positive definite matrix.
func randSPD(rnd *rand.Rand, n int) *mat.SymDense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}
	var s mat.SymDense
	s.SymOuterK(1, a)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, s.At(i, i)+float64(n))
	}
	return &s
}

// colMajor returns m as a column-major buffer.
func colMajor(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			out[i+j*r] = m.At(i, j)
		}
	}
	return out
}

// cholOf returns the column-major upper Cholesky factor of s, with
// junk in the strict lower triangle.
func cholOf(t *testing.T, s mat.Symmetric) []float64 {
	var chol mat.Cholesky
	if !chol.Factorize(s) {
		t.Fatalf("matrix is not positive definite")
	}
	var u mat.TriDense
	chol.UTo(&u)
	buf := colMajor(&u)
	n := s.SymmetricDim()
	for j := 0; j < n; j++ {
		for i := j + 1; i < n; i++ {
			buf[i+j*n] = 1e3 * float64(i-j)
		}
	}
	return buf
}

// inverse returns the inverse of the symmetric positive definite s.
func inverse(t *testing.T, s mat.Symmetric) *mat.SymDense {
	var chol mat.Cholesky
	if !chol.Factorize(s) {
		t.Fatalf("matrix is not positive definite")
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		t.Fatal(err)
	}
	return &inv
}

func identity(n int) []float64 {
	m := make([]float64, n*n)
	for i := 0; i < n; i++ {
		m[i+i*n] = 1
	}
	return m
}

func clone(x []float64) []float64 {
	return append([]float64(nil), x...)
}

func isNaN(x float64) bool {
	return validity.Classify(x) == validity.Invalid
}
