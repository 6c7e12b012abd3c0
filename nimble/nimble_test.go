// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nimble

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/nimble-go/nimdist/rng"
	"github.com/nimble-go/nimdist/stats"
	"github.com/nimble-go/nimdist/validity"
)

func eye(n int) Matrix {
	m := Matrix{N: n, Data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		m.Data[i+i*n] = 1
	}
	return m
}

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.At(0, 1))
	assert.Equal(t, 2.0, m.At(1, 0))

	_, err = NewMatrix(2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrNotSquare)
	_, err = NewMatrix(-1, nil)
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestCholShapeErrors(t *testing.T) {
	bad := Matrix{N: 2, Data: []float64{1, 0, 1}}

	_, err := Dwish(eye(2), bad, 3, stats.Scale, false, stats.Borrow)
	assert.ErrorIs(t, err, ErrNotSquare)
	_, err = Dwish(eye(2), eye(3), 3, stats.Scale, false, stats.Borrow)
	assert.ErrorIs(t, err, ErrDimMismatch)
	_, err = Rwish(rng.NewPCG(1), bad, 3, stats.Scale, stats.Borrow)
	assert.ErrorIs(t, err, ErrNotSquare)

	_, err = Dmnorm([]float64{0, 0}, []float64{0}, eye(3), stats.Covariance, false, stats.Borrow)
	assert.ErrorIs(t, err, ErrDimMismatch)
	_, err = Dmnorm([]float64{0, 0}, nil, eye(2), stats.Covariance, false, stats.Borrow)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Rmvt(rng.NewPCG(1), nil, eye(2), 4, stats.Precision)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Dmvt([]float64{0}, []float64{0}, bad, 4, stats.Precision, false, stats.Borrow)
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestDmnormStandard(t *testing.T) {
	for _, param := range []stats.CholParam{stats.Covariance, stats.Precision} {
		got, err := Dmnorm([]float64{0, 0}, []float64{0}, eye(2), param, true, stats.Borrow)
		require.NoError(t, err)
		assert.InDelta(t, -math.Log(2*math.Pi), got, 1e-14, "param %v", param)
	}
}

func TestLongMeanTruncated(t *testing.T) {
	x := []float64{0.5, -1}
	short, err := Dmnorm(x, []float64{1, 2}, eye(2), stats.Covariance, true, stats.Borrow)
	require.NoError(t, err)
	long, err := Dmnorm(x, []float64{1, 2, 3}, eye(2), stats.Covariance, true, stats.Borrow)
	require.NoError(t, err)
	assert.Equal(t, short, long)

	v, err := Rmnorm(rng.NewPCG(1), []float64{1, 2, 3}, eye(2), stats.Precision)
	require.NoError(t, err)
	assert.Len(t, v, 2)
}

func TestDwishIdentity(t *testing.T) {
	// With x = I, S = I and df = p + 1 = 3, the density is
	// exp(-1) / (2^3 Γ_2(3/2)).
	got, err := Dwish(eye(2), eye(2), 3, stats.Scale, true, stats.Borrow)
	require.NoError(t, err)
	lgam := func(x float64) float64 { v, _ := math.Lgamma(x); return v }
	want := -1 - 3*math.Ln2 - 0.5*math.Log(math.Pi) - lgam(1.5) - lgam(1)
	assert.InDelta(t, want, got, 1e-12)
}

func TestSamplersDeterministic(t *testing.T) {
	draw := func(seed uint64) [][]float64 {
		s := rng.NewPCG(seed)
		w, err := Rwish(s, eye(3), 5, stats.Scale, stats.Borrow)
		require.NoError(t, err)
		mn, err := Rmnorm(s, []float64{1, 2}, eye(2), stats.Covariance)
		require.NoError(t, err)
		mt, err := Rmvt(s, []float64{0}, eye(2), 3, stats.Precision)
		require.NoError(t, err)
		d, err := Rdirch(s, []float64{1, 2, 3})
		require.NoError(t, err)
		m, err := Rmulti(s, 10, []float64{1, 1, 2})
		require.NoError(t, err)
		c, err := Rcat(s, 4, []float64{0.2, 0.8})
		require.NoError(t, err)
		e, err := Rexp(s, 3, []float64{1, 2})
		require.NoError(t, err)
		return [][]float64{w.Data, mn, mt, d, m, c, e}
	}
	assert.Equal(t, draw(42), draw(42))
	assert.NotEqual(t, draw(42), draw(43))
}

func TestRexpMatchesDirectDraws(t *testing.T) {
	got, err := Rexp(rng.NewPCG(7), 5, []float64{1, 2})
	require.NoError(t, err)

	src := rand.NewSource(7)
	want := make([]float64, 5)
	for i := range want {
		want[i] = stats.Rexp([]float64{1, 2}[i%2], src)
	}
	assert.Equal(t, want, got)
}

func TestRmultiKeepsProb(t *testing.T) {
	prob := []float64{1, 3}
	out, err := Rmulti(rng.NewPCG(3), 20, prob)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, prob)
	assert.Equal(t, 20.0, out[0]+out[1])
}

func TestCompositionalErrors(t *testing.T) {
	_, err := Ddirch(nil, nil, false)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Ddirch([]float64{0.5, 0.5}, []float64{1, 1, 1}, false)
	assert.ErrorIs(t, err, ErrDimMismatch)

	_, err = Dmulti([]float64{1, 2}, 4, []float64{0.5, 0.5}, false)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	_, err = Dmulti([]float64{1}, 1, []float64{0.5, 0.5}, false)
	assert.ErrorIs(t, err, ErrDimMismatch)

	// A missing count skips the sum check.
	got, err := Dmulti([]float64{validity.NA, 2}, 4, []float64{0.5, 0.5}, false)
	require.NoError(t, err)
	assert.True(t, validity.IsNA(got))

	_, err = Dcat([]float64{1}, nil, false)
	assert.ErrorIs(t, err, ErrEmpty)
	d, err := Dcat(nil, nil, false)
	require.NoError(t, err)
	assert.Empty(t, d)
	_, err = Rcat(rng.NewPCG(1), -1, []float64{1})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestDmulti(t *testing.T) {
	got, err := Dmulti([]float64{1, 1}, 2, []float64{1, 1}, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-15)

	// Non-integer counts that sum to size are outside the support.
	got, err = Dmulti([]float64{1.5, 1.5}, 3, []float64{1, 1}, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	got, err = Dmulti([]float64{0.5, 0.5}, 1, []float64{1, 1}, true)
	require.NoError(t, err)
	assert.Equal(t, math.Inf(-1), got)
}

func TestEmptyResults(t *testing.T) {
	s := rng.NewPCG(1)

	d, err := Rdirch(s, nil)
	require.NoError(t, err)
	assert.Empty(t, d)
	m, err := Rmulti(s, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	// No draws are requested, so empty parameters are fine.
	e, err := Rexp(s, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, e)
	c, err := Rcat(s, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, c)
	x, err := Dt(nil, nil, nil, nil, false)
	require.NoError(t, err)
	assert.Empty(t, x)
}

func TestScalarErrors(t *testing.T) {
	s := rng.NewPCG(1)
	_, err := Dexp([]float64{1}, nil, false)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Pinvgamma([]float64{1}, []float64{1}, nil, Tail{})
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Qt([]float64{0.5}, []float64{1}, nil, []float64{1}, Tail{})
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Rt(s, -2, []float64{1}, []float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrNegativeCount)
	_, err = Rinvgamma(s, 2, []float64{1}, nil)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Rconstraint(-1, []float64{1})
	assert.ErrorIs(t, err, ErrNegativeCount)
	_, err = Dinterval([]float64{0}, nil, []float64{1}, false)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRecycledDensity(t *testing.T) {
	got, err := Dexp([]float64{1, 1, 1, 1}, []float64{1, 2}, false)
	require.NoError(t, err)
	r1, r2 := math.Exp(-1), 2*math.Exp(-2)
	assert.InDeltaSlice(t, []float64{r1, r2, r1, r2}, got, 1e-15)

	got, err = Dt([]float64{0, 0, 0}, []float64{math.Inf(1)}, []float64{0}, []float64{1, 2, 4}, true)
	require.NoError(t, err)
	ln := -0.5 * math.Log(2*math.Pi)
	assert.InDeltaSlice(t, []float64{ln, ln - math.Ln2, ln - 2*math.Ln2}, got, 1e-14)
}

func TestTail(t *testing.T) {
	lower, err := Pexp([]float64{1}, []float64{2}, Tail{})
	require.NoError(t, err)
	upper, err := Pexp([]float64{1}, []float64{2}, Tail{Upper: true})
	require.NoError(t, err)
	logUpper, err := Pexp([]float64{1}, []float64{2}, Tail{Upper: true, Log: true})
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-2), lower[0], 1e-15)
	assert.InDelta(t, math.Exp(-2), upper[0], 1e-15)
	assert.InDelta(t, -2, logUpper[0], 1e-15)

	q, err := Qexp(upper, []float64{2}, Tail{Upper: true})
	require.NoError(t, err)
	assert.InDelta(t, 1, q[0], 1e-12)

	p, err := Pinvgamma([]float64{0.5, 2}, []float64{3}, []float64{1}, Tail{})
	require.NoError(t, err)
	back, err := Qinvgamma(p, []float64{3}, []float64{1}, Tail{})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 2}, back, 1e-9)

	pt, err := Pt([]float64{1.5}, []float64{4}, []float64{1}, []float64{2}, Tail{Log: true})
	require.NoError(t, err)
	qt, err := Qt(pt, []float64{4}, []float64{1}, []float64{2}, Tail{Log: true})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, qt[0], 1e-9)
}

func TestIndicators(t *testing.T) {
	c := []float64{1, 3}
	r, err := Rinterval(4, []float64{0.5, 1.5, 3, 4}, c)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 2}, r)
	r, err = Rinterval(5, []float64{0.5, 4}, c)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 0, 2, 0}, r)
	r, err = Rinterval(0, nil, c)
	require.NoError(t, err)
	assert.Empty(t, r)
	_, err = Rinterval(-1, []float64{1}, c)
	assert.ErrorIs(t, err, ErrNegativeCount)
	_, err = Rinterval(2, nil, c)
	assert.ErrorIs(t, err, ErrEmpty)

	d, err := Dinterval([]float64{0, 1, 1, 2}, []float64{0.5, 1.5}, c, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0, 0}, d)

	d, err = Dconstraint([]float64{1, 0, 1}, []float64{1, 1, 0}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, d)

	r, err = Rconstraint(3, []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, r)
}

func TestInvgammaAndTDraws(t *testing.T) {
	s := rng.NewPCG(9)
	ig, err := Rinvgamma(s, 4, []float64{2, 3}, []float64{1})
	require.NoError(t, err)
	for _, v := range ig {
		assert.Greater(t, v, 0.0)
	}
	td, err := Rt(s, 4, []float64{5}, []float64{10, -10}, []float64{0})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, -10, 10, -10}, td)
}
