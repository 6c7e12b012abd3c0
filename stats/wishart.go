// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nimble-go/nimdist/linalg"
	"github.com/nimble-go/nimdist/validity"
)

// Dwish returns the Wishart density with df degrees of freedom at the
// p×p symmetric matrix x. chol is the upper Cholesky factor U of the
// scale matrix S = UᵀU, or of S⁻¹ if param is Rate. All of x is
// checked for missing and non-finite values but only its upper
// triangle enters the density. The lower triangle of chol is ignored.
//
// Dwish returns NaN if df < p or if chol has a non-positive diagonal
// entry. It returns a structural zero if x, chol or df is not finite
// or if x is not positive definite.
//
// If own is Move, x is used as scratch space and is overwritten.
func Dwish(x, chol []float64, df float64, p int, param WishartParam, giveLog bool, own Ownership) float64 {
	k := validity.Merge(validity.Check(df), validity.CheckSlices(x))
	if k = validity.Merge(k, checkUpper(p, chol)); k != validity.Ordinary {
		return validity.Sentinel(k)
	}
	fp := float64(p)
	if df < fp || !linalg.PositiveDiag(p, chol) {
		return nan
	}
	if math.IsInf(df, 0) || !validity.AllFinite(x) || !finiteUpper(p, chol) {
		return d0(giveLog)
	}

	dens := -(df*fp/2*ln2 + fp*(fp-1)/2*lnSqrtPi)
	for i := 0; i < p; i++ {
		dens -= lgamma((df - float64(i)) / 2)
	}
	if param == Scale {
		dens -= df * linalg.LogDiag(p, chol)
	} else {
		dens += df * linalg.LogDiag(p, chol)
	}

	// Factor x = VᵀV. The trace term tr(S⁻¹X) is then ‖U⁻ᵀVᵀ‖²
	// for a scale factor and ‖UVᵀ‖² for a rate factor.
	be := linalg.Implementation()
	work := scratch(x, own)
	logDetX, ok := linalg.CholLogDet(be, p, work)
	if !ok {
		return d0(giveLog)
	}
	dens += (df - fp - 1) * logDetX
	linalg.TransposeUpper(p, work)
	if param == Scale {
		be.Trsm(blas.Trans, p, chol, work)
	} else {
		be.Trmm(blas.NoTrans, p, chol, work)
	}
	dens -= 0.5 * sumSq(work)

	return dexpLog(dens, giveLog)
}

// Rwish fills dst with a p×p draw from the Wishart distribution with
// df degrees of freedom. chol and param are as for Dwish. The full
// symmetric matrix is written.
//
// The draw uses the Bartlett decomposition. For each column j in
// order, one χ²(df-j) variate is drawn for the diagonal, then j
// standard normals for the off-diagonal entries.
//
// If the parameters are Missing, dst is filled with NA. If they are
// otherwise invalid, including df < p, dst is filled with NaN and no
// draws are made. If own is Move, chol is used as scratch space and is
// overwritten.
func Rwish(dst, chol []float64, df float64, p int, param WishartParam, own Ownership, src rand.Source) {
	if k := validity.Merge(validity.Check(df), checkUpper(p, chol)); k != validity.Ordinary {
		validity.Fill(dst, k)
		return
	}
	if df < float64(p) || math.IsInf(df, 0) || !finiteUpper(p, chol) || !linalg.PositiveDiag(p, chol) {
		validity.Fill(dst, validity.Invalid)
		return
	}

	// Lower triangular Bartlett factor A.
	for i := range dst {
		dst[i] = 0
	}
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for j := 0; j < p; j++ {
		dst[j+j*p] = math.Sqrt(distuv.ChiSquared{K: df - float64(j), Src: src}.Rand())
		for i := 0; i < j; i++ {
			dst[j+i*p] = norm.Rand()
		}
	}

	// W = (LA)(LA)ᵀ for any L with LLᵀ = S: L = Uᵀ for a scale
	// factor and L = U⁻¹ for a rate factor.
	be := linalg.Implementation()
	if param == Scale {
		be.Trmm(blas.Trans, p, chol, dst)
	} else {
		be.Trsm(blas.NoTrans, p, chol, dst)
	}
	var w []float64
	if own == Move {
		w = chol
	} else {
		w = make([]float64, p*p)
	}
	be.GemmNT(p, dst, dst, w)
	copy(dst, w)
}
