// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nimble-go/nimdist/linalg"
	"github.com/nimble-go/nimdist/validity"
)

// Dmnorm returns the multivariate normal density at x, where n =
// len(x). mean is recycled to length n. chol is the n×n upper
// Cholesky factor of the covariance matrix, or of the precision
// matrix if param is Precision. Only its upper triangle is read.
//
// Dmnorm returns NaN if chol has a non-positive diagonal entry and a
// structural zero if any input is not finite. If own is Move, x is
// overwritten.
func Dmnorm(x, mean, chol []float64, param CholParam, giveLog bool, own Ownership) float64 {
	if v, done := mvCheck(x, mean, chol, giveLog, false); done {
		return v
	}
	logDet, ss := mvQuad(x, mean, chol, param, own)
	n := float64(len(x))
	return dexpLog(-n*lnSqrt2Pi+logDet-0.5*ss, giveLog)
}

// Rmnorm fills dst with a draw from the multivariate normal
// distribution of dimension len(dst). The arguments are as for
// Dmnorm.
//
// len(dst) standard normals are drawn, then transformed.
func Rmnorm(dst, mean, chol []float64, param CholParam, src rand.Source) {
	if !mvSampleOK(dst, mean, chol, false) {
		return
	}
	norms(dst, src)
	mvTransform(dst, chol, param)
	for i := range dst {
		dst[i] += mean[i%len(mean)]
	}
}

// mvCheck applies the checks shared by the multivariate normal and t
// densities. scalars are any further parameters and bad reports
// whether they are out of their domain. If done, v is the result.
func mvCheck(x, mean, chol []float64, giveLog, bad bool, scalars ...float64) (v float64, done bool) {
	n := len(x)
	k := validity.Merge(validity.Check(scalars...), validity.CheckSlices(x, mean))
	if k = validity.Merge(k, checkUpper(n, chol)); k != validity.Ordinary {
		return validity.Sentinel(k), true
	}
	if bad || !linalg.PositiveDiag(n, chol) {
		return nan, true
	}
	if !validity.AllFinite(x) || !validity.AllFinite(mean) || !finiteUpper(n, chol) {
		return d0(giveLog), true
	}
	return 0, false
}

// mvQuad returns the log-determinant term of the density, ±Σ ln
// diag(U), and ‖L‖², where L is x-mean whitened by U.
func mvQuad(x, mean, chol []float64, param CholParam, own Ownership) (logDet, ss float64) {
	n := len(x)
	work := scratch(x, own)
	for i := range work {
		work[i] -= mean[i%len(mean)]
	}
	be := linalg.Implementation()
	logDet = linalg.LogDiag(n, chol)
	if param == Precision {
		be.Trmv(blas.NoTrans, n, chol, work)
	} else {
		be.Trsv(blas.Trans, n, chol, work)
		logDet = -logDet
	}
	return logDet, sumSq(work)
}

// mvSampleOK checks the parameters of a multivariate normal or t
// sampler, filling dst with the sentinel if they are not usable.
func mvSampleOK(dst, mean, chol []float64, bad bool, scalars ...float64) bool {
	n := len(dst)
	k := validity.Merge(validity.Check(scalars...), validity.CheckSlices(mean))
	if k = validity.Merge(k, checkUpper(n, chol)); k != validity.Ordinary {
		validity.Fill(dst, k)
		return false
	}
	if bad || !validity.AllFinite(mean) || !finiteUpper(n, chol) || !linalg.PositiveDiag(n, chol) {
		validity.Fill(dst, validity.Invalid)
		return false
	}
	return true
}

// mvTransform maps standard normals z to draws with covariance UᵀU,
// or (UᵀU)⁻¹ if param is Precision.
func mvTransform(z, chol []float64, param CholParam) {
	be := linalg.Implementation()
	if param == Precision {
		be.Trsv(blas.NoTrans, len(z), chol, z)
	} else {
		be.Trmv(blas.Trans, len(z), chol, z)
	}
}

// norms fills dst with standard normal draws.
func norms(dst []float64, src rand.Source) {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for i := range dst {
		dst[i] = norm.Rand()
	}
}
