// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dmvt returns the multivariate t density with df degrees of freedom
// at x, where n = len(x). chol is the upper Cholesky factor of the
// scale matrix, or of its inverse if param is Precision. The other
// arguments are as for Dmnorm.
//
// Dmvt returns NaN if df < n. An infinite df gives the multivariate
// normal density.
func Dmvt(x, mean, chol []float64, df float64, param CholParam, giveLog bool, own Ownership) float64 {
	n := float64(len(x))
	if v, done := mvCheck(x, mean, chol, giveLog, df <= 0 || df < n, df); done {
		return v
	}
	if math.IsInf(df, 1) {
		return Dmnorm(x, mean, chol, param, giveLog, own)
	}

	logDet, ss := mvQuad(x, mean, chol, param, own)
	dens := lgamma((df+n)/2) - lgamma(df/2) - n*lnSqrtPi - n/2*math.Log(df)
	dens += logDet - (df+n)/2*math.Log1p(ss/df)
	return dexpLog(dens, giveLog)
}

// Rmvt fills dst with a draw from the multivariate t distribution of
// dimension len(dst). The arguments are as for Dmvt.
//
// len(dst) standard normals are drawn, then one χ²(df) variate that
// scales them. No χ² variate is drawn if df is infinite.
func Rmvt(dst, mean, chol []float64, df float64, param CholParam, src rand.Source) {
	if !mvSampleOK(dst, mean, chol, df <= 0 || df < float64(len(dst)), df) {
		return
	}

	norms(dst, src)
	scaling := 1.0
	if !math.IsInf(df, 1) {
		scaling = math.Sqrt(df / distuv.ChiSquared{K: df, Src: src}.Rand())
	}
	mvTransform(dst, chol, param)
	for i := range dst {
		dst[i] = mean[i%len(mean)] + dst[i]*scaling
	}
}
