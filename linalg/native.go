// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/blas"
)

// Native is the reference Backend. Its loops are column oriented to
// match the storage order.
type Native struct{}

func (Native) Trsv(t blas.Transpose, n int, u, x []float64) {
	if t == blas.NoTrans {
		// Back substitution.
		for j := n - 1; j >= 0; j-- {
			x[j] /= u[j+j*n]
			tmp := x[j]
			col := u[j*n : j*n+j]
			for i, uij := range col {
				x[i] -= tmp * uij
			}
		}
		return
	}
	// Forward substitution with Uᵀ.
	for j := 0; j < n; j++ {
		tmp := x[j]
		col := u[j*n : j*n+j]
		for i, uij := range col {
			tmp -= uij * x[i]
		}
		x[j] = tmp / u[j+j*n]
	}
}

func (Native) Trmv(t blas.Transpose, n int, u, x []float64) {
	if t == blas.NoTrans {
		// x[j] is still unmodified when column j is applied.
		for j := 0; j < n; j++ {
			tmp := x[j]
			col := u[j*n : j*n+j]
			for i, uij := range col {
				x[i] += tmp * uij
			}
			x[j] *= u[j+j*n]
		}
		return
	}
	for j := n - 1; j >= 0; j-- {
		tmp := x[j] * u[j+j*n]
		col := u[j*n : j*n+j]
		for i, uij := range col {
			tmp += uij * x[i]
		}
		x[j] = tmp
	}
}

func (nat Native) Trsm(t blas.Transpose, n int, u, b []float64) {
	for j := 0; j < n; j++ {
		nat.Trsv(t, n, u, b[j*n:(j+1)*n])
	}
}

func (nat Native) Trmm(t blas.Transpose, n int, u, b []float64) {
	for j := 0; j < n; j++ {
		nat.Trmv(t, n, u, b[j*n:(j+1)*n])
	}
}

func (Native) GemmNT(n int, a, b, c []float64) {
	for j := 0; j < n; j++ {
		cj := c[j*n : (j+1)*n]
		for i := range cj {
			cj[i] = 0
		}
		for k := 0; k < n; k++ {
			bjk := b[j+k*n]
			if bjk == 0 {
				continue
			}
			ak := a[k*n : (k+1)*n]
			for i, aik := range ak {
				cj[i] += aik * bjk
			}
		}
	}
}

func (Native) Potrf(n int, a []float64) bool {
	for j := 0; j < n; j++ {
		colj := a[j*n : j*n+j]
		s := a[j+j*n]
		for _, ukj := range colj {
			s -= ukj * ukj
		}
		if !(s > 0) {
			return false
		}
		ujj := math.Sqrt(s)
		a[j+j*n] = ujj
		for i := j + 1; i < n; i++ {
			coli := a[i*n : i*n+j]
			v := a[j+i*n]
			for k, uki := range coli {
				v -= colj[k] * uki
			}
			a[j+i*n] = v / ujj
		}
	}
	return true
}
