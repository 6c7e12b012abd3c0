// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nimble is the boundary between a model runtime and the
// distribution core in package stats.
//
// It checks buffer shapes before calling in, applies the recycling
// rule to the scalar distributions, and brackets every sequence of
// draws with one Begin/End on the caller's rng.Stream. Shape
// violations are returned as errors that wrap one of the sentinels
// below; numeric problems are never errors and come back as NA, NaN
// or a structural zero, exactly as from package stats.
package nimble // import "github.com/nimble-go/nimdist/nimble"

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare is returned when a matrix buffer is not n×n.
	ErrNotSquare = errors.New("nimble: matrix is not square")

	// ErrDimMismatch is returned when the dimensions of two
	// arguments disagree.
	ErrDimMismatch = errors.New("nimble: dimension mismatch")

	// ErrEmpty is returned when a parameter vector that must be
	// recycled or indexed is empty.
	ErrEmpty = errors.New("nimble: empty parameter vector")

	// ErrNegativeCount is returned when a negative number of draws
	// is requested.
	ErrNegativeCount = errors.New("nimble: negative number of draws")

	// ErrSizeMismatch is returned when multinomial counts do not
	// sum to the number of trials.
	ErrSizeMismatch = errors.New("nimble: counts do not sum to size")
)

// A Matrix is a square matrix stored column-major: element (i, j) is
// Data[i+j*N].
type Matrix struct {
	N    int
	Data []float64
}

// NewMatrix returns the n×n matrix backed by data.
func NewMatrix(n int, data []float64) (Matrix, error) {
	m := Matrix{N: n, Data: data}
	if err := m.check("matrix"); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

func (m Matrix) check(name string) error {
	if m.N < 0 || len(m.Data) != m.N*m.N {
		return fmt.Errorf("%w: %s has %d elements, want %d×%d", ErrNotSquare, name, len(m.Data), m.N, m.N)
	}
	return nil
}

// At returns element (i, j).
func (m Matrix) At(i, j int) float64 {
	return m.Data[i+j*m.N]
}

func nonEmpty(name string, v []float64) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: %s", ErrEmpty, name)
	}
	return nil
}

func checkCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: n = %d", ErrNegativeCount, n)
	}
	return nil
}
