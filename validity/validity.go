// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validity classifies floating-point operands as ordinary,
// missing or invalid.
//
// Two distinct NaN encodings are used. NA is a quiet NaN carrying the
// payload 1954 and marks a Missing value; any other NaN is Invalid.
// Missing dominates Invalid: a computation touching both produces
// Missing.
package validity // import "github.com/nimble-go/nimdist/validity"

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// naPayload is the NaN payload that marks a missing value. It is the
// same low word used by R for NA_real_, so buffers marshalled from R
// keep their meaning.
const naPayload = 1954

// NA is the Missing sentinel.
var NA = scalar.NaNWith(naPayload)

// NaN is the Invalid sentinel returned for out-of-domain parameters.
var NaN = math.NaN()

// A Kind is the classification of a value.
type Kind uint8

const (
	// Ordinary is any non-NaN value, including ±Inf.
	Ordinary Kind = iota
	// Missing is the NA sentinel.
	Missing
	// Invalid is any NaN other than NA.
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Ordinary:
		return "Ordinary"
	case Missing:
		return "Missing"
	case Invalid:
		return "Invalid"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsNA reports whether x is the Missing sentinel.
//
// Only the low 32 bits of the payload are compared, so an NA whose
// sign or high payload bits were disturbed by arithmetic is still
// recognized.
func IsNA(x float64) bool {
	p, ok := scalar.NaNPayload(x)
	return ok && uint32(p) == naPayload
}

// IsNaN reports whether x is a NaN that is not NA.
func IsNaN(x float64) bool {
	return math.IsNaN(x) && !IsNA(x)
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Classify returns the Kind of x.
func Classify(x float64) Kind {
	switch {
	case IsNA(x):
		return Missing
	case math.IsNaN(x):
		return Invalid
	}
	return Ordinary
}

// Check returns Missing if any of xs is NA, otherwise Invalid if any
// is NaN, otherwise Ordinary.
func Check(xs ...float64) Kind {
	k := Ordinary
	for _, x := range xs {
		if math.IsNaN(x) {
			if IsNA(x) {
				return Missing
			}
			k = Invalid
		}
	}
	return k
}

// CheckSlices is Check applied to every element of every buffer.
func CheckSlices(bufs ...[]float64) Kind {
	k := Ordinary
	for _, buf := range bufs {
		for _, x := range buf {
			if math.IsNaN(x) {
				if IsNA(x) {
					return Missing
				}
				k = Invalid
			}
		}
	}
	return k
}

// Merge combines two classifications under the Missing > Invalid >
// Ordinary precedence.
func Merge(a, b Kind) Kind {
	if a == Missing || b == Missing {
		return Missing
	}
	if a == Invalid || b == Invalid {
		return Invalid
	}
	return Ordinary
}

// AllFinite reports whether every element of buf is finite.
func AllFinite(buf []float64) bool {
	for _, x := range buf {
		if !IsFinite(x) {
			return false
		}
	}
	return true
}

// Sentinel returns the value that represents k: NA for Missing and NaN
// for Invalid. It panics for Ordinary, which has no sentinel.
func Sentinel(k Kind) float64 {
	switch k {
	case Missing:
		return NA
	case Invalid:
		return NaN
	}
	panic("validity: Ordinary has no sentinel")
}

// Fill sets every element of dst to the sentinel of k.
func Fill(dst []float64, k Kind) {
	v := Sentinel(k)
	for i := range dst {
		dst[i] = v
	}
}

// A Value is a float64 tagged with its Kind. It is the result view
// used when a caller needs to branch on Missing and Invalid
// separately rather than test NaN bit patterns.
type Value struct {
	X    float64
	Kind Kind
}

// Of tags x with its Kind.
func Of(x float64) Value {
	return Value{X: x, Kind: Classify(x)}
}

// OK reports whether v is Ordinary.
func (v Value) OK() bool {
	return v.Kind == Ordinary
}

func (v Value) String() string {
	switch v.Kind {
	case Missing:
		return "NA"
	case Invalid:
		return "NaN"
	}
	return fmt.Sprint(v.X)
}
