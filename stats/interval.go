// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/nimble-go/nimdist/validity"
)

// Dinterval is the interval-censoring indicator. With K = len(c)
// cutpoints, it is 1 if t falls in interval x, where interval 0 is
// (-∞, c[0]], interval i is (c[i-1], c[i]] and interval K is
// (c[K-1], ∞). Otherwise, including when x is not an integer in
// [0, K], it is 0.
//
// c must be sorted in increasing order. This is not checked.
func Dinterval(x, t float64, c []float64, giveLog bool) float64 {
	if k := validity.Merge(validity.Check(x, t), validity.CheckSlices(c)); k != validity.Ordinary {
		return validity.Sentinel(k)
	}
	if notInt(x) {
		return d0(giveLog)
	}
	x = math.RoundToEven(x)
	K := len(c)
	if x < 0 || x > float64(K) {
		return d0(giveLog)
	}
	i := int(x)
	if i > 0 && !(t > c[i-1]) {
		return d0(giveLog)
	}
	if i < K && !(t <= c[i]) {
		return d0(giveLog)
	}
	return d1(giveLog)
}

// Rinterval returns the interval containing t, the number of
// cutpoints in c that are less than t. It uses no random draws.
//
// c must be sorted in increasing order. This is not checked.
func Rinterval(t float64, c []float64) float64 {
	if k := validity.Merge(validity.Check(t), validity.CheckSlices(c)); k != validity.Ordinary {
		return validity.Sentinel(k)
	}
	for i, ci := range c {
		if t <= ci {
			return float64(i)
		}
	}
	return float64(len(c))
}
