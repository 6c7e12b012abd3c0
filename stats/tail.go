// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/nimble-go/nimdist/validity"
)

// These helpers implement the usual conventions for the giveLog,
// lowerTail and logP flags.

// d0 is a density of zero.
func d0(giveLog bool) float64 {
	if giveLog {
		return -inf
	}
	return 0
}

// d1 is a density of one.
func d1(giveLog bool) float64 {
	if giveLog {
		return 0
	}
	return 1
}

// dexpLog returns exp(logDens), or logDens if giveLog.
func dexpLog(logDens float64, giveLog bool) float64 {
	if giveLog {
		return logDens
	}
	return math.Exp(logDens)
}

// dval returns p on the requested scale.
func dval(p float64, logP bool) float64 {
	if logP {
		return math.Log(p)
	}
	return p
}

// pt0 is probability zero in the requested tail.
func pt0(lowerTail, logP bool) float64 {
	if lowerTail {
		return d0(logP)
	}
	return d1(logP)
}

// pt1 is probability one in the requested tail.
func pt1(lowerTail, logP bool) float64 {
	if lowerTail {
		return d1(logP)
	}
	return d0(logP)
}

// ptail returns lower or upper, whichever lowerTail selects, on the
// requested scale. Both tails are passed so that neither is computed
// as one minus the other.
func ptail(lower, upper float64, lowerTail, logP bool) float64 {
	if lowerTail {
		return dval(lower, logP)
	}
	return dval(upper, logP)
}

// log1Exp returns log(1 - exp(x)) for x <= 0.
func log1Exp(x float64) float64 {
	if x > -ln2 {
		return math.Log(-math.Expm1(x))
	}
	return math.Log1p(-math.Exp(x))
}

// badP reports whether p is not a probability on the given scale.
func badP(p float64, logP bool) bool {
	if logP {
		return p > 0
	}
	return p < 0 || p > 1
}

// probP returns p on the linear scale.
func probP(p float64, logP bool) float64 {
	if logP {
		return math.Exp(p)
	}
	return p
}

// isZeroP and isOneP report whether p is probability zero or one in
// the requested tail and scale.
func isZeroP(p float64, lowerTail, logP bool) bool {
	return p == pt0(lowerTail, logP)
}

func isOneP(p float64, lowerTail, logP bool) bool {
	return p == pt1(lowerTail, logP)
}

// notInt reports whether x is farther than a relative 1e-7 from the
// nearest integer.
func notInt(x float64) bool {
	return math.Abs(x-math.RoundToEven(x)) > 1e-7*math.Max(1, math.Abs(x))
}

// missing returns the sentinel for xs and true if any of them is NA
// or NaN.
func missing(xs ...float64) (float64, bool) {
	if k := validity.Check(xs...); k != validity.Ordinary {
		return validity.Sentinel(k), true
	}
	return 0, false
}
