// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Dconstraint is the constraint indicator. A constraint value cond is
// true when it is non-zero. The indicator is 1 if x equals cond or x
// is 0, and 0 otherwise.
func Dconstraint(x, cond float64, giveLog bool) float64 {
	if v, ok := missing(x, cond); ok {
		return v
	}
	if x == cond || x == 0 {
		return d1(giveLog)
	}
	return d0(giveLog)
}

// Rconstraint returns cond. It uses no random draws.
func Rconstraint(cond float64) float64 {
	return cond
}
