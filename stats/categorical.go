// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nimble-go/nimdist/validity"
)

// Dcat returns the probability of category x, 1 <= x <= K, under the
// categorical distribution with unnormalized probabilities prob,
// K = len(prob).
//
// Dcat returns NaN if any prob[i] is negative or the probabilities do
// not have a positive finite sum. It returns a structural zero if x
// is not an integer in [1, K].
func Dcat(x float64, prob []float64, giveLog bool) float64 {
	if k := validity.Merge(validity.Check(x), validity.CheckSlices(prob)); k != validity.Ordinary {
		return validity.Sentinel(k)
	}
	sum, ok := catSum(prob)
	if !ok {
		return nan
	}
	if notInt(x) {
		return d0(giveLog)
	}
	x = math.RoundToEven(x)
	if x < 1 || x > float64(len(prob)) {
		return d0(giveLog)
	}
	p := prob[int(x)-1]
	if giveLog {
		return math.Log(p) - math.Log(sum)
	}
	return p / sum
}

// Rcat draws a category from the categorical distribution with
// unnormalized probabilities prob. It draws one uniform variate,
// scales it by the sum of prob and returns the first 1-based index
// whose cumulative probability reaches it.
//
// Rcat returns NaN (or NA) without drawing if prob is invalid.
func Rcat(prob []float64, src rand.Source) float64 {
	if k := validity.CheckSlices(prob); k != validity.Ordinary {
		return validity.Sentinel(k)
	}
	sum, ok := catSum(prob)
	if !ok {
		return nan
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand() * sum
	K := len(prob)
	cum := prob[0]
	i := 1
	for u > cum && i < K {
		cum += prob[i]
		i++
	}
	return float64(i)
}

func catSum(prob []float64) (float64, bool) {
	if len(prob) == 0 || floats.Min(prob) < 0 {
		return 0, false
	}
	sum := floats.Sum(prob)
	return sum, sum > 0 && !math.IsInf(sum, 0)
}

// CategoricalDist is a categorical distribution over 1, ..., K with
// probabilities proportional to Prob.
type CategoricalDist struct {
	// Prob is the weight of each category. Prob[i] >= 0 and at
	// least one Prob[i] > 0.
	Prob []float64
}

// PMF is the probability of category int(k).
func (d CategoricalDist) PMF(k float64) float64 {
	return Dcat(math.Floor(k), d.Prob, false)
}

// CDF is the probability of a category less than or equal to k.
func (d CategoricalDist) CDF(k float64) float64 {
	sum, ok := catSum(d.Prob)
	if !ok {
		return nan
	}
	k = math.Floor(k)
	if math.IsNaN(k) {
		return nan
	} else if k < 1 {
		return 0
	} else if k >= float64(len(d.Prob)) {
		return 1
	}
	return floats.Sum(d.Prob[:int(k)]) / sum
}

func (d CategoricalDist) Bounds() (float64, float64) {
	return 1, float64(len(d.Prob))
}

func (d CategoricalDist) Step() float64 {
	return 1
}

func (d CategoricalDist) Mean() float64 {
	sum, ok := catSum(d.Prob)
	if !ok {
		return nan
	}
	m := 0.0
	for i, p := range d.Prob {
		m += float64(i+1) * p
	}
	return m / sum
}

func (d CategoricalDist) Variance() float64 {
	mean := d.Mean()
	sum, _ := catSum(d.Prob)
	v := 0.0
	for i, p := range d.Prob {
		dev := float64(i+1) - mean
		v += dev * dev * p
	}
	return v / sum
}

// Rand draws a category from d using Rcat.
func (d CategoricalDist) Rand(src rand.Source) float64 {
	return Rcat(d.Prob, src)
}
