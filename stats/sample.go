// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"
)

// Sample is a collection of observations.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Mean returns the arithmetic mean of the sample.
func (s Sample) Mean() (float64, error) {
	return Mean(s.Xs)
}

// Variance returns the population variance of the sample.
func (s Sample) Variance() (float64, error) {
	return Variance(s.Xs)
}

// StdDev returns the population standard deviation of the sample.
func (s Sample) StdDev() (float64, error) {
	return StdDev(s.Xs)
}

// Bounds returns the minimum and maximum values of the sample.
//
// If the sample is sorted, this runs in O(1) time.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 || !s.Sorted {
		return Bounds(s.Xs)
	}
	return s.Xs[0], s.Xs[len(s.Xs)-1]
}

// Percentile returns the pctileth value from the sample. This uses
// interpolation method R8 from Hyndman and Fan (1996).
//
// pctile will be capped to the range [0, 1]. If the sample is empty,
// Percentile returns NaN.
//
// Percentile(0.5) is the median. Percentile(0.25) and
// Percentile(0.75) are the first and third quartiles, respectively.
//
// If s is not sorted, Percentile sorts a copy of s.Xs; s.Xs itself
// is left untouched.
func (s Sample) Percentile(pctile float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	} else if pctile <= 0 {
		min, _ := s.Bounds()
		return min
	} else if pctile >= 1 {
		_, max := s.Bounds()
		return max
	}

	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	N := float64(len(s.Xs))
	n := 1/3.0 + pctile*(N+1/3.0) // R8
	kf, frac := math.Modf(n)
	k := int(kf)
	if k <= 0 {
		return s.Xs[0]
	} else if k >= len(s.Xs) {
		return s.Xs[len(s.Xs)-1]
	}
	return s.Xs[k-1] + frac*(s.Xs[k]-s.Xs[k-1])
}

// IQR returns the interquartile range of the sample.
func (s Sample) IQR() float64 {
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	return s.Percentile(0.75) - s.Percentile(0.25)
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || slices.IsSorted(s.Xs) {
		// All set
	} else {
		slices.Sort(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	return &Sample{Xs: slices.Clone(s.Xs), Sorted: s.Sorted}
}
