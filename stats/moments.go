// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Sum returns the sum of xs, accumulated left to right. The sum of an
// empty slice is 0.
func Sum[T Number](xs []T) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += float64(x)
	}
	return sum
}

// Mean returns the arithmetic mean of xs.
//
// If xs is empty, Mean returns 0 and ErrEmpty.
func Mean[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	return Sum(xs) / float64(len(xs)), nil
}

// Variance returns the population variance of xs, the mean of the
// squared deviations from the mean of xs.
//
// The deviations are taken in a second pass over xs, so adding a
// constant to every element does not change the result beyond
// rounding. A single-element sample has variance exactly 0.
//
// If xs is empty, Variance returns 0 and ErrEmpty.
func Variance[T Number](xs []T) (float64, error) {
	m, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	sumsq := 0.0
	for _, x := range xs {
		d := float64(x) - m
		sumsq += d * d
	}
	return sumsq / float64(len(xs)), nil
}

// StdDev returns the population standard deviation of xs, which is
// math.Sqrt of Variance(xs).
//
// If xs is empty, StdDev returns 0 and ErrEmpty.
func StdDev[T Number](xs []T) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Bounds returns the minimum and maximum values of xs.
// If xs is empty, both are NaN.
func Bounds[T Number](xs []T) (min float64, max float64) {
	if len(xs) == 0 {
		return nan, nan
	}
	min, max = float64(xs[0]), float64(xs[0])
	for _, x := range xs[1:] {
		f := float64(x)
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return
}
