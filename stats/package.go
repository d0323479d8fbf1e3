// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes descriptive statistics of numeric samples.
//
// Mean, Variance and StdDev accept a slice of any integer or
// floating-point type. Elements are converted to float64 before any
// arithmetic, so a sample may freely mix values that started life as
// integers and floats. Variance and StdDev are the population forms:
// the sum of squared deviations is divided by n, not n-1.
//
// All functions in this package are pure. They never modify their
// input and are safe for concurrent use.
package stats

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

var nan = math.NaN()

// ErrEmpty is returned when a statistic is requested of a sample with
// no elements.
var ErrEmpty = errors.New("stats: empty sample")

// Number is the set of element types accepted by this package.
type Number interface {
	constraints.Integer | constraints.Float
}
