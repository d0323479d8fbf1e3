// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePercentile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Percentile", s.Percentile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 19.666666666666666,
		.40: 27,
		.95: 50,
		1:   50,
		2:   50,
	})
}

func TestSamplePercentileUnsorted(t *testing.T) {
	xs := []float64{50, 15, 40, 20, 35}
	s := Sample{Xs: xs}
	if e, g := 27.0, s.Percentile(.40); !aeq(e, g) {
		t.Errorf("bad percentile: expected %g, got %g", e, g)
	}
	assert.Equal(t, []float64{50, 15, 40, 20, 35}, xs, "Percentile must not reorder its input")
	assert.False(t, s.Sorted)
}

func TestSamplePercentileEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(Sample{}.Percentile(0.5)))
}

func TestSampleIQR(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3, 4, 5, 6, 7, 8}}
	want := s.Percentile(0.75) - s.Percentile(0.25)
	if g := s.IQR(); !aeq(want, g) {
		t.Errorf("bad IQR: expected %g, got %g", want, g)
	}
}

func TestSampleBounds(t *testing.T) {
	s := Sample{Xs: []float64{3, -1, 7, 2}}
	min, max := s.Bounds()
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)

	s.Sort()
	assert.Equal(t, []float64{-1, 2, 3, 7}, s.Xs)
	min, max = s.Bounds()
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)

	min, max = Sample{}.Bounds()
	assert.True(t, math.IsNaN(min))
	assert.True(t, math.IsNaN(max))
}

func TestSampleCopy(t *testing.T) {
	s := Sample{Xs: []float64{3, 1, 2}}
	c := s.Copy().Sort()
	assert.Equal(t, []float64{1, 2, 3}, c.Xs)
	assert.Equal(t, []float64{3, 1, 2}, s.Xs)
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{10, 2, 8, 4, 6}}

	m, err := s.Mean()
	require.NoError(t, err)
	assert.Equal(t, 6.0, m)

	v, err := s.Variance()
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)

	sd, err := s.StdDev()
	require.NoError(t, err)
	assert.Equal(t, math.Sqrt(8), sd)

	_, err = Sample{}.StdDev()
	assert.ErrorIs(t, err, ErrEmpty)
}
