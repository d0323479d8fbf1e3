// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads numeric observations from text.
//
// Input is read line by line. Blank lines and lines starting with '#'
// are ignored. A line in the format of ``go test -bench'' output
// contributes its ns/op value to a series named after the benchmark.
// A line whose first field is a number contributes every field, split
// on spaces, tabs and commas, to a series named after the input
// itself. Any other line, such as the ``goos: linux'' headers printed
// by go test, is ignored.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"rsc.io/descstat/stats"
)

// A Set is the collection of series read from one input.
type Set struct {
	Source string
	Series []*Series // in order of first appearance
	ByName map[string]*Series

	// Trimmed is set once Trim has filled in Series.Trimmed.
	Trimmed bool
}

// A Series is a named collection of observations.
type Series struct {
	Name    string
	Values  []float64
	Trimmed []float64 // Values with outliers removed
}

// A ParseError records a field on a numeric line that is not a number.
type ParseError struct {
	Source string
	Line   int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid number %q", e.Source, e.Line, e.Field)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a Set from r. source names the input in errors and is
// the name of the series that holds plain numeric values.
//
// Fields that fail to parse are skipped. Parse still returns the
// partial Set along with a *multierror.Error holding one *ParseError
// per bad field. An error reading r is wrapped and returned with a nil
// Set.
func Parse(source string, r io.Reader) (*Set, error) {
	s := &Set{Source: source, ByName: make(map[string]*Series)}
	var errs *multierror.Error

	br := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}
		s.parseLine(text, lineno, &errs)
		if err == io.EOF {
			break
		}
	}
	return s, errs.ErrorOrNil()
}

// parseLine adds the values of one input line to s. Lines may be of
// any length.
func (s *Set) parseLine(text string, lineno int, errs **multierror.Error) {
	line := strings.TrimSpace(text)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}
	if strings.HasPrefix(line, "Benchmark") {
		s.addBenchmark(strings.Fields(line))
		return
	}

	fields := strings.FieldsFunc(line, isSeparator)
	if len(fields) == 0 {
		return
	}
	if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
		return
	}
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			*errs = multierror.Append(*errs, &ParseError{Source: s.Source, Line: lineno, Field: f, Err: err})
			continue
		}
		s.add(s.Source, x)
	}
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == ','
}

// addBenchmark records the ns/op of a single benchmark run, such as
//
//	BenchmarkGobEncode   	100	  13552735 ns/op	  56.63 MB/s
func (s *Set) addBenchmark(f []string) {
	if len(f) < 4 {
		return
	}
	name := strings.TrimPrefix(f[0], "Benchmark")
	n, _ := strconv.Atoi(f[1])
	var ns float64
	for i := 2; i+2 <= len(f); i += 2 {
		if f[i+1] == "ns/op" {
			ns, _ = strconv.ParseFloat(f[i], 64)
			break
		}
	}
	if n == 0 || ns == 0 {
		return
	}
	s.add(name, ns)
}

func (s *Set) add(name string, x float64) {
	ser := s.ByName[name]
	if ser == nil {
		ser = &Series{Name: name}
		s.ByName[name] = ser
		s.Series = append(s.Series, ser)
	}
	ser.Values = append(ser.Values, x)
}

// Trim fills in Trimmed for every series in s, discarding values
// further than k interquartile ranges below the first quartile or
// above the third. If k <= 0, no values are discarded. After Trim,
// statistics of s are taken over Trimmed, even where it is empty.
func (s *Set) Trim(k float64) {
	s.Trimmed = true
	for _, ser := range s.Series {
		ser.Trimmed = ser.Trimmed[:0]
		if k <= 0 {
			ser.Trimmed = append(ser.Trimmed, ser.Values...)
			continue
		}
		sample := stats.Sample{Xs: ser.Values}
		sample = *sample.Copy().Sort()
		q1, q3, iqr := sample.Percentile(0.25), sample.Percentile(0.75), sample.IQR()
		lo, hi := q1-k*iqr, q3+k*iqr
		for _, x := range ser.Values {
			if lo <= x && x <= hi {
				ser.Trimmed = append(ser.Trimmed, x)
			}
		}
	}
}
