// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report summarizes datasets and formats the summary as a
// text table.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"rsc.io/descstat/internal/dataset"
	"rsc.io/descstat/stats"
)

// A Row is the summary of one series.
type Row struct {
	Name     string
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64

	// Err is set if the series has no statistics, in which case
	// the numeric fields are meaningless.
	Err error
}

// Summarize computes one Row per series, in input order. Series are
// summarized over their trimmed values if Trim has been applied,
// and a series left with no values is reported as stats.ErrEmpty.
//
// An input with no values at all yields a single Row carrying
// stats.ErrEmpty, so that it is reported rather than dropped.
func Summarize(sets []*dataset.Set) []Row {
	var rows []Row
	for _, set := range sets {
		if len(set.Series) == 0 {
			rows = append(rows, summarize(set.Source, nil))
			continue
		}
		for _, ser := range set.Series {
			name := ser.Name
			if len(sets) > 1 && name != set.Source {
				name = set.Source + ":" + name
			}
			xs := ser.Values
			if set.Trimmed {
				xs = ser.Trimmed
			}
			rows = append(rows, summarize(name, xs))
		}
	}
	return rows
}

func summarize(name string, xs []float64) Row {
	r := Row{Name: name, N: len(xs)}
	var err error
	if r.Mean, err = stats.Mean(xs); err != nil {
		r.Err = err
		return r
	}
	if r.Variance, err = stats.Variance(xs); err != nil {
		r.Err = err
		return r
	}
	if r.StdDev, err = stats.StdDev(xs); err != nil {
		r.Err = err
		return r
	}
	r.Min, r.Max = stats.Bounds(xs)
	return r
}

// A Table formats rows as aligned text columns.
type Table struct {
	// Precision is the number of significant digits printed for
	// each statistic. Zero or less means the smallest number of
	// digits that represents the value exactly.
	Precision int

	Rows []Row
}

var header = []string{"name", "n", "mean", "variance", "stddev", "min", "max"}

// Write writes the table to w. The first column is left-aligned and
// the rest are right-aligned under left-aligned headings.
func (t *Table) Write(w io.Writer) error {
	out := [][]string{header}
	for _, r := range t.Rows {
		out = append(out, t.cells(r))
	}

	numColumn := 0
	for _, row := range out {
		if numColumn < len(row) {
			numColumn = len(row)
		}
	}

	// A short row's last cell spans the columns it leaves empty and
	// does not count toward any column width.
	spans := func(row []string, i int) bool {
		return len(row) < numColumn && i == len(row)-1 && i > 0
	}

	max := make([]int, numColumn)
	for _, row := range out {
		for i, s := range row {
			if spans(row, i) {
				continue
			}
			n := runewidth.StringWidth(s)
			if max[i] < n {
				max[i] = n
			}
		}
	}

	var buf bytes.Buffer

	// headings
	row := out[0]
	for i, s := range row {
		switch i {
		case 0:
			buf.WriteString(runewidth.FillRight(s, max[i]))
		default:
			fmt.Fprintf(&buf, "  %s", runewidth.FillRight(s, max[i]))
		case len(row) - 1:
			fmt.Fprintf(&buf, "  %s\n", s)
		}
	}

	// data
	for _, row := range out[1:] {
		for i, s := range row {
			switch i {
			case 0:
				if len(row) == 1 {
					buf.WriteString(s)
				} else {
					buf.WriteString(runewidth.FillRight(s, max[i]))
				}
			default:
				if spans(row, i) {
					fmt.Fprintf(&buf, "  %s", s)
				} else {
					fmt.Fprintf(&buf, "  %s", runewidth.FillLeft(s, max[i]))
				}
			}
		}
		buf.WriteString("\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Table) cells(r Row) []string {
	if r.Err != nil {
		return []string{r.Name, "0", fmt.Sprintf("(%s)", r.Err)}
	}
	return []string{
		r.Name,
		fmt.Sprint(r.N),
		t.format(r.Mean),
		t.format(r.Variance),
		t.format(r.StdDev),
		t.format(r.Min),
		t.format(r.Max),
	}
}

func (t *Table) format(x float64) string {
	if t.Precision <= 0 {
		return fmt.Sprint(x)
	}
	return fmt.Sprintf("%.*g", t.Precision, x)
}
