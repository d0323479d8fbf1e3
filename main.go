// Copyright 2015 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Descstat computes descriptive statistics of numeric samples.
//
// Usage:
//
//	descstat [flags] [file ...]
//
// Each input file holds either plain numbers, separated by spaces,
// tabs, commas or newlines, or the concatenated output of a number of
// runs of ``go test -bench.'' If no files are named, descstat reads
// standard input; the name - also means standard input.
//
// For each series, descstat prints the number of values and their
// mean, population variance, standard deviation, minimum and maximum.
// Plain numbers in a file form a single series named after the file.
// Each benchmark forms its own series of ns/op values.
//
// The -trim flag discards outliers before computing statistics, using
// the interquartile range rule: values more than k times the
// interquartile range below the first quartile or above the third
// quartile are dropped. The conventional choice of k is 1.5.
//
// Fields of a numeric line that are not numbers are reported on
// standard error and skipped, unless -strict is given, in which case
// descstat exits with an error.
//
// Every flag may also be set in the environment, as DESCSTAT_ followed
// by the flag name in upper case with dashes replaced by underscores,
// or in a configuration file named by -config.
//
// Example
//
// The file lat.txt contains:
//
//	12.1 11.8 12.4
//	12.0 11.9
//
//	$ descstat -precision 4 lat.txt
//	name     n  mean   variance  stddev  min   max
//	lat.txt  5  12.04    0.0424  0.2059  11.8  12.4
//	$
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rsc.io/descstat/internal/dataset"
	"rsc.io/descstat/internal/report"
)

// options holds the settings of a single run after flags, environment
// and configuration file have been merged.
type options struct {
	Precision int     `mapstructure:"precision"`
	Trim      float64 `mapstructure:"trim"`
	Strict    bool    `mapstructure:"strict"`
	LogLevel  string  `mapstructure:"log-level"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:          "descstat [flags] [file ...]",
		Short:        "Compute descriptive statistics of numeric samples",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
			}
			var opts options
			if err := v.Unmarshal(&opts); err != nil {
				return fmt.Errorf("decoding options: %w", err)
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			return run(cmd.Context(), opts, args, stdin, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "read flag defaults from `file`")
	flags.Int("precision", 6, "print statistics with `n` significant digits (0 for shortest exact)")
	flags.Float64("trim", 0, "discard values more than `k` interquartile ranges outside the quartiles")
	flags.Bool("strict", false, "fail on fields that are not numbers")
	flags.String("log-level", "warn", "log `level`: debug, info, warn or error")

	v.SetEnvPrefix("DESCSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	return cmd
}

func run(ctx context.Context, opts options, paths []string, stdin io.Reader, stdout, stderr io.Writer) error {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:          stderr,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(level)

	stdinCount := 0
	for _, path := range paths {
		if path == "-" {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return errors.New("standard input (-) named more than once")
	}

	open := func(path string) (io.ReadCloser, error) {
		if path == "-" {
			return io.NopCloser(stdin), nil
		}
		return os.Open(path)
	}

	sets, err := dataset.Load(ctx, paths, open)
	var merr *multierror.Error
	if errors.As(err, &merr) {
		if opts.Strict {
			return err
		}
		for _, e := range merr.Errors {
			var perr *dataset.ParseError
			if errors.As(e, &perr) {
				log.Warn().
					Str("source", perr.Source).
					Int("line", perr.Line).
					Str("field", perr.Field).
					Msg("skipping invalid number")
			}
		}
	} else if err != nil {
		return err
	}

	for _, set := range sets {
		set.Trim(opts.Trim)
		for _, ser := range set.Series {
			log.Debug().
				Str("source", set.Source).
				Str("series", ser.Name).
				Int("values", len(ser.Values)).
				Int("kept", len(ser.Trimmed)).
				Msg("loaded series")
		}
	}

	t := &report.Table{Precision: opts.Precision, Rows: report.Summarize(sets)}
	return t.Write(stdout)
}
