// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// Load opens and parses each of paths concurrently and returns their
// sets in the order of paths.
//
// If any input cannot be opened or read, Load returns that error and
// no sets. Otherwise parse errors from all inputs are merged into a
// single *multierror.Error that accompanies the complete result.
func Load(ctx context.Context, paths []string, open func(string) (io.ReadCloser, error)) ([]*Set, error) {
	sets := make([]*Set, len(paths))
	parseErrs := make([]error, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc, err := open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer rc.Close()

			set, err := Parse(path, rc)
			var merr *multierror.Error
			if err != nil && !errors.As(err, &merr) {
				return err
			}
			sets[i], parseErrs[i] = set, err
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var errs *multierror.Error
	for _, err := range parseErrs {
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return sets, errs.ErrorOrNil()
}
