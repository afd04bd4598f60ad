// SPDX-License-Identifier: MIT

package poly

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveBatch solves every equation in eqs concurrently and returns the
// results in input order.
//
// Implementation:
//   - Stage 1: validate all inputs up front; a NaN/±Inf coefficient fails the
//     whole batch with ErrNonFinite before any work starts.
//   - Stage 2: fan out over an errgroup limited to WithConcurrency workers
//     (default runtime.GOMAXPROCS(0)). Each job writes only its own slot.
//   - Stage 3: stop scheduling once ctx is done and report ctx.Err().
//
// The solvers share no state, so the only coordination is the worker limit.
//
// Errors:
//   - ErrNonFinite, wrapped with the index of the offending equation.
//   - ctx.Err() when ctx is cancelled or expires before all jobs ran.
func SolveBatch(ctx context.Context, eqs []Coefficients, opts ...Option) ([]RootSet, error) {
	o := gatherOptions(opts...)
	for i := range eqs {
		if err := eqs[i].Validate(); err != nil {
			return nil, fmt.Errorf("SolveBatch: equation %d: %w", i, err)
		}
	}

	out := make([]RootSet, len(eqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range eqs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			eq := eqs[i]
			out[i] = solveCubic(eq.A, eq.B, eq.C, eq.D, o)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
