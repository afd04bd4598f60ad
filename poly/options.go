// SPDX-License-Identifier: MIT

// Package poly: functional configuration of the numeric policy.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with unexported state),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which resolves a list of Option into Options.
//
// Notes:
//   - No global state: every call resolves its own Options.
//   - The solvers delegate down the cascade with the resolved Options, so
//     a custom epsilon applies uniformly to every degree.

package poly

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance below which a coefficient, a
	// discriminant or the gap between two roots is treated as zero.
	DefaultEpsilon = 1e-10
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid     = "poly: WithEpsilon: eps must be finite, non-negative"
	panicConcurrencyInvalid = "poly: WithConcurrency: n must be positive"
)

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	workers int     // > 0; runtime.GOMAXPROCS(0)
}

// WithEpsilon sets the tolerance ε used by every degree-reduction and
// multiplicity decision.
//
// Panics when eps is NaN, ±Inf or negative (programmer error).
// eps = 0 turns the cascade into exact comparisons against zero.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithConcurrency caps the number of equations SolveBatch solves at once.
// Ignored by the single-equation solvers.
//
// Panics when n <= 0.
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:     DefaultEpsilon,
		workers: runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies opts in order over the defaults (last writer wins).
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
