// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"sort"
)

// Solve returns the real roots of coeffs.A·x³ + coeffs.B·x² + coeffs.C·x + coeffs.D = 0.
// It is SolveCubic applied to the tuple; lower degrees are handled by the
// cascade.
func Solve(coeffs Coefficients, opts ...Option) RootSet {
	return solveCubic(coeffs.A, coeffs.B, coeffs.C, coeffs.D, gatherOptions(opts...))
}

// collapse sorts xs in place and drops every value that is within eps of
// the previously kept one (with eps = 0, only exact duplicates). NaN and
// ±Inf, a root too large for a float64, are dropped as well.
func collapse(xs []float64, eps float64) RootSet {
	sort.Float64s(xs)
	kept := xs[:0]
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if len(kept) > 0 && isZero(x-kept[len(kept)-1], eps) {
			continue
		}
		kept = append(kept, x)
	}

	return FiniteRoots(kept...)
}
