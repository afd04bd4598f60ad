// SPDX-License-Identifier: MIT

package poly

// SolveLinear solves c·x + d = 0.
//
//   - |c| < ε and |d| < ε: AllRealNumbers (0 = 0).
//   - |c| < ε otherwise:   NoRoots (a non-zero constant has no root).
//   - else:                the single root −d/c.
//
// Complexity: O(1).
func SolveLinear(c, d float64, opts ...Option) RootSet {
	return solveLinear(c, d, gatherOptions(opts...))
}

func solveLinear(c, d float64, o Options) RootSet {
	if isZero(c, o.eps) {
		if isZero(d, o.eps) {
			return AllRealNumbers()
		}

		return NoRoots()
	}

	return FiniteRoots(-d / c)
}
