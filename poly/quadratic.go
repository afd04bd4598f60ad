// SPDX-License-Identifier: MIT

package poly

import "math"

// SolveQuadratic solves b·x² + c·x + d = 0.
//
// Algorithm:
//  1. |b| < ε: the equation is linear, delegate to SolveLinear(c, d).
//  2. Normalize to the monic form x² + c'·x + d' (c' = c/b, d' = d/b) and
//     take D = c'² − 4d', which is the discriminant c² − 4bd divided by b².
//     The sign is the same; the magnitude no longer depends on how the
//     equation was scaled. The monic form is evaluated in t = x/2^k so
//     that c' and d' never overflow; ε is scaled by 4^−k to match.
//  3. D < −ε: no real roots.
//     |D| ≤ ε: one double root −c/(2b), listed once.
//     D > ε: two roots (−c ± √D)/(2b), computed as q and d'/q with
//     q = −(c' + sign(c')·√D)/2 so that neither root loses digits to
//     cancellation.
//
// Complexity: O(1).
func SolveQuadratic(b, c, d float64, opts ...Option) RootSet {
	return solveQuadratic(b, c, d, gatherOptions(opts...))
}

func solveQuadratic(b, c, d float64, o Options) RootSet {
	if isZero(b, o.eps) {
		return solveLinear(c, d, o)
	}

	k := scaleExponent(b, c, d)
	cn, dn := ratio(c, b, -k), ratio(d, b, -2*k)
	disc := cn*cn - 4*dn
	tol := math.Ldexp(o.eps, -2*k)
	switch {
	case disc < -tol:
		return NoRoots()
	case disc <= tol:
		return FiniteRoots(math.Ldexp(-cn/2, k))
	}

	q := -(cn + math.Copysign(math.Sqrt(disc), cn)) / 2

	return collapse([]float64{math.Ldexp(q, k), math.Ldexp(dn/q, k)}, o.eps)
}
