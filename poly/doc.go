// SPDX-License-Identifier: MIT

// Package poly finds the real roots of polynomial equations of degree at
// most three:
//
//	a·x³ + b·x² + c·x + d = 0
//
// The solvers form a cascade. SolveCubic hands off to SolveQuadratic when
// the leading coefficient is negligible, SolveQuadratic hands off to
// SolveLinear in the same way, and SolveLinear reports a single root, no
// root, or the whole real line.
//
// # Algorithms
//
//   - Linear    — x = −d/c.
//   - Quadratic — discriminant of the monic form, scaled by a power of two
//     with ε scaled alike; the two-root case uses the cancellation-free
//     pair q, d/q with q = −(c + sign(c)·√D)/2.
//   - Cubic     — the equation is first scaled to a monic cubic in
//     t = x/2^k whose coefficients are below 2, so Δ is comparable with ε
//     at any magnitude. Its depressed form t = y − b'/3 gives
//     p = c' − b'²/3, q = 2b'³/27 − b'c'/3 + d' and Δ = (q/2)² + (p/3)³:
//   - Δ > ε: Cardano, one real root (the complex pair is dropped);
//   - Δ < −ε: trigonometric form, three distinct real roots;
//   - |p|, |q| ≤ ε: a triple root;
//   - otherwise one simple root is divided out and the quotient quadratic
//     yields the rest.
//     Every root gets Newton steps in both t and x.
//
// # Numeric policy
//
// One tolerance ε (DefaultEpsilon = 1e-10, see WithEpsilon) decides every
// "is this effectively zero" question: leading coefficients, discriminants
// and the collapsing of coincident roots. Using the same ε throughout keeps
// the cascade consistent, e.g. SolveCubic(0, b, c, d) is exactly
// SolveQuadratic(b, c, d).
//
// # Results
//
// Every solver returns a RootSet, a tagged result that is either a finite
// (possibly empty) ascending list of roots or the AllReals marker for the
// identity 0 = 0. Check Kind (or IsAllReals) before reading Roots.
//
//	rs := poly.SolveCubic(1, -6, 11, -6)
//	fmt.Println(rs.Roots()) // [1 2 3] (up to rounding)
//
// The solvers hold no state; SolveBatch runs many equations concurrently.
//
// Complexity: O(1) time and memory per equation.
package poly
