// SPDX-License-Identifier: MIT

package poly

import "math"

// SolveCubic solves a·x³ + b·x² + c·x + d = 0 and returns its real roots.
//
// Algorithm Outline:
//  1. |a| < ε: the equation is at most quadratic, delegate to
//     SolveQuadratic(b, c, d). AllReals propagates unchanged.
//  2. Divide by a and substitute x = t·2^k, with k chosen from the exponents
//     of the coefficients so that the monic cubic in t has coefficients
//     below 2 in magnitude. Roots of any size then land near unit scale and
//     ε acts as a relative threshold. Only exponents are combined, so
//     coefficient ratios up to the float64 range never overflow.
//  3. Substitute t = y − b'/3 to get the depressed cubic y³ + p·y + q = 0
//     (see Depress) and its discriminant Δ = (q/2)² + (p/3)³.
//  4. Branch on Δ:
//     Δ > ε: one real root y = u + v, u = ∛(−q/2 − sign(q)·√Δ), v = −p/(3u)
//     (Cardano; the complex-conjugate pair is dropped).
//     Δ < −ε: three real roots y_k = 2√(−p/3)·cos(φ/3 − 2πk/3), k = 0, 1, 2,
//     φ = arccos(−q / (2√((−p/3)³))).
//     |Δ| ≤ ε, |p| < ε, |q| < ε: triple root y = 0.
//     |Δ| ≤ ε otherwise: the simple root y = 2·∛(−q/2) is kept and divided
//     out of the original polynomial; the remaining quadratic decides
//     whether the other two roots are a double root, a close pair or a
//     complex pair. A near-zero Δ on the scaled cubic also covers roots of
//     very different magnitudes, which the closed-form double root would
//     merge.
//  5. Polish each root with at most two Newton steps on the scaled and then
//     on the original polynomial (a step is kept only if it lowers the
//     residual), drop values that do not fit in a float64, sort ascending
//     and collapse roots closer than ε.
//
// Repeated roots are listed once: x³ − 2x² + x = 0 yields [0 1].
//
// Complexity: O(1).
func SolveCubic(a, b, c, d float64, opts ...Option) RootSet {
	return solveCubic(a, b, c, d, gatherOptions(opts...))
}

// Depress returns the depressed form of a·x³ + b·x² + c·x + d in the
// original variable x. It reports false when a == 0, where the
// substitution is undefined. P and Q are not rescaled and can overflow
// for extreme coefficient ratios; SolveCubic classifies a scaled copy.
func Depress(a, b, c, d float64) (Depressed, bool) {
	if a == 0 {
		return Depressed{}, false
	}

	return depress(a, b, c, d), true
}

func depress(a, b, c, d float64) Depressed {
	a2 := a * a

	return Depressed{
		P:     (3*a*c - b*b) / (3 * a2),
		Q:     (2*b*b*b - 9*a*b*c + 27*a2*d) / (27 * a2 * a),
		Shift: -b / (3 * a),
	}
}

func solveCubic(a, b, c, d float64, o Options) RootSet {
	if isZero(a, o.eps) {
		return solveQuadratic(b, c, d, o)
	}

	m := normalize(a, b, c, d)
	dep := depress(1, m.b, m.c, m.d)
	delta := dep.Discriminant()

	var xs []float64
	switch {
	case delta > o.eps:
		xs = []float64{m.root(cardano(dep.P, dep.Q, delta) + dep.Shift)}
	case delta < -o.eps:
		for _, y := range trigonometric(dep.P, dep.Q) {
			xs = append(xs, m.root(y+dep.Shift))
		}
	case isZero(dep.P, o.eps) && isZero(dep.Q, o.eps):
		xs = []float64{math.Ldexp(dep.Shift, m.k)}
	default:
		xs = deflate(a, b, c, d, m, m.root(2*math.Cbrt(-dep.Q/2)+dep.Shift), o.eps)
	}

	for i := range xs {
		xs[i] = polish(a, b, c, d, xs[i])
	}

	return collapse(xs, o.eps)
}

// deflate divides the root x out of a·x³ + b·x² + c·x + d and returns x
// together with the real roots of the quotient x² + e·x + f.
//
// When x dominates the other two roots, e and f come from the constant and
// linear coefficients (f = −d/(a·x), e = (f − c/a)/x); otherwise from the
// leading ones (e = b/a + x, f = c/a + x·e). Either way the subtraction
// that cancels is the one whose error is small next to the result.
func deflate(a, b, c, d float64, m monic, x, eps float64) []float64 {
	if math.IsInf(x, 0) {
		return []float64{x}
	}

	var e, f float64
	if t := math.Ldexp(x, -m.k); x != 0 && t*t >= math.Abs(m.d/t) {
		f = quotient(-d, a, x)
		e = f/x - quotient(c, a, x)
	} else {
		e = ratio(b, a, 0) + x
		f = ratio(c, a, 0) + x*e
	}

	return append([]float64{x}, monicQuadratic(e, f, eps)...)
}

// cardano returns the single real root of y³ + p·y + q = 0 for Δ > 0.
// The sign of the square root follows q so the radicand never cancels.
func cardano(p, q, delta float64) float64 {
	u := math.Cbrt(-q/2 - math.Copysign(math.Sqrt(delta), q))
	if u == 0 {
		return 0
	}

	return u - p/(3*u)
}

// trigonometric returns the three real roots of y³ + p·y + q = 0 for Δ < 0,
// which implies p < 0.
func trigonometric(p, q float64) []float64 {
	r := math.Sqrt(-p / 3)
	arg := -q / (2 * r * r * r)
	// rounding can push |arg| marginally past 1
	arg = math.Max(-1, math.Min(1, arg))
	phi := math.Acos(arg)

	ys := make([]float64, 3)
	for k := range ys {
		ys[k] = 2 * r * math.Cos(phi/3-2*math.Pi*float64(k)/3)
	}

	return ys
}

// polishSteps bounds the Newton refinement applied to each closed-form root.
const polishSteps = 2

// polish refines x as a root of a·x³ + b·x² + c·x + d with Newton steps.
// A step that does not reduce |f| is rejected, so x never moves away from
// the root. Where f overflows x is returned as is.
func polish(a, b, c, d, x float64) float64 {
	f := ((a*x+b)*x+c)*x + d
	for i := 0; i < polishSteps && f != 0 && !math.IsInf(f, 0) && !math.IsNaN(f); i++ {
		df := (3*a*x+2*b)*x + c
		if df == 0 || math.IsInf(df, 0) || math.IsNaN(df) {
			break
		}
		nx := x - f/df
		nf := ((a*nx+b)*nx+c)*nx + d
		if !(math.Abs(nf) < math.Abs(f)) {
			break
		}
		x, f = nx, nf
	}

	return x
}
