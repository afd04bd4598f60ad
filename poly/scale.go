// SPDX-License-Identifier: MIT

package poly

import "math"

// monic is the cubic a·x³ + b·x² + c·x + d rewritten as
// t³ + b·t² + c·t + d with x = t·2^k. The exponent k is chosen so that
// every coefficient has magnitude below 2, which keeps the depressed form
// and its discriminant O(1) whatever the magnitude of the roots.
// Coefficients too small to represent after scaling underflow to zero.
type monic struct {
	b, c, d float64
	k       int
}

// normalize builds the monic form of a cubic with a != 0. Only exponents
// are combined, so no intermediate overflows.
func normalize(a, b, c, d float64) monic {
	k := scaleExponent(a, b, c, d)

	return monic{
		b: ratio(b, a, -k),
		c: ratio(c, a, -2*k),
		d: ratio(d, a, -3*k),
		k: k,
	}
}

// scaleExponent returns a k with |coeffs[i]/lead| < 2^((i+1)·k+1)
// for every non-zero coefficient, i.e. the power of two that brings the
// roots of lead·x^n + coeffs[0]·x^(n−1) + … near unit scale.
func scaleExponent(lead float64, coeffs ...float64) int {
	_, el := math.Frexp(lead)
	k, found := 0, false
	for i, v := range coeffs {
		if v == 0 {
			continue
		}
		_, ev := math.Frexp(v)
		if ki := ceilDiv(ev-el, i+1); !found || ki > k {
			k, found = ki, true
		}
	}

	return k
}

// eval returns t³ + b·t² + c·t + d.
func (m monic) eval(t float64) float64 {
	return ((t+m.b)*t+m.c)*t + m.d
}

// polish applies at most polishSteps Newton steps to t, keeping a step only
// when it lowers |f(t)|.
func (m monic) polish(t float64) float64 {
	f := m.eval(t)
	for i := 0; i < polishSteps && f != 0; i++ {
		df := (3*t+2*m.b)*t + m.c
		if df == 0 {
			break
		}
		nt := t - f/df
		nf := m.eval(nt)
		if !(math.Abs(nf) < math.Abs(f)) {
			break
		}
		t, f = nt, nf
	}

	return t
}

// root polishes t and maps it back to x.
func (m monic) root(t float64) float64 {
	return math.Ldexp(m.polish(t), m.k)
}

// ratio returns num/den·2^exp, rounding once and overflowing only when the
// result does.
func ratio(num, den float64, exp int) float64 {
	if num == 0 {
		return 0
	}
	mn, en := math.Frexp(num)
	md, ed := math.Frexp(den)

	return math.Ldexp(mn/md, en-ed+exp)
}

// quotient returns num/(den1·den2) without forming the product.
func quotient(num, den1, den2 float64) float64 {
	if num == 0 {
		return 0
	}
	mn, en := math.Frexp(num)
	m1, e1 := math.Frexp(den1)
	m2, e2 := math.Frexp(den2)

	return math.Ldexp(mn/(m1*m2), en-e1-e2)
}

// ceilDiv returns ⌈n/d⌉ for d > 0.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}

	return q
}

// monicQuadratic returns the real roots of x² + e·x + f, rescaled by a power
// of two so that neither e² nor f over- or underflows. Two roots whose
// separation is within √ε of their magnitude are reported once.
func monicQuadratic(e, f, eps float64) []float64 {
	k, found := 0, false
	if e != 0 {
		_, k = math.Frexp(e)
		found = true
	}
	if f != 0 {
		_, ef := math.Frexp(f)
		if kf := ceilDiv(ef, 2); !found || kf > k {
			k = kf
		}
		found = true
	}
	if !found {
		return []float64{0}
	}

	se, sf := math.Ldexp(e, -k), math.Ldexp(f, -2*k)
	disc := se*se - 4*sf
	tol := eps * math.Max(se*se, math.Abs(sf))
	switch {
	case disc < -tol:
		return nil
	case disc <= tol:
		return []float64{math.Ldexp(-se/2, k)}
	}

	q := -(se + math.Copysign(math.Sqrt(disc), se)) / 2

	return []float64{math.Ldexp(q, k), math.Ldexp(sf/q, k)}
}
