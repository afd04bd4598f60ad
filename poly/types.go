// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"sort"
)

// Coefficients is the ordered 4-tuple (A, B, C, D) of the equation
// A·x³ + B·x² + C·x + D = 0, highest degree first.
type Coefficients struct {
	A, B, C, D float64
}

// Eval returns A·x³ + B·x² + C·x + D (Horner's scheme).
func (c Coefficients) Eval(x float64) float64 {
	return ((c.A*x+c.B)*x+c.C)*x + c.D
}

// Scale returns the coefficients multiplied by k. For k != 0 the scaled
// equation has the same roots.
func (c Coefficients) Scale(k float64) Coefficients {
	return Coefficients{A: k * c.A, B: k * c.B, C: k * c.C, D: k * c.D}
}

// Degree reports the effective degree: the highest power whose coefficient
// is not within ε of zero. Constant covers both 0 = 0 and d = 0 with d != 0.
func (c Coefficients) Degree(opts ...Option) Degree {
	eps := gatherOptions(opts...).eps
	switch {
	case !isZero(c.A, eps):
		return Cubic
	case !isZero(c.B, eps):
		return Quadratic
	case !isZero(c.C, eps):
		return Linear
	default:
		return Constant
	}
}

// Validate returns ErrNonFinite (tagged with the coefficient name) when any
// coefficient is NaN or ±Inf.
func (c Coefficients) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"A", c.A}, {"B", c.B}, {"C", c.C}, {"D", c.D}} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return validatorErrorf("Validate: "+f.name, ErrNonFinite)
		}
	}

	return nil
}

func (c Coefficients) String() string {
	return fmt.Sprintf("%g·x³ %+g·x² %+g·x %+g = 0", c.A, c.B, c.C, c.D)
}

// Degree is the effective degree of an equation.
type Degree int

const (
	// Constant: d = 0, no x at all.
	Constant Degree = iota
	// Linear: c·x + d = 0.
	Linear
	// Quadratic: b·x² + c·x + d = 0.
	Quadratic
	// Cubic: a·x³ + b·x² + c·x + d = 0.
	Cubic
)

func (d Degree) String() string {
	switch d {
	case Constant:
		return "constant"
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	}

	return fmt.Sprintf("Degree(%d)", int(d))
}

// Kind tags a RootSet.
type Kind uint8

const (
	// Finite: a finite, possibly empty, ascending list of real roots.
	Finite Kind = iota

	// AllReals: every real x satisfies the equation (all coefficients ≈ 0).
	AllReals
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case AllReals:
		return "all-reals"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// RootSet is the result of a solve: either a finite list of real roots
// sorted ascending, or the AllReals marker. The zero value is the empty
// finite set.
//
// A repeated root is listed once; distinct roots that are closer than ε
// are treated as coincident.
type RootSet struct {
	kind  Kind
	roots []float64
}

// NoRoots returns the empty finite set.
func NoRoots() RootSet { return RootSet{kind: Finite} }

// AllRealNumbers returns the marker for "every real number is a solution".
func AllRealNumbers() RootSet { return RootSet{kind: AllReals} }

// FiniteRoots returns a finite set holding a sorted copy of xs.
// Negative zero is stored as +0.
func FiniteRoots(xs ...float64) RootSet {
	if len(xs) == 0 {
		return NoRoots()
	}
	roots := make([]float64, len(xs))
	for i, x := range xs {
		if x == 0 {
			x = 0
		}
		roots[i] = x
	}
	sort.Float64s(roots)

	return RootSet{kind: Finite, roots: roots}
}

// Kind reports whether the set is Finite or AllReals.
func (r RootSet) Kind() Kind { return r.kind }

// IsAllReals reports whether every real number is a solution.
func (r RootSet) IsAllReals() bool { return r.kind == AllReals }

// IsEmpty reports whether the set is finite and holds no roots.
// The AllReals marker is never empty.
func (r RootSet) IsEmpty() bool { return r.kind == Finite && len(r.roots) == 0 }

// Len returns the number of finite roots (0 for AllReals).
func (r RootSet) Len() int { return len(r.roots) }

// Roots returns a copy of the finite roots in ascending order.
// It returns nil for an empty set and for AllReals.
func (r RootSet) Roots() []float64 {
	if len(r.roots) == 0 {
		return nil
	}
	out := make([]float64, len(r.roots))
	copy(out, r.roots)

	return out
}

func (r RootSet) String() string {
	if r.kind == AllReals {
		return "{all reals}"
	}

	return fmt.Sprintf("%v", r.roots)
}

// Depressed is the depressed form y³ + P·y + Q = 0 of a cubic, obtained by
// the substitution x = y + Shift with Shift = −b/(3a).
type Depressed struct {
	P, Q  float64
	Shift float64
}

// Discriminant returns Δ = (Q/2)² + (P/3)³.
//
//	Δ > 0: one real root and a complex-conjugate pair;
//	Δ = 0: a repeated root (all roots real);
//	Δ < 0: three distinct real roots.
func (d Depressed) Discriminant() float64 {
	hq, tp := d.Q/2, d.P/3

	return hq*hq + tp*tp*tp
}

// isZero reports |v| < eps; with eps = 0 it is an exact comparison.
func isZero(v, eps float64) bool {
	if eps == 0 {
		return v == 0
	}

	return math.Abs(v) < eps
}
