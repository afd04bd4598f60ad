// SPDX-License-Identifier: MIT

// Package render turns a poly.RootSet into the single output line of the
// solvecubic command.
//
// Format:
//   - finite roots: ascending, separated by one space; a root within
//     IntegerTolerance of an integer prints without a decimal point,
//     anything else prints with Precision decimals;
//   - AllReals: AllRealsToken;
//   - no roots: EmptySetToken.
//
// IntegerTolerance is a presentation concern only and is unrelated to the
// solver tolerance poly.DefaultEpsilon.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cubic/poly"
)

const (
	// IntegerTolerance is the distance to the nearest integer below which a
	// root is printed as that integer.
	IntegerTolerance = 1e-6

	// Precision is the number of decimals for non-integer roots.
	Precision = 3

	// Separator joins roots on the output line.
	Separator = " "

	// AllRealsToken is printed when every real number is a solution.
	AllRealsToken = "x ∈ ℝ"

	// EmptySetToken is printed when there is no real root.
	EmptySetToken = "x ∈ ∅"
)

// Roots formats rs as one line (without the trailing newline).
func Roots(rs poly.RootSet) string {
	switch {
	case rs.IsAllReals():
		return AllRealsToken
	case rs.IsEmpty():
		return EmptySetToken
	}

	roots := rs.Roots()
	parts := make([]string, len(roots))
	for i, x := range roots {
		parts[i] = Root(x)
	}

	return strings.Join(parts, Separator)
}

// Root formats a single root: "2" for 2.0000000001, "-0.333" for −1/3.
// Zero is never printed as "-0".
func Root(x float64) string {
	r := math.Round(x)
	if math.Abs(x-r) <= IntegerTolerance {
		if r == 0 {
			r = 0
		}

		return strconv.FormatFloat(r, 'f', 0, 64)
	}

	return strconv.FormatFloat(x, 'f', Precision, 64)
}
