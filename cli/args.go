// SPDX-License-Identifier: MIT

package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cubic/poly"
)

const (
	// CoefficientCount is the number of positional coefficients (a b c d).
	CoefficientCount = 4

	// HelpToken is the single argument that requests usage text.
	HelpToken = "help"
)

// isHelp reports whether args is exactly the help request.
func isHelp(args []string) bool {
	return len(args) == 1 && args[0] == HelpToken
}

// validateArgs is the cobra.PositionalArgs of the command.
func validateArgs(_ *cobra.Command, args []string) error {
	if isHelp(args) || len(args) == CoefficientCount {
		return nil
	}

	return ArgumentCountError{Got: len(args)}
}

// ParseCoefficients parses exactly CoefficientCount tokens, highest degree
// first. Surrounding whitespace is ignored; NaN and ±Inf are rejected.
func ParseCoefficients(args []string) (poly.Coefficients, error) {
	if len(args) != CoefficientCount {
		return poly.Coefficients{}, ArgumentCountError{Got: len(args)}
	}

	var v [CoefficientCount]float64
	for i, tok := range args {
		x, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return poly.Coefficients{}, ArgumentParseError{Position: i + 1, Token: tok, Err: err}
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return poly.Coefficients{}, ArgumentParseError{Position: i + 1, Token: tok, Err: poly.ErrNonFinite}
		}
		v[i] = x
	}

	return poly.Coefficients{A: v[0], B: v[1], C: v[2], D: v[3]}, nil
}
