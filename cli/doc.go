// SPDX-License-Identifier: MIT

// Package cli is the command-line boundary of the cubic solver.
//
// Invocation:
//
//	solvecubic a b c d   # solve a·x³ + b·x² + c·x + d = 0
//	solvecubic help      # print usage
//
// Run validates the arguments, parses the four coefficients, solves with
// poly.Solve and writes one line (render.Roots) to stdout. Failures write a
// localized message to stderr and return ExitFailure; nothing is written to
// stdout in that case.
//
// Two error kinds exist, both detected before the solver runs:
//   - ArgumentCountError: neither four tokens nor the single token "help";
//   - ArgumentParseError: a token is not a finite real number.
//
// Configuration comes from the environment only (see LoadConfig): the
// message language and an optional slog diagnostics level.
package cli
