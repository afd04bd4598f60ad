// SPDX-License-Identifier: MIT

// Package cubic finds the real roots of polynomial equations of degree at
// most three:
//
//	a·x³ + b·x² + c·x + d = 0
//
// The work is split across three subpackages:
//
//	poly/   — the solver cascade: cubic (Cardano / trigonometric), quadratic,
//	          linear and the degenerate 0 = d case, plus batch solving
//	render/ — formatting of root sets for humans ("1 2 3", "0.333", "x ∈ ∅")
//	cli/    — the solvecubic command: argument parsing, localized messages,
//	          configuration from the environment and diagnostics logging
//
// The binary lives in cmd/solvecubic:
//
//	$ solvecubic 1 -6 11 -6
//	1 2 3
//	$ solvecubic 0 0 0 0
//	x ∈ ℝ
//
// Every degree shares one tolerance ε (poly.DefaultEpsilon = 1e-10): a
// leading coefficient or discriminant within ε of zero is treated as zero,
// and roots closer than ε are reported once.
//
//	go get github.com/katalvlaran/cubic
package cubic
