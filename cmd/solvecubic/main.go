// SPDX-License-Identifier: MIT

// Command solvecubic prints the real roots of a·x³ + b·x² + c·x + d = 0.
//
// Usage:
//
//	solvecubic 1 -6 11 -6   # prints "1 2 3"
//	solvecubic help
//
// Set SOLVECUBIC_LANG (or LANG) to choose the message language and
// SOLVECUBIC_LOG=debug to trace the solver on stderr.
package main

import (
	"os"

	"github.com/katalvlaran/cubic/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}
