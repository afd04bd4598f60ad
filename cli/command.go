// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/katalvlaran/cubic/poly"
	"github.com/katalvlaran/cubic/render"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// NewCommand builds the root command. Flag parsing is disabled so negative
// coefficients such as "-6" reach the command as positional arguments.
// Errors are returned to the caller unprinted; Run reports them.
func NewCommand(cfg Config, logger *slog.Logger) *cobra.Command {
	if logger == nil {
		logger = NewLogger(nil, cfg)
	}
	p := newPrinter(cfg.Lang)

	cmd := &cobra.Command{
		Use:                "solvecubic a b c d | help",
		Short:              p.Sprintf(msgShort),
		Args:               validateArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if isHelp(args) {
				_, err := fmt.Fprintln(out, p.Sprintf(msgHelp))
				return err
			}

			coeffs, err := ParseCoefficients(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, render.Roots(solve(coeffs, logger)))

			return err
		},
	}

	return cmd
}

// Run executes the command with args (without the program name), writing
// the result to stdout and failures to stderr. It returns the process exit
// code.
func Run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg := LoadConfig(getenv)
	logger := NewLogger(stderr, cfg)

	cmd := NewCommand(cfg, logger)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Debug("command failed", "error", err)
		fmt.Fprintln(stderr, describe(err, newPrinter(cfg.Lang)))

		return ExitFailure
	}

	return ExitSuccess
}

// solve runs the solver and logs the classification at debug level.
func solve(coeffs poly.Coefficients, logger *slog.Logger) poly.RootSet {
	degree := coeffs.Degree()
	logger.Debug("solving equation",
		"a", coeffs.A, "b", coeffs.B, "c", coeffs.C, "d", coeffs.D,
		"degree", degree.String(),
	)
	if degree == poly.Cubic {
		if dep, ok := poly.Depress(coeffs.A, coeffs.B, coeffs.C, coeffs.D); ok {
			logger.Debug("depressed form",
				"p", dep.P, "q", dep.Q, "shift", dep.Shift,
				"discriminant", dep.Discriminant(),
			)
		}
	}

	rs := poly.Solve(coeffs)
	logger.Debug("solved", "kind", rs.Kind().String(), "roots", rs.Len())

	return rs
}

// describe renders err as the localized stderr message.
func describe(err error, p *message.Printer) string {
	var countErr ArgumentCountError
	var parseErr ArgumentParseError
	switch {
	case errors.As(err, &countErr):
		return p.Sprintf(msgArgumentCount, countErr.Got)
	case errors.As(err, &parseErr):
		return p.Sprintf(msgArgumentParse, parseErr.Position, parseErr.Token)
	}

	return err.Error()
}
