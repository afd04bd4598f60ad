// SPDX-License-Identifier: MIT

package cli_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubic/cli"
	"github.com/katalvlaran/cubic/poly"
)

func TestParseCoefficients(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want poly.Coefficients
	}{
		{"integers", []string{"1", "-6", "11", "-6"}, poly.Coefficients{A: 1, B: -6, C: 11, D: -6}},
		{"decimals", []string{"-0.5", "3", "-5.5", "3"}, poly.Coefficients{A: -0.5, B: 3, C: -5.5, D: 3}},
		{"scientific", []string{"1e-3", "2E2", "+4", "-0"}, poly.Coefficients{A: 0.001, B: 200, C: 4, D: 0}},
		{"whitespace", []string{" 1", "2 ", "\t3", "4\n"}, poly.Coefficients{A: 1, B: 2, C: 3, D: 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cli.ParseCoefficients(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCoefficients_Count(t *testing.T) {
	for _, args := range [][]string{nil, {"1"}, {"1", "2", "3"}, {"1", "2", "3", "4", "5"}} {
		_, err := cli.ParseCoefficients(args)
		require.ErrorIs(t, err, cli.ErrArgumentCount)

		var countErr cli.ArgumentCountError
		require.True(t, errors.As(err, &countErr))
		assert.Equal(t, len(args), countErr.Got)
	}
}

func TestParseCoefficients_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		position int
		cause    error
	}{
		{"letters", []string{"1", "a", "3", "4"}, 2, strconv.ErrSyntax},
		{"empty", []string{"1", "2", "3", ""}, 4, strconv.ErrSyntax},
		{"comma decimal", []string{"1,5", "2", "3", "4"}, 1, strconv.ErrSyntax},
		{"overflow", []string{"1", "2", "1e400", "4"}, 3, strconv.ErrRange},
		{"nan", []string{"NaN", "2", "3", "4"}, 1, poly.ErrNonFinite},
		{"inf", []string{"1", "-Inf", "3", "4"}, 2, poly.ErrNonFinite},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cli.ParseCoefficients(tc.args)
			require.ErrorIs(t, err, cli.ErrArgumentParse)
			require.ErrorIs(t, err, tc.cause)
			require.NotErrorIs(t, err, cli.ErrArgumentCount)

			var parseErr cli.ArgumentParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tc.position, parseErr.Position)
			assert.Equal(t, tc.args[tc.position-1], parseErr.Token)
		})
	}
}

func TestArgumentErrors_Messages(t *testing.T) {
	assert.Equal(t, `cli: want 4 coefficients or "help", got 2 arguments`,
		cli.ArgumentCountError{Got: 2}.Error())
	assert.Contains(t, cli.ArgumentParseError{Position: 3, Token: "x", Err: strconv.ErrSyntax}.Error(),
		`argument 3 ("x")`)
}
