// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCount matches every ArgumentCountError via errors.Is.
	ErrArgumentCount = errors.New("cli: wrong number of arguments")

	// ErrArgumentParse matches every ArgumentParseError via errors.Is.
	ErrArgumentParse = errors.New("cli: argument is not a real number")
)

// ArgumentCountError is returned when the command receives neither
// CoefficientCount tokens nor the single HelpToken.
type ArgumentCountError struct {
	Got int
}

func (e ArgumentCountError) Error() string {
	return fmt.Sprintf("cli: want %d coefficients or %q, got %d arguments", CoefficientCount, HelpToken, e.Got)
}

// Is reports whether target is ErrArgumentCount.
func (e ArgumentCountError) Is(target error) bool { return target == ErrArgumentCount }

// ArgumentParseError is returned when a token is not a finite real number.
// Position is 1-based.
type ArgumentParseError struct {
	Position int
	Token    string
	Err      error
}

func (e ArgumentParseError) Error() string {
	return fmt.Sprintf("cli: argument %d (%q) is not a real number: %v", e.Position, e.Token, e.Err)
}

// Unwrap returns the underlying strconv or poly error.
func (e ArgumentParseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrArgumentParse.
func (e ArgumentParseError) Is(target error) bool { return target == ErrArgumentParse }
