// SPDX-License-Identifier: MIT

// Package poly: sentinel errors.
//
// The solvers themselves are total over real input and never fail. The
// sentinels below are returned only by input validation (Coefficients.Validate)
// and by SolveBatch. Match them with errors.Is.

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite indicates a NaN or ±Inf coefficient.
	ErrNonFinite = errors.New("poly: NaN or Inf coefficient")
)

// validatorErrorf tags err with the name of the failing check.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
