// SPDX-License-Identifier: MIT

package poly_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cubic/poly"
)

// TestDefaultOptions_Documented verifies the resolved defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := poly.GatherOptionsSnapshot_TestOnly()
	assert.Equal(t, poly.DefaultEpsilon, o.Eps)
	assert.Equal(t, 1e-10, o.Eps)
	assert.Equal(t, runtime.GOMAXPROCS(0), o.Workers)
}

// TestOptions_LastWriterWins ensures options apply in order and nil is skipped.
func TestOptions_LastWriterWins(t *testing.T) {
	o := poly.GatherOptionsSnapshot_TestOnly(poly.WithEpsilon(1e-3), nil, poly.WithEpsilon(1e-6), poly.WithConcurrency(3))
	assert.Equal(t, 1e-6, o.Eps)
	assert.Equal(t, 3, o.Workers)
}

// TestOptions_PanicOnInvalid checks the stable panic messages.
func TestOptions_PanicOnInvalid(t *testing.T) {
	const epsMsg = "poly: WithEpsilon: eps must be finite, non-negative"
	assert.PanicsWithValue(t, epsMsg, func() { poly.WithEpsilon(-1) })
	assert.PanicsWithValue(t, epsMsg, func() { poly.WithEpsilon(math.NaN()) })
	assert.PanicsWithValue(t, epsMsg, func() { poly.WithEpsilon(math.Inf(1)) })
	assert.NotPanics(t, func() { poly.WithEpsilon(0) })

	const nMsg = "poly: WithConcurrency: n must be positive"
	assert.PanicsWithValue(t, nMsg, func() { poly.WithConcurrency(0) })
	assert.PanicsWithValue(t, nMsg, func() { poly.WithConcurrency(-4) })
}

// TestOptions_EpsilonAppliesAcrossCascade: the same ε reaches every layer.
func TestOptions_EpsilonAppliesAcrossCascade(t *testing.T) {
	opt := poly.WithEpsilon(1e-3)
	// a, b and c are all below 1e-3, d is not: no roots at any level.
	assert.True(t, poly.SolveCubic(1e-4, 1e-4, 1e-4, 1, opt).IsEmpty())
	// everything below 1e-3: the identity.
	assert.True(t, poly.SolveCubic(1e-4, 1e-4, 1e-4, 1e-4, opt).IsAllReals())
}
