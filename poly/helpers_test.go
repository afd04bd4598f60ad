// SPDX-License-Identifier: MIT

// Package poly_test contains shared test helpers.

package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubic/poly"
)

// rootDelta is the absolute tolerance used when comparing computed roots
// with their exact values.
const rootDelta = 1e-6

// requireRoots FAILS the test unless got is a finite set whose roots match
// want (ascending) within rootDelta.
func requireRoots(t testing.TB, want []float64, got poly.RootSet, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, poly.Finite, got.Kind(), msgAndArgs...)
	roots := got.Roots()
	require.Len(t, roots, len(want), msgAndArgs...)
	for i := range want {
		require.InDelta(t, want[i], roots[i], rootDelta, msgAndArgs...)
	}
}

// requireSameSet FAILS the test unless a and b have the same kind and the
// same roots within rootDelta.
func requireSameSet(t testing.TB, a, b poly.RootSet, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, a.Kind(), b.Kind(), msgAndArgs...)
	if a.IsAllReals() {
		return
	}
	requireRoots(t, a.Roots(), b, msgAndArgs...)
}

// requireRootsRel is requireRoots with a relative tolerance, for roots far
// from unit scale. A zero in want must be matched within rootDelta·rel.
func requireRootsRel(t testing.TB, want []float64, got poly.RootSet, rel float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, poly.Finite, got.Kind(), msgAndArgs...)
	roots := got.Roots()
	require.Len(t, roots, len(want), msgAndArgs...)
	for i := range want {
		if want[i] == 0 {
			require.InDelta(t, 0, roots[i], rootDelta*rel, msgAndArgs...)
			continue
		}
		require.InEpsilon(t, want[i], roots[i], rel, msgAndArgs...)
	}
}
