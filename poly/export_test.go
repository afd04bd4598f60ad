// SPDX-License-Identifier: MIT

// Test-only accessors for unexported option state.

package poly

// OptionsSnapshot is a test-only view of resolved Options.
type OptionsSnapshot struct {
	Eps     float64
	Workers int
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the effective values.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Workers: o.workers}
}
