// SPDX-License-Identifier: MIT

package fkrelu

// Test bridge: exposes unexported stages to fkrelu_test only. Compiled with
// the test binary, invisible to importers.

var (
	ReduceQuadrant_TestOnly   = reduceQuadrant
	ReduceIndexes_TestOnly    = reduceIndexes
	Decompose_TestOnly        = decompose
	DecomposeInOrder_TestOnly = decomposeInOrder
	Dedupe_TestOnly           = dedupe
	SplitRegion_TestOnly      = splitRegion
)

// OptionsSnapshot is a read-only view of gathered Options.
type OptionsSnapshot struct {
	Parallel  bool
	Normalize bool
	HasLogger bool
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts)

	return OptionsSnapshot{Parallel: o.parallel, Normalize: o.normalize, HasLogger: o.logger != nil}
}
