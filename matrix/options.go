// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Single source of truth for the finite-value guard used by Set and ingestion.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Half-space coefficients must always be finite, so the kernels rely on it.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the non-negative tolerance used by approximate checks
	// (AllClose callers, soundness checks on rounded output).
	DefaultEpsilon = 1e-9
)
