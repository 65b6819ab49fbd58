// SPDX-License-Identifier: MIT

// Package fkrelu: functional configuration.
//
// Design goals:
//   - No global state; every call gathers its own Options.
//   - No dead switches: each option changes observable behavior or logging.
package fkrelu

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallel runs the per-orthant reduction on one goroutine per orthant.
	DefaultParallel = true

	// DefaultNormalize scales every output row of Compute so its largest
	// absolute coefficient is 1 (exactly, before rounding to float64).
	DefaultNormalize = true
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the per-call configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	logger    *zap.Logger
	parallel  bool
	normalize bool
}

// DefaultOptions returns the documented defaults with a no-op logger.
func DefaultOptions() Options {
	return Options{
		logger:    zap.NewNop(),
		parallel:  DefaultParallel,
		normalize: DefaultNormalize,
	}
}

// WithLogger routes stage diagnostics (Debug level) to l. A nil logger
// restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithParallel toggles concurrent per-orthant reduction.
func WithParallel(on bool) Option {
	return func(o *Options) { o.parallel = on }
}

// WithNormalize toggles max-abs row scaling of the Compute output.
func WithNormalize(on bool) Option {
	return func(o *Options) { o.normalize = on }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
