// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization kernels and solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance selects the relative pivot threshold n·ε·max|a_ij|.
	// Any negative value means "relative"; WithPivotTolerance sets an absolute one.
	DefaultPivotTolerance = -1.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and assembly.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicLoggerNil             = "matrix: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol       float64     // < 0 relative (default), >= 0 absolute
	validateNaNInf bool        // DefaultValidateNaNInf
	logger         *zap.Logger // zap.NewNop() unless WithLogger
}

// WithPivotTolerance treats pivots with |p| <= tol as zero (ErrSingular).
// Panics when tol is negative or not finite.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger routes solver diagnostics (sizes, residuals, failures) to l at debug level.
// Panics when l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewMatrixOptions resolves option setters against documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// withResolved replays an already resolved Options value.
func withResolved(src Options) Option {
	return func(o *Options) { *o = src }
}

// gatherOptions applies user-provided setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
		logger:         zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
