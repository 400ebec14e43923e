// SPDX-License-Identifier: MIT

package sparse2

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsead/matrix"
)

// ---------- Defaults ----------

const (
	// DefaultWorkers runs Simplify and ToDense on the calling goroutine.
	DefaultWorkers = 1

	// DefaultBound asks System and ToDense to infer the bound from the referenced indices.
	DefaultBound = -1

	// DefaultSplit asks the weak-form reduction to split the bound in half.
	DefaultSplit = -1
)

const (
	panicWorkersInvalid = "sparse2: WithWorkers: workers must be >= 1"
	panicBoundInvalid   = "sparse2: WithBound: bound must be >= 1"
	panicSplitInvalid   = "sparse2: WithSplit: split must be >= 1"
	panicSolverNil      = "sparse2: WithSolver: solver must not be nil"
	panicLoggerNil      = "sparse2: WithLogger: logger must not be nil"
)

// Option configures batch kernels and the stationarity solve.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	workers int
	bound   int
	split   int
	solver  matrix.Solver
	logger  *zap.Logger
}

// WithWorkers lets Simplify and ToDense fan out over up to n goroutines across the
// outer axis. Results are identical to the sequential path. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBound fixes the dense bound (number of global unknowns) used by System and
// the solves instead of inferring it. Panics if n < 1.
func WithBound(n int) Option {
	if n < 1 {
		panic(panicBoundInvalid)
	}

	return func(o *Options) { o.bound = n }
}

// WithSplit sets the weak-form split point: indices below n form the test block v.
// Panics if n < 1.
func WithSplit(n int) Option {
	if n < 1 {
		panic(panicSplitInvalid)
	}

	return func(o *Options) { o.split = n }
}

// WithSolver replaces the default matrix.LUSolver. Panics on nil.
func WithSolver(s matrix.Solver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *Options) { o.solver = s }
}

// WithLogger routes debug diagnostics to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		bound:   DefaultBound,
		split:   DefaultSplit,
		logger:  zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.solver == nil {
		o.solver = matrix.NewLUSolver(matrix.WithLogger(o.logger))
	}

	return o
}
