// SPDX-License-Identifier: MIT

// Package matrix - Solver backends for coordinate-format systems.
//
// Purpose:
//   - LUSolver: assemble Triplets into Dense and run the in-package pivoted LU.
//   - GonumSolver: assemble into gonum's mat.Dense and run mat.LU.
//
// Both backends report singular systems with an error matching ErrSingular and
// log sizes and residual norms at debug level through the configured zap.Logger.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opLUSolver    = "LUSolver.Solve"
	opGonumSolver = "GonumSolver.Solve"
)

// Compile-time assertions.
var (
	_ Solver = (*LUSolver)(nil)
	_ Solver = (*GonumSolver)(nil)
)

// checkSystem runs the shared preconditions of every backend.
func checkSystem(t *Triplets, rhs []float64) error {
	if err := ValidateTriplets(t); err != nil {
		return err
	}
	if t.rows != t.cols {
		return fmt.Errorf("%dx%d system: %w", t.rows, t.cols, ErrDimensionMismatch)
	}
	if t.rows == 0 {
		return ErrInvalidDimensions
	}

	return ValidateVecLen(rhs, t.rows)
}

// residualNorm returns ||t·x - rhs||_2 for diagnostics.
func residualNorm(t *Triplets, x, rhs []float64) float64 {
	ax, err := t.MatVec(x)
	if err != nil {
		return math.NaN()
	}
	floats.Sub(ax, rhs)

	return floats.Norm(ax, 2)
}

// LUSolver solves systems with the in-package partial-pivoting LU.
type LUSolver struct {
	opts Options
}

// NewLUSolver returns an LUSolver configured by opts.
func NewLUSolver(opts ...Option) *LUSolver {
	return &LUSolver{opts: gatherOptions(opts...)}
}

// Solve assembles t (duplicates summed) and solves t·x = rhs.
// Implementation:
//   - Stage 1: validate the system (square, ranges, rhs length).
//   - Stage 2: scatter-add into Dense.
//   - Stage 3: factorize and substitute.
//
// Complexity: Time O(n^3 + nnz), Space O(n^2).
func (s *LUSolver) Solve(t *Triplets, rhs []float64) ([]float64, error) {
	if err := checkSystem(t, rhs); err != nil {
		return nil, matrixErrorf(opLUSolver, err)
	}
	log := s.opts.logger
	d, err := t.ToDense(withResolved(s.opts))
	if err != nil {
		return nil, matrixErrorf(opLUSolver, err)
	}
	x, err := SolveVec(d, rhs, withResolved(s.opts))
	if err != nil {
		log.Debug("lu solve failed", zap.Int("n", t.rows), zap.Int("nnz", t.Len()), zap.Error(err))

		return nil, matrixErrorf(opLUSolver, err)
	}
	log.Debug("lu solve",
		zap.Int("n", t.rows),
		zap.Int("nnz", t.Len()),
		zap.Float64("residual", residualNorm(t, x, rhs)))

	return x, nil
}

// GonumSolver solves systems with gonum's mat.LU.
type GonumSolver struct {
	opts Options
}

// NewGonumSolver returns a GonumSolver configured by opts.
// WithPivotTolerance is ignored; gonum's condition estimate decides singularity.
func NewGonumSolver(opts ...Option) *GonumSolver {
	return &GonumSolver{opts: gatherOptions(opts...)}
}

// Solve assembles t into a mat.Dense and solves t·x = rhs.
// A factorization that is singular to working precision (condition estimate at or
// above mat.ConditionTolerance, infinite or NaN, or a zero determinant) is
// reported as ErrSingular.
func (s *GonumSolver) Solve(t *Triplets, rhs []float64) ([]float64, error) {
	if err := checkSystem(t, rhs); err != nil {
		return nil, matrixErrorf(opGonumSolver, err)
	}
	log := s.opts.logger
	n := t.rows
	a := mat.NewDense(n, n, nil)
	for k, c := range t.Coef {
		i, j := t.Row[k], t.Col[k]
		a.Set(i, j, a.At(i, j)+c)
	}

	var lu mat.LU
	lu.Factorize(a)
	if cond := lu.Cond(); !(cond < mat.ConditionTolerance) || lu.Det() == 0 {
		log.Debug("gonum lu singular", zap.Int("n", n), zap.Int("nnz", t.Len()), zap.Float64("cond", cond))

		return nil, matrixErrorf(opGonumSolver, ErrSingular)
	}

	var x mat.VecDense
	err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, append([]float64(nil), rhs...)))
	if err != nil {
		var ce mat.Condition
		if !errors.As(err, &ce) {
			return nil, matrixErrorf(opGonumSolver, err)
		}
		log.Debug("gonum lu singular", zap.Int("n", n), zap.Float64("cond", float64(ce)))

		return nil, matrixErrorf(opGonumSolver, fmt.Errorf("%w: %w", ErrSingular, err))
	}
	out := make([]float64, n)
	copy(out, x.RawVector().Data)
	log.Debug("gonum lu solve",
		zap.Int("n", n),
		zap.Int("nnz", t.Len()),
		zap.Float64("residual", residualNorm(t, out, rhs)))

	return out, nil
}
