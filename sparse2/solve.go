// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sparsead/matrix"
	"github.com/katalvlaran/sparsead/sparse"
)

// System returns the linear system whose solution is the stationary point of the
// quadratic model carried by a: H from the second-order terms (duplicates kept, the
// solver sums them) and r = -∇. An array with several elements is treated as the
// sum of its elements. The solution is the displacement from the point at which a
// was evaluated.
//
// The bound is WithBound or, by default, Bound().
//
// Errors: ErrNoIndices (nothing referenced), ErrIndexBound (a term outside the bound).
func (a *Array) System(opts ...Option) (*matrix.Triplets, []float64, error) {
	o := gatherOptions(opts...)
	t, r, err := a.system(o)
	if err != nil {
		return nil, nil, sparse2Errorf(opSystem, err)
	}

	return t, r, nil
}

func (a *Array) system(o Options) (*matrix.Triplets, []float64, error) {
	bound := o.bound
	if bound == DefaultBound {
		bound = a.Bound()
	}
	if bound == 0 {
		return nil, nil, ErrNoIndices
	}
	if err := a.checkBound(bound); err != nil {
		return nil, nil, err
	}

	grad, err := a.ToFirst().ToDense(bound, sparse.WithWorkers(o.workers))
	if err != nil {
		return nil, nil, err
	}
	r := make([]float64, bound)
	for i := 0; i < a.Size(); i++ {
		floats.Sub(r, grad[i*bound:(i+1)*bound])
	}
	coef, row, col := a.Triplets()
	t, err := matrix.NewTriplets(bound, bound, coef, row, col)
	if err != nil {
		return nil, nil, err
	}
	o.logger.Debug("stationarity system", zap.Int("bound", bound), zap.Int("nnz", t.Len()))

	return t, r, nil
}

// SolveStationary solves System() with the configured solver (WithSolver, default
// matrix.LUSolver). Solver errors, matrix.ErrSingular included, are returned wrapped.
func (a *Array) SolveStationary(opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	t, r, err := a.system(o)
	if err != nil {
		return nil, sparse2Errorf(opStationary, err)
	}
	x, err := o.solver.Solve(t, r)
	if err != nil {
		o.logger.Debug("stationarity solve failed", zap.Error(err))

		return nil, sparse2Errorf(opStationary, err)
	}

	return x, nil
}

// WeakFormSystem reduces System() for models linear in a test block v. Indices
// below the split n (WithSplit, default bound/2) form v, the rest form u. The
// result keeps the entries with row < n and col >= n (columns re-based to col-n)
// and r[:n]; its solution is the u displacement that makes the model stationary
// in v for every v.
//
// Errors: ErrIllFormedSolve when a block is empty, the coupling block is not
// square, or it carries no entry; plus the errors of System.
func (a *Array) WeakFormSystem(opts ...Option) (*matrix.Triplets, []float64, error) {
	o := gatherOptions(opts...)
	t, r, err := a.weakForm(o)
	if err != nil {
		return nil, nil, sparse2Errorf(opWeakForm, err)
	}

	return t, r, nil
}

func (a *Array) weakForm(o Options) (*matrix.Triplets, []float64, error) {
	full, r, err := a.system(o)
	if err != nil {
		return nil, nil, err
	}
	bound := full.Rows()
	n := o.split
	if n == DefaultSplit {
		n = bound / 2
	}
	if n <= 0 || n >= bound || n != bound-n {
		return nil, nil, fmt.Errorf("split %d of bound %d: %w", n, bound, ErrIllFormedSolve)
	}
	block, err := full.Block(0, n, n, bound)
	if err != nil {
		return nil, nil, err
	}
	if block.Len() == 0 {
		return nil, nil, fmt.Errorf("no v-u coupling for split %d: %w", n, ErrIllFormedSolve)
	}
	o.logger.Debug("weak form reduction",
		zap.Int("bound", bound), zap.Int("split", n),
		zap.Int("nnz_full", full.Len()), zap.Int("nnz_block", block.Len()))

	return block, r[:n], nil
}

// SolveWeakForm solves WeakFormSystem() with the configured solver and returns the
// u displacement (length bound - n).
func (a *Array) SolveWeakForm(opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	t, r, err := a.weakForm(o)
	if err != nil {
		return nil, sparse2Errorf(opSolveWeak, err)
	}
	x, err := o.solver.Solve(t, r)
	if err != nil {
		o.logger.Debug("weak form solve failed", zap.Error(err))

		return nil, sparse2Errorf(opSolveWeak, err)
	}

	return x, nil
}
