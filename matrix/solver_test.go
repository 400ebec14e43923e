// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsead/matrix"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// SolverSuite runs the same contract against every Solver backend.
type SolverSuite struct {
	suite.Suite
	newSolver func(opts ...matrix.Option) matrix.Solver
}

func (s *SolverSuite) TestSolvesWithDuplicates() {
	// [[2,1],[1,3]] with the off-diagonal stored as two halves each.
	tr, err := matrix.NewTriplets(2, 2,
		[]float64{2, 0.5, 0.5, 0.5, 0.5, 3},
		[]int{0, 0, 0, 1, 1, 1},
		[]int{0, 1, 1, 0, 0, 1})
	s.Require().NoError(err)

	x, err := s.newSolver().Solve(tr, []float64{3, 5})
	s.Require().NoError(err)
	s.Require().InDelta(0.8, x[0], tol)
	s.Require().InDelta(1.4, x[1], tol)
}

func (s *SolverSuite) TestZeroDiagonalNeedsPivot() {
	tr, err := matrix.NewTriplets(2, 2, []float64{1, 1}, []int{0, 1}, []int{1, 0})
	s.Require().NoError(err)

	x, err := s.newSolver().Solve(tr, []float64{2, 3})
	s.Require().NoError(err)
	s.Require().InDelta(3, x[0], tol)
	s.Require().InDelta(2, x[1], tol)
}

func (s *SolverSuite) TestSingular() {
	tr, err := matrix.NewTriplets(2, 2, []float64{1, 2, 2, 4}, []int{0, 0, 1, 1}, []int{0, 1, 0, 1})
	s.Require().NoError(err)

	_, err = s.newSolver().Solve(tr, []float64{1, 1})
	s.Require().ErrorIs(err, matrix.ErrSingular)

	// An all-zero column is singular too.
	tr, err = matrix.NewTriplets(2, 2, []float64{1}, []int{0}, []int{0})
	s.Require().NoError(err)
	_, err = s.newSolver().Solve(tr, []float64{1, 0})
	s.Require().ErrorIs(err, matrix.ErrSingular)
}

// TestSingularUnderRounding feeds a rank-1 Hessian 2·[a,1]ᵀ[a,1] whose elimination
// leaves a rounding residue instead of an exact zero pivot.
func (s *SolverSuite) TestSingularUnderRounding() {
	for _, a := range []float64{0.1, 1.0 / 3, 1.0 / 7, 10, 0.4} {
		tr, err := matrix.NewTriplets(2, 2,
			[]float64{a*a + a*a, 2 * a, 2 * a, 2},
			[]int{0, 0, 1, 1},
			[]int{0, 1, 0, 1})
		s.Require().NoError(err)

		_, err = s.newSolver().Solve(tr, []float64{1, 0})
		s.Require().ErrorIsf(err, matrix.ErrSingular, "a=%v", a)
	}
}

func (s *SolverSuite) TestPreconditions() {
	rect, err := matrix.NewTriplets(2, 3, nil, nil, nil)
	s.Require().NoError(err)
	_, err = s.newSolver().Solve(rect, []float64{1, 1})
	s.Require().ErrorIs(err, matrix.ErrDimensionMismatch)

	empty, err := matrix.NewTriplets(0, 0, nil, nil, nil)
	s.Require().NoError(err)
	_, err = s.newSolver().Solve(empty, []float64{})
	s.Require().ErrorIs(err, matrix.ErrInvalidDimensions)

	sq, err := matrix.NewTriplets(2, 2, []float64{1, 1}, []int{0, 1}, []int{0, 1})
	s.Require().NoError(err)
	_, err = s.newSolver().Solve(sq, []float64{1})
	s.Require().ErrorIs(err, matrix.ErrDimensionMismatch)

	_, err = s.newSolver().Solve(nil, nil)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)
}

func (s *SolverSuite) TestLogsResidual() {
	core, logs := observer.New(zap.DebugLevel)
	tr, err := matrix.NewTriplets(1, 1, []float64{4}, []int{0}, []int{0})
	s.Require().NoError(err)

	x, err := s.newSolver(matrix.WithLogger(zap.New(core))).Solve(tr, []float64{2})
	s.Require().NoError(err)
	s.Require().InDelta(0.5, x[0], tol)
	s.Require().Equal(1, logs.Len())
	s.Require().Equal(0.0, logs.All()[0].ContextMap()["residual"])
}

func TestLUSolverSuite(t *testing.T) {
	suite.Run(t, &SolverSuite{newSolver: func(opts ...matrix.Option) matrix.Solver {
		return matrix.NewLUSolver(opts...)
	}})
}

func TestGonumSolverSuite(t *testing.T) {
	suite.Run(t, &SolverSuite{newSolver: func(opts ...matrix.Option) matrix.Solver {
		return matrix.NewGonumSolver(opts...)
	}})
}

// TestBackendsAgree compares both backends on a larger banded system.
func TestBackendsAgree(t *testing.T) {
	t.Parallel()
	const n = 12
	var coef []float64
	var row, col []int
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		coef, row, col = append(coef, 4), append(row, i), append(col, i)
		if i > 0 {
			coef, row, col = append(coef, -1), append(row, i), append(col, i-1)
		}
		if i+1 < n {
			coef, row, col = append(coef, -1), append(row, i), append(col, i+1)
		}
		rhs[i] = float64(i + 1)
	}
	tr := MustTriplets(t, n, coef, row, col)

	a, err := matrix.NewLUSolver().Solve(tr, rhs)
	require.NoError(t, err)
	b, err := matrix.NewGonumSolver().Solve(tr, rhs)
	require.NoError(t, err)
	requireClose(t, a, b)
}
