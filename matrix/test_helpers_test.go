// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels and solvers.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsead/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for solver comparisons.
const tol = 1e-10

// hide wraps any Matrix to hide its concrete type and force non-*Dense paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFrom builds a *Dense from row slices.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, len(rows), len(rows[0]))
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustTriplets builds a system or fails the test.
func MustTriplets(t *testing.T, n int, coef []float64, row, col []int) *matrix.Triplets {
	t.Helper()
	tr, err := matrix.NewTriplets(n, n, coef, row, col)
	require.NoError(t, err)

	return tr
}

// requireClose compares vectors element-wise within tol.
func requireClose(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.LessOrEqualf(t, math.Abs(want[i]-got[i]), tol, "index %d: want %v got %v", i, want[i], got[i])
	}
}
