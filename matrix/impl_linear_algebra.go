// SPDX-License-Identifier: MIT
// Package matrix provides the dense factorization kernels behind the solvers:
// LU with partial pivoting, triangular solves and matrix-vector products.
// All functions perform strict fail-fast validation and return clear errors.
//
// Notes:
//   - Kernels copy the input once into a flat *Dense work buffer and then index the
//     buffer directly; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
// machineEpsilon is the float64 unit roundoff spacing at 1 (2^-52).
const machineEpsilon = 0x1p-52

const (
	opLU       = "LU"
	opSolveVec = "SolveVec"
	opMatVec   = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense copies any Matrix into a fresh *Dense (fast path for *Dense).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	out.validateNaNInf = false
	var v float64
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// LUFactors holds P·A = L·U packed in one buffer: strict lower part is L (unit
// diagonal implied), upper part is U. Perm[i] is the row of A moved to row i.
type LUFactors struct {
	lu   *Dense
	Perm []int
}

// LU computes the Doolittle factorization with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy into a work buffer.
//   - Stage 2: For each column k pick the row with the largest |a[i,k]|, i>=k,
//     swap it up, then eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (|pivot| <= pivot threshold).
//
// Threshold:
//   - default n·ε·max|a_ij| (relative), so a pivot left over by rounding in an
//     exactly singular matrix is still rejected; WithPivotTolerance makes it absolute.
//
// Determinism:
//   - Ties in pivot magnitude keep the upper row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	w, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := w.r
	a := w.data
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	tol := pivotThreshold(a, n, o.pivotTol)

	var i, j, k, p int
	var best, f float64
	for k = 0; k < n; k++ {
		// Stage 2.1: pivot search
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		// Stage 2.2: row swap
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		// Stage 2.3: elimination
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			a[i*n+k] = f
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return &LUFactors{lu: w, Perm: perm}, nil
}

// pivotThreshold resolves the pivot tolerance for an n×n row-major buffer a.
// A negative tol selects n·ε·max|a_ij|.
func pivotThreshold(a []float64, n int, tol float64) float64 {
	if tol >= 0 {
		return tol
	}
	var maxAbs float64
	for _, v := range a {
		if v = math.Abs(v); v > maxAbs {
			maxAbs = v
		}
	}

	return float64(n) * machineEpsilon * maxAbs
}

// L returns the unit lower-triangular factor as a new Dense.
func (f *LUFactors) L() *Dense {
	n := f.lu.r
	out, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		copy(out.data[i*n:i*n+i], f.lu.data[i*n:i*n+i])
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a new Dense.
func (f *LUFactors) U() *Dense {
	n := f.lu.r
	out, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		copy(out.data[i*n+i:(i+1)*n], f.lu.data[i*n+i:(i+1)*n])
	}

	return out
}

// Solve returns x with A·x = b using the stored factors.
// Implementation:
//   - Stage 1: y = P·b.
//   - Stage 2: forward substitution L·z = y.
//   - Stage 3: backward substitution U·x = z.
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveVec, err)
	}
	a := f.lu.data
	x := make([]float64, n)
	for i, p := range f.Perm {
		x[i] = b[p]
	}

	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += a[i*n+k] * x[k]
		}
		x[i] -= sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += a[i*n+k] * x[k]
		}
		x[i] = (x[i] - sum) / a[i*n+i]
	}

	return x, nil
}

// SolveVec factorizes m and solves m·x = b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func SolveVec(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolveVec, err)
	}

	return f.Solve(b)
}

// MatVec computes y = m·x with fixed i→j accumulation order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := 0; i < d.r; i++ {
			row := d.data[i*d.c : (i+1)*d.c]
			sum := ZeroSum
			for j, v := range row {
				sum += v * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}
	for i := 0; i < m.Rows(); i++ {
		sum := ZeroSum
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
