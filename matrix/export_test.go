// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// OptionsSnapshot is a read-only view of the resolved Options for black-box tests.
type OptionsSnapshot struct {
	PivotTol       float64
	ValidateNaNInf bool
	HasLogger      bool
}

// SnapshotOptions resolves opts and returns the snapshot.
func SnapshotOptions(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{PivotTol: o.pivotTol, ValidateNaNInf: o.validateNaNInf, HasLogger: o.logger != nil}
}

// ExportedNewDenseWithPolicy exposes newDenseWithPolicy.
var ExportedNewDenseWithPolicy = newDenseWithPolicy

// Factorization checks (P·A = L·U) used by the black-box LU tests.

const (
	opMul      = "Mul"
	opAllClose = "AllClose"
	opPermRows = "PermuteRows"
)

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with fast-path for *Dense.
// Complexity: O(r*n*c) time and O(r*c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				for k = 0; k < aCols; k++ {
					av = da.data[i*aCols+k]
					if av == 0 {
						continue
					}
					for j = 0; j < bCols; j++ {
						res.data[i*bCols+j] += av * db.data[k*bCols+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum := ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// PermuteRows returns a copy of m whose row i is row perm[i] of m.
// With LUFactors.Perm it builds P·A.
func PermuteRows(m Matrix, perm []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPermRows, err)
	}
	if len(perm) != m.Rows() {
		return nil, matrixErrorf(opPermRows, ErrDimensionMismatch)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opPermRows, err)
	}
	out := src.Clone().(*Dense)
	for i, p := range perm {
		if p < 0 || p >= src.r {
			return nil, matrixErrorf(opPermRows, fmt.Errorf("perm[%d]=%d: %w", i, p, ErrOutOfRange))
		}
		copy(out.RawRowView(i), src.RawRowView(p))
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
