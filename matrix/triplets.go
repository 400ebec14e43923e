// SPDX-License-Identifier: MIT

// Package matrix - coordinate-format (COO) systems.
//
// Purpose:
//   - Carry a sparse system as parallel (coef, row, col) lists, the boundary format
//     between the AD engine and any linear solver.
//   - Repeated (row, col) pairs are additive: assembly and products sum them.

package matrix

import "fmt"

const (
	opTriplets = "Triplets"
	opBlock    = "Triplets.Block"
	opToDense  = "Triplets.ToDense"
	opTMatVec  = "Triplets.MatVec"
)

// Triplets is a rows×cols matrix in coordinate format.
// Coef, Row and Col always have the same length.
type Triplets struct {
	Coef       []float64
	Row, Col   []int
	rows, cols int
}

// NewTriplets wraps the lists (no copy) after validating them against rows×cols.
//
// Errors: ErrInvalidDimensions for negative dims, ErrDimensionMismatch for unequal
// list lengths, ErrOutOfRange for entries outside the matrix.
func NewTriplets(rows, cols int, coef []float64, row, col []int) (*Triplets, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s: %w", opTriplets, ErrInvalidDimensions)
	}
	t := &Triplets{Coef: coef, Row: row, Col: col, rows: rows, cols: cols}
	if err := ValidateTriplets(t); err != nil {
		return nil, fmt.Errorf("%s: %w", opTriplets, err)
	}

	return t, nil
}

// Rows returns the declared row count.
func (t *Triplets) Rows() int { return t.rows }

// Cols returns the declared column count.
func (t *Triplets) Cols() int { return t.cols }

// Len returns the number of stored entries, duplicates and zeros included.
func (t *Triplets) Len() int { return len(t.Coef) }

// Block extracts the entries with r0 <= row < r1 and c0 <= col < c1, re-based to
// (row-r0, col-c0), as a new (r1-r0)×(c1-c0) system. Zero coefficients are dropped.
func (t *Triplets) Block(r0, r1, c0, c1 int) (*Triplets, error) {
	if r0 < 0 || c0 < 0 || r1 < r0 || c1 < c0 || r1 > t.rows || c1 > t.cols {
		return nil, fmt.Errorf("%s: [%d,%d)x[%d,%d) of %dx%d: %w", opBlock, r0, r1, c0, c1, t.rows, t.cols, ErrOutOfRange)
	}
	out := &Triplets{rows: r1 - r0, cols: c1 - c0}
	for k, c := range t.Coef {
		r, col := t.Row[k], t.Col[k]
		if c == 0 || r < r0 || r >= r1 || col < c0 || col >= c1 {
			continue
		}
		out.Coef = append(out.Coef, c)
		out.Row = append(out.Row, r-r0)
		out.Col = append(out.Col, col-c0)
	}

	return out, nil
}

// ToDense scatter-adds the entries into a new Dense.
// Implementation:
//   - Stage 1: ValidateTriplets (nil/lengths/ranges) before allocating.
//   - Stage 2: allocate rows×cols under the configured numeric policy.
//   - Stage 3: accumulate entries in stored order.
//
// Complexity: Time O(rows*cols + nnz), Space O(rows*cols).
func (t *Triplets) ToDense(opts ...Option) (*Dense, error) {
	if err := ValidateTriplets(t); err != nil {
		return nil, fmt.Errorf("%s: %w", opToDense, err)
	}
	o := gatherOptions(opts...)
	d, err := newDenseWithPolicy(t.rows, t.cols, o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opToDense, err)
	}
	for k, c := range t.Coef {
		if err = d.addAt(t.Row[k], t.Col[k], c); err != nil {
			return nil, fmt.Errorf("%s: %w", opToDense, err)
		}
	}

	return d, nil
}

// MatVec computes y = A·x directly from the entries, without assembling A.
func (t *Triplets) MatVec(x []float64) ([]float64, error) {
	if err := ValidateTriplets(t); err != nil {
		return nil, fmt.Errorf("%s: %w", opTMatVec, err)
	}
	if err := ValidateVecLen(x, t.cols); err != nil {
		return nil, fmt.Errorf("%s: %w", opTMatVec, err)
	}
	y := make([]float64, t.rows)
	for k, c := range t.Coef {
		y[t.Row[k]] += c * x[t.Col[k]]
	}

	return y, nil
}
