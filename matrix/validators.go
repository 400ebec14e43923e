// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil runs ValidateNotNil then ValidateSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateSquare(m)
}

// ValidateSameShape runs ValidateNotNil on both operands, then requires equal dimensions.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTriplets checks a coordinate system before assembly:
// non-nil, equal list lengths, every (row, col) inside the declared dimensions.
func ValidateTriplets(t *Triplets) error {
	if t == nil {
		return validatorErrorf("ValidateTriplets", ErrNilMatrix)
	}
	if len(t.Row) != len(t.Coef) || len(t.Col) != len(t.Coef) {
		return validatorErrorf("ValidateTriplets", ErrDimensionMismatch)
	}
	for k := range t.Coef {
		if t.Row[k] < 0 || t.Row[k] >= t.rows || t.Col[k] < 0 || t.Col[k] >= t.cols {
			return validatorErrorf("ValidateTriplets",
				fmt.Errorf("entry %d at (%d,%d) in %dx%d: %w", k, t.Row[k], t.Col[k], t.rows, t.cols, ErrOutOfRange))
		}
	}

	return nil
}
