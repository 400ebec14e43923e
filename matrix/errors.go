// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (invalid Option values).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped exactly once at the public boundary with fmt.Errorf("Op: %w", ErrX).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> NaN/Inf -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and triplet assembly MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a non-square system or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix, Triplets or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a system is singular to working precision:
	// no pivot above the threshold during LU, or a gonum condition estimate at
	// or above mat.ConditionTolerance.
	ErrSingular = errors.New("matrix: singular matrix")
)
