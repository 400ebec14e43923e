// SPDX-License-Identifier: MIT

// Package sparse2 implements sparse, forward-mode, second-order automatic
// differentiation over batches of scalars.
//
// An Array holds, for every element of its outer shape S:
//
//	value                      shape S
//	first-order (coef, index)  shape S+(W1)
//	second-order (coef, row, col) shape S+(W2)
//
// Indices are global variable identifiers handed out by an Allocator. W1 and W2 are
// uniform across the array; elements with fewer real terms are padded with
// zero-coefficient entries, whose indices are never read.
//
// Arithmetic concatenates term lists instead of merging them, so widths grow with
// every operation; Simplify compacts an array in place. Products and the chain rule
// emit each off-diagonal second-order contribution as both (i,j) and (j,i); every
// consumer in this package (ToDense, System) sums duplicates, which yields the true
// symmetric Hessian.
//
// Binary operators accept any Operand: a Scalar, a *Plain array without
// derivatives, or another *Array. Operands broadcast right-aligned like numpy.
// Shape mismatches in arithmetic are programmer errors and panic with an error
// wrapping ErrShapeMismatch; constructors and structural operations return errors.
//
// Minimum, Maximum, Min, Max, Argmin and Argmax break exact ties in favor of the
// first operand (or the first position along the axis).
package sparse2
