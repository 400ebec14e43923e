// SPDX-License-Identifier: MIT

// Package sparse is the first-order sparse forward AD container.
//
// An Array holds a value per element and, per element, W (coefficient, index) pairs
// standing for Σ coef·∂/∂x_index. It is the "drop second order" view of a
// sparse2.Array and the home of the term-merging routine (Simplify) that sparse2
// reuses for both of its orders.
//
// Zero-coefficient entries are padding: their index is never read by Bound, ToDense
// or Simplify.
package sparse
