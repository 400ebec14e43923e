// SPDX-License-Identifier: MIT

// Package dense2 is the dense second-order forward AD container.
//
// Every element carries its value, a full gradient of length N and a full N×N
// Hessian with respect to N local variables. N is expected to be small: dense2 is the
// outer function of sparse2 composition and the target of sparse2.ToDense, not a
// general propagation engine.
//
// Layout (row-major):
//
//	value    S
//	gradient S+(N)
//	hessian  S+(N,N)
//
// Binary operations require operands of the same shape and N and panic otherwise;
// constructors return errors.
package dense2
