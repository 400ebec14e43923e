// SPDX-License-Identifier: MIT

// Package matrix is the linear-algebra boundary of the AD engine.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe accessors (At/Set return errors).
//   - Triplets: a coordinate-format (COO) system where repeated (row, col) pairs add,
//     the form in which sparse2 hands Hessians to a solver.
//   - LU with partial pivoting and SolveVec on top of it.
//   - Solver: the downstream interface (coefficients, (rows, cols)) + right-hand side
//     → solution, with two backends: LUSolver (in-package kernel) and GonumSolver
//     (gonum.org/v1/gonum/mat).
//
// All public functions validate inputs first and return package sentinels (see
// errors.go) wrapped with an operation tag; match them with errors.Is.
package matrix
