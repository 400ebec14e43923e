// Package sparsead is a sparse, forward-mode, second-order automatic
// differentiation engine for vectorized numerical code.
//
// What is sparsead?
//
//	Arrays of scalars where every element carries its value, a sparse
//	gradient as (coefficient, index) pairs and a sparse Hessian as
//	(coefficient, row, col) triplets. Arithmetic, elementwise math and
//	structural array operations propagate both orders at once; the result
//	is assembled into a sparse linear system whose solution is the
//	stationary point of the local quadratic model.
//
// Packages:
//
//	shape/   - outer-shape math: selection keys, broadcasting, permutation, concatenation
//	deriv/   - analytic (f, f', f'') triples shared by the AD types
//	sparse/  - first-order sparse AD (gradient only), deduplication and dense export
//	dense2/  - dense second-order AD for small fixed index sets (composition input)
//	matrix/  - Dense storage, Triplets (COO), pivoted LU and the Solver backends
//	sparse2/ - the engine: container, algebra, structure, simplify, dense, compose, solve
//
// Quick example (minimize (x-1)² + (y+2)²):
//
//	x, _ := sparse2.Identity([]float64{0, 0}, shape.Shape{2}, []int{0, 1})
//	c, _ := sparse2.NewPlain([]float64{1, -2}, shape.Shape{2})
//	d := x.Sub(c)
//	u, err := d.Mul(d).SolveStationary() // u = [1 -2]
//
// All computations are synchronous and deterministic; Simplify and ToDense
// may fan out across elements with WithWorkers and produce identical results.
package sparsead
