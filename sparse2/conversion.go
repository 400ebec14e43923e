// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"

	"github.com/katalvlaran/sparsead/dense2"
	"github.com/katalvlaran/sparsead/internal/batch"
	"github.com/katalvlaran/sparsead/sparse"
)

// Bound returns 1 + the largest index referenced by a nonzero coefficient of either
// order, or 0 when the array references no index.
func (a *Array) Bound() int {
	bound := 0
	for k, c := range a.coef1 {
		if c != 0 {
			bound = max(bound, a.index1[k]+1)
		}
	}
	for k, c := range a.coef2 {
		if c != 0 {
			bound = max(bound, a.row[k]+1, a.col[k]+1)
		}
	}

	return bound
}

// checkBound verifies every nonzero term lies in [0, bound). A negative bound
// checks only the lower end.
func (a *Array) checkBound(bound int) error {
	in := func(ix int) bool { return ix >= 0 && (bound < 0 || ix < bound) }
	for k, c := range a.coef1 {
		if c != 0 && !in(a.index1[k]) {
			return fmt.Errorf("first order index %d for bound %d: %w", a.index1[k], bound, ErrIndexBound)
		}
	}
	for k, c := range a.coef2 {
		if c != 0 && (!in(a.row[k]) || !in(a.col[k])) {
			return fmt.Errorf("second order (%d,%d) for bound %d: %w", a.row[k], a.col[k], bound, ErrIndexBound)
		}
	}

	return nil
}

// ToDense scatter-adds the terms into a dense gradient (S+(bound)) and Hessian
// (S+(bound, bound)). Duplicate entries, including the (i,j)/(j,i) pairs, sum.
// bound < 0 means Bound().
//
// Errors: ErrIndexBound when a nonzero term falls outside [0, bound). Nothing is
// allocated for the result before validation passes.
func (a *Array) ToDense(bound int, opts ...Option) (*dense2.Array, error) {
	if bound < 0 {
		bound = a.Bound()
	}
	if err := a.checkBound(bound); err != nil {
		return nil, sparse2Errorf(opToDense, err)
	}
	o := gatherOptions(opts...)

	grad, err := a.ToFirst().ToDense(bound, sparse.WithWorkers(o.workers))
	if err != nil {
		return nil, sparse2Errorf(opToDense, err)
	}
	nn := bound * bound
	hess := make([]float64, a.Size()*nn)
	_ = batch.Run(a.Size(), o.workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			h := hess[i*nn : (i+1)*nn]
			c2, r2, k2 := a.Terms2(i)
			for k, c := range c2 {
				if c != 0 {
					h[r2[k]*bound+k2[k]] += c
				}
			}
		}
		return nil
	})

	out, err := dense2.New(a.Value(), a.shape, bound, grad, hess)
	if err != nil {
		return nil, sparse2Errorf(opToDense, err)
	}

	return out, nil
}

// FromDense rebuilds a sparse array from every nonzero gradient and Hessian entry
// of d. Dense index j becomes global index j.
func FromDense(d *dense2.Array) *Array {
	n, size := d.N(), d.Size()
	w1, w2 := 0, 0
	for i := 0; i < size; i++ {
		w1 = max(w1, countNonzero(d.GradAt(i)))
		w2 = max(w2, countNonzero(d.HessAt(i)))
	}
	out := zeros(d.Shape(), w1, w2)
	copy(out.value, d.Value())
	for i := 0; i < size; i++ {
		c1, x1 := out.Terms1(i)
		k := 0
		for j, g := range d.GradAt(i) {
			if g != 0 {
				c1[k], x1[k] = g, j
				k++
			}
		}
		c2, r2, k2 := out.Terms2(i)
		k = 0
		for j, h := range d.HessAt(i) {
			if h != 0 {
				c2[k], r2[k], k2[k] = h, j/n, j%n
				k++
			}
		}
	}

	return out
}

func countNonzero(v []float64) int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}

	return n
}

// Triplets returns every nonzero second-order entry of every element as flat
// coordinate lists. Duplicates are kept.
func (a *Array) Triplets() (coef []float64, row, col []int) {
	for k, c := range a.coef2 {
		if c != 0 {
			coef = append(coef, c)
			row = append(row, a.row[k])
			col = append(col, a.col[k])
		}
	}

	return coef, row, col
}
