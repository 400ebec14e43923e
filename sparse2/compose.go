// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"

	"github.com/katalvlaran/sparsead/dense2"
	"github.com/katalvlaran/sparsead/shape"
)

// Compose applies the multivariate chain rule to outer∘(inner[0], ..., inner[n-1]).
// outer is a dense second-order value over n local variables, evaluated at the
// inner values; inner[k] is the sparse array for local variable k. Every inner
// array is broadcast to outer's shape and padded to the widest W1 and W2 (w1, w2).
//
//	first  = Σ_k ∂_k f · ∇inner_k                        W1 = n·w1
//	second = Σ_k ∂_k f · ∇²inner_k                       W2 = n·w2 + n²·w1²
//	       + Σ_(k,l) ∂_kl f · {∇inner_k,p ∇inner_l,q at (p,q)}
//
// Errors: ErrShapeMismatch when outer.N() != len(inner) or an inner shape does not
// broadcast to outer's shape.
func Compose(outer *dense2.Array, inner ...Operand) (*Array, error) {
	n := len(inner)
	if outer.N() != n {
		return nil, sparse2Errorf(opCompose, fmt.Errorf("outer has %d variables, %d inner arrays: %w", outer.N(), n, ErrShapeMismatch))
	}
	shp := outer.Shape()
	ins := make([]*Array, n)
	w1, w2 := 0, 0
	for k, op := range inner {
		a, err := lift(op).BroadcastTo(shp)
		if err != nil {
			return nil, sparse2Errorf(opCompose, fmt.Errorf("inner %d: %w", k, err))
		}
		ins[k] = a
		w1, w2 = max(w1, a.w1), max(w2, a.w2)
	}
	for k, a := range ins {
		ins[k] = a.padded(w1, w2)
	}

	out := zeros(shp, n*w1, n*w2+n*n*w1*w1)
	copy(out.value, outer.Value())
	for i := range out.value {
		g := outer.GradAt(i)
		h := outer.HessAt(i)
		c1, x1 := out.Terms1(i)
		c2, r2, k2 := out.Terms2(i)
		for k, a := range ins {
			ac, ax := a.Terms1(i)
			for p, c := range ac {
				c1[k*w1+p], x1[k*w1+p] = g[k]*c, ax[p]
			}
			ac2, ar, ak := a.Terms2(i)
			for p, c := range ac2 {
				c2[k*w2+p], r2[k*w2+p], k2[k*w2+p] = g[k]*c, ar[p], ak[p]
			}
		}
		base := n * w2
		for k, a := range ins {
			ac, ax := a.Terms1(i)
			for l, b := range ins {
				bc, bx := b.Terms1(i)
				hkl := h[k*n+l]
				for p, cp := range ac {
					for q, cq := range bc {
						s := base + ((k*n+l)*w1+p)*w1 + q
						c2[s], r2[s], k2[s] = hkl*cp*cq, ax[p], bx[q]
					}
				}
			}
		}
	}

	return out, nil
}

// ComposeFunc evaluates f on dense local variables seeded with the inner values
// (broadcast to a common shape) and composes the result with inner.
func ComposeFunc(f func(vars []*dense2.Array) *dense2.Array, inner ...Operand) (*Array, error) {
	shp := shape.Scalar()
	for k, op := range inner {
		s, err := shape.Broadcast(shp, lift(op).shape)
		if err != nil {
			return nil, sparse2Errorf(opCompose, fmt.Errorf("inner %d: %w", k, err))
		}
		shp = s
	}
	values := make([][]float64, len(inner))
	for k, op := range inner {
		a, err := lift(op).BroadcastTo(shp)
		if err != nil {
			return nil, sparse2Errorf(opCompose, err)
		}
		values[k] = a.value
	}
	vars, err := dense2.Variables(values, shp)
	if err != nil {
		return nil, sparse2Errorf(opCompose, err)
	}

	return Compose(f(vars), inner...)
}
