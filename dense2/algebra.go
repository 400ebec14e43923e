// SPDX-License-Identifier: MIT

package dense2

import (
	"fmt"

	"github.com/katalvlaran/sparsead/deriv"
	"gonum.org/v1/gonum/floats"
)

func (a *Array) mustMatch(b *Array) {
	if !a.shape.Equal(b.shape) || a.n != b.n {
		panic(denseErrorf(opBinary, fmt.Errorf("%v/%d vs %v/%d: %w", a.shape, a.n, b.shape, b.n, ErrShapeMismatch)))
	}
}

func (a *Array) clone() *Array {
	return &Array{
		shape: a.shape.Clone(),
		n:     a.n,
		value: a.Value(),
		grad:  a.Gradient(),
		hess:  a.Hessian(),
	}
}

// Add returns a + b.
func (a *Array) Add(b *Array) *Array {
	a.mustMatch(b)
	out := a.clone()
	floats.Add(out.value, b.value)
	floats.Add(out.grad, b.grad)
	floats.Add(out.hess, b.hess)

	return out
}

// Sub returns a - b.
func (a *Array) Sub(b *Array) *Array {
	a.mustMatch(b)
	out := a.clone()
	floats.Sub(out.value, b.value)
	floats.Sub(out.grad, b.grad)
	floats.Sub(out.hess, b.hess)

	return out
}

// Neg returns -a.
func (a *Array) Neg() *Array { return a.MulScalar(-1) }

// AddScalar shifts every value by c.
func (a *Array) AddScalar(c float64) *Array {
	out := a.clone()
	floats.AddConst(c, out.value)

	return out
}

// MulScalar scales values and derivatives by c.
func (a *Array) MulScalar(c float64) *Array {
	out := a.clone()
	floats.Scale(c, out.value)
	floats.Scale(c, out.grad)
	floats.Scale(c, out.hess)

	return out
}

// Mul returns the elementwise product a·b:
//
//	∇(ab)  = b∇a + a∇b
//	∇²(ab) = b∇²a + a∇²b + ∇a⊗∇b + ∇b⊗∇a
func (a *Array) Mul(b *Array) *Array {
	a.mustMatch(b)
	n := a.n
	out := Zeros(a.shape, n)
	for i := range a.value {
		x, y := a.value[i], b.value[i]
		out.value[i] = x * y

		ga, gb, g := a.GradAt(i), b.GradAt(i), out.GradAt(i)
		floats.ScaleTo(g, y, ga)
		floats.AddScaled(g, x, gb)

		h := out.HessAt(i)
		floats.ScaleTo(h, y, a.HessAt(i))
		floats.AddScaled(h, x, b.HessAt(i))
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				h[r*n+c] += ga[r]*gb[c] + gb[r]*ga[c]
			}
		}
	}

	return out
}

// Div returns a / b, i.e. a · b^-1.
func (a *Array) Div(b *Array) *Array { return a.Mul(b.Pow(-1)) }

// Apply evaluates f elementwise with the chain rule
//
//	∇f(a)  = f'∇a
//	∇²f(a) = f'∇²a + f''∇a⊗∇a
func (a *Array) Apply(f deriv.Func) *Array {
	n := a.n
	out := Zeros(a.shape, n)
	for i, x := range a.value {
		t := f(x)
		out.value[i] = t.Value

		ga := a.GradAt(i)
		floats.ScaleTo(out.GradAt(i), t.First, ga)

		h := out.HessAt(i)
		floats.ScaleTo(h, t.First, a.HessAt(i))
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				h[r*n+c] += t.Second * ga[r] * ga[c]
			}
		}
	}

	return out
}

// Pow returns a^p.
func (a *Array) Pow(p float64) *Array { return a.Apply(deriv.Pow(p)) }

// Sqrt returns √a.
func (a *Array) Sqrt() *Array { return a.Apply(deriv.Sqrt) }

// Exp returns e^a.
func (a *Array) Exp() *Array { return a.Apply(deriv.Exp) }

// Log returns ln a.
func (a *Array) Log() *Array { return a.Apply(deriv.Log) }

// Sin returns sin a.
func (a *Array) Sin() *Array { return a.Apply(deriv.Sin) }

// Cos returns cos a.
func (a *Array) Cos() *Array { return a.Apply(deriv.Cos) }
