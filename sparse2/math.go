// SPDX-License-Identifier: MIT

package sparse2

import "github.com/katalvlaran/sparsead/deriv"

// Apply evaluates f elementwise and propagates derivatives with the chain rule:
//
//	first  = f'·∇x
//	second = f'·∇²x ∪ f''·{∇x_p ∇x_q at (p,q)} for every ordered pair (p,q)
//
// W1 is unchanged and W2 grows by W1².
func (a *Array) Apply(f deriv.Func) *Array {
	w1, w2 := a.w1, a.w2+a.w1*a.w1
	out := zeros(a.shape, w1, w2)
	for i, x := range a.value {
		t := f(x)
		out.value[i] = t.Value

		c1, x1 := out.Terms1(i)
		ac, ax := a.Terms1(i)
		for p, c := range ac {
			c1[p], x1[p] = t.First*c, ax[p]
		}

		c2, r2, k2 := out.Terms2(i)
		ac2, ar, ak := a.Terms2(i)
		k := 0
		for p, c := range ac2 {
			c2[k], r2[k], k2[k] = t.First*c, ar[p], ak[p]
			k++
		}
		for p, cp := range ac {
			for q, cq := range ac {
				c2[k], r2[k], k2[k] = t.Second*cp*cq, ax[p], ax[q]
				k++
			}
		}
	}

	return out
}

// Pow returns a^p for a constant exponent.
func (a *Array) Pow(p float64) *Array { return a.Apply(deriv.Pow(p)) }

// PowAD returns a^y for any exponent operand, as exp(y·log a). Requires a > 0.
func (a *Array) PowAD(y Operand) *Array { return a.Log().Mul(y).Exp() }

// Sqrt returns √a.
func (a *Array) Sqrt() *Array { return a.Apply(deriv.Sqrt) }

// Log returns ln a.
func (a *Array) Log() *Array { return a.Apply(deriv.Log) }

// Exp returns e^a.
func (a *Array) Exp() *Array { return a.Apply(deriv.Exp) }

// Abs returns |a|. Its derivative at 0 is taken as 0.
func (a *Array) Abs() *Array { return a.Apply(deriv.Abs) }

// Sin returns sin a.
func (a *Array) Sin() *Array { return a.Apply(deriv.Sin) }

// Cos returns cos a.
func (a *Array) Cos() *Array { return a.Apply(deriv.Cos) }

// Tan returns tan a.
func (a *Array) Tan() *Array { return a.Apply(deriv.Tan) }

// Asin returns asin a.
func (a *Array) Asin() *Array { return a.Apply(deriv.Asin) }

// Acos returns acos a.
func (a *Array) Acos() *Array { return a.Apply(deriv.Acos) }

// Atan returns atan a.
func (a *Array) Atan() *Array { return a.Apply(deriv.Atan) }

// Sinh returns sinh a.
func (a *Array) Sinh() *Array { return a.Apply(deriv.Sinh) }

// Cosh returns cosh a.
func (a *Array) Cosh() *Array { return a.Apply(deriv.Cosh) }

// Tanh returns tanh a.
func (a *Array) Tanh() *Array { return a.Apply(deriv.Tanh) }

// Asinh returns asinh a.
func (a *Array) Asinh() *Array { return a.Apply(deriv.Asinh) }

// Acosh returns acosh a.
func (a *Array) Acosh() *Array { return a.Apply(deriv.Acosh) }

// Atanh returns atanh a.
func (a *Array) Atanh() *Array { return a.Apply(deriv.Atanh) }
