// SPDX-License-Identifier: MIT

package sparse2

import "github.com/katalvlaran/sparsead/shape"

// broadcast2 returns the common shape of a and b and, for every result element,
// the source offsets in a and b. Panics with ErrShapeMismatch when the shapes do
// not broadcast.
func broadcast2(a, b *Array) (shape.Shape, []int, []int) {
	out, err := shape.Broadcast(a.shape, b.shape)
	if err != nil {
		panic(sparse2Errorf(opBinary, err))
	}
	ma, err := shape.BroadcastMap(a.shape, out)
	if err != nil {
		panic(sparse2Errorf(opBinary, err))
	}
	mb, err := shape.BroadcastMap(b.shape, out)
	if err != nil {
		panic(sparse2Errorf(opBinary, err))
	}

	return out, ma, mb
}

// Add returns a + b. Term lists are concatenated: W1 = a.W1 + b.W1, W2 = a.W2 + b.W2.
func (a *Array) Add(b Operand) *Array { return addSub(a, lift(b), 1) }

// Sub returns a - b, concatenating a's terms with b's negated terms.
func (a *Array) Sub(b Operand) *Array { return addSub(a, lift(b), -1) }

// Rsub returns b - a.
func (a *Array) Rsub(b Operand) *Array { return addSub(lift(b), a, -1) }

func addSub(a, b *Array, sign float64) *Array {
	shp, ma, mb := broadcast2(a, b)
	w1, w2 := a.w1+b.w1, a.w2+b.w2
	out := zeros(shp, w1, w2)
	for i := range out.value {
		ia, ib := ma[i], mb[i]
		out.value[i] = a.value[ia] + sign*b.value[ib]

		c1, x1 := out.Terms1(i)
		ac, ax := a.Terms1(ia)
		bc, bx := b.Terms1(ib)
		copy(c1, ac)
		copy(x1, ax)
		for k, c := range bc {
			c1[a.w1+k] = sign * c
			x1[a.w1+k] = bx[k]
		}

		c2, r2, k2 := out.Terms2(i)
		ac2, ar, ak := a.Terms2(ia)
		bc2, br, bk := b.Terms2(ib)
		copy(c2, ac2)
		copy(r2, ar)
		copy(k2, ak)
		for k, c := range bc2 {
			c2[a.w2+k] = sign * c
			r2[a.w2+k] = br[k]
			k2[a.w2+k] = bk[k]
		}
	}

	return out
}

// Mul returns a·b.
//
//	first  = {b·∇a} ∪ {a·∇b}
//	second = {b·∇²a} ∪ {a·∇²b} ∪ {∇a_p ∇b_q at (p,q) and (q,p)}
//
// A constant b only scales a's terms; no product terms are emitted.
func (a *Array) Mul(b Operand) *Array { return mul(a, lift(b)) }

func mul(a, b *Array) *Array {
	shp, ma, mb := broadcast2(a, b)
	w1 := a.w1 + b.w1
	w2 := a.w2 + b.w2 + 2*a.w1*b.w1
	out := zeros(shp, w1, w2)
	for i := range out.value {
		ia, ib := ma[i], mb[i]
		va, vb := a.value[ia], b.value[ib]
		out.value[i] = va * vb

		c1, x1 := out.Terms1(i)
		ac, ax := a.Terms1(ia)
		bc, bx := b.Terms1(ib)
		for p, c := range ac {
			c1[p], x1[p] = vb*c, ax[p]
		}
		for q, c := range bc {
			c1[a.w1+q], x1[a.w1+q] = va*c, bx[q]
		}

		c2, r2, k2 := out.Terms2(i)
		ac2, ar, ak := a.Terms2(ia)
		bc2, br, bk := b.Terms2(ib)
		k := 0
		for p, c := range ac2 {
			c2[k], r2[k], k2[k] = vb*c, ar[p], ak[p]
			k++
		}
		for q, c := range bc2 {
			c2[k], r2[k], k2[k] = va*c, br[q], bk[q]
			k++
		}
		for p, cp := range ac {
			for q, cq := range bc {
				c2[k], r2[k], k2[k] = cp*cq, ax[p], bx[q]
				c2[k+1], r2[k+1], k2[k+1] = cp*cq, bx[q], ax[p]
				k += 2
			}
		}
	}

	return out
}

// Div returns a / b. An AD divisor is handled as a · b^-1; a constant divisor
// scales a's terms by 1/b.
func (a *Array) Div(b Operand) *Array {
	d := lift(b)
	if d.w1 == 0 && d.w2 == 0 {
		return mul(a, d.reciprocalConst())
	}

	return mul(a, d.Pow(-1))
}

// Rdiv returns b / a.
func (a *Array) Rdiv(b Operand) *Array { return mul(lift(b), a.Pow(-1)) }

// reciprocalConst returns 1/x for a zero-width array.
func (a *Array) reciprocalConst() *Array {
	out := zeros(a.shape, 0, 0)
	for i, v := range a.value {
		out.value[i] = 1 / v
	}

	return out
}

// Neg returns -a.
func (a *Array) Neg() *Array {
	out := a.Copy()
	for i := range out.value {
		out.value[i] = -out.value[i]
	}
	for i := range out.coef1 {
		out.coef1[i] = -out.coef1[i]
	}
	for i := range out.coef2 {
		out.coef2[i] = -out.coef2[i]
	}

	return out
}

// Add returns a + b for any operands.
func Add(a, b Operand) *Array { return addSub(lift(a), lift(b), 1) }

// Sub returns a - b for any operands.
func Sub(a, b Operand) *Array { return addSub(lift(a), lift(b), -1) }

// Mul returns a · b for any operands.
func Mul(a, b Operand) *Array { return mul(lift(a), lift(b)) }

// Div returns a / b for any operands.
func Div(a, b Operand) *Array { return lift(a).Div(b) }
