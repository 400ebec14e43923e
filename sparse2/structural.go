// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"

	"github.com/katalvlaran/sparsead/shape"
)

// Structural operations act on the outer shape only; the trailing sparse-width
// axis of every term buffer is carried through untouched. All of them return
// fresh arrays.

// Index selects elements with a numpy-like key (see shape.Select). Integer
// selectors drop their axis; missing trailing selectors default to shape.All().
func (a *Array) Index(key ...shape.Sel) (*Array, error) {
	shp, src, err := shape.Select(a.shape, key)
	if err != nil {
		return nil, sparse2Errorf(opIndex, err)
	}

	return gather(a, src, shp, a.w1, a.w2), nil
}

// At returns flat element i as a 0-d array. Like slice indexing it panics when
// i is outside [0, Size()); the panic value wraps shape.ErrIndexOutOfRange.
// Use Index for an error return.
func (a *Array) At(i int) *Array {
	if i < 0 || i >= a.Size() {
		panic(sparse2Errorf(opIndex, fmt.Errorf("flat index %d of %d: %w", i, a.Size(), shape.ErrIndexOutOfRange)))
	}

	return gather(a, []int{i}, shape.Scalar(), a.w1, a.w2)
}

// Set assigns rhs to the elements selected by key. rhs must broadcast to the
// selected shape. When rhs is wider than a, a's widths grow first (padding every
// existing element) so that no term of rhs is lost; a constant rhs zeroes the
// target terms. Nothing is written when an error is returned.
// Implementation:
//   - Stage 1: resolve the key and the rhs broadcast map.
//   - Stage 2: compute the final widths and widen a once.
//   - Stage 3: copy values and terms.
func (a *Array) Set(rhs Operand, key ...shape.Sel) error {
	shp, dst, err := shape.Select(a.shape, key)
	if err != nil {
		return sparse2Errorf(opSet, err)
	}
	r := lift(rhs)
	if r == a {
		r = a.Copy()
	}
	src, err := shape.BroadcastMap(r.shape, shp)
	if err != nil {
		return sparse2Errorf(opSet, fmt.Errorf("rhs %v into %v: %w", r.shape, shp, ErrShapeMismatch))
	}

	w1, w2 := max(a.w1, r.w1), max(a.w2, r.w2)
	if w1 != a.w1 || w2 != a.w2 {
		*a = *a.padded(w1, w2)
	}

	for k, d := range dst {
		s := src[k]
		a.value[d] = r.value[s]

		c1, x1 := a.Terms1(d)
		clear(c1)
		clear(x1)
		rc, rx := r.Terms1(s)
		copy(c1, rc)
		copy(x1, rx)

		c2, r2, k2 := a.Terms2(d)
		clear(c2)
		clear(r2)
		clear(k2)
		rc2, rr, rk := r.Terms2(s)
		copy(c2, rc2)
		copy(r2, rr)
		copy(k2, rk)
	}

	return nil
}

// Reshape returns a copy with a new outer shape of the same size. One dim may be -1.
func (a *Array) Reshape(dims ...int) (*Array, error) {
	shp, err := shape.Reshape(a.shape, dims)
	if err != nil {
		return nil, sparse2Errorf(opReshape, err)
	}
	out := a.Copy()
	out.shape = shp

	return out, nil
}

// Flatten returns a 1-d copy.
func (a *Array) Flatten() *Array {
	out := a.Copy()
	out.shape = shape.Of(a.Size())

	return out
}

// Squeeze returns a copy without length-1 axes.
func (a *Array) Squeeze() *Array {
	out := a.Copy()
	out.shape = shape.Squeeze(a.shape)

	return out
}

// BroadcastTo repeats elements to fill shp under right-aligned broadcasting.
func (a *Array) BroadcastTo(shp shape.Shape) (*Array, error) {
	src, err := shape.BroadcastMap(a.shape, shp)
	if err != nil {
		return nil, sparse2Errorf(opBroadcast, err)
	}

	return gather(a, src, shp, a.w1, a.w2), nil
}

// Transpose permutes the outer axes. No axes reverses them.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	shp, src, err := shape.Permute(a.shape, axes)
	if err != nil {
		return nil, sparse2Errorf(opTranspose, err)
	}

	return gather(a, src, shp, a.w1, a.w2), nil
}

// T reverses the outer axes.
func (a *Array) T() *Array {
	out, err := a.Transpose()
	if err != nil {
		// reversal is always a valid permutation
		panic(err)
	}

	return out
}

// Concatenate joins operands along axis. Every operand is first padded to the
// largest W1 and W2 among them.
func Concatenate(axis int, ops ...Operand) (*Array, error) {
	arrs := make([]*Array, len(ops))
	shapes := make([]shape.Shape, len(ops))
	w1, w2 := 0, 0
	for k, op := range ops {
		arrs[k] = lift(op)
		shapes[k] = arrs[k].shape
		w1, w2 = max(w1, arrs[k].w1), max(w2, arrs[k].w2)
	}
	shp, dst, err := shape.ConcatMap(shapes, axis)
	if err != nil {
		return nil, sparse2Errorf(opConcat, err)
	}

	out := zeros(shp, w1, w2)
	for k, a := range arrs {
		for i, d := range dst[k] {
			out.value[d] = a.value[i]
			c1, x1 := out.Terms1(d)
			ac, ax := a.Terms1(i)
			copy(c1, ac)
			copy(x1, ax)
			c2, r2, k2 := out.Terms2(d)
			ac2, ar, ak := a.Terms2(i)
			copy(c2, ac2)
			copy(r2, ar)
			copy(k2, ak)
		}
	}

	return out, nil
}

// Stack joins operands of equal shape along a new axis.
func Stack(axis int, ops ...Operand) (*Array, error) {
	if len(ops) == 0 {
		return nil, sparse2Errorf(opStack, fmt.Errorf("no operands: %w", ErrShapeMismatch))
	}
	ndim := lift(ops[0]).shape.NDim()
	ax, err := shape.Axis(axis, ndim+1)
	if err != nil {
		return nil, sparse2Errorf(opStack, err)
	}
	expanded := make([]Operand, len(ops))
	for k, op := range ops {
		a := lift(op)
		if !a.shape.Equal(lift(ops[0]).shape) {
			return nil, sparse2Errorf(opStack, fmt.Errorf("operand %d %v vs %v: %w", k, a.shape, lift(ops[0]).shape, ErrShapeMismatch))
		}
		e := &Array{
			shape:  a.shape.Insert(ax, 1),
			value:  a.value,
			w1:     a.w1,
			coef1:  a.coef1,
			index1: a.index1,
			w2:     a.w2,
			coef2:  a.coef2,
			row:    a.row,
			col:    a.col,
		}
		expanded[k] = e
	}

	return Concatenate(ax, expanded...)
}
