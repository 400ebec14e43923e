// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/sparsead/shape"
)

// moveLast gathers a with axis moved last and returns the gathered array, the
// remaining outer shape and the folded axis length.
func (a *Array) moveLast(axis int) (*Array, shape.Shape, int, error) {
	moved, src, err := shape.MoveAxisLast(a.shape, axis)
	if err != nil {
		return nil, nil, 0, sparse2Errorf(opReduce, err)
	}
	n := len(moved) - 1

	return gather(a, src, moved, a.w1, a.w2), moved[:n].Clone(), moved[n], nil
}

// Sum folds axis into the sparse widths: values add, and the term lists of the L
// positions along the axis are concatenated, so W1 and W2 are multiplied by L.
// No coefficients are combined.
func (a *Array) Sum(axis int) (*Array, error) {
	m, outShape, l, err := a.moveLast(axis)
	if err != nil {
		return nil, err
	}

	// S'+(L, W) and S'+(L·W) share one row-major layout.
	out := &Array{
		shape:  outShape,
		value:  make([]float64, outShape.Size()),
		w1:     a.w1 * l,
		coef1:  m.coef1,
		index1: m.index1,
		w2:     a.w2 * l,
		coef2:  m.coef2,
		row:    m.row,
		col:    m.col,
	}
	for j := range out.value {
		s := 0.0
		for k := 0; k < l; k++ {
			s += m.value[j*l+k]
		}
		out.value[j] = s
	}

	return out, nil
}

// SumAll folds every element into one 0-d array.
func (a *Array) SumAll() *Array {
	out, err := a.Flatten().Sum(0)
	if err != nil {
		// a flattened array always has axis 0
		panic(err)
	}

	return out
}

// Prod multiplies the positions along axis in order. An empty axis yields 1.
func (a *Array) Prod(axis int) (*Array, error) {
	m, outShape, l, err := a.moveLast(axis)
	if err != nil {
		return nil, err
	}
	acc := zeros(outShape, 0, 0)
	for j := range acc.value {
		acc.value[j] = 1
	}
	sel := make([]shape.Sel, len(outShape)+1)
	for i := range outShape {
		sel[i] = shape.All()
	}
	for k := 0; k < l; k++ {
		sel[len(outShape)] = shape.Idx(k)
		slice, err := m.Index(sel...)
		if err != nil {
			return nil, sparse2Errorf(opReduce, err)
		}
		acc = mul(acc, slice)
	}

	return acc, nil
}

// argPick returns, for every position of the remaining shape, the offset along the
// folded axis whose value wins better(x, best); the first position wins ties.
func argPick(m *Array, n, l int, better func(x, best float64) bool) ([]int, error) {
	if l == 0 {
		return nil, fmt.Errorf("empty axis: %w", ErrShapeMismatch)
	}
	out := make([]int, n)
	for j := range out {
		best := 0
		for k := 1; k < l; k++ {
			if better(m.value[j*l+k], m.value[j*l+best]) {
				best = k
			}
		}
		out[j] = best
	}

	return out, nil
}

func less(x, y float64) bool    { return x < y }
func greater(x, y float64) bool { return x > y }

func (a *Array) extremum(axis int, better func(x, best float64) bool) (*Array, error) {
	m, outShape, l, err := a.moveLast(axis)
	if err != nil {
		return nil, err
	}
	pos, err := argPick(m, outShape.Size(), l, better)
	if err != nil {
		return nil, sparse2Errorf(opReduce, err)
	}
	src := make([]int, len(pos))
	for j, k := range pos {
		src[j] = j*l + k
	}

	return gather(m, src, outShape, a.w1, a.w2), nil
}

func (a *Array) argExtremum(axis int, better func(x, best float64) bool) ([]int, error) {
	m, outShape, l, err := a.moveLast(axis)
	if err != nil {
		return nil, err
	}
	pos, err := argPick(m, outShape.Size(), l, better)
	if err != nil {
		return nil, sparse2Errorf(opReduce, err)
	}

	return pos, nil
}

// Min returns, along axis, the element with the smallest value together with its
// full term set. The first position wins ties.
func (a *Array) Min(axis int) (*Array, error) { return a.extremum(axis, less) }

// Max returns, along axis, the element with the largest value; the first position wins ties.
func (a *Array) Max(axis int) (*Array, error) { return a.extremum(axis, greater) }

// Argmin returns the winning positions of Min, row-major over the remaining shape.
func (a *Array) Argmin(axis int) ([]int, error) { return a.argExtremum(axis, less) }

// Argmax returns the winning positions of Max, row-major over the remaining shape.
func (a *Array) Argmax(axis int) ([]int, error) { return a.argExtremum(axis, greater) }

// compareValues orders by value with NaN last; equal values compare 0.
func compareValues(x, y float64) int {
	switch xn, yn := math.IsNaN(x), math.IsNaN(y); {
	case xn && yn:
		return 0
	case xn:
		return 1
	case yn:
		return -1
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// sortOrder returns, in the axis-last layout of m, the stable ascending order of
// every length-l lane. Equal values keep their original order.
func sortOrder(m *Array, n, l int) []int {
	order := make([]int, n*l)
	for j := 0; j < n; j++ {
		lane := order[j*l : (j+1)*l]
		for k := range lane {
			lane[k] = k
		}
		vals := m.value[j*l : (j+1)*l]
		slices.SortStableFunc(lane, func(p, q int) int { return compareValues(vals[p], vals[q]) })
	}

	return order
}

// restoreAxis returns the gather map that moves the last axis of the axis-last
// layout back to position axis, for an outer shape of ndim dims.
func restoreAxis(moved shape.Shape, axis int) ([]int, error) {
	nd := len(moved)
	a, err := shape.Axis(axis, nd)
	if err != nil {
		return nil, err
	}
	back := make([]int, nd)
	for i := range back {
		switch {
		case i < a:
			back[i] = i
		case i == a:
			back[i] = nd - 1
		default:
			back[i] = i - 1
		}
	}
	_, src, err := shape.Permute(moved, back)

	return src, err
}

// Sort orders the elements along axis by value, ascending and stable, moving each
// element's full term set with it. NaN values sort last.
func (a *Array) Sort(axis int) (*Array, error) {
	m, outShape, l, err := a.moveLast(axis)
	if err != nil {
		return nil, err
	}
	order := sortOrder(m, outShape.Size(), l)
	for i, k := range order {
		order[i] = i - i%l + k
	}
	sorted := gather(m, order, m.shape, a.w1, a.w2)

	src, err := restoreAxis(m.shape, axis)
	if err != nil {
		return nil, sparse2Errorf(opSort, err)
	}

	return gather(sorted, src, a.shape.Clone(), a.w1, a.w2), nil
}

// Argsort returns, for every element of a in row-major order, the position along
// axis of the element that Sort places there.
func (a *Array) Argsort(axis int) ([]int, error) {
	m, outShape, l, err := a.moveLast(axis)
	if err != nil {
		return nil, err
	}
	order := sortOrder(m, outShape.Size(), l)
	src, err := restoreAxis(m.shape, axis)
	if err != nil {
		return nil, sparse2Errorf(opSort, err)
	}
	out := make([]int, len(src))
	for i, s := range src {
		out[i] = order[s]
	}

	return out, nil
}
