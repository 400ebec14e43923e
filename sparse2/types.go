// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"

	"github.com/katalvlaran/sparsead/shape"
)

// Array is a batch of second-order sparse AD scalars sharing an outer shape.
//   - value has shape S.
//   - coef1 and index1 have shape S+(w1), row-major.
//   - coef2, row and col have shape S+(w2), row-major.
//
// Operators never mutate their receivers; only Set and Simplify write in place.
type Array struct {
	shape  shape.Shape
	value  []float64
	w1     int
	coef1  []float64
	index1 []int
	w2     int
	coef2  []float64
	row    []int
	col    []int
}

// First carries first-order term buffers of shape S+(Width).
type First struct {
	Coef  []float64
	Index []int
	Width int
}

// Second carries second-order term buffers of shape S+(Width).
type Second struct {
	Coef     []float64
	Row, Col []int
	Width    int
}

// New wraps the given buffers without copying them.
// Implementation:
//   - Stage 1: validate the outer shape and the value length.
//   - Stage 2: validate coefficient/index lengths against S and the widths.
//   - Stage 3: reject negative indices carried by nonzero coefficients.
//
// Errors: ErrShapeMismatch, ErrIndexBound.
func New(value []float64, shp shape.Shape, first First, second Second) (*Array, error) {
	if err := shp.Validate(); err != nil {
		return nil, sparse2Errorf(opNew, err)
	}
	n := shp.Size()
	switch {
	case len(value) != n:
		return nil, sparse2Errorf(opNew, fmt.Errorf("value len %d for shape %v: %w", len(value), shp, ErrShapeMismatch))
	case first.Width < 0 || len(first.Coef) != n*first.Width || len(first.Index) != len(first.Coef):
		return nil, sparse2Errorf(opNew, fmt.Errorf("first order coef %d index %d for shape %v width %d: %w",
			len(first.Coef), len(first.Index), shp, first.Width, ErrShapeMismatch))
	case second.Width < 0 || len(second.Coef) != n*second.Width ||
		len(second.Row) != len(second.Coef) || len(second.Col) != len(second.Coef):
		return nil, sparse2Errorf(opNew, fmt.Errorf("second order coef %d row %d col %d for shape %v width %d: %w",
			len(second.Coef), len(second.Row), len(second.Col), shp, second.Width, ErrShapeMismatch))
	}
	a := &Array{
		shape:  shp.Clone(),
		value:  value,
		w1:     first.Width,
		coef1:  first.Coef,
		index1: first.Index,
		w2:     second.Width,
		coef2:  second.Coef,
		row:    second.Row,
		col:    second.Col,
	}
	if err := a.checkBound(-1); err != nil {
		return nil, sparse2Errorf(opNew, err)
	}

	return a, nil
}

// Identity builds unit first-order terms (coefficient 1 at indices[i] for element i)
// and empty second-order terms. value and indices are copied.
func Identity(value []float64, shp shape.Shape, indices []int) (*Array, error) {
	if len(indices) != len(value) {
		return nil, sparse2Errorf(opIdentity, fmt.Errorf("%d indices for %d values: %w", len(indices), len(value), ErrShapeMismatch))
	}
	coef := make([]float64, len(value))
	for i := range coef {
		coef[i] = 1
	}

	return New(
		append([]float64(nil), value...),
		shp,
		First{Coef: coef, Index: append([]int(nil), indices...), Width: 1},
		Second{Coef: []float64{}, Row: []int{}, Col: []int{}},
	)
}

// zeros allocates an array of shape shp with zero values and zero-padded widths.
func zeros(shp shape.Shape, w1, w2 int) *Array {
	n := shp.Size()
	return &Array{
		shape:  shp.Clone(),
		value:  make([]float64, n),
		w1:     w1,
		coef1:  make([]float64, n*w1),
		index1: make([]int, n*w1),
		w2:     w2,
		coef2:  make([]float64, n*w2),
		row:    make([]int, n*w2),
		col:    make([]int, n*w2),
	}
}

// gather builds a new array of shape shp whose element i is a's element src[i],
// padded to widths (w1, w2) which must be at least a's.
func gather(a *Array, src []int, shp shape.Shape, w1, w2 int) *Array {
	out := zeros(shp, w1, w2)
	for i, s := range src {
		out.value[i] = a.value[s]
		copy(out.coef1[i*w1:], a.coef1[s*a.w1:(s+1)*a.w1])
		copy(out.index1[i*w1:], a.index1[s*a.w1:(s+1)*a.w1])
		copy(out.coef2[i*w2:], a.coef2[s*a.w2:(s+1)*a.w2])
		copy(out.row[i*w2:], a.row[s*a.w2:(s+1)*a.w2])
		copy(out.col[i*w2:], a.col[s*a.w2:(s+1)*a.w2])
	}

	return out
}

// identityMap returns 0..n-1.
func identityMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}

	return m
}

// padded returns a copy of a with widths raised to (w1, w2).
func (a *Array) padded(w1, w2 int) *Array {
	return gather(a, identityMap(a.Size()), a.shape, max(w1, a.w1), max(w2, a.w2))
}

// Copy returns a deep copy.
func (a *Array) Copy() *Array { return a.padded(a.w1, a.w2) }

// Shape returns a copy of the outer shape.
func (a *Array) Shape() shape.Shape { return a.shape.Clone() }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.value) }

// Width1 returns the first-order sparse width.
func (a *Array) Width1() int { return a.w1 }

// Width2 returns the second-order sparse width.
func (a *Array) Width2() int { return a.w2 }

// Value returns a copy of the values.
func (a *Array) Value() []float64 { return append([]float64(nil), a.value...) }

// First returns copies of the first-order buffers.
func (a *Array) First() First {
	return First{
		Coef:  append([]float64(nil), a.coef1...),
		Index: append([]int(nil), a.index1...),
		Width: a.w1,
	}
}

// Second returns copies of the second-order buffers.
func (a *Array) Second() Second {
	return Second{
		Coef:  append([]float64(nil), a.coef2...),
		Row:   append([]int(nil), a.row...),
		Col:   append([]int(nil), a.col...),
		Width: a.w2,
	}
}

// Terms1 returns the first-order slots of flat element i, padding included.
// The slices alias the array.
func (a *Array) Terms1(i int) (coef []float64, index []int) {
	lo, hi := i*a.w1, (i+1)*a.w1
	return a.coef1[lo:hi], a.index1[lo:hi]
}

// Terms2 returns the second-order slots of flat element i, padding included.
// The slices alias the array.
func (a *Array) Terms2(i int) (coef []float64, row, col []int) {
	lo, hi := i*a.w2, (i+1)*a.w2
	return a.coef2[lo:hi], a.row[lo:hi], a.col[lo:hi]
}

func (a *Array) String() string {
	return fmt.Sprintf("sparse2.Array%v{value: %v, coef1: %v, index1: %v, coef2: %v, row: %v, col: %v}",
		a.shape, a.value, a.coef1, a.index1, a.coef2, a.row, a.col)
}
