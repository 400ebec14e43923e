// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsead/shape"
)

// Array is a batch of first-order sparse AD scalars sharing an outer shape.
//   - value has shape S (len == S.Size()).
//   - coef and index have shape S+(width), row-major.
type Array struct {
	shape shape.Shape
	value []float64
	width int
	coef  []float64
	index []int
}

// New wraps the given buffers without copying them.
//
// Errors: ErrShapeMismatch when len(value) != shp.Size(), len(coef) != len(index)
// or len(coef) != shp.Size()*width.
func New(value []float64, shp shape.Shape, coef []float64, index []int, width int) (*Array, error) {
	if err := shp.Validate(); err != nil {
		return nil, sparseErrorf(opNew, err)
	}
	n := shp.Size()
	switch {
	case len(value) != n:
		return nil, sparseErrorf(opNew, fmt.Errorf("value len %d for shape %v: %w", len(value), shp, ErrShapeMismatch))
	case len(coef) != len(index):
		return nil, sparseErrorf(opNew, fmt.Errorf("coef len %d, index len %d: %w", len(coef), len(index), ErrShapeMismatch))
	case width < 0 || len(coef) != n*width:
		return nil, sparseErrorf(opNew, fmt.Errorf("coef len %d for shape %v width %d: %w", len(coef), shp, width, ErrShapeMismatch))
	}

	return &Array{shape: shp.Clone(), value: value, width: width, coef: coef, index: index}, nil
}

// Identity builds unit first-order terms: element i gets coefficient 1 at indices[i].
func Identity(value []float64, shp shape.Shape, indices []int) (*Array, error) {
	if len(indices) != len(value) {
		return nil, sparseErrorf(opNew, fmt.Errorf("%d indices for %d values: %w", len(indices), len(value), ErrShapeMismatch))
	}
	coef := make([]float64, len(value))
	for i := range coef {
		coef[i] = 1
	}
	idx := make([]int, len(indices))
	copy(idx, indices)
	val := make([]float64, len(value))
	copy(val, value)

	return New(val, shp, coef, idx, 1)
}

// Shape returns a copy of the outer shape.
func (a *Array) Shape() shape.Shape { return a.shape.Clone() }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.value) }

// Width returns the sparse width W.
func (a *Array) Width() int { return a.width }

// Value returns a copy of the values.
func (a *Array) Value() []float64 { return append([]float64(nil), a.value...) }

// Coef returns a copy of the coefficient buffer (shape S+(W)).
func (a *Array) Coef() []float64 { return append([]float64(nil), a.coef...) }

// Index returns a copy of the index buffer (shape S+(W)).
func (a *Array) Index() []int { return append([]int(nil), a.index...) }

// Terms returns the (coef, index) slots of flat element i, padding included.
// The returned slices alias the array.
func (a *Array) Terms(i int) ([]float64, []int) {
	lo, hi := i*a.width, (i+1)*a.width
	return a.coef[lo:hi], a.index[lo:hi]
}

// Bound returns 1 + the largest index carried by a nonzero coefficient, or 0 when
// the array references no index.
func (a *Array) Bound() int {
	bound := 0
	for k, c := range a.coef {
		if c != 0 && a.index[k] >= bound {
			bound = a.index[k] + 1
		}
	}

	return bound
}

func (a *Array) String() string {
	return fmt.Sprintf("sparse.Array%v{value: %v, coef: %v, index: %v}", a.shape, a.value, a.coef, a.index)
}
