// SPDX-License-Identifier: MIT

package dense2

import (
	"fmt"

	"github.com/katalvlaran/sparsead/shape"
)

// Array is a batch of dense second-order AD scalars with N derivative directions.
type Array struct {
	shape shape.Shape
	n     int
	value []float64 // S
	grad  []float64 // S+(n)
	hess  []float64 // S+(n,n)
}

// New wraps the given buffers without copying them.
//
// Errors: ErrShapeMismatch when a buffer length disagrees with shp and n.
func New(value []float64, shp shape.Shape, n int, grad, hess []float64) (*Array, error) {
	if err := shp.Validate(); err != nil {
		return nil, denseErrorf(opNew, err)
	}
	size := shp.Size()
	if n < 0 || len(value) != size || len(grad) != size*n || len(hess) != size*n*n {
		return nil, denseErrorf(opNew, fmt.Errorf("value %d grad %d hess %d for shape %v n %d: %w",
			len(value), len(grad), len(hess), shp, n, ErrShapeMismatch))
	}

	return &Array{shape: shp.Clone(), n: n, value: value, grad: grad, hess: hess}, nil
}

// Zeros returns an array with zero values and derivatives.
func Zeros(shp shape.Shape, n int) *Array {
	size := shp.Size()
	return &Array{
		shape: shp.Clone(),
		n:     n,
		value: make([]float64, size),
		grad:  make([]float64, size*n),
		hess:  make([]float64, size*n*n),
	}
}

// Constant copies value into an array with zero derivatives.
func Constant(value []float64, shp shape.Shape, n int) (*Array, error) {
	if len(value) != shp.Size() {
		return nil, denseErrorf(opNew, fmt.Errorf("value %d for shape %v: %w", len(value), shp, ErrShapeMismatch))
	}
	out := Zeros(shp, n)
	copy(out.value, value)

	return out, nil
}

// Variable returns the k-th of n local variables: every element has the given value,
// a unit gradient along k and a zero Hessian.
func Variable(value []float64, shp shape.Shape, k, n int) (*Array, error) {
	if k < 0 || k >= n {
		return nil, denseErrorf(opVariable, fmt.Errorf("slot %d of %d: %w", k, n, ErrBadVariable))
	}
	out, err := Constant(value, shp, n)
	if err != nil {
		return nil, denseErrorf(opVariable, err)
	}
	for i := range out.value {
		out.grad[i*n+k] = 1
	}

	return out, nil
}

// Variables returns n local variables sharing one shape; values[k] holds variable k.
func Variables(values [][]float64, shp shape.Shape) ([]*Array, error) {
	n := len(values)
	out := make([]*Array, n)
	for k, v := range values {
		a, err := Variable(v, shp, k, n)
		if err != nil {
			return nil, err
		}
		out[k] = a
	}

	return out, nil
}

// Shape returns a copy of the outer shape.
func (a *Array) Shape() shape.Shape { return a.shape.Clone() }

// Size returns the number of elements.
func (a *Array) Size() int { return len(a.value) }

// N returns the number of derivative directions.
func (a *Array) N() int { return a.n }

// Value returns a copy of the values.
func (a *Array) Value() []float64 { return append([]float64(nil), a.value...) }

// Gradient returns a copy of the gradient buffer (shape S+(N)).
func (a *Array) Gradient() []float64 { return append([]float64(nil), a.grad...) }

// Hessian returns a copy of the Hessian buffer (shape S+(N,N)).
func (a *Array) Hessian() []float64 { return append([]float64(nil), a.hess...) }

// GradAt returns the gradient of flat element i. The slice aliases the array.
func (a *Array) GradAt(i int) []float64 { return a.grad[i*a.n : (i+1)*a.n] }

// HessAt returns the row-major N×N Hessian of flat element i. The slice aliases the array.
func (a *Array) HessAt(i int) []float64 {
	nn := a.n * a.n
	return a.hess[i*nn : (i+1)*nn]
}

func (a *Array) String() string {
	return fmt.Sprintf("dense2.Array%v{value: %v, gradient: %v, hessian: %v}", a.shape, a.value, a.grad, a.hess)
}
