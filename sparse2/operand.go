// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"

	"github.com/katalvlaran/sparsead/shape"
)

// Operand is the closed set of values accepted by binary operators:
// Scalar, *Plain and *Array.
type Operand interface {
	operand()
}

// Scalar is a constant without derivatives. It broadcasts against any shape.
type Scalar float64

// Plain is an array of constants without derivatives.
type Plain struct {
	shape shape.Shape
	value []float64
}

var (
	_ Operand = Scalar(0)
	_ Operand = (*Plain)(nil)
	_ Operand = (*Array)(nil)
)

func (Scalar) operand() {}
func (*Plain) operand() {}
func (*Array) operand() {}

// NewPlain wraps value (no copy) as a constant array of shape shp.
func NewPlain(value []float64, shp shape.Shape) (*Plain, error) {
	if err := shp.Validate(); err != nil {
		return nil, sparse2Errorf(opPlain, err)
	}
	if len(value) != shp.Size() {
		return nil, sparse2Errorf(opPlain, fmt.Errorf("value len %d for shape %v: %w", len(value), shp, ErrShapeMismatch))
	}

	return &Plain{shape: shp.Clone(), value: value}, nil
}

// Shape returns a copy of the shape.
func (p *Plain) Shape() shape.Shape { return p.shape.Clone() }

// Value returns a copy of the values.
func (p *Plain) Value() []float64 { return append([]float64(nil), p.value...) }

// Plain drops every derivative and returns the values as constants.
func (a *Array) Plain() *Plain {
	return &Plain{shape: a.shape.Clone(), value: a.Value()}
}

// lift is the single dispatch point turning any Operand into an *Array.
// Constants become zero-width arrays; *Array is returned as is.
func lift(op Operand) *Array {
	switch v := op.(type) {
	case *Array:
		return v
	case *Plain:
		return &Array{
			shape:  v.shape,
			value:  v.value,
			coef1:  []float64{},
			index1: []int{},
			coef2:  []float64{},
			row:    []int{},
			col:    []int{},
		}
	case Scalar:
		return &Array{
			shape:  shape.Scalar(),
			value:  []float64{float64(v)},
			coef1:  []float64{},
			index1: []int{},
			coef2:  []float64{},
			row:    []int{},
			col:    []int{},
		}
	default:
		panic(fmt.Sprintf("sparse2: unsupported operand %T", op))
	}
}

// Lift converts any Operand into an *Array; constants get zero widths.
func Lift(op Operand) *Array {
	if a, ok := op.(*Array); ok {
		return a.Copy()
	}

	return lift(op).Copy()
}
