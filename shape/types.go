// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
	"strings"
)

// End is an open stop bound for Span and Step: "up to the end of the axis"
// in the direction of the step.
const End = math.MaxInt

// Shape is the list of outer dimensions of an array. The empty Shape is a scalar.
type Shape []int

// Of builds a Shape from its dimensions.
func Of(dims ...int) Shape { return Shape(dims).Clone() }

// Scalar returns the 0-dimensional shape.
func Scalar() Shape { return Shape{} }

// NDim returns the number of axes.
func (s Shape) NDim() int { return len(s) }

// Size returns the number of elements (1 for a scalar).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Clone returns an independent copy. A nil Shape clones to an empty scalar shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Strides returns row-major element strides.
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// Append returns s extended by the trailing dims, leaving s untouched.
func (s Shape) Append(dims ...int) Shape {
	out := make(Shape, 0, len(s)+len(dims))
	out = append(out, s...)

	return append(out, dims...)
}

// Validate rejects negative dimensions.
func (s Shape) Validate() error {
	for _, d := range s {
		if d < 0 {
			return ErrBadShape
		}
	}

	return nil
}

// Axis normalizes a possibly negative axis against ndim.
func Axis(axis, ndim int) (int, error) {
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, shapeErrorf(opAxis, fmt.Errorf("axis %d for ndim %d: %w", axis, ndim, ErrAxisOutOfRange))
	}

	return axis, nil
}

func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = fmt.Sprint(d)
	}

	return "(" + strings.Join(parts, ",") + ")"
}

type selKind uint8

const (
	selAll selKind = iota
	selIdx
	selSpan
	selTake
)

// Sel selects along one outer axis. Build it with Idx, Span, Step, All or Take.
// Idx drops the axis from the result; the other selectors keep it.
type Sel struct {
	kind              selKind
	start, stop, step int
	list              []int
}

// Idx selects a single position; negative positions count from the end.
func Idx(i int) Sel { return Sel{kind: selIdx, start: i} }

// All selects the whole axis.
func All() Sel { return Sel{kind: selAll} }

// Span selects [start, stop) with unit step. Use End for an open stop.
func Span(start, stop int) Sel { return Sel{kind: selSpan, start: start, stop: stop, step: 1} }

// Step selects start, start+step, ... up to stop (exclusive), python-style.
func Step(start, stop, step int) Sel {
	return Sel{kind: selSpan, start: start, stop: stop, step: step}
}

// Take selects an explicit list of positions, in order, duplicates allowed.
func Take(positions ...int) Sel {
	l := make([]int, len(positions))
	copy(l, positions)

	return Sel{kind: selTake, list: l}
}
