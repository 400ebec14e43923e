// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Permute returns the permuted shape and, for every result element, the source offset.
// axes must be a permutation of 0..ndim-1 (negative axes allowed); an empty axes
// reverses the axis order.
func Permute(s Shape, axes []int) (Shape, []int, error) {
	n := len(s)
	if len(axes) == 0 {
		axes = make([]int, n)
		for i := range axes {
			axes[i] = n - 1 - i
		}
	}
	if len(axes) != n {
		return nil, nil, shapeErrorf(opPermute, fmt.Errorf("%d axes for ndim %d: %w", len(axes), n, ErrBadKey))
	}

	seen := make([]bool, n)
	strides := s.Strides()
	out := make(Shape, n)
	terms := make([][]int, n)
	for k, ax := range axes {
		a, err := Axis(ax, n)
		if err != nil {
			return nil, nil, shapeErrorf(opPermute, err)
		}
		if seen[a] {
			return nil, nil, shapeErrorf(opPermute, fmt.Errorf("repeated axis %d: %w", a, ErrBadKey))
		}
		seen[a] = true
		out[k] = s[a]
		t := make([]int, s[a])
		for i := range t {
			t[i] = i * strides[a]
		}
		terms[k] = t
	}

	return out, product(0, terms), nil
}

// MoveAxisLast permutes axis to the last position, keeping the others in order.
// Reductions use it to fold an axis into the trailing sparse width.
func MoveAxisLast(s Shape, axis int) (Shape, []int, error) {
	a, err := Axis(axis, len(s))
	if err != nil {
		return nil, nil, err
	}
	axes := make([]int, 0, len(s))
	for i := range s {
		if i != a {
			axes = append(axes, i)
		}
	}

	return Permute(s, append(axes, a))
}

// Remove returns s without the given (normalized) axis.
func (s Shape) Remove(axis int) Shape {
	out := make(Shape, 0, len(s))
	out = append(out, s[:axis]...)

	return append(out, s[axis+1:]...)
}

// Insert returns s with a new dim of length d at position axis.
func (s Shape) Insert(axis, d int) Shape {
	out := make(Shape, 0, len(s)+1)
	out = append(out, s[:axis]...)
	out = append(out, d)

	return append(out, s[axis:]...)
}

// ConcatMap joins shapes along axis. It returns the result shape and, for each
// operand, the destination offsets of its elements (row-major order of the operand).
func ConcatMap(shapes []Shape, axis int) (Shape, [][]int, error) {
	if len(shapes) == 0 {
		return nil, nil, shapeErrorf(opConcat, fmt.Errorf("no operands: %w", ErrShapeMismatch))
	}
	first := shapes[0]
	a, err := Axis(axis, len(first))
	if err != nil {
		return nil, nil, shapeErrorf(opConcat, err)
	}

	out := first.Clone()
	out[a] = 0
	for k, s := range shapes {
		if len(s) != len(first) {
			return nil, nil, shapeErrorf(opConcat, fmt.Errorf("operand %d ndim %d: %w", k, len(s), ErrShapeMismatch))
		}
		for i := range s {
			if i != a && s[i] != first[i] {
				return nil, nil, shapeErrorf(opConcat, fmt.Errorf("operand %d %v vs %v: %w", k, s, first, ErrShapeMismatch))
			}
		}
		out[a] += s[a]
	}

	strides := out.Strides()
	dst := make([][]int, len(shapes))
	shift := 0
	for k, s := range shapes {
		terms := make([][]int, len(s))
		for i, d := range s {
			t := make([]int, d)
			for p := range t {
				t[p] = p * strides[i]
			}
			terms[i] = t
		}
		dst[k] = product(shift*strides[a], terms)
		shift += s[a]
	}

	return out, dst, nil
}

// Reshape returns the new shape for dims, inferring at most one -1 entry.
// The element count must be preserved.
func Reshape(s Shape, dims []int) (Shape, error) {
	out := make(Shape, len(dims))
	infer := -1
	known := 1
	for i, d := range dims {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d < 0:
			return nil, shapeErrorf(opReshape, fmt.Errorf("dims %v: %w", dims, ErrBadShape))
		default:
			known *= d
		}
		out[i] = d
	}
	size := s.Size()
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, shapeErrorf(opReshape, fmt.Errorf("%v into %v: %w", s, dims, ErrShapeMismatch))
		}
		out[infer] = size / known
	} else if known != size {
		return nil, shapeErrorf(opReshape, fmt.Errorf("%v into %v: %w", s, dims, ErrShapeMismatch))
	}

	return out, nil
}

// Squeeze drops every length-1 axis.
func Squeeze(s Shape) Shape {
	out := Shape{}
	for _, d := range s {
		if d != 1 {
			out = append(out, d)
		}
	}

	return out
}
