// SPDX-License-Identifier: MIT

package shape

import "fmt"

// Broadcast returns the common shape of a and b under right-aligned broadcasting:
// aligned dims must be equal or one of them must be 1.
func Broadcast(a, b Shape) (Shape, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Shape, n)
	for i := 0; i < n; i++ {
		da, db := dimFromRight(a, n-1-i), dimFromRight(b, n-1-i)
		switch {
		case da == db:
			out[i] = da
		case da == 1:
			out[i] = db
		case db == 1:
			out[i] = da
		default:
			return nil, shapeErrorf(opBroadcast, fmt.Errorf("%v vs %v: %w", a, b, ErrShapeMismatch))
		}
	}

	return out, nil
}

// dimFromRight returns the dim k positions from the right, or 1 if s is shorter.
func dimFromRight(s Shape, k int) int {
	if k >= len(s) {
		return 1
	}

	return s[len(s)-1-k]
}

// BroadcastMap returns, for every element of `to` in row-major order, the flat offset
// of the `from` element that broadcasts onto it.
func BroadcastMap(from, to Shape) ([]int, error) {
	if len(from) > len(to) {
		return nil, shapeErrorf(opBroadcast, fmt.Errorf("%v onto %v: %w", from, to, ErrShapeMismatch))
	}
	shift := len(to) - len(from)
	strides := from.Strides()
	terms := make([][]int, len(to))
	for a, d := range to {
		t := make([]int, d)
		if a >= shift {
			fd := from[a-shift]
			switch fd {
			case d:
				for i := range t {
					t[i] = i * strides[a-shift]
				}
			case 1:
				// stride 0: every position reads the single source slot
			default:
				return nil, shapeErrorf(opBroadcast, fmt.Errorf("%v onto %v: %w", from, to, ErrShapeMismatch))
			}
		}
		terms[a] = t
	}

	return product(0, terms), nil
}
