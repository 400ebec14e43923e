// SPDX-License-Identifier: MIT

package shape

import "fmt"

// product enumerates base + Σ_a terms[a][i_a] over every multi-index i in
// row-major order. It is the single kernel behind every offset table of the package.
// Complexity: O(Π len(terms[a])) time and space.
func product(base int, terms [][]int) []int {
	total := 1
	for _, t := range terms {
		total *= len(t)
	}
	out := make([]int, total)
	if total == 0 {
		return out
	}

	// odometer over the term lists, last axis fastest
	pos := make([]int, len(terms))
	cur := base
	for _, t := range terms {
		cur += t[0]
	}
	for k := 0; k < total; k++ {
		out[k] = cur
		for a := len(terms) - 1; a >= 0; a-- {
			t := terms[a]
			cur -= t[pos[a]]
			pos[a]++
			if pos[a] < len(t) {
				cur += t[pos[a]]
				break
			}
			pos[a] = 0
			cur += t[0]
		}
	}

	return out
}

// resolve turns a selector into the list of positions it picks on an axis of length n,
// and whether the axis survives in the result.
func (sel Sel) resolve(n int) ([]int, bool, error) {
	switch sel.kind {
	case selAll:
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}

		return out, true, nil

	case selIdx:
		i, err := wrapIndex(sel.start, n)
		if err != nil {
			return nil, false, err
		}

		return []int{i}, false, nil

	case selTake:
		out := make([]int, len(sel.list))
		for k, p := range sel.list {
			i, err := wrapIndex(p, n)
			if err != nil {
				return nil, false, err
			}
			out[k] = i
		}

		return out, true, nil

	case selSpan:
		if sel.step == 0 {
			return nil, false, fmt.Errorf("zero step: %w", ErrBadKey)
		}

		return spanPositions(sel.start, sel.stop, sel.step, n), true, nil
	}

	return nil, false, ErrBadKey
}

func wrapIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("position %d for length %d: %w", i, n, ErrIndexOutOfRange)
	}

	return i, nil
}

// spanPositions follows python slice semantics: negative bounds count from the end
// and out-of-range bounds clamp.
func spanPositions(start, stop, step, n int) []int {
	var out []int
	if step > 0 {
		start = clampBound(start, n, 0, n)
		if stop == End {
			stop = n
		}
		stop = clampBound(stop, n, 0, n)
		for i := start; i < stop; i += step {
			out = append(out, i)
		}

		return out
	}

	if start == End {
		start = n - 1
	}
	start = clampBound(start, n, -1, n-1)
	if stop == End {
		stop = -1
	} else {
		stop = clampBound(stop, n, -1, n-1)
	}
	for i := start; i > stop; i += step {
		out = append(out, i)
	}

	return out
}

func clampBound(b, n, lo, hi int) int {
	if b != End && b < 0 {
		b += n
	}
	if b < lo {
		return lo
	}
	if b > hi {
		return hi
	}

	return b
}

// Select resolves key against s. It returns the result shape and, for every result
// element in row-major order, the flat offset of the source element. Missing trailing
// selectors default to All.
//
// Errors: ErrBadKey (too many selectors, zero step), ErrIndexOutOfRange.
func Select(s Shape, key []Sel) (Shape, []int, error) {
	if len(key) > len(s) {
		return nil, nil, shapeErrorf(opSelect, fmt.Errorf("%d selectors for ndim %d: %w", len(key), len(s), ErrBadKey))
	}

	strides := s.Strides()
	base := 0
	out := Shape{}
	terms := make([][]int, 0, len(s))
	for a := range s {
		sel := All()
		if a < len(key) {
			sel = key[a]
		}
		pos, keep, err := sel.resolve(s[a])
		if err != nil {
			return nil, nil, shapeErrorf(opSelect, fmt.Errorf("axis %d: %w", a, err))
		}
		if !keep {
			base += pos[0] * strides[a]
			continue
		}
		t := make([]int, len(pos))
		for k, p := range pos {
			t[k] = p * strides[a]
		}
		terms = append(terms, t)
		out = append(out, len(pos))
	}

	return out, product(base, terms), nil
}
