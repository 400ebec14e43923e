// SPDX-License-Identifier: MIT
// Package shape_test contains unit tests for outer-shape index math.
package shape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sparsead/shape"
	"github.com/stretchr/testify/require"
)

func TestShapeBasics(t *testing.T) {
	t.Parallel()

	s := shape.Of(2, 3, 4)
	require.Equal(t, 3, s.NDim())
	require.Equal(t, 24, s.Size())
	require.Equal(t, []int{12, 4, 1}, s.Strides())
	require.Equal(t, 1, shape.Scalar().Size())
	require.Equal(t, "(2,3,4)", s.String())
	require.True(t, s.Equal(s.Clone()))
	require.Equal(t, shape.Shape{2, 3, 4, 5}, s.Append(5))
	require.Equal(t, shape.Shape{2, 4}, s.Remove(1))
	require.Equal(t, shape.Shape{2, 7, 3, 4}, s.Insert(1, 7))
	require.ErrorIs(t, shape.Of(2, -1).Validate(), shape.ErrBadShape)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	s := shape.Of(3, 4) // offsets = 4*i + j
	tests := []struct {
		name      string
		key       []shape.Sel
		wantShape shape.Shape
		want      []int
	}{
		{"row", []shape.Sel{shape.Idx(1)}, shape.Shape{4}, []int{4, 5, 6, 7}},
		{"negative row", []shape.Sel{shape.Idx(-1)}, shape.Shape{4}, []int{8, 9, 10, 11}},
		{"element", []shape.Sel{shape.Idx(2), shape.Idx(3)}, shape.Shape{}, []int{11}},
		{"column span", []shape.Sel{shape.All(), shape.Span(1, 3)}, shape.Shape{3, 2}, []int{1, 2, 5, 6, 9, 10}},
		{"open stop", []shape.Sel{shape.Span(1, shape.End), shape.Idx(0)}, shape.Shape{2}, []int{4, 8}},
		{"reverse", []shape.Sel{shape.Step(shape.End, shape.End, -1), shape.Idx(0)}, shape.Shape{3}, []int{8, 4, 0}},
		{"strided", []shape.Sel{shape.Idx(0), shape.Step(0, 4, 2)}, shape.Shape{2}, []int{0, 2}},
		{"take", []shape.Sel{shape.Take(2, 0, 2), shape.Idx(1)}, shape.Shape{3}, []int{9, 1, 9}},
		{"clamped span", []shape.Sel{shape.Span(-10, 10), shape.Idx(0)}, shape.Shape{3}, []int{0, 4, 8}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, offs, err := shape.Select(s, tc.key)
			require.NoError(t, err)
			require.Equal(t, tc.wantShape, got)
			if diff := cmp.Diff(tc.want, offs); diff != "" {
				t.Fatalf("offsets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectErrors(t *testing.T) {
	t.Parallel()

	s := shape.Of(3)
	_, _, err := shape.Select(s, []shape.Sel{shape.Idx(3)})
	require.ErrorIs(t, err, shape.ErrIndexOutOfRange)
	_, _, err = shape.Select(s, []shape.Sel{shape.Idx(0), shape.Idx(0)})
	require.ErrorIs(t, err, shape.ErrBadKey)
	_, _, err = shape.Select(s, []shape.Sel{shape.Step(0, 3, 0)})
	require.ErrorIs(t, err, shape.ErrBadKey)
	_, _, err = shape.Select(s, []shape.Sel{shape.Take(0, -4)})
	require.ErrorIs(t, err, shape.ErrIndexOutOfRange)
}

func TestBroadcast(t *testing.T) {
	t.Parallel()

	got, err := shape.Broadcast(shape.Of(3, 1), shape.Of(4))
	require.NoError(t, err)
	require.Equal(t, shape.Shape{3, 4}, got)

	got, err = shape.Broadcast(shape.Scalar(), shape.Of(2, 2))
	require.NoError(t, err)
	require.Equal(t, shape.Shape{2, 2}, got)

	_, err = shape.Broadcast(shape.Of(3), shape.Of(4))
	require.ErrorIs(t, err, shape.ErrShapeMismatch)

	offs, err := shape.BroadcastMap(shape.Of(3, 1), shape.Of(3, 2))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1, 1, 2, 2}, offs)

	offs, err = shape.BroadcastMap(shape.Of(2), shape.Of(3, 2))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0, 1, 0, 1}, offs)

	_, err = shape.BroadcastMap(shape.Of(2, 2), shape.Of(2))
	require.ErrorIs(t, err, shape.ErrShapeMismatch)
}

func TestPermute(t *testing.T) {
	t.Parallel()

	out, offs, err := shape.Permute(shape.Of(2, 3), nil)
	require.NoError(t, err)
	require.Equal(t, shape.Shape{3, 2}, out)
	require.Equal(t, []int{0, 3, 1, 4, 2, 5}, offs)

	out, offs, err = shape.MoveAxisLast(shape.Of(2, 3), 0)
	require.NoError(t, err)
	require.Equal(t, shape.Shape{3, 2}, out)
	require.Equal(t, []int{0, 3, 1, 4, 2, 5}, offs)

	_, _, err = shape.Permute(shape.Of(2, 3), []int{0, 0})
	require.ErrorIs(t, err, shape.ErrBadKey)
	_, _, err = shape.MoveAxisLast(shape.Of(2, 3), 2)
	require.ErrorIs(t, err, shape.ErrAxisOutOfRange)
}

func TestConcatMap(t *testing.T) {
	t.Parallel()

	out, dst, err := shape.ConcatMap([]shape.Shape{shape.Of(2, 1), shape.Of(2, 2)}, -1)
	require.NoError(t, err)
	require.Equal(t, shape.Shape{2, 3}, out)
	require.Equal(t, []int{0, 3}, dst[0])
	require.Equal(t, []int{1, 2, 4, 5}, dst[1])

	_, _, err = shape.ConcatMap([]shape.Shape{shape.Of(2, 1), shape.Of(3, 1)}, 1)
	require.ErrorIs(t, err, shape.ErrShapeMismatch)
}

func TestReshapeSqueeze(t *testing.T) {
	t.Parallel()

	got, err := shape.Reshape(shape.Of(2, 6), []int{3, -1})
	require.NoError(t, err)
	require.Equal(t, shape.Shape{3, 4}, got)

	_, err = shape.Reshape(shape.Of(2, 6), []int{5, -1})
	require.ErrorIs(t, err, shape.ErrShapeMismatch)
	_, err = shape.Reshape(shape.Of(2, 6), []int{-1, -1})
	require.ErrorIs(t, err, shape.ErrBadShape)

	require.Equal(t, shape.Shape{3}, shape.Squeeze(shape.Of(1, 3, 1)))
}
