// SPDX-License-Identifier: MIT
package sparse2_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sparsead/shape"
	"github.com/katalvlaran/sparsead/sparse2"
	"github.com/stretchr/testify/require"
)

// ident builds an identity array or fails the test.
func ident(t *testing.T, values []float64, shp shape.Shape, indices []int) *sparse2.Array {
	t.Helper()
	a, err := sparse2.Identity(values, shp, indices)
	require.NoError(t, err)

	return a
}

// scalars returns one 0-d identity variable per value, variable k at index k.
func scalars(t *testing.T, values ...float64) []*sparse2.Array {
	t.Helper()
	idx := make([]int, len(values))
	for k := range idx {
		idx[k] = k
	}
	all := ident(t, values, shape.Of(len(values)), idx)
	out := make([]*sparse2.Array, len(values))
	for k := range out {
		x, err := all.Index(shape.Idx(k))
		require.NoError(t, err)
		out[k] = x
	}

	return out
}

// denseOf converts a to dense form over bound indices.
func denseOf(t *testing.T, a *sparse2.Array, bound int) (value, grad, hess []float64) {
	t.Helper()
	d, err := a.ToDense(bound)
	require.NoError(t, err)

	return d.Value(), d.Gradient(), d.Hessian()
}

// simplified returns a simplified copy.
func simplified(a *sparse2.Array) *sparse2.Array {
	out := a.Copy()
	out.Simplify()

	return out
}

// requirePanicsWith runs f and requires a panic whose value is an error matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.Truef(t, errors.Is(err, target), "expected errors.Is(%v, %v)", err, target)
	}()
	f()
}
