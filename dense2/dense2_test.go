// SPDX-License-Identifier: MIT
// Package dense2_test contains unit tests for the dense second-order container.
package dense2_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsead/dense2"
	"github.com/katalvlaran/sparsead/deriv"
	"github.com/katalvlaran/sparsead/shape"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

func vars(t *testing.T, p, q float64) (*dense2.Array, *dense2.Array) {
	t.Helper()
	vs, err := dense2.Variables([][]float64{{p}, {q}}, shape.Scalar())
	require.NoError(t, err)

	return vs[0], vs[1]
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	_, err := dense2.New([]float64{1}, shape.Scalar(), 2, []float64{1}, make([]float64, 4))
	require.ErrorIs(t, err, dense2.ErrShapeMismatch)

	_, err = dense2.Variable([]float64{1}, shape.Scalar(), 2, 2)
	require.ErrorIs(t, err, dense2.ErrBadVariable)

	_, err = dense2.Constant([]float64{1, 2}, shape.Scalar(), 1)
	require.ErrorIs(t, err, dense2.ErrShapeMismatch)

	x, err := dense2.Variable([]float64{3, 4}, shape.Of(2), 1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 1}, x.Gradient())
	require.Equal(t, make([]float64, 8), x.Hessian())
}

func TestProductRule(t *testing.T) {
	t.Parallel()

	p, q := vars(t, 2, 3)
	r := p.Mul(q)
	require.Equal(t, []float64{6}, r.Value())
	require.Equal(t, []float64{3, 2}, r.Gradient())
	require.Equal(t, []float64{0, 1, 1, 0}, r.Hessian())

	sq := p.Mul(p)
	require.Equal(t, []float64{2, 0, 0, 0}, sq.Hessian())
}

// TestAgainstFiniteDifferences checks f(p,q) = sin(p)·q + exp(q)/p - √(p+q).
func TestAgainstFiniteDifferences(t *testing.T) {
	t.Parallel()

	f := func(x []float64) float64 {
		return math.Sin(x[0])*x[1] + math.Exp(x[1])/x[0] - math.Sqrt(x[0]+x[1])
	}
	x0 := []float64{0.7, 1.3}

	p, q := vars(t, x0[0], x0[1])
	r := p.Sin().Mul(q).Add(q.Exp().Div(p)).Sub(p.Add(q).Sqrt())
	require.InDelta(t, f(x0), r.Value()[0], 1e-12)

	grad := fd.Gradient(nil, f, x0, &fd.Settings{Formula: fd.Central})
	for k, g := range r.GradAt(0) {
		require.InDelta(t, grad[k], g, 1e-6)
	}

	hess := mat.NewSymDense(2, nil)
	fd.Hessian(hess, f, x0, &fd.Settings{Formula: fd.Central, Step: 1e-4})
	h := r.HessAt(0)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.InDelta(t, hess.At(i, j), h[i*2+j], 1e-4)
		}
	}
}

func TestScalarOpsAndApply(t *testing.T) {
	t.Parallel()

	p, _ := vars(t, 0.5, 0)
	r := p.MulScalar(2).AddScalar(1).Neg() // -(2p+1)
	require.Equal(t, []float64{-2}, r.Value())
	require.Equal(t, []float64{-2, 0}, r.Gradient())

	th := p.Apply(deriv.Tanh)
	want := deriv.Tanh(0.5)
	require.InDelta(t, want.Value, th.Value()[0], 1e-15)
	require.InDelta(t, want.Second, th.HessAt(0)[0], 1e-15)

	l := p.Log().Exp()
	require.InDelta(t, 0.5, l.Value()[0], 1e-15)
	require.InDelta(t, 1, l.GradAt(0)[0], 1e-12)
	require.InDelta(t, 0, l.HessAt(0)[0], 1e-12)

	c := p.Cos().Pow(2).Add(p.Sin().Pow(2))
	require.InDelta(t, 1, c.Value()[0], 1e-15)
	require.InDelta(t, 0, c.GradAt(0)[0], 1e-12)
}

func TestBinaryShapeMismatchPanics(t *testing.T) {
	t.Parallel()

	a := dense2.Zeros(shape.Of(2), 1)
	b := dense2.Zeros(shape.Of(3), 1)
	require.Panics(t, func() { a.Add(b) })
	require.Panics(t, func() { a.Mul(dense2.Zeros(shape.Of(2), 2)) })
}
