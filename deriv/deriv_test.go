// SPDX-License-Identifier: MIT
package deriv_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsead/deriv"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/hyperdual"
)

const tol = 1e-12

// seed makes a hyperdual number whose ϵ₁ϵ₂ part carries f''(x).
func seed(x float64) hyperdual.Number {
	return hyperdual.Number{Real: x, E1mag: 1, E2mag: 1}
}

// TestTriplesAgainstHyperdual cross-checks each analytic triple against gonum's
// hyperdual arithmetic, which is exact to second order.
func TestTriplesAgainstHyperdual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    deriv.Func
		h    func(hyperdual.Number) hyperdual.Number
		xs   []float64
	}{
		{"sqrt", deriv.Sqrt, hyperdual.Sqrt, []float64{0.3, 4, 17}},
		{"log", deriv.Log, hyperdual.Log, []float64{0.2, 1, 9}},
		{"exp", deriv.Exp, hyperdual.Exp, []float64{-2, 0, 1.5}},
		{"sin", deriv.Sin, hyperdual.Sin, []float64{-1, 0, 2.5}},
		{"cos", deriv.Cos, hyperdual.Cos, []float64{-1, 0, 2.5}},
		{"tan", deriv.Tan, hyperdual.Tan, []float64{-1, 0.3, 1.2}},
		{"asin", deriv.Asin, hyperdual.Asin, []float64{-0.7, 0, 0.4}},
		{"acos", deriv.Acos, hyperdual.Acos, []float64{-0.7, 0, 0.4}},
		{"atan", deriv.Atan, hyperdual.Atan, []float64{-3, 0, 0.4}},
		{"pow 3", deriv.Pow(3), func(d hyperdual.Number) hyperdual.Number { return hyperdual.PowReal(d, 3) }, []float64{-2, 0.5, 3}},
		{"pow -1", deriv.Pow(-1), func(d hyperdual.Number) hyperdual.Number { return hyperdual.PowReal(d, -1) }, []float64{-2, 0.5, 3}},
		{"pow 2.5", deriv.Pow(2.5), func(d hyperdual.Number) hyperdual.Number { return hyperdual.PowReal(d, 2.5) }, []float64{0.5, 3}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, x := range tc.xs {
				got := tc.f(x)
				want := tc.h(seed(x))
				require.InDelta(t, want.Real, got.Value, tol*(1+math.Abs(want.Real)), "value at %g", x)
				require.InDelta(t, want.E1mag, got.First, tol*(1+math.Abs(want.E1mag)), "f' at %g", x)
				require.InDelta(t, want.E1E2mag, got.Second, 1e-10*(1+math.Abs(want.E1E2mag)), "f'' at %g", x)
			}
		})
	}
}

// TestHyperbolicAgainstFiniteDifferences covers the functions hyperdual does not
// ship with a centered second-order formula.
func TestHyperbolicAgainstFiniteDifferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    deriv.Func
		g    func(float64) float64
		xs   []float64
	}{
		{"sinh", deriv.Sinh, math.Sinh, []float64{-1, 0, 2}},
		{"cosh", deriv.Cosh, math.Cosh, []float64{-1, 0, 2}},
		{"tanh", deriv.Tanh, math.Tanh, []float64{-1, 0, 2}},
		{"asinh", deriv.Asinh, math.Asinh, []float64{-1, 0, 2}},
		{"acosh", deriv.Acosh, math.Acosh, []float64{1.5, 2, 5}},
		{"atanh", deriv.Atanh, math.Atanh, []float64{-0.5, 0, 0.6}},
		{"abs", deriv.Abs, math.Abs, []float64{-2, 3}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, x := range tc.xs {
				got := tc.f(x)
				require.InDelta(t, tc.g(x), got.Value, tol)
				d1 := fd.Derivative(tc.g, x, &fd.Settings{Formula: fd.Central})
				d2 := fd.Derivative(tc.g, x, &fd.Settings{Formula: fd.Central2nd})
				require.InDelta(t, d1, got.First, 1e-5, "f' at %g", x)
				require.InDelta(t, d2, got.Second, 1e-3, "f'' at %g", x)
			}
		})
	}
}

func TestAbsAtZero(t *testing.T) {
	require.Equal(t, deriv.Triple{}, deriv.Abs(0))
}

func TestSqrtScenario(t *testing.T) {
	got := deriv.Sqrt(4)
	require.Equal(t, 2.0, got.Value)
	require.Equal(t, 0.25, got.First)
	require.Equal(t, -1.0/32, got.Second)
}
