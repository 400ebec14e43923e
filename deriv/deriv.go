// SPDX-License-Identifier: MIT

// Package deriv holds the analytic (f, f', f'') table for the elementwise functions
// understood by the AD containers.
//
// Both sparse2 and dense2 apply one chain rule to these triples, so adding a
// function here makes it available to every container at once.
package deriv

import "math"

// Triple is f(x), f'(x) and f''(x) evaluated at one point.
type Triple struct {
	Value  float64 // f(x)
	First  float64 // f'(x)
	Second float64 // f''(x)
}

// Func evaluates a Triple at x.
type Func func(x float64) Triple

// Pow returns the triple for x^n. n may be any real; n = -1 is used by division.
func Pow(n float64) Func {
	return func(x float64) Triple {
		return Triple{
			Value:  math.Pow(x, n),
			First:  n * math.Pow(x, n-1),
			Second: n * (n - 1) * math.Pow(x, n-2),
		}
	}
}

// Sqrt is Pow(0.5) evaluated without the generic power path.
func Sqrt(x float64) Triple {
	s := math.Sqrt(x)
	return Triple{Value: s, First: 0.5 / s, Second: -0.25 / (s * x)}
}

// Log is the natural logarithm.
func Log(x float64) Triple {
	return Triple{Value: math.Log(x), First: 1 / x, Second: -1 / (x * x)}
}

// Exp is e^x.
func Exp(x float64) Triple {
	e := math.Exp(x)
	return Triple{Value: e, First: e, Second: e}
}

// Abs uses sign(x) as the derivative; at x = 0 both derivatives are 0.
func Abs(x float64) Triple {
	var s float64
	switch {
	case x > 0:
		s = 1
	case x < 0:
		s = -1
	}

	return Triple{Value: math.Abs(x), First: s}
}

// Sin is the sine.
func Sin(x float64) Triple {
	s, c := math.Sincos(x)
	return Triple{Value: s, First: c, Second: -s}
}

// Cos is the cosine.
func Cos(x float64) Triple {
	s, c := math.Sincos(x)
	return Triple{Value: c, First: -s, Second: -c}
}

// Tan is the tangent.
func Tan(x float64) Triple {
	t := math.Tan(x)
	d := 1 + t*t
	return Triple{Value: t, First: d, Second: 2 * t * d}
}

// Asin is the inverse sine on (-1, 1).
func Asin(x float64) Triple {
	r := 1 - x*x
	d := 1 / math.Sqrt(r)
	return Triple{Value: math.Asin(x), First: d, Second: x * d / r}
}

// Acos is the inverse cosine on (-1, 1).
func Acos(x float64) Triple {
	r := 1 - x*x
	d := 1 / math.Sqrt(r)
	return Triple{Value: math.Acos(x), First: -d, Second: -x * d / r}
}

// Atan is the inverse tangent.
func Atan(x float64) Triple {
	r := 1 / (1 + x*x)
	return Triple{Value: math.Atan(x), First: r, Second: -2 * x * r * r}
}

// Sinh is the hyperbolic sine.
func Sinh(x float64) Triple {
	s, c := math.Sinh(x), math.Cosh(x)
	return Triple{Value: s, First: c, Second: s}
}

// Cosh is the hyperbolic cosine.
func Cosh(x float64) Triple {
	s, c := math.Sinh(x), math.Cosh(x)
	return Triple{Value: c, First: s, Second: c}
}

// Tanh is the hyperbolic tangent.
func Tanh(x float64) Triple {
	t := math.Tanh(x)
	d := 1 - t*t
	return Triple{Value: t, First: d, Second: -2 * t * d}
}

// Asinh is the inverse hyperbolic sine.
func Asinh(x float64) Triple {
	r := 1 + x*x
	d := 1 / math.Sqrt(r)
	return Triple{Value: math.Asinh(x), First: d, Second: -x * d / r}
}

// Acosh is the inverse hyperbolic cosine on (1, +Inf).
func Acosh(x float64) Triple {
	r := x*x - 1
	d := 1 / math.Sqrt(r)
	return Triple{Value: math.Acosh(x), First: d, Second: -x * d / r}
}

// Atanh is the inverse hyperbolic tangent on (-1, 1).
func Atanh(x float64) Triple {
	r := 1 / (1 - x*x)
	return Triple{Value: math.Atanh(x), First: r, Second: 2 * x * r * r}
}
