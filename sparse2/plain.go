// SPDX-License-Identifier: MIT

package sparse2

import "math"

// Comparisons, rounding and classification have no useful derivative. They return
// plain values (row-major over the broadcast shape) and drop every term.

func compare(a, b *Array, pred func(x, y float64) bool) []bool {
	shp, ma, mb := broadcast2(a, b)
	out := make([]bool, shp.Size())
	for i := range out {
		out[i] = pred(a.value[ma[i]], b.value[mb[i]])
	}

	return out
}

// Less reports a < b elementwise.
func (a *Array) Less(b Operand) []bool {
	return compare(a, lift(b), func(x, y float64) bool { return x < y })
}

// LessEqual reports a <= b elementwise.
func (a *Array) LessEqual(b Operand) []bool {
	return compare(a, lift(b), func(x, y float64) bool { return x <= y })
}

// Greater reports a > b elementwise.
func (a *Array) Greater(b Operand) []bool {
	return compare(a, lift(b), func(x, y float64) bool { return x > y })
}

// GreaterEqual reports a >= b elementwise.
func (a *Array) GreaterEqual(b Operand) []bool {
	return compare(a, lift(b), func(x, y float64) bool { return x >= y })
}

// Equal reports a == b elementwise, comparing values only.
func (a *Array) Equal(b Operand) []bool {
	return compare(a, lift(b), func(x, y float64) bool { return x == y })
}

// NotEqual reports a != b elementwise, comparing values only.
func (a *Array) NotEqual(b Operand) []bool {
	return compare(a, lift(b), func(x, y float64) bool { return x != y })
}

func (a *Array) mapPlain(f func(float64) float64) *Plain {
	out := make([]float64, len(a.value))
	for i, v := range a.value {
		out[i] = f(v)
	}

	return &Plain{shape: a.shape.Clone(), value: out}
}

// Floor returns ⌊a⌋ without derivatives.
func (a *Array) Floor() *Plain { return a.mapPlain(math.Floor) }

// Ceil returns ⌈a⌉ without derivatives.
func (a *Array) Ceil() *Plain { return a.mapPlain(math.Ceil) }

// Round returns a rounded half away from zero, without derivatives.
func (a *Array) Round() *Plain { return a.mapPlain(math.Round) }

// Trunc returns the integer part of a without derivatives.
func (a *Array) Trunc() *Plain { return a.mapPlain(math.Trunc) }

// Sign returns -1, 0 or +1 (NaN stays NaN) without derivatives.
func (a *Array) Sign() *Plain {
	return a.mapPlain(func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return v
		}
	})
}

func (a *Array) classify(f func(float64) bool) []bool {
	out := make([]bool, len(a.value))
	for i, v := range a.value {
		out[i] = f(v)
	}

	return out
}

// IsNaN reports which values are NaN.
func (a *Array) IsNaN() []bool { return a.classify(math.IsNaN) }

// IsInf reports which values are ±Inf.
func (a *Array) IsInf() []bool {
	return a.classify(func(v float64) bool { return math.IsInf(v, 0) })
}

// IsFinite reports which values are neither NaN nor ±Inf.
func (a *Array) IsFinite() []bool {
	return a.classify(func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) })
}
