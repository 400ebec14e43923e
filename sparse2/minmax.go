// SPDX-License-Identifier: MIT

package sparse2

// Minimum returns the elementwise minimum of a and b, carrying the full term set of
// the selected branch. On an exact tie a wins.
func Minimum(a, b Operand) *Array {
	return choose(lift(a), lift(b), func(x, y float64) bool { return x <= y })
}

// Maximum returns the elementwise maximum of a and b. On an exact tie a wins.
func Maximum(a, b Operand) *Array {
	return choose(lift(a), lift(b), func(x, y float64) bool { return x >= y })
}

// Minimum is Minimum(a, b).
func (a *Array) Minimum(b Operand) *Array { return Minimum(a, b) }

// Maximum is Maximum(a, b).
func (a *Array) Maximum(b Operand) *Array { return Maximum(a, b) }

// choose picks a's element where keepA holds and b's otherwise. Widths become the
// larger of the two; the unused slots of the narrower branch are padding.
func choose(a, b *Array, keepA func(x, y float64) bool) *Array {
	shp, ma, mb := broadcast2(a, b)
	out := zeros(shp, max(a.w1, b.w1), max(a.w2, b.w2))
	for i := range out.value {
		src, s := b, mb[i]
		if keepA(a.value[ma[i]], b.value[mb[i]]) {
			src, s = a, ma[i]
		}
		out.value[i] = src.value[s]
		c1, x1 := out.Terms1(i)
		sc, sx := src.Terms1(s)
		copy(c1, sc)
		copy(x1, sx)
		c2, r2, k2 := out.Terms2(i)
		sc2, sr, sk := src.Terms2(s)
		copy(c2, sc2)
		copy(r2, sr)
		copy(k2, sk)
	}

	return out
}
