// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/sparsead/internal/batch"
)

type term struct {
	coef  float64
	index int
}

// MergeTerms merges entries sharing an index into one entry with the summed
// coefficient, drops zero coefficients and sorts by index. The input is not modified.
// Complexity: O(W log W).
func MergeTerms(coef []float64, index []int) ([]float64, []int) {
	ts := make([]term, 0, len(coef))
	for k, c := range coef {
		if c != 0 {
			ts = append(ts, term{coef: c, index: index[k]})
		}
	}
	slices.SortStableFunc(ts, func(x, y term) int { return cmp.Compare(x.index, y.index) })

	outC := make([]float64, 0, len(ts))
	outI := make([]int, 0, len(ts))
	for k := 0; k < len(ts); {
		idx, sum := ts[k].index, 0.0
		for ; k < len(ts) && ts[k].index == idx; k++ {
			sum += ts[k].coef
		}
		if sum != 0 {
			outC = append(outC, sum)
			outI = append(outI, idx)
		}
	}

	return outC, outI
}

// Simplify replaces every element's terms by their merged form (see MergeTerms)
// and shrinks the width to the longest merged list, padding shorter ones with
// zero-coefficient entries. Values are untouched. Simplify is idempotent.
func (a *Array) Simplify(opts ...Option) {
	o := gatherOptions(opts...)
	n := a.Size()
	coefs := make([][]float64, n)
	idxs := make([][]int, n)

	// merging never fails; the error channel of batch.Run stays unused
	_ = batch.Run(n, o.workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			c, ix := a.Terms(i)
			coefs[i], idxs[i] = MergeTerms(c, ix)
		}
		return nil
	})

	width := 0
	for _, c := range coefs {
		if len(c) > width {
			width = len(c)
		}
	}
	coef := make([]float64, n*width)
	index := make([]int, n*width)
	for i := range coefs {
		copy(coef[i*width:], coefs[i])
		copy(index[i*width:], idxs[i])
	}
	a.width, a.coef, a.index = width, coef, index
}
