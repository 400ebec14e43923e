// SPDX-License-Identifier: MIT

package sparse2

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/sparsead/sparse"
)

// Simplify merges first-order entries sharing an index and second-order entries
// sharing a (row, col) pair, drops zero coefficients and shrinks both widths to the
// longest remaining list. Values are untouched and Simplify is idempotent.
//
// Second-order pairs are encoded as one key row·(maxCol+1)+col and merged with the
// same routine as first-order indices (sparse.Array.Simplify), then decoded.
func (a *Array) Simplify(opts ...Option) {
	o := gatherOptions(opts...)
	w1, w2 := a.w1, a.w2

	first, err := sparse.New(a.value, a.shape, a.coef1, a.index1, a.w1)
	if err != nil {
		// an Array always satisfies the first-order layout
		panic(err)
	}
	first.Simplify(sparse.WithWorkers(o.workers))
	a.w1, a.coef1, a.index1 = first.Width(), first.Coef(), first.Index()

	stride := 1
	for k, c := range a.coef2 {
		if c != 0 && a.col[k]+1 > stride {
			stride = a.col[k] + 1
		}
	}
	keys := make([]int, len(a.coef2))
	for k, c := range a.coef2 {
		if c != 0 {
			keys[k] = a.row[k]*stride + a.col[k]
		}
	}
	second, err := sparse.New(a.value, a.shape, a.coef2, keys, a.w2)
	if err != nil {
		panic(err)
	}
	second.Simplify(sparse.WithWorkers(o.workers))
	keys = second.Index()
	a.w2, a.coef2 = second.Width(), second.Coef()
	a.row, a.col = make([]int, len(keys)), make([]int, len(keys))
	for k, key := range keys {
		a.row[k], a.col[k] = key/stride, key%stride
	}

	o.logger.Debug("simplify",
		zap.Int("size", a.Size()),
		zap.Int("w1_before", w1), zap.Int("w1_after", a.w1),
		zap.Int("w2_before", w2), zap.Int("w2_after", a.w2))
}

// ToFirst drops the second-order terms and returns the first-order peer array.
func (a *Array) ToFirst() *sparse.Array {
	out, err := sparse.New(a.Value(), a.shape, a.First().Coef, a.First().Index, a.w1)
	if err != nil {
		panic(err)
	}

	return out
}
