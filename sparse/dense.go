// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsead/internal/batch"
)

// ToDense scatter-adds each element's terms into a dense gradient of length bound.
// The result has shape S+(bound), row-major. bound < 0 means Bound().
//
// Errors: ErrIndexBound when a nonzero term references an index outside [0, bound).
// Validation runs before any allocation for the result.
func (a *Array) ToDense(bound int, opts ...Option) ([]float64, error) {
	if bound < 0 {
		bound = a.Bound()
	}
	if err := a.checkBound(bound); err != nil {
		return nil, sparseErrorf(opToDense, err)
	}

	o := gatherOptions(opts...)
	out := make([]float64, a.Size()*bound)
	_ = batch.Run(a.Size(), o.workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			row := out[i*bound : (i+1)*bound]
			c, ix := a.Terms(i)
			for k, v := range c {
				if v != 0 {
					row[ix[k]] += v
				}
			}
		}
		return nil
	})

	return out, nil
}

func (a *Array) checkBound(bound int) error {
	for k, c := range a.coef {
		if c == 0 {
			continue
		}
		if ix := a.index[k]; ix < 0 || ix >= bound {
			return fmt.Errorf("index %d for bound %d: %w", ix, bound, ErrIndexBound)
		}
	}

	return nil
}
