// SPDX-License-Identifier: MIT

package sparse2

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/sparsead/shape"
)

// Allocator hands out contiguous blocks of global variable indices.
// It is safe for concurrent use.
type Allocator struct {
	mu   sync.Mutex
	next int
}

// NewAllocator returns an allocator whose first block starts at index 0.
func NewAllocator() *Allocator { return &Allocator{} }

// Reserve claims n consecutive indices and returns the first one. Panics if n < 0.
func (al *Allocator) Reserve(n int) int {
	if n < 0 {
		panic("sparse2: Allocator.Reserve: n must be >= 0")
	}
	al.mu.Lock()
	defer al.mu.Unlock()
	lo := al.next
	al.next += n

	return lo
}

// Bound returns the number of indices handed out so far.
func (al *Allocator) Bound() int {
	al.mu.Lock()
	defer al.mu.Unlock()

	return al.next
}

// IdentityFrom reserves one index per element and builds the identity array.
// Indices follow row-major element order.
func IdentityFrom(al *Allocator, value []float64, shp shape.Shape) (*Array, error) {
	if len(value) != shp.Size() {
		return nil, sparse2Errorf(opIdentity, fmt.Errorf("value len %d for shape %v: %w", len(value), shp, ErrShapeMismatch))
	}
	lo := al.Reserve(len(value))
	idx := make([]int, len(value))
	for i := range idx {
		idx[i] = lo + i
	}

	return Identity(value, shp, idx)
}
