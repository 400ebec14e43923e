// SPDX-License-Identifier: MIT

// Package batch splits work over the outer (batch) axis of an AD array.
//
// Elements along the outer axis never interact, so any contiguous partition of
// [0, n) can be processed concurrently. Run keeps the sequential path allocation-free
// when a single worker is requested.
package batch

import "golang.org/x/sync/errgroup"

// minBlock is the smallest number of elements handed to one goroutine.
const minBlock = 64

// Run calls fn on contiguous blocks [lo, hi) covering [0, n), using up to workers
// goroutines. workers <= 1 runs fn once on the calling goroutine. The first non-nil
// error is returned after every started block has finished.
func Run(n, workers int, fn func(lo, hi int) error) error {
	if n == 0 {
		return nil
	}
	if workers <= 1 || n <= minBlock {
		return fn(0, n)
	}

	block := (n + workers - 1) / workers
	if block < minBlock {
		block = minBlock
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += block {
		lo, hi := lo, lo+block
		if hi > n {
			hi = n
		}
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
