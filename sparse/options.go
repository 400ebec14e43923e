// SPDX-License-Identifier: MIT

package sparse

// DefaultWorkers runs every batch kernel on the calling goroutine.
const DefaultWorkers = 1

const panicWorkersInvalid = "sparse: WithWorkers: workers must be >= 1"

// Option configures batch kernels (Simplify, ToDense).
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	workers int
}

// WithWorkers lets kernels fan out over up to n goroutines across the outer axis.
// Results are identical to the sequential path. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o)
	}

	return o
}
