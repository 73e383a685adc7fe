// SPDX-License-Identifier: MIT

package contwalk

import "runtime"

// Option tunes sweep execution. Constructors panic only on nonsensical
// values (programmer error); resolved options are internal.
type Option func(*options)

type options struct {
	parallelism int
}

const panicParallelismInvalid = "contwalk: WithParallelism: workers must be >= 1"

// WithParallelism bounds the number of concurrent time samples a sweep
// evaluates. Defaults to runtime.GOMAXPROCS(0). Panics if workers < 1.
func WithParallelism(workers int) Option {
	if workers < 1 {
		panic(panicParallelismInvalid)
	}
	return func(o *options) { o.parallelism = workers }
}

// gatherOptions resolves setters against defaults (last writer wins).
func gatherOptions(opts ...Option) options {
	o := options{parallelism: runtime.GOMAXPROCS(0)}
	for _, set := range opts {
		set(&o)
	}
	return o
}
