// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"math"
	"runtime"
)

// DefaultResolution is the number of evenly spaced time samples a
// search sweep evaluates, including t=0 and the horizon itself.
const DefaultResolution = 200

var (
	// ErrNilBuilder indicates Benchmark received a nil graph builder.
	ErrNilBuilder = errors.New("search: graph builder is nil")
	// ErrNoNodeCounts indicates Benchmark received no sizes to run.
	ErrNoNodeCounts = errors.New("search: node counts are empty")
)

// Config carries the resolved sweep parameters of a single run.
// Zero values never reach the sweep: Defaults fills them from the graph
// size and options override them.
type Config struct {
	// Gamma is the hopping rate multiplying the adjacency matrix.
	Gamma float64
	// TimeHorizon is the final sampled time.
	TimeHorizon float64
	// Resolution is the number of time samples across [0, TimeHorizon].
	Resolution int
}

// Defaults returns the canonical search parameters for an n-vertex
// graph: γ = 1/n, horizon (π/2)·√n, DefaultResolution samples.
func Defaults(n int) Config {
	return Config{
		Gamma:       1 / float64(n),
		TimeHorizon: math.Pi / 2 * math.Sqrt(float64(n)),
		Resolution:  DefaultResolution,
	}
}

// Result is the outcome of one search sweep. Times and SuccessProbs
// are parallel slices; OptimalTime is Times[argmax SuccessProbs].
type Result struct {
	// Marked is the vertex the oracle singles out.
	Marked int
	// OptimalTime is the sampled time of peak success probability.
	OptimalTime float64
	// MaxProbability is the success probability at OptimalTime.
	MaxProbability float64
	// Times holds every sampled time, ascending from zero.
	Times []float64
	// SuccessProbs holds the marked-vertex probability at each time.
	SuccessProbs []float64
}

// BenchmarkResult stacks per-size search outcomes; the three slices are
// parallel and ordered as the requested node counts.
type BenchmarkResult struct {
	NodeCounts   []int
	OptimalTimes []float64
	MaxProbs     []float64
}

// Option overrides one of the size-derived defaults for a run.
// Constructors panic on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	gamma       float64 // 0 means derive 1/n
	horizon     float64 // 0 means derive (π/2)·√n
	resolution  int
	parallelism int
}

const (
	panicGammaInvalid       = "search: WithGamma: gamma must be > 0"
	panicHorizonInvalid     = "search: WithTimeHorizon: horizon must be > 0"
	panicResolutionInvalid  = "search: WithResolution: samples must be >= 2"
	panicParallelismInvalid = "search: WithParallelism: workers must be >= 1"
)

// WithGamma overrides the hopping rate. Panics if gamma <= 0.
func WithGamma(gamma float64) Option {
	if gamma <= 0 {
		panic(panicGammaInvalid)
	}
	return func(o *options) { o.gamma = gamma }
}

// WithTimeHorizon overrides the final sampled time. Panics if
// horizon <= 0.
func WithTimeHorizon(horizon float64) Option {
	if horizon <= 0 {
		panic(panicHorizonInvalid)
	}
	return func(o *options) { o.horizon = horizon }
}

// WithResolution overrides the sample count across [0, horizon].
// Panics if samples < 2 (the sweep needs both endpoints).
func WithResolution(samples int) Option {
	if samples < 2 {
		panic(panicResolutionInvalid)
	}
	return func(o *options) { o.resolution = samples }
}

// WithParallelism bounds concurrent time samples, forwarded to the
// evolver's sweep. Defaults to runtime.GOMAXPROCS(0). Panics if
// workers < 1.
func WithParallelism(workers int) Option {
	if workers < 1 {
		panic(panicParallelismInvalid)
	}
	return func(o *options) { o.parallelism = workers }
}

// gatherOptions resolves setters against the n-derived defaults
// (last writer wins).
func gatherOptions(n int, opts ...Option) options {
	def := Defaults(n)
	o := options{
		gamma:       def.Gamma,
		horizon:     def.TimeHorizon,
		resolution:  def.Resolution,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}
