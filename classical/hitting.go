// SPDX-License-Identifier: MIT

package classical

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/qwalklab/qwalk/graph"
)

const (
	// DefaultTrials is the number of Monte Carlo walks per estimate.
	DefaultTrials = 10000
	// DefaultSeed drives the walk generator when no seed is given.
	DefaultSeed int64 = 42
	// stepCapFactor bounds a single trial at stepCapFactor·N² steps.
	stepCapFactor = 10
)

var (
	// ErrVertexRange indicates start or target lies outside [0, N).
	ErrVertexRange = errors.New("classical: vertex out of range")
	// ErrIsolatedVertex indicates the start vertex has no neighbors, so
	// no walk can ever reach a distinct target.
	ErrIsolatedVertex = errors.New("classical: start vertex has no neighbors")
)

// Estimate is a Monte Carlo hitting-time estimate.
type Estimate struct {
	// MeanSteps is the trial-average number of steps to reach the target.
	MeanSteps float64
	// Trials is the number of walks the mean averages over.
	Trials int
	// StepCap is the per-trial truncation bound, 10·N².
	StepCap int
	// CappedTrials counts walks truncated at StepCap. Nonzero means
	// MeanSteps underestimates the true hitting time.
	CappedTrials int
}

// Option tunes an estimate. Constructors panic on nonsensical values.
type Option func(*options)

type options struct {
	trials int
	seed   int64
}

const panicTrialsInvalid = "classical: WithTrials: trials must be >= 1"

// WithTrials overrides the number of Monte Carlo walks.
// Panics if trials < 1.
func WithTrials(trials int) Option {
	if trials < 1 {
		panic(panicTrialsInvalid)
	}
	return func(o *options) { o.trials = trials }
}

// WithSeed overrides the generator seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

func gatherOptions(opts ...Option) options {
	o := options{trials: DefaultTrials, seed: DefaultSeed}
	for _, set := range opts {
		set(&o)
	}
	return o
}

// HittingTime estimates the expected number of uniform random-walk
// steps from start until the first visit to target. start == target
// yields zero by convention.
func HittingTime(g *graph.Graph, start, target int, opts ...Option) (*Estimate, error) {
	n := g.NodeCount()
	if start < 0 || start >= n || target < 0 || target >= n {
		return nil, fmt.Errorf("HittingTime: start=%d, target=%d, n=%d: %w", start, target, n, ErrVertexRange)
	}
	o := gatherOptions(opts...)
	stepCap := stepCapFactor * n * n

	est := &Estimate{Trials: o.trials, StepCap: stepCap}
	if start == target {
		return est, nil
	}

	deg, err := g.Degree(start)
	if err != nil {
		return nil, fmt.Errorf("HittingTime: %w", err)
	}
	if deg == 0 {
		return nil, fmt.Errorf("HittingTime: start=%d: %w", start, ErrIsolatedVertex)
	}

	// One adjacency snapshot shared by all trials; Neighbors copies,
	// so fetch each list once rather than per step.
	adj := make([][]int, n)
	for v := range adj {
		if adj[v], err = g.Neighbors(v); err != nil {
			return nil, fmt.Errorf("HittingTime: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(o.seed))
	var total int64
	for trial := 0; trial < o.trials; trial++ {
		pos := start
		steps := 0
		for pos != target && steps < stepCap {
			nbrs := adj[pos]
			pos = nbrs[rng.Intn(len(nbrs))]
			steps++
		}
		if pos != target {
			est.CappedTrials++
		}
		total += int64(steps)
	}
	est.MeanSteps = float64(total) / float64(o.trials)
	return est, nil
}
