// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"github.com/qwalklab/qwalk/contwalk"
	"github.com/qwalklab/qwalk/graph"
	"github.com/qwalklab/qwalk/hamiltonian"
)

// Run sweeps the continuous-time search walk on g for the marked
// vertex and reports the sampled time of peak success probability.
//
// The walk starts from the uniform superposition and evolves under
// hamiltonian.Search(g, γ, marked); the success probability at time t
// is the marked entry of the evolved distribution. Parameters default
// to Defaults(g.NodeCount()) and are overridable per option.
func Run(g *graph.Graph, marked int, opts ...Option) (*Result, error) {
	n := g.NodeCount()
	o := gatherOptions(n, opts...)

	h, err := hamiltonian.Search(g, o.gamma, marked)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	psi0, err := contwalk.UniformState(n)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	times := linspace(o.horizon, o.resolution)
	sw, err := contwalk.Sweep(h, psi0, times, contwalk.WithParallelism(o.parallelism))
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	res := &Result{
		Marked:       marked,
		Times:        sw.Times,
		SuccessProbs: make([]float64, len(times)),
	}
	best := 0
	for i, row := range sw.ProbMatrix {
		res.SuccessProbs[i] = row[marked]
		if res.SuccessProbs[i] > res.SuccessProbs[best] {
			best = i
		}
	}
	res.OptimalTime = res.Times[best]
	res.MaxProbability = res.SuccessProbs[best]
	return res, nil
}

// linspace returns samples evenly spaced times covering [0, horizon],
// both endpoints included. Callers guarantee samples >= 2.
func linspace(horizon float64, samples int) []float64 {
	times := make([]float64, samples)
	step := horizon / float64(samples-1)
	for i := range times {
		times[i] = float64(i) * step
	}
	times[samples-1] = horizon // exact endpoint, no accumulated rounding
	return times
}
