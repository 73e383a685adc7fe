// SPDX-License-Identifier: MIT

package search

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/qwalklab/qwalk/graph"
)

// GraphBuilder produces an n-vertex graph for a benchmark size.
// graph.Complete, graph.Cycle and friends satisfy it directly.
type GraphBuilder func(n int) (*graph.Graph, error)

// Benchmark runs the search on builder-produced graphs of every
// requested size and collects the optimal times and peak success
// probabilities, size by size. The marked vertex index is shared
// across sizes, so it must be valid for the smallest one.
//
// Sizes run concurrently in an errgroup; each slot is written by index,
// so the result order matches nodeCounts regardless of completion
// order. Options are forwarded to every Run.
func Benchmark(builder GraphBuilder, nodeCounts []int, marked int, opts ...Option) (*BenchmarkResult, error) {
	if builder == nil {
		return nil, fmt.Errorf("Benchmark: %w", ErrNilBuilder)
	}
	if len(nodeCounts) == 0 {
		return nil, fmt.Errorf("Benchmark: %w", ErrNoNodeCounts)
	}

	res := &BenchmarkResult{
		NodeCounts:   make([]int, len(nodeCounts)),
		OptimalTimes: make([]float64, len(nodeCounts)),
		MaxProbs:     make([]float64, len(nodeCounts)),
	}
	copy(res.NodeCounts, nodeCounts)

	var eg errgroup.Group
	for i, n := range nodeCounts {
		i, n := i, n // per-iteration copies for the worker closure
		eg.Go(func() error {
			g, err := builder(n)
			if err != nil {
				return fmt.Errorf("Benchmark: n=%d: %w", n, err)
			}
			run, err := Run(g, marked, opts...)
			if err != nil {
				return fmt.Errorf("Benchmark: n=%d: %w", n, err)
			}
			res.OptimalTimes[i] = run.OptimalTime
			res.MaxProbs[i] = run.MaxProbability
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
