// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/qwalklab/qwalk/graph"
)

// Graph kinds accepted by the --graph flag.
const (
	graphComplete  = "complete"
	graphCycle     = "cycle"
	graphStar      = "star"
	graphHypercube = "hypercube"
)

// ErrUnknownGraph indicates a --graph value outside the supported set.
var ErrUnknownGraph = errors.New("unknown graph kind")

// buildGraph maps a --graph/--nodes pair onto a builder. Hypercubes
// take nodes as the vertex count, so it must be a power of two.
func buildGraph(kind string, nodes int) (*graph.Graph, error) {
	switch kind {
	case graphComplete:
		return graph.Complete(nodes)
	case graphCycle:
		return graph.Cycle(nodes)
	case graphStar:
		return graph.Star(nodes)
	case graphHypercube:
		if nodes < 2 || bits.OnesCount(uint(nodes)) != 1 {
			return nil, fmt.Errorf("hypercube needs a power-of-two vertex count, got %d", nodes)
		}
		return graph.Hypercube(bits.TrailingZeros(uint(nodes)))
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownGraph)
	}
}

// graphBuilderFor returns a size-parameterized builder for benchmarks.
func graphBuilderFor(kind string) (func(int) (*graph.Graph, error), error) {
	if _, err := buildGraph(kind, 4); err != nil && errors.Is(err, ErrUnknownGraph) {
		return nil, err
	}
	return func(n int) (*graph.Graph, error) { return buildGraph(kind, n) }, nil
}

// parseSizes turns a comma-separated size list ("4,8,16") into ints.
func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("size list %q: %w", list, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
