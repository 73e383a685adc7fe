// SPDX-License-Identifier: MIT

// builders.go — deterministic constructors for experiment topologies.
//
// Contract (shared by every builder):
//   - Parameters are validated first; violations return sentinel errors
//     wrapped with the builder name. Builders never panic.
//   - Vertices are created in ascending index order and each unordered
//     edge {u,v} with u<v is emitted exactly once.
//   - Output is fully deterministic: same parameters, same Graph.

package graph

import (
	"fmt"
	"strconv"
)

// Minimum sizes per topology (no magic numbers at call sites).
const (
	minCompleteNodes  = 1
	minCycleNodes     = 3
	minStarNodes      = 2
	minHypercubeDim   = 1
	minGridSide       = 1
	hypercubeDimLimit = 20 // 2^20 vertices; beyond this the dense matrices downstream are hopeless
)

// Complete returns the complete graph K_n: every pair of distinct
// vertices adjacent. Requires n ≥ 1.
func Complete(n int) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return newGraph(n, edges, nil), nil
}

// Cycle returns the cycle C_n: vertex i adjacent to (i±1) mod n.
// Requires n ≥ 3 so the cycle is simple.
func Cycle(n int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n)
	for u := 0; u < n; u++ {
		edges = append(edges, [2]int{u, (u + 1) % n})
	}
	return newGraph(n, edges, nil), nil
}

// Star returns the star S_n on n vertices: hub 0 adjacent to each of
// the n-1 leaves. Requires n ≥ 2.
func Star(n int) (*Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n-1)
	for v := 1; v < n; v++ {
		edges = append(edges, [2]int{0, v})
	}
	return newGraph(n, edges, nil), nil
}

// Hypercube returns the dim-dimensional hypercube Q_dim on 2^dim
// vertices: u adjacent to v iff their indices differ in exactly one
// bit. Labels carry the binary coordinate of each vertex.
// Requires 1 ≤ dim ≤ 20.
func Hypercube(dim int) (*Graph, error) {
	if dim < minHypercubeDim {
		return nil, fmt.Errorf("Hypercube: dim=%d < min=%d: %w", dim, minHypercubeDim, ErrTooFewVertices)
	}
	if dim > hypercubeDimLimit {
		return nil, fmt.Errorf("Hypercube: dim=%d > limit=%d: %w", dim, hypercubeDimLimit, ErrTooFewVertices)
	}

	n := 1 << dim
	edges := make([][2]int, 0, n*dim/2)
	labels := make([]string, n)
	for u := 0; u < n; u++ {
		labels[u] = zeroPadBinary(u, dim)
		for b := 0; b < dim; b++ {
			v := u ^ (1 << b)
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return newGraph(n, edges, labels), nil
}

// Grid returns the rows×cols 2D lattice with 4-neighbor adjacency.
// Vertex (r,c) has index r*cols+c and label "r,c".
// Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int) (*Graph, error) {
	if rows < minGridSide {
		return nil, fmt.Errorf("Grid: rows=%d < min=%d: %w", rows, minGridSide, ErrTooFewVertices)
	}
	if cols < minGridSide {
		return nil, fmt.Errorf("Grid: cols=%d < min=%d: %w", cols, minGridSide, ErrTooFewVertices)
	}

	n := rows * cols
	edges := make([][2]int, 0, 2*n)
	labels := make([]string, n)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			labels[u] = strconv.Itoa(r) + "," + strconv.Itoa(c)
			if c+1 < cols {
				edges = append(edges, [2]int{u, u + 1})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{u, u + cols})
			}
		}
	}
	return newGraph(n, edges, labels), nil
}

// zeroPadBinary renders v as a dim-wide binary string, MSB first.
func zeroPadBinary(v, dim int) string {
	s := strconv.FormatInt(int64(v), 2)
	for len(s) < dim {
		s = "0" + s
	}
	return s
}
