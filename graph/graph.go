// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Graph is a simple undirected graph on vertices 0..N-1.
//
// A Graph is immutable: builders are the only constructors, and every
// accessor returns copies of internal storage. Engines therefore share
// a single Graph freely across goroutines.
type Graph struct {
	labels []string // optional per-vertex labels; len == NodeCount
	adj    [][]int  // sorted neighbor lists; adj[u] never contains u
}

// newGraph assembles a Graph from an edge set over n vertices.
// Duplicate and mirrored pairs collapse; loops are ignored.
// labels may be nil, in which case vertices are labeled by index.
func newGraph(n int, edges [][2]int, labels []string) *Graph {
	seen := make([]map[int]bool, n)
	for i := range seen {
		seen[i] = make(map[int]bool)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v {
			continue // loops violate the zero-diagonal invariant
		}
		seen[u][v] = true
		seen[v][u] = true
	}

	adj := make([][]int, n)
	for u := range adj {
		adj[u] = make([]int, 0, len(seen[u]))
		for v := range seen[u] {
			adj[u] = append(adj[u], v)
		}
		sort.Ints(adj[u]) // deterministic neighbor order
	}

	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", i)
		}
	}

	return &Graph{labels: labels, adj: adj}
}

// NodeCount returns the number of vertices N.
func (g *Graph) NodeCount() int { return len(g.adj) }

// Nodes returns the vertex indices 0..N-1 in ascending order.
func (g *Graph) Nodes() []int {
	nodes := make([]int, len(g.adj))
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// Labels returns a copy of the per-vertex labels.
// Builders that carry coordinates (Hypercube, Grid) encode them here.
func (g *Graph) Labels() []string {
	labels := make([]string, len(g.labels))
	copy(labels, g.labels)
	return labels
}

// Neighbors returns the sorted neighbor indices of v.
// Returns ErrVertexRange when v is outside [0, N).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("Neighbors(%d): n=%d: %w", v, len(g.adj), ErrVertexRange)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}

// Degree returns the number of neighbors of v, or ErrVertexRange.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= len(g.adj) {
		return 0, fmt.Errorf("Degree(%d): n=%d: %w", v, len(g.adj), ErrVertexRange)
	}
	return len(g.adj[v]), nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Out-of-range endpoints report false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return false
	}
	i := sort.SearchInts(g.adj[u], v)
	return i < len(g.adj[u]) && g.adj[u][i] == v
}

// AdjacencyMatrix exports a freshly allocated N×N symmetric matrix
// with a[i][j]=1 iff {i,j} is an edge. The diagonal is zero and the
// caller owns the result outright.
func (g *Graph) AdjacencyMatrix() *mat.SymDense {
	n := len(g.adj)
	a := mat.NewSymDense(n, nil)
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			if u < v { // each unordered pair written once; SetSym mirrors
				a.SetSym(u, v, 1)
			}
		}
	}
	return a
}
