// SPDX-License-Identifier: MIT

package hamiltonian

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/qwalklab/qwalk/graph"
)

// DefaultGamma is the coupling constant for plain (non-search)
// evolution. Search callers use 1/N instead; see search.Defaults.
const DefaultGamma = 1.0

// ErrMarkedVertexRange indicates the marked vertex index lies outside [0, N).
var ErrMarkedVertexRange = errors.New("hamiltonian: marked vertex out of range")

// Adjacency builds the walk generator H = -γ·A, where A is the 0/1
// adjacency matrix of g. The result is freshly allocated; g is only read.
func Adjacency(g *graph.Graph, gamma float64) *mat.SymDense {
	n := g.NodeCount()
	a := g.AdjacencyMatrix()
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			h.SetSym(i, j, -gamma*a.At(i, j))
		}
	}
	return h
}

// Search builds the oracle-augmented search generator
//
//	H = -γ·A - |w⟩⟨w|
//
// which differs from Adjacency(g, γ) only at the single diagonal entry
// (w, w). Returns ErrMarkedVertexRange when w is outside [0, N).
//
// Note the oracle sign: the marked projector enters negatively so the
// marked vertex sits at the bottom of the spectrum. With the opposite
// sign the uniform state barely couples to the marked one and success
// probability is capped near 1/N.
func Search(g *graph.Graph, gamma float64, marked int) (*mat.SymDense, error) {
	n := g.NodeCount()
	if marked < 0 || marked >= n {
		return nil, fmt.Errorf("Search: marked=%d, n=%d: %w", marked, n, ErrMarkedVertexRange)
	}

	h := Adjacency(g, gamma)
	h.SetSym(marked, marked, h.At(marked, marked)-1)
	return h, nil
}
