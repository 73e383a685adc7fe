// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph construction and lookup.
// Callers branch with errors.Is; messages are stable.
var (
	// ErrTooFewVertices indicates a size parameter (n, dim, rows, cols)
	// below the minimum for the requested topology.
	ErrTooFewVertices = errors.New("graph: parameter too small")

	// ErrVertexRange indicates a vertex index outside [0, N).
	ErrVertexRange = errors.New("graph: vertex index out of range")
)
