// Package graph provides the immutable, index-addressed undirected
// graphs consumed by the quantum-walk engines, together with
// deterministic builders for the standard experiment topologies.
//
// What
//
//   - Graph: a simple undirected graph on vertices 0..N-1. No loops,
//     no multi-edges, no weights. Optional string labels carry
//     coordinate information for Hypercube and Grid topologies.
//   - Builders: Complete(n), Cycle(n), Star(n), Hypercube(dim),
//     Grid(rows, cols). Each validates its parameters first and
//     returns only sentinel errors.
//   - AdjacencyMatrix(): exports a fresh symmetric 0/1 matrix with a
//     zero diagonal — the raw material for Hamiltonian construction.
//
// Determinism
//
//	Vertices are emitted in ascending index order and neighbor lists
//	are kept sorted, so every traversal, matrix export and downstream
//	simulation is fully reproducible.
//
// Invariants
//
//   - AdjacencyMatrix is symmetric with entries in {0,1} and zero
//     diagonal.
//   - Neighbors(v) is sorted ascending and never aliases internal
//     storage.
//   - A Graph is never mutated after its builder returns.
//
// Errors
//
//   - ErrTooFewVertices — a size parameter is below the topology's minimum.
//   - ErrVertexRange    — a vertex index is outside [0, N).
package graph
