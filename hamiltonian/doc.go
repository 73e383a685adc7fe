// Package hamiltonian derives the real symmetric matrices that
// generate continuous-time quantum walks.
//
// What
//
//   - Adjacency(g, γ) builds H = -γ·A from a graph's adjacency matrix.
//     γ is the hopping/coupling constant: γ=1 for plain evolution,
//     γ=1/N for spectral search.
//   - Search(g, γ, w) additionally subtracts the rank-1 oracle
//     projector at the marked vertex w: H = -γ·A - |w⟩⟨w|. The oracle
//     makes the marked vertex the energy minimum, opening a spectral
//     gap whose low eigenvector concentrates probability at w — the
//     mechanism the search engine exploits.
//
// Both constructors are pure: fresh matrix per call, no caching, the
// input graph is only read.
//
// Errors
//
//   - ErrMarkedVertexRange — the marked index is outside [0, N).
package hamiltonian
