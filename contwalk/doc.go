// Package contwalk evolves continuous-time quantum walks: it applies
// the unitary U(t) = exp(-i·H·t) to a state vector and reports the
// resulting Born-rule probabilities.
//
// What
//
//   - Evolve(H, ψ₀, t): single-time evolution. H is any real symmetric
//     generator (see package hamiltonian); ψ₀ a unit-norm complex
//     vector. Returns amplitudes ψ_t and probabilities |ψ_t|².
//   - Sweep(H, ψ₀, times): evaluates Evolve independently at every
//     requested time and stacks the probability rows; row i always
//     corresponds to times[i].
//   - BasisState / UniformState: the two initial states the walks use —
//     a discrete delta at one vertex, or 1/√N·(1,…,1).
//   - WalkFromNode(g, start, t, γ): convenience wrapper building
//     H = -γ·A and evolving from a localized start vertex.
//
// How
//
//	H is real symmetric, so exp(-iHt) is computed exactly through the
//	spectral factorization H = QΛQᵀ:
//
//	    ψ_t = Q · diag(e^{-iλ_j t}) · Qᵀ · ψ₀
//
//	Each call performs its own factorization: Evolve is stateless, and
//	Sweep fans samples out across goroutines (bounded by
//	WithParallelism) with no shared propagator.
//
// Unitarity
//
//	Evolution must preserve ‖ψ‖² = 1. The evolver validates the input
//	norm to 1e-6 and treats output drift beyond 1e-4 as a correctness
//	failure of the input matrix, surfaced as ErrNormDrift rather than
//	silently accepted.
//
// Errors
//
//   - ErrDimensionMismatch — len(ψ₀) differs from H's order.
//   - ErrNotNormalized     — ψ₀ is not unit norm (1e-6 relative).
//   - ErrNotSymmetric      — the spectral factorization failed.
//   - ErrNormDrift         — ‖ψ_t‖² drifted beyond 1e-4 from unity.
//   - ErrVertexRange / ErrTooFewVertices — invalid initial-state input.
package contwalk
