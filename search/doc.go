// Package search locates a marked vertex with a continuous-time
// quantum walk: it evolves the uniform superposition under the
// oracle-augmented Hamiltonian and sweeps time for the moment the
// marked vertex carries the most probability.
//
// Mechanism
//
//	hamiltonian.Search(g, γ, w) lowers the marked vertex's eigen-energy
//	by one, opening a spectral gap whose low eigenvector overlaps the
//	marked basis state. Starting from 1/√N·(1,…,1), the walk rotates
//	probability into the marked vertex; on well-connected graphs the
//	peak arrives near t = (π/2)·√N, which is exactly the default time
//	horizon.
//
// Defaults (applied at the call boundary, overridable per run)
//
//	γ = 1/N, T = (π/2)·√N, 200 time samples.
//
// Run reports the sampled time of maximum success probability together
// with the full curve it was derived from; the success probability at
// each time is a slice of the evolver's output, not a separate
// computation. Benchmark repeats the search across graph sizes —
// independent runs with no shared state, fanned out on an errgroup —
// producing the scaling curve compared against the classical
// hitting-time baseline.
package search
