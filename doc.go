// Package qwalk simulates quantum walks on graphs — discrete-time
// (coin + shift circuits executed on a statevector simulator) and
// continuous-time (Hamiltonian evolution) — and uses the
// continuous-time model for spectral search of a marked vertex, with a
// classical random-walk baseline for comparison.
//
// Everything is organized under small, focused subpackages:
//
//	graph/       — immutable undirected graphs + deterministic builders
//	               (Complete, Cycle, Star, Hypercube, Grid)
//	hamiltonian/ — adjacency and oracle-augmented search Hamiltonians
//	contwalk/    — continuous-time evolution exp(-iHt) and time sweeps
//	qsim/        — statevector circuit simulator with seeded sampling
//	coined/      — discrete-time coined-walk circuits and execution
//	search/      — spectral search for a marked vertex + size benchmark
//	classical/   — Monte Carlo random-walk hitting-time estimator
//	plotting/    — PNG sinks for walk, search and benchmark results
//	cmd/qwalk    — CLI that strings the experiments together
//
// Design ground rules, shared by every subpackage:
//
//   - Determinism: every stochastic component takes an explicit seed;
//     identical inputs + seed reproduce identical outputs.
//   - Sentinel errors: callers branch with errors.Is; invalid
//     configuration is rejected before any simulation work begins.
//   - Immutability: engines read their inputs and return freshly
//     allocated results; no shared mutable state crosses packages.
//
// Dive into the package docs for the math behind each engine.
package qwalk
