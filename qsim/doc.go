// Package qsim is a small statevector circuit simulator: dense complex
// amplitudes, gate-by-gate evolution, and deterministic seeded shot
// sampling. It is the execution backend for the discrete coined walk.
//
// What
//
//   - State: 2^n complex amplitudes over n qubits, initialized to
//     |0…0⟩. Qubit q maps to bit q of the basis index (little-endian).
//   - Circuit: an append-only gate program — H, X, CX, MCX and dense
//     unitaries on a qubit subset — plus the subset of qubits to
//     measure. Builder calls validate immediately and record the first
//     violation; Run/Sample surface it before any simulation work.
//   - Run(): fresh state, gates applied in program order.
//   - Probabilities(): the exact Born-rule marginal over the measured
//     qubits (no sampling noise; used heavily by tests).
//   - Sample(seed, shots): multinomial sampling of that marginal into
//     a bitstring→count map. Identical circuit + seed + shots always
//     reproduce identical counts.
//
// Bitstring convention
//
//	Keys render the measured qubits MSB-first: measured qubit j
//	contributes bit j of the integer value, so the integer is
//	recovered with strconv.ParseUint(key, 2, 64).
//
// Every gate is unitary, so State.Norm stays 1 up to floating error;
// tests pin this invariant.
//
// Grounding: the kernels follow the usual dense-simulator layout —
// pairwise amplitude updates selected by bit masks — sized for the
// few-qubit walk registers this module needs (hard cap 24 qubits).
package qsim
