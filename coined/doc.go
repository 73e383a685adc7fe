// Package coined builds and executes discrete-time coined quantum
// walks as circuits on the qsim statevector backend.
//
// Model
//
//	Two registers share one circuit: a coin register (qubits 0..k-1)
//	and a position register (k qubits onward) encoding up to 2^P
//	positions. The coin register is prepared in an equal superposition,
//	then each step applies
//
//	  1. the coin operator — Hadamard (k=1) or Grover diffusion
//	     (2/d)·J − I over a coin register sized to the position
//	     register (k=P), and
//	  2. the shift — a cyclic increment of the position register
//	     (+1 mod 2^P, wrap-around) applied when coin qubit 0 reads |1⟩.
//
//	After all steps only the position register is measured; the coin
//	register is discarded.
//
// Shift semantics
//
//	The shift is deliberately the simplified one-directional
//	conditional increment, not the textbook ±1 bidirectional shift:
//	coin |1⟩ moves the walker forward on the 2^P-cycle, coin |0⟩
//	holds. Boundary handling is wrap-around. The increment is built
//	MSB-first (bit j flips when the coin and all lower position bits
//	are set), so each control reads pre-flip bits and the permutation
//	is exactly +1 mod 2^P — pinned by tests on every basis state.
//
// Configuration
//
//	Config carries {PositionQubits, Steps, Coin, Shots, Seed} with
//	named defaults (shots 8192, seed 42) applied by DefaultConfig at
//	the call boundary. The coin is a closed enum; unknown values,
//	negative steps and non-positive shots are rejected at build time,
//	never deferred to execution.
//
// Results are empirical: count/shots per position, with O(1/√shots)
// sampling noise — a documented property, not an error. The
// distribution is deterministic for a fixed Config.
package coined
