// SPDX-License-Identifier: MIT

package qsim

import (
	"math"
)

// State holds the dense amplitudes of an n-qubit register. Basis index
// bit q is the value of qubit q (little-endian). The zero state of the
// constructor is |0…0⟩.
//
// Gate kernels assume validated arguments; Circuit performs all
// validation before any kernel runs.
type State struct {
	nQubits int
	amps    []complex128
}

// newState allocates |0…0⟩ over nQubits qubits.
func newState(nQubits int) *State {
	amps := make([]complex128, 1<<nQubits)
	amps[0] = 1
	return &State{nQubits: nQubits, amps: amps}
}

// NumQubits returns the register width.
func (s *State) NumQubits() int { return s.nQubits }

// Amplitudes returns a copy of the dense amplitude vector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// Norm returns Σ|amp|². Every gate is unitary, so this stays 1 up to
// floating error; tests treat drift as a kernel bug.
func (s *State) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}

// applyH applies the Hadamard gate to qubit q.
func (s *State) applyH(q int) {
	inv := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = inv * (a0 + a1)
			s.amps[j] = inv * (a0 - a1)
		}
	}
}

// applyX applies the Pauli-X (bit flip) gate to qubit q.
func (s *State) applyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// applyMCX flips the target qubit on basis states where every control
// bit is set. controlMask must not include the target bit.
func (s *State) applyMCX(controlMask, target int) {
	tbit := 1 << target
	for i := range s.amps {
		if i&controlMask == controlMask && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// applyUnitary applies a dense 2^k × 2^k operator to the k target
// qubits. u is indexed row-major over the targets' little-endian
// subspace: u[out][in].
func (s *State) applyUnitary(targets []int, u [][]complex128) {
	k := len(targets)
	dim := 1 << k

	// spread[p] scatters subspace pattern p onto the full-index bits.
	spread := make([]int, dim)
	for p := 0; p < dim; p++ {
		var idx int
		for b := 0; b < k; b++ {
			if p&(1<<b) != 0 {
				idx |= 1 << targets[b]
			}
		}
		spread[p] = idx
	}
	targetMask := spread[dim-1]

	sub := make([]complex128, dim)
	for base := range s.amps {
		if base&targetMask != 0 {
			continue // visit each coset once, at its all-zero representative
		}
		for p := 0; p < dim; p++ {
			sub[p] = s.amps[base|spread[p]]
		}
		for out := 0; out < dim; out++ {
			var acc complex128
			for in := 0; in < dim; in++ {
				acc += u[out][in] * sub[in]
			}
			s.amps[base|spread[out]] = acc
		}
	}
}

// probabilities computes the exact marginal over the given qubits.
// Entry v collects every basis state whose measured bits spell v
// (qubit qubits[j] → bit j of v).
func (s *State) probabilities(qubits []int) []float64 {
	m := len(qubits)
	probs := make([]float64, 1<<m)
	for i, a := range s.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p == 0 {
			continue
		}
		var v int
		for j, q := range qubits {
			if i&(1<<q) != 0 {
				v |= 1 << j
			}
		}
		probs[v] += p
	}
	return probs
}
