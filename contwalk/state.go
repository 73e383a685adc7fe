// SPDX-License-Identifier: MIT

package contwalk

import (
	"fmt"
	"math"
)

// State is the outcome of a single-time evolution: the complex
// amplitudes ψ_t and their Born-rule probabilities |ψ_t|².
// Both slices are freshly allocated per call and never mutated after
// return.
type State struct {
	Amplitudes    []complex128
	Probabilities []float64
}

// SweepResult stacks single-time evolutions over a time sequence.
// ProbMatrix[i] holds the probability distribution at Times[i].
type SweepResult struct {
	Times      []float64
	ProbMatrix [][]float64
}

// BasisState returns the localized state |k⟩ in dimension n: a
// discrete delta with amplitude 1 at index k.
func BasisState(n, k int) ([]complex128, error) {
	if n < 1 {
		return nil, fmt.Errorf("BasisState: n=%d: %w", n, ErrTooFewVertices)
	}
	if k < 0 || k >= n {
		return nil, fmt.Errorf("BasisState: k=%d, n=%d: %w", k, n, ErrVertexRange)
	}
	psi := make([]complex128, n)
	psi[k] = 1
	return psi, nil
}

// UniformState returns the uniform superposition 1/√n·(1,…,1) — the
// canonical search start state.
func UniformState(n int) ([]complex128, error) {
	if n < 1 {
		return nil, fmt.Errorf("UniformState: n=%d: %w", n, ErrTooFewVertices)
	}
	amp := complex(1/math.Sqrt(float64(n)), 0)
	psi := make([]complex128, n)
	for i := range psi {
		psi[i] = amp
	}
	return psi, nil
}

// squaredNorm returns Σ|ψ_i|².
func squaredNorm(psi []complex128) float64 {
	var sum float64
	for _, a := range psi {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}
