// SPDX-License-Identifier: MIT

package contwalk

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/qwalklab/qwalk/graph"
	"github.com/qwalklab/qwalk/hamiltonian"
)

// Evolve applies U(t) = exp(-i·H·t) to ψ₀ and returns the evolved
// amplitudes together with their probabilities.
//
// H must be real symmetric; the exponential is evaluated exactly via
// the spectral factorization H = QΛQᵀ, so unitarity holds up to
// floating-point error for any real t (including t=0 and negative t).
// Each call factorizes afresh — Evolve keeps no state between calls.
func Evolve(h *mat.SymDense, psi0 []complex128, t float64) (*State, error) {
	n := h.SymmetricDim()
	if len(psi0) != n {
		return nil, fmt.Errorf("Evolve: len(psi0)=%d, dim(H)=%d: %w", len(psi0), n, ErrDimensionMismatch)
	}
	if math.Abs(squaredNorm(psi0)-1) > InputNormTolerance {
		return nil, fmt.Errorf("Evolve: ‖psi0‖²=%v: %w", squaredNorm(psi0), ErrNotNormalized)
	}

	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return nil, fmt.Errorf("Evolve: %w", ErrNotSymmetric)
	}
	eigvals := es.Values(nil)
	var q mat.Dense
	es.VectorsTo(&q)

	// Project onto the eigenbasis: c_j = Σ_k Q[k][j]·ψ₀[k].
	coeff := make([]complex128, n)
	for j := 0; j < n; j++ {
		var c complex128
		for k := 0; k < n; k++ {
			c += complex(q.At(k, j), 0) * psi0[k]
		}
		coeff[j] = c
	}

	// Phase-rotate each eigenmode and map back: ψ_t = Q·(e^{-iλt}·c).
	for j := 0; j < n; j++ {
		coeff[j] *= cmplx.Exp(complex(0, -eigvals[j]*t))
	}
	psi := make([]complex128, n)
	for i := 0; i < n; i++ {
		var s complex128
		for j := 0; j < n; j++ {
			s += complex(q.At(i, j), 0) * coeff[j]
		}
		psi[i] = s
	}

	norm := squaredNorm(psi)
	if math.Abs(norm-1) > NormDriftTolerance {
		return nil, fmt.Errorf("Evolve: ‖psi_t‖²=%v at t=%v: %w", norm, t, ErrNormDrift)
	}

	probs := make([]float64, n)
	for i, a := range psi {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return &State{Amplitudes: psi, Probabilities: probs}, nil
}

// WalkFromNode evolves a plain continuous-time walk on g for time t
// with coupling γ, starting localized at the given vertex.
func WalkFromNode(g *graph.Graph, start int, t, gamma float64) (*State, error) {
	psi0, err := BasisState(g.NodeCount(), start)
	if err != nil {
		return nil, err
	}
	return Evolve(hamiltonian.Adjacency(g, gamma), psi0, t)
}
