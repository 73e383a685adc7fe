// SPDX-License-Identifier: MIT

package contwalk

import "errors"

// Tolerances for the unitarity contract. The input bound is the test
// tolerance of the evolution property; the drift bound is the point at
// which output norm loss stops being numerical noise and starts being
// an ill-conditioned or non-symmetric input.
const (
	// InputNormTolerance bounds how far ‖ψ₀‖² may sit from 1.
	InputNormTolerance = 1e-6

	// NormDriftTolerance bounds acceptable ‖ψ_t‖² drift from 1.
	NormDriftTolerance = 1e-4
)

// Sentinel errors for continuous-time evolution.
var (
	// ErrDimensionMismatch indicates len(ψ₀) != order of H.
	ErrDimensionMismatch = errors.New("contwalk: state/matrix dimension mismatch")

	// ErrNotNormalized indicates the initial state is not unit norm.
	ErrNotNormalized = errors.New("contwalk: initial state not normalized")

	// ErrNotSymmetric indicates the symmetric eigendecomposition failed.
	ErrNotSymmetric = errors.New("contwalk: eigendecomposition failed")

	// ErrNormDrift indicates evolution lost unitarity beyond tolerance —
	// a correctness failure of the input matrix, not of the algorithm.
	ErrNormDrift = errors.New("contwalk: evolution norm drift beyond tolerance")

	// ErrVertexRange indicates a basis-state index outside [0, N).
	ErrVertexRange = errors.New("contwalk: basis index out of range")

	// ErrTooFewVertices indicates a non-positive state dimension.
	ErrTooFewVertices = errors.New("contwalk: dimension must be positive")
)
