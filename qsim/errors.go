// SPDX-License-Identifier: MIT

package qsim

import "errors"

// Qubit-count bounds for a dense simulator: 2^24 amplitudes is the
// largest state this package is willing to allocate.
const (
	MinQubits = 1
	MaxQubits = 24
)

// Sentinel errors for circuit construction and execution.
var (
	// ErrQubitCount indicates a circuit size outside [MinQubits, MaxQubits].
	ErrQubitCount = errors.New("qsim: qubit count out of range")

	// ErrQubitRange indicates a gate or measurement references a qubit
	// outside [0, n).
	ErrQubitRange = errors.New("qsim: qubit index out of range")

	// ErrDuplicateQubit indicates a gate lists the same qubit twice
	// (e.g. control == target).
	ErrDuplicateQubit = errors.New("qsim: duplicate qubit in gate")

	// ErrUnitaryShape indicates a dense operator does not match
	// 2^k × 2^k for its k target qubits.
	ErrUnitaryShape = errors.New("qsim: unitary dimension mismatch")

	// ErrNoMeasurement indicates Sample/Probabilities was called on a
	// circuit with no measured qubits.
	ErrNoMeasurement = errors.New("qsim: no qubits measured")

	// ErrNonPositiveShots indicates Sample was asked for < 1 shots.
	ErrNonPositiveShots = errors.New("qsim: shots must be positive")
)
