// SPDX-License-Identifier: MIT

package qsim

import (
	"fmt"
)

// gate kinds form a closed set; there is no string dispatch anywhere.
type gateKind int

const (
	gateH gateKind = iota
	gateX
	gateMCX // covers CX as the single-control case
	gateUnitary
)

type gate struct {
	kind        gateKind
	target      int   // gateH, gateX, gateMCX
	controlMask int   // gateMCX
	targets     []int // gateUnitary
	matrix      [][]complex128
}

// Circuit is an append-only gate program over a fixed-width register.
// Builder methods validate immediately and record the first violation;
// Run, Probabilities and Sample refuse to simulate a poisoned circuit.
// Builder methods chain:
//
//	c := qsim.NewCircuit(3).H(0).CX(0, 1).Measure(1, 2)
type Circuit struct {
	nQubits  int
	gates    []gate
	measured []int
	err      error
}

// NewCircuit creates an empty circuit over nQubits qubits.
// Width violations are recorded and surfaced on first use.
func NewCircuit(nQubits int) *Circuit {
	c := &Circuit{nQubits: nQubits}
	if nQubits < MinQubits || nQubits > MaxQubits {
		c.err = fmt.Errorf("NewCircuit: nQubits=%d, want [%d,%d]: %w",
			nQubits, MinQubits, MaxQubits, ErrQubitCount)
	}
	return c
}

// NumQubits returns the register width.
func (c *Circuit) NumQubits() int { return c.nQubits }

// GateCount returns the number of gates appended so far.
func (c *Circuit) GateCount() int { return len(c.gates) }

// Err returns the first builder violation, or nil.
func (c *Circuit) Err() error { return c.err }

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) *Circuit {
	if c.err == nil {
		if err := c.checkQubits("H", q); err != nil {
			c.err = err
			return c
		}
		c.gates = append(c.gates, gate{kind: gateH, target: q})
	}
	return c
}

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) *Circuit {
	if c.err == nil {
		if err := c.checkQubits("X", q); err != nil {
			c.err = err
			return c
		}
		c.gates = append(c.gates, gate{kind: gateX, target: q})
	}
	return c
}

// CX appends a controlled-X with one control.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.MCX([]int{control}, target)
}

// MCX appends a multi-controlled X: target flips on basis states where
// every control is |1⟩.
func (c *Circuit) MCX(controls []int, target int) *Circuit {
	if c.err != nil {
		return c
	}
	all := append(append([]int{}, controls...), target)
	if err := c.checkQubits("MCX", all...); err != nil {
		c.err = err
		return c
	}
	var mask int
	for _, q := range controls {
		mask |= 1 << q
	}
	c.gates = append(c.gates, gate{kind: gateMCX, target: target, controlMask: mask})
	return c
}

// Unitary appends a dense 2^k × 2^k operator over k target qubits.
// The matrix is indexed u[out][in] over the targets' little-endian
// subspace; unitarity of u is the caller's contract.
func (c *Circuit) Unitary(targets []int, u [][]complex128) *Circuit {
	if c.err != nil {
		return c
	}
	if err := c.checkQubits("Unitary", targets...); err != nil {
		c.err = err
		return c
	}
	dim := 1 << len(targets)
	if len(u) != dim {
		c.err = fmt.Errorf("Unitary: %d rows for %d targets: %w", len(u), len(targets), ErrUnitaryShape)
		return c
	}
	for _, row := range u {
		if len(row) != dim {
			c.err = fmt.Errorf("Unitary: row width %d, want %d: %w", len(row), dim, ErrUnitaryShape)
			return c
		}
	}
	ts := append([]int{}, targets...)
	c.gates = append(c.gates, gate{kind: gateUnitary, targets: ts, matrix: u})
	return c
}

// Measure declares the qubits whose marginal Run's consumers read.
// Order matters: qubits[j] contributes bit j of the outcome value.
// Repeated calls replace the previous selection.
func (c *Circuit) Measure(qubits ...int) *Circuit {
	if c.err != nil {
		return c
	}
	if len(qubits) == 0 {
		c.err = fmt.Errorf("Measure: %w", ErrNoMeasurement)
		return c
	}
	if err := c.checkQubits("Measure", qubits...); err != nil {
		c.err = err
		return c
	}
	c.measured = append([]int{}, qubits...)
	return c
}

// Run simulates the program on a fresh |0…0⟩ state and returns the
// final statevector. The circuit itself is not consumed and may run
// repeatedly.
func (c *Circuit) Run() (*State, error) {
	if c.err != nil {
		return nil, c.err
	}
	s := newState(c.nQubits)
	for _, g := range c.gates {
		switch g.kind {
		case gateH:
			s.applyH(g.target)
		case gateX:
			s.applyX(g.target)
		case gateMCX:
			s.applyMCX(g.controlMask, g.target)
		case gateUnitary:
			s.applyUnitary(g.targets, g.matrix)
		}
	}
	return s, nil
}

// checkQubits validates indices and pairwise distinctness within one gate.
func (c *Circuit) checkQubits(op string, qubits ...int) error {
	var seen int
	for _, q := range qubits {
		if q < 0 || q >= c.nQubits {
			return fmt.Errorf("%s: qubit %d, width %d: %w", op, q, c.nQubits, ErrQubitRange)
		}
		if seen&(1<<q) != 0 {
			return fmt.Errorf("%s: qubit %d repeated: %w", op, q, ErrDuplicateQubit)
		}
		seen |= 1 << q
	}
	return nil
}
