// SPDX-License-Identifier: MIT

package coined

import (
	"math"

	"github.com/qwalklab/qwalk/qsim"
)

// GroverCoin returns the Grover diffusion operator (2/d)·J − I over a
// k-qubit coin register (d = 2^k). It reflects the coin state about
// the uniform superposition.
func GroverCoin(k int) [][]complex128 {
	dim := 1 << k
	u := make([][]complex128, dim)
	for i := range u {
		u[i] = make([]complex128, dim)
		for j := range u[i] {
			u[i][j] = complex(2.0/float64(dim), 0)
			if i == j {
				u[i][j] -= 1
			}
		}
	}
	return u
}

// HadamardCoin returns the single-qubit coin 1/√2·[[1,1],[1,-1]].
// BuildCircuit applies it through the native H gate; the matrix is
// exported for inspection and tests.
func HadamardCoin() [][]complex128 {
	h := complex(1/math.Sqrt2, 0)
	return [][]complex128{{h, h}, {h, -h}}
}

// BuildCircuit assembles the walk program for cfg:
// coin init (H on every coin qubit), Steps × (coin, conditional
// increment), then measurement of the position register only.
// Configuration violations surface here, before any simulation.
func BuildCircuit(cfg Config) (*qsim.Circuit, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	k := cfg.coinQubits()
	p := cfg.PositionQubits
	c := qsim.NewCircuit(k + p)

	// Coin register in equal superposition before the first step.
	for q := 0; q < k; q++ {
		c.H(q)
	}

	coinTargets := make([]int, k)
	for i := range coinTargets {
		coinTargets[i] = i
	}
	var grover [][]complex128
	if cfg.Coin == CoinGroverDiffusion {
		grover = GroverCoin(k)
	}

	for step := 0; step < cfg.Steps; step++ {
		// Coin phase.
		if cfg.Coin == CoinHadamard {
			c.H(0)
		} else {
			c.Unitary(coinTargets, grover)
		}
		// Shift phase.
		appendConditionalIncrement(c, k, p)
	}

	// Position register only; the coin register is discarded.
	position := make([]int, p)
	for i := range position {
		position[i] = k + i
	}
	c.Measure(position...)

	if err := c.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// appendConditionalIncrement adds the shift: +1 mod 2^p on the
// position register (qubits k..k+p-1, bit 0 at qubit k), applied on
// basis states where coin qubit 0 reads |1⟩. Built MSB-first — bit j
// flips when the coin and all lower position bits are set — so every
// control reads pre-flip bits and the permutation is exactly a cyclic
// increment with wrap-around at 2^p-1.
func appendConditionalIncrement(c *qsim.Circuit, k, p int) {
	for j := p - 1; j >= 1; j-- {
		controls := make([]int, 0, j+1)
		controls = append(controls, 0)
		for b := 0; b < j; b++ {
			controls = append(controls, k+b)
		}
		c.MCX(controls, k+j)
	}
	c.CX(0, k)
}
