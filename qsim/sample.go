// SPDX-License-Identifier: MIT

package qsim

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
)

// Probabilities runs the circuit and returns the exact Born-rule
// marginal over the measured qubits: entry v is the probability of
// reading outcome v, with measured qubit j as bit j of v.
func (c *Circuit) Probabilities() ([]float64, error) {
	if c.err != nil {
		return nil, c.err
	}
	if len(c.measured) == 0 {
		return nil, fmt.Errorf("Probabilities: %w", ErrNoMeasurement)
	}
	s, err := c.Run()
	if err != nil {
		return nil, err
	}
	return s.probabilities(c.measured), nil
}

// Sample runs the circuit once, then draws shots independent
// measurements of the measured qubits from the exact marginal.
// Returns bitstring→count; keys render the outcome MSB-first so
// strconv.ParseUint(key, 2, 64) recovers the integer value.
//
// Determinism contract: identical circuit + seed + shots reproduce
// identical counts. Finite-shot noise is O(1/√shots) and is a
// documented property, not an error.
func (c *Circuit) Sample(seed int64, shots int) (map[string]int, error) {
	if shots < 1 {
		return nil, fmt.Errorf("Sample: shots=%d: %w", shots, ErrNonPositiveShots)
	}
	probs, err := c.Probabilities()
	if err != nil {
		return nil, err
	}

	// Cumulative distribution for inverse-transform sampling.
	cum := make([]float64, len(probs))
	var acc float64
	for i, p := range probs {
		acc += p
		cum[i] = acc
	}

	rng := rand.New(rand.NewSource(seed))
	width := len(c.measured)
	counts := make(map[string]int)
	for s := 0; s < shots; s++ {
		// Outcome v is the first bucket with cum[v] > r; r < acc keeps
		// the search inside the table even when acc rounds below 1.
		r := rng.Float64() * acc
		v := sort.Search(len(cum), func(i int) bool { return cum[i] > r })
		if v == len(cum) {
			v = len(cum) - 1
		}
		counts[formatBitstring(v, width)]++
	}
	return counts, nil
}

// formatBitstring renders v as a width-wide binary string, MSB first.
func formatBitstring(v, width int) string {
	s := strconv.FormatInt(int64(v), 2)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
