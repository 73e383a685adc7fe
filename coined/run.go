// SPDX-License-Identifier: MIT

package coined

import (
	"strconv"
)

// Run builds the circuit for cfg, executes it with cfg.Shots seeded
// measurements, and aggregates the counts into an empirical position
// distribution: Probabilities[v] = count(v)/shots, indexed by the
// integer value of the measured bitstring.
//
// The result converges to the Born-rule distribution as shots → ∞;
// finite-shot deviations are O(1/√shots).
func Run(cfg Config) (*Result, error) {
	circuit, err := BuildCircuit(cfg)
	if err != nil {
		return nil, err
	}
	counts, err := circuit.Sample(cfg.Seed, cfg.Shots)
	if err != nil {
		return nil, err
	}

	n := 1 << cfg.PositionQubits
	res := &Result{
		Positions:     make([]int, n),
		Probabilities: make([]float64, n),
		Shots:         cfg.Shots,
	}
	for i := range res.Positions {
		res.Positions[i] = i
	}
	for bits, count := range counts {
		v, perr := strconv.ParseUint(bits, 2, 64)
		if perr != nil {
			// Keys come from qsim's fixed-width formatter; a parse
			// failure here is a simulator bug, not caller input.
			return nil, perr
		}
		res.Probabilities[v] = float64(count) / float64(cfg.Shots)
	}
	return res, nil
}
