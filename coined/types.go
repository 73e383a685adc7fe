// SPDX-License-Identifier: MIT

package coined

import (
	"errors"
	"fmt"

	"github.com/qwalklab/qwalk/qsim"
)

// Coin selects the per-step coin operator. The set is closed: anything
// outside the two named variants is a configuration error at build
// time (no stringly-typed dispatch).
type Coin int

const (
	// CoinGroverDiffusion applies (2/d)·J − I over a coin register
	// sized to the position register (k = PositionQubits).
	CoinGroverDiffusion Coin = iota

	// CoinHadamard applies the 1/√2·[[1,1],[1,-1]] coin to a single
	// coin qubit — the classic 1D-walk coin.
	CoinHadamard
)

// String renders the coin name used at CLI boundaries.
func (c Coin) String() string {
	switch c {
	case CoinGroverDiffusion:
		return "grover"
	case CoinHadamard:
		return "hadamard"
	default:
		return fmt.Sprintf("coin(%d)", int(c))
	}
}

// ParseCoin maps a CLI name onto the enum; unknown names fail with
// ErrUnknownCoin immediately.
func ParseCoin(name string) (Coin, error) {
	switch name {
	case "grover":
		return CoinGroverDiffusion, nil
	case "hadamard":
		return CoinHadamard, nil
	default:
		return 0, fmt.Errorf("ParseCoin: %q: %w", name, ErrUnknownCoin)
	}
}

// Named defaults, applied by DefaultConfig at the call boundary rather
// than hidden inside the engine.
const (
	DefaultShots = 8192
	DefaultSeed  = int64(42)
	DefaultCoin  = CoinGroverDiffusion
)

// Config fully determines one walk execution. Identical Configs
// reproduce identical Results.
type Config struct {
	// PositionQubits is the position-register width P; the walker
	// moves on 2^P positions. Must be ≥ 1.
	PositionQubits int

	// Steps is the number of coin+shift rounds. Zero is legal (only
	// the coin initialization runs); negative is rejected.
	Steps int

	// Coin selects the coin operator variant.
	Coin Coin

	// Shots is the number of measurement repetitions. Must be ≥ 1.
	Shots int

	// Seed drives the simulator's sampling RNG.
	Seed int64
}

// DefaultConfig returns a Config for the given registers with the
// documented defaults filled in.
func DefaultConfig(positionQubits, steps int) Config {
	return Config{
		PositionQubits: positionQubits,
		Steps:          steps,
		Coin:           DefaultCoin,
		Shots:          DefaultShots,
		Seed:           DefaultSeed,
	}
}

// Result is the empirical position distribution of one execution.
// Positions[i] and Probabilities[i] pair up; probabilities are
// count/shots and sum to 1 exactly (every shot lands somewhere).
type Result struct {
	Positions     []int
	Probabilities []float64
	Shots         int
}

// Sentinel errors for walk configuration.
var (
	// ErrTooFewQubits indicates PositionQubits < 1.
	ErrTooFewQubits = errors.New("coined: position register needs at least one qubit")

	// ErrTooManyQubits indicates coin+position exceed the simulator cap.
	ErrTooManyQubits = errors.New("coined: register too wide for dense simulation")

	// ErrNegativeSteps indicates Steps < 0.
	ErrNegativeSteps = errors.New("coined: step count must be non-negative")

	// ErrNonPositiveShots indicates Shots < 1.
	ErrNonPositiveShots = errors.New("coined: shot count must be positive")

	// ErrUnknownCoin indicates a Coin value outside the closed set.
	ErrUnknownCoin = errors.New("coined: unknown coin type")
)

// coinQubits returns the coin-register width for the configured coin.
func (cfg Config) coinQubits() int {
	if cfg.Coin == CoinHadamard {
		return 1
	}
	return cfg.PositionQubits
}

// validate enforces the caller contract before any circuit is built.
func (cfg Config) validate() error {
	switch cfg.Coin {
	case CoinGroverDiffusion, CoinHadamard:
	default:
		return fmt.Errorf("coin=%d: %w", int(cfg.Coin), ErrUnknownCoin)
	}
	if cfg.PositionQubits < 1 {
		return fmt.Errorf("positionQubits=%d: %w", cfg.PositionQubits, ErrTooFewQubits)
	}
	if total := cfg.coinQubits() + cfg.PositionQubits; total > qsim.MaxQubits {
		return fmt.Errorf("total width %d > %d: %w", total, qsim.MaxQubits, ErrTooManyQubits)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("steps=%d: %w", cfg.Steps, ErrNegativeSteps)
	}
	if cfg.Shots < 1 {
		return fmt.Errorf("shots=%d: %w", cfg.Shots, ErrNonPositiveShots)
	}
	return nil
}
