package coined_test

import (
	"fmt"

	"github.com/qwalklab/qwalk/coined"
)

// ExampleRun executes a short Hadamard walk on 4 positions with the
// documented defaults (8192 shots, seed 42) and prints the support.
func ExampleRun() {
	cfg := coined.DefaultConfig(2, 0)
	cfg.Coin = coined.CoinHadamard

	res, err := coined.Run(cfg)
	if err != nil {
		fmt.Println("walk failed:", err)
		return
	}

	// Zero steps: only the coin init ran, the walker never moved.
	fmt.Printf("p(0) = %.2f\n", res.Probabilities[0])

	// Output:
	// p(0) = 1.00
}
