package classical_test

import (
	"fmt"

	"github.com/qwalklab/qwalk/classical"
	"github.com/qwalklab/qwalk/graph"
)

// ExampleHittingTime estimates the classical baseline on a small
// complete graph; the geometric mean for K_4 is 3 steps.
func ExampleHittingTime() {
	g, err := graph.Complete(4)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	est, err := classical.HittingTime(g, 0, 2)
	if err != nil {
		fmt.Println("estimate failed:", err)
		return
	}

	fmt.Printf("mean steps %.0f over %d trials\n", est.MeanSteps, est.Trials)

	// Output:
	// mean steps 3 over 10000 trials
}
