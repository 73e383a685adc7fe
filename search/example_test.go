package search_test

import (
	"fmt"

	"github.com/qwalklab/qwalk/graph"
	"github.com/qwalklab/qwalk/search"
)

// ExampleRun searches a complete graph for vertex 5 with the default
// γ = 1/N and horizon (π/2)·√N, then prints the peak success.
func ExampleRun() {
	g, err := graph.Complete(8)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	res, err := search.Run(g, 5)
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}

	fmt.Printf("peak success %.2f\n", res.MaxProbability)

	// Output:
	// peak success 1.00
}
