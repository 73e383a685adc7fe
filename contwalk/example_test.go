package contwalk_test

import (
	"fmt"

	"github.com/qwalklab/qwalk/contwalk"
	"github.com/qwalklab/qwalk/graph"
	"github.com/qwalklab/qwalk/hamiltonian"
)

// ExampleEvolve runs a zero-time evolution on C_4 — the distribution
// stays the discrete delta it started from.
func ExampleEvolve() {
	g, _ := graph.Cycle(4)
	h := hamiltonian.Adjacency(g, 1.0)
	psi0, _ := contwalk.BasisState(4, 0)

	st, _ := contwalk.Evolve(h, psi0, 0)
	fmt.Printf("p = [%.0f %.0f %.0f %.0f]\n",
		st.Probabilities[0], st.Probabilities[1], st.Probabilities[2], st.Probabilities[3])

	// Output:
	// p = [1 0 0 0]
}

// ExampleSweep evaluates a short time sweep; each row of ProbMatrix
// matches its entry in Times.
func ExampleSweep() {
	g, _ := graph.Cycle(4)
	h := hamiltonian.Adjacency(g, 1.0)
	psi0, _ := contwalk.BasisState(4, 0)

	sw, _ := contwalk.Sweep(h, psi0, []float64{0, 0.5, 1.0})
	fmt.Println("rows:", len(sw.ProbMatrix), "times:", sw.Times)

	// Output:
	// rows: 3 times: [0 0.5 1]
}
