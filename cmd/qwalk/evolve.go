// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qwalklab/qwalk/contwalk"
	"github.com/qwalklab/qwalk/hamiltonian"
	"github.com/qwalklab/qwalk/plotting"
)

// evolveParams configure a continuous-time evolution from a localized
// start vertex.
type evolveParams struct {
	Graph   string  `yaml:"graph"`
	Nodes   int     `yaml:"nodes"`
	Start   int     `yaml:"start"`
	Time    float64 `yaml:"time"`
	Gamma   float64 `yaml:"gamma"`
	Samples int     `yaml:"samples"`
	Plot    string  `yaml:"plot"`
}

func newEvolveCmd() *cobra.Command {
	p := evolveParams{
		Graph:   graphCycle,
		Nodes:   8,
		Start:   0,
		Time:    2.0,
		Gamma:   hamiltonian.DefaultGamma,
		Samples: 1,
	}
	var configPath string

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "evolve a continuous-time walk and print vertex probabilities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				flagged := p
				if err := decodeConfigSection(configPath, "evolve", &p); err != nil {
					return err
				}
				restoreChangedEvolve(cmd, &p, flagged)
			}
			return runEvolve(cmd, p)
		},
	}

	cmd.Flags().StringVar(&p.Graph, "graph", p.Graph, "graph kind: complete, cycle, star or hypercube")
	cmd.Flags().IntVar(&p.Nodes, "nodes", p.Nodes, "vertex count")
	cmd.Flags().IntVar(&p.Start, "start", p.Start, "start vertex of the localized initial state")
	cmd.Flags().Float64Var(&p.Time, "time", p.Time, "evolution time (the horizon when sampling)")
	cmd.Flags().Float64Var(&p.Gamma, "gamma", p.Gamma, "hopping rate")
	cmd.Flags().IntVar(&p.Samples, "samples", p.Samples, "time samples across [0, time]; 1 evolves the endpoint only")
	cmd.Flags().StringVar(&p.Plot, "plot", p.Plot, "write vertex trajectories to this path (samples > 1)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (section: evolve)")
	return cmd
}

func restoreChangedEvolve(cmd *cobra.Command, p *evolveParams, flagged evolveParams) {
	if cmd.Flags().Changed("graph") {
		p.Graph = flagged.Graph
	}
	if cmd.Flags().Changed("nodes") {
		p.Nodes = flagged.Nodes
	}
	if cmd.Flags().Changed("start") {
		p.Start = flagged.Start
	}
	if cmd.Flags().Changed("time") {
		p.Time = flagged.Time
	}
	if cmd.Flags().Changed("gamma") {
		p.Gamma = flagged.Gamma
	}
	if cmd.Flags().Changed("samples") {
		p.Samples = flagged.Samples
	}
	if cmd.Flags().Changed("plot") {
		p.Plot = flagged.Plot
	}
}

func runEvolve(cmd *cobra.Command, p evolveParams) error {
	g, err := buildGraph(p.Graph, p.Nodes)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if p.Samples <= 1 {
		st, err := contwalk.WalkFromNode(g, p.Start, p.Time, p.Gamma)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "walk on %s(%d) from vertex %d at t=%.3f:\n", p.Graph, p.Nodes, p.Start, p.Time)
		printDistribution(out, g.Labels(), st.Probabilities)
		return nil
	}

	h := hamiltonian.Adjacency(g, p.Gamma)
	psi0, err := contwalk.BasisState(g.NodeCount(), p.Start)
	if err != nil {
		return err
	}
	times := make([]float64, p.Samples)
	for i := range times {
		times[i] = p.Time * float64(i) / float64(p.Samples-1)
	}
	sw, err := contwalk.Sweep(h, psi0, times)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "walk on %s(%d) from vertex %d, %d samples over [0, %.3f]; final distribution:\n",
		p.Graph, p.Nodes, p.Start, p.Samples, p.Time)
	printDistribution(out, g.Labels(), sw.ProbMatrix[len(times)-1])

	if p.Plot != "" {
		if err := plotting.EvolutionCurves(sw, g.Nodes(), p.Plot); err != nil {
			return err
		}
		fmt.Fprintf(out, "trajectories written to %s\n", p.Plot)
	}
	return nil
}

// printDistribution lists per-vertex probabilities with their labels.
func printDistribution(out io.Writer, labels []string, probs []float64) {
	for v, prob := range probs {
		fmt.Fprintf(out, "  %-8s %.4f\n", labels[v], prob)
	}
}
