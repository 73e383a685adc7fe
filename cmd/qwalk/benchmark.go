// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qwalklab/qwalk/classical"
	"github.com/qwalklab/qwalk/plotting"
	"github.com/qwalklab/qwalk/search"
)

// benchmarkParams configure the quantum-vs-classical scaling run.
type benchmarkParams struct {
	Graph     string `yaml:"graph"`
	Sizes     string `yaml:"sizes"`
	Marked    int    `yaml:"marked"`
	Classical bool   `yaml:"classical"`
	Trials    int    `yaml:"trials"`
	Plot      string `yaml:"plot"`
}

func newBenchmarkCmd() *cobra.Command {
	p := benchmarkParams{
		Graph:  graphComplete,
		Sizes:  "4,8,16,32",
		Marked: 0,
		Trials: classical.DefaultTrials,
	}
	var configPath string

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "measure search scaling across graph sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				flagged := p
				if err := decodeConfigSection(configPath, "benchmark", &p); err != nil {
					return err
				}
				restoreChangedBenchmark(cmd, &p, flagged)
			}
			return runBenchmark(cmd, p)
		},
	}

	cmd.Flags().StringVar(&p.Graph, "graph", p.Graph, "graph kind: complete, cycle, star or hypercube")
	cmd.Flags().StringVar(&p.Sizes, "sizes", p.Sizes, "comma-separated vertex counts")
	cmd.Flags().IntVar(&p.Marked, "marked", p.Marked, "marked vertex (must fit the smallest size)")
	cmd.Flags().BoolVar(&p.Classical, "classical", p.Classical, "also estimate classical hitting times")
	cmd.Flags().IntVar(&p.Trials, "trials", p.Trials, "Monte Carlo trials per classical estimate")
	cmd.Flags().StringVar(&p.Plot, "plot", p.Plot, "write the scaling plot to this path")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (section: benchmark)")
	return cmd
}

func restoreChangedBenchmark(cmd *cobra.Command, p *benchmarkParams, flagged benchmarkParams) {
	if cmd.Flags().Changed("graph") {
		p.Graph = flagged.Graph
	}
	if cmd.Flags().Changed("sizes") {
		p.Sizes = flagged.Sizes
	}
	if cmd.Flags().Changed("marked") {
		p.Marked = flagged.Marked
	}
	if cmd.Flags().Changed("classical") {
		p.Classical = flagged.Classical
	}
	if cmd.Flags().Changed("trials") {
		p.Trials = flagged.Trials
	}
	if cmd.Flags().Changed("plot") {
		p.Plot = flagged.Plot
	}
}

func runBenchmark(cmd *cobra.Command, p benchmarkParams) error {
	builder, err := graphBuilderFor(p.Graph)
	if err != nil {
		return err
	}
	sizes, err := parseSizes(p.Sizes)
	if err != nil {
		return err
	}

	res, err := search.Benchmark(builder, sizes, p.Marked)
	if err != nil {
		return err
	}

	var baselines []float64
	if p.Classical {
		if p.Trials < 1 {
			return fmt.Errorf("trials must be at least 1, got %d", p.Trials)
		}
		baselines = make([]float64, len(sizes))
		for i, n := range sizes {
			g, gerr := builder(n)
			if gerr != nil {
				return gerr
			}
			// Hitting time to the marked vertex from any other; vertex
			// (marked+1) mod n is a valid non-target start everywhere.
			est, eerr := classical.HittingTime(g, (p.Marked+1)%n, p.Marked,
				classical.WithTrials(p.Trials))
			if eerr != nil {
				return eerr
			}
			baselines[i] = est.MeanSteps
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "search scaling on %s graphs, marked vertex %d:\n", p.Graph, p.Marked)
	for i, n := range res.NodeCounts {
		fmt.Fprintf(out, "  n=%-4d optimal time %7.3f  peak success %.4f", n, res.OptimalTimes[i], res.MaxProbs[i])
		if baselines != nil {
			fmt.Fprintf(out, "  classical steps %8.1f", baselines[i])
		}
		fmt.Fprintln(out)
	}

	if p.Plot != "" {
		if err := plotting.BenchmarkScaling(res, baselines, p.Plot); err != nil {
			return err
		}
		fmt.Fprintf(out, "scaling plot written to %s\n", p.Plot)
	}
	return nil
}
