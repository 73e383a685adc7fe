// SPDX-License-Identifier: MIT

// Command qwalk runs quantum-walk simulations from the terminal:
// discrete coined walks, continuous-time evolution, spectral search,
// and the search-vs-classical scaling benchmark.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qwalk:", err)
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Each subcommand owns its
// flags; nothing is shared through globals, so tests build fresh trees.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qwalk",
		Short:         "quantum walk simulator",
		Long:          "Simulate discrete and continuous-time quantum walks on graphs,\nrun spectral search, and benchmark it against classical hitting times.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newCoinedCmd(),
		newEvolveCmd(),
		newSearchCmd(),
		newBenchmarkCmd(),
	)
	return root
}
