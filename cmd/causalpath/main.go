package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "causalpath",
		Short: "Causal path simulator - mediation analysis on a fixed DAG",
		Long: `causalpath simulates data from a fixed causal graph (a treatment, four
mediators, a confounder, and an outcome), fits linear regressions to the
simulated data, and compares the fitted coefficients against the
closed-form total and direct effects.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("root", ".", "Project root directory")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.causalpath/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newEffectCmd(),
		newSimulateCmd(),
		newFitCmd(),
		newGraphCmd(),
		newRunsCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
