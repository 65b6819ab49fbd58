// SPDX-License-Identifier: MIT

// Command fkrelu computes joint ReLU relaxations from the command line.
//
//	fkrelu relax input.yaml            # primary pipeline
//	fkrelu relax --reference input.yaml
//	fkrelu check input.yaml            # soundness of both pipelines
//	fkrelu table --k 2                 # canonical coefficient rows
//
// Input documents are YAML (JSON is accepted too), either box bounds
//
//	lower: [-1, -2]
//	upper: [1, 3]
//
// or a full octahedron matrix
//
//	rows:
//	  - [1.5, 0, 1]
//	  - ...
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/krelu/matrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fkrelu",
	Short: "Joint convex relaxations of up to four ReLU neurons",
	Long: `fkrelu turns an octahedron bound on K pre-activations (K ≤ 4) into linear
constraints over (x, ReLU(x)) that hold for every reachable point.

Each output row c means c0 + c·(x, y) ≥ 0.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging of pipeline stages")

	relaxCmd.Flags().BoolVar(&relaxReference, "reference", false, "Use the reference pipeline")
	relaxCmd.Flags().BoolVar(&relaxRaw, "raw", false, "Do not normalize output rows")
	relaxCmd.Flags().BoolVar(&relaxSequential, "sequential", false, "Reduce orthants on a single goroutine")

	checkCmd.Flags().Float64Var(&checkTol, "tol", matrix.DefaultEpsilon, "Relative tolerance for soundness checks")

	tableCmd.Flags().IntVarP(&tableK, "k", "k", 2, "Number of neurons (1..4)")

	rootCmd.AddCommand(relaxCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tableCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
