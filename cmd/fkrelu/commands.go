// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/krelu/fkrelu"
	"github.com/katalvlaran/krelu/matrix"
	"github.com/katalvlaran/krelu/octahedron"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	relaxReference  bool
	relaxRaw        bool
	relaxSequential bool

	checkTol float64

	tableK int
)

// relaxCmd prints the relaxation of one input document.
var relaxCmd = &cobra.Command{
	Use:   "relax [file|-]",
	Short: "Compute the relaxation of an octahedron input",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelax,
}

// checkCmd verifies both pipelines against the reachable vertices.
var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Verify both pipelines keep every reachable vertex",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

// tableCmd prints the canonical coefficient rows for K.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the canonical coefficient rows of the octahedron input",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func runRelax(cmd *cobra.Command, args []string) error {
	a, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	opts := []fkrelu.Option{
		fkrelu.WithLogger(logger),
		fkrelu.WithNormalize(!relaxRaw),
		fkrelu.WithParallel(!relaxSequential),
	}

	pipeline := "decomposition"
	compute := fkrelu.Compute
	if relaxReference {
		pipeline = "reference"
		compute = fkrelu.ComputeReference
	}
	h, err := compute(a, opts...)
	if err != nil {
		return err
	}
	logger.Info("relaxation computed",
		zap.String("pipeline", pipeline),
		zap.Int("k", a.Cols()-1),
		zap.Int("rows", h.Rows()))

	return writeOutput(cmd.OutOrStdout(), a.Cols()-1, pipeline, h)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	pts, err := fkrelu.LiftedVertices(a)
	if err != nil {
		return err
	}

	got, err := fkrelu.Compute(a, fkrelu.WithLogger(logger))
	if err != nil {
		return err
	}
	ref, err := fkrelu.ComputeReference(a, fkrelu.WithLogger(logger))
	if err != nil {
		return err
	}

	checks := []struct {
		name string
		h    matrix.Matrix
		pts  [][]float64
	}{
		{"decomposition contains reachable vertices", got, pts},
		{"reference contains reachable vertices", ref, pts},
	}
	for _, c := range checks {
		if err = fkrelu.Check(c.h, c.pts, checkTol); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok  %s\n", c.name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rows: decomposition=%d reference=%d vertices=%d\n", got.Rows(), ref.Rows(), len(pts))

	return nil
}

func runTable(cmd *cobra.Command, _ []string) error {
	rows, err := octahedron.Coefficients(tableK)
	if err != nil {
		return err
	}
	for i, r := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d %v\n", i, r)
	}

	return nil
}
