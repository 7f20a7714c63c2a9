// SPDX-License-Identifier: MIT

// Package cli wires the linreg commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linreg/internal/dataset"
	"github.com/katalvlaran/linreg/matrix"
	"github.com/katalvlaran/linreg/ols"
)

// settings holds the flags shared by every command.
type settings struct {
	alpha   float64
	path    string
	backend string
	pivot   string
	verbose bool
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:   "linreg",
		Short: "Ordinary least-squares regression",
		Long: `linreg fits ordinary least-squares models from YAML datasets and reports
coefficients, confidence intervals and prediction intervals.

Examples:
  linreg fit data.yaml                     # coefficient table
  linreg fit data.yaml --alpha 0.01        # 99% intervals
  linreg predict data.yaml --backend gonum # prediction intervals`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.Float64Var(&s.alpha, "alpha", dataset.DefaultAlpha, "Significance level; overrides the dataset when set")
	pf.StringVar(&s.path, "path", ols.SolveNormal.String(), "Solve path: normal, fused")
	pf.StringVar(&s.backend, "backend", ols.BackendNative.String(), "Backend: native, gonum")
	pf.StringVar(&s.pivot, "pivot", matrix.PivotPartial.String(), "Pivot strategy: partial, column-one")
	pf.BoolVarP(&s.verbose, "verbose", "v", false, "Debug logging on stderr")

	root.AddCommand(newFitCmd(s))
	root.AddCommand(newPredictCmd(s))

	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logger returns a text logger on the command's stderr.
func (s *settings) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if s.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// fitOptions translates the flags into ols options.
func (s *settings) fitOptions(logger *slog.Logger) ([]ols.Option, error) {
	path, err := ols.ParseSolvePath(s.path)
	if err != nil {
		return nil, err
	}
	backend, err := ols.ParseBackend(s.backend)
	if err != nil {
		return nil, err
	}
	pivot, err := matrix.ParsePivotStrategy(s.pivot)
	if err != nil {
		return nil, err
	}

	return []ols.Option{
		ols.WithSolvePath(path),
		ols.WithBackend(backend),
		ols.WithPivot(pivot),
		ols.WithLogger(logger),
	}, nil
}

// effectiveAlpha prefers --alpha when it was given on the command line.
func (s *settings) effectiveAlpha(cmd *cobra.Command, fromFile float64) (float64, error) {
	if f := cmd.Flag("alpha"); f == nil || !f.Changed {
		return fromFile, nil
	}
	if !(s.alpha > 0 && s.alpha < 1) {
		return 0, fmt.Errorf("--alpha %v not in (0,1)", s.alpha)
	}

	return s.alpha, nil
}
