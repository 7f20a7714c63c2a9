// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linreg/internal/dataset"
	"github.com/katalvlaran/linreg/interval"
	"github.com/katalvlaran/linreg/ols"
)

func newFitCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "fit <dataset.yaml>",
		Short: "Fit a model and print the coefficient table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd, s, args[0])
		},
	}
}

// loadAndFit is shared by fit and predict.
func loadAndFit(cmd *cobra.Command, s *settings, path string) (*dataset.Dataset, *ols.FittedModel, float64, error) {
	logger := s.logger(cmd)

	d, err := dataset.Load(path)
	if err != nil {
		return nil, nil, 0, err
	}
	alpha, err := s.effectiveAlpha(cmd, d.Alpha)
	if err != nil {
		return nil, nil, 0, err
	}
	opts, err := s.fitOptions(logger)
	if err != nil {
		return nil, nil, 0, err
	}
	x, err := d.Matrix()
	if err != nil {
		return nil, nil, 0, err
	}
	logger.Debug("dataset loaded", "file", path, "name", d.Name, "n", len(d.Y), "k", d.K())

	m, err := ols.Fit(x, d.Y, opts...)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("fit %s: %w", path, err)
	}

	return d, m, alpha, nil
}

func runFit(cmd *cobra.Command, s *settings, path string) error {
	d, m, alpha, err := loadAndFit(cmd, s, path)
	if err != nil {
		return err
	}
	summary, err := interval.Summarize(m)
	if err != nil {
		return err
	}
	cis, err := interval.CoefficientConfidenceIntervals(m, alpha)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if d.Name != "" {
		fmt.Fprintf(out, "Dataset: %s\n", d.Name)
	}
	fmt.Fprintf(out, "n=%d  p=%d  df=%d  sigma2=%.6g  R2=%.4f  adjR2=%.4f\n\n",
		m.N(), m.P(), m.DF(), m.Sigma2Hat(), m.RSquared(), m.AdjustedRSquared())

	level := 100 * (1 - alpha)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TERM\tESTIMATE\tSTD.ERR\tT\tP\tLOWER %g%%\tUPPER %g%%\n", level, level)
	for i, term := range d.Terms() {
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.4g\t%.4g\t%.6g\t%.6g\n",
			term, summary[i].Estimate, summary[i].StdErr, summary[i].TStat, summary[i].PValue,
			cis[i].Lower, cis[i].Upper)
	}

	return w.Flush()
}
