// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linreg/interval"
)

func newPredictCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "predict <dataset.yaml>",
		Short: "Fit a model and print prediction intervals for the dataset's predict rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(cmd, s, args[0])
		},
	}
}

func runPredict(cmd *cobra.Command, s *settings, path string) error {
	d, m, alpha, err := loadAndFit(cmd, s, path)
	if err != nil {
		return err
	}
	if len(d.Predict) == 0 {
		return fmt.Errorf("%s: no predict rows", path)
	}
	ivs, err := interval.PredictionIntervals(m, d.Predict, alpha)
	if err != nil {
		return err
	}

	level := 100 * (1 - alpha)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "X\tESTIMATE\tLOWER %g%%\tUPPER %g%%\n", level, level)
	for i, row := range d.Predict {
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\n", formatRow(row), ivs[i].Estimate, ivs[i].Lower, ivs[i].Upper)
	}

	return w.Flush()
}

func formatRow(row []float64) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
