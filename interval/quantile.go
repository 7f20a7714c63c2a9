// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// QuantileFunc returns the p-quantile of Student's t with df degrees of
// freedom. Implementations report domain errors as ErrInvalidArgument.
type QuantileFunc func(p float64, df int) (float64, error)

// StudentTQuantile is the inverse CDF of the standard Student-t distribution.
//
// Errors:
//   - ErrInvalidArgument when p ∉ (0, 1) (NaN included) or df ≤ 0.
func StudentTQuantile(p float64, df int) (float64, error) {
	if err := checkTArgs(p, df); err != nil {
		return 0, intervalErrorf("StudentTQuantile", err)
	}

	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}.Quantile(p), nil
}

// twoSidedPValue returns 2·P(T > |t|) for T ~ t(df).
func twoSidedPValue(t float64, df int) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}

	return 2 * distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}.Survival(math.Abs(t))
}

func checkTArgs(p float64, df int) error {
	if !(p > 0 && p < 1) {
		return fmt.Errorf("probability %v not in (0,1): %w", p, ErrInvalidArgument)
	}
	if df <= 0 {
		return fmt.Errorf("degrees of freedom %d must be positive: %w", df, ErrInvalidArgument)
	}

	return nil
}
