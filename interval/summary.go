// SPDX-License-Identifier: MIT

package interval

import (
	"math"

	"github.com/katalvlaran/linreg/ols"
)

// CoefficientSummary is the usual regression-table row for one coefficient.
type CoefficientSummary struct {
	Estimate float64 // β_i
	StdErr   float64 // sqrt(σ̂²·(DᵀD)⁻¹_ii)
	TStat    float64 // Estimate / StdErr
	PValue   float64 // two-sided, Student-t with n − p degrees of freedom
}

// Summarize returns one CoefficientSummary per coefficient, intercept first.
// A zero standard error (perfect fit) yields an infinite or NaN t statistic.
//
// Errors: ErrNilModel, ols.ErrNotFitted.
func Summarize(model *ols.FittedModel) ([]CoefficientSummary, error) {
	const tag = "Summarize"
	if err := checkModel(tag, model); err != nil {
		return nil, err
	}
	diag, err := model.XtXInverseDiag()
	if err != nil {
		return nil, intervalErrorf(tag, err)
	}
	coef, s2, df := model.Coefficients(), model.Sigma2Hat(), model.DF()

	out := make([]CoefficientSummary, len(coef))
	for i := range coef {
		se := math.Sqrt(s2 * diag[i])
		t := coef[i] / se
		out[i] = CoefficientSummary{
			Estimate: coef[i],
			StdErr:   se,
			TStat:    t,
			PValue:   twoSidedPValue(t, df),
		}
	}

	return out, nil
}
