// Package linreg is ordinary least-squares regression built from first
// principles: a dense matrix toolkit, the normal equations solved through an
// explicit Gauss-Jordan inverse, and Student-t interval estimates.
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/    Dense storage, Mul / MulTA / Transpose / MatVec, Gauss-Jordan Inverse
//	ols/       design matrix [1 | X], Fit, FittedModel, SimpleSlope
//	interval/  coefficient confidence intervals, prediction intervals, summaries
//
// The linreg command (cmd/linreg) fits YAML datasets from the shell.
//
// Quick start:
//
//	x, _ := matrix.NewDenseFrom([][]float64{{1}, {2}, {3}, {4}})
//	m, err := ols.Fit(x, []float64{2, 4, 5, 8})
//	if err != nil { /* ErrDegenerateModel, ErrSingular, ... */ }
//	cis, _ := interval.CoefficientConfidenceIntervals(m, 0.05)
//	pi, _ := interval.PredictionInterval(m, []float64{5}, 0.05)
package linreg
