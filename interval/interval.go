// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linreg/matrix"
	"github.com/katalvlaran/linreg/ols"
)

// Interval is a two-sided interval around a point estimate.
type Interval struct {
	Lower    float64
	Estimate float64
	Upper    float64
}

// Width returns Upper − Lower.
func (iv Interval) Width() float64 { return iv.Upper - iv.Lower }

// Contains reports whether Lower ≤ v ≤ Upper.
func (iv Interval) Contains(v float64) bool { return iv.Lower <= v && v <= iv.Upper }

// String formats the interval as "est [lower, upper]".
func (iv Interval) String() string {
	return fmt.Sprintf("%g [%g, %g]", iv.Estimate, iv.Lower, iv.Upper)
}

func around(est, q, variance float64) Interval {
	half := q * math.Sqrt(variance)

	return Interval{Lower: est - half, Estimate: est, Upper: est + half}
}

// Estimator computes interval estimates with a fixed quantile function.
// The zero value is not usable; construct with New.
type Estimator struct {
	quantile QuantileFunc
}

// New returns an Estimator using StudentTQuantile unless overridden.
func New(opts ...Option) *Estimator {
	e := &Estimator{quantile: StudentTQuantile}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

var defaultEstimator = New()

// checkModel rejects nil models and models that did not come from ols.Fit.
func checkModel(tag string, model *ols.FittedModel) error {
	if model == nil {
		return intervalErrorf(tag, ErrNilModel)
	}
	if model.P() == 0 {
		return intervalErrorf(tag, ols.ErrNotFitted)
	}

	return nil
}

// criticalValue validates model and alpha and returns quantile(1 − alpha/2, n − p).
func (e *Estimator) criticalValue(tag string, model *ols.FittedModel, alpha float64) (float64, error) {
	if err := checkModel(tag, model); err != nil {
		return 0, err
	}
	if !(alpha > 0 && alpha < 1) {
		return 0, intervalErrorf(tag, fmt.Errorf("alpha %v not in (0,1): %w", alpha, ErrInvalidArgument))
	}
	q, err := e.quantile(1-alpha/2, model.DF())
	if err != nil {
		return 0, intervalErrorf(tag, err)
	}

	return q, nil
}

// CoefficientConfidenceIntervals returns one (1−alpha) confidence interval
// per coefficient, in coefficient order (intercept first).
// Implementation:
//   - Stage 1: q = quantile(1 − alpha/2, n − p).
//   - Stage 2: var_i = σ̂²·(DᵀD)⁻¹_ii; interval β_i ∓ q·sqrt(var_i).
//
// Errors:
//   - ErrNilModel, ols.ErrNotFitted (zero-value model),
//     ErrInvalidArgument (alpha ∉ (0,1) or quantile domain).
func (e *Estimator) CoefficientConfidenceIntervals(model *ols.FittedModel, alpha float64) ([]Interval, error) {
	const tag = "CoefficientConfidenceIntervals"
	q, err := e.criticalValue(tag, model, alpha)
	if err != nil {
		return nil, err
	}

	diag, err := model.XtXInverseDiag()
	if err != nil {
		return nil, intervalErrorf(tag, err)
	}
	coef, s2 := model.Coefficients(), model.Sigma2Hat()
	out := make([]Interval, len(coef))
	for i := range coef {
		out[i] = around(coef[i], q, s2*diag[i])
	}

	return out, nil
}

// PredictionInterval returns the (1−alpha) interval for a single new
// response at predictors xNew (length p−1).
// Implementation:
//   - Stage 1: xAug = [1, xNew...].
//   - Stage 2: var = σ̂²·(1 + xAugᵀ·(DᵀD)⁻¹·xAug).
//   - Stage 3: ŷ = βᵀ·xAug; interval ŷ ∓ q·sqrt(var).
//
// Errors:
//   - ErrNilModel, ErrInvalidArgument, ErrDimensionMismatch (len(xNew) != p−1).
func (e *Estimator) PredictionInterval(model *ols.FittedModel, xNew []float64, alpha float64) (Interval, error) {
	return e.responseInterval("PredictionInterval", model, xNew, alpha, 1)
}

// MeanResponseInterval returns the (1−alpha) confidence interval for the
// expected response at xNew: var = σ̂²·xAugᵀ·(DᵀD)⁻¹·xAug.
func (e *Estimator) MeanResponseInterval(model *ols.FittedModel, xNew []float64, alpha float64) (Interval, error) {
	return e.responseInterval("MeanResponseInterval", model, xNew, alpha, 0)
}

func (e *Estimator) responseInterval(tag string, model *ols.FittedModel, xNew []float64, alpha, extra float64) (Interval, error) {
	q, err := e.criticalValue(tag, model, alpha)
	if err != nil {
		return Interval{}, err
	}
	xAug, err := model.Augment(xNew)
	if err != nil {
		return Interval{}, intervalErrorf(tag, err)
	}
	quad, err := matrix.QuadForm(model.XtXInverse(), xAug)
	if err != nil {
		return Interval{}, intervalErrorf(tag, err)
	}
	est, err := matrix.Dot(model.Coefficients(), xAug)
	if err != nil {
		return Interval{}, intervalErrorf(tag, err)
	}

	return around(est, q, model.Sigma2Hat()*(extra+quad)), nil
}

// PredictionIntervals evaluates PredictionInterval for every row. On any
// error no intervals are returned.
func (e *Estimator) PredictionIntervals(model *ols.FittedModel, rows [][]float64, alpha float64) ([]Interval, error) {
	out := make([]Interval, len(rows))
	for i, row := range rows {
		iv, err := e.PredictionInterval(model, row, alpha)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = iv
	}

	return out, nil
}

// CoefficientConfidenceIntervals uses the default Student-t estimator.
func CoefficientConfidenceIntervals(model *ols.FittedModel, alpha float64) ([]Interval, error) {
	return defaultEstimator.CoefficientConfidenceIntervals(model, alpha)
}

// PredictionInterval uses the default Student-t estimator.
func PredictionInterval(model *ols.FittedModel, xNew []float64, alpha float64) (Interval, error) {
	return defaultEstimator.PredictionInterval(model, xNew, alpha)
}

// MeanResponseInterval uses the default Student-t estimator.
func MeanResponseInterval(model *ols.FittedModel, xNew []float64, alpha float64) (Interval, error) {
	return defaultEstimator.MeanResponseInterval(model, xNew, alpha)
}

// PredictionIntervals uses the default Student-t estimator.
func PredictionIntervals(model *ols.FittedModel, rows [][]float64, alpha float64) ([]Interval, error) {
	return defaultEstimator.PredictionIntervals(model, rows, alpha)
}
