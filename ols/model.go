// SPDX-License-Identifier: MIT

package ols

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linreg/matrix"
)

// FittedModel is the result of Fit. It is immutable: every accessor returns
// a copy, so callers may modify what they receive.
type FittedModel struct {
	coefficients []float64     // β, intercept first (len p)
	fitted       []float64     // D·β (len n)
	residuals    []float64     // y − D·β (len n)
	y            []float64     // response copy, for goodness of fit
	xtxInverse   *matrix.Dense // (DᵀD)⁻¹ (p×p)
	sigma2Hat    float64       // RSS / (n − p)
	rss          float64
	n, p         int
}

func cloneFloats(v []float64) []float64 { return append([]float64(nil), v...) }

// Coefficients returns β; index 0 is the intercept.
func (m *FittedModel) Coefficients() []float64 { return cloneFloats(m.coefficients) }

// FittedValues returns D·β.
func (m *FittedModel) FittedValues() []float64 { return cloneFloats(m.fitted) }

// Residuals returns y − D·β.
func (m *FittedModel) Residuals() []float64 { return cloneFloats(m.residuals) }

// Sigma2Hat returns the residual variance estimate RSS/(n−p).
func (m *FittedModel) Sigma2Hat() float64 { return m.sigma2Hat }

// XtXInverse returns a copy of (DᵀD)⁻¹, or nil when m did not come from Fit.
func (m *FittedModel) XtXInverse() *matrix.Dense {
	if m == nil || m.xtxInverse == nil {
		return nil
	}

	return m.xtxInverse.Clone().(*matrix.Dense)
}

// XtXInverseDiag returns the diagonal of (DᵀD)⁻¹.
// Errors: ErrNotFitted when m did not come from Fit.
func (m *FittedModel) XtXInverseDiag() ([]float64, error) {
	const tag = "XtXInverseDiag"
	if m == nil || m.xtxInverse == nil {
		return nil, olsErrorf(tag, ErrNotFitted)
	}
	d, err := matrix.Diag(m.xtxInverse)
	if err != nil {
		return nil, olsErrorf(tag, err)
	}

	return d, nil
}

// N returns the number of observations.
func (m *FittedModel) N() int { return m.n }

// P returns the number of coefficients, intercept included.
func (m *FittedModel) P() int { return m.p }

// DF returns the residual degrees of freedom n − p (always ≥ 1).
func (m *FittedModel) DF() int { return m.n - m.p }

// RSS returns the residual sum of squares.
func (m *FittedModel) RSS() float64 { return m.rss }

// Augment returns [1, xNew...], the design row for a new observation.
// Errors: ErrDimensionMismatch when len(xNew) != P()−1.
func (m *FittedModel) Augment(xNew []float64) ([]float64, error) {
	if len(xNew) != m.p-1 {
		return nil, olsErrorf("Augment", fmt.Errorf("len(x)=%d, want %d: %w", len(xNew), m.p-1, ErrDimensionMismatch))
	}
	xAug := make([]float64, m.p)
	xAug[0] = 1.0
	copy(xAug[1:], xNew)

	return xAug, nil
}

// Predict returns βᵀ·[1, xNew].
// Errors: ErrDimensionMismatch when len(xNew) != P()−1.
func (m *FittedModel) Predict(xNew []float64) (float64, error) {
	xAug, err := m.Augment(xNew)
	if err != nil {
		return 0, err
	}

	return matrix.Dot(m.coefficients, xAug)
}

// RSquared returns the coefficient of determination 1 − RSS/TSS.
// NaN when y is constant.
func (m *FittedModel) RSquared() float64 {
	return stat.RSquaredFrom(m.fitted, m.y, nil)
}

// AdjustedRSquared returns 1 − (1 − R²)·(n − 1)/(n − p).
func (m *FittedModel) AdjustedRSquared() float64 {
	return 1 - (1-m.RSquared())*float64(m.n-1)/float64(m.n-m.p)
}

// logLik is the Gaussian log-likelihood at the ML variance RSS/n.
func (m *FittedModel) logLik() float64 {
	n := float64(m.n)

	return -0.5 * n * (1 + math.Log(2*math.Pi*m.rss/n))
}

// AIC returns −2·logL + 2p. −Inf for a perfect fit.
func (m *FittedModel) AIC() float64 { return -2*m.logLik() + 2*float64(m.p) }

// BIC returns −2·logL + p·ln(n). −Inf for a perfect fit.
func (m *FittedModel) BIC() float64 {
	return -2*m.logLik() + float64(m.p)*math.Log(float64(m.n))
}
