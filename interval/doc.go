// SPDX-License-Identifier: MIT

// Package interval turns an ols.FittedModel into Student-t interval
// estimates.
//
//   - CoefficientConfidenceIntervals: β_i ∓ q·sqrt(σ̂²·(DᵀD)⁻¹_ii), one per
//     coefficient, intercept first.
//   - PredictionInterval: ŷ ∓ q·sqrt(σ̂²·(1 + xᵀ(DᵀD)⁻¹x)) for a new
//     observation x = [1, xNew...].
//   - MeanResponseInterval: the same without the 1, i.e. the confidence
//     interval for E[y | xNew].
//   - Summarize: standard errors, t statistics and two-sided p-values.
//
// q is quantile(1 − alpha/2, n − p). The quantile is pluggable through
// WithQuantile; the default, StudentTQuantile, is backed by
// gonum.org/v1/gonum/stat/distuv.
//
// All functions are pure and allocate fresh results.
package interval
