// SPDX-License-Identifier: MIT

// Package ols fits ordinary least-squares linear models through the normal
// equations.
//
// What:
//
//   - BuildDesign prepends an intercept column of ones to the caller's
//     predictor matrix X (n×k), producing the design matrix D (n×p, p = k+1).
//   - Fit solves β = (DᵀD)⁻¹Dᵀy with an explicit Gauss-Jordan inverse and
//     returns an immutable FittedModel holding β, fitted values, residuals,
//     σ̂² = RSS/(n−p) and (DᵀD)⁻¹.
//   - SimpleSlope is the closed-form slope Sxy/Sxx for a single predictor.
//
// Why:
//
//   - The explicit inverse is kept on the model so interval estimates
//     (package interval) can reuse its diagonal and quadratic forms.
//
// Solve paths and backends:
//
//   - SolveNormal materialises Dᵀ and multiplies (DᵀD)⁻¹Dᵀ by y.
//   - SolveFused forms DᵀD and Dᵀy directly from D's columns.
//   - BackendNative runs package matrix kernels; BackendGonum runs the same
//     algebra on gonum.org/v1/gonum/mat. All combinations agree within
//     floating-point rounding.
//
// Errors:
//
//   - ErrDimensionMismatch  len(y) != n, or a prediction vector of the wrong length.
//   - ErrDegenerateModel    n ≤ p (no residual degrees of freedom).
//   - ErrSingular           DᵀD is not invertible (collinear predictors).
//   - ErrEmptyInput         no observations.
//
// Concurrency:
//
//   - Fit is a pure function of its inputs; a FittedModel is immutable and
//     safe to share between goroutines.
package ols
