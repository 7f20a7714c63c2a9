// SPDX-License-Identifier: MIT

package ols

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linreg/matrix"
)

var (
	// ErrDegenerateModel is returned when the model has no residual degrees
	// of freedom (n ≤ p), or when a single-predictor slope has Sxx = 0.
	ErrDegenerateModel = errors.New("ols: degenerate model")

	// ErrEmptyInput is returned for zero observations.
	ErrEmptyInput = errors.New("ols: empty input")

	// ErrNotFitted is returned by accessors of a FittedModel that did not
	// come from Fit (for example the zero value).
	ErrNotFitted = errors.New("ols: model not fitted")

	// ErrDimensionMismatch re-exports matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingular re-exports matrix.ErrSingular.
	ErrSingular = matrix.ErrSingular
)

// olsErrorf wraps err with an operation tag.
func olsErrorf(tag string, err error) error {
	return fmt.Errorf("ols.%s: %w", tag, err)
}
