// SPDX-License-Identifier: MIT

package ols

import (
	"github.com/katalvlaran/linreg/matrix"
)

const opBuildDesign = "BuildDesign"

// BuildDesign returns the n×(k+1) design matrix [1 | X] for predictors X (n×k).
// Implementation:
//   - Stage 1: validate X is non-nil and has at least one row.
//   - Stage 2: allocate n×(k+1); column 0 is 1.0, columns 1..k copy X unmodified.
//
// Behavior highlights:
//   - X is read through At only; the result shares no storage with X.
//   - k = 0 is legal (intercept-only model, see InterceptOnly).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyInput, matrix.ErrNaNInf (non-finite X).
//
// Complexity:
//   - Time O(n*k), Space O(n*(k+1)).
func BuildDesign(x matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, olsErrorf(opBuildDesign, err)
	}
	n, k := x.Rows(), x.Cols()
	if n == 0 {
		return nil, olsErrorf(opBuildDesign, ErrEmptyInput)
	}

	d, err := matrix.NewDense(n, k+1)
	if err != nil {
		return nil, olsErrorf(opBuildDesign, err)
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		if err = d.Set(i, 0, 1.0); err != nil {
			return nil, olsErrorf(opBuildDesign, err)
		}
		for j = 0; j < k; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, olsErrorf(opBuildDesign, err)
			}
			if err = d.Set(i, j+1, v); err != nil {
				return nil, olsErrorf(opBuildDesign, err)
			}
		}
	}

	return d, nil
}

// InterceptOnly returns an n×0 predictor matrix. Fitting it estimates the
// mean of y.
func InterceptOnly(n int) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, olsErrorf("InterceptOnly", ErrEmptyInput)
	}

	return matrix.NewDenseFrom(make([][]float64, n))
}
