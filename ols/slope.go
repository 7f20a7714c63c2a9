// SPDX-License-Identifier: MIT

package ols

import "fmt"

// SimpleSlope returns Sxy/Sxx, the least-squares slope of y on a single
// predictor x, computed from centred sums.
//
// Errors:
//   - ErrEmptyInput (no points), ErrDimensionMismatch (len(x) != len(y)),
//     ErrDegenerateModel (all x equal).
func SimpleSlope(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, olsErrorf("SimpleSlope", fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrDimensionMismatch))
	}
	if len(x) == 0 {
		return 0, olsErrorf("SimpleSlope", ErrEmptyInput)
	}

	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(len(x))
	meanY /= float64(len(y))

	var sxx, sxy, dx float64
	for i := range x {
		dx = x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}
	if sxx == 0 {
		return 0, olsErrorf("SimpleSlope", ErrDegenerateModel)
	}

	return sxy / sxx, nil
}
