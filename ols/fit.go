// SPDX-License-Identifier: MIT

package ols

import (
	"fmt"

	"github.com/katalvlaran/linreg/matrix"
)

const opFit = "Fit"

// Fit estimates β for y ≈ D·β where D = BuildDesign(x).
// Implementation:
//   - Stage 1: validate x, y and the degrees of freedom before any arithmetic.
//   - Stage 2: D = [1 | X].
//   - Stage 3: β and (DᵀD)⁻¹ from the selected backend and solve path.
//   - Stage 4: fitted = D·β, residual_i = y_i − fitted_i.
//   - Stage 5: σ̂² = Σ residual_i² / (n − p).
//
// Inputs:
//   - x: n×k predictors (any matrix.Matrix; read via At, never retained).
//   - y: n responses.
//   - opts: WithSolvePath, WithBackend, WithPivot, WithSingularTolerance,
//     WithRelativeSingularTolerance, WithLogger.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptyInput, ErrDimensionMismatch (len(y) != n),
//     ErrDegenerateModel (n ≤ p), matrix.ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n·p² + p³), Space O(n·p).
func Fit(x matrix.Matrix, y []float64, opts ...Option) (*FittedModel, error) {
	o := gatherOptions(opts...)

	// Stage 1
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, olsErrorf(opFit, err)
	}
	n, p := x.Rows(), x.Cols()+1
	if n == 0 {
		return nil, olsErrorf(opFit, ErrEmptyInput)
	}
	if len(y) != n {
		return nil, olsErrorf(opFit, fmt.Errorf("len(y)=%d, rows=%d: %w", len(y), n, ErrDimensionMismatch))
	}
	if n <= p {
		return nil, olsErrorf(opFit, fmt.Errorf("n=%d, p=%d: %w", n, p, ErrDegenerateModel))
	}
	if err := matrix.ValidateFiniteVec(y); err != nil {
		return nil, olsErrorf(opFit, err)
	}

	// Stage 2
	d, err := BuildDesign(x)
	if err != nil {
		return nil, olsErrorf(opFit, err)
	}

	// Stage 3
	sol, err := solve(d, y, o)
	if err != nil {
		return nil, olsErrorf(opFit, err)
	}

	// Stage 4
	fitted, err := matrix.MatVec(d, sol.beta)
	if err != nil {
		return nil, olsErrorf(opFit, err)
	}
	residuals := make([]float64, n)
	rss := 0.0
	for i := range residuals {
		residuals[i] = y[i] - fitted[i]
		rss += residuals[i] * residuals[i]
	}

	// Stage 5
	m := &FittedModel{
		coefficients: sol.beta,
		fitted:       fitted,
		residuals:    residuals,
		y:            append([]float64(nil), y...),
		xtxInverse:   sol.inv,
		sigma2Hat:    rss / float64(n-p),
		rss:          rss,
		n:            n,
		p:            p,
	}

	inv := matrix.NewMatrixOptions(o.inverseOptions(p)...)
	o.logger.Debug("ols fit",
		"n", n,
		"p", p,
		"path", o.path.String(),
		"backend", o.backend.String(),
		"pivot", inv.Pivot().String(),
		"rtol", inv.RelativeSingularTolerance(),
		"sigma2", m.sigma2Hat,
	)

	return m, nil
}
