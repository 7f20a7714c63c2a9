// SPDX-License-Identifier: MIT

package ols

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linreg/matrix"
)

// solution is what every backend hands back to Fit.
type solution struct {
	beta []float64     // p coefficients, intercept first
	inv  *matrix.Dense // (DᵀD)⁻¹, p×p
}

// solve dispatches to the configured backend.
func solve(d *matrix.Dense, y []float64, o Options) (solution, error) {
	switch o.backend {
	case BackendGonum:
		return solveGonum(d, y, o.path)
	default:
		return solveNative(d, y, o)
	}
}

// solveNative runs the normal equations on package matrix.
// Implementation:
//   - Stage 1: DᵀD, either as Mul(Transpose(D), D) or as MulTA(D, D).
//   - Stage 2: Gauss-Jordan inverse of DᵀD (pivot options forwarded). Pivots
//     at or below p·ε·max|DᵀD| are rejected unless the caller overrides it.
//   - Stage 3: SolveNormal multiplies ((DᵀD)⁻¹Dᵀ)·y; SolveFused multiplies
//     (DᵀD)⁻¹·(Dᵀy).
//
// Both orders compute the same β up to rounding.
func solveNative(d *matrix.Dense, y []float64, o Options) (solution, error) {
	yCol, err := matrix.NewColumn(y)
	if err != nil {
		return solution{}, err
	}

	var dt, xtx matrix.Matrix
	if o.path == SolveNormal {
		if dt, err = matrix.Transpose(d); err != nil {
			return solution{}, err
		}
		if xtx, err = matrix.Mul(dt, d); err != nil {
			return solution{}, err
		}
	} else {
		if xtx, err = matrix.MulTA(d, d); err != nil {
			return solution{}, err
		}
	}

	_, p := d.Shape()
	inv, err := matrix.Inverse(xtx, o.inverseOptions(p)...)
	if err != nil {
		return solution{}, err
	}
	invDense, ok := inv.(*matrix.Dense)
	if !ok {
		return solution{}, fmt.Errorf("unexpected inverse type %T", inv)
	}

	var beta []float64
	if o.path == SolveNormal {
		proj, err := matrix.Mul(inv, dt)
		if err != nil {
			return solution{}, err
		}
		b, err := matrix.Mul(proj, yCol)
		if err != nil {
			return solution{}, err
		}
		if beta, err = matrix.Column(b, 0); err != nil {
			return solution{}, err
		}
	} else {
		xty, err := matrix.MulTA(d, yCol)
		if err != nil {
			return solution{}, err
		}
		rhs, err := matrix.Column(xty, 0)
		if err != nil {
			return solution{}, err
		}
		if beta, err = matrix.MatVec(inv, rhs); err != nil {
			return solution{}, err
		}
	}

	return solution{beta: beta, inv: invDense}, nil
}

// solveGonum runs the same algebra on gonum/mat.
// A gonum mat.Condition error (exactly singular, or condition number above
// mat.ConditionTolerance) is reported as ErrSingular.
func solveGonum(d *matrix.Dense, y []float64, path SolvePath) (solution, error) {
	n, p := d.Shape()
	flat := make([]float64, 0, n*p)
	for i := 0; i < n; i++ {
		row, err := d.Row(i)
		if err != nil {
			return solution{}, err
		}
		flat = append(flat, row...)
	}
	gd := mat.NewDense(n, p, flat)
	gy := mat.NewVecDense(n, append([]float64(nil), y...))

	var dt, xtx mat.Dense
	if path == SolveNormal {
		dt.CloneFrom(gd.T())
		xtx.Mul(&dt, gd)
	} else {
		xtx.Mul(gd.T(), gd)
	}

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return solution{}, fmt.Errorf("gonum: %v: %w", err, ErrSingular)
		}

		return solution{}, err
	}

	var b mat.VecDense
	if path == SolveNormal {
		var proj mat.Dense
		proj.Mul(&inv, &dt)
		b.MulVec(&proj, gy)
	} else {
		var xty mat.VecDense
		xty.MulVec(gd.T(), gy)
		b.MulVec(&inv, &xty)
	}

	beta := make([]float64, p)
	for i := range beta {
		beta[i] = b.AtVec(i)
	}
	rows := make([][]float64, p)
	for i := range rows {
		rows[i] = mat.Row(nil, i, &inv)
	}
	invDense, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return solution{}, err
	}

	return solution{beta: beta, inv: invDense}, nil
}
