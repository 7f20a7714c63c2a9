// SPDX-License-Identifier: MIT
package interval_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linreg/matrix"
	"github.com/katalvlaran/linreg/ols"
)

// AssertErrorIs checks errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// MustFit fits y on rows or fails the test.
func MustFit(t *testing.T, rows [][]float64, y []float64) *ols.FittedModel {
	t.Helper()
	x, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	m, err := ols.Fit(x, y)
	require.NoError(t, err)

	return m
}

// handModel is x = 1..4, y = [2,4,5,8]:
// β = [0, 1.9], RSS = 0.7, σ̂² = 0.35, (DᵀD)⁻¹ = [[1.5,-0.5],[-0.5,0.2]], df = 2.
func handModel(t *testing.T) *ols.FittedModel {
	t.Helper()

	return MustFit(t, [][]float64{{1}, {2}, {3}, {4}}, []float64{2, 4, 5, 8})
}

// noisyModel draws n observations of y = beta·[1, x] + N(0, noise²).
func noisyModel(t *testing.T, n int, beta []float64, noise float64, seed int64) *ols.FittedModel {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	k := len(beta) - 1
	rows := make([][]float64, n)
	y := make([]float64, n)
	for i := range rows {
		rows[i] = make([]float64, k)
		y[i] = beta[0]
		for j := range rows[i] {
			rows[i][j] = 4*rng.Float64() - 2
			y[i] += beta[j+1] * rows[i][j]
		}
		y[i] += noise * rng.NormFloat64()
	}

	return MustFit(t, rows, y)
}
