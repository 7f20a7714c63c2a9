// SPDX-License-Identifier: MIT
package ols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linreg/ols"
)

func TestSimpleSlope_MatchesFit(t *testing.T) {
	t.Parallel()

	rows := RandPredictors(30, 1, 12)
	y := Respond(rows, []float64{4, -1.5}, 0.2, 13)
	x := make([]float64, len(rows))
	for i := range rows {
		x[i] = rows[i][0]
	}

	slope, err := ols.SimpleSlope(x, y)
	require.NoError(t, err)

	m, err := ols.Fit(MustDenseFrom(t, rows), y)
	require.NoError(t, err)
	assert.InDelta(t, m.Coefficients()[1], slope, 1e-10)
}

func TestSimpleSlope_Errors(t *testing.T) {
	t.Parallel()

	_, err := ols.SimpleSlope([]float64{1, 2}, []float64{1})
	AssertErrorIs(t, err, ols.ErrDimensionMismatch)

	_, err = ols.SimpleSlope(nil, nil)
	AssertErrorIs(t, err, ols.ErrEmptyInput)

	_, err = ols.SimpleSlope([]float64{3, 3, 3}, []float64{1, 2, 3})
	AssertErrorIs(t, err, ols.ErrDegenerateModel)

	s, err := ols.SimpleSlope([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	assert.Equal(t, 2.0, s)
}
