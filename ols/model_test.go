// SPDX-License-Identifier: MIT
package ols_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linreg/matrix"
	"github.com/katalvlaran/linreg/ols"
)

func fitLine(t *testing.T) *ols.FittedModel {
	t.Helper()
	m, err := ols.Fit(MustDenseFrom(t, [][]float64{{1}, {2}, {3}, {4}}), []float64{3, 5, 7, 9})
	require.NoError(t, err)

	return m
}

func TestModel_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	m := fitLine(t)

	c := m.Coefficients()
	c[0] = 42
	assert.NotEqual(t, 42.0, m.Coefficients()[0])

	f := m.FittedValues()
	f[1] = 42
	assert.NotEqual(t, 42.0, m.FittedValues()[1])

	r := m.Residuals()
	r[2] = 42
	assert.NotEqual(t, 42.0, m.Residuals()[2])

	inv := m.XtXInverse()
	require.NoError(t, inv.Set(0, 0, 42))
	v, err := m.XtXInverse().At(0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, v)
}

func TestModel_PredictAndAugment(t *testing.T) {
	t.Parallel()

	m := fitLine(t)

	got, err := m.Predict([]float64{5})
	require.NoError(t, err)
	assert.InDelta(t, 11.0, got, 1e-10)

	xAug, err := m.Augment([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5}, xAug)

	_, err = m.Predict([]float64{1, 2})
	AssertErrorIs(t, err, ols.ErrDimensionMismatch)
	_, err = m.Predict(nil)
	AssertErrorIs(t, err, ols.ErrDimensionMismatch)
}

func TestModel_FittedPlusResidualIsResponse(t *testing.T) {
	t.Parallel()

	rows := RandPredictors(25, 2, 8)
	y := Respond(rows, []float64{1, -1, 2}, 0.4, 9)
	m, err := ols.Fit(MustDenseFrom(t, rows), y)
	require.NoError(t, err)

	f, r := m.FittedValues(), m.Residuals()
	rss := 0.0
	for i := range y {
		assert.InDelta(t, y[i], f[i]+r[i], 1e-12)
		rss += r[i] * r[i]
	}
	assert.InDelta(t, rss, m.RSS(), 1e-12)
	assert.InDelta(t, rss/float64(m.DF()), m.Sigma2Hat(), 1e-12)
}

func TestModel_GoodnessOfFit(t *testing.T) {
	t.Parallel()

	rows := RandPredictors(50, 3, 10)
	y := Respond(rows, []float64{0, 1, 1, 1}, 0.5, 11)
	m, err := ols.Fit(MustDenseFrom(t, rows), y)
	require.NoError(t, err)

	r2 := m.RSquared()
	assert.Greater(t, r2, 0.0)
	assert.LessOrEqual(t, r2, 1.0)
	assert.Less(t, m.AdjustedRSquared(), r2)

	// TSS computed by hand
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))
	tss := 0.0
	for _, v := range y {
		tss += (v - mean) * (v - mean)
	}
	assert.InDelta(t, 1-m.RSS()/tss, r2, 1e-10)

	n, p := float64(m.N()), float64(m.P())
	assert.InDelta(t, p*math.Log(n)-2*p, m.BIC()-m.AIC(), 1e-9)
	assert.Less(t, m.AIC(), m.BIC()) // ln(50) > 2
}

func TestModel_XtXInverseDiag(t *testing.T) {
	m := fitLine(t)
	d, err := m.XtXInverseDiag()
	require.NoError(t, err)
	require.Len(t, d, 2)
	assert.InDelta(t, 1.5, d[0], 1e-12)
	assert.InDelta(t, 0.2, d[1], 1e-12)

	want, err := matrix.Diag(m.XtXInverse())
	require.NoError(t, err)
	assert.Equal(t, want, d)
}

func TestModel_ZeroValueIsNotFitted(t *testing.T) {
	t.Parallel()

	var zero ols.FittedModel
	d, err := zero.XtXInverseDiag()
	AssertErrorIs(t, err, ols.ErrNotFitted)
	assert.Nil(t, d)
	assert.Nil(t, zero.XtXInverse())

	var nilModel *ols.FittedModel
	_, err = nilModel.XtXInverseDiag()
	AssertErrorIs(t, err, ols.ErrNotFitted)
}
