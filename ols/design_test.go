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

func TestBuildDesign_PrependsOnes(t *testing.T) {
	t.Parallel()

	x := MustDenseFrom(t, [][]float64{{2, 3}, {4, 5}, {6, 7}})
	for _, in := range []matrix.Matrix{x, opaque{x}} {
		d, err := ols.BuildDesign(in)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1, 2, 3}, {1, 4, 5}, {1, 6, 7}}, d.Values())
	}

	// X untouched, D independent
	d, err := ols.BuildDesign(x)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, -1))
	v, err := x.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestBuildDesign_ZeroPredictors(t *testing.T) {
	t.Parallel()

	x, err := ols.InterceptOnly(3)
	require.NoError(t, err)
	d, err := ols.BuildDesign(x)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {1}, {1}}, d.Values())
}

func TestBuildDesign_Errors(t *testing.T) {
	t.Parallel()

	_, err := ols.BuildDesign(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	// non-finite value reported by a Matrix that does not police Set
	_, err = ols.BuildDesign(infAt{opaque{MustDenseFrom(t, [][]float64{{1}, {2}})}})
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}

// infAt reports +Inf at (1,0).
type infAt struct{ opaque }

func (m infAt) At(i, j int) (float64, error) {
	if i == 1 && j == 0 {
		return math.Inf(1), nil
	}

	return m.opaque.At(i, j)
}
