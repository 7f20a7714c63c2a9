// SPDX-License-Identifier: MIT
package ols_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linreg/matrix"
	"github.com/katalvlaran/linreg/ols"
)

// opaque hides *matrix.Dense so BuildDesign goes through the interface.
type opaque struct{ matrix.Matrix }

// MustDenseFrom builds a *matrix.Dense from rows or fails the test.
func MustDenseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// AssertErrorIs checks errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic asserts fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// RandPredictors returns n×k predictors uniform in [-1, 1).
func RandPredictors(n, k int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, k)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
	}

	return rows
}

// Respond returns β0 + Σ βj·x_j (+ noise·N(0,1) when noise > 0).
func Respond(rows [][]float64, beta []float64, noise float64, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	y := make([]float64, len(rows))
	for i, row := range rows {
		y[i] = beta[0]
		for j, v := range row {
			y[i] += beta[j+1] * v
		}
		if noise > 0 {
			y[i] += noise * rng.NormFloat64()
		}
	}

	return y
}

// fitConfig is one combination of solve path, backend and pivot.
type fitConfig struct {
	path    ols.SolvePath
	backend ols.Backend
	pivot   matrix.PivotStrategy
}

func (c fitConfig) String() string {
	return fmt.Sprintf("%s/%s/%s", c.path, c.backend, c.pivot)
}

func (c fitConfig) opts() []ols.Option {
	return []ols.Option{
		ols.WithSolvePath(c.path),
		ols.WithBackend(c.backend),
		ols.WithPivot(c.pivot),
	}
}

// allConfigs enumerates every solver combination.
func allConfigs() []fitConfig {
	var out []fitConfig
	for _, p := range []ols.SolvePath{ols.SolveNormal, ols.SolveFused} {
		for _, b := range []ols.Backend{ols.BackendNative, ols.BackendGonum} {
			for _, pv := range []matrix.PivotStrategy{matrix.PivotPartial, matrix.PivotColumnOne} {
				out = append(out, fitConfig{path: p, backend: b, pivot: pv})
			}
		}
	}

	return out
}
