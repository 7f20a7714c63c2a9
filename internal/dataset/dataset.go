// SPDX-License-Identifier: MIT

// Package dataset loads regression inputs from YAML files.
//
//	name: heights
//	alpha: 0.05
//	predictors: [age]
//	x: [[1], [2], [3], [4]]
//	y: [2, 4, 5, 8]
//	predict: [[5]]
//
// x may be omitted for an intercept-only model; alpha defaults to 0.05.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linreg/matrix"
)

// DefaultAlpha is used when the file does not set alpha.
const DefaultAlpha = 0.05

// InterceptTerm names the intercept coefficient.
const InterceptTerm = "(intercept)"

// ErrInvalidDataset reports a structurally inconsistent dataset file.
var ErrInvalidDataset = errors.New("dataset: invalid dataset")

// Dataset is one regression problem.
type Dataset struct {
	Name       string      `yaml:"name"`
	Alpha      float64     `yaml:"alpha"`
	Predictors []string    `yaml:"predictors"`
	X          [][]float64 `yaml:"x"`
	Y          []float64   `yaml:"y"`
	Predict    [][]float64 `yaml:"predict"`
}

// Load reads and validates the dataset at path.
func Load(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return Parse(b)
}

// Parse decodes and validates a YAML document.
func Parse(b []byte) (*Dataset, error) {
	// Unmarshal leaves absent keys alone, so an explicit alpha: 0 survives
	// and fails Validate.
	d := Dataset{Alpha: DefaultAlpha}
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("unmarshal dataset: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDataset, fmt.Sprintf(format, args...))
}

// K returns the number of predictors (0 for intercept-only).
func (d *Dataset) K() int {
	if len(d.X) == 0 {
		return len(d.Predictors)
	}

	return len(d.X[0])
}

// Validate checks shapes and alpha. Numeric problems (too few rows,
// collinearity) are left to the fit.
func (d *Dataset) Validate() error {
	if len(d.Y) == 0 {
		return invalid("y is empty")
	}
	if len(d.X) != 0 && len(d.X) != len(d.Y) {
		return invalid("x has %d rows, y has %d values", len(d.X), len(d.Y))
	}
	k := d.K()
	for i, row := range d.X {
		if len(row) != k {
			return invalid("x row %d has %d values, want %d", i, len(row), k)
		}
	}
	if len(d.Predictors) != 0 && len(d.Predictors) != k {
		return invalid("%d predictor names for %d columns", len(d.Predictors), k)
	}
	if len(d.X) == 0 && k != 0 {
		return invalid("predictors named but x is empty")
	}
	for i, row := range d.Predict {
		if len(row) != k {
			return invalid("predict row %d has %d values, want %d", i, len(row), k)
		}
	}
	if !(d.Alpha > 0 && d.Alpha < 1) {
		return invalid("alpha %v not in (0,1)", d.Alpha)
	}

	return nil
}

// Matrix returns X as an n×k *matrix.Dense (n×0 when x is omitted).
func (d *Dataset) Matrix() (*matrix.Dense, error) {
	if len(d.X) == 0 {
		return matrix.NewDenseFrom(make([][]float64, len(d.Y)))
	}

	return matrix.NewDenseFrom(d.X)
}

// Terms returns coefficient labels, intercept first. Unnamed predictors are
// labelled x1..xk.
func (d *Dataset) Terms() []string {
	k := d.K()
	terms := make([]string, 0, k+1)
	terms = append(terms, InterceptTerm)
	for j := 0; j < k; j++ {
		if j < len(d.Predictors) && d.Predictors[j] != "" {
			terms = append(terms, d.Predictors[j])
		} else {
			terms = append(terms, fmt.Sprintf("x%d", j+1))
		}
	}

	return terms
}
