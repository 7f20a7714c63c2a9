// SPDX-License-Identifier: MIT

package interval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linreg/matrix"
)

var (
	// ErrInvalidArgument reports a probability outside (0, 1), a
	// non-positive degrees-of-freedom count, or an alpha outside (0, 1).
	ErrInvalidArgument = errors.New("interval: invalid argument")

	// ErrNilModel is returned when no fitted model is supplied.
	ErrNilModel = errors.New("interval: nil model")

	// ErrDimensionMismatch re-exports matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

func intervalErrorf(tag string, err error) error {
	return fmt.Errorf("interval.%s: %w", tag, err)
}
