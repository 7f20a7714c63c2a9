// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Column returns a copy of column j of m.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(r).
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Column", err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf("Column", ErrOutOfRange)
	}
	out := make([]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := range out {
			out[i] = d.data[i*d.c+j]
		}

		return out, nil
	}
	for i := range out {
		v, err := m.At(i, j)
		if err != nil {
			return nil, matrixErrorf("Column", err)
		}
		out[i] = v
	}

	return out, nil
}

// Diag returns a copy of the main diagonal of square m.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Diag(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Diag", err)
	}
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, i)
		if err != nil {
			return nil, matrixErrorf("Diag", err)
		}
		out[i] = v
	}

	return out, nil
}

// AllClose reports whether |a(i,j) − b(i,j)| ≤ atol + rtol·|b(i,j)| for every cell.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
