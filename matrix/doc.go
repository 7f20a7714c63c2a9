// Package matrix provides the dense linear-algebra kernels behind ordinary
// least squares: a row-major Dense type, matrix multiplication, transposed
// products and Gauss-Jordan inversion.
//
// The matrix package provides:
//
//   - Matrix, a small interface (Rows, Cols, At, Set, Clone) that every
//     kernel accepts, and Dense, its flat row-major implementation.
//   - Mul / MulTA / Transpose / MatVec / Dot / QuadForm with fixed summation
//     order, so repeated runs give identical results.
//   - Inverse, Gauss-Jordan on the augmented [A | I] with a selectable
//     PivotStrategy (textbook partial pivoting, or the legacy column-1
//     reordering pass for parity with older results).
//   - Sentinel errors (ErrDimensionMismatch, ErrSingular, ...) matched via errors.Is.
//
// Only what least squares needs lives here: no eigen-decomposition, no SVD,
// no sparse storage.
//
// See the examples in this package and in ols for usage patterns.
package matrix
