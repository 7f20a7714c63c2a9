// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels least-squares fitting is built
// on: matrix multiplication, transposed products, transpose, matrix-vector
// products and Gauss-Jordan inversion. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Reductions run in a fixed index order, identical between the *Dense
//     fast path and the interface fallback, so runs are reproducible.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot products and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulTA     = "MulTA"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opMatVec    = "MatVec"
	opDot       = "Dot"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Behavior highlights:
//   - Both paths add A(i,t)·B(t,j) for t = 0..k−1 in ascending order onto a
//     zero accumulator (same summation order on either path).
//   - No zero-skipping: NaN/Inf in B propagate exactly as the plain sum would.
//
// Inputs:
//   - A: left matrix with shape (m × k).
//   - B: right matrix with shape (k × n).
//
// Returns:
//   - Matrix: new Dense C with shape (m × n).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int // loop iterators
		av, bv  float64
		current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulTA computes C = Aᵀ × B without materialising Aᵀ.
// C(i,j) = Σ_t A(t,i)·B(t,j), t ascending, which is the exact summation
// order Mul(Transpose(A), B) uses.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Rows != B.Rows).
//
// Complexity:
//   - Time O(k*m*n), Space O(m*n) for A (k×m) and B (k×n).
func MulTA(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulTA, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulTA, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opMulTA, ErrDimensionMismatch)
	}

	inner, m, n := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseZeroOK(m, n)
	if err != nil {
		return nil, matrixErrorf(opMulTA, err)
	}

	var t, i, j int
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// Walk t outermost so both operands are read along rows.
			var av float64
			for t = 0; t < inner; t++ {
				for i = 0; i < m; i++ {
					av = da.data[t*m+i]
					for j = 0; j < n; j++ {
						res.data[i*n+j] += av * db.data[t*n+j]
					}
				}
			}

			return res, nil
		}
	}

	var av, bv, current float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			current = ZeroSum
			for t = 0; t < inner; t++ {
				if av, err = a.At(t, i); err != nil {
					return nil, matrixErrorf(opMulTA, err)
				}
				if bv, err = b.At(t, j); err != nil {
					return nil, matrixErrorf(opMulTA, err)
				}
				current += av * bv
			}
			res.data[i*n+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Dot returns Σ a[i]·b[i] accumulated in ascending index order.
// Errors: ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	acc := ZeroSum
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc, nil
}

// QuadForm returns xᵀ·A·x for square A and len(x) == A.Rows().
// The inner products are taken row by row: t_i = Σ_j A(i,j)·x[j], then
// Σ_i x[i]·t_i.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n²).
func QuadForm(a Matrix, x []float64) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf("QuadForm", err)
	}
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf("QuadForm", err)
	}

	return Dot(x, ax)
}

// Inverse computes A⁻¹ by Gauss-Jordan elimination on the augmented [A | I].
// Implementation:
//   - Stage 1: Validate A (not nil, square, finite unless disabled).
//   - Stage 2: Build the n×2n work buffer: A on the left, I on the right.
//   - Stage 3: Row exchanges per PivotStrategy:
//     PivotColumnOne runs one bottom-up pass up front (i = n−1..1, swap rows
//     i−1 and i when work(i−1,1) < work(i,1)); PivotPartial picks the
//     largest |work(r,i)|, r ≥ i, before eliminating column i.
//   - Stage 4: Elimination. For each pivot row i and every row j ≠ i:
//     row_j −= row_i · (work(j,i)/work(i,i)).
//   - Stage 5: Normalisation. Divide each row i by work(i,i).
//   - Stage 6: Copy out the right half.
//
// Behavior highlights:
//   - |pivot| ≤ max(tol, rtol·max|A|) → ErrSingular. tol comes from
//     WithSingularTolerance (default 0, exact zero), rtol from
//     WithRelativeSingularTolerance (default 0, off).
//   - The caller's matrix is read once into the work buffer and never touched again.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithPivot, WithSingularTolerance, WithRelativeSingularTolerance,
//     WithNoValidateNaNInf.
//
// Returns:
//   - Matrix: new Dense n×n inverse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf, ErrSingular.
//
// Determinism:
//   - Fixed pivot order and row traversal; ties in PivotPartial keep the lowest row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - The column-1 heuristic exists for bit-for-bit parity with the legacy
//     routine. For n == 1 there is no column 1 and the pass is a no-op.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}
	n := m.Rows()
	if n == 0 {
		return nil, matrixErrorf(opInverse, ErrInvalidDimensions)
	}

	// Stage 2: augmented work buffer, row-major with stride 2n.
	w := 2 * n
	work := make([]float64, n*w)
	if err := loadAugmented(m, work, n); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var i, j, k int
	var pivot, factor float64

	// Singular threshold: max(tol, rtol·max|A|).
	threshold := o.singularTol
	if o.relativeTol > 0 {
		maxAbs := 0.0
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if a := math.Abs(work[i*w+j]); a > maxAbs {
					maxAbs = a
				}
			}
		}
		if scaled := o.relativeTol * maxAbs; scaled > threshold {
			threshold = scaled
		}
	}

	// Stage 3a: legacy up-front reordering.
	if o.pivot == PivotColumnOne && n > 1 {
		for i = n - 1; i > 0; i-- {
			if work[(i-1)*w+1] < work[i*w+1] {
				swapRows(work, i-1, i, w)
			}
		}
	}

	// Stage 4: elimination.
	for i = 0; i < n; i++ {
		if o.pivot == PivotPartial {
			// Stage 3b: choose the largest remaining entry in column i.
			best, bestAbs := i, math.Abs(work[i*w+i])
			for k = i + 1; k < n; k++ {
				if a := math.Abs(work[k*w+i]); a > bestAbs {
					best, bestAbs = k, a
				}
			}
			if best != i {
				swapRows(work, best, i, w)
			}
		}

		pivot = work[i*w+i]
		if math.Abs(pivot) <= threshold {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			factor = work[j*w+i] / pivot
			for k = 0; k < w; k++ {
				work[j*w+k] -= work[i*w+k] * factor
			}
		}
	}

	// Stage 5: normalisation.
	for i = 0; i < n; i++ {
		pivot = work[i*w+i]
		for k = 0; k < w; k++ {
			work[i*w+k] /= pivot
		}
	}

	// Stage 6: right half.
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], work[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// loadAugmented writes [m | I] into work (stride 2n).
func loadAugmented(m Matrix, work []float64, n int) error {
	w := 2 * n
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			copy(work[i*w:i*w+n], d.data[i*n:(i+1)*n])
			work[i*w+n+i] = 1
		}

		return nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			work[i*w+j] = v
		}
		work[i*w+n+i] = 1
	}

	return nil
}

// swapRows exchanges rows a and b of a row-major buffer with the given stride.
func swapRows(buf []float64, a, b, stride int) {
	ra := buf[a*stride : (a+1)*stride]
	rb := buf[b*stride : (b+1)*stride]
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}
}
