// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the inversion kernel and
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"math"
)

// PivotStrategy selects how Inverse reorders rows before/while eliminating.
type PivotStrategy int

const (
	// PivotPartial swaps in, for every pivot column i, the row r ≥ i holding
	// the largest |work(r,i)|. This is textbook partial pivoting.
	PivotPartial PivotStrategy = iota

	// PivotColumnOne reproduces the legacy heuristic: a single bottom-up pass
	// that swaps rows i and i−1 whenever work(i−1,1) < work(i,1), comparing
	// column 1 only, followed by elimination without further row exchanges.
	// It fails on inputs that partial pivoting handles (e.g. a zero leading
	// entry that the column-1 pass does not move away).
	PivotColumnOne
)

// String returns the flag spelling used by the CLI.
func (p PivotStrategy) String() string {
	switch p {
	case PivotPartial:
		return "partial"
	case PivotColumnOne:
		return "column-one"
	default:
		return fmt.Sprintf("PivotStrategy(%d)", int(p))
	}
}

// ParsePivotStrategy maps "partial" / "column-one" to a PivotStrategy.
func ParsePivotStrategy(s string) (PivotStrategy, error) {
	switch s {
	case "partial", "":
		return PivotPartial, nil
	case "column-one":
		return PivotColumnOne, nil
	default:
		return 0, fmt.Errorf("matrix: unknown pivot strategy %q", s)
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on Inverse input.
	DefaultValidateNaNInf = true

	// DefaultPivot is the row-exchange strategy used by Inverse.
	DefaultPivot = PivotPartial

	// DefaultSingularTolerance is the pivot magnitude at or below which Inverse
	// reports ErrSingular. Zero means only an exact zero pivot is rejected.
	DefaultSingularTolerance = 0.0

	// DefaultRelativeSingularTolerance scales the singular threshold by the
	// largest |A(i,j)|. Zero disables the scaled check.
	DefaultRelativeSingularTolerance = 0.0
)

// Epsilon is the float64 machine epsilon, 2⁻⁵².
const Epsilon = 0x1p-52

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularTolInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
	panicRelativeTolInvalid = "matrix: WithRelativeSingularTolerance: rtol must be finite, non-negative"
	panicPivotInvalid       = "matrix: WithPivot: unknown pivot strategy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivot          PivotStrategy // DefaultPivot
	singularTol    float64       // DefaultSingularTolerance, >= 0
	relativeTol    float64       // DefaultRelativeSingularTolerance, >= 0
	validateNaNInf bool          // DefaultValidateNaNInf
}

// WithPivot selects the row-exchange strategy used by Inverse.
// Panics on an unknown strategy (programmer error).
func WithPivot(p PivotStrategy) Option {
	if p != PivotPartial && p != PivotColumnOne {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// WithSingularTolerance sets the pivot magnitude at or below which Inverse
// fails with ErrSingular.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - Pivots are compared in absolute value, unscaled. A tolerance suited to
//     one data scale is not suited to another; keep it 0 unless the input
//     scale is known.
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithRelativeSingularTolerance makes Inverse fail with ErrSingular when
// |pivot| ≤ rtol·max|A(i,j)|. Combined with WithSingularTolerance, the larger
// of the two thresholds applies.
//
// Notes:
//   - rtol = n·Epsilon rejects pivots that are rounding noise relative to the
//     input scale, which an exact-zero test misses on collinear data.
func WithRelativeSingularTolerance(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 {
		panic(panicRelativeTolInvalid)
	}

	return func(o *Options) { o.relativeTol = rtol }
}

// WithNoValidateNaNInf lets Inverse accept NaN/Inf input; they propagate
// through the arithmetic instead of failing fast.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults. Exposed so that
// callers (and tests) can inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Pivot reports the effective pivot strategy.
func (o Options) Pivot() PivotStrategy { return o.pivot }

// SingularTolerance reports the effective singular tolerance.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// RelativeSingularTolerance reports the effective scaled tolerance.
func (o Options) RelativeSingularTolerance() float64 { return o.relativeTol }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		pivot:          DefaultPivot,
		singularTol:    DefaultSingularTolerance,
		relativeTol:    DefaultRelativeSingularTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided setters on top of defaults,
// last-writer-wins. Nil setters are skipped.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
