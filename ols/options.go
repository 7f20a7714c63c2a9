// SPDX-License-Identifier: MIT

package ols

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/linreg/matrix"
)

// SolvePath selects how the normal equations are assembled.
type SolvePath int

const (
	// SolveNormal computes Dᵀ explicitly, then (DᵀD)⁻¹, then ((DᵀD)⁻¹Dᵀ)·y.
	SolveNormal SolvePath = iota

	// SolveFused forms DᵀD and Dᵀy from column inner products of D and
	// returns (DᵀD)⁻¹·(Dᵀy). Dᵀ is never allocated.
	SolveFused
)

// String returns the flag spelling used by the CLI.
func (s SolvePath) String() string {
	switch s {
	case SolveNormal:
		return "normal"
	case SolveFused:
		return "fused"
	default:
		return fmt.Sprintf("SolvePath(%d)", int(s))
	}
}

// ParseSolvePath maps "normal" / "fused" to a SolvePath.
func ParseSolvePath(s string) (SolvePath, error) {
	switch s {
	case "normal", "":
		return SolveNormal, nil
	case "fused":
		return SolveFused, nil
	default:
		return 0, fmt.Errorf("ols: unknown solve path %q", s)
	}
}

// Backend selects the arithmetic engine behind Fit.
type Backend int

const (
	// BackendNative uses package matrix (Gauss-Jordan inverse).
	BackendNative Backend = iota

	// BackendGonum uses gonum.org/v1/gonum/mat (LU-based inverse).
	BackendGonum
)

// String returns the flag spelling used by the CLI.
func (b Backend) String() string {
	switch b {
	case BackendNative:
		return "native"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend maps "native" / "gonum" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "native", "":
		return BackendNative, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return 0, fmt.Errorf("ols: unknown backend %q", s)
	}
}

// Defaults.
const (
	DefaultSolvePath = SolveNormal
	DefaultBackend   = BackendNative
)

const (
	panicSolvePathInvalid = "ols: WithSolvePath: unknown solve path"
	panicBackendInvalid   = "ols: WithBackend: unknown backend"
	panicLoggerNil        = "ols: WithLogger: nil logger"
)

// Option configures Fit.
type Option func(*Options)

// Options is the resolved Fit configuration.
type Options struct {
	path    SolvePath
	backend Backend
	inverse []matrix.Option
	logger  *slog.Logger
}

// WithSolvePath selects SolveNormal or SolveFused. Panics on unknown values.
func WithSolvePath(p SolvePath) Option {
	if p != SolveNormal && p != SolveFused {
		panic(panicSolvePathInvalid)
	}

	return func(o *Options) { o.path = p }
}

// WithBackend selects BackendNative or BackendGonum. Panics on unknown values.
func WithBackend(b Backend) Option {
	if b != BackendNative && b != BackendGonum {
		panic(panicBackendInvalid)
	}

	return func(o *Options) { o.backend = b }
}

// WithPivot forwards the row-exchange strategy to matrix.Inverse.
// Ignored by BackendGonum.
func WithPivot(p matrix.PivotStrategy) Option {
	mo := matrix.WithPivot(p)

	return func(o *Options) { o.inverse = append(o.inverse, mo) }
}

// WithSingularTolerance forwards the pivot tolerance to matrix.Inverse.
// Ignored by BackendGonum.
func WithSingularTolerance(tol float64) Option {
	mo := matrix.WithSingularTolerance(tol)

	return func(o *Options) { o.inverse = append(o.inverse, mo) }
}

// WithRelativeSingularTolerance overrides the scaled pivot tolerance passed to
// matrix.Inverse. The default is p·matrix.Epsilon, so near-singular DᵀD from
// collinear predictors fails with ErrSingular. Zero rejects exact zero pivots
// only. Ignored by BackendGonum.
func WithRelativeSingularTolerance(rtol float64) Option {
	mo := matrix.WithRelativeSingularTolerance(rtol)

	return func(o *Options) { o.inverse = append(o.inverse, mo) }
}

// WithLogger sets the logger that receives one debug record per fit.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// Path reports the effective solve path.
func (o Options) Path() SolvePath { return o.path }

// Backend reports the effective backend.
func (o Options) Backend() Backend { return o.backend }

// inverseOptions returns the matrix.Inverse options for a p-column design.
// The p·ε scaled tolerance goes first so caller options override it.
func (o Options) inverseOptions(p int) []matrix.Option {
	mo := make([]matrix.Option, 0, len(o.inverse)+1)
	mo = append(mo, matrix.WithRelativeSingularTolerance(float64(p)*matrix.Epsilon))

	return append(mo, o.inverse...)
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func gatherOptions(user ...Option) Options {
	o := Options{
		path:    DefaultSolvePath,
		backend: DefaultBackend,
		logger:  discardLogger,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
