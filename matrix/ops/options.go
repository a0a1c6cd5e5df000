// SPDX-License-Identifier: MIT

// Package ops: functional configuration for the iterative and rank-revealing
// kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
package ops

import (
	"math"
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol scales the initial residual norm in the Newton stopping rule.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is added to the scaled initial residual norm.
	DefaultAbsTol = 1e-9

	// DefaultMaxIterations bounds the number of accepted Newton steps.
	DefaultMaxIterations = 20

	// DefaultMaxLineSearch bounds the number of step halvings per Newton step.
	DefaultMaxLineSearch = 5

	// DefaultSufficientDecrease is c in the acceptance test ‖R‖ ≤ (1 − c)·‖R_prev‖.
	DefaultSufficientDecrease = 1e-4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTolerances   = "ops: WithTolerances: tolr and tola must be finite, non-negative"
	panicMaxIter      = "ops: WithMaxIterations: n must be >= 0"
	panicMaxLS        = "ops: WithMaxLineSearch: n must be >= 0"
	panicDecrease     = "ops: WithSufficientDecrease: c must be in [0, 1)"
	panicRankThresh   = "ops: WithRankThreshold: t must be finite and > 0"
	panicNilLogger    = "ops: WithLogger: nil logger"
	panicWorkersCount = "ops: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Later options win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tolr          float64     // DefaultRelTol
	tola          float64     // DefaultAbsTol
	maxIter       int         // DefaultMaxIterations
	maxLS         int         // DefaultMaxLineSearch
	decrease      float64     // DefaultSufficientDecrease
	rankThreshold float64     // 0 selects ε·min(rows, cols)
	logger        *zap.Logger // zap.NewNop()
	workers       int         // runtime.GOMAXPROCS(0)
}

// WithTolerances sets the Newton stopping rule ‖R‖ ≤ tolr·‖R₀‖ + tola.
// Panics when either tolerance is negative, NaN or Inf.
func WithTolerances(tolr, tola float64) Option {
	if !finiteNonNegative(tolr) || !finiteNonNegative(tola) {
		panic(panicTolerances)
	}

	return func(o *Options) {
		o.tolr = tolr
		o.tola = tola
	}
}

// WithMaxIterations bounds the number of accepted Newton steps.
// Zero is allowed: the solver then only checks the initial guess.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIter)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithMaxLineSearch bounds the number of step halvings after a rejected full step.
// Zero disables backtracking: a full step without sufficient decrease fails.
func WithMaxLineSearch(n int) Option {
	if n < 0 {
		panic(panicMaxLS)
	}

	return func(o *Options) { o.maxLS = n }
}

// WithSufficientDecrease sets c in the acceptance test ‖R‖ ≤ (1 − c)·‖R_prev‖.
func WithSufficientDecrease(c float64) Option {
	if math.IsNaN(c) || c < 0 || c >= 1 {
		panic(panicDecrease)
	}

	return func(o *Options) { o.decrease = c }
}

// WithRankThreshold overrides the relative pivot threshold of the rank-revealing QR:
// a diagonal entry |R_kk| counts toward the rank when |R_kk| > t·max|R_ii|.
// Default (unset): ε·min(rows, cols).
func WithRankThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		panic(panicRankThresh)
	}

	return func(o *Options) { o.rankThreshold = t }
}

// WithLogger injects a structured logger for solver diagnostics.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithWorkers bounds the number of concurrent square roots in SqrtBatch.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersCount)
	}

	return func(o *Options) { o.workers = n }
}

func defaultOptions() Options {
	return Options{
		tolr:     DefaultRelTol,
		tola:     DefaultAbsTol,
		maxIter:  DefaultMaxIterations,
		maxLS:    DefaultMaxLineSearch,
		decrease: DefaultSufficientDecrease,
		logger:   zap.NewNop(),
		workers:  runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies opts over defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func finiteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
