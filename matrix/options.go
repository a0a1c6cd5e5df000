// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and fuzzy
// comparisons. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFuzzyRelTol is the relative tolerance used by FuzzyEquals*.
	DefaultFuzzyRelTol = 1e-6

	// DefaultFuzzyAbsTol is the absolute tolerance used by FuzzyEquals*.
	DefaultFuzzyAbsTol = 1e-6

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTolerancesInvalid = "matrix: WithTolerances: tolr and tola must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tolr           float64 // DefaultFuzzyRelTol
	tola           float64 // DefaultFuzzyAbsTol
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithTolerances sets the relative and absolute tolerances used by fuzzy comparisons.
// Implementation:
//   - Stage 1: validate both values are finite and ≥ 0.
//   - Stage 2: return a setter that writes them into Options.
//
// Errors:
//   - Panics with a stable message when a tolerance is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithTolerances(tolr, tola float64) Option {
	if isNonFinite(tolr) || isNonFinite(tola) || tolr < 0 || tola < 0 {
		panic(panicTolerancesInvalid)
	}

	return func(o *Options) {
		o.tolr = tolr
		o.tola = tola
	}
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Affects newly created matrices only; existing matrices keep their policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		tolr:           DefaultFuzzyRelTol,
		tola:           DefaultFuzzyAbsTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over defaults in order; later options win.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
