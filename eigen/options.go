// Package eigen: functional configuration for the Jacobi decomposition.
// Defaults are constants (single source of truth); WithX constructors panic
// only on nonsensical values (programmer error), never on data.

package eigen

import "math"

const (
	// DefaultTolerance is the off-diagonal Frobenius norm at which the
	// working matrix counts as diagonal. Also used for the Hermiticity
	// pre-check.
	DefaultTolerance = 1e-10

	// DefaultMaxSweeps bounds the number of full cyclic sweeps. Jacobi
	// converges quadratically; well-formed inputs finish in far fewer.
	DefaultMaxSweeps = 64
)

const (
	panicToleranceInvalid = "eigen: WithTolerance: tol must be finite, > 0"
	panicMaxSweepsInvalid = "eigen: WithMaxSweeps: sweeps must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol       float64 // > 0; DefaultTolerance
	maxSweeps int     // >= 1; DefaultMaxSweeps
}

// WithTolerance sets the convergence and Hermiticity tolerance.
// Panics with a stable message when tol is non-positive or non-finite.
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps sets the cyclic sweep budget.
// Panics with a stable message when sweeps < 1.
func WithMaxSweeps(sweeps int) Option {
	if sweeps < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
