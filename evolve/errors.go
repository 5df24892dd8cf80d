// Package evolve: sentinel error set. Shape sentinels are shared with the
// dense package; convergence failures surface eigen.ErrNoConvergence
// unchanged so callers match one taxonomy end to end.

package evolve

import "errors"

// ErrNumerical is returned when an exponential strategy fails numerically,
// in practice when the Padé denominator turns out singular. The step must be
// retried with a smaller Δt or a higher order; the kernel never papers over it.
var ErrNumerical = errors.New("evolve: numerical failure in matrix exponential")
