// Package eigen: sentinel error set. Tests check these via errors.Is; the
// shape/nil sentinels are shared with the dense package so callers match a
// single taxonomy.

package eigen

import "errors"

var (
	// ErrNotHermitian is returned when the input is not equal to its adjoint
	// within the configured tolerance. The Jacobi rotations assume
	// Hermiticity; running them on a general matrix would silently produce
	// garbage eigenpairs.
	ErrNotHermitian = errors.New("eigen: matrix is not hermitian within tolerance")

	// ErrNoConvergence is returned when the off-diagonal norm fails to reach
	// the tolerance within the sweep budget. No partial results accompany it.
	ErrNoConvergence = errors.New("eigen: decomposition failed to converge")
)
