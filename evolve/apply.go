// Package evolve: applying a propagator to states.

package evolve

import "github.com/velikhov/qkit/dense"

// Operation name constants for unified error wrapping.
const (
	opStep        = "Step"
	opStepDensity = "StepDensity"
)

// Step applies U to a state vector and renormalizes: ψ' = U·ψ/‖U·ψ‖.
// The renormalization absorbs the residual norm drift of the approximation
// order; for an exactly unitary U it is a no-op up to rounding.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrDimensionMismatch.
//   - dense.ErrZeroNorm when U annihilates ψ (only possible for a
//     non-unitary U; surfaced, never masked).
//
// Complexity: O(n²).
func Step(u *dense.Dense, psi *dense.Vector) (*dense.Vector, error) {
	next, err := dense.MatVec(u, psi)
	if err != nil {
		return nil, evolveErrorf(opStep, err)
	}
	next, err = dense.Normalize(next)
	if err != nil {
		return nil, evolveErrorf(opStep, err)
	}

	return next, nil
}

// StepDensity conjugates a density matrix: ρ' = U·ρ·U†, re-Hermitized to
// hold the Hermiticity invariant against floating-point drift. For unitary
// U the trace is preserved to rounding.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrNonSquare, dense.ErrDimensionMismatch.
//
// Complexity: O(n³).
func StepDensity(u, rho *dense.Dense) (*dense.Dense, error) {
	ur, err := dense.Mul(u, rho)
	if err != nil {
		return nil, evolveErrorf(opStepDensity, err)
	}
	adj, err := dense.ConjTranspose(u)
	if err != nil {
		return nil, evolveErrorf(opStepDensity, err)
	}
	next, err := dense.Mul(ur, adj)
	if err != nil {
		return nil, evolveErrorf(opStepDensity, err)
	}
	next, err = dense.Hermitize(next)
	if err != nil {
		return nil, evolveErrorf(opStepDensity, err)
	}

	return next, nil
}
