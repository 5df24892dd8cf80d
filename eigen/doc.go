// Package eigen decomposes Hermitian complex matrices into real eigenvalues
// and an orthonormal eigenvector basis.
//
// What & why:
//
//	Every Hermitian generator H factors as H = V·diag(λ)·V† with real λ and
//	unitary V. The evolve and entangle packages lean on this: exponentiating
//	eigenvalues gives exact unitary propagators, and the dominant eigenvector
//	of a marginal density matrix is the collapsed subsystem state.
//
// Algorithm:
//
//	Cyclic complex Jacobi. Each sweep walks the strict upper triangle in a
//	fixed (p,q) order and applies a phase-absorbed 2×2 rotation that zeroes
//	a[p,q] while keeping the working matrix Hermitian and the accumulated V
//	unitary. Sweeps repeat until the off-diagonal Frobenius norm drops below
//	the tolerance or the sweep budget is exhausted.
//
// Contract:
//
//	Failure to converge returns ErrNoConvergence and no partial results —
//	callers must never see a half-diagonalized basis. Eigenvalues are
//	returned in storage order (no sorting) with matching eigenvector
//	columns; the ordering is deterministic for a given input.
//
// Complexity: O(n³) per sweep; small generators (n ≤ 16) converge in a
// handful of sweeps.
package eigen
