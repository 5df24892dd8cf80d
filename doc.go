// Package qkit is a compact toolkit for dense complex linear algebra and
// quantum time evolution — the numeric core shared by small step-indexed
// simulations, extracted into one tested library.
//
// 🚀 What is qkit?
//
//	A deterministic, fail-loud numeric kernel that brings together:
//		• Checked complex scalars: polar construction, guarded division
//		• Dense complex vectors & matrices: products, Kronecker, commutators
//		• Hermitian eigendecomposition (complex Jacobi)
//		• Unitary evolution U = exp(-i·H·Δt/ħ): closed-form 2×2, Taylor, Padé
//		• Composite systems: Bell states, partial trace, pair splitting
//		• Operator constructors: Pauli, Dirac gamma, Fock-space ladders
//		• Periodic lattice arenas with snapshot-then-replace stepping
//
// ✨ Why choose qkit?
//
//   - Explicit contracts – dimension and domain violations return sentinel
//     errors; the kernel never silently substitutes NaN or partial results
//   - Deterministic – fixed loop orders, seeded randomness, documented
//     tie-breaks; same inputs, same bits
//   - Pure Go core – no cgo, no hidden dependencies in the kernel
//   - Composable – packages layer cleanly: cx → dense → eigen/evolve →
//     entangle/spinlat
//
// Under the hood, everything is organized into focused subpackages:
//
//	cx/       — checked complex-scalar helpers
//	dense/    — complex vector & matrix containers + linear algebra
//	eigen/    — Hermitian eigendecomposition
//	evolve/   — unitary time-evolution operators
//	entangle/ — tensor composition, partial trace, pair splitting
//	op/       — standard operator constructors (Pauli, gamma, ladders)
//	lattice/  — periodic field arenas, snapshot stepping
//	spinlat/  — spin-½ density-matrix lattice simulation
//
// The evolution loop every simulation shares:
//
//	build state → build generator H → U = exp(-iHΔt/ħ) → ρ' = U·ρ·U† → observe
//
// See cmd/qlattice for an end-to-end run with logging and CSV export.
package qkit
