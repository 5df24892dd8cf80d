// Package entangle builds and dissects two-subsystem composite states.
//
// A pair of d-level subsystems lives in a d²-dimensional joint space. The
// package provides the standard constructors (Bell state, maximally
// entangled state, Kronecker composition, joint Hamiltonian h⊗I + I⊗h) and
// the reduction back to the subsystems: PartialTrace for the exact reduced
// density matrices, Collapse for projecting a density matrix onto its
// dominant eigenvector, and Split combining both to re-split an evolved
// pair into two pure states.
//
// All operations are pure; inputs are never mutated. Reduced densities are
// re-Hermitized before return so downstream eigendecompositions always see
// an exactly Hermitian matrix.
package entangle
