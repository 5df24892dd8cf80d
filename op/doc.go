// Package op constructs the standard operators the simulations are built
// from: the 2×2 Pauli matrices, the 4×4 Dirac gamma matrices in the Dirac
// basis, and truncated Fock-space ladder operators.
//
// Every constructor returns a fresh matrix; callers may mutate the result
// freely without poisoning later calls. Constructors whose inputs can be
// invalid (a gamma index, a Fock truncation level) return an error; the
// fixed 2×2 constants cannot fail and return the matrix alone.
package op
