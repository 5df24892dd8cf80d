// SPDX-License-Identifier: MIT

// Package dense offers dense complex vectors and matrices plus the
// linear-algebra kernels every simulation in this kit is built on.
//
// The dense package provides:
//
//   - Vector / Dense containers over complex128 with flat, row-major
//     storage (offset = i*cols + j) and non-panicking At/Set accessors.
//   - Elementwise and product kernels: Add, Sub, Scale, Mul, MatVec,
//     Transpose, ConjTranspose, Commutator, Kronecker products.
//   - Inner products, norms and normalization for state vectors.
//   - Density-matrix helpers: Trace, Expectation, Hermitize, IsHermitian.
//   - Complex LU decomposition and Inverse (Doolittle, non-pivoting).
//
// Every operation is a pure function: operands are never mutated and a
// fresh result is allocated. Shape violations return ErrDimensionMismatch,
// bad indices return ErrOutOfRange, and numerically impossible requests
// (zero-norm normalization, singular inversion) return their own sentinels —
// the package never substitutes NaN or a partial result.
//
// Dense matrices are best for the small, fully-populated operators this kit
// works with (2×2 generators up to modest joint systems), where O(r·c)
// memory and direct offset math beat any sparse representation.
//
// See the examples in this package for usage patterns.
package dense
