// SPDX-License-Identifier: MIT
// Package dense: canonical linear-algebra kernels over Dense matrices.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches. Operands are never mutated; every kernel
// allocates a fresh result.
//
// Notes:
//   - Loop orders are fixed (i→k→j for products) for determinism and cache
//     friendliness over the flat row-major buffers.
//   - Kernels return plain sentinels wrapped once via opErrorf at the facade.

package dense

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opScale      = "Scale"
	opMul        = "Mul"
	opMatVec     = "MatVec"
	opTranspose  = "Transpose"
	opConjTrans  = "ConjTranspose"
	opCommutator = "Commutator"
	opKron       = "Kron"
	opInner      = "Inner"
	opNorm       = "Norm"
	opNormalize  = "Normalize"
	opTrace      = "Trace"
	opExpect     = "Expectation"
	opHermitize  = "Hermitize"
	opLU         = "LU"
	opInverse    = "Inverse"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w. Keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// conj is the scalar conjugate used by the kernels (kept local so the hot
// loops never leave the package).
func conj(v complex128) complex128 { return complex(real(v), -imag(v)) }

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. Internal helper for Add/Sub sharing
// validation, allocation and the single flat loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with the caller's tag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign complex128, tag string) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(tag, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, opErrorf(tag, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, opErrorf(tag, err)
	}
	// Single flat walk over both buffers; deterministic order 0..n-1.
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add computes a + b into a fresh matrix. See addSub for the contract.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes a - b into a fresh matrix. See addSub for the contract.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale computes alpha·m into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opScale, ErrNilMatrix)
	}
	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, opErrorf(opScale, err)
	}
	for i := range m.data {
		out.data[i] = alpha * m.data[i]
	}

	return out, nil
}

// Mul computes the matrix product a·b into a fresh matrix.
//
// Implementation:
//   - Stage 1: validate operands and inner-dimension agreement
//     (a.Cols == b.Rows).
//   - Stage 2: triple loop in fixed i→k→j order over the flat buffers,
//     skipping zero a[i,k] terms (frequent in sparse generators and
//     Kronecker factors).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r_a·c_a·c_b), Space O(r_a·c_b).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}
	var i, k, j int
	var aik complex128
	for i = 0; i < a.r; i++ {
		aBase := i * a.c
		oBase := i * b.c
		for k = 0; k < a.c; k++ {
			aik = a.data[aBase+k]
			if aik == 0 {
				continue // zero row term contributes nothing
			}
			bBase := k * b.c
			for j = 0; j < b.c; j++ {
				out.data[oBase+j] += aik * b.data[bBase+j]
			}
		}
	}

	return out, nil
}

// MatVec computes the matrix-vector product m·v into a fresh vector.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m.Cols must equal v.Dim).
//
// Complexity:
//   - Time O(r·c), Space O(r).
func MatVec(m *Dense, v *Vector) (*Vector, error) {
	if m == nil || v == nil {
		return nil, opErrorf(opMatVec, ErrNilMatrix)
	}
	if m.c != len(v.data) {
		return nil, opErrorf(opMatVec, ErrDimensionMismatch)
	}
	out := make([]complex128, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		var sum complex128
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * v.data[j]
		}
		out[i] = sum
	}

	return &Vector{data: out}, nil
}

// Transpose returns mᵀ into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c), Space O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opTranspose, ErrNilMatrix)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// ConjTranspose returns m† (the adjoint) into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r·c), Space O(r·c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opConjTrans, ErrNilMatrix)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, opErrorf(opConjTrans, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = conj(m.data[base+j])
		}
	}

	return out, nil
}

// Commutator computes [a,b] = a·b - b·a for square matrices of equal shape.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Commutator(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opCommutator, ErrNilMatrix)
	}
	if !a.IsSquare() || !b.IsSquare() {
		return nil, opErrorf(opCommutator, ErrNonSquare)
	}
	if a.r != b.r {
		return nil, opErrorf(opCommutator, ErrDimensionMismatch)
	}
	ab, err := Mul(a, b)
	if err != nil {
		return nil, opErrorf(opCommutator, err)
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, opErrorf(opCommutator, err)
	}

	return Sub(ab, ba)
}

// Kron computes the Kronecker (tensor) product a ⊗ b into a fresh
// (r_a·r_b)×(c_a·c_b) matrix with element
// out[i·r_b+k, j·c_b+l] = a[i,j]·b[k,l].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r_a·c_a·r_b·c_b), Space O(r_a·r_b·c_a·c_b).
func Kron(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opKron, ErrNilMatrix)
	}
	out, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, opErrorf(opKron, err)
	}
	oc := out.c
	var i, j, k, l int
	var aij complex128
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			aij = a.data[i*a.c+j]
			if aij == 0 {
				continue // whole block stays zero
			}
			for k = 0; k < b.r; k++ {
				oBase := (i*b.r+k)*oc + j*b.c
				bBase := k * b.c
				for l = 0; l < b.c; l++ {
					out.data[oBase+l] = aij * b.data[bBase+l]
				}
			}
		}
	}

	return out, nil
}
