// SPDX-License-Identifier: MIT

// Package dense - Vector container & state-vector kernels.
//
// Purpose:
//   - Fixed-dimension complex vector with bounds-checked accessors.
//   - State-vector operations: Add/Sub/Scale, inner product, norm,
//     normalization, Kronecker composition.
//
// The norm convention follows the physics usage throughout the kit:
// ‖v‖ = sqrt(re(⟨v,v⟩)), where ⟨a,b⟩ = Σ conj(a_i)·b_i conjugates the
// first argument.

package dense

import (
	"fmt"
	"math"
	"strings"
)

// Vector is a fixed-dimension complex vector. The dimension is set at
// construction and never changes; operations between vectors require equal
// dimension (mismatch is an error, not undefined truncation).
type Vector struct {
	data []complex128
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// NewVector creates a zero vector of dimension n.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]complex128, n)}, nil
}

// VectorOf builds a vector from explicit components (deep copy).
//
// Errors:
//   - ErrInvalidDimensions when no components are given.
//   - ErrNaNInf when a component is not finite.
//
// Complexity:
//   - Time O(n), Space O(n).
func VectorOf(vals ...complex128) (*Vector, error) {
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	for i, v := range vals {
		if !isFinite(v) {
			return nil, fmt.Errorf("Vector[%d]: %w", i, ErrNaNInf)
		}
	}
	cp := make([]complex128, len(vals))
	copy(cp, vals)

	return &Vector{data: cp}, nil
}

// Dim returns the dimension. Complexity: O(1).
func (v *Vector) Dim() int { return len(v.data) }

// At returns component i or ErrOutOfRange. Never panics.
// Complexity: O(1).
func (v *Vector) At(i int) (complex128, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores val at component i or returns ErrOutOfRange / ErrNaNInf.
// Complexity: O(1).
func (v *Vector) Set(i int, val complex128) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	if !isFinite(val) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrNaNInf)
	}
	v.data[i] = val

	return nil
}

// Clone returns an independent deep copy. Complexity: O(n).
func (v *Vector) Clone() *Vector {
	cp := make([]complex128, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// String renders the components as a single bracketed row.
// Complexity: O(n) time and formatting space.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(fmtRowOpen)
	for i, c := range v.data {
		b.WriteString(formatScalar(c))
		if i+1 < len(v.data) {
			b.WriteString(fmtSep)
		}
	}
	b.WriteString("]")

	return b.String()
}

// AddV computes a + b into a fresh vector.
//
// Errors:
//   - ErrNilMatrix when an operand is nil.
//   - ErrDimensionMismatch when dimensions differ.
//
// Complexity:
//   - Time O(n), Space O(n).
func AddV(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opAdd, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return nil, opErrorf(opAdd, ErrDimensionMismatch)
	}
	out := make([]complex128, len(a.data))
	for i := range a.data {
		out[i] = a.data[i] + b.data[i]
	}

	return &Vector{data: out}, nil
}

// SubV computes a - b into a fresh vector. Same contract as AddV.
// Complexity: O(n).
func SubV(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opSub, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return nil, opErrorf(opSub, ErrDimensionMismatch)
	}
	out := make([]complex128, len(a.data))
	for i := range a.data {
		out[i] = a.data[i] - b.data[i]
	}

	return &Vector{data: out}, nil
}

// ScaleV computes alpha·v into a fresh vector.
//
// Errors:
//   - ErrNilMatrix when v is nil.
//
// Complexity:
//   - Time O(n), Space O(n).
func ScaleV(v *Vector, alpha complex128) (*Vector, error) {
	if v == nil {
		return nil, opErrorf(opScale, ErrNilMatrix)
	}
	out := make([]complex128, len(v.data))
	for i := range v.data {
		out[i] = alpha * v.data[i]
	}

	return &Vector{data: out}, nil
}

// Inner computes ⟨a,b⟩ = Σ conj(a_i)·b_i. The first argument is conjugated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n), Space O(1).
func Inner(a, b *Vector) (complex128, error) {
	if a == nil || b == nil {
		return 0, opErrorf(opInner, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return 0, opErrorf(opInner, ErrDimensionMismatch)
	}
	var sum complex128
	for i := range a.data {
		sum += conj(a.data[i]) * b.data[i]
	}

	return sum, nil
}

// Norm returns ‖v‖ = sqrt(re(⟨v,v⟩)). Total for a constructed vector:
// ⟨v,v⟩ is real and non-negative by construction.
// Complexity: O(n).
func Norm(v *Vector) (float64, error) {
	if v == nil {
		return 0, opErrorf(opNorm, ErrNilMatrix)
	}
	var sum float64
	for _, c := range v.data {
		re, im := real(c), imag(c)
		sum += re*re + im*im
	}

	return math.Sqrt(sum), nil
}

// Normalize returns v/‖v‖ as a fresh unit vector.
//
// Implementation:
//   - Stage 1: compute the norm.
//   - Stage 2: reject a zero norm (dividing through would manufacture NaN).
//   - Stage 3: scale every component by 1/norm.
//
// Errors:
//   - ErrNilMatrix, ErrZeroNorm.
//
// Complexity:
//   - Time O(n), Space O(n).
func Normalize(v *Vector) (*Vector, error) {
	nrm, err := Norm(v)
	if err != nil {
		return nil, err
	}
	if nrm == 0 {
		return nil, opErrorf(opNormalize, ErrZeroNorm)
	}
	inv := complex(1/nrm, 0)
	out := make([]complex128, len(v.data))
	for i := range v.data {
		out[i] = inv * v.data[i]
	}

	return &Vector{data: out}, nil
}

// KronVec computes the Kronecker composition of two state vectors:
// out[i·dim(b)+j] = a_i·b_j, dimension dim(a)·dim(b).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n_a·n_b), Space O(n_a·n_b).
func KronVec(a, b *Vector) (*Vector, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opKron, ErrNilMatrix)
	}
	na, nb := len(a.data), len(b.data)
	out := make([]complex128, na*nb)
	var i, j int
	for i = 0; i < na; i++ {
		base := i * nb
		ai := a.data[i]
		for j = 0; j < nb; j++ {
			out[base+j] = ai * b.data[j]
		}
	}

	return &Vector{data: out}, nil
}
