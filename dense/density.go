// SPDX-License-Identifier: MIT
// Package dense: density-matrix helpers.
//
// A density matrix is a square matrix constrained to be Hermitian (M = M†)
// and trace-normalized (tr ≈ 1). These are derived, validated states, not a
// separate type: callers re-symmetrize with Hermitize after any numerically
// lossy transform (conjugation update, partial trace) to hold the
// Hermiticity invariant against floating-point drift.

package dense

import "math"

// Trace returns the sum of diagonal entries of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m *Dense) (complex128, error) {
	if m == nil {
		return 0, opErrorf(opTrace, ErrNilMatrix)
	}
	if !m.IsSquare() {
		return 0, opErrorf(opTrace, ErrNonSquare)
	}
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Expectation computes re(tr(rho·obs)), the expectation value of the
// observable obs in the mixed state rho. Both must be square with equal
// shape. The trace is accumulated directly (tr(A·B) = Σ_ij A[i,j]·B[j,i])
// without materializing the product.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²), Space O(1).
func Expectation(rho, obs *Dense) (float64, error) {
	if rho == nil || obs == nil {
		return 0, opErrorf(opExpect, ErrNilMatrix)
	}
	if !rho.IsSquare() || !obs.IsSquare() {
		return 0, opErrorf(opExpect, ErrNonSquare)
	}
	if rho.r != obs.r {
		return 0, opErrorf(opExpect, ErrDimensionMismatch)
	}
	n := rho.r
	var sum complex128
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			sum += rho.data[base+j] * obs.data[j*n+i]
		}
	}

	return real(sum), nil
}

// Hermitize returns (m + m†)/2 into a fresh matrix, restoring exact
// Hermiticity after floating-point drift.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Hermitize(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opHermitize, ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, opErrorf(opHermitize, ErrNonSquare)
	}
	n := m.r
	out, err := NewDense(n, n)
	if err != nil {
		return nil, opErrorf(opHermitize, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = (m.data[i*n+j] + conj(m.data[j*n+i])) / 2
		}
	}

	return out, nil
}

// IsHermitian reports whether m equals its adjoint within eps, comparing
// |m[i,j] - conj(m[j,i])| for every pair (diagonal included, which also
// bounds the imaginary parts of the diagonal). Nil or non-square inputs
// report false.
//
// Complexity:
//   - Time O(n²), Space O(1).
func IsHermitian(m *Dense, eps float64) bool {
	if m == nil || !m.IsSquare() {
		return false
	}
	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			d := m.data[i*n+j] - conj(m.data[j*n+i])
			if math.Hypot(real(d), imag(d)) > eps {
				return false
			}
		}
	}

	return true
}
