// SPDX-License-Identifier: MIT
// Package dense: LU decomposition and inversion (Doolittle, non-pivoting).
//
// The non-pivoting scheme is intentional: it is deterministic, allocation-
// light, and sufficient for the well-conditioned Padé denominators and small
// operators this kit inverts. A zero pivot surfaces as ErrSingular instead
// of being repaired by row exchanges; callers with genuinely ill-conditioned
// inputs should rescale first (the evolve package does, via scaling and
// squaring).

package dense

import "math/cmplx"

// LU factors a square matrix as m = L·U with unit-diagonal L (Doolittle).
//
// Implementation:
//   - Stage 1: validate square shape.
//   - Stage 2: for each pivot row k, fill U[k][j] (j ≥ k) from the running
//     sums, then L[i][k] (i > k) divided by the pivot U[k][k].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the two factors.
func LU(m *Dense) (l, u *Dense, err error) {
	if m == nil {
		return nil, nil, opErrorf(opLU, ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, nil, opErrorf(opLU, ErrNonSquare)
	}
	n := m.r
	if l, err = Identity(n); err != nil {
		return nil, nil, opErrorf(opLU, err)
	}
	if u, err = NewDense(n, n); err != nil {
		return nil, nil, opErrorf(opLU, err)
	}

	var k, i, j, s int
	var sum complex128
	for k = 0; k < n; k++ {
		// Row k of U.
		for j = k; j < n; j++ {
			sum = 0
			for s = 0; s < k; s++ {
				sum += l.data[k*n+s] * u.data[s*n+j]
			}
			u.data[k*n+j] = m.data[k*n+j] - sum
		}
		pivot := u.data[k*n+k]
		if cmplx.Abs(pivot) == 0 {
			return nil, nil, opErrorf(opLU, ErrSingular)
		}
		// Column k of L below the diagonal.
		for i = k + 1; i < n; i++ {
			sum = 0
			for s = 0; s < k; s++ {
				sum += l.data[i*n+s] * u.data[s*n+k]
			}
			l.data[i*n+k] = (m.data[i*n+k] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes m⁻¹ via LU factorization and per-column substitution.
//
// Implementation:
//   - Stage 1: factor m = L·U (surfaces ErrSingular on a zero pivot).
//   - Stage 2: for each unit column e_j, forward-substitute L·y = e_j, then
//     back-substitute U·x = y; x becomes column j of the inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	l, u, err := LU(m)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}
	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, opErrorf(opInverse, err)
	}

	y := make([]complex128, n)
	x := make([]complex128, n)
	var col, i, s int
	var sum complex128
	for col = 0; col < n; col++ {
		// Forward substitution: L·y = e_col (L has unit diagonal).
		for i = 0; i < n; i++ {
			sum = 0
			for s = 0; s < i; s++ {
				sum += l.data[i*n+s] * y[s]
			}
			rhs := complex128(0)
			if i == col {
				rhs = 1
			}
			y[i] = rhs - sum
		}
		// Back substitution: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for s = i + 1; s < n; s++ {
				sum += u.data[i*n+s] * x[s]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
