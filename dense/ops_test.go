package dense_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikhov/qkit/dense"
)

// TestAddSub_Elementwise verifies Add and Sub over a small complex pair.
func TestAddSub_Elementwise(t *testing.T) {
	a := mustDense(t, [][]complex128{{1 + 2i, 0}, {3, -1i}})
	b := mustDense(t, [][]complex128{{3 - 1i, 1}, {-3, 1i}})

	sum, err := dense.Add(a, b)
	require.NoError(t, err)
	requireMatrixClose(t, mustDense(t, [][]complex128{{4 + 1i, 1}, {0, 0}}), sum, tol)

	diff, err := dense.Sub(sum, b)
	require.NoError(t, err)
	requireMatrixClose(t, a, diff, tol)
}

// TestAdd_DimensionMismatch verifies shape disagreement errors.
func TestAdd_DimensionMismatch(t *testing.T) {
	a := mustDense(t, [][]complex128{{1, 2}})
	b := mustDense(t, [][]complex128{{1}, {2}})

	_, err := dense.Add(a, b)
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestMul_HandResult verifies the product against a hand computation.
func TestMul_HandResult(t *testing.T) {
	a := mustDense(t, [][]complex128{{1, 1i}, {0, 2}})
	b := mustDense(t, [][]complex128{{1, 0}, {3, -1i}})

	got, err := dense.Mul(a, b)
	require.NoError(t, err)
	// [1+3i, -i·i]   [1+3i, 1]
	// [6,    -2i ] = [6,   -2i]
	requireMatrixClose(t, mustDense(t, [][]complex128{{1 + 3i, 1}, {6, -2i}}), got, tol)
}

// TestMul_InnerDimension verifies cols(A) must equal rows(B).
func TestMul_InnerDimension(t *testing.T) {
	a := mustDense(t, [][]complex128{{1, 2}})
	b := mustDense(t, [][]complex128{{1, 2}})

	_, err := dense.Mul(a, b)
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestMatVec verifies the matrix-vector product and its shape contract.
func TestMatVec(t *testing.T) {
	m := mustDense(t, [][]complex128{{0, 1}, {1, 0}})
	v := mustVector(t, 2, 3i)

	got, err := dense.MatVec(m, v)
	require.NoError(t, err)
	requireVectorClose(t, mustVector(t, 3i, 2), got, tol)

	short := mustVector(t, 1)
	_, err = dense.MatVec(m, short)
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestTranspose_ConjTranspose verifies both transposes on a rectangular
// matrix, including the conjugation.
func TestTranspose_ConjTranspose(t *testing.T) {
	m := mustDense(t, [][]complex128{{1 + 1i, 2}, {3, 4 - 2i}, {0, 1i}})

	tr, err := dense.Transpose(m)
	require.NoError(t, err)
	requireMatrixClose(t, mustDense(t, [][]complex128{{1 + 1i, 3, 0}, {2, 4 - 2i, 1i}}), tr, tol)

	adj, err := dense.ConjTranspose(m)
	require.NoError(t, err)
	requireMatrixClose(t, mustDense(t, [][]complex128{{1 - 1i, 3, 0}, {2, 4 + 2i, -1i}}), adj, tol)
}

// TestConjTranspose_Involution verifies (m†)† == m.
func TestConjTranspose_Involution(t *testing.T) {
	m := mustDense(t, [][]complex128{{1 + 1i, -2i}, {0.5, 3}})

	adj, err := dense.ConjTranspose(m)
	require.NoError(t, err)
	back, err := dense.ConjTranspose(adj)
	require.NoError(t, err)
	requireMatrixClose(t, m, back, tol)
}

// TestCommutator_PauliAlgebra verifies [X,Y] = 2iZ on the Pauli pair and
// that commuting matrices give zero.
func TestCommutator_PauliAlgebra(t *testing.T) {
	x := mustDense(t, [][]complex128{{0, 1}, {1, 0}})
	y := mustDense(t, [][]complex128{{0, -1i}, {1i, 0}})
	twoIZ := mustDense(t, [][]complex128{{2i, 0}, {0, -2i}})

	got, err := dense.Commutator(x, y)
	require.NoError(t, err)
	requireMatrixClose(t, twoIZ, got, tol)

	id, err := dense.Identity(2)
	require.NoError(t, err)
	zero, err := dense.Commutator(x, id)
	require.NoError(t, err)
	requireMatrixClose(t, mustDense(t, [][]complex128{{0, 0}, {0, 0}}), zero, tol)
}

// TestCommutator_ShapeContracts verifies square and equal-shape requirements.
func TestCommutator_ShapeContracts(t *testing.T) {
	rect := mustDense(t, [][]complex128{{1, 2}})
	sq2 := mustDense(t, [][]complex128{{1, 0}, {0, 1}})
	sq3, err := dense.Identity(3)
	require.NoError(t, err)

	_, err = dense.Commutator(rect, sq2)
	assert.ErrorIs(t, err, dense.ErrNonSquare)
	_, err = dense.Commutator(sq2, sq3)
	assert.ErrorIs(t, err, dense.ErrDimensionMismatch)
}

// TestKron_IndexLayout pins the block layout
// out[i·r_b+k, j·c_b+l] = a[i,j]·b[k,l].
func TestKron_IndexLayout(t *testing.T) {
	a := mustDense(t, [][]complex128{{1, 2}, {0, 1i}})
	b := mustDense(t, [][]complex128{{0, 3}, {1, 0}})

	got, err := dense.Kron(a, b)
	require.NoError(t, err)
	want := mustDense(t, [][]complex128{
		{0, 3, 0, 6},
		{1, 0, 2, 0},
		{0, 0, 0, 3i},
		{0, 0, 1i, 0},
	})
	requireMatrixClose(t, want, got, tol)
}

// TestKron_Associativity verifies (A⊗B)⊗C == A⊗(B⊗C) under the matching
// index flattening.
func TestKron_Associativity(t *testing.T) {
	a := mustDense(t, [][]complex128{{1, 1i}, {2, 0}})
	b := mustDense(t, [][]complex128{{0, 1}, {1, 0}})
	c := mustDense(t, [][]complex128{{2, 0}, {0, -1i}})

	ab, err := dense.Kron(a, b)
	require.NoError(t, err)
	left, err := dense.Kron(ab, c)
	require.NoError(t, err)

	bc, err := dense.Kron(b, c)
	require.NoError(t, err)
	right, err := dense.Kron(a, bc)
	require.NoError(t, err)

	requireMatrixClose(t, left, right, tol)
}

// TestOps_NilOperands verifies every facade rejects nil with ErrNilMatrix.
func TestOps_NilOperands(t *testing.T) {
	m := mustDense(t, [][]complex128{{1}})

	_, err := dense.Add(nil, m)
	assert.ErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Mul(m, nil)
	assert.ErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Transpose(nil)
	assert.ErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Kron(nil, nil)
	assert.ErrorIs(t, err, dense.ErrNilMatrix)
	_, err = dense.Scale(nil, 1)
	assert.ErrorIs(t, err, dense.ErrNilMatrix)
}
