package op_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikhov/qkit/dense"
	"github.com/velikhov/qkit/op"
)

// requireMatrixEqual asserts exact elementwise equality. The operator
// constructors are built from exact literals and square roots, so the
// algebraic identities below hold to the last bit or very near it.
func requireMatrixEqual(t *testing.T, want, got *dense.Dense, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	want.Do(func(i, j int, w complex128) bool {
		g, err := got.At(i, j)
		require.NoError(t, err)
		require.InDelta(t, real(w), real(g), eps, "re at (%d,%d)", i, j)
		require.InDelta(t, imag(w), imag(g), eps, "im at (%d,%d)", i, j)

		return true
	})
}

// scaledIdentity returns alpha·I of size n.
func scaledIdentity(t *testing.T, n int, alpha complex128) *dense.Dense {
	t.Helper()
	id, err := dense.Identity(n)
	require.NoError(t, err)
	m, err := dense.Scale(id, alpha)
	require.NoError(t, err)

	return m
}

// TestPauli_CommutationRelation verifies [σx, σy] = 2i·σz.
func TestPauli_CommutationRelation(t *testing.T) {
	comm, err := dense.Commutator(op.PauliX(), op.PauliY())
	require.NoError(t, err)

	want, err := dense.Scale(op.PauliZ(), 2i)
	require.NoError(t, err)
	requireMatrixEqual(t, want, comm, 1e-15)
}

// TestPauli_SquareToIdentity verifies σ² = I for all three.
func TestPauli_SquareToIdentity(t *testing.T) {
	id := op.Identity2()
	for name, sigma := range map[string]*dense.Dense{
		"x": op.PauliX(),
		"y": op.PauliY(),
		"z": op.PauliZ(),
	} {
		sq, err := dense.Mul(sigma, sigma)
		require.NoError(t, err, name)
		requireMatrixEqual(t, id, sq, 1e-15)
	}
}

// TestPauli_FreshCopies verifies mutating one result does not poison the
// next call.
func TestPauli_FreshCopies(t *testing.T) {
	a := op.PauliZ()
	require.NoError(t, a.Set(0, 0, 42))

	b := op.PauliZ()
	v, err := b.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), v)
}

// TestGamma_CliffordAlgebra verifies {γ^μ, γ^ν} = 2·η^{μν}·I over all
// sixteen index pairs with signature (+,-,-,-).
func TestGamma_CliffordAlgebra(t *testing.T) {
	eta := [4]float64{1, -1, -1, -1}

	for mu := 0; mu < 4; mu++ {
		for nu := 0; nu < 4; nu++ {
			gm, err := op.Gamma(mu)
			require.NoError(t, err)
			gn, err := op.Gamma(nu)
			require.NoError(t, err)

			mn, err := dense.Mul(gm, gn)
			require.NoError(t, err)
			nm, err := dense.Mul(gn, gm)
			require.NoError(t, err)
			anti, err := dense.Add(mn, nm)
			require.NoError(t, err)

			var want *dense.Dense
			if mu == nu {
				want = scaledIdentity(t, 4, complex(2*eta[mu], 0))
			} else {
				want, err = dense.NewDense(4, 4)
				require.NoError(t, err)
			}
			requireMatrixEqual(t, want, anti, 1e-15)
		}
	}
}

// TestGamma_BadIndex verifies the 0..3 contract.
func TestGamma_BadIndex(t *testing.T) {
	_, err := op.Gamma(4)
	assert.ErrorIs(t, err, op.ErrBadIndex)

	_, err = op.Gamma(-1)
	assert.ErrorIs(t, err, op.ErrBadIndex)
}

// TestFock_LadderAction verifies a|k⟩ = √k|k-1⟩ and a†|k⟩ = √(k+1)|k+1⟩ on
// a 4-level space.
func TestFock_LadderAction(t *testing.T) {
	a, err := op.Annihilate(4)
	require.NoError(t, err)
	c, err := op.Create(4)
	require.NoError(t, err)

	k2, err := dense.VectorOf(0, 0, 1, 0)
	require.NoError(t, err)

	lowered, err := dense.MatVec(a, k2)
	require.NoError(t, err)
	v, err := lowered.At(1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2), real(v), 1e-15)

	raised, err := dense.MatVec(c, k2)
	require.NoError(t, err)
	v, err = raised.At(3)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3), real(v), 1e-15)
}

// TestFock_CanonicalCommutator verifies [a, a†] = I on the untruncated
// block; only the top diagonal entry carries the truncation artifact -(n-1).
func TestFock_CanonicalCommutator(t *testing.T) {
	const n = 5
	a, err := op.Annihilate(n)
	require.NoError(t, err)
	c, err := op.Create(n)
	require.NoError(t, err)

	comm, err := dense.Commutator(a, c)
	require.NoError(t, err)

	comm.Do(func(i, j int, v complex128) bool {
		switch {
		case i == n-1 && j == n-1:
			assert.InDelta(t, -(n - 1), real(v), 1e-12, "truncation artifact at the top level")
		case i == j:
			assert.InDelta(t, 1, real(v), 1e-12, "diagonal (%d,%d)", i, j)
		default:
			assert.InDelta(t, 0, real(v), 1e-12, "off-diagonal (%d,%d)", i, j)
		}

		return true
	})
}

// TestNumber verifies N = a†a = diag(0..n-1).
func TestNumber(t *testing.T) {
	const n = 4
	num, err := op.Number(n)
	require.NoError(t, err)

	a, err := op.Annihilate(n)
	require.NoError(t, err)
	c, err := op.Create(n)
	require.NoError(t, err)
	prod, err := dense.Mul(c, a)
	require.NoError(t, err)

	requireMatrixEqual(t, num, prod, 1e-12)

	for k := 0; k < n; k++ {
		v, aerr := num.At(k, k)
		require.NoError(t, aerr)
		assert.Equal(t, complex(float64(k), 0), v)
	}
}

// TestFock_BadTruncation verifies the n < 1 contract of all three ladders.
func TestFock_BadTruncation(t *testing.T) {
	_, err := op.Annihilate(0)
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions)
	_, err = op.Create(0)
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions)
	_, err = op.Number(-1)
	assert.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

// TestRotationPhase verifies e^{iπ} = -1 and that the gate preserves norm.
func TestRotationPhase(t *testing.T) {
	g := op.RotationPhase(math.Pi)
	assert.InDelta(t, -1, real(g), 1e-15)
	assert.InDelta(t, 0, imag(g), 1e-15)

	psi, err := dense.VectorOf(0.6, 0.8i)
	require.NoError(t, err)
	twisted, err := dense.ScaleV(psi, op.RotationPhase(0.37))
	require.NoError(t, err)

	nrm, err := dense.Norm(twisted)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, nrm, 1e-12)
}
