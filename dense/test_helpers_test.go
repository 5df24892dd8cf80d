package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/velikhov/qkit/dense"
)

// mustDense builds a matrix from row data, failing the test on error.
func mustDense(t *testing.T, rows [][]complex128) *dense.Dense {
	t.Helper()
	m, err := dense.DenseOf(rows)
	require.NoError(t, err, "test fixture must construct")

	return m
}

// mustVector builds a vector from components, failing the test on error.
func mustVector(t *testing.T, vals ...complex128) *dense.Vector {
	t.Helper()
	v, err := dense.VectorOf(vals...)
	require.NoError(t, err, "test fixture must construct")

	return v
}

// requireScalarClose asserts both components of got match want within tol.
func requireScalarClose(t *testing.T, want, got complex128, tol float64) {
	t.Helper()
	require.True(t, scalar.EqualWithinAbs(real(got), real(want), tol),
		"real part: want %g, got %g", real(want), real(got))
	require.True(t, scalar.EqualWithinAbs(imag(got), imag(want), tol),
		"imag part: want %g, got %g", imag(want), imag(got))
}

// requireMatrixClose asserts elementwise closeness of two matrices.
func requireMatrixClose(t *testing.T, want, got *dense.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "col count")
	want.Do(func(i, j int, w complex128) bool {
		g, err := got.At(i, j)
		require.NoError(t, err)
		requireScalarClose(t, w, g, tol)

		return true
	})
}

// requireVectorClose asserts elementwise closeness of two vectors.
func requireVectorClose(t *testing.T, want, got *dense.Vector, tol float64) {
	t.Helper()
	require.Equal(t, want.Dim(), got.Dim(), "dimension")
	for i := 0; i < want.Dim(); i++ {
		w, err := want.At(i)
		require.NoError(t, err)
		g, err := got.At(i)
		require.NoError(t, err)
		requireScalarClose(t, w, g, tol)
	}
}
