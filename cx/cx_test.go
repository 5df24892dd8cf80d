package cx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/velikhov/qkit/cx"
)

const tol = 1e-12

// TestConj_Involution verifies conj(conj(a)) == a for assorted scalars.
func TestConj_Involution(t *testing.T) {
	for _, a := range []complex128{0, 1, -1i, 1 + 2i, -3.5 + 0.25i} {
		assert.Equal(t, a, cx.Conj(cx.Conj(a)), "conjugation must be an involution")
	}
}

// TestModulus_Multiplicative verifies |a·b| == |a|·|b| within tolerance.
func TestModulus_Multiplicative(t *testing.T) {
	a := 1 + 2i
	b := 3 - 1i

	got := cx.Modulus(a * b)
	want := cx.Modulus(a) * cx.Modulus(b)
	assert.True(t, scalar.EqualWithinAbs(got, want, tol), "|a·b| must equal |a|·|b|")
}

// TestScalarArithmetic_Example pins the worked example: a=(1,2), b=(3,-1).
func TestScalarArithmetic_Example(t *testing.T) {
	a := 1 + 2i
	b := 3 - 1i

	assert.Equal(t, 4+1i, a+b, "a+b must be (4,1)")
	assert.Equal(t, 5+5i, a*b, "a*b must be (5,5)")
	assert.Equal(t, 1-2i, cx.Conj(a), "conj(a) must be (1,-2)")
}

// TestFromPolar_RoundTrip verifies FromPolar inverts Modulus/Phase.
func TestFromPolar_RoundTrip(t *testing.T) {
	a := -2 + 1.5i

	got, err := cx.FromPolar(cx.Modulus(a), cx.Phase(a))
	require.NoError(t, err)
	assert.True(t, scalar.EqualWithinAbs(real(got), real(a), tol), "real part survives round trip")
	assert.True(t, scalar.EqualWithinAbs(imag(got), imag(a), tol), "imag part survives round trip")
}

// TestFromPolar_ZeroRadius ensures r <= 0 and non-finite radii fail loudly.
func TestFromPolar_ZeroRadius(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := cx.FromPolar(r, math.Pi/4)
		assert.ErrorIs(t, err, cx.ErrZeroRadius, "invalid radius must error")
	}
}

// TestDiv_ZeroDivisor ensures division by zero is rejected, never NaN.
func TestDiv_ZeroDivisor(t *testing.T) {
	_, err := cx.Div(1+1i, 0)
	assert.ErrorIs(t, err, cx.ErrZeroDivisor, "zero divisor must error")

	_, err = cx.DivScalar(1+1i, 0)
	assert.ErrorIs(t, err, cx.ErrZeroDivisor, "zero scalar divisor must error")
}

// TestDiv_Basic checks a simple quotient against the hand result.
func TestDiv_Basic(t *testing.T) {
	got, err := cx.Div(5+5i, 3-1i)
	require.NoError(t, err)
	// (5+5i)/(3-i) = (5+5i)(3+i)/10 = (10+20i)/10 = 1+2i.
	assert.True(t, scalar.EqualWithinAbs(real(got), 1, tol))
	assert.True(t, scalar.EqualWithinAbs(imag(got), 2, tol))
}

// TestDivScalar_Basic checks componentwise real division.
func TestDivScalar_Basic(t *testing.T) {
	got, err := cx.DivScalar(3+4.5i, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 2+3i, got)
}
