package cx

import (
	"errors"
	"math"
	"math/cmplx"
)

var (
	// ErrZeroDivisor is returned by Div and DivScalar when the divisor is the
	// zero scalar. The quotient would be NaN/Inf; callers must handle this
	// explicitly rather than let it propagate.
	ErrZeroDivisor = errors.New("cx: division by zero scalar")

	// ErrZeroRadius is returned by FromPolar when the radius is not strictly
	// positive. A zero radius collapses every phase onto the origin and is
	// always a construction bug at the call site.
	ErrZeroRadius = errors.New("cx: polar radius must be > 0")
)

// Conj returns the complex conjugate of a. Total.
func Conj(a complex128) complex128 { return cmplx.Conj(a) }

// Modulus returns |a|. Total.
func Modulus(a complex128) float64 { return cmplx.Abs(a) }

// Phase returns the argument of a in (-π, π]. Total.
func Phase(a complex128) float64 { return cmplx.Phase(a) }

// FromPolar builds r·cos(θ) + i·r·sin(θ) from a radius and a phase.
// Fails with ErrZeroRadius when r ≤ 0 or r is not finite; phases outside
// (-π, π] are accepted and wrap naturally.
func FromPolar(r, theta float64) (complex128, error) {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrZeroRadius
	}

	return complex(r*math.Cos(theta), r*math.Sin(theta)), nil
}

// Div returns a/b, failing with ErrZeroDivisor when b == 0.
func Div(a, b complex128) (complex128, error) {
	if b == 0 {
		return 0, ErrZeroDivisor
	}

	return a / b, nil
}

// DivScalar returns a/s for a real divisor s, failing with ErrZeroDivisor
// when s == 0.
func DivScalar(a complex128, s float64) (complex128, error) {
	if s == 0 {
		return 0, ErrZeroDivisor
	}

	return complex(real(a)/s, imag(a)/s), nil
}
