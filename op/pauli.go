package op

import (
	"math/cmplx"

	"github.com/velikhov/qkit/dense"
)

// mustDense builds a matrix from literal rows. Only called with fixed
// well-formed literals, so the error path is unreachable.
func mustDense(rows [][]complex128) *dense.Dense {
	m, err := dense.DenseOf(rows)
	if err != nil {
		panic("op: invalid operator literal: " + err.Error())
	}

	return m
}

// PauliX returns σx = [[0,1],[1,0]].
func PauliX() *dense.Dense {
	return mustDense([][]complex128{
		{0, 1},
		{1, 0},
	})
}

// PauliY returns σy = [[0,-i],[i,0]].
func PauliY() *dense.Dense {
	return mustDense([][]complex128{
		{0, -1i},
		{1i, 0},
	})
}

// PauliZ returns σz = [[1,0],[0,-1]].
func PauliZ() *dense.Dense {
	return mustDense([][]complex128{
		{1, 0},
		{0, -1},
	})
}

// Identity2 returns the 2×2 identity.
func Identity2() *dense.Dense {
	return mustDense([][]complex128{
		{1, 0},
		{0, 1},
	})
}

// RotationPhase returns the scalar gate e^{iθ}. Applied to a state vector
// via dense.ScaleV it twists the global phase by θ.
func RotationPhase(theta float64) complex128 {
	return cmplx.Exp(complex(0, theta))
}
