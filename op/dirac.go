package op

import "github.com/velikhov/qkit/dense"

// Gamma returns the Dirac gamma matrix γ^mu in the Dirac basis, 4×4.
// The four matrices satisfy the Clifford relation
// {γ^μ, γ^ν} = 2·η^{μν}·I with metric signature (+,-,-,-).
//
// Errors:
//   - ErrBadIndex when mu is outside 0..3.
func Gamma(mu int) (*dense.Dense, error) {
	switch mu {
	case 0:
		return mustDense([][]complex128{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, -1, 0},
			{0, 0, 0, -1},
		}), nil
	case 1:
		return mustDense([][]complex128{
			{0, 0, 0, 1},
			{0, 0, 1, 0},
			{0, -1, 0, 0},
			{-1, 0, 0, 0},
		}), nil
	case 2:
		return mustDense([][]complex128{
			{0, 0, 0, -1i},
			{0, 0, 1i, 0},
			{0, 1i, 0, 0},
			{-1i, 0, 0, 0},
		}), nil
	case 3:
		return mustDense([][]complex128{
			{0, 0, 1, 0},
			{0, 0, 0, -1},
			{-1, 0, 0, 0},
			{0, 1, 0, 0},
		}), nil
	default:
		return nil, ErrBadIndex
	}
}
