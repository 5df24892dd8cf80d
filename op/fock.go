package op

import (
	"math"

	"github.com/velikhov/qkit/dense"
)

// Annihilate returns the lowering operator a on an n-level truncated Fock
// space: a|k⟩ = √k·|k-1⟩, a|0⟩ = 0.
//
// Errors:
//   - dense.ErrInvalidDimensions when n < 1.
func Annihilate(n int) (*dense.Dense, error) {
	if n < 1 {
		return nil, dense.ErrInvalidDimensions
	}
	a, err := dense.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for k := 1; k < n; k++ {
		if err = a.Set(k-1, k, complex(math.Sqrt(float64(k)), 0)); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Create returns the raising operator a† on an n-level truncated Fock
// space: a†|k⟩ = √(k+1)·|k+1⟩. The top level |n-1⟩ is annihilated by the
// truncation, so [a, a†] = I holds only on the untruncated block.
//
// Errors:
//   - dense.ErrInvalidDimensions when n < 1.
func Create(n int) (*dense.Dense, error) {
	if n < 1 {
		return nil, dense.ErrInvalidDimensions
	}
	c, err := dense.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n-1; k++ {
		if err = c.Set(k+1, k, complex(math.Sqrt(float64(k+1)), 0)); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Number returns the occupation operator N = a†a = diag(0, 1, ..., n-1).
//
// Errors:
//   - dense.ErrInvalidDimensions when n < 1.
func Number(n int) (*dense.Dense, error) {
	if n < 1 {
		return nil, dense.ErrInvalidDimensions
	}
	m, err := dense.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		if err = m.Set(k, k, complex(float64(k), 0)); err != nil {
			return nil, err
		}
	}

	return m, nil
}
