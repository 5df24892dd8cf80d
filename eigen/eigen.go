package eigen

import (
	"fmt"
	"math"

	"github.com/velikhov/qkit/dense"
)

const opDecompose = "Decompose"

// conj is the local scalar conjugate for the hot rotation loops.
func conj(v complex128) complex128 { return complex(real(v), -imag(v)) }

// Decompose factors a Hermitian matrix as m = V·diag(vals)·V†.
//
// Returned values:
//   - vals: real eigenvalues in storage order (unsorted, deterministic).
//   - vecs: unitary matrix whose column i is the eigenvector for vals[i].
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrNonSquare on malformed input.
//   - ErrNotHermitian when m deviates from its adjoint beyond the tolerance.
//   - ErrNoConvergence when the sweep budget is exhausted; no partial
//     results are returned.
//
// Complexity: O(sweeps·n³).
func Decompose(m *dense.Dense, opts ...Option) (vals []float64, vecs *dense.Dense, err error) {
	if m == nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, dense.ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, dense.ErrNonSquare)
	}
	o := gatherOptions(opts...)
	if !dense.IsHermitian(m, o.tol) {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, ErrNotHermitian)
	}

	n := m.Rows()

	// Working copies in flat row-major form: a is driven to diagonal form,
	// v accumulates the rotations (starts as identity).
	a := make([]complex128, n*n)
	m.Do(func(i, j int, val complex128) bool {
		a[i*n+j] = val

		return true
	})
	v := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}

	converged := offDiagonalNorm(a, n) <= o.tol
	for sweep := 0; sweep < o.maxSweeps && !converged; sweep++ {
		// Fixed cyclic order over the strict upper triangle.
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				rotate(a, v, n, p, q)
			}
		}
		converged = offDiagonalNorm(a, n) <= o.tol
	}
	if !converged {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, ErrNoConvergence)
	}

	vals = make([]float64, n)
	for i := 0; i < n; i++ {
		// Diagonal of a Hermitian matrix is real; rotations keep it so.
		vals[i] = real(a[i*n+i])
	}

	if vecs, err = dense.NewDense(n, n); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = vecs.Set(i, j, v[i*n+j]); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
			}
		}
	}

	return vals, vecs, nil
}

// offDiagonalNorm returns the Frobenius norm of the strict upper triangle.
// Hermiticity makes the lower triangle redundant; the factor √2 is folded
// into the convergence threshold by convention.
func offDiagonalNorm(a []complex128, n int) float64 {
	var sum float64
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			re, im := real(a[i*n+j]), imag(a[i*n+j])
			sum += re*re + im*im
		}
	}

	return math.Sqrt(sum)
}

// rotate zeroes a[p,q] with a phase-absorbed Jacobi rotation and folds the
// rotation into the eigenvector accumulator.
//
// Writing a[p,q] = r·e^{iφ}, the rotation is the unitary that is identity
// except U[p,p]=U[q,q]=cos θ, U[p,q]=sin θ·e^{iφ}, U[q,p]=-sin θ·e^{-iφ},
// with θ chosen from tan 2θ = 2r/(a[q,q]-a[p,p]) so that (U†·a·U)[p,q]=0.
// atan2 handles the equal-diagonal case (θ=π/4) without a branch.
func rotate(a, v []complex128, n, p, q int) {
	apq := a[n*p+q]
	r := math.Hypot(real(apq), imag(apq))
	if r == 0 {
		return // already annihilated
	}
	eip := apq / complex(r, 0) // e^{iφ}

	app := real(a[n*p+p])
	aqq := real(a[n*q+q])
	theta := 0.5 * math.Atan2(2*r, aqq-app)
	c, s := math.Cos(theta), math.Sin(theta)

	cs := complex(c, 0)
	sFwd := complex(s, 0) * eip       // s·e^{iφ}
	sBwd := complex(s, 0) * conj(eip) // s·e^{-iφ}

	// Rows/columns outside the rotation plane.
	var aip, aiq, nip, niq complex128
	for i := 0; i < n; i++ {
		if i == p || i == q {
			continue
		}
		aip = a[i*n+p]
		aiq = a[i*n+q]
		nip = cs*aip - sBwd*aiq
		niq = sFwd*aip + cs*aiq
		a[i*n+p] = nip
		a[p*n+i] = conj(nip)
		a[i*n+q] = niq
		a[q*n+i] = conj(niq)
	}

	// The rotation plane itself: diagonal becomes real, pivot vanishes.
	a[p*n+p] = complex(c*c*app-2*c*s*r+s*s*aqq, 0)
	a[q*n+q] = complex(s*s*app+2*c*s*r+c*c*aqq, 0)
	a[p*n+q] = 0
	a[q*n+p] = 0

	// Accumulate V ← V·U.
	var vip, viq complex128
	for i := 0; i < n; i++ {
		vip = v[i*n+p]
		viq = v[i*n+q]
		v[i*n+p] = cs*vip - sBwd*viq
		v[i*n+q] = sFwd*vip + cs*viq
	}
}
