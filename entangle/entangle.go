package entangle

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/velikhov/qkit/dense"
	"github.com/velikhov/qkit/eigen"
)

// Operation name constants for unified error wrapping.
const (
	opMaxEntangled = "MaxEntangled"
	opJoint        = "JointHamiltonian"
	opCompose      = "Compose"
	opDensityOf    = "DensityOf"
	opPartialTrace = "PartialTrace"
	opCollapse     = "Collapse"
	opSplit        = "Split"
)

// entErrorf wraps err with an operation tag, preserving the sentinel via %w.
func entErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// BellPhiPlus returns the Bell state |Φ+⟩ = (|00⟩ + |11⟩)/√2 as a fresh
// 4-vector.
func BellPhiPlus() *dense.Vector {
	s := complex(1/math.Sqrt2, 0)
	v, _ := dense.VectorOf(s, 0, 0, s)

	return v
}

// MaxEntangled returns the maximally entangled state Σ_i |ii⟩/√d of two
// d-level subsystems as a d²-vector.
//
// Errors:
//   - dense.ErrInvalidDimensions when d < 1.
func MaxEntangled(d int) (*dense.Vector, error) {
	if d < 1 {
		return nil, entErrorf(opMaxEntangled, dense.ErrInvalidDimensions)
	}
	v, err := dense.NewVector(d * d)
	if err != nil {
		return nil, entErrorf(opMaxEntangled, err)
	}
	amp := complex(1/math.Sqrt(float64(d)), 0)
	for i := 0; i < d; i++ {
		if err = v.Set(i*d+i, amp); err != nil {
			return nil, entErrorf(opMaxEntangled, err)
		}
	}

	return v, nil
}

// JointHamiltonian lifts a single-subsystem Hamiltonian h to the pair:
// H = h⊗I + I⊗h. Both subsystems evolve under the same local physics.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrNonSquare.
func JointHamiltonian(h *dense.Dense) (*dense.Dense, error) {
	if h == nil {
		return nil, entErrorf(opJoint, dense.ErrNilMatrix)
	}
	if !h.IsSquare() {
		return nil, entErrorf(opJoint, dense.ErrNonSquare)
	}
	id, err := dense.Identity(h.Rows())
	if err != nil {
		return nil, entErrorf(opJoint, err)
	}
	left, err := dense.Kron(h, id)
	if err != nil {
		return nil, entErrorf(opJoint, err)
	}
	right, err := dense.Kron(id, h)
	if err != nil {
		return nil, entErrorf(opJoint, err)
	}

	return dense.Add(left, right)
}

// Compose forms the product state |a⟩⊗|b⟩ of two subsystem vectors.
func Compose(a, b *dense.Vector) (*dense.Vector, error) {
	joint, err := dense.KronVec(a, b)
	if err != nil {
		return nil, entErrorf(opCompose, err)
	}

	return joint, nil
}

// DensityOf builds the pure-state density matrix |ψ⟩⟨ψ|. The input is not
// normalized first; callers wanting tr(ρ) = 1 normalize ψ themselves.
func DensityOf(psi *dense.Vector) (*dense.Dense, error) {
	if psi == nil {
		return nil, entErrorf(opDensityOf, dense.ErrNilMatrix)
	}
	n := psi.Dim()
	rho, err := dense.NewDense(n, n)
	if err != nil {
		return nil, entErrorf(opDensityOf, err)
	}
	for i := 0; i < n; i++ {
		pi, _ := psi.At(i)
		for j := 0; j < n; j++ {
			pj, _ := psi.At(j)
			if err = rho.Set(i, j, pi*cmplx.Conj(pj)); err != nil {
				return nil, entErrorf(opDensityOf, err)
			}
		}
	}

	return rho, nil
}

// PartialTrace reduces a joint density matrix over a d×d pair to the two
// subsystem densities:
//
//	ρ_A[i,j] = Σ_k joint[i·d+k, j·d+k]   (trace out subsystem B)
//	ρ_B[i,j] = Σ_k joint[k·d+i, k·d+j]   (trace out subsystem A)
//
// Both marginals are re-Hermitized before return so rounding in the joint
// evolution never leaks a non-Hermitian reduced state downstream.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrInvalidDimensions (d < 1).
//   - dense.ErrDimensionMismatch when joint is not d²×d².
func PartialTrace(joint *dense.Dense, d int) (*dense.Dense, *dense.Dense, error) {
	if joint == nil {
		return nil, nil, entErrorf(opPartialTrace, dense.ErrNilMatrix)
	}
	if d < 1 {
		return nil, nil, entErrorf(opPartialTrace, dense.ErrInvalidDimensions)
	}
	if joint.Rows() != d*d || joint.Cols() != d*d {
		return nil, nil, entErrorf(opPartialTrace, dense.ErrDimensionMismatch)
	}

	a, err := dense.NewDense(d, d)
	if err != nil {
		return nil, nil, entErrorf(opPartialTrace, err)
	}
	b, err := dense.NewDense(d, d)
	if err != nil {
		return nil, nil, entErrorf(opPartialTrace, err)
	}

	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			var sumA, sumB complex128
			for k := 0; k < d; k++ {
				va, _ := joint.At(i*d+k, j*d+k)
				vb, _ := joint.At(k*d+i, k*d+j)
				sumA += va
				sumB += vb
			}
			if err = a.Set(i, j, sumA); err != nil {
				return nil, nil, entErrorf(opPartialTrace, err)
			}
			if err = b.Set(i, j, sumB); err != nil {
				return nil, nil, entErrorf(opPartialTrace, err)
			}
		}
	}

	if a, err = dense.Hermitize(a); err != nil {
		return nil, nil, entErrorf(opPartialTrace, err)
	}
	if b, err = dense.Hermitize(b); err != nil {
		return nil, nil, entErrorf(opPartialTrace, err)
	}

	return a, b, nil
}

// Collapse projects a density matrix onto its dominant eigenvector: the
// eigenvector of the largest |λ|, normalized. On a tie the lowest index in
// the ascending index scan wins, which makes the projection deterministic
// for maximally mixed inputs.
//
// Errors:
//   - eigen.ErrNotHermitian, eigen.ErrNoConvergence from the decomposition.
//   - dense.ErrZeroNorm when the dominant column is zero (degenerate input).
func Collapse(rho *dense.Dense, opts ...eigen.Option) (*dense.Vector, error) {
	vals, vecs, err := eigen.Decompose(rho, opts...)
	if err != nil {
		return nil, entErrorf(opCollapse, err)
	}

	dominant := 0
	for i := 1; i < len(vals); i++ {
		if math.Abs(vals[i]) > math.Abs(vals[dominant]) {
			dominant = i
		}
	}

	psi, err := dense.NewVector(len(vals))
	if err != nil {
		return nil, entErrorf(opCollapse, err)
	}
	for i := 0; i < len(vals); i++ {
		v, _ := vecs.At(i, dominant)
		if err = psi.Set(i, v); err != nil {
			return nil, entErrorf(opCollapse, err)
		}
	}
	psi, err = dense.Normalize(psi)
	if err != nil {
		return nil, entErrorf(opCollapse, err)
	}

	return psi, nil
}

// Split reduces a joint density matrix to its two marginals and collapses
// each onto its dominant eigenvector. This is the measurement-free re-split
// of an evolved pair into two pure subsystem states.
//
// Errors: those of PartialTrace and Collapse, tagged "Split".
func Split(joint *dense.Dense, d int) (*dense.Vector, *dense.Vector, error) {
	ra, rb, err := PartialTrace(joint, d)
	if err != nil {
		return nil, nil, entErrorf(opSplit, err)
	}
	psiA, err := Collapse(ra)
	if err != nil {
		return nil, nil, entErrorf(opSplit, err)
	}
	psiB, err := Collapse(rb)
	if err != nil {
		return nil, nil, entErrorf(opSplit, err)
	}

	return psiA, psiB, nil
}
