// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	// Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrRaggedRows indicates that a [][]complex128 literal has rows of
	// unequal length and cannot form a rectangular matrix.
	ErrRaggedRows = errors.New("dense: ragged rows")

	// ErrOutOfRange indicates that an index (row, column or vector position)
	// is outside valid bounds. Public indexers (At/Set) MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Trace, Commutator, Hermitize, LU, Inverse).
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense or *Vector (receiver or
	// argument) was passed where a value is required.
	ErrNilMatrix = errors.New("dense: nil operand")

	// ErrNaNInf signals a NaN or ±Inf component was encountered where finite
	// values are required by the numeric policy (Set, ingestion).
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrZeroNorm is returned by Normalize when the vector norm is zero;
	// dividing through would manufacture NaN components.
	ErrZeroNorm = errors.New("dense: zero norm")

	// ErrSingular is returned when a zero pivot is encountered during
	// inversion/LU in a non-pivoting scheme (intentional for determinism
	// and simplicity).
	ErrSingular = errors.New("dense: singular matrix")
)
