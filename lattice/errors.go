package lattice

import "errors"

var (
	// ErrBadExtent is returned by NewField when any box side is < 1.
	ErrBadExtent = errors.New("lattice: field extent must be >= 1")

	// ErrOutOfRange is returned by the bounds-checked index accessors for a
	// linear index outside [0, Len).
	ErrOutOfRange = errors.New("lattice: index out of range")

	// ErrNilField is returned by Step when the field is nil.
	ErrNilField = errors.New("lattice: nil field")

	// ErrNilUpdate is returned by Step when the update function is nil.
	ErrNilUpdate = errors.New("lattice: nil update function")
)
