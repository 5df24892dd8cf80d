package lattice

// Field is a periodic X×Y×Z box of cells stored flat, row-major in z, then
// y, then x: index = (x·ny + y)·nz + z. The zero value is unusable; build
// with NewField.
type Field[T any] struct {
	nx, ny, nz int
	cells      []T
}

// NewField allocates an nx×ny×nz field of zero-valued cells.
//
// Errors:
//   - ErrBadExtent when any side is < 1.
func NewField[T any](nx, ny, nz int) (*Field[T], error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, ErrBadExtent
	}

	return &Field[T]{
		nx:    nx,
		ny:    ny,
		nz:    nz,
		cells: make([]T, nx*ny*nz),
	}, nil
}

// Extents returns the box sides (nx, ny, nz).
func (f *Field[T]) Extents() (int, int, int) { return f.nx, f.ny, f.nz }

// Len returns the cell count nx·ny·nz.
func (f *Field[T]) Len() int { return len(f.cells) }

// Wrap maps any integer coordinate into [0, n) periodically. Negative
// inputs wrap from the far edge: Wrap(-1, n) = n-1.
func Wrap(i, n int) int { return ((i % n) + n) % n }

// Index maps (possibly out-of-box) coordinates to the linear cell index,
// wrapping each coordinate periodically.
func (f *Field[T]) Index(x, y, z int) int {
	return (Wrap(x, f.nx)*f.ny+Wrap(y, f.ny))*f.nz + Wrap(z, f.nz)
}

// Coordinate is the inverse of Index for in-range linear indices.
func (f *Field[T]) Coordinate(i int) (x, y, z int) {
	z = i % f.nz
	i /= f.nz
	y = i % f.ny
	x = i / f.ny

	return x, y, z
}

// At returns the cell at wrapped coordinates (x, y, z).
func (f *Field[T]) At(x, y, z int) T { return f.cells[f.Index(x, y, z)] }

// Set stores v at wrapped coordinates (x, y, z).
func (f *Field[T]) Set(x, y, z int, v T) { f.cells[f.Index(x, y, z)] = v }

// AtIndex returns the cell at linear index i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Len).
func (f *Field[T]) AtIndex(i int) (T, error) {
	if i < 0 || i >= len(f.cells) {
		var zero T

		return zero, ErrOutOfRange
	}

	return f.cells[i], nil
}

// SetIndex stores v at linear index i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Len).
func (f *Field[T]) SetIndex(i int, v T) error {
	if i < 0 || i >= len(f.cells) {
		return ErrOutOfRange
	}
	f.cells[i] = v

	return nil
}

// Snapshot returns a copy of the cell slice. The copy is independent at the
// slice level; for pointer-typed cells the pointees are shared, so update
// functions must treat snapshot cells as read-only.
func (f *Field[T]) Snapshot() []T {
	snap := make([]T, len(f.cells))
	copy(snap, f.cells)

	return snap
}

// Fill populates every cell from the generator, in linear index order.
func (f *Field[T]) Fill(gen func(idx int) T) {
	for i := range f.cells {
		f.cells[i] = gen(i)
	}
}

// Neighbors6 returns the linear indices of the six axis neighbors of cell
// i, periodically wrapped: -x, +x, -y, +y, -z, +z. On a side of extent 1
// the two neighbors along that axis are the cell itself.
func (f *Field[T]) Neighbors6(i int) [6]int {
	x, y, z := f.Coordinate(i)

	return [6]int{
		f.Index(x-1, y, z), f.Index(x+1, y, z),
		f.Index(x, y-1, z), f.Index(x, y+1, z),
		f.Index(x, y, z-1), f.Index(x, y, z+1),
	}
}
