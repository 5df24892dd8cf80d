package lattice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikhov/qkit/lattice"
)

// TestNewField_Extents verifies allocation and the < 1 contract.
func TestNewField_Extents(t *testing.T) {
	f, err := lattice.NewField[int](3, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, 60, f.Len())

	nx, ny, nz := f.Extents()
	assert.Equal(t, 3, nx)
	assert.Equal(t, 4, ny)
	assert.Equal(t, 5, nz)

	for _, bad := range [][3]int{{0, 4, 5}, {3, 0, 5}, {3, 4, 0}, {-1, 1, 1}} {
		_, err = lattice.NewField[int](bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, lattice.ErrBadExtent, "extents %v", bad)
	}
}

// TestWrap verifies the periodic coordinate arithmetic on and past edges.
func TestWrap(t *testing.T) {
	assert.Equal(t, 0, lattice.Wrap(0, 5))
	assert.Equal(t, 4, lattice.Wrap(-1, 5))
	assert.Equal(t, 0, lattice.Wrap(5, 5))
	assert.Equal(t, 3, lattice.Wrap(-7, 5))
	assert.Equal(t, 2, lattice.Wrap(12, 5))
}

// TestIndexCoordinate_RoundTrip verifies Coordinate inverts Index for every
// cell of a small box.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	f, err := lattice.NewField[int](2, 3, 4)
	require.NoError(t, err)

	for i := 0; i < f.Len(); i++ {
		x, y, z := f.Coordinate(i)
		assert.Equal(t, i, f.Index(x, y, z), "cell %d", i)
	}
}

// TestAtSet_Wrapped verifies wrapped coordinate access reaches the far edge.
func TestAtSet_Wrapped(t *testing.T) {
	f, err := lattice.NewField[int](3, 3, 3)
	require.NoError(t, err)

	f.Set(-1, 0, 0, 7)
	assert.Equal(t, 7, f.At(2, 0, 0))
	assert.Equal(t, 7, f.At(5, 0, 0), "one full wrap right")
}

// TestAtIndex_Bounds verifies the bounds-checked linear accessors.
func TestAtIndex_Bounds(t *testing.T) {
	f, err := lattice.NewField[int](2, 2, 2)
	require.NoError(t, err)

	require.NoError(t, f.SetIndex(3, 9))
	v, err := f.AtIndex(3)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	_, err = f.AtIndex(8)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
	_, err = f.AtIndex(-1)
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
	assert.ErrorIs(t, f.SetIndex(8, 0), lattice.ErrOutOfRange)
}

// TestNeighbors6 verifies the six wrapped axis neighbors of a corner cell.
func TestNeighbors6(t *testing.T) {
	f, err := lattice.NewField[int](3, 3, 3)
	require.NoError(t, err)

	// Cell (0,0,0): -x wraps to (2,0,0), -y to (0,2,0), -z to (0,0,2).
	n := f.Neighbors6(f.Index(0, 0, 0))
	assert.Equal(t, f.Index(2, 0, 0), n[0])
	assert.Equal(t, f.Index(1, 0, 0), n[1])
	assert.Equal(t, f.Index(0, 2, 0), n[2])
	assert.Equal(t, f.Index(0, 1, 0), n[3])
	assert.Equal(t, f.Index(0, 0, 2), n[4])
	assert.Equal(t, f.Index(0, 0, 1), n[5])
}

// TestSnapshot_Isolated verifies mutating the field after Snapshot does not
// change the snapshot.
func TestSnapshot_Isolated(t *testing.T) {
	f, err := lattice.NewField[int](2, 1, 1)
	require.NoError(t, err)
	f.Set(0, 0, 0, 1)

	snap := f.Snapshot()
	f.Set(0, 0, 0, 99)

	assert.Equal(t, 1, snap[0])
}

// TestStep_SeesOnlySnapshot verifies the update discipline: a sum-of-left-
// neighbor rule produces the rotation of the old state, which it could not
// if updates saw their own writes.
func TestStep_SeesOnlySnapshot(t *testing.T) {
	f, err := lattice.NewField[int](4, 1, 1)
	require.NoError(t, err)
	f.Fill(func(i int) int { return i + 1 }) // 1 2 3 4

	err = lattice.Step(f, func(snap []int, i int) (int, error) {
		return snap[lattice.Wrap(i-1, len(snap))], nil
	})
	require.NoError(t, err)

	// Every cell took its left neighbor's OLD value: 4 1 2 3. If cell 1 had
	// seen cell 0's write it would have read 4 instead of 1.
	for i, want := range []int{4, 1, 2, 3} {
		v, aerr := f.AtIndex(i)
		require.NoError(t, aerr)
		assert.Equal(t, want, v, "cell %d", i)
	}
}

// TestStep_ParallelMatchesSerial verifies sharding does not change the
// result of a pure update.
func TestStep_ParallelMatchesSerial(t *testing.T) {
	update := func(snap []int, i int) (int, error) {
		n := len(snap)

		return snap[lattice.Wrap(i-1, n)] + snap[lattice.Wrap(i+1, n)], nil
	}

	serial, err := lattice.NewField[int](6, 5, 4)
	require.NoError(t, err)
	serial.Fill(func(i int) int { return (i*37 + 11) % 101 })
	parallel, err := lattice.NewField[int](6, 5, 4)
	require.NoError(t, err)
	parallel.Fill(func(i int) int { return (i*37 + 11) % 101 })

	require.NoError(t, lattice.Step(serial, update))
	require.NoError(t, lattice.Step(parallel, update, lattice.WithWorkers(4)))

	for i := 0; i < serial.Len(); i++ {
		s, _ := serial.AtIndex(i)
		p, _ := parallel.AtIndex(i)
		require.Equal(t, s, p, "cell %d", i)
	}
}

// TestStep_CellErrorAbortsUntouched verifies a failing cell aborts the step,
// names the cell, and leaves the field exactly as it was.
func TestStep_CellErrorAbortsUntouched(t *testing.T) {
	f, err := lattice.NewField[int](3, 1, 1)
	require.NoError(t, err)
	f.Fill(func(i int) int { return i })

	boom := errors.New("boom")
	err = lattice.Step(f, func(snap []int, i int) (int, error) {
		if i == 2 {
			return 0, boom
		}

		return snap[i] + 1, nil
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "cell 2")

	for i := 0; i < 3; i++ {
		v, _ := f.AtIndex(i)
		assert.Equal(t, i, v, "field must be untouched after a failed step")
	}
}

// TestStep_Contracts verifies nil field, nil update, and option panics.
func TestStep_Contracts(t *testing.T) {
	f, err := lattice.NewField[int](1, 1, 1)
	require.NoError(t, err)
	ok := func(snap []int, i int) (int, error) { return 0, nil }

	assert.ErrorIs(t, lattice.Step[int](nil, ok), lattice.ErrNilField)
	assert.ErrorIs(t, lattice.Step(f, nil), lattice.ErrNilUpdate)
	assert.Panics(t, func() { lattice.WithWorkers(0) })
}
