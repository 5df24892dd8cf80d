package lattice

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Step advances the field one generation, snapshot-then-replace.
//
// Every new cell is computed by update from the immutable snapshot alone,
// into a fresh buffer; the buffer replaces the field's cells only after
// every cell succeeded. A failing cell aborts the whole step, the error
// names the cell, and the field is left exactly as it was.
//
// WithWorkers(n) shards the cell range across n goroutines in an errgroup.
// Because update reads only the snapshot, the sharding cannot change the
// result; update must be pure (no writes to the snapshot, no shared state).
//
// Errors:
//   - ErrNilField, ErrNilUpdate.
//   - the first update error, wrapped with the cell index.
//
// Complexity: O(Len · cost(update)) work, O(Len) extra space.
func Step[T any](f *Field[T], update func(snapshot []T, idx int) (T, error), opts ...Option) error {
	if f == nil {
		return fmt.Errorf("Step: %w", ErrNilField)
	}
	if update == nil {
		return fmt.Errorf("Step: %w", ErrNilUpdate)
	}
	o := gatherOptions(opts...)

	snap := f.Snapshot()
	next := make([]T, len(snap))

	if o.workers == 1 {
		for i := range snap {
			v, err := update(snap, i)
			if err != nil {
				return fmt.Errorf("Step: cell %d: %w", i, err)
			}
			next[i] = v
		}
		f.cells = next

		return nil
	}

	// Contiguous shards; each worker writes a disjoint range of next.
	var g errgroup.Group
	chunk := (len(snap) + o.workers - 1) / o.workers
	for lo := 0; lo < len(snap); lo += chunk {
		lo := lo
		hi := lo + chunk
		if hi > len(snap) {
			hi = len(snap)
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				v, err := update(snap, i)
				if err != nil {
					return fmt.Errorf("cell %d: %w", i, err)
				}
				next[i] = v
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("Step: %w", err)
	}
	f.cells = next

	return nil
}
