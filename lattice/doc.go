// Package lattice provides a generic periodic 3-D cell arena and a
// deterministic stepping discipline over it.
//
// A Field[T] stores an X×Y×Z box of cells in one flat slice, addressed
// either by linear index or by periodically wrapped coordinates: every
// coordinate is taken modulo its extent, so cell (-1, 0, 0) is the right
// edge of the box and neighbor arithmetic never branches on boundaries.
//
// Step advances a field snapshot-then-replace: it takes an immutable copy
// of the cell slice, computes every new cell purely from that copy into a
// fresh buffer, and swaps the buffer in wholesale. Update order therefore
// cannot influence the result, which is what makes the optional worker
// sharding (WithWorkers) safe: parallel and serial stepping are bitwise
// identical as long as the update function is pure.
package lattice
