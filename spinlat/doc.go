// Package spinlat simulates a periodic lattice of spin-1/2 sites, each
// carried as a 2×2 density matrix.
//
// Every site sees an effective magnetic field composed of the external
// field, the exchange field J·Σ⟨σ⟩ of its six lattice neighbors, and an
// optional thermal Gaussian kick. The resulting Zeeman Hamiltonian
// H = -(1/2)·(b·σ) generates one Padé-exponential propagator per site per
// step, and the site density evolves by conjugation ρ' = U·ρ·U†.
//
// Steps follow the snapshot-then-replace discipline of the lattice package:
// neighbor expectations and the per-site noise are drawn up front from the
// pre-step state, so the update is a pure function and worker sharding
// (WithWorkers) cannot change the trajectory. A seeded simulation is fully
// reproducible; the generator is seeded once at construction and never
// reseeded.
//
// The package computes observables (mean magnetization and its spread,
// uncertainty products, purity) but does no formatting or I/O; callers
// stream per-step magnetization through a Reporter callback.
package spinlat
