package spinlat

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/velikhov/qkit/dense"
	"github.com/velikhov/qkit/evolve"
	"github.com/velikhov/qkit/lattice"
	"github.com/velikhov/qkit/op"
)

// Sim is a running spin lattice. Build with New; not safe for concurrent
// use (Step owns the internal parallelism).
type Sim struct {
	opts  Options
	field *lattice.Field[*dense.Dense]
	rng   *rand.Rand
	step  int

	// Cached Pauli observables for the expectation sweeps.
	sx, sy, sz *dense.Dense

	// Propagator options, assembled once.
	evolveOpts []evolve.Option
}

// New builds a lattice of independent Bloch-sphere random pure states.
//
// Each site draws a uniformly distributed direction n on the sphere and
// starts as ρ = (I + n·σ)/2. The generator is seeded once here; every
// later draw (the thermal noise) comes from the same stream, which is what
// makes a seeded run reproducible.
func New(userOpts ...Option) (*Sim, error) {
	o := gatherOptions(userOpts...)

	f, err := lattice.NewField[*dense.Dense](o.nx, o.ny, o.nz)
	if err != nil {
		return nil, fmt.Errorf("spinlat: New: %w", err)
	}

	s := &Sim{
		opts:  o,
		field: f,
		rng:   rand.New(rand.NewSource(o.seed)),
		sx:    op.PauliX(),
		sy:    op.PauliY(),
		sz:    op.PauliZ(),
	}
	s.evolveOpts = []evolve.Option{evolve.WithHBar(o.hbar)}
	if o.padeOrder > 0 {
		s.evolveOpts = append(s.evolveOpts, evolve.WithOrder(o.padeOrder))
	}

	var fillErr error
	f.Fill(func(int) *dense.Dense {
		rho, rerr := blochState(s.rng)
		if rerr != nil && fillErr == nil {
			fillErr = rerr
		}

		return rho
	})
	if fillErr != nil {
		return nil, fmt.Errorf("spinlat: New: %w", fillErr)
	}

	return s, nil
}

// blochState draws a uniform direction n on the unit sphere and returns the
// pure state ρ = (I + n·σ)/2.
func blochState(rng *rand.Rand) (*dense.Dense, error) {
	cosTheta := 2*rng.Float64() - 1
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := 2 * math.Pi * rng.Float64()

	nx := sinTheta * math.Cos(phi)
	ny := sinTheta * math.Sin(phi)
	nz := cosTheta

	return dense.DenseOf([][]complex128{
		{complex((1+nz)/2, 0), complex(nx/2, -ny/2)},
		{complex(nx/2, ny/2), complex((1-nz)/2, 0)},
	})
}

// StepCount returns how many steps have completed.
func (s *Sim) StepCount() int { return s.step }

// Sites returns the number of lattice sites.
func (s *Sim) Sites() int { return s.field.Len() }

// Site returns the density matrix at linear index i.
//
// Errors:
//   - lattice.ErrOutOfRange.
func (s *Sim) Site(i int) (*dense.Dense, error) { return s.field.AtIndex(i) }

// Step advances every site by one time step.
//
// The effective field at site i is
//
//	b = external + J·Σ_neighbors ⟨σ⟩ + ξ
//
// with ξ a per-site Gaussian kick of scale √temperature. Neighbor
// expectations and all noise draws are taken from the pre-step state before
// any site is updated, so the per-site work is pure and shards cleanly.
// Each site then evolves under H = -(1/2)·(b·σ) by a Padé propagator.
//
// A failing site aborts the step with the site index in the error and
// leaves the whole lattice untouched.
func (s *Sim) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("spinlat: Step %d: %w", s.step, err)
	}

	exps, err := s.expectations()
	if err != nil {
		return fmt.Errorf("spinlat: Step %d: %w", s.step, err)
	}
	noise := s.drawNoise()

	update := func(snap []*dense.Dense, i int) (*dense.Dense, error) {
		b := s.opts.field
		for _, n := range s.field.Neighbors6(i) {
			b[0] += s.opts.coupling * exps[n][0]
			b[1] += s.opts.coupling * exps[n][1]
			b[2] += s.opts.coupling * exps[n][2]
		}
		b[0] += noise[i][0]
		b[1] += noise[i][1]
		b[2] += noise[i][2]

		h, herr := zeeman(b)
		if herr != nil {
			return nil, herr
		}
		u, uerr := evolve.Pade(h, s.opts.dt, s.evolveOpts...)
		if uerr != nil {
			return nil, uerr
		}

		return evolve.StepDensity(u, snap[i])
	}

	if err := lattice.Step(s.field, update, lattice.WithWorkers(s.opts.workers)); err != nil {
		return fmt.Errorf("spinlat: Step %d: %w", s.step, err)
	}
	s.step++

	return nil
}

// Run advances the simulation by steps, invoking the reporter (when non-nil)
// after each completed step. Cancellation is honored between steps; a
// canceled run returns the context error with the last completed step intact.
func (s *Sim) Run(ctx context.Context, steps int, rep Reporter) error {
	for k := 0; k < steps; k++ {
		if err := s.Step(ctx); err != nil {
			return err
		}
		if rep != nil {
			m, err := s.Magnetization()
			if err != nil {
				return fmt.Errorf("spinlat: Run: %w", err)
			}
			rep(s.step, m)
		}
	}

	return nil
}

// expectations sweeps the lattice once, collecting (⟨σx⟩, ⟨σy⟩, ⟨σz⟩) per
// site from the current state.
func (s *Sim) expectations() ([][3]float64, error) {
	exps := make([][3]float64, s.field.Len())
	for i := range exps {
		rho, err := s.field.AtIndex(i)
		if err != nil {
			return nil, err
		}
		for c, obs := range []*dense.Dense{s.sx, s.sy, s.sz} {
			v, eerr := dense.Expectation(rho, obs)
			if eerr != nil {
				return nil, fmt.Errorf("site %d: %w", i, eerr)
			}
			exps[i][c] = v
		}
	}

	return exps, nil
}

// drawNoise draws the per-site thermal kicks for one step, serially, so the
// stream order is independent of the worker count.
func (s *Sim) drawNoise() [][3]float64 {
	noise := make([][3]float64, s.field.Len())
	if s.opts.temperature == 0 {
		return noise
	}
	scale := math.Sqrt(s.opts.temperature)
	for i := range noise {
		noise[i][0] = scale * s.rng.NormFloat64()
		noise[i][1] = scale * s.rng.NormFloat64()
		noise[i][2] = scale * s.rng.NormFloat64()
	}

	return noise
}

// zeeman builds H = -(1/2)·(bx·σx + by·σy + bz·σz) directly:
//
//	[ -bz/2        -(bx - i·by)/2 ]
//	[ -(bx + i·by)/2       bz/2   ]
func zeeman(b [3]float64) (*dense.Dense, error) {
	return dense.DenseOf([][]complex128{
		{complex(-b[2]/2, 0), complex(-b[0]/2, b[1]/2)},
		{complex(-b[0]/2, -b[1]/2), complex(b[2]/2, 0)},
	})
}
