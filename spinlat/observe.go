// Package spinlat: lattice-wide observables. All of them sweep the current
// state read-only; none advances the simulation.

package spinlat

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/velikhov/qkit/dense"
)

// Magnetization is the lattice-mean spin expectation, one component per
// Pauli axis.
type Magnetization [3]float64

// Reporter receives the step number and the magnetization after each
// completed step of Run. The simulation does no formatting or I/O; whatever
// the reporter does with the values is the caller's business.
type Reporter func(step int, m Magnetization)

// components collects the per-site expectations of all three Pauli axes as
// three parallel slices.
func (s *Sim) components() ([3][]float64, error) {
	var comps [3][]float64
	exps, err := s.expectations()
	if err != nil {
		return comps, fmt.Errorf("spinlat: observables: %w", err)
	}
	for c := 0; c < 3; c++ {
		comps[c] = make([]float64, len(exps))
		for i := range exps {
			comps[c][i] = exps[i][c]
		}
	}

	return comps, nil
}

// Magnetization returns the mean (⟨σx⟩, ⟨σy⟩, ⟨σz⟩) over all sites.
func (s *Sim) Magnetization() (Magnetization, error) {
	var m Magnetization
	comps, err := s.components()
	if err != nil {
		return m, err
	}
	for c := 0; c < 3; c++ {
		m[c] = stat.Mean(comps[c], nil)
	}

	return m, nil
}

// MagnetizationSpread returns the per-axis standard deviation of the site
// expectations, a disorder measure of the lattice.
func (s *Sim) MagnetizationSpread() (Magnetization, error) {
	var m Magnetization
	comps, err := s.components()
	if err != nil {
		return m, err
	}
	for c := 0; c < 3; c++ {
		m[c] = stat.StdDev(comps[c], nil)
	}

	return m, nil
}

// Uncertainty returns the lattice-mean product Δσx·Δσy, where for a
// spin-1/2 state Δσ = √(1 - ⟨σ⟩²) since σ² = I.
func (s *Sim) Uncertainty() (float64, error) {
	comps, err := s.components()
	if err != nil {
		return 0, err
	}
	prods := make([]float64, len(comps[0]))
	for i := range prods {
		dx := math.Sqrt(math.Max(0, 1-comps[0][i]*comps[0][i]))
		dy := math.Sqrt(math.Max(0, 1-comps[1][i]*comps[1][i]))
		prods[i] = dx * dy
	}

	return stat.Mean(prods, nil), nil
}

// PurityMean returns the lattice-mean purity tr(ρ²). Pure states give 1;
// the maximally mixed 2×2 state gives 1/2.
func (s *Sim) PurityMean() (float64, error) {
	purities := make([]float64, s.field.Len())
	for i := range purities {
		rho, err := s.field.AtIndex(i)
		if err != nil {
			return 0, fmt.Errorf("spinlat: observables: %w", err)
		}
		sq, err := dense.Mul(rho, rho)
		if err != nil {
			return 0, fmt.Errorf("spinlat: observables: site %d: %w", i, err)
		}
		tr, err := dense.Trace(sq)
		if err != nil {
			return 0, fmt.Errorf("spinlat: observables: site %d: %w", i, err)
		}
		purities[i] = real(tr)
	}

	return stat.Mean(purities, nil), nil
}
