// Package spinlat: functional configuration. Defaults are constants (single
// source of truth); WithX constructors panic only on nonsensical values
// (programmer error), never on data.

package spinlat

import "math"

const (
	// DefaultExtent is the side length of the default cubic lattice.
	DefaultExtent = 4

	// DefaultDt is the time step per Step call, in natural units.
	DefaultDt = 0.05

	// DefaultCoupling is the exchange coupling J between neighbor sites.
	DefaultCoupling = 1.0

	// DefaultTemperature disables the thermal noise term.
	DefaultTemperature = 0.0

	// DefaultSeed makes unconfigured simulations reproducible by default.
	DefaultSeed = 1

	// DefaultHBar is the reduced Planck constant in natural units.
	DefaultHBar = 1.0

	// DefaultWorkers steps the lattice serially.
	DefaultWorkers = 1
)

const (
	panicExtentInvalid      = "spinlat: WithExtents: all sides must be >= 1"
	panicDtInvalid          = "spinlat: WithDt: dt must be finite, > 0"
	panicTemperatureInvalid = "spinlat: WithTemperature: t must be finite, >= 0"
	panicHBarInvalid        = "spinlat: WithHBar: hbar must be finite, > 0"
	panicOrderInvalid       = "spinlat: WithPadeOrder: order must be >= 1"
	panicWorkersInvalid     = "spinlat: WithWorkers: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; New accepts ...Option.
type Options struct {
	nx, ny, nz  int        // >= 1 each; DefaultExtent cubed
	dt          float64    // > 0; DefaultDt
	coupling    float64    // exchange J; DefaultCoupling
	field       [3]float64 // external field; zero by default
	temperature float64    // >= 0; DefaultTemperature
	seed        int64      // DefaultSeed
	hbar        float64    // > 0; DefaultHBar
	padeOrder   int        // 0 = Padé strategy default
	workers     int        // >= 1; DefaultWorkers
}

// WithExtents sets the lattice box sides. Panics when any side is < 1.
func WithExtents(nx, ny, nz int) Option {
	if nx < 1 || ny < 1 || nz < 1 {
		panic(panicExtentInvalid)
	}

	return func(o *Options) { o.nx, o.ny, o.nz = nx, ny, nz }
}

// WithDt sets the time step. Panics when dt is non-positive or non-finite.
func WithDt(dt float64) Option {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(panicDtInvalid)
	}

	return func(o *Options) { o.dt = dt }
}

// WithCoupling sets the exchange coupling J. Zero decouples the sites;
// negative values flip the alignment tendency, so any finite value is legal.
func WithCoupling(j float64) Option {
	return func(o *Options) { o.coupling = j }
}

// WithField sets the external field 3-vector.
func WithField(bx, by, bz float64) Option {
	return func(o *Options) { o.field = [3]float64{bx, by, bz} }
}

// WithTemperature sets the thermal noise scale. Panics when t is negative
// or non-finite.
func WithTemperature(tmp float64) Option {
	if tmp < 0 || math.IsNaN(tmp) || math.IsInf(tmp, 0) {
		panic(panicTemperatureInvalid)
	}

	return func(o *Options) { o.temperature = tmp }
}

// WithSeed sets the RNG seed for the initial states and the noise draws.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithHBar sets the reduced Planck constant. Panics when hbar is
// non-positive or non-finite.
func WithHBar(hbar float64) Option {
	if hbar <= 0 || math.IsNaN(hbar) || math.IsInf(hbar, 0) {
		panic(panicHBarInvalid)
	}

	return func(o *Options) { o.hbar = hbar }
}

// WithPadeOrder overrides the Padé order of the per-site propagator.
// Panics when order < 1.
func WithPadeOrder(order int) Option {
	if order < 1 {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.padeOrder = order }
}

// WithWorkers sets how many goroutines each Step shards the sites across.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		nx:          DefaultExtent,
		ny:          DefaultExtent,
		nz:          DefaultExtent,
		dt:          DefaultDt,
		coupling:    DefaultCoupling,
		temperature: DefaultTemperature,
		seed:        DefaultSeed,
		hbar:        DefaultHBar,
		workers:     DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
