// Package evolve: functional configuration for the exponential strategies.
// Defaults are constants (single source of truth); WithX constructors panic
// only on nonsensical values (programmer error), never on data.

package evolve

import "math"

const (
	// DefaultHBar is the reduced Planck constant in the natural units the
	// simulations use. Callers working in SI pass their own via WithHBar.
	DefaultHBar = 1.0

	// DefaultTaylorOrder is the truncation order of the Taylor strategy.
	DefaultTaylorOrder = 20

	// DefaultPadeOrder is the diagonal Padé order. Order 6 with scaling and
	// squaring holds the unitarity defect below 1e-8 for ‖X‖ ≤ 1/2.
	DefaultPadeOrder = 6

	// DefaultTolerance is forwarded to the eigendecomposition used by the
	// Eigen strategy.
	DefaultTolerance = 1e-10

	// padeScaleLimit is the ‖X‖∞ ceiling after scaling; 2⁻ˢ scaling brings
	// the argument under it before the rational approximant is formed.
	padeScaleLimit = 0.5
)

const (
	panicHBarInvalid      = "evolve: WithHBar: hbar must be finite, > 0"
	panicOrderInvalid     = "evolve: WithOrder: order must be >= 1"
	panicToleranceInvalid = "evolve: WithTolerance: tol must be finite, > 0"
)

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	hbar  float64 // > 0; DefaultHBar
	order int     // 0 = strategy default (Taylor 20, Padé 6)
	tol   float64 // > 0; DefaultTolerance (Eigen strategy)
}

// WithHBar sets the reduced Planck constant used to scale the generator.
// Panics with a stable message when hbar is non-positive or non-finite.
func WithHBar(hbar float64) Option {
	if hbar <= 0 || math.IsNaN(hbar) || math.IsInf(hbar, 0) {
		panic(panicHBarInvalid)
	}

	return func(o *Options) { o.hbar = hbar }
}

// WithOrder sets the series/approximant order for Taylor and Pade.
// Panics with a stable message when order < 1.
func WithOrder(order int) Option {
	if order < 1 {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithTolerance sets the eigendecomposition tolerance for the Eigen strategy.
// Panics with a stable message when tol is non-positive or non-finite.
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies user setters on top of the documented defaults.
// order stays 0 ("strategy default") unless WithOrder was given.
func gatherOptions(user ...Option) Options {
	o := Options{
		hbar: DefaultHBar,
		tol:  DefaultTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// orderOr resolves the effective order against a strategy default.
func (o Options) orderOr(def int) int {
	if o.order > 0 {
		return o.order
	}

	return def
}
