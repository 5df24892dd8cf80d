package lattice

// DefaultWorkers is the worker count Step uses unless WithWorkers raises
// it. Serial by default: determinism first, parallelism on request.
const DefaultWorkers = 1

const panicWorkersInvalid = "lattice: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // >= 1; DefaultWorkers
}

// WithWorkers sets how many goroutines Step shards the cells across.
// Panics with a stable message when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
