package ddo

import "runtime"

// config holds every tunable of a Solver beyond the problem/relaxation/
// ranking/width quadruple that defines the optimization problem itself.
type config[S comparable] struct {
	numWorkers int
	fringe     Fringe[S]
	dominance  *SimpleDominanceChecker[S]
	cutoff     Cutoff
	cutsetType CutsetType
	trace      func(string)
}

func defaultConfig[S comparable](ranking StateRanking[S]) config[S] {
	return config[S]{
		numWorkers: runtime.NumCPU(),
		fringe:     NewSimpleFringe[S](ranking),
		cutoff:     NoCutoff{},
		cutsetType: LastExactLayer,
	}
}

// Option configures a Solver at construction time. Options are applied in
// the order given to NewSolver, later options overriding earlier ones.
type Option[S comparable] func(*config[S])

// WithWorkers fixes the number of goroutines the parallel engine spawns.
// n <= 0 falls back to runtime.NumCPU().
func WithWorkers[S comparable](n int) Option[S] {
	return func(c *config[S]) {
		if n > 0 {
			c.numWorkers = n
		}
	}
}

// WithFringe replaces the default SimpleFringe with a caller-supplied one
// (e.g. a NoDupFringe).
func WithFringe[S comparable](f Fringe[S]) Option[S] {
	return func(c *config[S]) { c.fringe = f }
}

// WithDominance enables dominance-based pruning across the whole search.
func WithDominance[S comparable](d *SimpleDominanceChecker[S]) Option[S] {
	return func(c *config[S]) { c.dominance = d }
}

// WithCutoff installs a cooperative cutoff, checked between every pair of
// layers a Compiler compiles.
func WithCutoff[S comparable](cutoff Cutoff) Option[S] {
	return func(c *config[S]) { c.cutoff = cutoff }
}

// WithCutsetType selects which policy extracts the exact cutset from a
// relaxed diagram. The default is LastExactLayer.
func WithCutsetType[S comparable](kind CutsetType) Option[S] {
	return func(c *config[S]) { c.cutsetType = kind }
}

// WithTrace installs a hook called with a short description every time the
// engine records a new incumbent. Compilations and the end of the search
// are not traced. Nil by default, meaning no tracing overhead.
func WithTrace[S comparable](trace func(string)) Option[S] {
	return func(c *config[S]) { c.trace = trace }
}
