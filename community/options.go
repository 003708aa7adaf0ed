package community

// NeighborSelection controls how the local-moving loop picks a destination
// community for a node (Louvain's local-moving loop, also used by Leiden's
// pre-refinement moving phase).
type NeighborSelection int

const (
	// Best evaluates ΔQ for every neighboring community and moves to the
	// argmax. This is the default; "random" is reported (spec.md §9) to
	// degrade modularity on citation-like graphs and is experimental.
	Best NeighborSelection = iota

	// Random iterates neighboring communities in shuffled order and accepts
	// the first strictly-positive ΔQ.
	Random
)

// Option configures Louvain/Leiden via functional options, following the
// same idiom as github.com/katalvlaran/lvlath-community/dijkstra.Option.
type Option func(*resolvedOptions)

// resolvedOptions holds the configuration actually used by the engine after
// all Option values and adaptive defaults have been applied. Overrides are
// pointers so "unset" is distinguishable from "explicitly set to zero".
type resolvedOptions struct {
	resolution            float64
	maxIterationsOverride  *int
	minIncreaseOverride    *float64
	seed                   *int64
	neighborSelection      NeighborSelection
}

// WithResolution sets the modularity resolution parameter (default 1.0).
// Non-positive values are invalid input and are ignored, falling back to
// the default, per the package's "malformed options fall back to adaptive
// defaults" error policy.
func WithResolution(r float64) Option {
	return func(o *resolvedOptions) {
		if r > 0 {
			o.resolution = r
		}
	}
}

// WithMaxIterations overrides the per-phase iteration cap that would
// otherwise be chosen adaptively from node count (spec.md §4.D). Non-positive
// values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *resolvedOptions) {
		if n > 0 {
			o.maxIterationsOverride = &n
		}
	}
}

// WithMinModularityIncrease overrides the adaptive ΔQ acceptance threshold.
// Negative values are ignored (a negative threshold would accept
// modularity-decreasing moves).
func WithMinModularityIncrease(x float64) Option {
	return func(o *resolvedOptions) {
		if x >= 0 {
			o.minIncreaseOverride = &x
		}
	}
}

// WithSeed fixes the RNG seed used for Louvain's Fisher-Yates node-visit
// shuffle, making the local-moving loop deterministic across runs. Leiden's
// refinement phase is seed-independent (breadth-first traversal order is
// determined by the graph, not by the RNG).
func WithSeed(seed int64) Option {
	return func(o *resolvedOptions) {
		o.seed = &seed
	}
}

// WithNeighborSelection selects between Best (default, argmax ΔQ) and Random
// (first strictly-positive ΔQ in shuffled order) neighbor-community
// selection in the local-moving loop.
func WithNeighborSelection(mode NeighborSelection) Option {
	return func(o *resolvedOptions) {
		o.neighborSelection = mode
	}
}

// defaultResolvedOptions returns the baseline configuration before adaptive,
// node-count-dependent defaults (iteration caps, thresholds, convergence
// rounds, max depth) are applied per level.
func defaultResolvedOptions() resolvedOptions {
	return resolvedOptions{
		resolution:        1.0,
		neighborSelection: Best,
	}
}

func resolveOptions(opts ...Option) resolvedOptions {
	o := defaultResolvedOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
