package spectral

// Option configures Partition via functional options, following the same
// idiom as github.com/katalvlaran/lvlath-community/community.Option.
type Option func(*resolvedOptions)

// resolvedOptions holds the configuration actually used by Partition after
// all Option values have been applied.
type resolvedOptions struct {
	maxKMeansIterations int
	balanceTolerance    float64
	maxBalanceMoves     int
	seed                int64
}

// WithMaxKMeansIterations overrides the Lloyd-iteration cap (default 100).
// Non-positive values are ignored.
func WithMaxKMeansIterations(n int) Option {
	return func(o *resolvedOptions) {
		if n > 0 {
			o.maxKMeansIterations = n
		}
	}
}

// WithBalanceTolerance overrides the maximum allowed ratio of the largest
// partition's size to the perfectly-even size n/k (default 1.2); the size
// cap applied is ceil(tolerance*n/k).
// Values below 1.0 are ignored (a partition can never be smaller than
// perfectly even without leaving nodes unassigned).
func WithBalanceTolerance(t float64) Option {
	return func(o *resolvedOptions) {
		if t >= 1.0 {
			o.balanceTolerance = t
		}
	}
}

// WithMaxBalanceMoves overrides the cap on single-node moves the balance
// repair pass will perform (default 1000). Non-positive values are ignored.
func WithMaxBalanceMoves(n int) Option {
	return func(o *resolvedOptions) {
		if n > 0 {
			o.maxBalanceMoves = n
		}
	}
}

// WithSeed stores seed in the resolved options. Partition does not read it:
// k-means++ seeding and balance repair are deterministic, so the seed does
// not change the result.
func WithSeed(seed int64) Option {
	return func(o *resolvedOptions) {
		o.seed = seed
	}
}

func defaultResolvedOptions() resolvedOptions {
	return resolvedOptions{
		maxKMeansIterations: 100,
		balanceTolerance:    1.2,
		maxBalanceMoves:     1000,
		seed:                1,
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
