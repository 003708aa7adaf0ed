package idt

// Option configures Expand via functional options, following the same idiom
// as github.com/katalvlaran/lvlath-community/community.Option.
type Option func(*resolvedOptions)

type resolvedOptions struct {
	delayIterations  int
	overlapThreshold float64
}

// WithDelayIterations overrides the number of additional iterations IDT
// performs after overlap is first detected before terminating (default 50).
// Non-positive values are ignored.
func WithDelayIterations(n int) Option {
	return func(o *resolvedOptions) {
		if n > 0 {
			o.delayIterations = n
		}
	}
}

// WithOverlapThreshold overrides the Jaccard-similarity threshold at which
// two frontiers are considered to have overlapped (default 0.5). Values
// outside (0,1] are ignored.
func WithOverlapThreshold(t float64) Option {
	return func(o *resolvedOptions) {
		if t > 0 && t <= 1 {
			o.overlapThreshold = t
		}
	}
}

func defaultResolvedOptions() resolvedOptions {
	return resolvedOptions{
		delayIterations:  50,
		overlapThreshold: 0.5,
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
