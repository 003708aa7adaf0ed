package community

// Adaptive defaults scale thresholds and iteration caps with node count, per
// spec.md §4.D. These are the baseline values; Option overrides
// (WithMaxIterations, WithMinModularityIncrease) take precedence when set.

// adaptiveThreshold returns the minimum ΔQ required to accept a move.
func adaptiveThreshold(n int) float64 {
	if n <= 500 {
		return 1e-6
	}

	return 1e-5
}

// adaptiveFirstLevelCap returns the local-moving iteration cap for the first
// hierarchy level.
func adaptiveFirstLevelCap(n int) int {
	if n > 200 {
		return 20
	}

	return 45 // representative value within the spec's documented 40-50 range
}

// adaptiveSubsequentCap returns the local-moving iteration cap for hierarchy
// levels after the first.
func adaptiveSubsequentCap(leiden bool) int {
	if leiden {
		return 12
	}

	return 40
}

// adaptiveConvergenceRounds returns the number of consecutive no-move rounds
// required to declare local-moving convergence.
func adaptiveConvergenceRounds(n int) int {
	if n > 500 {
		return 2
	}

	return 3
}

// adaptiveMaxDepth returns the maximum number of hierarchy levels.
func adaptiveMaxDepth(n int) int {
	if n > 50 {
		return 3
	}

	return 1
}

// resolveIterationCap applies an Option override if present, else the
// adaptive default for the given level.
func (o resolvedOptions) resolveIterationCap(n, level int, leiden bool) int {
	if o.maxIterationsOverride != nil {
		return *o.maxIterationsOverride
	}
	if level == 0 {
		return adaptiveFirstLevelCap(n)
	}

	return adaptiveSubsequentCap(leiden)
}

// resolveMinIncrease applies an Option override if present, else the
// adaptive threshold for the given node count.
func (o resolvedOptions) resolveMinIncrease(n int) float64 {
	if o.minIncreaseOverride != nil {
		return *o.minIncreaseOverride
	}

	return adaptiveThreshold(n)
}
