// Package modularity implements the Newman-Girvan modularity kernel shared by
// the Louvain and Leiden community-detection engines: weighted degree, total
// edge weight, the ΔQ move-gain formula, and the conductance/density
// community-quality metrics.
//
// None of these functions touch a core.Graph directly; they operate on the
// plain numeric aggregates (σ_tot, σ_in, k, k_in, m) that the community
// package's engine maintains per hierarchy level. This keeps the kernel
// reusable for both super-node-aggregated Louvain levels and Leiden's
// refined communities without re-deriving the aggregates each time.
package modularity

// DeltaQ computes the modularity gain of moving a node (or super-node) with
// weighted degree k and weight kIn already incident to the target community
// into that community, whose current aggregates are sigmaTot (Σ of member
// weighted degrees) and sigmaIn (Σ of internal edge weights). m is half the
// total graph edge weight (so 2m is the usual modularity normalizer).
//
// ΔQ(k, k_in, σ_tot, σ_in, m)
//
//	= (σ_in + k_in)/(2m) − ((σ_tot + k)/(2m))²
//	  − [ σ_in/(2m) − (σ_tot/(2m))² − (k/(2m))² ]
//
// Callers must treat m == 0 as "no moves possible" (an empty or edgeless
// graph); DeltaQ itself returns 0 in that case rather than dividing by zero,
// since the empty-graph/zero-weight short-circuit belongs to the engine, not
// the kernel.
func DeltaQ(k, kIn, sigmaTot, sigmaIn, m float64) float64 {
	if m == 0 {
		return 0
	}
	twoM := 2 * m

	withMove := (sigmaIn+kIn)/twoM - square((sigmaTot+k)/twoM)
	withoutMove := sigmaIn/twoM - square(sigmaTot/twoM) - square(k/twoM)

	return withMove - withoutMove
}

// DeltaQWithResolution generalizes DeltaQ with the resolution parameter used
// by the Louvain/Leiden engine (spec.md §4.D lists resolution, default 1.0,
// as an engine input; §4.C's canonical ΔQ formula is the resolution=1 case).
// Increasing resolution penalizes the null-model term more heavily, which
// favors smaller, more numerous communities; resolution == 1 reproduces
// DeltaQ exactly.
func DeltaQWithResolution(k, kIn, sigmaTot, sigmaIn, m, resolution float64) float64 {
	if m == 0 {
		return 0
	}
	twoM := 2 * m

	withMove := (sigmaIn+kIn)/twoM - resolution*square((sigmaTot+k)/twoM)
	withoutMove := sigmaIn/twoM - resolution*square(sigmaTot/twoM) - resolution*square(k/twoM)

	return withMove - withoutMove
}

// WeightedDegree sums the weights of edges incident to a node, as produced
// by a core.WeightFunc over that node's outgoing/neighbor edges. Directed
// graphs should pass the sum of outgoing plus cached incoming weight; the
// caller (community engine) owns that cache, so WeightedDegree here is a
// trivial summation helper kept for symmetry with the other kernel functions.
func WeightedDegree(edgeWeights []float64) float64 {
	var sum float64
	for _, w := range edgeWeights {
		sum += w
	}

	return sum
}

// TotalEdgeWeight returns m, half the sum of all weighted degrees in the
// graph (equivalently, the sum of edge weights with undirected edges counted
// once and directed edges counted once per direction actually present).
// The community engine computes this once per hierarchy level by summing
// WeightedDegree across all current super-nodes and dividing by 2.
func TotalEdgeWeight(weightedDegrees []float64) float64 {
	return WeightedDegree(weightedDegrees) / 2
}

// Conductance returns |cut(S)| / min(vol(S), vol(V\S)), clamped to [0,1].
// cutWeight is the total weight of edges crossing the community boundary;
// volS is the community's σ_tot; volComplement is vol(V) - volS.
// Returns 0 when the smaller of the two volumes is non-positive (degenerate/empty set).
func Conductance(cutWeight, volS, volComplement float64) float64 {
	denom := volS
	if volComplement < denom {
		denom = volComplement
	}
	if denom <= 0 {
		return 0
	}
	c := cutWeight / denom
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}

	return c
}

// Density returns actualInternalEdges / maxInternalPairs for a community of
// size n, where maxInternalPairs is n(n-1) for directed graphs or n(n-1)/2
// for undirected graphs. Returns 0 for n <= 1 (no possible internal pairs).
func Density(actualInternalEdges int, n int, directed bool) float64 {
	if n <= 1 {
		return 0
	}
	var maxPairs float64
	if directed {
		maxPairs = float64(n) * float64(n-1)
	} else {
		maxPairs = float64(n) * float64(n-1) / 2
	}
	if maxPairs <= 0 {
		return 0
	}

	return float64(actualInternalEdges) / maxPairs
}

func square(x float64) float64 { return x * x }
