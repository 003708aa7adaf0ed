package community

import (
	"sort"
	"time"

	"github.com/katalvlaran/lvlath-community/modularity"
)

// Community describes one detected community in a Result.
type Community struct {
	ID            int
	Members       []string // original core.Graph vertex IDs, sorted
	InternalEdges int
	SigmaTot      float64
	SigmaIn       float64
	Modularity    float64 // this community's contribution to the global Q
	Density       float64
}

// Metadata carries run diagnostics alongside a Result.
type Metadata struct {
	Runtime         time.Duration
	TotalIterations int
	Configuration   Configuration
}

// Configuration snapshots the resolved options used for a run, for
// inclusion in Metadata (spec.md §6: metadata{runtime, total_iterations, configuration}).
type Configuration struct {
	Resolution        float64
	Seed              *int64
	NeighborSelection NeighborSelection
}

// Result is the output of Louvain or Leiden.
type Result struct {
	Communities []Community
	Modularity  float64
	Levels      int
	Metadata    Metadata
}

// buildResult turns a final wgraph-level assignment (node ID in the last
// aggregated level -> community label) plus that level's member sets into a
// public Result, computing per-community aggregates and global modularity.
func buildResult(w *wgraph, assignment map[string]string, directed bool, levels, totalIterations int, elapsed time.Duration, cfg resolvedOptions) *Result {
	m := w.totalWeight()

	type agg struct {
		members       []string
		sigmaTot      float64
		sigmaIn       float64 // half-edge convention: each undirected internal edge counted once per endpoint (2 * actual weight for a single edge... see computeSigmaIn)
		internalEdges int
	}
	byComm := make(map[string]*agg)
	for _, id := range w.nodes {
		c := assignment[id]
		a, ok := byComm[c]
		if !ok {
			a = &agg{}
			byComm[c] = a
		}
		a.members = append(a.members, w.members[id]...)
		a.sigmaTot += w.degree[id]
	}

	// sigmaIn and internal-edge counts: sum internal contracted edge weight
	// (both directions for undirected, self-loop included) over all pairs of
	// nodes mapped to the same community, matching spec.md §3's σ_in
	// definition (each undirected edge counted once per endpoint).
	for _, u := range w.nodes {
		cu := assignment[u]
		a := byComm[cu]
		for v, wt := range w.outW[u] {
			if assignment[v] != cu {
				continue
			}
			a.sigmaIn += wt
			// Undirected edges are mirrored into outW both ways; count each
			// pair once (v==u for a self-loop, u<v for a mirrored pair).
			// Directed edges appear in outW in one direction only, so every
			// occurrence is a distinct edge.
			if directed || v == u || u < v {
				a.internalEdges++
			}
		}
		for v, wt := range w.inW[u] {
			if assignment[v] == cu {
				a.sigmaIn += wt
			}
		}
	}

	var labels []string
	for c := range byComm {
		labels = append(labels, c)
	}
	sort.Strings(labels)

	communities := make([]Community, 0, len(labels))
	var q float64
	for i, label := range labels {
		a := byComm[label]
		sort.Strings(a.members)
		var contribution float64
		if m > 0 {
			contribution = a.sigmaIn/(2*m) - (a.sigmaTot/(2*m))*(a.sigmaTot/(2*m))
		}
		q += contribution
		communities = append(communities, Community{
			ID:            i,
			Members:       a.members,
			InternalEdges: a.internalEdges,
			SigmaTot:      a.sigmaTot,
			SigmaIn:       a.sigmaIn,
			Modularity:    contribution,
			Density:       modularity.Density(a.internalEdges, len(a.members), directed),
		})
	}

	return &Result{
		Communities: communities,
		Modularity:  q,
		Levels:      levels,
		Metadata: Metadata{
			Runtime:         elapsed,
			TotalIterations: totalIterations,
			Configuration: Configuration{
				Resolution:        cfg.resolution,
				Seed:              cfg.seed,
				NeighborSelection: cfg.neighborSelection,
			},
		},
	}
}

// singletonResult builds the non-error result for a graph with nodes but
// zero total edge weight (spec.md §4.D Failure semantics): every node its
// own community, zero iterations.
func singletonResult(w *wgraph, directed bool, elapsed time.Duration, cfg resolvedOptions) *Result {
	assignment := make(map[string]string, len(w.nodes))
	for _, id := range w.nodes {
		assignment[id] = id
	}

	return buildResult(w, assignment, directed, 0, 0, elapsed, cfg)
}
