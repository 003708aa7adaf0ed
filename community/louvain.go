// File: louvain.go
// Louvain hierarchical modularity optimization (spec.md §4.D).
package community

import (
	"time"

	"github.com/katalvlaran/lvlath-community/core"
)

// Louvain runs Louvain community detection on g using wf to weight edges.
// wf may be nil, in which case core.DefaultWeightFunc is used.
//
// Returns ErrNilGraph if g is nil, ErrEmptyGraph if g has zero vertices.
// A graph with vertices but zero total edge weight returns a non-error
// singleton-communities Result with zero iterations (spec.md §4.D Failure
// semantics).
func Louvain(g *core.Graph, wf core.WeightFunc, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if wf == nil {
		wf = core.DefaultWeightFunc
	}
	cfg := resolveOptions(opts...)
	start := time.Now()

	w := buildLevel0(g, wf)
	if w.totalWeight() == 0 {
		return singletonResult(w, g.Directed(), time.Since(start), cfg), nil
	}

	outcome, levels, totalIters := runHierarchy(w, cfg, g.VertexCount(), false)

	return buildResult(outcome.finalLevel, outcome.finalAssignment, g.Directed(), levels, totalIters, time.Since(start), cfg), nil
}

// hierarchyOutcome carries the state runHierarchy needs to hand to buildResult:
// the last wgraph level reached and the assignment (node ID at that level ->
// community label) produced by its local-moving phase.
type hierarchyOutcome struct {
	finalLevel      *wgraph
	finalAssignment map[string]string
}

// runHierarchy drives the Louvain/Leiden outer loop: local-moving, optional
// Leiden refinement, then aggregation, until the hierarchy's stopping
// condition (spec.md §4.D step 4: single remaining community, no merge, or
// adaptiveMaxDepth reached).
func runHierarchy(w *wgraph, cfg resolvedOptions, originalN int, leiden bool) (hierarchyOutcome, int, int) {
	maxDepth := adaptiveMaxDepth(originalN)
	totalIterations := 0
	levels := 0

	for level := 0; level < maxDepth; level++ {
		mr := localMovingLoop(w, cfg, level, leiden)
		totalIterations += mr.iterations
		levels++
		assignment := mr.assignment

		if leiden {
			assignment = refineConnectivity(w, assignment)
		}

		// Last level allowed: report this level's own moving-phase assignment
		// rather than aggregating once more, since nothing will consume a
		// further contraction.
		if level == maxDepth-1 {
			return hierarchyOutcome{finalLevel: w, finalAssignment: assignment}, levels, totalIterations
		}

		newW, _ := w.aggregate(assignment, level)
		if len(newW.nodes) == 1 || len(newW.nodes) == len(w.nodes) {
			return hierarchyOutcome{finalLevel: w, finalAssignment: assignment}, levels, totalIterations
		}

		w = newW
	}

	// Unreachable: maxDepth is always >= 1 (adaptiveMaxDepth never returns 0),
	// so the loop above always returns before falling through.
	return hierarchyOutcome{finalLevel: w, finalAssignment: nil}, levels, totalIterations
}
