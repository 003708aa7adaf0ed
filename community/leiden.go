// File: leiden.go
// Leiden community detection: Louvain's local-moving phase followed by a
// connectivity-refinement phase that guarantees every returned community
// induces a connected subgraph (spec.md §4.D, Leiden variant).
package community

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/lvlath-community/core"
)

// Leiden runs Leiden community detection on g using wf to weight edges.
// It has the same signature, validation and failure semantics as Louvain;
// the only behavioral difference is the per-level connectivity-refinement
// pass, which splits any community whose induced subgraph is disconnected
// into one community per connected component before aggregation.
func Leiden(g *core.Graph, wf core.WeightFunc, opts ...Option) (*Result, error) {
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

	outcome, levels, totalIters := runHierarchy(w, cfg, g.VertexCount(), true)

	return buildResult(outcome.finalLevel, outcome.finalAssignment, g.Directed(), levels, totalIters, time.Since(start), cfg), nil
}

// refineConnectivity splits every community in assignment whose induced
// subgraph (over w, edges viewed as undirected for connectivity purposes)
// is disconnected, into one community per connected component. The
// component containing the smallest member ID keeps the original label;
// every other component gets a fresh "<label>_cc{n}" label, deterministic
// given w's sorted node order.
func refineConnectivity(w *wgraph, assignment map[string]string) map[string]string {
	membersOf := make(map[string][]string)
	for _, id := range w.nodes {
		c := assignment[id]
		membersOf[c] = append(membersOf[c], id)
	}

	refined := make(map[string]string, len(assignment))
	for label, members := range membersOf {
		if len(members) <= 1 {
			refined[members[0]] = label

			continue
		}
		sort.Strings(members)
		inComm := make(map[string]bool, len(members))
		for _, id := range members {
			inComm[id] = true
		}

		components := connectedComponents(w, members, inComm)
		if len(components) == 1 {
			for _, id := range members {
				refined[id] = label
			}

			continue
		}

		for i, comp := range components {
			newLabel := label
			if i > 0 {
				newLabel = fmt.Sprintf("%s_cc%d", label, i)
			}
			for _, id := range comp {
				refined[id] = newLabel
			}
		}
	}

	return refined
}

// connectedComponents returns the connected components of the induced
// subgraph over members (restricted to edges whose other endpoint is also
// in inComm), as BFS traversals in deterministic order: members is iterated
// in sorted order and each component's nodes keep BFS discovery order
// starting from the smallest unvisited member.
func connectedComponents(w *wgraph, members []string, inComm map[string]bool) [][]string {
	visited := make(map[string]bool, len(members))
	var components [][]string

	for _, start := range members {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []string{start}
		var comp []string

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)

			for _, v := range sortedNeighborsInSet(w, u, inComm) {
				if visited[v] {
					continue
				}
				visited[v] = true
				queue = append(queue, v)
			}
		}

		components = append(components, comp)
	}

	return components
}

// sortedNeighborsInSet returns u's neighbors (outW and inW combined, self
// excluded) that belong to inComm, in sorted order for deterministic BFS.
func sortedNeighborsInSet(w *wgraph, u string, inComm map[string]bool) []string {
	seen := make(map[string]bool)
	var out []string
	for v := range w.outW[u] {
		if v != u && inComm[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for v := range w.inW[u] {
		if v != u && inComm[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}
