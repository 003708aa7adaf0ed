package community

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-community/core"
)

// wgraph is the engine's working representation of a hierarchy level: a
// weighted multigraph over (super-)node IDs, built once per level from the
// previous level's aggregation. It never touches a core.Graph directly after
// level 0; buildLevel0 is the only bridge from core.Graph into this shape.
//
// outW[u][v] is the weight flowing u->v, with undirected edges mirrored into
// both outW[u][v] and outW[v][u] at construction time. inW only holds the
// incoming side of edges that were NOT mirrored (true directed edges),
// giving the "cached incoming" lookup spec.md §4.D requires for directed
// graphs without rescanning the whole edge set on every move evaluation.
// selfLoop[v] is the weight of loops at v, already included once in
// outW[v][v]; degree() adds it a second time, giving the standard
// modularity convention that a self-loop counts twice toward a node's
// weighted degree.
type wgraph struct {
	nodes    []string
	outW     map[string]map[string]float64
	inW      map[string]map[string]float64
	selfLoop map[string]float64
	degree   map[string]float64
	// members maps each current node ID to the set of original core.Graph
	// vertex IDs it represents (a singleton at level 0).
	members map[string][]string
}

func newWGraph() *wgraph {
	return &wgraph{
		outW:     make(map[string]map[string]float64),
		inW:      make(map[string]map[string]float64),
		selfLoop: make(map[string]float64),
		degree:   make(map[string]float64),
		members:  make(map[string][]string),
	}
}

func (w *wgraph) addOut(u, v string, weight float64) {
	if w.outW[u] == nil {
		w.outW[u] = make(map[string]float64)
	}
	w.outW[u][v] += weight
}

func (w *wgraph) addIn(u, v string, weight float64) {
	if w.inW[u] == nil {
		w.inW[u] = make(map[string]float64)
	}
	w.inW[u][v] += weight
}

// buildLevel0 constructs the initial wgraph from a core.Graph, using wf to
// derive each edge's weight. Self-loops and parallel edges are folded into
// the aggregates they contribute to; no per-edge identity survives past this
// function.
func buildLevel0(g *core.Graph, wf core.WeightFunc) *wgraph {
	w := newWGraph()
	w.nodes = g.Vertices() // already sorted, deterministic
	for _, id := range w.nodes {
		w.members[id] = []string{id}
	}

	for _, e := range g.Edges() {
		fv, _ := g.VertexByID(e.From)
		tv, _ := g.VertexByID(e.To)
		weight := wf(e, fv, tv)
		if weight < 0 {
			weight = 0 // weight functions must return non-negative; clamp defensively
		}

		if e.From == e.To {
			w.addOut(e.From, e.From, weight)
			w.selfLoop[e.From] += weight

			continue
		}

		w.addOut(e.From, e.To, weight)
		if e.Directed {
			w.addIn(e.To, e.From, weight)
		} else {
			w.addOut(e.To, e.From, weight)
		}
	}

	for _, id := range w.nodes {
		w.degree[id] = sumValues(w.outW[id]) + sumValues(w.inW[id]) + w.selfLoop[id]
	}

	return w
}

// totalWeight returns m, half the sum of all weighted degrees (so that 2m is
// the modularity normalizer). Zero means the graph has no edges: callers
// must treat this as "no moves possible".
func (w *wgraph) totalWeight() float64 {
	var sum float64
	for _, id := range w.nodes {
		sum += w.degree[id]
	}

	return sum / 2
}

// neighborWeights returns, for node u, the sum of outgoing+incoming edge
// weight to every distinct neighbor (self excluded), used by the
// local-moving loop to compute k_in per neighboring community.
func (w *wgraph) neighborWeights(u string) map[string]float64 {
	out := make(map[string]float64)
	for v, wt := range w.outW[u] {
		if v != u {
			out[v] += wt
		}
	}
	for v, wt := range w.inW[u] {
		if v != u {
			out[v] += wt
		}
	}

	return out
}

// aggregate contracts w according to assignment (node ID -> community ID,
// a string label) into a new wgraph whose nodes are the distinct community
// IDs, freshly relabeled "L{level}_{counter}" for determinism and to avoid
// collisions with any community ID chosen at a previous level. It returns
// the new wgraph and a map from old node ID to its new (relabeled) node ID.
func (w *wgraph) aggregate(assignment map[string]string, level int) (*wgraph, map[string]string) {
	// Deterministic relabeling: sort communities by their smallest member ID.
	commOf := make(map[string][]string) // community label (as assigned) -> member node IDs (old wgraph nodes)
	for _, id := range w.nodes {
		c := assignment[id]
		commOf[c] = append(commOf[c], id)
	}
	var oldLabels []string
	for c := range commOf {
		oldLabels = append(oldLabels, c)
	}
	sort.Slice(oldLabels, func(i, j int) bool {
		return minString(commOf[oldLabels[i]]) < minString(commOf[oldLabels[j]])
	})

	relabel := make(map[string]string, len(oldLabels)) // old community label -> new super-node ID
	for i, c := range oldLabels {
		relabel[c] = fmt.Sprintf("L%d_%d", level, i)
	}

	nw := newWGraph()
	for _, c := range oldLabels {
		newID := relabel[c]
		nw.nodes = append(nw.nodes, newID)
		var members []string
		for _, oldNode := range commOf[c] {
			members = append(members, w.members[oldNode]...)
		}
		nw.members[newID] = members
	}

	oldToNew := make(map[string]string, len(w.nodes)) // old wgraph node ID -> new super-node ID
	for _, id := range w.nodes {
		oldToNew[id] = relabel[assignment[id]]
	}

	for _, u := range w.nodes {
		nu := oldToNew[u]
		for v, wt := range w.outW[u] {
			nw.addOut(nu, oldToNew[v], wt)
		}
		for v, wt := range w.inW[u] {
			nw.addIn(nu, oldToNew[v], wt)
		}
	}

	// Every intra-community edge (including original self-loops, which were
	// already folded into outW[u][u] before aggregation) now lands in
	// nw.outW[nu][nu]: that IS the new level's self-loop weight. Re-derive
	// selfLoop from it directly rather than accumulating old self-loops
	// separately, so the "outW[v][v] holds selfLoop[v] once" invariant that
	// degree() relies on still holds after contraction.
	for _, id := range nw.nodes {
		nw.selfLoop[id] = nw.outW[id][id]
	}

	for _, id := range nw.nodes {
		nw.degree[id] = sumValues(nw.outW[id]) + sumValues(nw.inW[id]) + nw.selfLoop[id]
	}

	return nw, oldToNew
}

func sumValues(m map[string]float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}

	return s
}

func minString(xs []string) string {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}

	return m
}
