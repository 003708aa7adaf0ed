package idt

import (
	"github.com/katalvlaran/lvlath-community/core"
)

// GraphExpander is the synchronous, core.Graph-backed Expander
// implementation (spec.md §4.F). Priority is degree-based in both phases:
// Phase 1 uses raw degree; Phase 2 (handled entirely inside Expand) scales
// it by (1 - estimated_MI).
type GraphExpander struct {
	g  *core.Graph
	wf core.WeightFunc
}

// NewGraphExpander wraps g as an Expander. wf may be nil, in which case
// core.DefaultWeightFunc is used for relationship-type derivation (the
// weight itself is not consumed by IDT; wf is accepted for parity with the
// other algorithm entry points and future extension).
func NewGraphExpander(g *core.Graph, wf core.WeightFunc) *GraphExpander {
	if wf == nil {
		wf = core.DefaultWeightFunc
	}

	return &GraphExpander{g: g, wf: wf}
}

// CalculatePriority returns deg(v), the Phase-1 priority.
func (e *GraphExpander) CalculatePriority(id string) (float64, error) {
	deg, err := e.GetDegree(id)
	if err != nil {
		return 0, err
	}

	return float64(deg), nil
}

// GetDegree returns id's undirected-view degree (in + out, loops counted
// once per direction), matching core.Graph.Degree's "undirected" return.
func (e *GraphExpander) GetDegree(id string) (int, error) {
	in, out, undirected, err := e.g.Degree(id)
	if err != nil {
		return 0, err
	}
	if undirected > 0 {
		return undirected, nil
	}

	return in + out, nil
}

// GetNeighbors returns id's neighbors via core.Graph.OutgoingEdges, which
// already folds in undirected mirroring (direction-abstracted per spec.md §6).
func (e *GraphExpander) GetNeighbors(id string) ([]Neighbor, error) {
	edges, err := e.g.OutgoingEdges(id)
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor, 0, len(edges))
	for _, edge := range edges {
		target := edge.To
		if target == id {
			target = edge.From
		}
		out = append(out, Neighbor{Target: target, RelationshipType: edge.Type})
	}

	return out, nil
}

// GetNode returns the Node for id.
func (e *GraphExpander) GetNode(id string) (Node, error) {
	v, ok := e.g.VertexByID(id)
	if !ok {
		return Node{}, core.ErrVertexNotFound
	}

	return Node{ID: v.ID, Type: v.Type}, nil
}

// AddEdge is a no-op sink: GraphExpander's backing graph already contains
// every edge IDT could traverse, so there is nothing new to accumulate.
// Callers needing a separate sampled-subgraph sink should implement their
// own Expander wrapping a second, empty core.Graph.
func (e *GraphExpander) AddEdge(source, target, relationshipType string) error {
	return nil
}
