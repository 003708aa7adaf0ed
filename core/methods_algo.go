// File: methods_algo.go
// Role: Read-only accessors consumed by the community/hierarchical/spectral/idt
// algorithm packages — the Graph-access contract of the analysis layer.
package core

import "fmt"

// VertexByID returns the vertex with the given id, or (nil, false) if absent.
// Complexity: O(1).
func (g *Graph) VertexByID(id string) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]

	return v, ok
}

// OutgoingEdges returns the edges for which id is the logical source: all
// edges with From == id, plus (for undirected graphs) the mirror of edges
// with To == id. Unlike Neighbors, which already folds in undirected mirroring,
// OutgoingEdges exists as the named operation from the Graph Model contract so
// callers that only know the contract (not lvlath's internal Neighbors naming)
// have a stable entry point.
// Returns ErrVertexNotFound if id is unknown.
// Complexity: O(d log d).
func (g *Graph) OutgoingEdges(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("core: OutgoingEdges %q: %w", id, ErrVertexNotFound)
	}

	return g.Neighbors(id)
}
