// Package community implements Louvain and Leiden modularity-optimizing
// community detection over a core.Graph, including super-node aggregation
// across hierarchy levels and Leiden's connected-community refinement phase.
package community

import "errors"

// Sentinel errors for the community package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Louvain or Leiden.
	ErrNilGraph = errors.New("community: graph is nil")

	// ErrEmptyGraph indicates the graph has zero vertices.
	ErrEmptyGraph = errors.New("community: graph is empty")

	// ErrInsufficientNodes indicates an algorithm-specific lower bound was
	// violated (e.g. Leiden refinement on a community of size 0).
	ErrInsufficientNodes = errors.New("community: insufficient nodes")
)
