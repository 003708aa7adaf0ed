// Package hierarchical builds an agglomerative-clustering dendrogram over a
// core.Graph, following the same linkage rules as classic hierarchical
// clustering but seeded from graph adjacency rather than a feature matrix.
package hierarchical

import "errors"

// Sentinel errors for the hierarchical package.
var (
	// ErrEmptyGraph indicates a graph with zero vertices was passed to Cluster.
	ErrEmptyGraph = errors.New("hierarchical: graph is empty")

	// ErrInvalidLinkage indicates an unrecognized Linkage value.
	ErrInvalidLinkage = errors.New("hierarchical: invalid linkage")
)
