// Package bench runs Louvain, Leiden, hierarchical (average linkage) and
// spectral community detection against a graph and reports modularity,
// per-community conductance, and wall-clock for each, generalizing the
// teacher's testing.B benchmarking idiom into a library-callable report
// (spec.md §1's "evaluation/benchmarking harnesses" collaborator).
package bench

import "errors"

// ErrNilGraph indicates a nil *core.Graph was passed to Run.
var ErrNilGraph = errors.New("bench: graph is nil")

// ErrEmptyGraph indicates a graph with zero vertices was passed to Run.
var ErrEmptyGraph = errors.New("bench: graph is empty")
