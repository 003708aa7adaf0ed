// Package gmlio round-trips a core.Graph through the GML (Graph Modelling
// Language) text format, the file-format collaborator spec.md §1/§6 name as
// delegated, non-core surface.
package gmlio

import "errors"

// Sentinel errors for gmlio.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Encode.
	ErrNilGraph = errors.New("gmlio: graph is nil")

	// ErrMalformedGML indicates the input could not be parsed as the GML
	// subset gmlio emits (unbalanced brackets, missing graph block, or a
	// node/edge block missing a required key).
	ErrMalformedGML = errors.New("gmlio: malformed GML input")
)
