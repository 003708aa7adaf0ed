package bench

import (
	"github.com/katalvlaran/lvlath-community/core"
	"github.com/katalvlaran/lvlath-community/gridgraph"
)

// GridFixture converts a 2D cell-value grid into a *core.Graph via gridgraph
// (SPEC_FULL.md §6.5's "layout algorithm" collaborator), giving callers a
// spatially-structured fixture to run Run against instead of hand-building
// one vertex/edge at a time.
func GridFixture(values [][]int, opts gridgraph.GridOptions) (*core.Graph, error) {
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}

	return gg.ToCoreGraph(), nil
}
