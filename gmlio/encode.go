package gmlio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlath-community/core"
)

// Encode writes g to w in GML format: one `node [...]` block per vertex
// (numeric id plus a `label` carrying the original string ID) and one
// `edge [...]` block per edge (`value` carries the weight, `label` the
// edge's Type for informational round-tripping, and a `directed 1` line
// when the edge overrides the graph's directedness under mixed-edge mode).
// Edge Type is not restored by Decode, since core.Graph exposes no public
// way to set it after AddEdge; it is emitted for readability only.
func Encode(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)

	directed := 0
	if g.HasDirectedEdges() {
		directed = 1
	}

	if _, err := fmt.Fprintf(bw, "graph [\n  directed %d\n", directed); err != nil {
		return err
	}

	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
		if _, err := fmt.Fprintf(bw, "  node [\n    id %d\n    label %q\n  ]\n", i, id); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		src, ok := index[e.From]
		if !ok {
			return fmt.Errorf("gmlio: encode edge %s: %w", e.ID, core.ErrVertexNotFound)
		}
		dst, ok := index[e.To]
		if !ok {
			return fmt.Errorf("gmlio: encode edge %s: %w", e.ID, core.ErrVertexNotFound)
		}

		if _, err := fmt.Fprintf(bw, "  edge [\n    source %d\n    target %d\n    value %d\n", src, dst, e.Weight); err != nil {
			return err
		}
		if e.Type != "" {
			if _, err := fmt.Fprintf(bw, "    label %q\n", e.Type); err != nil {
				return err
			}
		}
		if e.Directed {
			if _, err := fmt.Fprintf(bw, "    directed 1\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "  ]\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "]\n"); err != nil {
		return err
	}

	return bw.Flush()
}
