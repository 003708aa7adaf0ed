package gmlio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"text/scanner"

	"github.com/katalvlaran/lvlath-community/core"
)

// gmlNode and gmlEdge mirror the blocks Encode emits.
type gmlNode struct {
	id    int
	label string
	seen  bool
}

type gmlEdge struct {
	source, target int
	value          int64
	label          string
	directed       bool
	seenSource     bool
	seenTarget     bool
}

// Decode parses r as the GML subset Encode produces and rebuilds a
// *core.Graph from it. opts configure the resulting graph the same way
// they would for core.NewGraph; Decode adds WithWeighted, WithMixedEdges,
// WithLoops and WithMultiEdges automatically so round-tripped weights,
// per-edge directedness, self-loops and parallel edges are never rejected.
func Decode(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	var sc scanner.Scanner
	sc.Init(bufio.NewReader(r))
	sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanStrings | scanner.ScanComments
	sc.Error = func(*scanner.Scanner, string) {} // malformed input surfaces via our own checks

	tok := sc.Scan()
	if tok != scanner.Ident || sc.TokenText() != "graph" {
		return nil, fmt.Errorf("%w: missing graph keyword", ErrMalformedGML)
	}
	if sc.Scan() != '[' {
		return nil, fmt.Errorf("%w: missing graph block", ErrMalformedGML)
	}

	directed := false
	var nodes []*gmlNode
	var edges []*gmlEdge

	for {
		tok := sc.Scan()
		switch {
		case tok == ']':
			return buildGraph(directed, nodes, edges, opts...)
		case tok == scanner.EOF:
			return nil, fmt.Errorf("%w: unexpected end of input", ErrMalformedGML)
		case tok == scanner.Ident && sc.TokenText() == "directed":
			v, err := scanInt(&sc)
			if err != nil {
				return nil, err
			}
			directed = v != 0
		case tok == scanner.Ident && sc.TokenText() == "node":
			n, err := parseNodeBlock(&sc)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case tok == scanner.Ident && sc.TokenText() == "edge":
			e, err := parseEdgeBlock(&sc)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
		default:
			return nil, fmt.Errorf("%w: unexpected token %q", ErrMalformedGML, sc.TokenText())
		}
	}
}

func parseNodeBlock(sc *scanner.Scanner) (*gmlNode, error) {
	if sc.Scan() != '[' {
		return nil, fmt.Errorf("%w: node missing block", ErrMalformedGML)
	}
	n := &gmlNode{id: -1}
	for {
		tok := sc.Scan()
		switch {
		case tok == ']':
			if !n.seen {
				return nil, fmt.Errorf("%w: node missing id", ErrMalformedGML)
			}
			return n, nil
		case tok == scanner.EOF:
			return nil, fmt.Errorf("%w: unterminated node block", ErrMalformedGML)
		case tok == scanner.Ident && sc.TokenText() == "id":
			v, err := scanInt(sc)
			if err != nil {
				return nil, err
			}
			n.id = v
			n.seen = true
		case tok == scanner.Ident && sc.TokenText() == "label":
			v, err := scanString(sc)
			if err != nil {
				return nil, err
			}
			n.label = v
		default:
			return nil, fmt.Errorf("%w: unexpected node key %q", ErrMalformedGML, sc.TokenText())
		}
	}
}

func parseEdgeBlock(sc *scanner.Scanner) (*gmlEdge, error) {
	if sc.Scan() != '[' {
		return nil, fmt.Errorf("%w: edge missing block", ErrMalformedGML)
	}
	e := &gmlEdge{}
	for {
		tok := sc.Scan()
		switch {
		case tok == ']':
			if !e.seenSource || !e.seenTarget {
				return nil, fmt.Errorf("%w: edge missing source or target", ErrMalformedGML)
			}
			return e, nil
		case tok == scanner.EOF:
			return nil, fmt.Errorf("%w: unterminated edge block", ErrMalformedGML)
		case tok == scanner.Ident && sc.TokenText() == "source":
			v, err := scanInt(sc)
			if err != nil {
				return nil, err
			}
			e.source = v
			e.seenSource = true
		case tok == scanner.Ident && sc.TokenText() == "target":
			v, err := scanInt(sc)
			if err != nil {
				return nil, err
			}
			e.target = v
			e.seenTarget = true
		case tok == scanner.Ident && sc.TokenText() == "value":
			v, err := scanInt(sc)
			if err != nil {
				return nil, err
			}
			e.value = int64(v)
		case tok == scanner.Ident && sc.TokenText() == "label":
			v, err := scanString(sc)
			if err != nil {
				return nil, err
			}
			e.label = v
		case tok == scanner.Ident && sc.TokenText() == "directed":
			v, err := scanInt(sc)
			if err != nil {
				return nil, err
			}
			e.directed = v != 0
		default:
			return nil, fmt.Errorf("%w: unexpected edge key %q", ErrMalformedGML, sc.TokenText())
		}
	}
}

func scanInt(sc *scanner.Scanner) (int, error) {
	tok := sc.Scan()
	text := sc.TokenText()
	if tok != scanner.Int {
		return 0, fmt.Errorf("%w: expected integer, got %q", ErrMalformedGML, text)
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedGML, err)
	}

	return v, nil
}

func scanString(sc *scanner.Scanner) (string, error) {
	tok := sc.Scan()
	if tok != scanner.String {
		return "", fmt.Errorf("%w: expected string, got %q", ErrMalformedGML, sc.TokenText())
	}

	return strconv.Unquote(sc.TokenText())
}

func buildGraph(directed bool, nodes []*gmlNode, edges []*gmlEdge, opts ...core.GraphOption) (*core.Graph, error) {
	full := make([]core.GraphOption, 0, len(opts)+3)
	full = append(full, core.WithDirected(directed), core.WithWeighted(), core.WithMixedEdges(), core.WithLoops(), core.WithMultiEdges())
	full = append(full, opts...)
	g := core.NewGraph(full...)

	byID := make(map[int]string, len(nodes))
	for _, n := range nodes {
		id := n.label
		if id == "" {
			id = strconv.Itoa(n.id)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("gmlio: decode node %d: %w", n.id, err)
		}
		byID[n.id] = id
	}

	for _, e := range edges {
		from, ok := byID[e.source]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown node %d", ErrMalformedGML, e.source)
		}
		to, ok := byID[e.target]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown node %d", ErrMalformedGML, e.target)
		}
		if _, err := g.AddEdge(from, to, e.value, core.WithEdgeDirected(e.directed)); err != nil {
			return nil, fmt.Errorf("gmlio: decode edge %s->%s: %w", from, to, err)
		}
	}

	return g, nil
}
