package idt

// Node is the minimal node shape IDT needs from an Expander: an identifier
// and a caller-defined type discriminator (spec.md §9 "Polymorphism over
// nodes/edges" — IDT constrains only {has id, has type}).
type Node struct {
	ID   string
	Type string
}

// Neighbor is one outgoing edge from a node, as reported by
// Expander.GetNeighbors.
type Neighbor struct {
	Target           string
	RelationshipType string
}

// Expander is the graph-access contract IDT consumes (spec.md §6). It may be
// backed by an in-memory core.Graph (see GraphExpander) or by a remote/async
// data source; GetNeighbors is the one method expected to potentially
// perform I/O.
type Expander interface {
	// CalculatePriority returns the Phase-1 priority (deg(v)) for id.
	CalculatePriority(id string) (float64, error)

	// GetDegree returns the degree of id.
	GetDegree(id string) (int, error)

	// GetNeighbors returns id's outgoing neighbors.
	GetNeighbors(id string) ([]Neighbor, error)

	// GetNode returns the Node for id.
	GetNode(id string) (Node, error)

	// AddEdge records (source, target) in the caller-owned sampled-subgraph
	// sink. IDT invokes this once per traversed edge.
	AddEdge(source, target, relationshipType string) error
}

// Path is one discovered connection between two seeds: the node sequence
// from SeedA's seed to SeedB's seed, inclusive.
type Path struct {
	SeedA int
	SeedB int
	Nodes []string
}

// Length returns the number of edges in the path.
func (p Path) Length() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// SampledEdge is one edge IDT traversed during expansion.
type SampledEdge struct {
	Source           string
	Target           string
	RelationshipType string
}

// degreeBuckets are the histogram bucket boundaries from spec.md §4.F,
// expressed as (label, inclusive upper bound); the last bucket has no upper
// bound.
var degreeBuckets = []struct {
	label string
	upper int
}{
	{"1-5", 5},
	{"6-10", 10},
	{"11-50", 50},
	{"51-100", 100},
	{"101-500", 500},
	{"501-1000", 1000},
}

const degreeBucketOverflow = "1000+"

func bucketFor(degree int) string {
	for _, b := range degreeBuckets {
		if degree <= b.upper {
			return b.label
		}
	}

	return degreeBucketOverflow
}

// Stats carries expansion diagnostics alongside a Result.
type Stats struct {
	NodesExpanded   int
	EdgesTraversed  int
	Iterations      int
	DegreeHistogram map[string]int
}

// Result is the output of Expand.
type Result struct {
	Paths              []Path
	SampledNodes       []string
	SampledEdges       []SampledEdge
	VisitedPerFrontier [][]string
	Stats              Stats
}
