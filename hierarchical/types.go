package hierarchical

// Linkage selects the inter-cluster distance rule used when two clusters
// merge (spec.md §4.E).
type Linkage int

const (
	// Average computes the size-weighted mean distance between merged
	// clusters and every remaining cluster. This is the default.
	Average Linkage = iota

	// Single computes the minimum distance (nearest-neighbor chaining).
	Single

	// Complete computes the maximum distance (farthest-neighbor chaining).
	Complete
)

// Merge is one agglomeration step: clusters a and b (existing cluster IDs)
// combined into a new cluster newID at the given distance (height).
type Merge struct {
	A        int
	B        int
	NewID    int
	Distance float64
}

// Dendrogram is the full merge history produced by Cluster, plus the
// original leaf identifiers and the size of every cluster (leaves and
// internal nodes) ever created.
type Dendrogram struct {
	// Leaves holds the original core.Graph vertex IDs in leaf-cluster-ID order:
	// leaf cluster i corresponds to Leaves[i].
	Leaves []string

	// Merges is the ordered sequence of agglomeration steps. len(Merges) ==
	// n-1 for n >= 1 leaves (spec.md §8 "Dendrogram monotonicity").
	Merges []Merge

	// ClusterSize maps every cluster ID (leaf or internal) to its member
	// count. Leaf IDs 0..n-1 always have size 1.
	ClusterSize map[int]int
}

// Metadata carries run diagnostics alongside a Dendrogram.
type Metadata struct {
	Linkage Linkage
}

// Result is the output of Cluster.
type Result struct {
	Dendrogram Dendrogram
	Metadata   Metadata
}

// GetClusters cuts the dendrogram to produce at most k clusters: it replays
// merges in order until exactly n-k merges have been applied (equivalently,
// stopping as soon as the active cluster count would drop below k), then
// returns each active cluster's original leaf members. Per spec.md §3, k <= 0
// returns an empty forest; k >= n returns n singletons; values in between
// always return between 1 and n clusters inclusive.
func (d *Dendrogram) GetClusters(k int) [][]string {
	n := len(d.Leaves)
	if n == 0 {
		return nil
	}
	if k <= 0 {
		return [][]string{}
	}
	if k >= n {
		out := make([][]string, n)
		for i, leaf := range d.Leaves {
			out[i] = []string{leaf}
		}

		return out
	}

	// parent[c] = the cluster c was merged into, or -1 if c is still active
	// (a root of its own subtree) at the point we stop replaying merges.
	parent := make(map[int]int)
	active := n // active cluster count starts at n singleton leaves

	mergesToApply := n - k
	for i := 0; i < mergesToApply && i < len(d.Merges); i++ {
		m := d.Merges[i]
		parent[m.A] = m.NewID
		parent[m.B] = m.NewID
		active--
	}
	_ = active

	// find(c) walks parent pointers to the current root for leaf-cluster c.
	find := func(c int) int {
		for {
			p, ok := parent[c]
			if !ok {
				return c
			}
			c = p
		}
	}

	groups := make(map[int][]string)
	for i, leaf := range d.Leaves {
		root := find(i)
		groups[root] = append(groups[root], leaf)
	}

	out := make([][]string, 0, len(groups))
	for _, members := range groups {
		out = append(out, members)
	}

	return out
}
