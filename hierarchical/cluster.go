package hierarchical

import (
	"sort"

	"github.com/katalvlaran/lvlath-community/core"
)

// pairKey identifies an unordered pair of active cluster IDs, mirroring
// matrix.unorderedPair's {min,max} convention for the upper-triangular
// distance store (spec.md §4.E).
type pairKey struct {
	a, b int
}

func unorderedPairKey(a, b int) pairKey {
	if a <= b {
		return pairKey{a: a, b: b}
	}

	return pairKey{a: b, b: a}
}

// Cluster runs average/single/complete-linkage agglomerative clustering on
// g, seeding the initial n x n distance matrix from adjacency: distance(i,j)
// = 1 - A_ij, with A_ij = 1 if an edge exists between i and j in either
// direction (undirected view), else 0 (spec.md §4.E).
func Cluster(g *core.Graph, linkage Linkage) (*Result, error) {
	if g == nil || g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if linkage != Single && linkage != Complete && linkage != Average {
		return nil, ErrInvalidLinkage
	}

	leaves := g.Vertices() // stable, sorted order
	n := len(leaves)

	result := &Result{
		Dendrogram: Dendrogram{
			Leaves:      leaves,
			ClusterSize: make(map[int]int, 2*n-1),
		},
		Metadata: Metadata{Linkage: linkage},
	}
	for i := range leaves {
		result.Dendrogram.ClusterSize[i] = 1
	}

	if n == 1 {
		return result, nil
	}

	idx := make(map[string]int, n)
	for i, id := range leaves {
		idx[id] = i
	}

	dist := make(map[pairKey]float64, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist[pairKey{a: i, b: j}] = 1.0
		}
	}
	for _, e := range g.Edges() {
		ui, uOk := idx[e.From]
		vi, vOk := idx[e.To]
		if !uOk || !vOk || ui == vi {
			continue
		}
		dist[unorderedPairKey(ui, vi)] = 0.0
	}

	active := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		active[i] = true
	}

	nextID := n
	for step := 0; step < n-1; step++ {
		c1, c2, best := findClosestPair(active, dist)
		newID := nextID
		nextID++

		result.Dendrogram.Merges = append(result.Dendrogram.Merges, Merge{
			A: c1, B: c2, NewID: newID, Distance: best,
		})
		size1 := result.Dendrogram.ClusterSize[c1]
		size2 := result.Dendrogram.ClusterSize[c2]
		result.Dendrogram.ClusterSize[newID] = size1 + size2

		delete(active, c1)
		delete(active, c2)
		for k := range active {
			d1 := distanceBetween(c1, k, dist)
			d2 := distanceBetween(c2, k, dist)
			var nd float64
			switch linkage {
			case Single:
				nd = minFloat(d1, d2)
			case Complete:
				nd = maxFloat(d1, d2)
			default: // Average
				nd = (float64(size1)*d1 + float64(size2)*d2) / float64(size1+size2)
			}
			dist[unorderedPairKey(newID, k)] = nd
			delete(dist, unorderedPairKey(c1, k))
			delete(dist, unorderedPairKey(c2, k))
		}
		delete(dist, unorderedPairKey(c1, c2))
		active[newID] = true
	}

	return result, nil
}

// findClosestPair returns the active cluster pair with smallest distance,
// ties broken by lower first index then lower second index (spec.md §4.E).
func findClosestPair(active map[int]bool, dist map[pairKey]float64) (int, int, float64) {
	ids := make([]int, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	bestA, bestB := ids[0], ids[1]
	bestD := distanceBetween(bestA, bestB, dist)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			d := distanceBetween(a, b, dist)
			if d < bestD {
				bestA, bestB, bestD = a, b, d
			}
		}
	}

	return bestA, bestB, bestD
}

func distanceBetween(a, b int, dist map[pairKey]float64) float64 {
	return dist[unorderedPairKey(a, b)]
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
