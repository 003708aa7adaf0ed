package spectral

import (
	"github.com/katalvlaran/lvlath-community/core"
)

// Partition splits g into k parts using normalized-Laplacian spectral
// embedding, deterministic k-means++ clustering, and balance repair
// (spec.md §4.E). wf may be nil, in which case core.DefaultWeightFunc is
// used.
func Partition(g *core.Graph, k int, wf core.WeightFunc, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if k < 2 || k > n {
		return nil, invalidPartitionCount(k, n)
	}
	if wf == nil {
		wf = core.DefaultWeightFunc
	}

	o := resolveOptions(opts...)

	sym, vertices, err := buildSymmetricAdjacency(g, wf)
	if err != nil {
		return nil, err
	}

	_, normAdj, err := normalizedLaplacian(sym)
	if err != nil {
		return nil, err
	}

	eigenvectors, err := topEigenvectorsExact(normAdj, k)
	if err != nil {
		eigenvectors, err = topEigenvectors(normAdj, k)
		if err != nil {
			return nil, err
		}
	}

	rows := embeddingRows(eigenvectors, n)

	centroids := seedCentroids(rows, k)
	assignment, iterations := lloyd(rows, centroids, o.maxKMeansIterations)
	moves := repairBalance(rows, centroids, assignment, k, o.balanceTolerance, o.maxBalanceMoves)

	membership := make(map[string]int, n)
	for i, id := range vertices {
		membership[id] = assignment[i]
	}

	partitions := buildPartitions(vertices, assignment, k, n)
	annotateCutWeights(partitions, g, wf, membership)

	return &Result{
		Partitions: partitions,
		Metadata: Metadata{
			EigenvectorCount: k,
			KMeansIterations: iterations,
			BalanceMoves:     moves,
		},
	}, nil
}

func buildPartitions(vertices []string, assignment []int, k, n int) []Partition {
	members := make([][]string, k)
	for i, id := range vertices {
		c := assignment[i]
		members[c] = append(members[c], id)
	}

	ideal := float64(n) / float64(k)
	partitions := make([]Partition, k)
	for c := 0; c < k; c++ {
		size := len(members[c])
		ratio := 0.0
		if ideal > 0 {
			ratio = float64(size) / ideal
		}
		partitions[c] = Partition{
			Members:      members[c],
			Size:         size,
			BalanceRatio: ratio,
		}
	}

	return partitions
}

// annotateCutWeights sets each partition's CutWeight to the wf-weighted sum
// of every edge crossing out of it, accumulated over both endpoints when
// they land in different partitions.
func annotateCutWeights(partitions []Partition, g *core.Graph, wf core.WeightFunc, membership map[string]int) {
	for _, e := range g.Edges() {
		cFrom, okFrom := membership[e.From]
		cTo, okTo := membership[e.To]
		if !okFrom || !okTo || cFrom == cTo {
			continue
		}
		fv, _ := g.VertexByID(e.From)
		tv, _ := g.VertexByID(e.To)
		w := wf(e, fv, tv)
		if w < 0 {
			w = 0
		}
		partitions[cFrom].CutWeight += w
		partitions[cTo].CutWeight += w
	}
}

