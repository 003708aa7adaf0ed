package bench

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlath-community/community"
	"github.com/katalvlaran/lvlath-community/core"
	"github.com/katalvlaran/lvlath-community/dijkstra"
	"github.com/katalvlaran/lvlath-community/hierarchical"
	"github.com/katalvlaran/lvlath-community/modularity"
	"github.com/katalvlaran/lvlath-community/spectral"
)

// spectralK is the fixed bipartition width Run asks spectral.Partition and
// hierarchical.Cluster for, per spec.md §1/SPEC_FULL.md §6.4.
const spectralK = 2

// Run exercises Louvain, Leiden, hierarchical (average linkage, cut to
// spectralK clusters) and spectral (k = spectralK) against g and reports
// modularity, per-community conductance, and wall-clock for each. A failing
// algorithm does not abort the run: its AlgorithmReport.Err is populated and
// the remaining algorithms still execute.
func Run(g *core.Graph, wf core.WeightFunc) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if wf == nil {
		wf = core.DefaultWeightFunc
	}

	report := &Report{
		Graph: GraphSummary{
			VertexCount:                 g.VertexCount(),
			EdgeCount:                   g.EdgeCount(),
			MeanDistanceFromFirstVertex: meanDistanceFromFirstVertex(g),
		},
	}

	report.Algorithms = append(report.Algorithms, runLouvain(g, wf))
	report.Algorithms = append(report.Algorithms, runLeiden(g, wf))
	report.Algorithms = append(report.Algorithms, runHierarchical(g, wf))
	report.Algorithms = append(report.Algorithms, runSpectral(g, wf))

	return report, nil
}

func runLouvain(g *core.Graph, wf core.WeightFunc) AlgorithmReport {
	start := time.Now()
	res, err := community.Louvain(g, wf)
	elapsed := time.Since(start)
	if err != nil {
		return AlgorithmReport{Algorithm: Louvain, Runtime: elapsed, Err: err}
	}

	return AlgorithmReport{
		Algorithm:       Louvain,
		Runtime:         elapsed,
		CommunityCount:  len(res.Communities),
		Modularity:      res.Modularity,
		MeanConductance: meanCommunityConductance(res.Communities),
	}
}

func runLeiden(g *core.Graph, wf core.WeightFunc) AlgorithmReport {
	start := time.Now()
	res, err := community.Leiden(g, wf)
	elapsed := time.Since(start)
	if err != nil {
		return AlgorithmReport{Algorithm: Leiden, Runtime: elapsed, Err: err}
	}

	return AlgorithmReport{
		Algorithm:       Leiden,
		Runtime:         elapsed,
		CommunityCount:  len(res.Communities),
		Modularity:      res.Modularity,
		MeanConductance: meanCommunityConductance(res.Communities),
	}
}

func runHierarchical(g *core.Graph, wf core.WeightFunc) AlgorithmReport {
	start := time.Now()
	res, err := hierarchical.Cluster(g, hierarchical.Average)
	if err == nil {
		clusters := res.Dendrogram.GetClusters(spectralK)
		q, meanConductance := evaluateMembers(g, wf, clusters)
		elapsed := time.Since(start)

		return AlgorithmReport{
			Algorithm:       HierarchicalAverage,
			Runtime:         elapsed,
			CommunityCount:  len(clusters),
			Modularity:      q,
			MeanConductance: meanConductance,
		}
	}
	elapsed := time.Since(start)

	return AlgorithmReport{Algorithm: HierarchicalAverage, Runtime: elapsed, Err: err}
}

func runSpectral(g *core.Graph, wf core.WeightFunc) AlgorithmReport {
	start := time.Now()
	k := spectralK
	if k > g.VertexCount() {
		k = g.VertexCount()
	}
	res, err := spectral.Partition(g, k, wf)
	elapsed := time.Since(start)
	if err != nil {
		return AlgorithmReport{Algorithm: Spectral, Runtime: elapsed, Err: err}
	}

	clusters := make([][]string, len(res.Partitions))
	for i, p := range res.Partitions {
		clusters[i] = p.Members
	}
	q, meanConductance := evaluateMembers(g, wf, clusters)

	return AlgorithmReport{
		Algorithm:       Spectral,
		Runtime:         elapsed,
		CommunityCount:  len(clusters),
		Modularity:      q,
		MeanConductance: meanConductance,
	}
}

// meanDistanceFromFirstVertex runs dijkstra.Dijkstra from the
// lexicographically first vertex and averages the finite distances reached,
// giving Report.Graph a connectivity diagnostic alongside the raw vertex/edge
// counts (SPEC_FULL.md §6.6's "thin algorithmic wrapper" collaborator).
// Dijkstra requires a weighted graph; unweighted graphs and graphs with
// fewer than two vertices report 0 rather than erroring, since this is a
// diagnostic, not a required precondition of Run.
func meanDistanceFromFirstVertex(g *core.Graph) float64 {
	if !g.Weighted() || g.VertexCount() < 2 {
		return 0
	}

	vertices := g.Vertices()
	source := vertices[0]

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(source))
	if err != nil {
		return 0
	}

	var sum float64
	var count int
	for id, d := range dist {
		if id == source || d == math.MaxInt64 {
			continue
		}
		sum += float64(d)
		count++
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// meanCommunityConductance derives per-community conductance from the
// SigmaTot/SigmaIn aggregates community.Louvain/Leiden already compute,
// using modularity.Conductance directly rather than re-deriving cut weights
// from the graph.
func meanCommunityConductance(communities []community.Community) float64 {
	if len(communities) == 0 {
		return 0
	}
	var totalVolume float64
	for _, c := range communities {
		totalVolume += c.SigmaTot
	}

	var sum float64
	for _, c := range communities {
		cutWeight := c.SigmaTot - c.SigmaIn
		sum += modularity.Conductance(cutWeight, c.SigmaTot, totalVolume-c.SigmaTot)
	}

	return sum / float64(len(communities))
}

// evaluateMembers computes global modularity Q and mean per-cluster
// conductance for an arbitrary graph partition (members grouped into
// clusters), for algorithms like hierarchical and spectral that don't
// maintain the community package's running SigmaTot/SigmaIn aggregates.
func evaluateMembers(g *core.Graph, wf core.WeightFunc, clusters [][]string) (q, meanConductance float64) {
	if len(clusters) == 0 {
		return 0, 0
	}

	membership := make(map[string]int, g.VertexCount())
	for ci, members := range clusters {
		for _, id := range members {
			membership[id] = ci
		}
	}

	sigmaTot := make([]float64, len(clusters))
	sigmaIn := make([]float64, len(clusters))

	for _, e := range g.Edges() {
		fromC, okFrom := membership[e.From]
		toC, okTo := membership[e.To]
		if !okFrom || !okTo {
			continue
		}
		fv, _ := g.VertexByID(e.From)
		tv, _ := g.VertexByID(e.To)
		w := wf(e, fv, tv)
		if w < 0 {
			w = 0
		}

		sigmaTot[fromC] += w
		sigmaTot[toC] += w
		if fromC == toC {
			sigmaIn[fromC] += 2 * w
		}
	}

	var totalVolume float64
	for _, v := range sigmaTot {
		totalVolume += v
	}
	m := totalVolume / 2
	if m == 0 {
		return 0, 0
	}
	twoM := 2 * m

	var conductanceSum float64
	for ci := range clusters {
		q += sigmaIn[ci]/twoM - (sigmaTot[ci]/twoM)*(sigmaTot[ci]/twoM)
		cutWeight := sigmaTot[ci] - sigmaIn[ci]
		conductanceSum += modularity.Conductance(cutWeight, sigmaTot[ci], totalVolume-sigmaTot[ci])
	}

	return q, conductanceSum / float64(len(clusters))
}
