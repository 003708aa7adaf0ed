package spectral

import (
	"math"

	"github.com/katalvlaran/lvlath-community/core"
	"github.com/katalvlaran/lvlath-community/matrix"
)

// buildSymmetricAdjacency returns the symmetric weighted adjacency of g,
// keyed by g.Vertices() order, using wf to resolve each edge's weight.
//
// Every edge (directed or not) contributes its weight to M[from][to] only;
// the result is then folded with its own transpose (M + Mᵀ), which both
// mirrors genuinely undirected edges (stored once in core.Graph but meant
// bidirectionally) and, for directed inputs, sums both directions' weights
// into a single symmetric entry per spec.md §4.E. This intentionally does
// not call matrix.Symmetrize: that helper averages (m+mᵀ)/2, not the sum the
// spec requires.
func buildSymmetricAdjacency(g *core.Graph, wf core.WeightFunc) (matrix.Matrix, []string, error) {
	vertices := g.Vertices()
	n := len(vertices)

	idx := make(map[string]int, n)
	for i, id := range vertices {
		idx[id] = i
	}

	raw, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range g.Edges() {
		fv, _ := g.VertexByID(e.From)
		tv, _ := g.VertexByID(e.To)
		w := wf(e, fv, tv)
		if w < 0 {
			w = 0 // weight functions must return non-negative; clamp defensively
		}

		i, j := idx[e.From], idx[e.To]
		cur, _ := raw.At(i, j)
		_ = raw.Set(i, j, cur+w)
	}

	transposed, err := matrix.Transpose(raw)
	if err != nil {
		return nil, nil, err
	}
	sym, err := matrix.Add(raw, transposed)
	if err != nil {
		return nil, nil, err
	}

	return sym, vertices, nil
}

// normalizedLaplacian computes L_norm = I - D^(-1/2) A D^(-1/2) from the
// symmetric adjacency A, per spec.md §4.E. Isolated vertices (degree 0)
// get a 0 row/column in D^(-1/2) rather than dividing by zero.
func normalizedLaplacian(a matrix.Matrix) (lapl, normalizedAdjacency matrix.Matrix, err error) {
	n := a.Rows()

	degree, err := matrix.RowSums(a)
	if err != nil {
		return nil, nil, err
	}

	dInvSqrt := make([]float64, n)
	for i, d := range degree {
		if d > 0 {
			dInvSqrt[i] = 1.0 / math.Sqrt(d)
		}
	}

	normAdj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := a.At(i, j)
			_ = normAdj.Set(i, j, dInvSqrt[i]*v*dInvSqrt[j])
		}
	}

	identity, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, err
	}
	l, err := matrix.Sub(identity, normAdj)
	if err != nil {
		return nil, nil, err
	}

	return l, normAdj, nil
}
