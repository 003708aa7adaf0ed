package spectral

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlath-community/matrix"
	"github.com/katalvlaran/lvlath-community/matrix/ops"
)

// maxPowerIterations caps the power-iteration refinement performed per
// eigenvector (spec.md §4.E: "iteration cap 20 per eigenvector").
const maxPowerIterations = 20

// exactEigenMaxN bounds the size of matrix this package will hand to
// ops.Eigen. Jacobi rotation is O(n^3) per sweep and spec.md §4.E's iteration
// cap assumes power iteration's O(n^2)-per-step cost, so Partition uses the
// exact decomposition automatically only for matrices of at most this size
// and power iteration for larger ones.
const exactEigenMaxN = 64

// eigenTol and eigenMaxIter bound ops.Eigen's Jacobi sweep: small enough to
// converge well within exactEigenMaxN, loose enough that it never substitutes
// for power iteration's own convergence behavior on borderline matrices.
const (
	eigenTol     = 1e-9
	eigenMaxIter = 100
)

// topEigenvectorsExact extracts the top k eigenvectors of the symmetric
// matrix iterMat by exact Jacobi decomposition (matrix/ops.Eigen) instead of
// power iteration, for small enough embeddings that the O(n^3) cost is
// negligible. Eigenvalues are sorted descending (iterMat == I - L_norm, so
// its largest eigenvalues correspond to the partitions spec.md §4.E wants),
// and each returned eigenvector already has unit L2 norm since Jacobi
// rotations preserve it. Returns ops.ErrNotSymmetric or ops.ErrEigenFailed
// unchanged so the caller can fall back to topEigenvectors.
func topEigenvectorsExact(iterMat matrix.Matrix, k int) ([][]float64, error) {
	n := iterMat.Rows()
	if n > exactEigenMaxN {
		return nil, ops.ErrEigenFailed
	}

	eigenvalues, q, err := ops.Eigen(iterMat, eigenTol, eigenMaxIter)
	if err != nil {
		return nil, err
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return eigenvalues[order[a]] > eigenvalues[order[b]] })

	eigenvectors := make([][]float64, 0, k)
	for t := 0; t < k && t < n; t++ {
		col := order[t]
		v := make([]float64, n)
		for i := 0; i < n; i++ {
			v[i], _ = q.At(i, col)
		}
		eigenvectors = append(eigenvectors, v)
	}

	return eigenvectors, nil
}

// topEigenvectors returns the top k eigenvectors of iterMat (== I - L_norm,
// i.e. the normalized adjacency itself) via power iteration with
// Gram-Schmidt deflation against previously extracted vectors. Each returned
// vector has unit L2 norm; eigenvectors[t][i] is the t-th eigenvector's
// component for node i.
func topEigenvectors(iterMat matrix.Matrix, k int) ([][]float64, error) {
	n := iterMat.Rows()
	eigenvectors := make([][]float64, 0, k)

	for t := 0; t < k; t++ {
		v := seedVector(n, t)
		gramSchmidt(v, eigenvectors)
		normalize(v)

		for iter := 0; iter < maxPowerIterations; iter++ {
			next, err := matrix.MatVecMul(iterMat, v)
			if err != nil {
				return nil, err
			}
			gramSchmidt(next, eigenvectors)
			if normalize(next) == 0 {
				// next collapsed to zero against the deflated subspace; the
				// remaining spectrum is degenerate for this seed. Fall back
				// to a fresh deterministic seed orthogonal to what we have.
				next = seedVector(n, t+k)
				gramSchmidt(next, eigenvectors)
				normalize(next)
			}
			v = next
		}

		eigenvectors = append(eigenvectors, v)
	}

	return eigenvectors, nil
}

// seedVector returns a deterministic, index-varying starting vector so
// successive power-iteration passes (t = 0, 1, 2, ...) do not all start
// aligned with the dominant eigenvector.
func seedVector(n, t int) []float64 {
	v := make([]float64, n)
	for i := 0; i < n; i++ {
		v[i] = math.Sin(float64(i+1)*0.5 + float64(t+1))
	}

	return v
}

// gramSchmidt subtracts from v its projection onto every vector in basis,
// in place.
func gramSchmidt(v []float64, basis [][]float64) {
	for _, b := range basis {
		dot := dotProduct(v, b)
		for i := range v {
			v[i] -= dot * b[i]
		}
	}
}

// normalize scales v to unit L2 norm in place and returns the norm prior to
// scaling (0 if v was already the zero vector).
func normalize(v []float64) float64 {
	var sumSq float64
	for _, x := range v {
		sumSq += x * x
	}
	norm := math.Sqrt(sumSq)
	if norm == 0 {
		return 0
	}
	for i := range v {
		v[i] /= norm
	}

	return norm
}

func dotProduct(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}
