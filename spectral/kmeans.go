package spectral

import "math"

// embeddingRows transposes eigenvectors (k vectors of length n) into n rows
// of k coordinates each, one row per graph vertex.
func embeddingRows(eigenvectors [][]float64, n int) [][]float64 {
	k := len(eigenvectors)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		for t := 0; t < k; t++ {
			row[t] = eigenvectors[t][i]
		}
		rows[i] = row
	}

	return rows
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// seedCentroids picks k initial centroids from rows using deterministic
// k-means++: the first centroid is row 0, and every subsequent centroid is
// the row maximizing its minimum squared distance to the centroids chosen
// so far (ties broken by lowest row index), rather than k-means++'s usual
// randomized weighted sampling (spec.md §4.E "deterministic-maximum
// seeding").
func seedCentroids(rows [][]float64, k int) [][]float64 {
	n := len(rows)
	centroids := make([][]float64, 0, k)
	chosen := make(map[int]bool, k)

	first := 0
	centroids = append(centroids, append([]float64(nil), rows[first]...))
	chosen[first] = true

	for len(centroids) < k {
		bestIdx := -1
		bestMinDist := -1.0
		for i := 0; i < n; i++ {
			if chosen[i] {
				continue
			}
			minDist := math.MaxFloat64
			for _, c := range centroids {
				d := squaredDistance(rows[i], c)
				if d < minDist {
					minDist = d
				}
			}
			if minDist > bestMinDist {
				bestMinDist = minDist
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			break
		}
		centroids = append(centroids, append([]float64(nil), rows[bestIdx]...))
		chosen[bestIdx] = true
	}

	return centroids
}

// lloyd runs standard k-means (nearest-centroid assignment, mean-update)
// starting from the given centroids, up to maxIterations passes. Ties in
// nearest-centroid assignment break toward the lowest centroid index.
// Returns the final assignment (assignment[i] is rows[i]'s cluster index)
// and the number of iterations actually performed.
func lloyd(rows [][]float64, centroids [][]float64, maxIterations int) ([]int, int) {
	n := len(rows)
	k := len(centroids)
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}

	dim := 0
	if len(rows) > 0 {
		dim = len(rows[0])
	}

	iterations := 0
	for iter := 0; iter < maxIterations; iter++ {
		iterations++
		changed := false
		for i, row := range rows {
			best := 0
			bestDist := squaredDistance(row, centroids[0])
			for c := 1; c < k; c++ {
				d := squaredDistance(row, centroids[c])
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignment[i] != best {
				assignment[i] = best
				changed = true
			}
		}

		if !changed && iter > 0 {
			break
		}

		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dim)
		}
		for i, row := range rows {
			c := assignment[i]
			counts[c]++
			for d := 0; d < dim; d++ {
				sums[c][d] += row[d]
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue // keep previous centroid; an empty cluster has no mean
			}
			for d := 0; d < dim; d++ {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}

		if !changed {
			break
		}
	}

	return assignment, iterations
}
