package spectral

import "math"

// repairBalance greedily moves single nodes out of over-tolerance
// partitions into their second-nearest centroid, up to maxMoves total
// moves, until every partition's size satisfies size <= tolerance * n/k
// or the move budget is exhausted (spec.md §4.E "balance repair").
func repairBalance(rows [][]float64, centroids [][]float64, assignment []int, k int, tolerance float64, maxMoves int) int {
	n := len(rows)
	limit := int(math.Ceil(tolerance * float64(n) / float64(k)))

	counts := make([]int, k)
	for _, c := range assignment {
		counts[c]++
	}

	moves := 0
	for moves < maxMoves {
		over := -1
		for c := 0; c < k; c++ {
			if counts[c] > limit {
				over = c
				break
			}
		}
		if over == -1 {
			break
		}

		moved := moveOneNode(rows, centroids, assignment, counts, over, k, limit)
		if !moved {
			break // no eligible destination (every other partition already at limit)
		}
		moves++
	}

	return moves
}

// moveOneNode finds the node currently in partition "over" whose distance
// to some other under-limit centroid is smallest relative to its distance
// to its own centroid, and reassigns it. Returns false if no such move
// exists (every candidate destination is itself at the size limit or there
// are no other nodes left in "over").
func moveOneNode(rows [][]float64, centroids [][]float64, assignment []int, counts []int, over, k, limit int) bool {
	bestNode := -1
	bestDest := -1
	bestDelta := math.MaxFloat64

	for i, row := range rows {
		if assignment[i] != over {
			continue
		}
		ownDist := squaredDistance(row, centroids[over])
		for c := 0; c < k; c++ {
			if c == over || counts[c] >= limit {
				continue
			}
			destDist := squaredDistance(row, centroids[c])
			delta := destDist - ownDist
			if delta < bestDelta {
				bestDelta = delta
				bestNode = i
				bestDest = c
			}
		}
	}

	if bestNode == -1 {
		return false
	}

	assignment[bestNode] = bestDest
	counts[over]--
	counts[bestDest]++

	return true
}
