package community

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlath-community/modularity"
)

// moveResult is the outcome of one local-moving phase over a wgraph level.
type moveResult struct {
	assignment map[string]string // node ID -> community ID (a node ID from w.nodes, used as the community's provisional label)
	iterations int
}

// newRNG returns a seeded RNG when seed is non-nil, otherwise a
// process-randomness source, matching the "injectable RNG, process-RNG if
// unseeded" rule in spec.md §9.
func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// localMovingLoop runs the Louvain local-moving phase (spec.md §4.D step 2-3)
// over w: every node starts in its own community, then nodes repeatedly move
// to the neighboring community that improves modularity most (Best) or to
// the first neighboring community with strictly positive ΔQ in shuffled
// order (Random). The loop stops after the configured number of consecutive
// no-move rounds, or when the iteration cap is hit.
func localMovingLoop(w *wgraph, o resolvedOptions, level int, leiden bool) moveResult {
	n := len(w.nodes)
	iterCap := o.resolveIterationCap(n, level, leiden)
	threshold := o.resolveMinIncrease(n)
	convergenceRounds := adaptiveConvergenceRounds(n)
	rng := newRNG(o.seed)

	// Every node starts as its own community, identified by its own node ID.
	assignment := make(map[string]string, n)
	sigmaTot := make(map[string]float64, n) // community ID -> sum of member degrees
	for _, id := range w.nodes {
		assignment[id] = id
		sigmaTot[id] = w.degree[id]
	}

	m := w.totalWeight()
	noMoveRounds := 0
	iterations := 0

	for iterations < iterCap {
		iterations++
		moved := false

		for _, u := range shuffledOrder(w.nodes, rng) {
			k := w.degree[u]
			curComm := assignment[u]
			neighborW := w.neighborWeights(u)

			// Evaluate moves with u provisionally removed from its current
			// community, so the candidate communities (including curComm
			// itself) are compared on equal footing.
			sigmaTot[curComm] -= k
			gainStay := modularity.DeltaQWithResolution(k, neighborW[curComm], sigmaTot[curComm], 0, m, o.resolution)

			bestComm, bestGain := curComm, gainStay
			switch o.neighborSelection {
			case Random:
				for _, comm := range shuffledKeys(neighborW, rng) {
					if comm == curComm {
						continue
					}
					gain := modularity.DeltaQWithResolution(k, neighborW[comm], sigmaTot[comm], 0, m, o.resolution)
					if gain-gainStay > threshold {
						bestComm, bestGain = comm, gain

						break
					}
				}
			default: // Best
				for comm, kIn := range neighborW {
					if comm == curComm {
						continue
					}
					gain := modularity.DeltaQWithResolution(k, kIn, sigmaTot[comm], 0, m, o.resolution)
					if gain > bestGain {
						bestComm, bestGain = comm, gain
					}
				}
			}

			if bestComm != curComm && (bestGain-gainStay) > threshold {
				sigmaTot[bestComm] += k
				assignment[u] = bestComm
				moved = true
			} else {
				sigmaTot[curComm] += k // undo: move rejected, restore u to curComm
			}
		}

		if moved {
			noMoveRounds = 0
		} else {
			noMoveRounds++
			if noMoveRounds >= convergenceRounds {
				break
			}
		}
	}

	return moveResult{assignment: assignment, iterations: iterations}
}

// shuffledOrder returns a Fisher-Yates shuffle of ids using rng.
func shuffledOrder(ids []string, rng *rand.Rand) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

func shuffledKeys(m map[string]float64, rng *rand.Rand) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := len(keys) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		keys[i], keys[j] = keys[j], keys[i]
	}

	return keys
}
