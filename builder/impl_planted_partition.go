// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_planted_partition.go - implementation of PlantedPartition(numBlocks,
// blockSize, pIn, pOut) constructor.
//
// Canonical model:
//   - Stochastic block model with numBlocks equal-size blocks of blockSize
//     vertices each. Every unordered pair within the same block gets an edge
//     independently with probability pIn; every unordered pair across two
//     different blocks gets an edge independently with probability pOut.
//   - Ground-truth block membership is encoded in vertex IDs via cfg.idFn
//     applied to the vertex's global index (block*blockSize + offset); callers
//     recover it as index/blockSize using the same enumeration order.
//
// Contract:
//   - numBlocks ≥ 2, blockSize ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ pIn, pOut ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending global-index order.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Honors core flags (Directed/Weighted/Loops/Multigraph) without silent degrade.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(numBlocks*blockSize) vertices + O(n^2) Bernoulli trials, n = numBlocks*blockSize.
//   - Space: O(1) extra (no global buffers).
//
// Determinism:
//   - Stable vertex order: global index asc.
//   - Stable edge-trial order: for each i asc, j asc (i<j), mirroring directed graphs.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-community/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodPlantedPartition = "PlantedPartition"
	minPlantedBlocks       = 2
	minPlantedBlockSize    = 1
)

// PlantedPartition returns a Constructor that builds a stochastic-block-model
// graph over numBlocks blocks of blockSize vertices each: dense intra-block
// edges (probability pIn) and sparse inter-block bridges (probability pOut).
// This is the benchmarking fixture community/spectral exercise against known
// ground-truth communities (block index = vertex's global index / blockSize).
func PlantedPartition(numBlocks, blockSize int, pIn, pOut float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if numBlocks < minPlantedBlocks {
			return fmt.Errorf("%s: numBlocks=%d < min=%d: %w",
				methodPlantedPartition, numBlocks, minPlantedBlocks, ErrTooFewVertices)
		}
		if blockSize < minPlantedBlockSize {
			return fmt.Errorf("%s: blockSize=%d < min=%d: %w",
				methodPlantedPartition, blockSize, minPlantedBlockSize, ErrTooFewVertices)
		}
		if pIn < probMin || pIn > probMax {
			return fmt.Errorf("%s: pIn=%.6f not in [%.1f,%.1f]: %w",
				methodPlantedPartition, pIn, probMin, probMax, ErrInvalidProbability)
		}
		if pOut < probMin || pOut > probMax {
			return fmt.Errorf("%s: pOut=%.6f not in [%.1f,%.1f]: %w",
				methodPlantedPartition, pOut, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodPlantedPartition, ErrNeedRandSource)
		}

		n := numBlocks * blockSize

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPlantedPartition, ids[i], err)
			}
		}

		useWeight := g.Weighted()
		rng := cfg.rng
		directed := g.Directed()

		blockOf := func(i int) int { return i / blockSize }

		addSampledEdge := func(u, v string) error {
			var w int64
			if useWeight {
				w = int64(cfg.weightFn(rng))
			}
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", methodPlantedPartition, u, v, w, err)
			}

			return nil
		}

		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]
				p := pOut
				if blockOf(i) == blockOf(j) {
					p = pIn
				}
				if rng.Float64() >= p {
					continue
				}
				if err := addSampledEdge(u, v); err != nil {
					return err
				}
				if directed && rng.Float64() < p {
					if err := addSampledEdge(v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
