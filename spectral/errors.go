// Package spectral partitions a core.Graph into k balanced parts using
// normalized-Laplacian spectral embedding followed by k-means clustering,
// with a post-hoc balance-repair pass (spec.md §4.E).
package spectral

import (
	"errors"
	"fmt"
)

// Sentinel errors for the spectral package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Partition.
	ErrNilGraph = errors.New("spectral: graph is nil")

	// ErrEmptyGraph indicates a graph with zero vertices was passed to Partition.
	ErrEmptyGraph = errors.New("spectral: graph is empty")

	// ErrInvalidPartitionCount is the base sentinel for PartitionCountError;
	// use errors.Is against this value to detect the error class without
	// inspecting field values.
	ErrInvalidPartitionCount = errors.New("spectral: invalid partition count")
)

// PartitionCountError reports that k was out of range for a graph of the
// given node count: k must satisfy 2 <= k <= NodeCount.
type PartitionCountError struct {
	K         int
	NodeCount int
}

func (e *PartitionCountError) Error() string {
	return fmt.Sprintf("spectral: invalid partition count k=%d for %d nodes", e.K, e.NodeCount)
}

func (e *PartitionCountError) Is(target error) bool {
	return target == ErrInvalidPartitionCount
}

func invalidPartitionCount(k, nodeCount int) error {
	return &PartitionCountError{K: k, NodeCount: nodeCount}
}
