package reduce

import (
	"errors"
	"fmt"
)

// Sentinel errors for reduce operations. Operation entry points wrap them
// with the operation name; match with errors.Is.
var (
	// ErrIncompleteCollector indicates a Collector with a nil Zero,
	// Accumulate, Merge or Finalize function.
	ErrIncompleteCollector = errors.New("reduce: collector has a nil function")

	// ErrBadChunkCount indicates a request for fewer than one partition.
	ErrBadChunkCount = errors.New("reduce: chunk count must be >= 1")

	// ErrUnknownShape indicates a merge-tree Shape that is not defined.
	ErrUnknownShape = errors.New("reduce: unknown merge shape")
)

// Operation names used as error prefixes.
const (
	opCollect      = "Collect"
	opFold         = "Fold"
	opChunks       = "Chunks"
	opCombine      = "Combine"
	opCollectParts = "CollectParts"
)

// reduceErrorf wraps err with the operation tag.
func reduceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
