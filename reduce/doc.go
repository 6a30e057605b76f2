// Package reduce runs mergeable reductions over float slices, sequentially or
// over caller-chosen partitions folded concurrently.
//
// A Collector bundles the four functions of a mergeable reduction:
//
//	Zero       → a fresh accumulator
//	Accumulate → fold one element into an accumulator
//	Merge      → combine the accumulators of two adjacent partitions
//	Finalize   → turn an accumulator into the result
//
// Kahan() wraps the compensated summer from package kahan and Naive[F]()
// wraps the plain baseline from package naive.
//
// ✨ Key features:
//   - Collect / Fold: sequential reduction of one slice
//   - Chunks: split a slice into n contiguous, near-equal partitions
//   - Combine: merge partial accumulators as a left fold, right fold or
//     balanced tree, always keeping partition order (left operand first)
//   - CollectParts: one goroutine per partition, each writing only its own
//     accumulator, then Combine and Finalize
//
// The package never decides how input is partitioned: callers pass the
// partitions (or a chunk count) and the merge-tree shape.
//
// ⚙️ Usage:
//
//	parts, err := reduce.Chunks(values, runtime.GOMAXPROCS(0))
//	if err != nil {
//	  // handle ErrBadChunkCount
//	}
//	total, err := reduce.CollectParts(reduce.Kahan(), parts,
//	  reduce.WithShape(reduce.Balanced))
//
// Errors:
//   - ErrIncompleteCollector — a Collector function is nil.
//   - ErrBadChunkCount       — Chunks called with n < 1.
//   - ErrUnknownShape        — Shape outside LeftFold/RightFold/Balanced.
//
// Complexity:
//
//	Collect:      O(N) time, O(1) extra memory
//	CollectParts: O(N/P + P) time with P partitions, O(P) memory
package reduce
