// Package floatsum is a small library for summing float32 values with
// bounded rounding error, sequentially or over partitions reduced in
// parallel and merged afterwards.
//
// 🚀 What is floatsum?
//
//	A pure-Go, dependency-light set of packages:
//		• kahan  — compensated (Kahan–Babuška) accumulator with a merge rule
//		• naive  — the plain running-sum baseline used for comparison
//		• reduce — Collector harness: sequential collect, chunking, concurrent
//		           per-partition folds and ordered merge trees
//
// ✨ Why compensated summation?
//
//   - A float32 has 24 bits of mantissa; adding 1 to 16 777 216 does nothing
//   - Kahan summation carries the dropped bits forward and re-adds them
//   - The merge rule keeps that carry across partition boundaries, so a
//     parallel reduction is as accurate as a sequential one
//   - Same-sign infinities sum to ±Inf, never NaN
//
// Under the hood:
//
//	kahan/  — Accumulator: New, Add, AddAll, Merge, Sum; Sum, SumSeq helpers
//	naive/  — Summer[F]: New, Add, Merge, Sum; Sum, Widen helpers
//	reduce/ — Collector, Collect, Fold, Chunks, Combine, CollectParts
//
// Quick example:
//
//	values := []float32{1_000_000, 3.1415, 2.7182}
//	naive.Sum(values) // 1000005.8125
//	kahan.Sum(values) // 1000005.875 (exact: 1000005.8597)
//
//	go get github.com/katalvlaran/floatsum
package floatsum
