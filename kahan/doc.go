// Package kahan implements compensated (Kahan–Babuška) summation of float32
// values with a merge rule for partial sums, so one reduction can be split
// across partitions and recombined without losing the compensation.
//
// 🚀 What is compensated summation?
//
//	Adding a small value to a large running float32 sum silently drops the
//	low-order bits of the small value. Compensated summation keeps those
//	dropped bits in a second float32 and feeds them back on the next add,
//	so the error no longer grows with the length of the input.
//
//	  plain:       1_000_000 + 3.1415 + 2.7182 = 1000005.8125
//	  compensated: 1_000_000 + 3.1415 + 2.7182 = 1000005.875
//	  exact:                                     1000005.8597
//
// ✨ Key features:
//   - Accumulator is a small value type: Add/Merge return the updated value,
//     nothing is shared, so partitions can be folded on separate goroutines
//   - Merge combines two partial sums by feeding the partner's high-order
//     and low-order terms through the same compensation step
//   - Same-sign infinities finalize to ±Inf (not NaN) via a plain-sum fallback
//   - No errors, no panics: every float32 (NaN, ±Inf, -0, subnormals) is valid
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/floatsum/kahan"
//
//	acc := kahan.New()
//	for _, v := range values {
//	  acc = acc.Add(v)
//	}
//	total := acc.Sum()
//
//	// partitioned:
//	left := kahan.New().AddAll(values[:mid]...)
//	right := kahan.New().AddAll(values[mid:]...)
//	total = left.Merge(right).Sum()
//
// Performance:
//
//   - Time:   O(N), four float32 additions per element
//   - Memory: O(1), three float32 fields
//
// See example_test.go for runnable examples and package reduce for a
// harness that folds caller-chosen partitions concurrently.
package kahan
