package kahan

import "iter"

// Sum returns the compensated sum of xs. An empty or nil slice sums to 0.
//
// Complexity: O(len(xs)) time, O(1) memory.
func Sum(xs []float32) float32 {
	return New().AddAll(xs...).Sum()
}

// SumSeq returns the compensated sum of every value produced by seq.
// A nil sequence sums to 0.
func SumSeq(seq iter.Seq[float32]) float32 {
	acc := New()
	if seq == nil {
		return acc.Sum()
	}
	for v := range seq {
		acc = acc.Add(v)
	}

	return acc.Sum()
}
