package reduce

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/floatsum/kahan"
	"github.com/katalvlaran/floatsum/naive"
)

// Kahan returns a Collector backed by kahan.Accumulator.
func Kahan() Collector[float32, kahan.Accumulator, float32] {
	return Collector[float32, kahan.Accumulator, float32]{
		Zero:       kahan.New,
		Accumulate: kahan.Accumulator.Add,
		Merge:      kahan.Accumulator.Merge,
		Finalize:   kahan.Accumulator.Sum,
	}
}

// Naive returns a Collector backed by the plain running sum naive.Summer[F].
func Naive[F constraints.Float]() Collector[F, naive.Summer[F], F] {
	return Collector[F, naive.Summer[F], F]{
		Zero:       naive.New[F],
		Accumulate: naive.Summer[F].Add,
		Merge:      naive.Summer[F].Merge,
		Finalize:   naive.Summer[F].Sum,
	}
}
