package reduce_test

import (
	"testing"

	"github.com/katalvlaran/floatsum/reduce"
)

// result keeps benchmark output alive.
var result float32

// benchmarkCollectParts reduces n values split into p partitions.
func benchmarkCollectParts(b *testing.B, n, p int) {
	parts, err := reduce.Chunks(randomValues(1, n, 1000), p)
	if err != nil {
		b.Fatalf("Chunks failed: %v", err)
	}
	c := reduce.Kahan()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		result, err = reduce.CollectParts(c, parts)
		if err != nil {
			b.Fatalf("CollectParts failed: %v", err)
		}
	}
}

// BenchmarkCollect_1M benchmarks sequential compensated collection.
func BenchmarkCollect_1M(b *testing.B) {
	xs := randomValues(1, 1_000_000, 1000)
	c := reduce.Kahan()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, _ = reduce.Collect(c, xs)
	}
}

// BenchmarkCollectParts_1M_4 benchmarks 1M values over 4 partitions.
func BenchmarkCollectParts_1M_4(b *testing.B) { benchmarkCollectParts(b, 1_000_000, 4) }

// BenchmarkCollectParts_1M_16 benchmarks 1M values over 16 partitions.
func BenchmarkCollectParts_1M_16(b *testing.B) { benchmarkCollectParts(b, 1_000_000, 16) }
