package reduce

import "sync"

// Fold accumulates xs into a fresh accumulator, left to right, without
// finalizing it.
func Fold[E, A, R any](c Collector[E, A, R], xs []E) (A, error) {
	if err := c.validate(); err != nil {
		var zero A
		return zero, reduceErrorf(opFold, err)
	}

	return fold(c, xs), nil
}

// Collect reduces xs sequentially and returns the finalized result.
func Collect[E, A, R any](c Collector[E, A, R], xs []E) (R, error) {
	if err := c.validate(); err != nil {
		var zero R
		return zero, reduceErrorf(opCollect, err)
	}

	return c.Finalize(fold(c, xs)), nil
}

// CollectParts folds every partition on its own goroutine, merges the
// partition accumulators in order using the configured Shape and returns
// the finalized result.
//
// Each goroutine owns exactly one accumulator and writes one slot of the
// partials slice; merging starts only after every fold has finished.
// An empty parts slice finalizes the Collector's zero accumulator.
//
// Errors:
//   - ErrIncompleteCollector if c has a nil function.
//   - ErrUnknownShape if the Shape option is not defined.
func CollectParts[E, A, R any](c Collector[E, A, R], parts [][]E, opts ...Option) (R, error) {
	var zero R
	if err := c.validate(); err != nil {
		return zero, reduceErrorf(opCollectParts, err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Shape.valid() {
		return zero, reduceErrorf(opCollectParts, ErrUnknownShape)
	}

	partials := make([]A, len(parts))
	var wg sync.WaitGroup
	wg.Add(len(parts))
	for i := range parts {
		go func(idx int, part []E) {
			defer wg.Done()
			partials[idx] = fold(c, part)
		}(i, parts[i])
	}
	wg.Wait()

	return c.Finalize(combine(c, partials, o.Shape)), nil
}

// Chunks splits xs into n contiguous partitions whose lengths differ by at
// most one; the first len(xs)%n partitions get the extra element. When
// n > len(xs) the trailing partitions are empty. Partitions share xs's
// backing array with their capacity clipped, so appending to one never
// overwrites its neighbour.
func Chunks[E any](xs []E, n int) ([][]E, error) {
	if n < 1 {
		return nil, reduceErrorf(opChunks, ErrBadChunkCount)
	}

	parts := make([][]E, n)
	size, extra := len(xs)/n, len(xs)%n
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		parts[i] = xs[lo:hi:hi]
		lo = hi
	}

	return parts, nil
}

// fold is the unchecked sequential fold shared by every entry point.
func fold[E, A, R any](c Collector[E, A, R], xs []E) A {
	acc := c.Zero()
	for _, x := range xs {
		acc = c.Accumulate(acc, x)
	}

	return acc
}
