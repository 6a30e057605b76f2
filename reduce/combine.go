package reduce

// Combine merges partial accumulators, given in partition order, using the
// bracketing selected by shape. Zero partials yield c.Zero(); one partial is
// returned unchanged.
//
// Errors:
//   - ErrIncompleteCollector if c has a nil function.
//   - ErrUnknownShape if shape is not defined.
func Combine[E, A, R any](c Collector[E, A, R], partials []A, shape Shape) (A, error) {
	var zero A
	if err := c.validate(); err != nil {
		return zero, reduceErrorf(opCombine, err)
	}
	if !shape.valid() {
		return zero, reduceErrorf(opCombine, ErrUnknownShape)
	}

	return combine(c, partials, shape), nil
}

// combine assumes a validated collector and shape.
func combine[E, A, R any](c Collector[E, A, R], partials []A, shape Shape) A {
	n := len(partials)
	if n == 0 {
		return c.Zero()
	}

	switch shape {
	case LeftFold:
		acc := partials[0]
		for i := 1; i < n; i++ {
			acc = c.Merge(acc, partials[i])
		}
		return acc
	case RightFold:
		acc := partials[n-1]
		for i := n - 2; i >= 0; i-- {
			acc = c.Merge(partials[i], acc)
		}
		return acc
	default:
		return mergeTree(c, partials)
	}
}

// mergeTree merges partials as a balanced binary tree, splitting at the
// midpoint so the left half always covers the earlier partitions.
func mergeTree[E, A, R any](c Collector[E, A, R], partials []A) A {
	if len(partials) == 1 {
		return partials[0]
	}
	mid := len(partials) / 2

	return c.Merge(mergeTree(c, partials[:mid]), mergeTree(c, partials[mid:]))
}
