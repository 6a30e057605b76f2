package naive

import "golang.org/x/exp/constraints"

// Summer is an uncompensated running sum over the float type F.
// The zero value is an empty sum.
type Summer[F constraints.Float] struct {
	sum F
}

// New returns an empty Summer.
func New[F constraints.Float]() Summer[F] {
	return Summer[F]{}
}

// Add returns s with v added to the running total.
func (s Summer[F]) Add(v F) Summer[F] {
	s.sum += v

	return s
}

// Merge returns s with the total of other added to it.
func (s Summer[F]) Merge(other Summer[F]) Summer[F] {
	s.sum += other.sum

	return s
}

// Sum returns the running total.
func (s Summer[F]) Sum() F {
	return s.sum
}

// Sum returns the plain left-to-right sum of xs.
func Sum[F constraints.Float](xs []F) F {
	s := New[F]()
	for _, x := range xs {
		s = s.Add(x)
	}

	return s.Sum()
}

// Widen returns the plain sum of float32 values computed in float64.
// Every float32 converts to float64 exactly, so for moderate input sizes the
// result is a close reference for the true sum.
func Widen(xs []float32) float64 {
	s := New[float64]()
	for _, x := range xs {
		s = s.Add(float64(x))
	}

	return s.Sum()
}
