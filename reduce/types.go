package reduce

// Collector describes a mergeable reduction from elements E to a result R
// through an accumulator A.
//
// Accumulate and Merge return the updated accumulator. Merge(a, b) must
// treat b as the partition that follows a; the harness never reuses b after
// passing it to Merge.
type Collector[E, A, R any] struct {
	// Zero returns a fresh, empty accumulator.
	Zero func() A

	// Accumulate folds one element into acc.
	Accumulate func(acc A, e E) A

	// Merge combines the accumulators of two adjacent partitions.
	Merge func(a, b A) A

	// Finalize produces the result of a completed reduction.
	Finalize func(acc A) R
}

// validate reports ErrIncompleteCollector if any function is nil.
func (c Collector[E, A, R]) validate() error {
	if c.Zero == nil || c.Accumulate == nil || c.Merge == nil || c.Finalize == nil {
		return ErrIncompleteCollector
	}

	return nil
}

// Shape selects the bracketing used to merge partial accumulators.
// Every shape merges partitions in order, left operand first; shapes differ
// only in grouping, which can change floating-point rounding.
//
//   - Balanced  — binary tree over the partitions: (p0·p1)·(p2·p3).
//   - LeftFold  — ((p0·p1)·p2)·p3.
//   - RightFold — p0·(p1·(p2·p3)).
type Shape int

const (
	// Balanced merges partials pairwise as a balanced binary tree.
	Balanced Shape = iota

	// LeftFold merges each partial into the running left-hand result.
	LeftFold

	// RightFold merges from the last partial towards the first.
	RightFold
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Balanced:
		return "Balanced"
	case LeftFold:
		return "LeftFold"
	case RightFold:
		return "RightFold"
	default:
		return "Shape(?)"
	}
}

// valid reports whether s is one of the defined shapes.
func (s Shape) valid() bool {
	return s >= Balanced && s <= RightFold
}

// Options configures CollectParts.
//
// Shape – bracketing used to merge partition accumulators. Default Balanced.
type Options struct {
	Shape Shape
}

// Option is a functional option for CollectParts.
type Option func(*Options)

// WithShape sets the merge-tree shape.
func WithShape(s Shape) Option {
	return func(o *Options) {
		o.Shape = s
	}
}

// DefaultOptions returns Options with a Balanced merge tree.
func DefaultOptions() Options {
	return Options{
		Shape: Balanced,
	}
}
