package kahan

import "math"

// Accumulator is the running state of a compensated float32 sum.
//
// The zero value is an empty sum and is ready to use. Accumulator has value
// semantics: Add and Merge return the updated state and never modify the
// receiver, so a copy handed to another goroutine is never aliased.
type Accumulator struct {
	// high is the compensated running sum (primary estimate of the total).
	high float32
	// low is the running compensation: the bits lost when adding into high,
	// subtracted out again on the next addition.
	low float32
	// simple is the plain uncompensated running sum, kept only for the
	// same-sign infinity fallback in Sum.
	simple float32
}

// New returns an empty Accumulator. It is equivalent to Accumulator{}.
func New() Accumulator {
	return Accumulator{}
}

// Add returns a with v accumulated.
//
// Algorithm:
//  1. y    = v - low
//  2. t    = high + y
//  3. low  = (t - high) - y
//  4. high = t
//  5. simple = simple + v
//
// Steps 1–4 must run in this order for bit-for-bit reproducibility.
// NaN, ±Inf, -0 and subnormal inputs follow plain IEEE-754 arithmetic.
func (a Accumulator) Add(v float32) Accumulator {
	a = a.compensate(v)
	a.simple = float32(a.simple + v)

	return a
}

// AddAll returns a with every value in vs accumulated in order.
func (a Accumulator) AddAll(vs ...float32) Accumulator {
	for _, v := range vs {
		a = a.Add(v)
	}

	return a
}

// Merge returns the combination of a and b, where b holds the partial sum of
// a partition that follows a's. The high-order term of b is compensated into
// a first, then b's plain sum is added to a's, then b's low-order term is
// compensated into a.
//
// Merging is associative in which elements end up in the total; different
// bracketings of the same partitions may round differently.
func (a Accumulator) Merge(b Accumulator) Accumulator {
	a = a.compensate(b.high)
	a.simple = float32(a.simple + b.simple)

	return a.compensate(b.low)
}

// Sum finalizes the accumulator and returns high + low.
//
// If that is NaN while the plain sum is infinite, the input held infinities
// of one sign whose compensation cancelled to Inf - Inf; the plain sum is
// returned instead. Opposite-sign infinities still yield NaN because the
// plain sum is NaN as well.
func (a Accumulator) Sum() float32 {
	tmp := float32(a.high + a.low)
	if isNaN(tmp) && isInf(a.simple) {
		return a.simple
	}

	return tmp
}

// High returns the compensated running sum.
func (a Accumulator) High() float32 { return a.high }

// Low returns the running compensation term.
func (a Accumulator) Low() float32 { return a.low }

// Simple returns the plain uncompensated running sum.
func (a Accumulator) Simple() float32 { return a.simple }

// compensate runs the Kahan step for v without touching the plain sum.
// The explicit float32 conversions force rounding after every operation so
// the compiler cannot keep intermediates at higher precision.
func (a Accumulator) compensate(v float32) Accumulator {
	y := float32(v - a.low)
	t := float32(a.high + y)
	a.low = float32(float32(t-a.high) - y)
	a.high = t

	return a
}

func isNaN(f float32) bool { return f != f }

func isInf(f float32) bool { return math.IsInf(float64(f), 0) }
