// Package naive provides the plain running-sum baseline that compensated
// summation is measured against.
//
// Summer adds each value straight into one running total, so its result
// depends on the order of the input and loses the low-order bits of small
// values added to a large total. That behavior is intentional: it is the
// reference point in accuracy comparisons, and a Summer[float64] fed float32
// inputs doubles as a high-precision reference for float32 results.
//
//	import "github.com/katalvlaran/floatsum/naive"
//
//	s := naive.New[float32]()
//	s = s.Add(1_000_000).Add(3.1415).Add(2.7182)
//	fmt.Println(s.Sum()) // 1.0000058e+06 (1000005.8125)
package naive
