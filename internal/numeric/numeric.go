// Package numeric supplies the zero-value and positive-infinity sentinels
// that the distance, cost, and flow types used throughout csrflow need.
//
// The library treats a numeric adapter like this as an external
// collaborator (see the top-level package doc): the pack this repository
// was built from supplies no ready-made generics numeric library with an
// Infinity sentinel, so this one small package carries that concern on the
// standard library rather than leaving every caller to hand-roll its own
// math.MaxInt64/math.Inf(1) special case.
package numeric

import "math"

// Ordered is the set of numeric types usable as a distance, cost, or flow
// type: signed integers and floats. Dial additionally requires an integer
// Ordered type (see Integer and dial.New).
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Integer is the subset of Ordered that Dial's bucket-indexing arithmetic
// requires: distances must be whole numbers to map onto a bucket ring.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Zero returns the zero value of T.
func Zero[T Ordered]() T {
	return T(0)
}

// Infinity returns a sentinel value of T greater than any finite value T
// can represent: the max value of T itself for integer types (there is no
// true integer infinity), math.Inf(1) for floating-point types.
//
// The max value is taken from a same-width typed variable, not an untyped
// constant: converting the untyped constant math.MaxInt64 to T would have
// to fit every type in Ordered's type set, including int8/int16/int32,
// which it overflows — a compile error at definition time. Converting a
// concrete-width value to T is a runtime conversion instead, and matching
// the width to T's own case keeps it from truncating down to a small or
// negative sentinel for narrow integer types.
func Infinity[T Ordered]() T {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return T(math.Inf(1))
	case int8:
		var m int8 = math.MaxInt8
		return T(m)
	case int16:
		var m int16 = math.MaxInt16
		return T(m)
	case int32:
		var m int32 = math.MaxInt32
		return T(m)
	default:
		var m int64 = math.MaxInt64
		return T(m)
	}
}

// IsInf reports whether x equals the Infinity[T]() sentinel.
func IsInf[T Ordered](x T) bool {
	return x == Infinity[T]()
}

// One returns the multiplicative identity of T.
func One[T Ordered]() T {
	return T(1)
}

// IsNaN reports whether x is a floating-point not-a-number value; always
// false for integer T.
func IsNaN[T Ordered](x T) bool {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return math.IsNaN(float64(x))
	default:
		return false
	}
}
