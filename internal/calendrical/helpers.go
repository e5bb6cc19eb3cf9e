package calendrical

import (
	"fmt"
	"math"
)

// Poly evaluates the polynomial with the given coefficients (lowest degree
// first) at x.
func Poly(x float64, coeffs []float64) float64 {
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}
	return acc
}

// BinarySearch bisects [l, h] until the interval is narrower than epsilon and
// returns the last midpoint. test reports whether the answer lies left of its
// argument.
func BinarySearch(l, h float64, test func(float64) bool, epsilon float64) float64 {
	assertf(l < h, "binary search bounds out of order: %v >= %v", l, h)
	for {
		mid := l + (h-l)/2
		if test(mid) {
			h = mid
		} else {
			l = mid
		}
		if h-l < epsilon {
			return mid
		}
	}
}

// InvertAngular finds x in r such that f(x) is approximately the angle y.
// f must be increasing over r.
func InvertAngular(f func(float64) float64, y float64, r [2]float64) float64 {
	const varepsilon = 1.0 / 100000
	return BinarySearch(r[0], r[1], func(x float64) bool {
		return RemEuclidF64(f(x)-y, 360) < 180
	}, varepsilon)
}

// NextMoment returns the day of the first moment, stepping a day at a time
// from index, for which cond holds.
func NextMoment(index Moment, loc Location, cond func(Moment, Location) bool) RataDie {
	for {
		if cond(index, loc) {
			return index.AsRataDie()
		}
		index++
	}
}

// Next returns the first day on or after index for which cond holds.
// Callers must guarantee that such a day exists.
func Next(index RataDie, cond func(RataDie) bool) RataDie {
	for {
		if cond(index) {
			return index
		}
		index++
	}
}

// DivEuclid is floored integer division for a positive divisor.
func DivEuclid(n, d int64) int64 {
	q := n / d
	if n%d < 0 {
		if d > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// RemEuclid is the non-negative remainder matching DivEuclid.
func RemEuclid(n, d int64) int64 {
	r := n % d
	if r < 0 {
		if d < 0 {
			r -= d
		} else {
			r += d
		}
	}
	return r
}

// RemEuclidF64 returns n mod d in [0, |d|).
func RemEuclidF64(n, d float64) float64 {
	r := math.Mod(n, d)
	if r < 0 {
		r += math.Abs(d)
	}
	return r
}

// DivEuclidF64 divides n by d, shifting negative inexact quotients down by
// one. The quotient is not floored; ephemeris searches round it afterwards.
func DivEuclidF64(n, d float64) float64 {
	assertf(d > 0, "non-positive divisor %v", d)
	a, b := n/d, math.Mod(n, d)
	if n >= 0 || b == 0 {
		return a
	}
	return a - 1
}

// maxDaySpan bounds daysSince. Every int32 year of the supported calendars
// starts within it, and thirty times it still fits in an int64.
const maxDaySpan = 1 << 40

// daysSince returns date - epoch clamped to ±maxDaySpan. Clamping only moves
// an already out-of-range year further out, so the cast reports the same
// bound.
func daysSince(date, epoch RataDie) int64 {
	switch {
	case date > epoch+maxDaySpan:
		return maxDaySpan
	case date < epoch-maxDaySpan:
		return -maxDaySpan
	}
	return int64(date - epoch)
}

// CastError reports a 64-bit value that does not fit in an int32.
type CastError int

const (
	// BelowMin means the value was less than math.MinInt32.
	BelowMin CastError = iota + 1
	// AboveMax means the value was greater than math.MaxInt32.
	AboveMax
)

func (e CastError) Error() string {
	switch e {
	case BelowMin:
		return "calendrical: value below int32 range"
	case AboveMax:
		return "calendrical: value above int32 range"
	}
	return fmt.Sprintf("calendrical: cast error %d", int(e))
}

// Saturate returns the int32 bound the value overflowed.
func (e CastError) Saturate() int32 {
	if e == BelowMin {
		return math.MinInt32
	}
	return math.MaxInt32
}

// I64ToI32 narrows n, reporting a CastError when it is out of range.
func I64ToI32(n int64) (int32, error) {
	switch {
	case n < math.MinInt32:
		return math.MinInt32, BelowMin
	case n > math.MaxInt32:
		return math.MaxInt32, AboveMax
	}
	return int32(n), nil
}

// SaturatingI32 narrows n, clamping to the int32 range.
func SaturatingI32(n int64) int32 {
	v, _ := I64ToI32(n)
	return v
}
