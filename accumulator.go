package geodesic

import "math"

// Accumulator sums a series of numbers at twice the normal floating point
// precision. The running sum is held as s + t where s is the rounded sum and
// t carries the bits lost in the rounding.
//
// The zero value is an empty sum, ready to use.
type Accumulator struct {
	s, t float64
}

// Add adds y to the sum.
func (a *Accumulator) Add(y float64) {
	z, u := sumx(y, a.t)
	a.s, a.t = sumx(z, a.s)
	if a.s == 0 {
		a.s = u
	} else {
		a.t += u
	}
}

// Sum returns the result of adding y to the sum without changing the
// accumulator.
func (a Accumulator) Sum(y float64) float64 {
	a.Add(y)
	return a.s
}

// Value returns the current sum.
func (a Accumulator) Value() float64 {
	return a.s
}

// Negate changes the sign of the sum.
func (a *Accumulator) Negate() {
	a.s = -a.s
	a.t = -a.t
}

// Remainder reduces the sum to the IEEE remainder of the sum with respect
// to y, i.e. into [-y/2, y/2].
func (a *Accumulator) Remainder(y float64) {
	a.s = math.Remainder(a.s, y)
	a.Add(0)
}

// Reset sets the sum to zero.
func (a *Accumulator) Reset() {
	a.s, a.t = 0, 0
}
