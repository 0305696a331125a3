// Scalar math for the geodesic routines in Go
//
// The algorithms are those of GeographicLib, Copyright (c) Charles Karney
// (2012-2022) <charles@karney.com> and licensed under the MIT/X11 License.
// For more information, see https://geographiclib.sourceforge.io/

package geodesic

import "math"

const (
	degree = math.Pi / 180
	// half turn and full turn in degrees
	hd = 180.0
	td = 360.0
	qd = 90.0
)

var (
	// epsilon for a 53 bit mantissa
	tol0 = math.Nextafter(1, 2) - 1
	tol1 = 200 * tol0
	tol2 = math.Sqrt(tol0)
	// sqrt of the smallest normalized number
	tiny = math.Sqrt(math.SmallestNonzeroFloat64 * (1 << 52))
	tolb = tol0 * tol2
	// threshold for the "strip near cut" in inverseStart
	xthresh = 1000 * tol2
)

func sq(x float64) float64 { return x * x }

// sumx is the error free transformation of a sum: u + v = s + t exactly,
// where s = round(u + v).
func sumx(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	if s != 0 {
		t = 0 - (up + vpp)
	} else {
		t = s
	}
	return s, t
}

// polyval evaluates the polynomial of degree n whose coefficients start at
// p[s], highest power first.
func polyval(n int, p []float64, s int, x float64) float64 {
	var y float64
	if n >= 0 {
		y = p[s]
	}
	for ; n > 0; n-- {
		s++
		y = y*x + p[s]
	}
	return y
}

// AngNormalize reduces an angle in degrees to the range (-180, 180].
func AngNormalize(x float64) float64 {
	y := math.Remainder(x, td)
	if y == -hd {
		return hd
	}
	return y
}

// AngDiff returns the difference y - x of two angles in degrees, reduced to
// (-180, 180]. The difference is returned as d + e where d is the rounded
// result and e is the round-off, so that y - x = d + e (mod 360) exactly.
func AngDiff(x, y float64) (d, e float64) {
	d, t := sumx(AngNormalize(-x), AngNormalize(y))
	d = AngNormalize(d)
	// Only d == 180 with t > 0 leaves the range after adding t back.
	if d == hd && t > 0 {
		d = -hd
	}
	return sumx(d, t)
}

// AngRound rounds an angle so that tiny values underflow to zero. The
// smallest gap in the result is 1/16 - nextafter(1/16, 0) = 2^-57, about
// 0.7 pm on the earth for an angle in degrees.
func AngRound(x float64) float64 {
	const z = 1.0 / 16
	y := math.Abs(x)
	// z - (z - y) must not be simplified to y
	if y < z {
		w := z - y
		y = z - w
	}
	if x < 0 {
		return -y
	}
	return y
}

// latFix replaces latitudes outside [-90, 90] by NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > qd {
		return math.NaN()
	}
	return x
}

func norm2(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	return x / r, y / r
}

// sincosd returns the sine and cosine of x in degrees. The argument is
// reduced to the nearest multiple of 90 first so that multiples of 90 give
// exact results, e.g. sincosd(90) = (1, 0).
func sincosd(x float64) (sinx, cosx float64) {
	r := math.Mod(x, td)
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / qd))
	}
	r -= qd * float64(q)
	// now |r| <= 45
	s, c := math.Sincos(r * degree)
	switch q & 3 {
	case 0:
		sinx, cosx = s, c
	case 1:
		sinx, cosx = c, -s
	case 2:
		sinx, cosx = -s, -c
	default:
		sinx, cosx = -c, s
	}
	if x != 0 {
		// convert -0 to +0
		sinx += 0
		cosx += 0
	}
	return sinx, cosx
}

// atan2d returns atan2(y, x) in degrees in the range (-180, 180]. The
// octant is resolved before calling math.Atan2 so that results on the
// axes are exact.
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if x < 0 {
		x = -x
		q++
	}
	// here x >= 0 and x >= |y|, so the angle is in [-45, 45]
	ang := math.Atan2(y, x) / degree
	switch q {
	case 1:
		if y >= 0 {
			ang = hd - ang
		} else {
			ang = -hd - ang
		}
	case 2:
		ang = qd - ang
	case 3:
		ang = -qd + ang
	}
	return ang
}
