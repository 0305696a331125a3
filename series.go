// Series expansions for the geodesic routines in Go
//
// The coefficients are those of GeographicLib, Copyright (c) Charles Karney
// (2012-2022) <charles@karney.com> and licensed under the MIT/X11 License.
// For more information, see https://geographiclib.sourceforge.io/

package geodesic

import "math"

const (
	geodesicOrder = 6
	nA1           = geodesicOrder
	nC1           = geodesicOrder
	nC1p          = geodesicOrder
	nA2           = geodesicOrder
	nC2           = geodesicOrder
	nA3           = geodesicOrder
	nA3x          = nA3
	nC3           = geodesicOrder
	nC3x          = (nC3 * (nC3 - 1)) / 2
	nC4           = geodesicOrder
	nC4x          = (nC4 * (nC4 + 1)) / 2
	// the largest of the coefficient arrays, plus one for the unused c[0]
	nC = geodesicOrder + 1

	digits = 53
	maxit1 = 20
	maxit2 = maxit1 + digits + 10
)

// sinCosSeries evaluates
//
//	sinp ? sum(c[i] * sin( 2*i    * x), i, 1, n) :
//	       sum(c[i] * cos((2*i+1) * x), i, 0, n-1)
//
// using Clenshaw summation. c[0] is unused for the sine series.
func sinCosSeries(sinp bool, sinx, cosx float64, c []float64, n int) float64 {
	// point to one beyond the last element
	k := n
	if sinp {
		k++
	}
	// 2 * cos(2 * x)
	ar := 2 * (cosx - sinx) * (cosx + sinx)
	var y0, y1 float64
	if n&1 != 0 {
		k--
		y0 = c[k]
	}
	// now n is even
	for n /= 2; n > 0; n-- {
		// unrolled x 2, so the accumulators return to their original role
		k--
		y1 = ar*y0 - y1 + c[k]
		k--
		y0 = ar*y1 - y0 + c[k]
	}
	if sinp {
		// sin(2 * x) * y0
		return 2 * sinx * cosx * y0
	}
	// cos(x) * (y0 - y1)
	return cosx * (y0 - y1)
}

// a1m1f returns the scale factor A1 - 1, the mean value of (d/dsigma)I1 - 1.
func a1m1f(eps float64) float64 {
	coeff := [...]float64{
		// (1-eps)*A1-1, polynomial in eps2 of order 3
		1, 4, 64, 0, 256,
	}
	m := nA1 / 2
	t := polyval(m, coeff[:], 0, sq(eps)) / coeff[m+1]
	return (t + eps) / (1 - eps)
}

// c1f sets c[1..nC1], the coefficients in the Fourier expansion of B1.
func c1f(eps float64, c []float64) {
	coeff := [...]float64{
		// C1[1]/eps^1, polynomial in eps2 of order 2
		-1, 6, -16, 32,
		// C1[2]/eps^2, polynomial in eps2 of order 2
		-9, 64, -128, 2048,
		// C1[3]/eps^3, polynomial in eps2 of order 1
		9, -16, 768,
		// C1[4]/eps^4, polynomial in eps2 of order 1
		3, -5, 512,
		// C1[5]/eps^5, polynomial in eps2 of order 0
		-7, 1280,
		// C1[6]/eps^6, polynomial in eps2 of order 0
		-7, 2048,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC1; l++ {
		// order of polynomial in eps^2
		m := (nC1 - l) / 2
		c[l] = d * polyval(m, coeff[:], o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// c1pf sets c[1..nC1p], the coefficients in the Fourier expansion of B1p,
// the reversion of the B1 series.
func c1pf(eps float64, c []float64) {
	coeff := [...]float64{
		// C1p[1]/eps^1, polynomial in eps2 of order 2
		205, -432, 768, 1536,
		// C1p[2]/eps^2, polynomial in eps2 of order 2
		4005, -4736, 3840, 12288,
		// C1p[3]/eps^3, polynomial in eps2 of order 1
		-225, 116, 384,
		// C1p[4]/eps^4, polynomial in eps2 of order 1
		-7173, 2695, 7680,
		// C1p[5]/eps^5, polynomial in eps2 of order 0
		3467, 7680,
		// C1p[6]/eps^6, polynomial in eps2 of order 0
		38081, 61440,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC1p; l++ {
		m := (nC1p - l) / 2
		c[l] = d * polyval(m, coeff[:], o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// a2m1f returns the scale factor A2 - 1, the mean value of (d/dsigma)I2 - 1.
func a2m1f(eps float64) float64 {
	coeff := [...]float64{
		// (eps+1)*A2-1, polynomial in eps2 of order 3
		-11, -28, -192, 0, 256,
	}
	m := nA2 / 2
	t := polyval(m, coeff[:], 0, sq(eps)) / coeff[m+1]
	return (t - eps) / (1 + eps)
}

// c2f sets c[1..nC2], the coefficients in the Fourier expansion of B2.
func c2f(eps float64, c []float64) {
	coeff := [...]float64{
		// C2[1]/eps^1, polynomial in eps2 of order 2
		1, 2, 16, 32,
		// C2[2]/eps^2, polynomial in eps2 of order 2
		35, 64, 384, 2048,
		// C2[3]/eps^3, polynomial in eps2 of order 1
		15, 80, 768,
		// C2[4]/eps^4, polynomial in eps2 of order 1
		7, 35, 512,
		// C2[5]/eps^5, polynomial in eps2 of order 0
		63, 1280,
		// C2[6]/eps^6, polynomial in eps2 of order 0
		77, 2048,
	}
	eps2 := sq(eps)
	d := eps
	o := 0
	for l := 1; l <= nC2; l++ {
		m := (nC2 - l) / 2
		c[l] = d * polyval(m, coeff[:], o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// The A3, C3 and C4 expansions depend on the third flattening n, so their
// coefficients are folded in once per ellipsoid by the *coeff methods and
// the per-geodesic eps dependence is evaluated by a3f, c3f and c4f.

func (e *Ellipsoid) a3coeff() {
	coeff := [...]float64{
		// A3, coeff of eps^5, polynomial in n of order 0
		-3, 128,
		// A3, coeff of eps^4, polynomial in n of order 1
		-2, -3, 64,
		// A3, coeff of eps^3, polynomial in n of order 2
		-1, -3, -1, 16,
		// A3, coeff of eps^2, polynomial in n of order 2
		3, -1, -2, 8,
		// A3, coeff of eps^1, polynomial in n of order 1
		1, -1, 2,
		// A3, coeff of eps^0, polynomial in n of order 0
		1, 1,
	}
	o, k := 0, 0
	for j := nA3 - 1; j >= 0; j-- {
		// order of polynomial in n
		m := min(nA3-j-1, j)
		e.a3x[k] = polyval(m, coeff[:], o, e.n) / coeff[o+m+1]
		k++
		o += m + 2
	}
}

func (e *Ellipsoid) c3coeff() {
	coeff := [...]float64{
		// C3[1], coeff of eps^5, polynomial in n of order 0
		3, 128,
		// C3[1], coeff of eps^4, polynomial in n of order 1
		2, 5, 128,
		// C3[1], coeff of eps^3, polynomial in n of order 2
		-1, 3, 3, 64,
		// C3[1], coeff of eps^2, polynomial in n of order 2
		-1, 0, 1, 8,
		// C3[1], coeff of eps^1, polynomial in n of order 1
		-1, 1, 4,
		// C3[2], coeff of eps^5, polynomial in n of order 0
		5, 256,
		// C3[2], coeff of eps^4, polynomial in n of order 1
		1, 3, 128,
		// C3[2], coeff of eps^3, polynomial in n of order 2
		-3, -2, 3, 64,
		// C3[2], coeff of eps^2, polynomial in n of order 2
		1, -3, 2, 32,
		// C3[3], coeff of eps^5, polynomial in n of order 0
		7, 512,
		// C3[3], coeff of eps^4, polynomial in n of order 1
		-10, 9, 384,
		// C3[3], coeff of eps^3, polynomial in n of order 2
		5, -9, 5, 192,
		// C3[4], coeff of eps^5, polynomial in n of order 0
		7, 512,
		// C3[4], coeff of eps^4, polynomial in n of order 1
		-14, 7, 512,
		// C3[5], coeff of eps^5, polynomial in n of order 0
		21, 2560,
	}
	o, k := 0, 0
	for l := 1; l < nC3; l++ {
		for j := nC3 - 1; j >= l; j-- {
			m := min(nC3-j-1, j)
			e.c3x[k] = polyval(m, coeff[:], o, e.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

func (e *Ellipsoid) c4coeff() {
	coeff := [...]float64{
		// C4[0], coeff of eps^5, polynomial in n of order 0
		97, 15015,
		// C4[0], coeff of eps^4, polynomial in n of order 1
		1088, 156, 45045,
		// C4[0], coeff of eps^3, polynomial in n of order 2
		-224, -4784, 1573, 45045,
		// C4[0], coeff of eps^2, polynomial in n of order 3
		-10656, 14144, -4576, -858, 45045,
		// C4[0], coeff of eps^1, polynomial in n of order 4
		64, 624, -4576, 6864, -3003, 15015,
		// C4[0], coeff of eps^0, polynomial in n of order 5
		100, 208, 572, 3432, -12012, 30030, 45045,
		// C4[1], coeff of eps^5, polynomial in n of order 0
		1, 9009,
		// C4[1], coeff of eps^4, polynomial in n of order 1
		-2944, 468, 135135,
		// C4[1], coeff of eps^3, polynomial in n of order 2
		5792, 1040, -1287, 135135,
		// C4[1], coeff of eps^2, polynomial in n of order 3
		5952, -11648, 9152, -2574, 135135,
		// C4[1], coeff of eps^1, polynomial in n of order 4
		-64, -624, 4576, -6864, 3003, 135135,
		// C4[2], coeff of eps^5, polynomial in n of order 0
		8, 10725,
		// C4[2], coeff of eps^4, polynomial in n of order 1
		1856, -936, 225225,
		// C4[2], coeff of eps^3, polynomial in n of order 2
		-8448, 4992, -1144, 225225,
		// C4[2], coeff of eps^2, polynomial in n of order 3
		-1440, 4160, -4576, 1716, 225225,
		// C4[3], coeff of eps^5, polynomial in n of order 0
		-136, 63063,
		// C4[3], coeff of eps^4, polynomial in n of order 1
		1024, -208, 105105,
		// C4[3], coeff of eps^3, polynomial in n of order 2
		3584, -3328, 1144, 315315,
		// C4[4], coeff of eps^5, polynomial in n of order 0
		-128, 135135,
		// C4[4], coeff of eps^4, polynomial in n of order 1
		-2560, 832, 405405,
		// C4[5], coeff of eps^5, polynomial in n of order 0
		128, 99099,
	}
	o, k := 0, 0
	for l := 0; l < nC4; l++ {
		for j := nC4 - 1; j >= l; j-- {
			m := nC4 - j - 1
			e.c4x[k] = polyval(m, coeff[:], o, e.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

func (e *Ellipsoid) a3f(eps float64) float64 {
	return polyval(nA3-1, e.a3x[:], 0, eps)
}

// c3f sets c[1..nC3-1].
func (e *Ellipsoid) c3f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 1; l < nC3; l++ {
		// order of polynomial in eps
		m := nC3 - l - 1
		mult *= eps
		c[l] = mult * polyval(m, e.c3x[:], o, eps)
		o += m + 1
	}
}

// c4f sets c[0..nC4-1].
func (e *Ellipsoid) c4f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 0; l < nC4; l++ {
		m := nC4 - l - 1
		c[l] = mult * polyval(m, e.c4x[:], o, eps)
		o += m + 1
		mult *= eps
	}
}

// epsilon returns the expansion parameter for k2 = ep2 * cos(alp0)^2.
func epsilon(k2 float64) float64 {
	return k2 / (2*(1+math.Sqrt(1+k2)) + k2)
}
