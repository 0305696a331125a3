// Inverse geodesic problem in Go
//
// The algorithms are those of GeographicLib, Copyright (c) Charles Karney
// (2012-2022) <charles@karney.com> and licensed under the MIT/X11 License.
// For more information, see https://geographiclib.sourceforge.io/
//
// C. F. F. Karney, Algorithms for geodesics, J. Geodesy 87, 43-55 (2013)
// https://doi.org/10.1007/s00190-012-0578-z

package geodesic

import "math"

type inverseSolution struct {
	a12, s12                   float64
	salp1, calp1, salp2, calp2 float64
	m12, M12, M21, S12         float64
	// Newton iterations used; maxit2 means the budget was exhausted
	numit int
}

func (e *Ellipsoid) genInverse(lat1, lon1, lat2, lon2 float64, outmask Mask) inverseSolution {
	nan := math.NaN()
	sol := inverseSolution{a12: nan, s12: nan, m12: nan, M12: nan, M21: nan, S12: nan}
	outmask &= outMask

	// Compute longitude difference (AngDiff does this carefully). Result is
	// in [-180, 180] but -180 is only for west-going geodesics. 180 is for
	// east-going and meridional geodesics.
	lon12, lon12s := AngDiff(lon1, lon2)
	// Make longitude difference positive.
	lonsign := 1.0
	if lon12 < 0 {
		lonsign = -1
	}
	// If very close to being on the same half-meridian, then make it so.
	lon12 = lonsign * AngRound(lon12)
	lon12s = AngRound((hd - lon12) - lonsign*lon12s)
	lam12 := lon12 * degree
	var slam12, clam12 float64
	if lon12 > qd {
		slam12, clam12 = sincosd(lon12s)
		clam12 = -clam12
	} else {
		slam12, clam12 = sincosd(lon12)
	}

	// If really close to the equator, treat as on equator.
	lat1 = AngRound(latFix(lat1))
	lat2 = AngRound(latFix(lat2))
	// Swap points so that point with higher (abs) latitude is point 1.
	// If one latitude is a NaN, then it becomes lat1.
	swapp := 1.0
	if math.Abs(lat1) < math.Abs(lat2) {
		swapp = -1
	}
	if swapp < 0 {
		lonsign = -lonsign
		lat1, lat2 = lat2, lat1
	}
	// Make lat1 <= 0
	latsign := -1.0
	if lat1 < 0 {
		latsign = 1
	}
	lat1 *= latsign
	lat2 *= latsign
	// Now we have
	//
	//     0 <= lon12 <= 180
	//     -90 <= lat1 <= 0
	//     lat1 <= lat2 <= -lat1
	//
	// lonsign, swapp, latsign register the transformation to bring the
	// coordinates to this canonical form. In all cases, 1 means no change
	// was made.

	sbet1, cbet1 := sincosd(lat1)
	sbet1 *= e.f1
	// Ensure cbet1 = +epsilon at poles
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)

	sbet2, cbet2 := sincosd(lat2)
	sbet2 *= e.f1
	sbet2, cbet2 = norm2(sbet2, cbet2)
	cbet2 = math.Max(tiny, cbet2)

	// If cbet1 < -sbet1, then cbet2 - cbet1 is a sensitive measure of the
	// |bet1| - |bet2|. Alternatively (cbet1 >= -sbet1), abs(sbet2) + sbet1
	// is a better measure. This logic is used in assigning calp2 in
	// lambda12. Sometimes these quantities vanish and in that case we force
	// bet2 = +/- bet1 exactly.
	if cbet1 < -sbet1 {
		if cbet2 == cbet1 {
			if sbet2 < 0 {
				sbet2 = sbet1
			} else {
				sbet2 = -sbet1
			}
		}
	} else if math.Abs(sbet2) == -sbet1 {
		cbet2 = cbet1
	}

	dn1 := math.Sqrt(1 + e.ep2*sq(sbet1))
	dn2 := math.Sqrt(1 + e.ep2*sq(sbet2))

	var (
		a12, sig12, s12x, m12x   float64
		salp1, calp1             float64
		salp2, calp2             float64
		M12, M21                 = nan, nan
		ca                       [nC]float64
		omg12, somg12, comg12    float64
	)

	meridian := lat1 == -qd || slam12 == 0
	if meridian {
		// Endpoints are on a single full meridian, so the geodesic might lie
		// on a meridian.

		// Head to the target longitude
		calp1, salp1 = clam12, slam12
		// At the target we're heading north
		calp2, salp2 = 1, 0

		// tan(bet) = tan(sig) * cos(alp)
		ssig1, csig1 := sbet1, calp1*cbet1
		ssig2, csig2 := sbet2, calp2*cbet2

		// sig12 = sig2 - sig1
		sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2),
			csig1*csig2+ssig1*ssig2)
		l := e.lengths(e.n, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2,
			cbet1, cbet2, outmask|Distance|ReducedLength, ca[:])
		s12x, m12x, M12, M21 = l.s12b, l.m12b, l.M12, l.M21
		// Add the check for sig12 since zero length geodesics might yield
		// m12 < 0. Test case was
		//
		//    echo 20.001 0 20.001 0 | GeodSolve -i
		//
		// In fact, we will have sig12 > pi/2 for meridional geodesic which
		// is not a shortest path.
		if sig12 < 1 || m12x >= 0 {
			// Need at least 2, to handle 90 0 90 180
			if sig12 < 3*tiny ||
				// Prevent negative s12 or m12 for short lines
				(sig12 < tol0 && (s12x < 0 || m12x < 0)) {
				sig12, m12x, s12x = 0, 0, 0
			}
			m12x *= e.b
			s12x *= e.b
			a12 = sig12 / degree
		} else {
			// m12 < 0, i.e., prolate and too close to anti-podal
			meridian = false
		}
	}

	// somg12 > 1 marks that it needs to be calculated
	somg12 = 2

	if !meridian &&
		// and sbet2 == 0
		sbet1 == 0 &&
		// Mimic the way lambda12 works with calp1 = 0
		(e.f <= 0 || lon12s >= e.f*hd) {

		// Geodesic runs along equator
		calp1, calp2 = 0, 0
		salp1, salp2 = 1, 1
		s12x = e.a * lam12
		sig12 = lam12 / e.f1
		omg12 = sig12
		m12x = e.b * math.Sin(sig12)
		if outmask&GeodesicScale != 0 {
			M12 = math.Cos(sig12)
			M21 = M12
		}
		a12 = lon12 / e.f1
	} else if !meridian {
		// Now point1 and point2 belong within a hemisphere bounded by a
		// meridian and geodesic is neither meridional or equatorial.

		// Figure a starting point for Newton's method
		start := e.inverseStart(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
			lam12, slam12, clam12, ca[:])
		sig12 = start.sig12
		salp1, calp1 = start.salp1, start.calp1

		if sig12 >= 0 {
			// Short lines (inverseStart sets salp2, calp2, dnm)
			salp2, calp2 = start.salp2, start.calp2
			dnm := start.dnm
			s12x = sig12 * e.b * dnm
			m12x = sq(dnm) * e.b * math.Sin(sig12/dnm)
			if outmask&GeodesicScale != 0 {
				M12 = math.Cos(sig12 / dnm)
				M21 = M12
			}
			a12 = sig12 / degree
			omg12 = lam12 / (e.f1 * dnm)
		} else {
			var (
				ssig1, csig1, ssig2, csig2, eps, domg12 float64
				numit                                   int
			)
			numit, salp1, calp1, salp2, calp2, sig12,
				ssig1, csig1, ssig2, csig2, eps, domg12 = e.solveAzimuth(
				sbet1, cbet1, dn1, sbet2, cbet2, dn2,
				salp1, calp1, slam12, clam12, ca[:])
			sol.numit = numit
			lmask := outmask
			if outmask&(ReducedLength|GeodesicScale) != 0 {
				lmask |= Distance
			}
			l := e.lengths(eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2,
				cbet1, cbet2, lmask, ca[:])
			s12x, m12x, M12, M21 = l.s12b, l.m12b, l.M12, l.M21

			m12x *= e.b
			s12x *= e.b
			a12 = sig12 / degree
			if outmask&Area != 0 {
				// omg12 = lam12 - domg12
				sdomg12, cdomg12 := math.Sincos(domg12)
				somg12 = slam12*cdomg12 - clam12*sdomg12
				comg12 = clam12*cdomg12 + slam12*sdomg12
			}
		}
	}

	if outmask&Distance != 0 {
		// convert -0 to 0
		sol.s12 = 0 + s12x
	}
	if outmask&ReducedLength != 0 {
		sol.m12 = 0 + m12x
	}
	if outmask&Area != 0 {
		sol.S12 = e.inverseArea(sbet1, cbet1, sbet2, cbet2,
			salp1, calp1, salp2, calp2, meridian, omg12, somg12, comg12)
		sol.S12 *= swapp * lonsign * latsign
		sol.S12 += 0
	}

	// Convert calp, salp to azimuth accounting for lonsign, swapp, latsign.
	if swapp < 0 {
		salp1, salp2 = salp2, salp1
		calp1, calp2 = calp2, calp1
		if outmask&GeodesicScale != 0 {
			M12, M21 = M21, M12
		}
	}
	salp1 *= swapp * lonsign
	calp1 *= swapp * latsign
	salp2 *= swapp * lonsign
	calp2 *= swapp * latsign

	sol.a12 = a12
	sol.salp1, sol.calp1 = salp1, calp1
	sol.salp2, sol.calp2 = salp2, calp2
	if outmask&GeodesicScale != 0 {
		sol.M12, sol.M21 = M12, M21
	}
	return sol
}

// inverseArea returns S12 for the canonical configuration of genInverse.
func (e *Ellipsoid) inverseArea(
	sbet1, cbet1, sbet2, cbet2, salp1, calp1, salp2, calp2 float64,
	meridian bool, omg12, somg12, comg12 float64,
) float64 {
	var S12 float64
	// From lambda12: sin(alp1) * cos(bet1) = sin(alp0)
	salp0 := salp1 * cbet1
	// calp0 > 0
	calp0 := math.Hypot(calp1, salp1*sbet1)
	if calp0 != 0 && salp0 != 0 {
		// From lambda12: tan(bet) = tan(sig) * cos(alp)
		ssig1, csig1 := norm2(sbet1, calp1*cbet1)
		ssig2, csig2 := norm2(sbet2, calp2*cbet2)
		k2 := sq(calp0) * e.ep2
		eps := epsilon(k2)
		// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0).
		A4 := sq(e.a) * calp0 * salp0 * e.e2
		var c4a [nC4]float64
		e.c4f(eps, c4a[:])
		B41 := sinCosSeries(false, ssig1, csig1, c4a[:], nC4)
		B42 := sinCosSeries(false, ssig2, csig2, c4a[:], nC4)
		S12 = A4 * (B42 - B41)
	}
	// else avoid problems with indeterminate sig1, sig2 on equator

	if !meridian && somg12 > 1 {
		somg12, comg12 = math.Sincos(omg12)
	}

	var alp12 float64
	if !meridian &&
		// omg12 < 3/4 * pi
		comg12 > -0.7071 &&
		// Long difference not too big and lat difference not too big
		sbet2-sbet1 < 1.75 {
		// Use tan(Gamma/2) = tan(omg12/2)
		// * (tan(bet1/2)+tan(bet2/2))/(1+tan(bet1/2)*tan(bet2/2))
		// with tan(x/2) = sin(x)/(1+cos(x))
		domg12 := 1 + comg12
		dbet1 := 1 + cbet1
		dbet2 := 1 + cbet2
		alp12 = 2 * math.Atan2(somg12*(sbet1*dbet2+sbet2*dbet1),
			domg12*(sbet1*sbet2+dbet1*dbet2))
	} else {
		// alp12 = alp2 - alp1, used in atan2 so no need to normalize
		salp12 := salp2*calp1 - calp2*salp1
		calp12 := calp2*calp1 + salp2*salp1
		// The right thing appears to happen if alp1 = +/-180 and alp2 = 0,
		// viz salp12 = -0 and alp12 = -180. However this depends on the
		// sign being attached to 0 correctly.
		if salp12 == 0 && calp12 < 0 {
			salp12 = tiny * calp1
			calp12 = -1
		}
		alp12 = math.Atan2(salp12, calp12)
	}
	return S12 + e.c2*alp12
}

// solveAzimuth refines the starting azimuth (salp1, calp1) by Newton's
// method on lambda12(alp1) - lam12 = 0.
//
// f(alp) = lambda12(alp) - lam12 has exactly one root in (0, pi) and its
// derivative is positive at the root. Thus f is positive for alp > alp1 and
// negative for alp < alp1. A bracket (alp1a, alp1b) holding the root is
// shrunk with each evaluation. Newton's method is abandoned in favour of
// bisection of the bracket whenever the derivative is not positive, the new
// estimate falls outside (0, pi), or maxit1 iterations have been used.
func (e *Ellipsoid) solveAzimuth(
	sbet1, cbet1, dn1, sbet2, cbet2, dn2, salp1, calp1, slam12, clam12 float64,
	ca []float64,
) (numit int, salp1o, calp1o, salp2, calp2, sig12,
	ssig1, csig1, ssig2, csig2, eps, domg12 float64) {

	tripn, tripb := false, false
	// Bracketing range
	salp1a, calp1a := tiny, 1.0
	salp1b, calp1b := tiny, -1.0
	for ; ; numit++ {
		// the WGS84 test set: mean = 1.47, sd = 1.25, max = 16
		// WGS84 and random input: mean = 2.85, sd = 0.60
		lr := e.lambda12(sbet1, cbet1, dn1, sbet2, cbet2, dn2,
			salp1, calp1, slam12, clam12, numit < maxit1, ca)
		v, dv := lr.lam12, lr.dlam12
		salp2, calp2, sig12 = lr.salp2, lr.calp2, lr.sig12
		ssig1, csig1, ssig2, csig2 = lr.ssig1, lr.csig1, lr.ssig2, lr.csig2
		eps, domg12 = lr.eps, lr.domg12

		tol := tol0
		if tripn {
			tol *= 8
		}
		// Reversed test to allow escape with NaNs
		if tripb || !(math.Abs(v) >= tol) {
			break
		}
		if numit == maxit2 {
			Logger().Warn("geodesic: inverse iteration budget exhausted",
				"residual", v, "iterations", numit)
			break
		}
		// Update bracketing values
		if v > 0 && (numit > maxit1 || calp1/salp1 > calp1b/salp1b) {
			salp1b, calp1b = salp1, calp1
		} else if v < 0 && (numit > maxit1 || calp1/salp1 < calp1a/salp1a) {
			salp1a, calp1a = salp1, calp1
		}
		if numit < maxit1 && dv > 0 {
			dalp1 := -v / dv
			if math.Abs(dalp1) < math.Pi {
				sdalp1, cdalp1 := math.Sincos(dalp1)
				nsalp1 := salp1*cdalp1 + calp1*sdalp1
				if nsalp1 > 0 {
					calp1 = calp1*cdalp1 - salp1*sdalp1
					salp1 = nsalp1
					salp1, calp1 = norm2(salp1, calp1)
					// In some regimes we don't get quadratic convergence
					// because slope -> 0. So use convergence conditions
					// based on epsilon instead of sqrt(epsilon).
					tripn = math.Abs(v) <= 16*tol0
					continue
				}
			}
		}
		// Either dv was not positive or updated value was outside legal
		// range. Use the midpoint of the bracket as the next estimate.
		// This mechanism is not needed for the WGS84 ellipsoid, but it
		// does catch problems with more eccentric ellipsoids.
		salp1 = (salp1a + salp1b) / 2
		calp1 = (calp1a + calp1b) / 2
		salp1, calp1 = norm2(salp1, calp1)
		tripn = false
		tripb = math.Abs(salp1a-salp1)+(calp1a-calp1) < tolb ||
			math.Abs(salp1-salp1b)+(calp1-calp1b) < tolb
	}
	salp1o, calp1o = salp1, calp1
	return
}

type lengthsResult struct {
	// s12b = distance/b, m12b = reduced length/b, m0 = coefficient of
	// the secular term in the expression for the reduced length
	s12b, m12b, m0, M12, M21 float64
}

// lengths evaluates the distance, reduced length and geodesic scales on the
// geodesic with expansion parameter eps between sig1 and sig2. Only the
// quantities selected by outmask are set; the rest are NaN.
func (e *Ellipsoid) lengths(
	eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2 float64,
	outmask Mask, ca []float64,
) lengthsResult {
	nan := math.NaN()
	r := lengthsResult{nan, nan, nan, nan, nan}
	outmask &= outMask
	var (
		m0x, J12, A1, A2 float64
		cb               [nC]float64
	)
	redl := outmask&(ReducedLength|GeodesicScale) != 0
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		A1 = a1m1f(eps)
		c1f(eps, ca)
		if redl {
			A2 = a2m1f(eps)
			c2f(eps, cb[:])
			m0x = A1 - A2
			A2 = 1 + A2
		}
		A1 = 1 + A1
	}
	if outmask&Distance != 0 {
		B1 := sinCosSeries(true, ssig2, csig2, ca, nC1) -
			sinCosSeries(true, ssig1, csig1, ca, nC1)
		// Missing a factor of b
		r.s12b = A1 * (sig12 + B1)
		if redl {
			B2 := sinCosSeries(true, ssig2, csig2, cb[:], nC2) -
				sinCosSeries(true, ssig1, csig1, cb[:], nC2)
			J12 = m0x*sig12 + (A1*B1 - A2*B2)
		}
	} else if redl {
		// Assume here that nC1 >= nC2
		for l := 1; l <= nC2; l++ {
			cb[l] = A1*ca[l] - A2*cb[l]
		}
		J12 = m0x*sig12 + (sinCosSeries(true, ssig2, csig2, cb[:], nC2) -
			sinCosSeries(true, ssig1, csig1, cb[:], nC2))
	}
	if outmask&ReducedLength != 0 {
		r.m0 = m0x
		// Missing a factor of b. Add parens around (csig1 * ssig2) and
		// (ssig1 * csig2) to ensure accurate cancellation in the case of
		// coincident points.
		r.m12b = dn2*(csig1*ssig2) - dn1*(ssig1*csig2) - csig1*csig2*J12
	}
	if outmask&GeodesicScale != 0 {
		csig12 := csig1*csig2 + ssig1*ssig2
		t := e.ep2 * (cbet1 - cbet2) * (cbet1 + cbet2) / (dn1 + dn2)
		r.M12 = csig12 + (t*ssig2-csig2*J12)*ssig1/dn1
		r.M21 = csig12 - (t*ssig1-csig1*J12)*ssig2/dn2
	}
	return r
}

// astroid solves k^4+2*k^3-(x^2+y^2-1)*k^2-2*y^2*k-y^2 = 0 for the positive
// root k.
func astroid(x, y float64) float64 {
	p := sq(x)
	q := sq(y)
	r := (p + q - 1) / 6
	if q == 0 && r <= 0 {
		// y = 0 with |x| <= 1. Handle this case directly.
		// For y small, positive root is k = abs(y)/sqrt(1-x^2).
		return 0
	}
	// Avoid possible division by zero when r = 0 by multiplying equations
	// for s and t by r^3 and r, resp.
	S := p * q / 4 // S = r^3 * s
	r2 := sq(r)
	r3 := r * r2
	// The discriminant of the quadratic equation for T3. This is zero on
	// the evolute curve p^(1/3)+q^(1/3) = 1
	disc := S * (S + 2*r3)
	u := r
	if disc >= 0 {
		T3 := S + r3
		// Pick the sign on the sqrt to maximize abs(T3). This minimizes
		// loss of precision due to cancellation. The result is unchanged
		// because of the way the T is used in definition of u.
		if T3 < 0 {
			T3 -= math.Sqrt(disc)
		} else {
			T3 += math.Sqrt(disc) // T3 = (r * t)^3
		}
		// N.B. cbrt always returns the real root. cbrt(-8) = -2.
		T := math.Cbrt(T3) // T = r * t
		// T can be zero; but then r2 / T -> 0.
		u += T
		if T != 0 {
			u += r2 / T
		}
	} else {
		// T is complex, but the way u is defined the result is real.
		ang := math.Atan2(math.Sqrt(-disc), -(S + r3))
		// There are three possible cube roots. We choose the root which
		// avoids cancellation. Note that disc < 0 implies that r < 0.
		u += 2 * r * math.Cos(ang/3)
	}
	// guaranteed positive
	v := math.Sqrt(sq(u) + q)
	// Avoid loss of accuracy when u < 0.
	var uv float64
	if u < 0 {
		uv = q / (v - u)
	} else {
		uv = u + v
	}
	w := (uv - q) / (2 * v)
	// Rearrange expression for k to avoid loss of accuracy due to
	// subtraction. Division by 0 not possible because uv > 0, w >= 0.
	return uv / (math.Sqrt(uv+sq(w)) + w)
}

type inverseStartResult struct {
	// sig12 is -1 unless the short line solution was used
	sig12, salp1, calp1, salp2, calp2, dnm float64
}

// inverseStart returns a starting point for Newton's method in salp1 and
// calp1 with sig12 = -1. If Newton's method doesn't need to be used, it
// also returns salp2, calp2 and dnm, and sig12 is the arc length.
func (e *Ellipsoid) inverseStart(
	sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12 float64,
	ca []float64,
) inverseStartResult {
	nan := math.NaN()
	r := inverseStartResult{sig12: -1, salp2: nan, calp2: nan, dnm: nan}

	// bet12 = bet2 - bet1 in [0, pi); bet12a = bet2 + bet1 in (-pi, 0]
	sbet12 := sbet2*cbet1 - cbet2*sbet1
	cbet12 := cbet2*cbet1 + sbet2*sbet1
	sbet12a := sbet2 * cbet1
	sbet12a += cbet2 * sbet1

	shortline := cbet12 >= 0 && sbet12 < 0.5 && cbet2*lam12 < 0.5
	var somg12, comg12 float64
	if shortline {
		// sin((bet1+bet2)/2)^2
		// =  (sbet1 + sbet2)^2 / ((sbet1 + sbet2)^2 + (cbet1 + cbet2)^2)
		sbetm2 := sq(sbet1 + sbet2)
		sbetm2 /= sbetm2 + sq(cbet1+cbet2)
		r.dnm = math.Sqrt(1 + e.ep2*sbetm2)
		omg12 := lam12 / (e.f1 * r.dnm)
		somg12, comg12 = math.Sincos(omg12)
	} else {
		somg12, comg12 = slam12, clam12
	}

	r.salp1 = cbet2 * somg12
	if comg12 >= 0 {
		r.calp1 = sbet12 + cbet2*sbet1*sq(somg12)/(1+comg12)
	} else {
		r.calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
	}

	ssig12 := math.Hypot(r.salp1, r.calp1)
	csig12 := sbet1*sbet2 + cbet1*cbet2*comg12

	switch {
	case shortline && ssig12 < e.etol2:
		// really short lines
		r.salp2 = cbet1 * somg12
		mult := 1 - comg12
		if comg12 >= 0 {
			mult = sq(somg12) / (1 + comg12)
		}
		r.calp2 = sbet12 - cbet1*sbet2*mult
		r.salp2, r.calp2 = norm2(r.salp2, r.calp2)
		r.sig12 = math.Atan2(ssig12, csig12)
	case math.Abs(e.n) > 0.1 || // skip astroid calc if too eccentric
		csig12 >= 0 ||
		ssig12 >= 6*math.Abs(e.n)*math.Pi*sq(cbet1):
		// Nothing to do, zeroth order spherical approximation is OK
	default:
		// Scale lam12 and bet2 to x, y coordinate system where antipodal
		// point is at origin and singular point is at y = 0, x = -1.
		var x, y, lamscale, betscale float64
		lam12x := math.Atan2(-slam12, -clam12) // lam12 - pi
		if e.f >= 0 {
			// In fact f == 0 does not get here
			// x = dlong, y = dlat
			k2 := sq(sbet1) * e.ep2
			eps := epsilon(k2)
			lamscale = e.f * cbet1 * e.a3f(eps) * math.Pi
			betscale = lamscale * cbet1
			x = lam12x / lamscale
			y = sbet12a / betscale
		} else {
			// x = dlat, y = dlong
			cbet12a := cbet2*cbet1 - sbet2*sbet1
			bet12a := math.Atan2(sbet12a, cbet12a)
			// In the case of lon12 = 180, this repeats a calculation made
			// in genInverse.
			l := e.lengths(e.n, math.Pi+bet12a, sbet1, -cbet1, dn1,
				sbet2, cbet2, dn2, cbet1, cbet2, ReducedLength, ca)
			x = -1 + l.m12b/(cbet1*cbet2*l.m0*math.Pi)
			if x < -0.01 {
				betscale = sbet12a / x
			} else {
				betscale = -e.f * sq(cbet1) * math.Pi
			}
			lamscale = betscale / cbet1
			y = lam12x / lamscale
		}

		if y > -tol1 && x > -1-xthresh {
			// strip near cut
			if e.f >= 0 {
				r.salp1 = math.Min(1, -x)
				r.calp1 = -math.Sqrt(1 - sq(r.salp1))
			} else {
				if x > -tol1 {
					r.calp1 = math.Max(0, x)
				} else {
					r.calp1 = math.Max(-1, x)
				}
				r.salp1 = math.Sqrt(1 - sq(r.calp1))
			}
		} else {
			// Estimate alp1, by solving the astroid problem.
			//
			// Could estimate alpha1 = theta + pi/2, directly, i.e.,
			//   calp1 = y/k; salp1 = -x/(1+k);  for f >= 0
			//   calp1 = x/(1+k); salp1 = -y/k;  for f < 0 (need to check)
			//
			// However, it's better to estimate omg12 from astroid and use
			// spherical formula to compute alp1. This reduces the mean
			// number of Newton iterations for astroid cases from 2.24
			// (min 0, max 6) to 2.12 (min 0 max 5).
			k := astroid(x, y)
			// because omg12 is near pi, estimate work with omg12a = pi - omg12
			var omg12a float64
			if e.f >= 0 {
				omg12a = lamscale * (-x * k / (1 + k))
			} else {
				omg12a = lamscale * (-y * (1 + k) / k)
			}
			somg12, comg12 = math.Sincos(omg12a)
			comg12 = -comg12
			// Update spherical estimate of alp1 using omg12 instead of lam12
			r.salp1 = cbet2 * somg12
			r.calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
		}
	}
	// Sanity check on starting guess. Backwards check allows NaN through.
	if !(r.salp1 <= 0) {
		r.salp1, r.calp1 = norm2(r.salp1, r.calp1)
	} else {
		r.salp1, r.calp1 = 1, 0
	}
	return r
}

type lambda12Result struct {
	lam12, salp2, calp2, sig12       float64
	ssig1, csig1, ssig2, csig2       float64
	eps, domg12, dlam12              float64
}

// lambda12 solves the hybrid problem: given the azimuth alp1 at point 1,
// find the longitude difference lam12 - lam120 at which the geodesic reaches
// the latitude of point 2, and, if diffp, its derivative with respect to
// alp1.
func (e *Ellipsoid) lambda12(
	sbet1, cbet1, dn1, sbet2, cbet2, dn2, salp1, calp1, slam120, clam120 float64,
	diffp bool, ca []float64,
) lambda12Result {
	var r lambda12Result
	if sbet1 == 0 && calp1 == 0 {
		// Break degeneracy of equatorial line. This case has already been
		// handled.
		calp1 = -tiny
	}

	// sin(alp1) * cos(bet1) = sin(alp0)
	salp0 := salp1 * cbet1
	// calp0 > 0
	calp0 := math.Hypot(calp1, salp1*sbet1)

	// tan(bet1) = tan(sig1) * cos(alp1)
	// tan(omg1) = sin(alp0) * tan(sig1) = tan(omg1)=tan(alp1)*sin(bet1)
	somg1 := salp0 * sbet1
	comg1 := calp1 * cbet1
	r.ssig1, r.csig1 = norm2(sbet1, comg1)
	// no need to normalize somg1, comg1

	// Enforce symmetries in the case abs(bet2) = -bet1. Need to be careful
	// about this case, since this can yield singularities in the Newton
	// iteration.
	// sin(alp2) * cos(bet2) = sin(alp0)
	r.salp2 = salp1
	if cbet2 != cbet1 {
		r.salp2 = salp0 / cbet2
	}
	// calp2 = sqrt(1 - sq(salp2))
	//       = sqrt(sq(calp0) - sq(sbet2)) / cbet2
	// and subst for calp0 and rearrange to give (choose positive sqrt
	// to give alp2 in [0, pi/2]).
	if cbet2 != cbet1 || math.Abs(sbet2) != -sbet1 {
		if cbet1 < -sbet1 {
			r.calp2 = math.Sqrt(sq(calp1*cbet1)+(cbet2-cbet1)*(cbet1+cbet2)) / cbet2
		} else {
			r.calp2 = math.Sqrt(sq(calp1*cbet1)+(sbet1-sbet2)*(sbet1+sbet2)) / cbet2
		}
	} else {
		r.calp2 = math.Abs(calp1)
	}
	// tan(bet2) = tan(sig2) * cos(alp2)
	// tan(omg2) = sin(alp0) * tan(sig2).
	somg2 := salp0 * sbet2
	comg2 := r.calp2 * cbet2
	r.ssig2, r.csig2 = norm2(sbet2, comg2)

	// sig12 = sig2 - sig1, limit to [0, pi]
	r.sig12 = math.Atan2(math.Max(0, r.csig1*r.ssig2-r.ssig1*r.csig2),
		r.csig1*r.csig2+r.ssig1*r.ssig2)

	// omg12 = omg2 - omg1, limit to [0, pi]
	somg12 := math.Max(0, comg1*somg2-somg1*comg2)
	comg12 := comg1*comg2 + somg1*somg2
	// eta = omg12 - lam120
	eta := math.Atan2(somg12*clam120-comg12*slam120,
		comg12*clam120+somg12*slam120)

	k2 := sq(calp0) * e.ep2
	r.eps = epsilon(k2)
	var c3a [nC3]float64
	e.c3f(r.eps, c3a[:])
	B312 := sinCosSeries(true, r.ssig2, r.csig2, c3a[:], nC3-1) -
		sinCosSeries(true, r.ssig1, r.csig1, c3a[:], nC3-1)
	r.domg12 = -e.f * e.a3f(r.eps) * salp0 * (r.sig12 + B312)
	r.lam12 = eta + r.domg12

	if diffp {
		if r.calp2 == 0 {
			r.dlam12 = -2 * e.f1 * dn1 / sbet1
		} else {
			l := e.lengths(r.eps, r.sig12, r.ssig1, r.csig1, dn1,
				r.ssig2, r.csig2, dn2, cbet1, cbet2, ReducedLength, ca)
			r.dlam12 = l.m12b * e.f1 / (r.calp2 * cbet2)
		}
	} else {
		r.dlam12 = math.NaN()
	}
	return r
}
