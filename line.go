// Geodesic lines in Go
//
// The algorithms are those of GeographicLib, Copyright (c) Charles Karney
// (2012-2022) <charles@karney.com> and licensed under the MIT/X11 License.
// For more information, see https://geographiclib.sourceforge.io/

package geodesic

import "math"

// Line is a geodesic with a fixed starting point and azimuth. Positions
// along it can be computed repeatedly without recomputing the series
// coefficients, which makes it the efficient choice for sampling many points
// on one geodesic.
//
// Only the series selected by the capabilities passed at construction are
// computed. Asking GenPosition for a quantity whose series is missing yields
// NaN.
//
// GenPosition may be called concurrently. SetDistance and SetArc mutate the
// line and must not race with other calls.
type Line struct {
	lat1, lon1, azi1 float64
	a, f, b, c2, f1  float64
	salp1, calp1     float64
	salp0, calp0     float64
	ssig1, csig1     float64
	stau1, ctau1     float64
	somg1, comg1     float64
	dn1, k2          float64
	A1m1, A2m1, A3c  float64
	A4               float64
	B11, B21, B31    float64
	B41              float64
	a13, s13         float64

	c1a  [nC1 + 1]float64
	c1pa [nC1p + 1]float64
	c2a  [nC2 + 1]float64
	c3a  [nC3]float64
	c4a  [nC4]float64

	caps Mask
}

// Line returns a geodesic line starting at lat1, lon1 with azimuth azi1
// (degrees).
//
// caps selects the quantities that GenPosition will be able to return.
// None gives Standard|DistanceIn. Latitude, Azimuth and LongUnroll are
// always available.
func (e *Ellipsoid) Line(lat1, lon1, azi1 float64, caps Mask) *Line {
	azi1 = AngNormalize(azi1)
	// Guard against underflow in salp0
	salp1, calp1 := sincosd(AngRound(azi1))
	l := new(Line)
	l.init(e, lat1, lon1, azi1, salp1, calp1, caps)
	return l
}

func (l *Line) init(
	e *Ellipsoid, lat1, lon1, azi1, salp1, calp1 float64, caps Mask,
) {
	l.a, l.f, l.b, l.c2, l.f1 = e.a, e.f, e.b, e.c2, e.f1
	if caps == None {
		caps = Standard | DistanceIn
	}
	// always allow latitude and azimuth and unrolling of longitude
	l.caps = requiredCaps(caps | Latitude | Azimuth | LongUnroll)

	l.lat1 = latFix(lat1)
	l.lon1 = lon1
	l.azi1 = azi1
	l.salp1, l.calp1 = salp1, calp1

	sbet1, cbet1 := sincosd(AngRound(l.lat1))
	sbet1 *= l.f1
	// Ensure cbet1 = +epsilon at poles
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	l.dn1 = math.Sqrt(1 + e.ep2*sq(sbet1))

	// Evaluate alp0 from sin(alp1) * cos(bet1) = sin(alp0),
	// alp0 in [0, pi/2 - |bet1|]
	l.salp0 = l.salp1 * cbet1
	// Alt: calp0 = hypot(sbet1, calp1 * cbet1). The following is slightly
	// better (consider the case salp1 = 0).
	l.calp0 = math.Hypot(l.calp1, l.salp1*sbet1)
	// Evaluate sig with tan(bet1) = tan(sig1) * cos(alp1).
	// sig = 0 is nearest northward crossing of equator.
	// With bet1 = 0, alp1 = pi/2, we have sig1 = 0 (equatorial line).
	// With bet1 =  pi/2, alp1 = -pi, sig1 =  pi/2
	// With bet1 = -pi/2, alp1 =  0 , sig1 = -pi/2
	// Evaluate omg1 with tan(omg1) = sin(alp0) * tan(sig1).
	// With alp0 in (0, pi/2], quadrants for sig and omg coincide.
	// No atan2(0,0) ambiguity at poles since cbet1 = +epsilon.
	// With alp0 = 0, omg1 = 0 for alp1 = 0, omg1 = pi for alp1 = pi.
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || l.calp1 != 0 {
		l.csig1 = cbet1 * l.calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	// sig1 in (-pi, pi]
	l.ssig1, l.csig1 = norm2(l.ssig1, l.csig1)
	// no need to normalize
	// l.somg1, l.comg1 = norm2(l.somg1, l.comg1)

	l.k2 = sq(l.calp0) * e.ep2
	eps := epsilon(l.k2)

	if l.caps&capC1 != 0 {
		l.A1m1 = a1m1f(eps)
		c1f(eps, l.c1a[:])
		l.B11 = sinCosSeries(true, l.ssig1, l.csig1, l.c1a[:], nC1)
		s, c := math.Sincos(l.B11)
		// tau1 = sig1 + B11
		l.stau1 = l.ssig1*c + l.csig1*s
		l.ctau1 = l.csig1*c - l.ssig1*s
		// Not necessary because c1pa reverts c1a
		//    B11 = -sinCosSeries(true, stau1, ctau1, c1pa, nC1p)
	}
	if l.caps&capC1p != 0 {
		c1pf(eps, l.c1pa[:])
	}
	if l.caps&capC2 != 0 {
		l.A2m1 = a2m1f(eps)
		c2f(eps, l.c2a[:])
		l.B21 = sinCosSeries(true, l.ssig1, l.csig1, l.c2a[:], nC2)
	}
	if l.caps&capC3 != 0 {
		e.c3f(eps, l.c3a[:])
		l.A3c = -l.f * l.salp0 * e.a3f(eps)
		l.B31 = sinCosSeries(true, l.ssig1, l.csig1, l.c3a[:], nC3-1)
	}
	if l.caps&capC4 != 0 {
		e.c4f(eps, l.c4a[:])
		// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0)
		l.A4 = sq(l.a) * l.calp0 * l.salp0 * e.e2
		l.B41 = sinCosSeries(false, l.ssig1, l.csig1, l.c4a[:], nC4)
	}
	l.a13 = math.NaN()
	l.s13 = math.NaN()
}

// GenPosition computes the position of point 2 on the line. If arcmode is
// set, s12a12 is the arc length from point 1 on the auxiliary sphere
// (degrees), otherwise it is the distance from point 1. outmask selects the
// quantities to compute and is restricted to the capabilities of the line;
// add LongUnroll to have Lon2 unrolled.
//
// The returned Arc is always set. Distance mode on a line built without the
// DistanceIn capability returns all NaN.
func (l *Line) GenPosition(arcmode bool, s12a12 float64, outmask Mask) Result {
	r := nanResult()
	unroll := outmask&LongUnroll != 0
	outmask &= l.caps & outAll
	if !arcmode && l.caps&(DistanceIn&outMask) == 0 {
		Logger().Debug("geodesic: line position by distance without DistanceIn",
			"caps", l.caps)
		return r
	}
	r.Lat1 = l.lat1
	r.Azi1 = l.azi1
	if unroll {
		r.Lon1 = l.lon1
	} else {
		r.Lon1 = AngNormalize(l.lon1)
	}

	var sig12, ssig12, csig12, B12, AB1 float64
	if arcmode {
		// Interpret s12a12 as spherical arc length
		sig12 = s12a12 * degree
		ssig12, csig12 = sincosd(s12a12)
	} else {
		// Interpret s12a12 as distance
		tau12 := s12a12 / (l.b * (1 + l.A1m1))
		s, c := math.Sincos(tau12)
		// tau2 = tau1 + tau12
		B12 = -sinCosSeries(true,
			l.stau1*c+l.ctau1*s, l.ctau1*c-l.stau1*s, l.c1pa[:], nC1p)
		sig12 = tau12 - (B12 - l.B11)
		ssig12, csig12 = math.Sincos(sig12)
		if math.Abs(l.f) > 0.01 {
			// Reverted distance series is inaccurate for |f| > 1/100, so
			// correct sig12 with 1 Newton iteration. The following table
			// shows the approximate maximum error for a = WGS_a() and
			// various f relative to GeodesicExact.
			//     erri = the error in the inverse solution (nm)
			//     errd = the error in the direct solution (series only) (nm)
			//     errda = the error in the direct solution
			//             (series + 1 Newton) (nm)
			//
			//       f     erri  errd errda
			//     -1/5    12e6 1.2e9  69e6
			//     -1/10  123e3  12e6 765e3
			//     -1/20   1110 108e3  7155
			//     -1/50  18.63 200.9 27.12
			//     -1/100 18.63 23.78 23.37
			//     -1/150 18.63 21.05 20.26
			//      1/150 22.35 24.73 25.83
			//      1/100 22.35 25.03 25.31
			//      1/50  29.80 231.9 30.44
			//      1/20   5376 146e3  10e3
			//      1/10  829e3  22e6 1.5e6
			//      1/5   157e6 3.8e9 280e6
			ssig2 := l.ssig1*csig12 + l.csig1*ssig12
			csig2 := l.csig1*csig12 - l.ssig1*ssig12
			B12 = sinCosSeries(true, ssig2, csig2, l.c1a[:], nC1)
			serr := (1+l.A1m1)*(sig12+(B12-l.B11)) - s12a12/l.b
			sig12 -= serr / math.Sqrt(1+l.k2*sq(ssig2))
			ssig12, csig12 = math.Sincos(sig12)
			// Update B12 below
		}
	}

	// sig2 = sig1 + sig12
	ssig2 := l.ssig1*csig12 + l.csig1*ssig12
	csig2 := l.csig1*csig12 - l.ssig1*ssig12
	dn2 := math.Sqrt(1 + l.k2*sq(ssig2))
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		if arcmode || math.Abs(l.f) > 0.01 {
			B12 = sinCosSeries(true, ssig2, csig2, l.c1a[:], nC1)
		}
		AB1 = (1 + l.A1m1) * (B12 - l.B11)
	}
	// sin(bet2) = cos(alp0) * sin(sig2)
	sbet2 := l.calp0 * ssig2
	// Alt: cbet2 = hypot(csig2, salp0 * ssig2)
	cbet2 := math.Hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// I.e., salp0 = 0, csig2 = 0. Break the degeneracy in this case
		cbet2 = tiny
		csig2 = tiny
	}
	// tan(alp0) = cos(sig2)*tan(alp2)
	salp2 := l.salp0
	calp2 := l.calp0 * csig2

	if outmask&Distance != 0 {
		if arcmode {
			r.Distance = l.b * ((1+l.A1m1)*sig12 + AB1)
		} else {
			r.Distance = s12a12
		}
	}

	if outmask&Longitude != 0 {
		// tan(omg2) = sin(alp0) * tan(sig2)
		somg2 := l.salp0 * ssig2
		comg2 := csig2
		var omg12 float64
		if unroll {
			E := math.Copysign(1, l.salp0)
			omg12 = E * (sig12 -
				(math.Atan2(ssig2, csig2) - math.Atan2(l.ssig1, l.csig1)) +
				(math.Atan2(E*somg2, comg2) - math.Atan2(E*l.somg1, l.comg1)))
		} else {
			omg12 = math.Atan2(somg2*l.comg1-comg2*l.somg1,
				comg2*l.comg1+somg2*l.somg1)
		}
		lam12 := omg12 + l.A3c*(sig12+
			(sinCosSeries(true, ssig2, csig2, l.c3a[:], nC3-1)-l.B31))
		lon12 := lam12 / degree
		if unroll {
			r.Lon2 = l.lon1 + lon12
		} else {
			r.Lon2 = AngNormalize(AngNormalize(l.lon1) + AngNormalize(lon12))
		}
	}

	if outmask&Latitude != 0 {
		r.Lat2 = atan2d(sbet2, l.f1*cbet2)
	}
	if outmask&Azimuth != 0 {
		r.Azi2 = atan2d(salp2, calp2)
	}

	if outmask&(ReducedLength|GeodesicScale) != 0 {
		B22 := sinCosSeries(true, ssig2, csig2, l.c2a[:], nC2)
		AB2 := (1 + l.A2m1) * (B22 - l.B21)
		J12 := (l.A1m1-l.A2m1)*sig12 + (AB1 - AB2)
		if outmask&ReducedLength != 0 {
			// Add parens around (csig1 * ssig2) and (ssig1 * csig2) to
			// ensure accurate cancellation in the case of coincident points.
			r.ReducedLength = l.b * ((dn2*(l.csig1*ssig2) -
				l.dn1*(l.ssig1*csig2)) - l.csig1*csig2*J12)
		}
		if outmask&GeodesicScale != 0 {
			t := l.k2 * (ssig2 - l.ssig1) * (ssig2 + l.ssig1) / (l.dn1 + dn2)
			r.M12 = csig12 + (t*ssig2-csig2*J12)*l.ssig1/l.dn1
			r.M21 = csig12 - (t*l.ssig1-l.csig1*J12)*ssig2/dn2
		}
	}

	if outmask&Area != 0 {
		B42 := sinCosSeries(false, ssig2, csig2, l.c4a[:], nC4)
		var salp12, calp12 float64
		if l.calp0 == 0 || l.salp0 == 0 {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize
			salp12 = salp2*l.calp1 - calp2*l.salp1
			calp12 = calp2*l.calp1 + salp2*l.salp1
		} else {
			// tan(alp) = tan(alp0) * sec(sig)
			// tan(alp2-alp1) = (tan(alp2) -tan(alp1)) / (tan(alp2)*tan(alp1)+1)
			// = calp0 * salp0 * (csig1-csig2) / (salp0^2 + calp0^2 * csig1*csig2)
			// If csig12 > 0, write
			//   csig1 - csig2 = ssig12 * (csig1 * ssig12 / (1 + csig12) + ssig1)
			// else
			//   csig1 - csig2 = csig1 * (1 - csig12) + ssig12 * ssig1
			// No need to normalize
			if csig12 <= 0 {
				salp12 = l.csig1*(1-csig12) + ssig12*l.ssig1
			} else {
				salp12 = ssig12 * (l.csig1*ssig12/(1+csig12) + l.ssig1)
			}
			salp12 *= l.calp0 * l.salp0
			calp12 = sq(l.salp0) + sq(l.calp0)*l.csig1*csig2
		}
		r.Area = l.c2*math.Atan2(salp12, calp12) + l.A4*(B42-l.B41)
	}

	if arcmode {
		r.Arc = s12a12
	} else {
		r.Arc = sig12 / degree
	}
	return r
}

// Position computes the point at distance s12 from point 1. The line must
// have the DistanceIn capability.
func (l *Line) Position(s12 float64, outmask Mask) Result {
	return l.GenPosition(false, s12, outmask)
}

// ArcPosition computes the point at arc length a12 (degrees) from point 1.
func (l *Line) ArcPosition(a12 float64, outmask Mask) Result {
	return l.GenPosition(true, a12, outmask)
}

// SetDistance sets the distance from point 1 to point 3 and updates the
// corresponding arc length.
func (l *Line) SetDistance(s13 float64) {
	l.s13 = s13
	l.a13 = l.GenPosition(false, s13, None).Arc
}

// SetArc sets the arc length from point 1 to point 3 (degrees) and updates
// the corresponding distance. The distance is NaN unless the line has the
// Distance capability.
func (l *Line) SetArc(a13 float64) {
	l.a13 = a13
	l.s13 = l.GenPosition(true, a13, Distance).Distance
}

// GenSetDistance calls SetArc if arcmode is set, otherwise SetDistance.
func (l *Line) GenSetDistance(arcmode bool, s13a13 float64) {
	if arcmode {
		l.SetArc(s13a13)
	} else {
		l.SetDistance(s13a13)
	}
}

// Latitude of point 1 (degrees).
func (l *Line) Latitude() float64 { return l.lat1 }

// Longitude of point 1 (degrees).
func (l *Line) Longitude() float64 { return l.lon1 }

// Azimuth at point 1 (degrees).
func (l *Line) Azimuth() float64 { return l.azi1 }

// EquatorialAzimuth returns the azimuth of the line as it crosses the
// equator northwards (degrees).
func (l *Line) EquatorialAzimuth() float64 {
	return atan2d(l.salp0, l.calp0)
}

// EquatorialArc returns the arc length (degrees) from the northward equator
// crossing to point 1.
func (l *Line) EquatorialArc() float64 {
	return math.Atan2(l.ssig1, l.csig1) / degree
}

// Capabilities returns the capabilities the line was built with.
func (l *Line) Capabilities() Mask { return l.caps }

// Distance returns the distance to point 3, NaN if it has not been set.
func (l *Line) Distance() float64 { return l.s13 }

// Arc returns the arc length to point 3 (degrees), NaN if it has not been
// set.
func (l *Line) Arc() float64 { return l.a13 }

// DirectLine returns the line from lat1, lon1 with azimuth azi1, with point
// 3 set at distance s12.
func (e *Ellipsoid) DirectLine(lat1, lon1, azi1, s12 float64, caps Mask) *Line {
	return e.GenDirectLine(lat1, lon1, azi1, false, s12, caps)
}

// ArcDirectLine returns the line from lat1, lon1 with azimuth azi1, with
// point 3 set at arc length a12 (degrees).
func (e *Ellipsoid) ArcDirectLine(lat1, lon1, azi1, a12 float64, caps Mask) *Line {
	return e.GenDirectLine(lat1, lon1, azi1, true, a12, caps)
}

// GenDirectLine is DirectLine or ArcDirectLine depending on arcmode.
func (e *Ellipsoid) GenDirectLine(
	lat1, lon1, azi1 float64, arcmode bool, s12a12 float64, caps Mask,
) *Line {
	if caps == None {
		caps = Standard | DistanceIn
	}
	if !arcmode {
		// Automatically supply DistanceIn if necessary
		caps |= DistanceIn
	}
	l := e.Line(lat1, lon1, azi1, caps)
	l.GenSetDistance(arcmode, s12a12)
	return l
}

// InverseLine returns the geodesic line from lat1, lon1 to lat2, lon2 with
// point 3 set at point 2.
func (e *Ellipsoid) InverseLine(lat1, lon1, lat2, lon2 float64, caps Mask) *Line {
	if caps == None {
		caps = Standard | DistanceIn
	}
	// Since the solution is along the line, the distance needs computing
	// if it may be used as an input.
	outmask := Azimuth
	if caps&(DistanceIn&outMask) != 0 {
		caps |= Distance
		outmask |= Distance
	}
	sol := e.genInverse(lat1, lon1, lat2, lon2, outmask)
	azi1 := atan2d(sol.salp1, sol.calp1)
	l := new(Line)
	l.init(e, lat1, lon1, azi1, sol.salp1, sol.calp1, caps)
	l.SetArc(sol.a12)
	return l
}
