// API for the shperical routines in Go
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package geodesic

import "math"

// sphericalInverse solves the inverse problem on a sphere of the given
// radius. Latitudes outside [-90, 90] give NaN.
func sphericalInverse(
	radius float64,
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	lat1, lat2 = latFix(lat1), latFix(lat2)
	if s12 != nil {
		*s12 = radius * centralAngle(lat1, lon1, lat2, lon2)
	}
	if azi1 != nil {
		*azi1 = bearing(lat1, lon1, lat2, lon2)
	}
	if azi2 != nil {
		*azi2 = AngNormalize(bearing(lat2, lon2, lat1, lon1) + hd)
	}
}

// sphericalDirect solves the direct problem on a sphere of the given radius.
func sphericalDirect(
	radius float64,
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	la2, lo2 := destination(latFix(lat1), lon1, azi1, s12/radius)
	if lat2 != nil {
		*lat2 = la2
	}
	if lon2 != nil {
		*lon2 = lo2
	}
	if azi2 != nil {
		*azi2 = AngNormalize(bearing(la2, lo2, lat1, lon1) + hd)
	}
}

// destination returns the point reached by travelling the angular distance
// δ (radians) from lat1, lon1 on the initial bearing θ (degrees).
func destination(lat1, lon1, θ, δ float64) (lat2, lon2 float64) {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	// see mathforum.org/library/drmath/view/52049.html for derivation
	sφ1, cφ1 := sincosd(lat1)
	sθ, cθ := sincosd(θ)
	sδ, cδ := math.Sincos(δ)
	sφ2 := sφ1*cδ + cφ1*sδ*cθ
	cφ2 := math.Hypot(cφ1*cδ-sφ1*sδ*cθ, sθ*sδ)
	Δλ := atan2d(sθ*sδ*cφ1, cδ-sφ1*sφ2)
	return atan2d(sφ2, cφ2), AngNormalize(lon1 + Δλ)
}

// centralAngle returns the great circle angle (radians) between two points
// using the haversine formula in its atan2 form, which stays accurate for
// nearly antipodal points.
func centralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	Δλ, _ := AngDiff(lon1, lon2)
	sΔφ2 := math.Sin((lat2 - lat1) * degree / 2)
	sΔλ2 := math.Sin(Δλ * degree / 2)
	_, cφ1 := sincosd(lat1)
	_, cφ2 := sincosd(lat2)
	haver := sΔφ2*sΔφ2 + cφ1*cφ2*sΔλ2*sΔλ2
	haver = math.Min(1, haver)
	return 2 * math.Atan2(math.Sqrt(haver), math.Sqrt(1-haver))
}

// bearing returns the initial bearing (degrees) from point 1 to point 2.
func bearing(lat1, lon1, lat2, lon2 float64) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	// see mathforum.org/library/drmath/view/55417.html for derivation
	Δλ, _ := AngDiff(lon1, lon2)
	sφ1, cφ1 := sincosd(lat1)
	sφ2, cφ2 := sincosd(lat2)
	sΔλ, cΔλ := sincosd(Δλ)
	y := sΔλ * cφ2
	x := cφ1*sφ2 - sφ1*cφ2*cΔλ
	return atan2d(y, x)
}
