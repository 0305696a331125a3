package geodesic

import (
	"fmt"
	"math"
)

// WGS84 conforming ellispoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = MustEllipsoid(6378137, float64(1.)/298.257223563)

// Globe is a pre-initialized spherical representing Earth as a
// terrestrial globe.
var Globe = mustSpherical(6378137)

// Ellipsoid is an object for performing geodesic operations.
//
// An Ellipsoid is immutable once created and may be shared by any number
// of goroutines.
type Ellipsoid struct {
	a, f, f1, e2, ep2, n, b, c2, etol2 float64

	a3x [nA3x]float64
	c3x [nC3x]float64
	c4x [nC4x]float64

	spherical bool
}

// Result holds the quantities computed by GenInverse, GenDirect and the Line
// position methods. Quantities that were not requested are NaN.
type Result struct {
	Lat1, Lon1, Azi1 float64 // point 1 (degrees)
	Lat2, Lon2, Azi2 float64 // point 2 (degrees), azi2 is the forward azimuth
	Distance         float64 // s12, same unit as the equatorial radius
	Arc              float64 // a12, arc length on the auxiliary sphere (degrees)
	ReducedLength    float64 // m12
	M12, M21         float64 // geodesic scales
	Area             float64 // S12, area between the geodesic and the equator
}

func nanResult() Result {
	nan := math.NaN()
	return Result{nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan}
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid. Negative
// values give a prolate spheroid.
//
// An error wrapping ErrInvalidParameter is returned if radius or the polar
// semi-axis radius*(1-flattening) is not a finite positive number.
func NewEllipsoid(radius, flattening float64) (*Ellipsoid, error) {
	e := &Ellipsoid{a: radius, f: flattening}
	if err := geodInit(e); err != nil {
		Logger().Debug("geodesic: rejected ellipsoid",
			"radius", radius, "flattening", flattening, "err", err)
		return nil, err
	}
	return e, nil
}

// MustEllipsoid is like NewEllipsoid but panics if the parameters are
// invalid. It simplifies safe initialization of global variables.
func MustEllipsoid(radius, flattening float64) *Ellipsoid {
	e, err := NewEllipsoid(radius, flattening)
	if err != nil {
		panic(err)
	}
	return e
}

// NewSpherical initializes a new geodesic ellipsoid object that uses
// simplified operations on a sphere.
//
// The Inverse and Direct operations will often be more computationally
// efficient than NewEllipsoid because it uses simplier great-circle
// calculations such as the Haversine formula. The Gen* methods, lines and
// polygons use the full series with a flattening of zero.
//
// Param radius is the equatorial radius (meters).
//
// The Globe package-level variable is a pre-initialized spherical
// representing Earth as a terrestrial globe.
func NewSpherical(radius float64) (*Ellipsoid, error) {
	e, err := NewEllipsoid(radius, 0)
	if err != nil {
		return nil, err
	}
	e.spherical = true
	return e, nil
}

func mustSpherical(radius float64) *Ellipsoid {
	e, err := NewSpherical(radius)
	if err != nil {
		panic(err)
	}
	return e
}

func geodInit(e *Ellipsoid) error {
	if !(isFinite(e.a) && e.a > 0) {
		return fmt.Errorf("%w: equatorial radius %v is not positive",
			ErrInvalidParameter, e.a)
	}
	e.f1 = 1 - e.f
	e.e2 = e.f * (2 - e.f)
	e.ep2 = e.e2 / sq(e.f1)
	e.n = e.f / (2 - e.f)
	e.b = e.a * e.f1
	if !(isFinite(e.b) && e.b > 0) {
		return fmt.Errorf("%w: polar semi-axis %v is not positive",
			ErrInvalidParameter, e.b)
	}
	// authalic radius squared
	switch {
	case e.e2 == 0:
		e.c2 = (sq(e.a) + sq(e.b)) / 2
	case e.e2 > 0:
		e.c2 = (sq(e.a) + sq(e.b)*math.Atanh(math.Sqrt(e.e2))/
			math.Sqrt(math.Abs(e.e2))) / 2
	default:
		e.c2 = (sq(e.a) + sq(e.b)*math.Atan(math.Sqrt(-e.e2))/
			math.Sqrt(math.Abs(e.e2))) / 2
	}
	// The sig12 threshold for "really short". Using the auxiliary sphere
	// solution with dnm computed at (bet1 + bet2) / 2, the relative error in
	// the azimuth consistency check is sig12^2 * abs(f) * min(1, 1-f/2) / 2.
	// Setting this equal to epsilon gives sig12 = etol2. Here 0.1 is a
	// safety factor (error decreased by 100) and max(0.001, abs(f)) stops
	// etol2 getting too large in the nearly spherical case.
	e.etol2 = 0.1 * tol2 /
		math.Sqrt(math.Max(0.001, math.Abs(e.f))*math.Min(1, 1-e.f/2)/2)
	e.a3coeff()
	e.c3coeff()
	e.c4coeff()
	return nil
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.a
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.f
}

// MinorRadius returns the polar semi-axis.
func (e *Ellipsoid) MinorRadius() float64 {
	return e.b
}

// EllipsoidArea returns the total area of the ellipsoid, 4*pi*c^2 where c is
// the authalic radius.
func (e *Ellipsoid) EllipsoidArea() float64 {
	return 4 * math.Pi * e.c2
}

// Spherical returns true if the ellipsoid was initialized using NewSpherical.
func (e *Ellipsoid) Spherical() bool {
	return e.spherical
}

// Inverse solve the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param s12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param azi1 is a pointer to the azimuth at point 1 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 and lat2 should be in the range [-90,+90].
// The values of azi1 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, s12, etc., may be replaced with nil, if you
// do not need some quantities computed.
//
// The solution to the inverse problem is found using Newton's method.  If
// this fails to converge (this is very unlikely in geodetic applications
// but does occur for very eccentric ellipsoids), then the bisection method
// is used to refine the solution.
func (e *Ellipsoid) Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	if e.spherical {
		sphericalInverse(e.a, lat1, lon1, lat2, lon2, s12, azi1, azi2)
		return
	}
	var outmask Mask
	if s12 != nil {
		outmask |= Distance
	}
	if azi1 != nil || azi2 != nil {
		outmask |= Azimuth
	}
	r := e.GenInverse(lat1, lon1, lat2, lon2, outmask)
	if s12 != nil {
		*s12 = r.Distance
	}
	if azi1 != nil {
		*azi1 = r.Azi1
	}
	if azi2 != nil {
		*azi2 = r.Azi2
	}
}

// GenInverse solves the inverse geodesic problem, computing the quantities
// selected by outmask. Arc (a12) and the two points are always returned.
// With LongUnroll, Lon2 is lon1 plus the longitude difference along the
// geodesic rather than being reduced to (-180, 180].
func (e *Ellipsoid) GenInverse(lat1, lon1, lat2, lon2 float64, outmask Mask) Result {
	r := nanResult()
	sol := e.genInverse(lat1, lon1, lat2, lon2, outmask)
	outmask &= outMask
	r.Lat1 = latFix(lat1)
	r.Lat2 = latFix(lat2)
	if outmask&LongUnroll != 0 {
		lon12, le := AngDiff(lon1, lon2)
		r.Lon1 = lon1
		r.Lon2 = (lon1 + lon12) + le
	} else {
		r.Lon1 = AngNormalize(lon1)
		r.Lon2 = AngNormalize(lon2)
	}
	r.Arc = sol.a12
	if outmask.Has(Distance) {
		r.Distance = sol.s12
	}
	if outmask.Has(Azimuth) {
		r.Azi1 = atan2d(sol.salp1, sol.calp1)
		r.Azi2 = atan2d(sol.salp2, sol.calp2)
	}
	if outmask.Has(ReducedLength) {
		r.ReducedLength = sol.m12
	}
	if outmask.Has(GeodesicScale) {
		r.M12, r.M21 = sol.M12, sol.M21
	}
	if outmask.Has(Area) {
		r.Area = sol.S12
	}
	return r
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param lat2 is a pointer to the latitude of point 2 (degrees).
// Out param lon2 is a pointer to the longitude of point 2 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 should be in the range [-90,+90].
// The values of lon2 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, lat2, etc., may be replaced with nil, if you
// do not need some quantities computed.
func (e *Ellipsoid) Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	if e.spherical {
		sphericalDirect(e.a, lat1, lon1, azi1, s12, lat2, lon2, azi2)
		return
	}
	var outmask Mask
	if lat2 != nil {
		outmask |= Latitude
	}
	if lon2 != nil {
		outmask |= Longitude
	}
	if azi2 != nil {
		outmask |= Azimuth
	}
	r := e.GenDirect(lat1, lon1, azi1, false, s12, outmask)
	if lat2 != nil {
		*lat2 = r.Lat2
	}
	if lon2 != nil {
		*lon2 = r.Lon2
	}
	if azi2 != nil {
		*azi2 = r.Azi2
	}
}

// GenDirect solves the direct geodesic problem, computing the quantities
// selected by outmask. If arcmode is set, s12a12 is the arc length on the
// auxiliary sphere in degrees, otherwise it is the distance from point 1.
func (e *Ellipsoid) GenDirect(
	lat1, lon1, azi1 float64, arcmode bool, s12a12 float64, outmask Mask,
) Result {
	caps := outmask
	if !arcmode {
		// supply DistanceIn automatically
		caps |= DistanceIn
	}
	l := e.Line(lat1, lon1, azi1, caps)
	return l.GenPosition(arcmode, s12a12, outmask)
}

// ArcDirect solves the direct geodesic problem given the arc length a12 in
// degrees.
func (e *Ellipsoid) ArcDirect(lat1, lon1, azi1, a12 float64, outmask Mask) Result {
	return e.GenDirect(lat1, lon1, azi1, true, a12, outmask)
}
