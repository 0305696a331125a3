package geodesic

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// InverseLatLng solves the inverse geodesic problem between two s2
// coordinates. Returns s12 (distance in meters), azi1 (azimuth at point 1)
// and azi2 (forward azimuth at point 2), both in degrees.
func (e *Ellipsoid) InverseLatLng(a, b s2.LatLng) (s12, azi1, azi2 float64) {
	e.Inverse(a.Lat.Degrees(), a.Lng.Degrees(), b.Lat.Degrees(), b.Lng.Degrees(),
		&s12, &azi1, &azi2)
	return s12, azi1, azi2
}

// DirectLatLng returns the point at distance s12 from a along the geodesic
// with initial azimuth azi1, and the forward azimuth there.
func (e *Ellipsoid) DirectLatLng(a s2.LatLng, azi1 s1.Angle, s12 float64) (s2.LatLng, s1.Angle) {
	var lat2, lon2, azi2 float64
	e.Direct(a.Lat.Degrees(), a.Lng.Degrees(), azi1.Degrees(), s12,
		&lat2, &lon2, &azi2)
	return s2.LatLngFromDegrees(lat2, lon2), s1.Angle(azi2) * s1.Degree
}

// InverseBatch sums the geodesic distances between consecutive points.
func (e *Ellipsoid) InverseBatch(points []s2.Point) float64 {
	p := e.PolygonInit(true)
	for _, pt := range points {
		p.AddLatLng(s2.LatLngFromPoint(pt))
	}
	var perimeter float64
	p.Compute(false, true, nil, &perimeter)
	return perimeter
}

// AddLatLng adds an s2 coordinate to the polygon or polyline.
func (p *Polygon) AddLatLng(ll s2.LatLng) {
	p.AddPoint(ll.Lat.Degrees(), ll.Lng.Degrees())
}

// AreaAndPerimeter returns the signed area (counter-clockwise positive) and
// perimeter of the polygon with the given vertices. The first vertex need
// not be repeated at the end.
func (e *Ellipsoid) AreaAndPerimeter(points []s2.Point) (area, perimeter float64) {
	p := e.PolygonInit(false)
	for _, pt := range points {
		p.AddLatLng(s2.LatLngFromPoint(pt))
	}
	p.Compute(false, true, &area, &perimeter)
	return area, perimeter
}

// AreaOfLoop returns the area and perimeter of an s2 loop. Loops are
// oriented so that the interior is on the left, so the area is positive
// unless the loop is empty.
func (e *Ellipsoid) AreaOfLoop(l *s2.Loop) (area, perimeter float64) {
	switch {
	case l.IsFull():
		return e.EllipsoidArea(), 0
	case l.IsEmpty():
		return 0, 0
	}
	p := e.PolygonInit(false)
	for _, v := range l.Vertices() {
		p.AddLatLng(s2.LatLngFromPoint(v))
	}
	p.Compute(false, false, &area, &perimeter)
	return area, perimeter
}
