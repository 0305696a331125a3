// Geodesic polygons in Go
//
// The algorithms are those of GeographicLib, Copyright (c) Charles Karney
// (2012-2022) <charles@karney.com> and licensed under the MIT/X11 License.
// For more information, see https://geographiclib.sourceforge.io/

package geodesic

import "math"

// Polygon struct for accumulating information about a geodesic polygon.
// Used for computing the perimeter and area of a polygon.
// This must be initialized from Ellipsoid.PolygonInit before use.
//
// A Polygon is not safe for concurrent use. Compute, TestPoint and TestEdge
// do not modify it.
type Polygon struct {
	e *Ellipsoid

	lat, lon   float64 // current point
	lat0, lon0 float64 // first point
	perimeter  Accumulator
	area       Accumulator
	num        int
	crossings  int
	polyline   bool
}

// PolygonInit initializes a polygon.
// Param polyline for polyline instead of a polygon.
//
// If polyline is not set, then the sequence of vertices and edges added by
// Polygon.AddPoint() and Polygon.AddEdge() define a polygon and
// the perimeter and area are returned by Polygon.Compute().
// If polyline is set, then the vertices and edges define a polyline and
// only the perimeter is returned by Polygon.Compute().
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons.  At any point you can ask for the perimeter and area so far.
func (e *Ellipsoid) PolygonInit(polyline bool) Polygon {
	var p Polygon
	p.e = e
	p.polyline = polyline
	p.Clear()
	return p
}

// transit returns 1 or -1 if crossing the prime meridian in the east or
// west direction, otherwise 0. lon12 is computed the same way as in
// GenInverse.
func transit(lon1, lon2 float64) int {
	lon12, _ := AngDiff(lon1, lon2)
	lon1 = AngNormalize(lon1)
	lon2 = AngNormalize(lon2)
	switch {
	case lon12 > 0 && ((lon1 < 0 && lon2 >= 0) || (lon1 > 0 && lon2 == 0)):
		return 1
	case lon12 < 0 && lon1 >= 0 && lon2 < 0:
		return -1
	}
	return 0
}

// transitDirect returns the parity of floor(lon2/360) - floor(lon1/360) for
// unrolled longitudes, as +1, -1 or 0.
func transitDirect(lon1, lon2 float64) int {
	lon1 = math.Remainder(lon1, 2*td)
	lon2 = math.Remainder(lon2, 2*td)
	var a, b int
	if !(lon2 >= 0 && lon2 < td) {
		a = 1
	}
	if !(lon1 >= 0 && lon1 < td) {
		b = 1
	}
	return a - b
}

// areaReduceA reduces the accumulated area, in the clockwise sense, to the
// requested convention. area is modified.
func areaReduceA(area *Accumulator, area0 float64, crossings int, reverse, sign bool) float64 {
	area.Remainder(area0)
	if crossings&1 != 0 {
		if area.Value() < 0 {
			area.Add(area0 / 2)
		} else {
			area.Add(-area0 / 2)
		}
	}
	// area is with the clockwise sense. If !reverse convert to
	// counter-clockwise convention.
	if !reverse {
		area.Negate()
	}
	// If sign put area in (-area0/2, area0/2], else put area in [0, area0)
	if sign {
		if area.Value() > area0/2 {
			area.Add(-area0)
		} else if area.Value() <= -area0/2 {
			area.Add(area0)
		}
	} else {
		if area.Value() >= area0 {
			area.Add(-area0)
		} else if area.Value() < 0 {
			area.Add(area0)
		}
	}
	return 0 + area.Value()
}

// areaReduceB is areaReduceA on a plain float64.
func areaReduceB(area, area0 float64, crossings int, reverse, sign bool) float64 {
	area = math.Remainder(area, area0)
	if crossings&1 != 0 {
		if area < 0 {
			area += area0 / 2
		} else {
			area -= area0 / 2
		}
	}
	if !reverse {
		area *= -1
	}
	if sign {
		if area > area0/2 {
			area -= area0
		} else if area <= -area0/2 {
			area += area0
		}
	} else {
		if area >= area0 {
			area -= area0
		} else if area < 0 {
			area += area0
		}
	}
	return 0 + area
}

func (p *Polygon) edgeMask() Mask {
	if p.polyline {
		return Distance
	}
	return Distance | Area
}

// AddPoint adds a point to the polygon or polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polygon) AddPoint(lat, lon float64) {
	if p.num == 0 {
		p.lat0, p.lat = lat, lat
		p.lon0, p.lon = lon, lon
	} else {
		r := p.e.GenInverse(p.lat, p.lon, lat, lon, p.edgeMask())
		p.perimeter.Add(r.Distance)
		if !p.polyline {
			p.area.Add(r.Area)
			p.crossings += transit(p.lon, lon)
		}
		p.lat, p.lon = lat, lon
	}
	p.num++
}

// AddEdge adds an edge to the polygon or polyline.
// This does nothing if no points have been added yet.
//
// Param azi is the azimuth at current point (degrees).
// Param s is the distance from current point to next point (meters).
func (p *Polygon) AddEdge(azi, s float64) {
	if p.num == 0 {
		return
	}
	r := p.e.GenDirect(p.lat, p.lon, azi, false, s,
		Latitude|Longitude|LongUnroll|p.edgeMask())
	p.perimeter.Add(s)
	if !p.polyline {
		p.area.Add(r.Area)
		p.crossings += transitDirect(p.lon, r.Lon2)
	}
	p.lat, p.lon = r.Lat2, r.Lon2
	p.num++
}

// Compute the results for a polygon
//
// Param reverse, if set then clockwise (instead of
//   counter-clockwise) traversal counts as a positive area.
// Param sign, if set then return a signed result for the area if
//   the polygon is traversed in the "wrong" direction instead of returning
//   the area for the rest of the earth.
// Out param area is a pointer to the area of the polygon (meters-squared);
// Out param perimeter is a pointer to the perimeter of the polygon or length
//   of the polyline (meters).
// Returns the number of points.
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons.  Arbitrarily complex polygons are allowed.  In the case of
// self-intersecting polygons the area is accumulated "algebraically", e.g.,
// the areas of the 2 loops in a figure-8 polygon will partially cancel.
// There's no need to "close" the polygon by repeating the first vertex.  Set
// area or perimeter to nil, if you do not want the corresponding quantity
// returned. The area is not set for a polyline.
//
// More points can be added to the polygon after this call.
func (p *Polygon) Compute(reverse, sign bool, area, perimeter *float64) int {
	if p.num < 2 {
		if perimeter != nil {
			*perimeter = 0
		}
		if !p.polyline && area != nil {
			*area = 0
		}
		return p.num
	}
	if p.polyline {
		if perimeter != nil {
			*perimeter = p.perimeter.Value()
		}
		return p.num
	}
	r := p.e.GenInverse(p.lat, p.lon, p.lat0, p.lon0, Distance|Area)
	if perimeter != nil {
		*perimeter = p.perimeter.Sum(r.Distance)
	}
	if area != nil {
		t := p.area
		t.Add(r.Area)
		*area = areaReduceA(&t, p.e.EllipsoidArea(),
			p.crossings+transit(p.lon, p.lon0), reverse, sign)
	}
	return p.num
}

// TestPoint returns the results for the polygon with the point lat, lon
// added, without adding it. The arguments and return value are as for
// Compute.
//
// lat should be in the range [-90,+90].
func (p *Polygon) TestPoint(lat, lon float64, reverse, sign bool, area, perimeter *float64) int {
	num := p.num + 1
	if num == 1 {
		if perimeter != nil {
			*perimeter = 0
		}
		if !p.polyline && area != nil {
			*area = 0
		}
		return num
	}
	per := p.perimeter.Value()
	var tempsum float64
	if !p.polyline {
		tempsum = p.area.Value()
	}
	crossings := p.crossings
	// current point to lat, lon and, for a polygon, back to the first point
	legs := [2][4]float64{
		{p.lat, p.lon, lat, lon},
		{lat, lon, p.lat0, p.lon0},
	}
	n := 2
	if p.polyline {
		n = 1
	}
	for _, leg := range legs[:n] {
		r := p.e.GenInverse(leg[0], leg[1], leg[2], leg[3], p.edgeMask())
		per += r.Distance
		if !p.polyline {
			tempsum += r.Area
			crossings += transit(leg[1], leg[3])
		}
	}
	if perimeter != nil {
		*perimeter = per
	}
	if p.polyline {
		return num
	}
	if area != nil {
		*area = areaReduceB(tempsum, p.e.EllipsoidArea(), crossings, reverse, sign)
	}
	return num
}

// TestEdge returns the results for the polygon with an edge of azimuth azi
// and length s added, without adding it. The arguments and return value are
// as for Compute. Without a current point there is no edge to test: 0 is
// returned and the area and perimeter are NaN.
func (p *Polygon) TestEdge(azi, s float64, reverse, sign bool, area, perimeter *float64) int {
	num := p.num + 1
	if num == 1 {
		// we don't have a starting point!
		if perimeter != nil {
			*perimeter = math.NaN()
		}
		if !p.polyline && area != nil {
			*area = math.NaN()
		}
		return 0
	}
	per := p.perimeter.Value() + s
	if p.polyline {
		if perimeter != nil {
			*perimeter = per
		}
		return num
	}
	tempsum := p.area.Value()
	crossings := p.crossings
	d := p.e.GenDirect(p.lat, p.lon, azi, false, s,
		Latitude|Longitude|LongUnroll|Area)
	tempsum += d.Area
	crossings += transitDirect(p.lon, d.Lon2)
	r := p.e.GenInverse(d.Lat2, d.Lon2, p.lat0, p.lon0, Distance|Area)
	per += r.Distance
	tempsum += r.Area
	crossings += transit(d.Lon2, p.lon0)
	if perimeter != nil {
		*perimeter = per
	}
	if area != nil {
		*area = areaReduceB(tempsum, p.e.EllipsoidArea(), crossings, reverse, sign)
	}
	return num
}

// Clear the polygon, allowing a new polygon to be started.
func (p *Polygon) Clear() {
	nan := math.NaN()
	p.lat0, p.lon0, p.lat, p.lon = nan, nan, nan, nan
	p.perimeter.Reset()
	p.area.Reset()
	p.num = 0
	p.crossings = 0
}

// Num returns the number of points added so far.
func (p *Polygon) Num() int { return p.num }

// Polyline reports whether p accumulates a polyline rather than a polygon.
func (p *Polygon) Polyline() bool { return p.polyline }

// CurrentPoint returns the most recently added vertex. Both values are NaN
// if no point has been added.
func (p *Polygon) CurrentPoint() (lat, lon float64) {
	return p.lat, p.lon
}
