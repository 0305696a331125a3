package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planimeter(e *Ellipsoid, points [][2]float64) (perimeter, area float64) {
	p := e.PolygonInit(false)
	for _, pt := range points {
		p.AddPoint(pt[0], pt[1])
	}
	p.Compute(false, true, &area, &perimeter)
	return perimeter, area
}

func polylength(e *Ellipsoid, points [][2]float64) float64 {
	p := e.PolygonInit(true)
	for _, pt := range points {
		p.AddPoint(pt[0], pt[1])
	}
	var perimeter float64
	p.Compute(false, true, nil, &perimeter)
	return perimeter
}

func TestPlanimeterPole(t *testing.T) {
	perimeter, area := planimeter(WGS84, [][2]float64{
		{89, 0}, {89, 90}, {89, 180}, {89, 270},
	})
	assert.InDelta(t, 631819.8745, perimeter, 1e-4)
	assert.InDelta(t, 24952305678.0, area, 1)

	perimeter, area = planimeter(WGS84, [][2]float64{
		{-89, 0}, {-89, 90}, {-89, 180}, {-89, 270},
	})
	assert.InDelta(t, 631819.8745, perimeter, 1e-4)
	assert.InDelta(t, -24952305678.0, area, 1)
}

func TestPlanimeterEquator(t *testing.T) {
	perimeter, area := planimeter(WGS84, [][2]float64{
		{0, -1}, {-1, 0}, {0, 1}, {1, 0},
	})
	assert.InDelta(t, 627598.2731, perimeter, 1e-4)
	assert.InDelta(t, 24619419146.0, area, 1)

	// one eighth of the ellipsoid
	perimeter, area = planimeter(WGS84, [][2]float64{
		{90, 0}, {0, 0}, {0, 90},
	})
	assert.InDelta(t, 30022685, perimeter, 1)
	assert.InDelta(t, 63758202715511.0, area, 1)
	assert.InDelta(t, WGS84.EllipsoidArea()/8, area, 1)
}

func TestPlanimeterPoleEncircling(t *testing.T) {
	// the pole is inside, reached by odd numbers of meridian crossings
	perimeter, area := planimeter(WGS84, [][2]float64{
		{89, 0.1}, {89, 90.1}, {89, -179.9},
	})
	assert.InDelta(t, 539297, perimeter, 1)
	assert.InDelta(t, 12476152838.5, area, 1)

	perimeter, area = planimeter(WGS84, [][2]float64{
		{89, -360}, {89, -240}, {89, -120}, {89, 0}, {89, 120}, {89, 240},
	})
	assert.InDelta(t, 1160741, perimeter, 1)
	assert.InDelta(t, 32415230256.0, area, 1)
}

func TestPlanimeterDegenerate(t *testing.T) {
	// out and back along the same geodesic encloses nothing
	perimeter, area := planimeter(WGS84, [][2]float64{
		{9, -0.00000000000001}, {9, 180}, {9, 0},
	})
	assert.InDelta(t, 36026861, perimeter, 1)
	assert.InDelta(t, 0, area, 1)

	perimeter, area = planimeter(WGS84, [][2]float64{
		{66.562222222, 0}, {66.562222222, 180},
	})
	assert.InDelta(t, 10465729, perimeter, 1)
	assert.InDelta(t, 0, area, 1)
}

func TestPlanimeterOrientation(t *testing.T) {
	const (
		r  = 18454562325.45119
		a0 = 510065621724088.5093
	)
	var s12, azi1, azi2 float64
	WGS84.Inverse(1, 2, 3, 3, &s12, &azi1, &azi2)

	cases := []struct {
		reverse, sign bool
		want          float64
	}{
		{false, true, r},
		{false, false, r},
		{true, true, -r},
		{true, false, a0 - r},
	}

	p := WGS84.PolygonInit(false)
	p.AddPoint(2, 1)
	p.AddPoint(1, 2)
	for _, c := range cases {
		var area float64
		n := p.TestPoint(3, 3, c.reverse, c.sign, &area, nil)
		assert.Equal(t, 3, n)
		assert.InDelta(t, c.want, area, 0.5, "TestPoint reverse=%v sign=%v", c.reverse, c.sign)

		n = p.TestEdge(azi1, s12, c.reverse, c.sign, &area, nil)
		assert.Equal(t, 3, n)
		assert.InDelta(t, c.want, area, 0.5, "TestEdge reverse=%v sign=%v", c.reverse, c.sign)
	}
	assert.Equal(t, 2, p.Num())

	p.AddPoint(3, 3)
	for _, c := range cases {
		var area float64
		p.Compute(c.reverse, c.sign, &area, nil)
		assert.InDelta(t, c.want, area, 0.5, "Compute reverse=%v sign=%v", c.reverse, c.sign)
	}

	p.Clear()
	p.AddPoint(2, 1)
	p.AddEdge(azi1, 0)
	assert.Equal(t, 2, p.Num())
	lat, lon := p.CurrentPoint()
	assert.InDelta(t, 2, lat, 1e-12)
	assert.InDelta(t, 1, lon, 1e-12)
}

func TestPlanimeterEmpty(t *testing.T) {
	var area, perimeter float64

	p := WGS84.PolygonInit(false)
	assert.Equal(t, 0, p.Compute(false, true, &area, &perimeter))
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, perimeter)

	assert.Equal(t, 1, p.TestPoint(1, 1, false, true, &area, &perimeter))
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, perimeter)

	assert.Equal(t, 0, p.TestEdge(90, 1000, false, true, &area, &perimeter))
	assert.True(t, math.IsNaN(area))
	assert.True(t, math.IsNaN(perimeter))

	p.AddPoint(1, 1)
	assert.Equal(t, 1, p.Compute(false, true, &area, &perimeter))
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, perimeter)

	// there and back again
	assert.Equal(t, 2, p.TestEdge(90, 1000, false, true, &area, &perimeter))
	assert.InDelta(t, 2000, perimeter, 1e-6)
	assert.InDelta(t, 0, area, 1)

	l := WGS84.PolygonInit(true)
	perimeter = -1
	assert.Equal(t, 0, l.Compute(false, true, nil, &perimeter))
	assert.Equal(t, 0.0, perimeter)
	assert.Equal(t, 1, l.TestPoint(1, 1, false, true, nil, &perimeter))
	assert.Equal(t, 0.0, perimeter)
	assert.Equal(t, 0, l.TestEdge(90, 1000, false, true, nil, &perimeter))
	assert.True(t, math.IsNaN(perimeter))

	l.AddPoint(1, 1)
	assert.Equal(t, 2, l.TestEdge(90, 1000, false, true, nil, &perimeter))
	assert.Equal(t, 1000.0, perimeter)
	assert.Equal(t, 2, l.TestPoint(2, 2, false, true, nil, &perimeter))
	var s12 float64
	WGS84.Inverse(1, 1, 2, 2, &s12, nil, nil)
	assert.InDelta(t, s12, perimeter, 1e-8)
}

func TestPolylineArea(t *testing.T) {
	p := WGS84.PolygonInit(true)
	p.AddPoint(0, 0)
	p.AddPoint(0, 90)
	p.AddPoint(90, 0)
	area := 42.0
	var perimeter float64
	assert.Equal(t, 3, p.Compute(false, true, &area, &perimeter))
	// the area of a polyline is never written
	assert.Equal(t, 42.0, area)
	assert.True(t, p.Polyline())
	assert.InDelta(t, polylength(WGS84, [][2]float64{{0, 0}, {0, 90}, {90, 0}}), perimeter, 0)
}

func TestPolygonEdgesMatchPoints(t *testing.T) {
	points := [][2]float64{{10, 10}, {10, 12}, {13, 12}, {12, 10}}
	wantPerimeter, wantArea := planimeter(WGS84, points)

	p := WGS84.PolygonInit(false)
	p.AddEdge(0, 1000) // ignored without a starting point
	assert.Equal(t, 0, p.Num())
	p.AddPoint(points[0][0], points[0][1])
	for i := 1; i < len(points); i++ {
		var s12, azi1 float64
		WGS84.Inverse(points[i-1][0], points[i-1][1], points[i][0], points[i][1], &s12, &azi1, nil)
		p.AddEdge(azi1, s12)
	}
	lat, lon := p.CurrentPoint()
	assert.InDelta(t, 12, lat, 1e-9)
	assert.InDelta(t, 10, lon, 1e-9)

	var area, perimeter float64
	assert.Equal(t, len(points), p.Compute(false, true, &area, &perimeter))
	assert.InDelta(t, wantPerimeter, perimeter, 1e-6)
	assert.InDelta(t, wantArea, area, 1)
}

func TestPolygonComputeIsIdempotent(t *testing.T) {
	p := WGS84.PolygonInit(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 1)
	p.AddPoint(1, 1)
	var a1, p1, a2, p2 float64
	p.Compute(false, true, &a1, &p1)
	p.TestPoint(5, 5, false, true, nil, nil)
	p.TestEdge(45, 1e5, false, true, nil, nil)
	p.Compute(false, true, &a2, &p2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, 3, p.Num())

	// more points may follow a Compute
	p.AddPoint(1, 0)
	var a3 float64
	p.Compute(false, true, &a3, nil)
	assert.Greater(t, a3, a1)
}

func TestPolygonClear(t *testing.T) {
	p := WGS84.PolygonInit(false)
	p.AddPoint(10, 20)
	p.AddPoint(11, 21)
	p.Clear()
	assert.Equal(t, 0, p.Num())
	lat, lon := p.CurrentPoint()
	assert.True(t, math.IsNaN(lat))
	assert.True(t, math.IsNaN(lon))

	var area, perimeter float64
	p.AddPoint(0, -1)
	p.AddPoint(-1, 0)
	p.AddPoint(0, 1)
	p.AddPoint(1, 0)
	p.Compute(false, true, &area, &perimeter)
	assert.InDelta(t, 24619419146.0, area, 1)
}

func TestPolygonSphere(t *testing.T) {
	e, err := NewEllipsoid(6371e3, 0)
	require.NoError(t, err)
	// a quarter of the northern hemisphere
	_, area := planimeter(e, [][2]float64{{0, 0}, {0, 90}, {90, 0}})
	assert.InDelta(t, e.EllipsoidArea()/8, area, 2)
}

func TestTransit(t *testing.T) {
	assert.Equal(t, 1, transit(-1, 1))
	assert.Equal(t, -1, transit(1, -1))
	assert.Equal(t, 1, transit(-10, 0))
	assert.Equal(t, 0, transit(10, 0))
	assert.Equal(t, 0, transit(179, -179))
	assert.Equal(t, 0, transit(10, 20))

	assert.Equal(t, 0, transitDirect(1, 359))
	assert.NotEqual(t, 0, transitDirect(-1, 1))
	assert.NotEqual(t, 0, transitDirect(1, 361))
	assert.Equal(t, 0, transitDirect(-1, 361))
}

func TestAreaReduce(t *testing.T) {
	const a0 = 1000.0
	var acc Accumulator
	acc.Add(-100)
	assert.Equal(t, 100.0, areaReduceA(&acc, a0, 0, false, true))
	assert.Equal(t, 100.0, areaReduceB(-100, a0, 0, false, true))

	acc.Reset()
	acc.Add(100)
	assert.Equal(t, 900.0, areaReduceA(&acc, a0, 0, false, false))
	assert.Equal(t, 900.0, areaReduceB(100, a0, 0, false, false))
	assert.Equal(t, -100.0, areaReduceB(100, a0, 0, false, true))
	assert.Equal(t, 100.0, areaReduceB(100, a0, 0, true, true))

	// an odd number of crossings shifts by half the total
	assert.Equal(t, 400.0, areaReduceB(-100, a0, 1, true, true))
}

func TestPolygonReversedOrder(t *testing.T) {
	rings := [][][2]float64{
		{{0, -1}, {-1, 0}, {0, 1}, {1, 0}},
		{{89, 0}, {89, 90}, {89, 180}, {89, 270}},
		{{10, 10}, {10, 12}, {13, 12}, {12, 10}},
	}
	a0 := WGS84.EllipsoidArea()
	for _, ring := range rings {
		reversed := make([][2]float64, len(ring))
		for i, pt := range ring {
			reversed[len(ring)-1-i] = pt
		}
		fwd := WGS84.PolygonInit(false)
		rev := WGS84.PolygonInit(false)
		for i := range ring {
			fwd.AddPoint(ring[i][0], ring[i][1])
			rev.AddPoint(reversed[i][0], reversed[i][1])
		}

		// signed areas change sign
		var af, ar, pf, pr float64
		fwd.Compute(false, true, &af, &pf)
		rev.Compute(false, true, &ar, &pr)
		assert.Greater(t, af, 0.0, "%v", ring)
		assert.InDelta(t, -af, ar, 1, "%v", ring)
		assert.InDelta(t, pf, pr, 1e-6, "%v", ring)

		// unsigned areas are complements
		fwd.Compute(false, false, &af, nil)
		rev.Compute(false, false, &ar, nil)
		assert.InDelta(t, a0-af, ar, 1, "%v", ring)
	}
}
