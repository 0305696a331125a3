package geodesic

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eqish(x, y float64, prec int) bool {
	return math.Abs(x-y) < float64(1.0)/math.Pow10(prec)
}

type inverseCase struct {
	lat1, lon1, lat2, lon2 float64
	azi1, azi2, s12        float64
}

// Reference values from the GeographicLib test suite.
var wgs84Inverse = []inverseCase{
	{40.6, -73.8, 49.01666667, 2.55, 53.47022, 111.59367, 5853226},
	{0, 0, 0, 179, 90, 90, 19926189},
	{0, 0, 0, 180, 0, 180, 20003931},
	{0, 0, 1, 180, 0, 180, 19893357},
}

func TestInverseSouthToNorth(t *testing.T) {
	var s12 float64
	WGS84.Inverse(-30, -69, 29, -63, &s12, nil, nil)
	assert.InDelta(t, 6560410.70, s12, 0.01)
}

func TestInverseReference(t *testing.T) {
	for _, c := range wgs84Inverse {
		var s12, azi1, azi2 float64
		WGS84.Inverse(c.lat1, c.lon1, c.lat2, c.lon2, &s12, &azi1, &azi2)
		assert.InDelta(t, c.azi1, azi1, 0.5e-5, "azi1 %v", c)
		assert.InDelta(t, c.azi2, azi2, 0.5e-5, "azi2 %v", c)
		assert.InDelta(t, c.s12, s12, 0.5, "s12 %v", c)
	}
}

func TestInverseNearlyAntipodal(t *testing.T) {
	cases := []struct {
		lat, lon2, s12 float64
	}{
		{88.202499451857, 179.981022032992859592, 20003898.214},
		{89.262080389218, 179.992207982775375662, 20003925.854},
		{89.333123580033, 179.99295812360148422, 20003926.881},
		{56.320923501171, 179.664747671772880215, 19993558.287},
		{52.784459512564, 179.634407464943777557, 19991596.095},
		{48.522876735459, 179.599720456223079643, 19989144.774},
	}
	for _, c := range cases {
		var s12 float64
		WGS84.Inverse(c.lat, 0, -c.lat, c.lon2, &s12, nil, nil)
		assert.InDelta(t, c.s12, s12, 0.5e-3, "lat %v", c.lat)
	}
}

func TestInverseFull(t *testing.T) {
	r := WGS84.GenInverse(54.1589, 15.3872, 54.1591, 15.3877, All)
	assert.InDelta(t, 55.723110355, r.Azi1, 5e-8)
	assert.InDelta(t, 55.723515675, r.Azi2, 5e-8)
	assert.InDelta(t, 39.527686385, r.Distance, 5e-8)
	assert.InDelta(t, 0.000355495, r.Arc, 5e-9)
	assert.InDelta(t, 39.527686385, r.ReducedLength, 5e-8)
	assert.InDelta(t, 0.999999995, r.M12, 5e-9)
	assert.InDelta(t, 0.999999995, r.M21, 5e-9)
	assert.InDelta(t, 286698586.30197, r.Area, 5e-3)

	r = WGS84.GenInverse(-(41 + 19/60.), 174+49/60., 40+58/60., -(5 + 30/60.),
		Azimuth|Distance)
	assert.InDelta(t, 160.39137649664, r.Azi1, 1e-9)
	assert.InDelta(t, 19.50042925176, r.Azi2, 1e-9)
	assert.InDelta(t, 19960543.857179, r.Distance, 1e-5)

	r = WGS84.GenInverse(27.2, 0, -27.1, 179.5, Azimuth|Distance)
	assert.InDelta(t, 45.82468716758, r.Azi1, 1e-9)
	assert.InDelta(t, 134.22776532670, r.Azi2, 1e-9)
	assert.InDelta(t, 19974354.765767, r.Distance, 1e-5)
}

func TestInverseOtherEllipsoids(t *testing.T) {
	e150 := MustEllipsoid(6.4e6, -1.0/150)
	r := e150.GenInverse(0.07476, 0, -0.07476, 180, Standard)
	assert.InDelta(t, 90.00078, r.Azi1, 0.5e-5)
	assert.InDelta(t, 90.00078, r.Azi2, 0.5e-5)
	assert.InDelta(t, 20106193, r.Distance, 0.5)
	r = e150.GenInverse(0.1, 0, -0.1, 180, Standard)
	assert.InDelta(t, 90.00105, r.Azi1, 0.5e-5)
	assert.InDelta(t, 90.00105, r.Azi2, 0.5e-5)
	assert.InDelta(t, 20106193, r.Distance, 0.5)

	sphere := MustEllipsoid(6.4e6, 0)
	for _, c := range []inverseCase{
		{0, 0, 0, 179, 90, 90, 19994492},
		{0, 0, 0, 180, 0, 180, 20106193},
		{0, 0, 1, 180, 0, 180, 19994492},
	} {
		r := sphere.GenInverse(c.lat1, c.lon1, c.lat2, c.lon2, Standard)
		assert.InDelta(t, c.azi1, r.Azi1, 0.5e-5, "%v", c)
		assert.InDelta(t, c.azi2, r.Azi2, 0.5e-5, "%v", c)
		assert.InDelta(t, c.s12, r.Distance, 0.5, "%v", c)
	}

	prolate := MustEllipsoid(6.4e6, -1.0/300)
	for _, c := range []inverseCase{
		{0, 0, 0, 179, 90, 90, 19994492},
		{0, 0, 0, 180, 90, 90, 20106193},
		{0, 0, 0.5, 180, 33.02493, 146.97364, 20082617},
		{0, 0, 1, 180, 0, 180, 20027270},
	} {
		r := prolate.GenInverse(c.lat1, c.lon1, c.lat2, c.lon2, Standard)
		assert.InDelta(t, c.azi1, r.Azi1, 0.5e-5, "%v", c)
		assert.InDelta(t, c.azi2, r.Azi2, 0.5e-5, "%v", c)
		assert.InDelta(t, c.s12, r.Distance, 0.5, "%v", c)
	}
}

func TestInverseHighlyProlate(t *testing.T) {
	// b/a = 2.83, far outside the range the series are accurate for
	e := MustEllipsoid(89.8, -1.83)
	r := e.GenInverse(0, 0, -10, 160, Standard)
	assert.InDelta(t, 120.27, r.Azi1, 1e-2)
	assert.InDelta(t, 105.15, r.Azi2, 1e-2)
	assert.InDelta(t, 266.7, r.Distance, 1e-1)
}

func TestInverseArea(t *testing.T) {
	e := MustEllipsoid(6.4e6, 0)
	r := e.GenInverse(1, 2, 3, 4, Area)
	assert.InDelta(t, 49911046115.0, r.Area, 0.5)
	assert.True(t, math.IsNaN(r.Distance))
	assert.True(t, math.IsNaN(r.Azi1))
}

func TestInverseCoincident(t *testing.T) {
	r := WGS84.GenInverse(20.001, 0, 20.001, 0, All)
	assert.Equal(t, 0.0, r.Distance)
	assert.Equal(t, 0.0, r.Arc)
	assert.Equal(t, 0.0, r.ReducedLength)
	assert.InDelta(t, 1, r.M12, 1e-15)
	assert.False(t, math.Signbit(r.Distance))

	var s12 float64
	WGS84.Inverse(36.493349428792, 0, 36.49334942879201, .0000008, &s12, nil, nil)
	assert.InDelta(t, 0.072, s12, 0.5e-3)
}

func TestInverseNaN(t *testing.T) {
	var s12, azi1, azi2 float64
	WGS84.Inverse(0, 0, 1, math.NaN(), &s12, &azi1, &azi2)
	assert.True(t, math.IsNaN(s12))
	assert.True(t, math.IsNaN(azi1))
	assert.True(t, math.IsNaN(azi2))

	// latitude out of range
	WGS84.Inverse(91, 0, 0, 90, &s12, &azi1, &azi2)
	assert.True(t, math.IsNaN(s12))
}

func TestInverseMeridian(t *testing.T) {
	r := WGS84.GenInverse(-30, 10, 40, 10, Standard)
	assert.Equal(t, 0.0, r.Azi1)
	assert.Equal(t, 0.0, r.Azi2)
	r2 := WGS84.GenInverse(40, 10, -30, 10, Standard)
	assert.Equal(t, 180.0, r2.Azi1)
	assert.InDelta(t, r.Distance, r2.Distance, 1e-8)
	// pole to pole
	r = WGS84.GenInverse(90, 0, -90, 0, Standard)
	assert.InDelta(t, 20003931.4586, r.Distance, 1e-3)
}

func TestInverseEquatorial(t *testing.T) {
	r := WGS84.GenInverse(0, 0, 0, 10, Standard)
	assert.Equal(t, 90.0, r.Azi1)
	assert.Equal(t, 90.0, r.Azi2)
	assert.InDelta(t, WGS84.Radius()*10*math.Pi/180, r.Distance, 1e-6)
}

func TestInverseSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180
		a := WGS84.GenInverse(lat1, lon1, lat2, lon2, Distance)
		b := WGS84.GenInverse(lat2, lon2, lat1, lon1, Distance)
		require.InDelta(t, a.Distance, b.Distance, 1e-6,
			"%v %v %v %v", lat1, lon1, lat2, lon2)
		// antimeridian shift
		c := WGS84.GenInverse(lat1, lon1+360, lat2, lon2-720, Distance)
		require.InDelta(t, a.Distance, c.Distance, 1e-6)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		lat1 := rng.Float64()*160 - 80
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*160 - 80
		lon2 := rng.Float64()*360 - 180
		inv := WGS84.GenInverse(lat1, lon1, lat2, lon2, Standard)
		dir := WGS84.GenDirect(lat1, lon1, inv.Azi1, false, inv.Distance, Standard)
		require.InDelta(t, lat2, dir.Lat2, 1e-9, "lat %v %v %v %v", lat1, lon1, lat2, lon2)
		d, _ := AngDiff(lon2, dir.Lon2)
		require.InDelta(t, 0, d, 1e-9, "lon %v %v %v %v", lat1, lon1, lat2, lon2)
		da, _ := AngDiff(inv.Azi2, dir.Azi2)
		require.InDelta(t, 0, da, 1e-7)
		require.InDelta(t, inv.Arc, dir.Arc, 1e-9)
	}
}

func TestRoundTripDirectFirst(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		lat1 := rng.Float64()*160 - 80
		lon1 := rng.Float64()*360 - 180
		azi1 := rng.Float64()*360 - 180
		s12 := rng.Float64() * 1.5e7
		dir := WGS84.GenDirect(lat1, lon1, azi1, false, s12, Standard)
		inv := WGS84.GenInverse(lat1, lon1, dir.Lat2, dir.Lon2, Standard)
		require.InDelta(t, s12, inv.Distance, 1e-6, "%v %v %v %v", lat1, lon1, azi1, s12)
		d, _ := AngDiff(azi1, inv.Azi1)
		require.InDelta(t, 0, d, 1e-8, "%v %v %v %v", lat1, lon1, azi1, s12)
		d, _ = AngDiff(dir.Azi2, inv.Azi2)
		require.InDelta(t, 0, d, 1e-8, "%v %v %v %v", lat1, lon1, azi1, s12)
	}
}

func TestDirectReference(t *testing.T) {
	var lat2, lon2, azi2 float64
	WGS84.Direct(40.63972222, -73.77888889, 53.5, 5850e3, &lat2, &lon2, &azi2)
	assert.InDelta(t, 49.01467, lat2, 0.5e-5)
	assert.InDelta(t, 2.56106, lon2, 0.5e-5)
	assert.InDelta(t, 111.62947, azi2, 0.5e-5)

	r := WGS84.GenDirect(0.01777745589997, 30, 0, false, 10e6, Standard)
	assert.InDelta(t, 90, r.Lat2, 0.5e-5)
	if r.Lon2 < 0 {
		assert.InDelta(t, -150, r.Lon2, 0.5e-5)
		assert.InDelta(t, 180, math.Abs(r.Azi2), 0.5e-5)
	} else {
		assert.InDelta(t, 30, r.Lon2, 0.5e-5)
		assert.InDelta(t, 0, r.Azi2, 0.5e-5)
	}
}

func TestDirectLongUnroll(t *testing.T) {
	r := WGS84.GenDirect(40, -75, -10, false, 2e7, Standard|LongUnroll)
	assert.InDelta(t, -39, r.Lat2, 1)
	assert.InDelta(t, -254, r.Lon2, 1)
	assert.InDelta(t, -170, r.Azi2, 1)
	assert.Equal(t, -75.0, r.Lon1)

	r = WGS84.GenDirect(40, -75, -10, false, 2e7, Standard)
	assert.InDelta(t, -39, r.Lat2, 1)
	assert.InDelta(t, 105, r.Lon2, 1)
	assert.InDelta(t, -170, r.Azi2, 1)
}

func TestDirectArea(t *testing.T) {
	e := MustEllipsoid(6.4e6, -1.0/150)
	r := e.GenDirect(1, 2, 3, false, 4, Area)
	assert.InDelta(t, 23700, r.Area, 0.5)
}

func TestArcDirect(t *testing.T) {
	e := MustEllipsoid(6.4e6, 0.1)
	r := e.GenDirect(1, 2, 10, false, 5e6, None)
	assert.InDelta(t, 48.55570690, r.Arc, 0.5e-8)

	// and back again by arc length
	b := e.ArcDirect(1, 2, 10, r.Arc, Distance)
	assert.InDelta(t, 5e6, b.Distance, 1e-2)
}

func TestDirectNegativeDistance(t *testing.T) {
	fwd := WGS84.GenDirect(10, 20, 30, false, -1e6, Standard)
	back := WGS84.GenDirect(10, 20, 210, false, 1e6, Standard)
	assert.InDelta(t, back.Lat2, fwd.Lat2, 1e-10)
	assert.InDelta(t, back.Lon2, fwd.Lon2, 1e-10)
	d, _ := AngDiff(back.Azi2+180, fwd.Azi2)
	assert.InDelta(t, 0, d, 1e-10)
}

func TestNewEllipsoid(t *testing.T) {
	for _, c := range []struct{ a, f float64 }{
		{0, 0},
		{-1, 0},
		{math.Inf(1), 0},
		{math.NaN(), 0},
		{6378137, 1},
		{6378137, 2},
		{6378137, math.Inf(-1)},
	} {
		e, err := NewEllipsoid(c.a, c.f)
		assert.Nil(t, e)
		assert.True(t, errors.Is(err, ErrInvalidParameter), "%v", c)
	}
	assert.Panics(t, func() { MustEllipsoid(-1, 0) })

	e, err := NewEllipsoid(6378137, 1/298.257223563)
	require.NoError(t, err)
	assert.Equal(t, 6378137.0, e.Radius())
	assert.InDelta(t, 6356752.314245, e.MinorRadius(), 1e-6)
	assert.False(t, e.Spherical())
	assert.InDelta(t, 510065621724088.5093, e.EllipsoidArea(), 1e3)
}

func TestSpherical(t *testing.T) {
	if !Globe.Spherical() {
		t.Fatal()
	}
	if Globe.Flattening() != 0 {
		t.Fatal()
	}

	rng := rand.New(rand.NewSource(3))

	e := MustEllipsoid(Globe.Radius(), 0)
	for i := 0; i < 100_000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		lat2 := rng.Float64()*180 - 90
		lon2 := rng.Float64()*360 - 180

		var s12, azi1, azi2 float64
		e.Inverse(lat1, lon1, lat2, lon2, &s12, &azi1, &azi2)

		var ret [3]float64
		Globe.Inverse(lat1, lon1, lat2, lon2, &ret[0], &ret[1], &ret[2])
		if !eqish(ret[0], s12, 4) ||
			!eqish(ret[1], azi1, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("inverse failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
		Globe.Direct(lat1, lon1, azi1, s12, &ret[0], &ret[1], &ret[2])
		if !eqish(ret[0], lat2, 4) ||
			!eqish(ret[1], lon2, 4) ||
			!eqish(ret[2], azi2, 4) {
			t.Fatalf("direct failure (%f %f %f %f %f %f %f)",
				lat1, lon1, lat2, lon2, s12, azi1, azi2)
		}
	}
}

func TestSphericalGenUsesSeries(t *testing.T) {
	// Gen* on a spherical ellipsoid go through the full solver
	r := Globe.GenInverse(0, 0, 0, 90, Standard|Area)
	assert.InDelta(t, Globe.Radius()*math.Pi/2, r.Distance, 1e-6)
	assert.InDelta(t, 0, r.Area, 1e-3)
}

func TestConcurrentUse(t *testing.T) {
	done := make(chan [2]float64)
	for i := 0; i < 8; i++ {
		go func() {
			var s12, azi1 float64
			WGS84.Inverse(40.6, -73.8, 49.01666667, 2.55, &s12, &azi1, nil)
			done <- [2]float64{s12, azi1}
		}()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-done)
	}
}
