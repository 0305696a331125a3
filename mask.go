package geodesic

import "strings"

// Mask selects the quantities computed by GenInverse, GenDirect and the
// Line methods, and the capabilities a Line is built with. The numeric
// values are stable and may be persisted.
//
// Each output bit is combined with the series it needs (the low cap bits),
// so that asking for a quantity automatically prepares its coefficients.
type Mask uint32

// series capabilities
const (
	capNone Mask = 0
	capC1   Mask = 1 << 0
	capC1p  Mask = 1 << 1
	capC2   Mask = 1 << 2
	capC3   Mask = 1 << 3
	capC4   Mask = 1 << 4
	capAll  Mask = 0x1f
	outAll  Mask = 0x7f80
	// includes LongUnroll
	outMask Mask = 0xff80
)

const (
	// None requests nothing.
	None Mask = 0
	// Arc marks the s12a12 argument of GenDirect and Line.GenPosition as an
	// arc length in degrees rather than a distance.
	Arc Mask = 1 << 6
	// Latitude requests lat2.
	Latitude Mask = 1<<7 | capNone
	// Longitude requests lon2.
	Longitude Mask = 1<<8 | capC3
	// Azimuth requests azi1 and azi2.
	Azimuth Mask = 1<<9 | capNone
	// Distance requests s12.
	Distance Mask = 1<<10 | capC1
	// DistanceIn allows s12 to be used as an input to a Line.
	DistanceIn Mask = 1<<11 | capC1 | capC1p
	// ReducedLength requests the reduced length m12.
	ReducedLength Mask = 1<<12 | capC1 | capC2
	// GeodesicScale requests the geodesic scales M12 and M21.
	GeodesicScale Mask = 1<<13 | capC1 | capC2
	// Area requests the area S12 between the geodesic and the equator.
	Area Mask = 1<<14 | capC4
	// LongUnroll reports longitudes without reducing them to (-180, 180].
	LongUnroll Mask = 1 << 15
	// Standard is Latitude | Longitude | Azimuth | Distance.
	Standard = Latitude | Longitude | Azimuth | Distance
	// All requests every output. It does not include LongUnroll.
	All = outAll | capAll
)

// capRequirements lists, for each output bit, the series it needs.
var capRequirements = [...]struct {
	out  Mask
	caps Mask
	name string
}{
	{1 << 7, capNone, "Latitude"},
	{1 << 8, capC3, "Longitude"},
	{1 << 9, capNone, "Azimuth"},
	{1 << 10, capC1, "Distance"},
	{1 << 11, capC1 | capC1p, "DistanceIn"},
	{1 << 12, capC1 | capC2, "ReducedLength"},
	{1 << 13, capC1 | capC2, "GeodesicScale"},
	{1 << 14, capC4, "Area"},
}

// requiredCaps returns m with the series capabilities implied by its output
// bits added.
func requiredCaps(m Mask) Mask {
	for _, r := range capRequirements {
		if m&r.out != 0 {
			m |= r.caps
		}
	}
	return m
}

// Has reports whether all the output bits of o are set in m.
func (m Mask) Has(o Mask) bool {
	o &= outMask
	return o != 0 && m&o == o
}

func (m Mask) String() string {
	if m == None {
		return "None"
	}
	var parts []string
	if m&Arc != 0 {
		parts = append(parts, "Arc")
	}
	for _, r := range capRequirements {
		if m&r.out != 0 {
			parts = append(parts, r.name)
		}
	}
	if m&LongUnroll != 0 {
		parts = append(parts, "LongUnroll")
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}
