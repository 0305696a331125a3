/*
geodsolve solves geodesic problems read from standard input, one per line.

	geodsolve [-i | -polygon | -polyline] [-a] [-u] [-f] [-e a f] [-p prec]

Direct problems (the default) read "lat1 lon1 azi1 s12" and print
"lat2 lon2 azi2". With -a the last field is the arc length a12 in degrees.

Inverse problems (-i) read "lat1 lon1 lat2 lon2" and print "azi1 azi2 s12".

With -f the full solution is printed:
"lat1 lon1 azi1 lat2 lon2 azi2 s12 a12 m12 M12 M21 S12".

With -polygon (or -polyline) each line is a vertex "lat lon". A blank line
or end of input closes the polygon and prints "num perimeter area".
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/geodlib/geodesic"
)

var (
	fInverse  = flag.Bool("i", false, "solve the inverse problem")
	fArc      = flag.Bool("a", false, "direct problem takes the arc length a12 instead of s12")
	fUnroll   = flag.Bool("u", false, "unroll longitudes instead of reducing them to [-180,180]")
	fFull     = flag.Bool("f", false, "print the full solution")
	fEll      = flag.String("e", "", `ellipsoid as "a f" (f may be a fraction such as 1/298.257223563); default WGS84`)
	fPrec     = flag.Int("p", 3, "precision: decimals for distances in meters; angles get p+5")
	fPolygon  = flag.Bool("polygon", false, "compute polygon area and perimeter")
	fPolyline = flag.Bool("polyline", false, "compute polyline length")
	fReverse  = flag.Bool("r", false, "polygon: clockwise traversal counts as positive area")
	fSigned   = flag.Bool("s", true, "polygon: report signed areas")
	fVerbose  = flag.Bool("v", false, "log diagnostics to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] < input\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *fVerbose {
		geodesic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	e := geodesic.WGS84
	if *fEll != "" {
		var err error
		e, err = parseEllipsoid(*fEll)
		if err != nil {
			fmt.Fprintf(os.Stderr, "geodsolve: %v\n", err)
			os.Exit(2)
		}
	}

	s := &solver{e: e, prec: *fPrec, arc: *fArc, unroll: *fUnroll, full: *fFull}
	var err error
	switch {
	case *fPolygon || *fPolyline:
		err = s.polygons(os.Stdin, os.Stdout, *fPolyline, *fReverse, *fSigned)
	case *fInverse:
		err = s.lines(os.Stdin, os.Stdout, s.inverse)
	default:
		err = s.lines(os.Stdin, os.Stdout, s.direct)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "geodsolve: %v\n", err)
		os.Exit(1)
	}
}

// parseEllipsoid reads "a f". f may be given as a fraction or, if larger
// than 1, as the inverse flattening.
func parseEllipsoid(s string) (*geodesic.Ellipsoid, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, fmt.Errorf("ellipsoid %q: want \"a f\"", s)
	}
	a, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("ellipsoid radius: %w", err)
	}
	f, err := parseFraction(fields[1])
	if err != nil {
		return nil, fmt.Errorf("ellipsoid flattening: %w", err)
	}
	if f > 1 {
		f = 1 / f
	}
	return geodesic.NewEllipsoid(a, f)
}

func parseFraction(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	x, err := strconv.ParseFloat(num, 64)
	if err != nil || !ok {
		return x, err
	}
	y, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, err
	}
	return x / y, nil
}

type solver struct {
	e      *geodesic.Ellipsoid
	prec   int
	arc    bool
	unroll bool
	full   bool
}

// lines applies fn to every non-empty input line. Bad lines are reported
// in the output stream as "ERROR: ..." and processing continues.
func (s *solver) lines(r io.Reader, w io.Writer, fn func([]float64) string) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		vals, err := parseFields(line, 4)
		if err != nil {
			fmt.Fprintln(bw, "ERROR: "+err.Error())
			continue
		}
		fmt.Fprintln(bw, fn(vals))
	}
	return sc.Err()
}

func parseFields(line string, n int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("want %d fields, got %d", n, len(fields))
	}
	vals := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func (s *solver) mask() geodesic.Mask {
	m := geodesic.Standard
	if s.full {
		m = geodesic.All
	}
	if s.unroll {
		m |= geodesic.LongUnroll
	}
	return m
}

func (s *solver) inverse(v []float64) string {
	r := s.e.GenInverse(v[0], v[1], v[2], v[3], s.mask())
	if s.full {
		return s.fullLine(r)
	}
	return s.join(s.ang(r.Azi1), s.ang(r.Azi2), s.dist(r.Distance))
}

func (s *solver) direct(v []float64) string {
	r := s.e.GenDirect(v[0], v[1], v[2], s.arc, v[3], s.mask())
	if s.full {
		return s.fullLine(r)
	}
	return s.join(s.ang(r.Lat2), s.ang(r.Lon2), s.ang(r.Azi2))
}

func (s *solver) fullLine(r geodesic.Result) string {
	return s.join(
		s.ang(r.Lat1), s.ang(r.Lon1), s.ang(r.Azi1),
		s.ang(r.Lat2), s.ang(r.Lon2), s.ang(r.Azi2),
		s.dist(r.Distance), s.ang(r.Arc), s.dist(r.ReducedLength),
		strconv.FormatFloat(r.M12, 'f', s.prec+7, 64),
		strconv.FormatFloat(r.M21, 'f', s.prec+7, 64),
		strconv.FormatFloat(r.Area, 'f', max(s.prec-1, 0), 64),
	)
}

func (s *solver) ang(x float64) string {
	return strconv.FormatFloat(x, 'f', s.prec+5, 64)
}

func (s *solver) dist(x float64) string {
	return strconv.FormatFloat(x, 'f', s.prec, 64)
}

func (s *solver) join(fields ...string) string {
	return strings.Join(fields, " ")
}

// polygons reads vertices until a blank line or end of input and prints
// the number of points, perimeter and area of each polygon.
func (s *solver) polygons(r io.Reader, w io.Writer, polyline, reverse, signed bool) error {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	p := s.e.PolygonInit(polyline)
	flush := func() {
		if p.Num() == 0 {
			return
		}
		var area, perimeter float64
		n := p.Compute(reverse, signed, &area, &perimeter)
		if polyline {
			fmt.Fprintln(bw, n, s.dist(perimeter))
		} else {
			fmt.Fprintln(bw, n, s.dist(perimeter),
				strconv.FormatFloat(area, 'f', max(s.prec-1, 0), 64))
		}
		p.Clear()
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			flush()
			continue
		}
		v, err := parseFields(line, 2)
		if err != nil {
			fmt.Fprintln(bw, "ERROR: "+err.Error())
			continue
		}
		p.AddPoint(v[0], v[1])
	}
	flush()
	return sc.Err()
}
