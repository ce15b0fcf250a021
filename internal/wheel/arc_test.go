package wheel

import (
	"math"
	"strings"
	"testing"
)

func TestCentroid(t *testing.T) {
	a := Arc{StartAngle: 0, EndAngle: math.Pi / 2, InnerRadius: 0, OuterRadius: 2}
	x, y := a.Centroid()
	want := math.Sqrt2 / 2
	if math.Abs(x-want) > tolerance || math.Abs(y+want) > tolerance {
		t.Fatalf("centroid = (%v, %v), want (%v, %v)", x, y, want, -want)
	}

	// Padding leaves the centroid alone.
	a.PadAngle = 0.2
	px, py := a.Centroid()
	if px != x || py != y {
		t.Fatalf("padding moved centroid to (%v, %v)", px, py)
	}
}

func TestArcPathShape(t *testing.T) {
	a := Arc{StartAngle: 0, EndAngle: math.Pi / 6, InnerRadius: 56, OuterRadius: 200, PadAngle: 0.01, CornerRadius: 5}
	d := a.Path().SVG()
	if !strings.HasPrefix(d, "M") || !strings.HasSuffix(d, "Z") {
		t.Fatalf("unexpected path %q", d)
	}
	if strings.Count(d, "M") != 1 {
		t.Fatalf("sector should be a single subpath: %q", d)
	}
	// Four rounded corners plus the two ring edges.
	if got := strings.Count(d, "A"); got != 6 {
		t.Fatalf("expected 6 arc commands, got %d in %q", got, d)
	}

	const want = "M1.038,-194.906A5,5,0,0,1,6.193,-199.904A200,200,0,0,1,94.588,-176.219" +
		"A5,5,0,0,1,96.554,-169.313L29.451,-53.087A5,5,0,0,1,23.062,-51.031" +
		"A56,56,0,0,0,5.544,-55.725A5,5,0,0,1,1.038,-60.7Z"
	if d != want {
		t.Fatalf("default arc 0 path drifted:\n got %s\nwant %s", d, want)
	}
}

func TestArcPathStaysInsideRing(t *testing.T) {
	a := Arc{StartAngle: 1, EndAngle: 2, InnerRadius: 40, OuterRadius: 100, PadAngle: 0.05, CornerRadius: 8}
	for _, poly := range a.Path().Flatten(0.05) {
		for _, p := range poly {
			r := math.Hypot(p.X, p.Y)
			if r < 40-1e-6 || r > 100+1e-6 {
				t.Fatalf("point (%v, %v) at radius %v escapes the ring", p.X, p.Y, r)
			}
		}
	}
}

func TestArcPaddingShiftsStart(t *testing.T) {
	a := Arc{StartAngle: 0, EndAngle: math.Pi / 2, InnerRadius: 50, OuterRadius: 100, PadAngle: 0.1}
	segs := a.Path().Segments()
	if len(segs) == 0 || segs[0].Kind != SegmentMove {
		t.Fatalf("path must start with a move")
	}
	// Angle from 12 o'clock of the first outer point.
	angle := math.Atan2(segs[0].Y, segs[0].X) + math.Pi/2
	if !(angle > 0) || angle > 0.1 {
		t.Fatalf("padded start angle %v not in (0, 0.1]", angle)
	}
}

func TestFullCircleIsAnnulus(t *testing.T) {
	a := Arc{StartAngle: 0, EndAngle: 2 * math.Pi, InnerRadius: 56, OuterRadius: 200, PadAngle: 0.01, CornerRadius: 5}
	d := a.Path().SVG()
	if strings.Count(d, "M") != 2 {
		t.Fatalf("annulus needs an outer and inner subpath: %q", d)
	}
	if strings.Count(d, "A") != 4 {
		t.Fatalf("each full circle is written as two arcs: %q", d)
	}
	polys := a.Path().Flatten(0.1)
	if len(polys) != 2 {
		t.Fatalf("expected 2 polygons, got %d", len(polys))
	}
}

func TestZeroRadiusArc(t *testing.T) {
	d := Arc{StartAngle: 0, EndAngle: 1}.Path().SVG()
	if d != "M0,0Z" {
		t.Fatalf("degenerate arc path = %q", d)
	}
}

func TestRoundedRectFlatten(t *testing.T) {
	polys := RoundedRect(100, 50, 0).Flatten(0.1)
	if len(polys) != 1 {
		t.Fatalf("expected one polygon, got %d", len(polys))
	}
	if len(polys[0]) != 5 {
		t.Fatalf("square-cornered rect should have 5 vertices, got %v", polys[0])
	}

	polys = RoundedRect(100, 50, 14).Flatten(0.1)
	for _, p := range polys[0] {
		if p.X < -1e-9 || p.X > 100+1e-9 || p.Y < -1e-9 || p.Y > 50+1e-9 {
			t.Fatalf("vertex (%v, %v) outside the rect", p.X, p.Y)
		}
	}
}

func TestPathFullCircleFlatten(t *testing.T) {
	var p Path
	p.Arc(10, 10, 5, 0, 2*math.Pi, false)
	p.ClosePath()
	polys := p.Flatten(0.01)
	if len(polys) != 1 || len(polys[0]) < 16 {
		t.Fatalf("unexpected flattening %v", polys)
	}
	for _, pt := range polys[0] {
		if r := math.Hypot(pt.X-10, pt.Y-10); math.Abs(r-5) > 1e-9 {
			t.Fatalf("vertex at radius %v", r)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:         "0",
		-0.0001:   "0",
		1.5:       "1.5",
		-12.34567: "-12.346",
		200:       "200",
	}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Fatalf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
