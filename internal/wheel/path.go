package wheel

import (
	"math"
	"strconv"
	"strings"
)

const pathEpsilon = 1e-6

type Point struct {
	X float64
	Y float64
}

type SegmentKind uint8

const (
	SegmentMove SegmentKind = iota
	SegmentLine
	SegmentArc
	SegmentClose
)

// Segment is one recorded path command. X/Y is always the point the pen ends
// on. Arc segments also keep their circle so they can be flattened exactly;
// Start is the angle of the first point and Sweep is signed (positive turns
// clockwise on a y-down surface).
type Segment struct {
	Kind   SegmentKind
	X, Y   float64
	CX, CY float64
	R      float64
	Start  float64
	Sweep  float64
}

// Path records drawing commands with canvas-style arc semantics: Arc implies
// a move or line to its first point.
type Path struct {
	segs    []Segment
	started bool
	sx, sy  float64
	x, y    float64
}

func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, Segment{Kind: SegmentMove, X: x, Y: y})
	p.started = true
	p.sx, p.sy = x, y
	p.x, p.y = x, y
}

func (p *Path) LineTo(x, y float64) {
	if !p.started {
		p.MoveTo(x, y)
		return
	}
	p.segs = append(p.segs, Segment{Kind: SegmentLine, X: x, Y: y})
	p.x, p.y = x, y
}

// Arc traces a circle of radius r around (cx, cy) from angle a0 to a1.
// Angles are in radians from the positive x axis; ccw reverses direction.
func (p *Path) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	if r < 0 {
		r = -r
	}
	x0 := cx + r*math.Cos(a0)
	y0 := cy + r*math.Sin(a0)
	if !p.started {
		p.MoveTo(x0, y0)
	} else if math.Abs(p.x-x0) > pathEpsilon || math.Abs(p.y-y0) > pathEpsilon {
		p.LineTo(x0, y0)
	}
	if r == 0 {
		return
	}

	da := a1 - a0
	if ccw {
		da = a0 - a1
	}
	if da < 0 {
		da = math.Mod(da, tau) + tau
	}
	sign := 1.0
	if ccw {
		sign = -1
	}

	switch {
	case da > tau-pathEpsilon:
		p.segs = append(p.segs, Segment{Kind: SegmentArc, X: x0, Y: y0, CX: cx, CY: cy, R: r, Start: a0, Sweep: sign * tau})
		p.x, p.y = x0, y0
	case da > pathEpsilon:
		end := a0 + sign*da
		x1 := cx + r*math.Cos(end)
		y1 := cy + r*math.Sin(end)
		p.segs = append(p.segs, Segment{Kind: SegmentArc, X: x1, Y: y1, CX: cx, CY: cy, R: r, Start: a0, Sweep: sign * da})
		p.x, p.y = x1, y1
	}
}

func (p *Path) ClosePath() {
	if !p.started {
		return
	}
	p.segs = append(p.segs, Segment{Kind: SegmentClose, X: p.sx, Y: p.sy})
	p.x, p.y = p.sx, p.sy
}

func (p Path) Segments() []Segment { return p.segs }

func (p Path) Empty() bool { return len(p.segs) == 0 }

// SVG returns the path as an SVG "d" attribute.
func (p Path) SVG() string {
	var b strings.Builder
	for _, s := range p.segs {
		switch s.Kind {
		case SegmentMove:
			b.WriteString("M")
			writePoint(&b, s.X, s.Y)
		case SegmentLine:
			b.WriteString("L")
			writePoint(&b, s.X, s.Y)
		case SegmentArc:
			sweep := "1"
			if s.Sweep < 0 {
				sweep = "0"
			}
			if math.Abs(s.Sweep) > tau-pathEpsilon {
				// A single SVG arc cannot describe a full circle.
				mx := s.CX - (s.X - s.CX)
				my := s.CY - (s.Y - s.CY)
				writeArc(&b, s.R, "1", sweep, mx, my)
				writeArc(&b, s.R, "1", sweep, s.X, s.Y)
				continue
			}
			large := "0"
			if math.Abs(s.Sweep) >= math.Pi {
				large = "1"
			}
			writeArc(&b, s.R, large, sweep, s.X, s.Y)
		case SegmentClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writeArc(b *strings.Builder, r float64, large, sweep string, x, y float64) {
	b.WriteString("A")
	b.WriteString(formatNumber(r))
	b.WriteString(",")
	b.WriteString(formatNumber(r))
	b.WriteString(",0,")
	b.WriteString(large)
	b.WriteString(",")
	b.WriteString(sweep)
	b.WriteString(",")
	writePoint(b, x, y)
}

func writePoint(b *strings.Builder, x, y float64) {
	b.WriteString(formatNumber(x))
	b.WriteString(",")
	b.WriteString(formatNumber(y))
}

func formatNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Flatten approximates the path with closed polygons whose vertices stay
// within tolerance of the true outline. Each move starts a new polygon.
func (p Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var polys [][]Point
	var cur []Point
	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	for _, s := range p.segs {
		switch s.Kind {
		case SegmentMove:
			flush()
			cur = append(cur, Point{s.X, s.Y})
		case SegmentLine:
			cur = append(cur, Point{s.X, s.Y})
		case SegmentArc:
			n := arcSteps(s.R, math.Abs(s.Sweep), tolerance)
			for i := 1; i <= n; i++ {
				a := s.Start + s.Sweep*float64(i)/float64(n)
				cur = append(cur, Point{s.CX + s.R*math.Cos(a), s.CY + s.R*math.Sin(a)})
			}
		case SegmentClose:
			flush()
		}
	}
	flush()
	return polys
}

func arcSteps(r, sweep, tolerance float64) int {
	step := math.Pi / 4
	if tolerance < r {
		step = math.Min(step, 2*math.Acos(1-tolerance/r))
	}
	n := int(math.Ceil(sweep / step))
	if n < 1 {
		n = 1
	}
	return n
}

// RoundedRect returns a w×h rectangle anchored at the origin with corners
// rounded by r (clamped to half the shorter side).
func RoundedRect(w, h, r float64) Path {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	var p Path
	p.MoveTo(r, 0)
	p.LineTo(w-r, 0)
	p.Arc(w-r, r, r, -math.Pi/2, 0, false)
	p.LineTo(w, h-r)
	p.Arc(w-r, h-r, r, 0, math.Pi/2, false)
	p.LineTo(r, h)
	p.Arc(r, h-r, r, math.Pi/2, math.Pi, false)
	p.LineTo(0, r)
	p.Arc(r, r, r, math.Pi, 3*math.Pi/2, false)
	p.ClosePath()
	return p
}
