package wheel

import "math"

const arcEpsilon = 1e-12

// Arc describes an annular sector. Angles are radians clockwise from
// 12 o'clock. PadAngle is the total angular gap shared with the neighbours.
type Arc struct {
	StartAngle   float64
	EndAngle     float64
	InnerRadius  float64
	OuterRadius  float64
	PadAngle     float64
	CornerRadius float64
}

// Centroid is the midpoint of the sector in the middle of both its radial and
// angular extent. Padding does not move it.
func (a Arc) Centroid() (x, y float64) {
	r := (a.InnerRadius + a.OuterRadius) / 2
	t := (a.StartAngle+a.EndAngle)/2 - math.Pi/2
	return math.Cos(t) * r, math.Sin(t) * r
}

// Path traces the outline of the sector around the origin: the outer edge
// clockwise, then the inner edge back, with padded ends and rounded corners.
// A sector spanning the whole circle is drawn as a closed annulus.
func (a Arc) Path() Path {
	var p Path

	r0, r1 := a.InnerRadius, a.OuterRadius
	a0 := a.StartAngle - math.Pi/2
	a1 := a.EndAngle - math.Pi/2
	da := math.Abs(a1 - a0)
	cw := a1 > a0

	if r1 < r0 {
		r0, r1 = r1, r0
	}

	switch {
	case !(r1 > arcEpsilon):
		p.MoveTo(0, 0)

	case da > tau-arcEpsilon:
		p.MoveTo(r1*math.Cos(a0), r1*math.Sin(a0))
		p.Arc(0, 0, r1, a0, a1, !cw)
		if r0 > arcEpsilon {
			p.MoveTo(r0*math.Cos(a1), r0*math.Sin(a1))
			p.Arc(0, 0, r0, a1, a0, cw)
		}

	default:
		a.sector(&p, r0, r1, a0, a1, da, cw)
	}

	p.ClosePath()
	return p
}

func (a Arc) sector(p *Path, r0, r1, a0, a1, da float64, cw bool) {
	a01, a11, a00, a10 := a0, a1, a0, a1
	da0, da1 := da, da
	ap := a.PadAngle / 2
	rc := math.Min(math.Abs(r1-r0)/2, a.CornerRadius)
	rc0, rc1 := rc, rc

	if ap > arcEpsilon {
		rp := math.Sqrt(r0*r0 + r1*r1)
		dir := 1.0
		if !cw {
			dir = -1
		}
		if rp > arcEpsilon {
			p0 := safeAsin(rp / r0 * math.Sin(ap))
			p1 := safeAsin(rp / r1 * math.Sin(ap))
			if da0 -= p0 * 2; da0 > arcEpsilon {
				p0 *= dir
				a00 += p0
				a10 -= p0
			} else {
				da0 = 0
				a00 = (a0 + a1) / 2
				a10 = a00
			}
			if da1 -= p1 * 2; da1 > arcEpsilon {
				p1 *= dir
				a01 += p1
				a11 -= p1
			} else {
				da1 = 0
				a01 = (a0 + a1) / 2
				a11 = a01
			}
		}
	}

	x01, y01 := r1*math.Cos(a01), r1*math.Sin(a01)
	x10, y10 := r0*math.Cos(a10), r0*math.Sin(a10)

	if rc > arcEpsilon {
		x11, y11 := r1*math.Cos(a11), r1*math.Sin(a11)
		x00, y00 := r0*math.Cos(a00), r0*math.Sin(a00)

		// Narrow sectors: shrink the corners so they fit between the edges.
		if da < math.Pi {
			if ox, oy, ok := intersect(x01, y01, x00, y00, x11, y11, x10, y10); ok {
				ax, ay := x01-ox, y01-oy
				bx, by := x11-ox, y11-oy
				cos := (ax*bx + ay*by) / (math.Hypot(ax, ay) * math.Hypot(bx, by))
				kc := 1 / math.Sin(math.Acos(clamp(cos, -1, 1))/2)
				lc := math.Hypot(ox, oy)
				rc0 = math.Min(rc, (r0-lc)/(kc-1))
				rc1 = math.Min(rc, (r1-lc)/(kc+1))
			} else {
				rc0, rc1 = 0, 0
			}
		}
	}

	// Outer edge.
	switch {
	case !(da1 > arcEpsilon):
		p.MoveTo(x01, y01)
	case rc1 > arcEpsilon:
		x00, y00 := r0*math.Cos(a00), r0*math.Sin(a00)
		x11, y11 := r1*math.Cos(a11), r1*math.Sin(a11)
		t0 := cornerTangents(x00, y00, x01, y01, r1, rc1, cw)
		t1 := cornerTangents(x11, y11, x10, y10, r1, rc1, cw)
		p.MoveTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc1 < rc {
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r1, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), !cw)
			p.Arc(t1.cx, t1.cy, rc1, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}
	default:
		p.MoveTo(x01, y01)
		p.Arc(0, 0, r1, a01, a11, !cw)
	}

	// Inner edge.
	switch {
	case !(r0 > arcEpsilon) || !(da0 > arcEpsilon):
		p.LineTo(x10, y10)
	case rc0 > arcEpsilon:
		x00, y00 := r0*math.Cos(a00), r0*math.Sin(a00)
		x11, y11 := r1*math.Cos(a11), r1*math.Sin(a11)
		t0 := cornerTangents(x10, y10, x11, y11, r0, -rc0, cw)
		t1 := cornerTangents(x01, y01, x00, y00, r0, -rc0, cw)
		p.LineTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc0 < rc {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r0, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), cw)
			p.Arc(t1.cx, t1.cy, rc0, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}
	default:
		p.Arc(0, 0, r0, a10, a00, cw)
	}
}

type tangent struct {
	cx, cy   float64
	x01, y01 float64
	x11, y11 float64
}

// cornerTangents finds the circle of radius rc tangent to the radial line
// (x0,y0)-(x1,y1) and to the circle of radius r1 around the origin.
func cornerTangents(x0, y0, x1, y1, r1, rc float64, cw bool) tangent {
	x01, y01 := x0-x1, y0-y1
	lo := rc
	if !cw {
		lo = -rc
	}
	lo /= math.Hypot(x01, y01)
	ox, oy := lo*y01, -lo*x01
	x11, y11 := x0+ox, y0+oy
	x10, y10 := x1+ox, y1+oy
	x00, y00 := (x11+x10)/2, (y11+y10)/2
	dx, dy := x10-x11, y10-y11
	d2 := dx*dx + dy*dy
	r := r1 - rc
	D := x11*y10 - x10*y11
	sign := 1.0
	if dy < 0 {
		sign = -1
	}
	d := sign * math.Sqrt(math.Max(0, r*r*d2-D*D))
	cx0 := (D*dy - dx*d) / d2
	cy0 := (-D*dx - dy*d) / d2
	cx1 := (D*dy + dx*d) / d2
	cy1 := (-D*dx + dy*d) / d2
	dx0, dy0 := cx0-x00, cy0-y00
	dx1, dy1 := cx1-x00, cy1-y00

	if dx0*dx0+dy0*dy0 > dx1*dx1+dy1*dy1 {
		cx0, cy0 = cx1, cy1
	}
	return tangent{
		cx: cx0, cy: cy0,
		x01: -ox, y01: -oy,
		x11: cx0 * (r1/r - 1),
		y11: cy0 * (r1/r - 1),
	}
}

// intersect returns where line (x0,y0)-(x1,y1) crosses line (x2,y2)-(x3,y3).
func intersect(x0, y0, x1, y1, x2, y2, x3, y3 float64) (float64, float64, bool) {
	x10, y10 := x1-x0, y1-y0
	x32, y32 := x3-x2, y3-y2
	t := y32*x10 - x32*y10
	if t*t < arcEpsilon {
		return 0, 0, false
	}
	t = (x32*(y0-y2) - y32*(x0-x2)) / t
	return x0 + t*x10, y0 + t*y10, true
}

func safeAsin(x float64) float64 {
	if x >= 1 {
		return math.Pi / 2
	}
	if x <= -1 {
		return -math.Pi / 2
	}
	return math.Asin(x)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
