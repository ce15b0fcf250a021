package wheel

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Cubehelix constants (Green 2011), as used by d3-color.
const (
	helixA = -0.14861
	helixB = +1.78277
	helixC = -0.29227
	helixD = -0.90649
	helixE = +1.97294
)

// Rainbow maps t in [0, 1) to the cyclical cubehelix rainbow (the same curve
// as d3's interpolateRainbow). Values outside [0, 1] wrap around. Channels are
// quantized to 8 bits so the fill and its hex label always agree.
func Rainbow(t float64) colorful.Color {
	if t < 0 || t > 1 {
		t -= math.Floor(t)
	}
	ts := math.Abs(t - 0.5)
	h := 360*t - 100
	s := 1.5 - 1.5*ts
	l := 0.8 - 0.9*ts
	return cubehelix(h, s, l)
}

func cubehelix(h, s, l float64) colorful.Color {
	rad := (h + 120) * math.Pi / 180
	a := s * l * (1 - l)
	cosh, sinh := math.Cos(rad), math.Sin(rad)
	return colorful.Color{
		R: quantize(l + a*(helixA*cosh+helixB*sinh)),
		G: quantize(l + a*(helixC*cosh+helixD*sinh)),
		B: quantize(l + a*(helixE*cosh)),
	}
}

func quantize(v float64) float64 {
	v = math.Round(v * 255)
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return v / 255
}

// Hex formats c as "#rrggbb".
func Hex(c colorful.Color) string { return c.Clamped().Hex() }

// ColorTable holds one rainbow color per arc, computed once.
type ColorTable struct {
	colors []colorful.Color
}

func NewColorTable(arcs int) ColorTable {
	if arcs < 1 {
		return ColorTable{}
	}
	colors := make([]colorful.Color, arcs)
	for i := range colors {
		colors[i] = Rainbow(float64(i) / float64(arcs))
	}
	return ColorTable{colors: colors}
}

func (t ColorTable) Len() int { return len(t.colors) }

func (t ColorTable) At(i int) colorful.Color { return t.colors[i] }

func (t ColorTable) Hex(i int) string { return Hex(t.colors[i]) }

// LinearScale maps Domain onto Range without clamping.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

func (s LinearScale) Map(x float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	if d == 0 {
		return s.Range[0]
	}
	t := (x - s.Domain[0]) / d
	return s.Range[0]*(1-t) + s.Range[1]*t
}

// OpacityScale fades rings from fully opaque at index 0 to 0.3 at index 5.
func OpacityScale() LinearScale {
	return LinearScale{Domain: [2]float64{5, 0}, Range: [2]float64{0.3, 1}}
}

func Opacity(ring int) float64 { return OpacityScale().Map(float64(ring)) }
