package wheel

import "math"

const tau = 2 * math.Pi

// AngularSlice is one equal division of the circle, in radians measured
// clockwise from 12 o'clock.
type AngularSlice struct {
	Start float64
	End   float64
}

func (s AngularSlice) Span() float64 { return s.End - s.Start }

// Mid is the bisecting angle of the slice.
func (s AngularSlice) Mid() float64 { return (s.Start + s.End) / 2 }

// RingSpec is the radial extent and opacity of one concentric ring.
// Index 0 is the outermost ring.
type RingSpec struct {
	Index       int
	InnerRadius float64
	OuterRadius float64
	Opacity     float64
}

// Slices partitions [0, 2π) into cfg.Arcs equal slices. The last slice ends
// at exactly 2π so the partition closes without drift.
func Slices(cfg Config) []AngularSlice {
	n := cfg.Arcs
	if n < 1 {
		return nil
	}
	step := tau / float64(n)
	out := make([]AngularSlice, n)
	for i := 0; i < n; i++ {
		out[i] = AngularSlice{Start: float64(i) * step, End: float64(i+1) * step}
	}
	out[n-1].End = tau
	return out
}

// Rings computes one RingSpec per ring, outer to inner.
func Rings(cfg Config) []RingSpec {
	if cfg.Rings < 1 {
		return nil
	}
	width := cfg.RingWidth()
	scale := OpacityScale()
	out := make([]RingSpec, cfg.Rings)
	for k := range out {
		out[k] = RingSpec{
			Index:       k,
			OuterRadius: (cfg.Size - float64(k)*width) / 2,
			InnerRadius: (cfg.Size - (float64(k)+cfg.RingsSpacing)*width) / 2,
			Opacity:     scale.Map(float64(k)),
		}
	}
	return out
}

// Layout is the precomputed geometry of a wheel. It is built once by
// NewLayout and never mutated.
type Layout struct {
	Config Config
	Slices []AngularSlice
	Rings  []RingSpec
	Colors ColorTable
}

func NewLayout(cfg Config) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	return Layout{
		Config: cfg,
		Slices: Slices(cfg),
		Rings:  Rings(cfg),
		Colors: NewColorTable(cfg.Arcs),
	}, nil
}
