package wheel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Options are the per-render parameters supplied by the caller.
type Options struct {
	Width  int
	Height int
	// Events is carried through to the output but gates no behavior yet:
	// labels never take pointer events and arcs keep the surface default.
	Events bool
}

// MaxDimension bounds either side of the canvas. A raster of this size is
// already 256 MiB.
const MaxDimension = 8192

func DefaultOptions() Options {
	return Options{Width: 400, Height: 400, Events: true}
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, o.Width, o.Height)
	}
	if o.Width > MaxDimension || o.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidDimensions, o.Width, o.Height, MaxDimension)
	}
	return nil
}

// Scene is a fully resolved wheel ready to be written to any surface.
// Arc paths and label positions are relative to Center.
type Scene struct {
	Width      int
	Height     int
	Events     bool
	Center     Point
	Background Background
	Rings      []RingGroup
}

type Background struct {
	Width  float64
	Height float64
	Radius float64
	Fill   colorful.Color
	Path   Path
}

type RingGroup struct {
	Ring RingSpec
	Arcs []ArcPrimitive
}

type ArcPrimitive struct {
	Index   int
	Slice   AngularSlice
	Shape   Arc
	Fill    colorful.Color
	Opacity float64
	Path    Path
	Label   Label
}

// Span is the angular extent left once the pad angle is taken out.
func (a ArcPrimitive) Span() float64 { return a.Slice.Span() - a.Shape.PadAngle }

type Label struct {
	Text          string
	X             float64
	Y             float64
	DY            string
	FontSize      float64
	Fill          colorful.Color
	Anchor        string
	PointerEvents bool
}

// Render builds the scene for cfg at the requested canvas size.
func Render(cfg Config, opts Options) (Scene, error) {
	layout, err := NewLayout(cfg)
	if err != nil {
		return Scene{}, err
	}
	return layout.Render(opts)
}

// Render lays every ring (outer to inner) and every arc within it onto a
// canvas centered at (Width/2, Height/2).
func (l Layout) Render(opts Options) (Scene, error) {
	if err := opts.Validate(); err != nil {
		return Scene{}, err
	}
	cfg := l.Config
	labelColor, err := colorful.Hex(cfg.LabelColor)
	if err != nil {
		return Scene{}, fmt.Errorf("%w: label color: %v", ErrInvalidConfig, err)
	}
	bgColor, err := colorful.Hex(cfg.Background)
	if err != nil {
		return Scene{}, fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}

	w, h := float64(opts.Width), float64(opts.Height)
	scene := Scene{
		Width:  opts.Width,
		Height: opts.Height,
		Events: opts.Events,
		Center: Point{X: w / 2, Y: h / 2},
		Background: Background{
			Width:  w,
			Height: h,
			Radius: cfg.BackgroundRadius,
			Fill:   bgColor,
			Path:   RoundedRect(w, h, cfg.BackgroundRadius),
		},
		Rings: make([]RingGroup, 0, len(l.Rings)),
	}

	for _, ring := range l.Rings {
		group := RingGroup{Ring: ring, Arcs: make([]ArcPrimitive, 0, len(l.Slices))}
		for i, slice := range l.Slices {
			shape := Arc{
				StartAngle:   slice.Start,
				EndAngle:     slice.End,
				InnerRadius:  ring.InnerRadius,
				OuterRadius:  ring.OuterRadius,
				PadAngle:     cfg.ArcsSpacing,
				CornerRadius: cfg.CornerRadius,
			}
			fill := l.Colors.At(i)
			cx, cy := shape.Centroid()
			group.Arcs = append(group.Arcs, ArcPrimitive{
				Index:   i,
				Slice:   slice,
				Shape:   shape,
				Fill:    fill,
				Opacity: ring.Opacity,
				Path:    shape.Path(),
				Label: Label{
					Text:     Hex(fill),
					X:        cx,
					Y:        cy,
					DY:       ".33em",
					FontSize: cfg.FontSize,
					Fill:     labelColor,
					Anchor:   "middle",
				},
			})
		}
		scene.Rings = append(scene.Rings, group)
	}
	return scene, nil
}

func (s Scene) ArcCount() int {
	n := 0
	for _, g := range s.Rings {
		n += len(g.Arcs)
	}
	return n
}

// Labels lists every arc label in drawing order.
func (s Scene) Labels() []Label {
	out := make([]Label, 0, s.ArcCount())
	for _, g := range s.Rings {
		for _, a := range g.Arcs {
			out = append(out, a.Label)
		}
	}
	return out
}
