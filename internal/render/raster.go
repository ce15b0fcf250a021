package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rook-computer/colorwheel/internal/wheel"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// LabelFace returns a Go Regular face at the given size. The error reports why
// the built-in basicfont was substituted; the returned face is always usable.
func LabelFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("parse label font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// Rasterize paints scene onto a new RGBA image of the scene's size.
// A nil face falls back to basicfont.
func Rasterize(scene wheel.Scene, face font.Face) *image.RGBA {
	w, h := scene.Width, scene.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	fillPath(img, scene.Background.Path, wheel.Point{}, toNRGBA(scene.Background.Fill, 1))
	for _, group := range scene.Rings {
		for _, a := range group.Arcs {
			fillPath(img, a.Path, scene.Center, toNRGBA(a.Fill, a.Opacity))
			drawLabel(img, face, a.Label, scene.Center)
		}
	}
	return img
}

// WritePNG rasterizes scene with the default label face and encodes it.
func WritePNG(w io.Writer, scene wheel.Scene) error {
	face, _ := LabelFace(labelSize(scene))
	if err := png.Encode(w, Rasterize(scene, face)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func labelSize(scene wheel.Scene) float64 {
	for _, g := range scene.Rings {
		if len(g.Arcs) > 0 {
			return g.Arcs[0].Label.FontSize
		}
	}
	return wheel.DefaultConfig().FontSize
}

func fillPath(dst draw.Image, p wheel.Path, offset wheel.Point, c color.Color) {
	polys := p.Flatten(FlattenTolerance)
	if len(polys) == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, poly := range polys {
		z.MoveTo(float32(poly[0].X+offset.X), float32(poly[0].Y+offset.Y))
		for _, pt := range poly[1:] {
			z.LineTo(float32(pt.X+offset.X), float32(pt.Y+offset.Y))
		}
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// drawLabel centers text horizontally on the label point and shifts the
// baseline down by the label's em offset.
func drawLabel(dst draw.Image, face font.Face, l wheel.Label, offset wheel.Point) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(toNRGBA(l.Fill, 1)),
		Face: face,
	}
	width := drawer.MeasureString(l.Text)
	x := offset.X + l.X
	y := offset.Y + l.Y + emOffset(l.DY)*l.FontSize
	drawer.Dot = fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x*64)) - width/2,
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
	drawer.DrawString(l.Text)
}

func emOffset(dy string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(dy), "em"), 64)
	if err != nil {
		return 0
	}
	return v
}

func toNRGBA(c colorful.Color, opacity float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	opacity = math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(opacity * 255))}
}
