package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	svgf "github.com/ajstarks/svgo/float"
	"github.com/rook-computer/colorwheel/internal/wheel"
)

// WriteSVG writes scene as a standalone SVG document: a rounded background
// rect, then one group per ring translated to the canvas center, each arc
// followed by its hex label.
func WriteSVG(w io.Writer, scene wheel.Scene) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	// Labels sit on fractional centroids, which the integer canvas would round.
	labels := svgf.New(ew)
	labels.Decimals = 3

	canvas.Start(scene.Width, scene.Height, fmt.Sprintf(`data-events="%t"`, scene.Events))
	canvas.Roundrect(0, 0, scene.Width, scene.Height, round(scene.Background.Radius), round(scene.Background.Radius),
		attr("fill", wheel.Hex(scene.Background.Fill)))

	canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", num(scene.Center.X), num(scene.Center.Y)))
	for _, group := range scene.Rings {
		canvas.Gid(fmt.Sprintf("ring-%d", group.Ring.Index))
		for _, a := range group.Arcs {
			canvas.Path(a.Path.SVG(),
				attr("fill", wheel.Hex(a.Fill)),
				attr("opacity", num(a.Opacity)))
			writeLabel(labels, a.Label)
		}
		canvas.Gend()
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func writeLabel(canvas *svgf.SVG, l wheel.Label) {
	pointer := "auto"
	if !l.PointerEvents {
		pointer = "none"
	}
	canvas.Text(l.X, l.Y, l.Text,
		attr("fill", wheel.Hex(l.Fill)),
		attr("dy", l.DY),
		attr("font-size", num(l.FontSize)),
		attr("text-anchor", l.Anchor),
		attr("pointer-events", pointer))
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func round(v float64) int { return int(math.Round(v)) }

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
