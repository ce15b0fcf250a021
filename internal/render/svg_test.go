package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/rook-computer/colorwheel/internal/wheel"
)

type svgSummary struct {
	root     xml.StartElement
	elements map[string]int
	texts    []string
	fills    []string
	attrs    map[string][]xml.Attr
}

func summarizeSVG(t *testing.T, data []byte) svgSummary {
	t.Helper()
	sum := svgSummary{elements: map[string]int{}, attrs: map[string][]xml.Attr{}}
	dec := xml.NewDecoder(bytes.NewReader(data))
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid svg: %v", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "svg" {
				sum.root = el
			}
			sum.elements[el.Name.Local]++
			if _, seen := sum.attrs[el.Name.Local]; !seen {
				sum.attrs[el.Name.Local] = el.Attr
			}
			if el.Name.Local == "path" {
				sum.fills = append(sum.fills, attrValue(el.Attr, "fill"))
			}
			inText = el.Name.Local == "text"
		case xml.CharData:
			if inText {
				sum.texts = append(sum.texts, strings.TrimSpace(string(el)))
			}
		case xml.EndElement:
			inText = false
		}
	}
	return sum
}

func attrValue(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func TestWriteSVGStructure(t *testing.T) {
	scene, err := wheel.Render(wheel.DefaultConfig(), wheel.Options{Width: 400, Height: 400, Events: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	sum := summarizeSVG(t, buf.Bytes())

	if attrValue(sum.root.Attr, "width") != "400" || attrValue(sum.root.Attr, "height") != "400" {
		t.Fatalf("root size attrs = %v", sum.root.Attr)
	}
	if attrValue(sum.root.Attr, "data-events") != "true" {
		t.Fatalf("events flag not carried: %v", sum.root.Attr)
	}
	if sum.elements["rect"] != 1 || sum.elements["path"] != 12 || sum.elements["text"] != 12 {
		t.Fatalf("element counts = %v", sum.elements)
	}
	// Outer translate group plus one group per ring.
	if sum.elements["g"] != 2 {
		t.Fatalf("expected 2 groups, got %d", sum.elements["g"])
	}

	rect := sum.attrs["rect"]
	if attrValue(rect, "fill") != "#e4e3d8" || attrValue(rect, "rx") != "14" {
		t.Fatalf("background rect attrs = %v", rect)
	}
	text := sum.attrs["text"]
	for name, want := range map[string]string{
		"pointer-events": "none",
		"text-anchor":    "middle",
		"font-size":      "8",
		"dy":             ".33em",
		"fill":           "#ffffff",
	} {
		if got := attrValue(text, name); got != want {
			t.Fatalf("label %s = %q, want %q", name, got, want)
		}
	}

	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for i, label := range sum.texts {
		if !hex.MatchString(label) {
			t.Fatalf("label %d = %q", i, label)
		}
		if label != sum.fills[i] {
			t.Fatalf("label %d %q does not match fill %q", i, label, sum.fills[i])
		}
	}
}

func TestWriteSVGCentersGroup(t *testing.T) {
	scene, err := wheel.Render(wheel.DefaultConfig(), wheel.Options{Width: 640, Height: 401, Events: false})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `translate(320,200.5)`) {
		t.Fatalf("missing centered translate in %s", out)
	}
	if !strings.Contains(out, `data-events="false"`) {
		t.Fatalf("missing events flag")
	}
}

func TestWriteSVGPlacesLabelsAtCentroids(t *testing.T) {
	scene, err := wheel.Render(wheel.DefaultConfig(), wheel.DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, scene); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}

	want := scene.Labels()
	var got [][2]float64
	dec := xml.NewDecoder(&buf)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("invalid svg: %v", err)
		}
		if el, ok := tok.(xml.StartElement); ok && el.Name.Local == "text" {
			x, errX := strconv.ParseFloat(attrValue(el.Attr, "x"), 64)
			y, errY := strconv.ParseFloat(attrValue(el.Attr, "y"), 64)
			if errX != nil || errY != nil {
				t.Fatalf("label coords %v", el.Attr)
			}
			got = append(got, [2]float64{x, y})
		}
	}
	if len(got) != len(want) {
		t.Fatalf("%d labels written, want %d", len(got), len(want))
	}
	for i, l := range want {
		if math.Abs(got[i][0]-l.X) > 5e-4 || math.Abs(got[i][1]-l.Y) > 5e-4 {
			t.Fatalf("label %d at %v, want (%v, %v)", i, got[i], l.X, l.Y)
		}
	}
	// Arc 0 sits off the pixel grid, so rounding would be visible.
	if got[0][0] == math.Round(got[0][0]) {
		t.Fatalf("label 0 x %v was rounded", got[0][0])
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteError(t *testing.T) {
	scene, err := wheel.Render(wheel.DefaultConfig(), wheel.DefaultOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := WriteSVG(failingWriter{}, scene); err == nil {
		t.Fatalf("expected write error")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatSVG, "svg": FormatSVG, " PNG ": FormatPNG}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if err := Write(io.Discard, Format("gif"), wheel.Scene{}); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Write with unknown format: %v", err)
	}
}
