package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rook-computer/colorwheel/internal/wheel"
)

// Renderer is a long-lived output surface that can show a scene.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	Show(scene wheel.Scene) error
}

// Logger is the subset of the app logger the renderers use.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Stub implementation
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error { return nil }
func (n *NoopRenderer) Stop() error                     { return nil }
func (n *NoopRenderer) Show(scene wheel.Scene) error    { return nil }

var ErrUnknownFormat = errors.New("unknown output format")

// Format selects an encoding for one-shot exports.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

// Write encodes scene in the given format.
func Write(w io.Writer, format Format, scene wheel.Scene) error {
	switch format {
	case FormatSVG:
		return WriteSVG(w, scene)
	case FormatPNG:
		return WritePNG(w, scene)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
