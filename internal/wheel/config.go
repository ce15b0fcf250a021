package wheel

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidConfig is wrapped by every Config.Validate failure.
	ErrInvalidConfig = errors.New("invalid wheel config")
	// ErrInvalidDimensions is returned for a zero or negative canvas size.
	ErrInvalidDimensions = errors.New("invalid canvas dimensions")
)

// Config holds the fixed geometry and styling of a wheel.
// A Config is a plain value; copies never share state.
type Config struct {
	Size         float64 // outer diameter
	SizeInner    float64 // diameter of the empty center
	Arcs         int
	Rings        int
	RingsSpacing float64 // filled fraction of each ring width
	ArcsSpacing  float64 // pad angle between adjacent arcs, radians
	CornerRadius float64

	FontSize   float64
	LabelColor string

	Background       string
	BackgroundRadius float64
}

func DefaultConfig() Config {
	return Config{
		Size:             400,
		SizeInner:        80,
		Arcs:             12,
		Rings:            1,
		RingsSpacing:     0.9,
		ArcsSpacing:      0.01,
		CornerRadius:     5,
		FontSize:         8,
		LabelColor:       "#ffffff",
		Background:       "#e4e3d8",
		BackgroundRadius: 14,
	}
}

// RingWidth is the radial budget of one ring, measured on the diameter.
func (c Config) RingWidth() float64 {
	return (c.Size - c.SizeInner) / float64(c.Rings)
}

func (c Config) Validate() error {
	switch {
	case c.Arcs < 1:
		return fmt.Errorf("%w: arcs must be >= 1 (got %d)", ErrInvalidConfig, c.Arcs)
	case c.Rings < 1:
		return fmt.Errorf("%w: rings must be >= 1 (got %d)", ErrInvalidConfig, c.Rings)
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive (got %g)", ErrInvalidConfig, c.Size)
	case c.SizeInner < 0 || c.SizeInner >= c.Size:
		return fmt.Errorf("%w: inner size must be in [0, %g) (got %g)", ErrInvalidConfig, c.Size, c.SizeInner)
	case c.RingsSpacing <= 0 || c.RingsSpacing > 1:
		return fmt.Errorf("%w: rings spacing must be in (0, 1] (got %g)", ErrInvalidConfig, c.RingsSpacing)
	case c.ArcsSpacing < 0:
		return fmt.Errorf("%w: arcs spacing must not be negative (got %g)", ErrInvalidConfig, c.ArcsSpacing)
	case c.CornerRadius < 0:
		return fmt.Errorf("%w: corner radius must not be negative (got %g)", ErrInvalidConfig, c.CornerRadius)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font size must be positive (got %g)", ErrInvalidConfig, c.FontSize)
	}
	if _, err := colorful.Hex(c.LabelColor); err != nil {
		return fmt.Errorf("%w: label color %q: %v", ErrInvalidConfig, c.LabelColor, err)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("%w: background %q: %v", ErrInvalidConfig, c.Background, err)
	}
	return nil
}
