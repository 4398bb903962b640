package drawing

import (
	"bytes"
	"fmt"
	"math"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
)

// Style defines how strokes are drawn.
type Style interface {
	// Name is the identifier used by ParseStyle.
	Name() string
	// RenderStroke writes the SVG for a single connection.
	RenderStroke(buf *bytes.Buffer, s Stroke)
}

// Stroke is a connection in canvas coordinates. Index is its position among
// the rendered strokes.
type Stroke struct {
	X1, Y1, X2, Y2 float64
	Index          int
}

// Style names.
const (
	StyleSimple = "simple"
	StyleCurved = "curved"
)

// Styles lists the available style names.
func Styles() []string { return []string{StyleSimple, StyleCurved} }

// ParseStyle resolves a style name. The empty string selects Simple.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "", StyleSimple:
		return Simple{}, nil
	case StyleCurved:
		return Curved{Bow: DefaultBow}, nil
	}
	return nil, kerrors.New(kerrors.ErrCodeInvalidStyle, "unknown style %q (want simple or curved)", name)
}

// Simple draws straight lines.
type Simple struct{}

func (Simple) Name() string { return StyleSimple }

func (Simple) RenderStroke(buf *bytes.Buffer, s Stroke) {
	fmt.Fprintf(buf, `  <line class="stroke" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
		s.X1, s.Y1, s.X2, s.Y2)
}

// DefaultBow is the arc height of Curved strokes as a fraction of length.
const DefaultBow = 0.25

// Curved draws quadratic arcs whose control point sits Bow×length off the
// midpoint, alternating sides by stroke index.
type Curved struct {
	Bow float64
}

func (Curved) Name() string { return StyleCurved }

func (c Curved) RenderStroke(buf *bytes.Buffer, s Stroke) {
	cx, cy := c.control(s)
	fmt.Fprintf(buf, `  <path class="stroke" d="M %.1f %.1f Q %.1f %.1f %.1f %.1f"/>`+"\n",
		s.X1, s.Y1, cx, cy, s.X2, s.Y2)
}

func (c Curved) control(s Stroke) (float64, float64) {
	mx, my := (s.X1+s.X2)/2, (s.Y1+s.Y2)/2
	dx, dy := s.X2-s.X1, s.Y2-s.Y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return mx, my
	}
	bow := c.Bow
	if bow == 0 {
		bow = DefaultBow
	}
	if s.Index%2 == 1 {
		bow = -bow
	}
	// Unit normal scaled by bow×length reduces to (-dy, dx)×bow.
	return mx - dy*bow, my + dx*bow
}
