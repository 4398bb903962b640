package drawing

import (
	"bytes"
	"strings"
	"testing"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/kolam"
)

func testPattern() kolam.Pattern {
	a, b, c := kolam.Dot{X: 1, Y: 1}, kolam.Dot{X: 2, Y: 1}, kolam.Dot{X: 1, Y: 2}
	return kolam.Pattern{
		GridSize:    3,
		Archetype:   kolam.Geometric,
		Description: "a <tiny> kolam",
		Dots:        []kolam.Dot{a, b, c},
		Connections: []kolam.Connection{
			{A: a, B: b},
			{A: b, B: a}, // repeated edge
			{A: a, B: c},
		},
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testPattern()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 160.0 160.0"`) {
		t.Errorf("unexpected header: %s", svg[:min(len(svg), 120)])
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG not closed")
	}
	if got := strings.Count(svg, "<line "); got != 2 {
		t.Errorf("got %d strokes, want 2 distinct", got)
	}
	if got := strings.Count(svg, `r="4.0"`); got != 3 {
		t.Errorf("got %d dots, want 3", got)
	}
	// Dot (1,1) sits one margin plus one cell in.
	if !strings.Contains(svg, `cx="80.0" cy="80.0"`) {
		t.Error("dot (1,1) not at (80,80)")
	}
	if strings.Contains(svg, "<title>") {
		t.Error("title rendered without WithTitle")
	}
	if strings.Contains(svg, `class="lattice"`) {
		t.Error("lattice rendered without WithLattice")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG(testPattern(),
		WithStyle(Curved{}),
		WithLattice(),
		WithTitle(),
		WithCellSize(10),
		WithPalette(Palette{Background: "#000", Lattice: "#111", Dot: "#222", Stroke: "#333"}),
	))

	if got := strings.Count(svg, `class="stroke" d="M`); got != 2 {
		t.Errorf("got %d curved strokes, want 2", got)
	}
	if !strings.Contains(svg, `<g class="lattice">`) {
		t.Error("lattice missing")
	}
	// 3x3 lattice points at r = 0.5
	if got := strings.Count(svg, `r="0.5"`); got != 9 {
		t.Errorf("got %d lattice points, want 9", got)
	}
	if !strings.Contains(svg, "<title>geometric kolam</title>") {
		t.Error("title missing")
	}
	if !strings.Contains(svg, "a &lt;tiny&gt; kolam") {
		t.Error("description not escaped")
	}
	if !strings.Contains(svg, `fill="#000"`) || !strings.Contains(svg, "stroke: #333") {
		t.Error("palette not applied")
	}
}

func TestRenderSVGEmptyPattern(t *testing.T) {
	svg := RenderSVG(kolam.Pattern{})
	if !bytes.Contains(svg, []byte(`viewBox="0 0 80.0 80.0"`)) {
		t.Errorf("empty pattern should render a single cell frame: %s", svg)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", StyleSimple},
		{"simple", StyleSimple},
		{"curved", StyleCurved},
	}
	for _, tt := range tests {
		s, err := ParseStyle(tt.name)
		if err != nil {
			t.Fatalf("ParseStyle(%q) error: %v", tt.name, err)
		}
		if s.Name() != tt.want {
			t.Errorf("ParseStyle(%q) = %s, want %s", tt.name, s.Name(), tt.want)
		}
	}
	if _, err := ParseStyle("handdrawn"); !kerrors.Is(err, kerrors.ErrCodeInvalidStyle) {
		t.Errorf("ParseStyle(handdrawn) error = %v, want %s", err, kerrors.ErrCodeInvalidStyle)
	}
}

func TestCurvedAlternates(t *testing.T) {
	c := Curved{Bow: 0.5}
	s := Stroke{X1: 0, Y1: 0, X2: 10, Y2: 0}

	cx, cy := c.control(s)
	if cx != 5 || cy != 5 {
		t.Errorf("even stroke control = (%v, %v), want (5, 5)", cx, cy)
	}
	s.Index = 1
	cx, cy = c.control(s)
	if cx != 5 || cy != -5 {
		t.Errorf("odd stroke control = (%v, %v), want (5, -5)", cx, cy)
	}

	zero := Stroke{X1: 3, Y1: 3, X2: 3, Y2: 3}
	if cx, cy := c.control(zero); cx != 3 || cy != 3 {
		t.Errorf("zero-length control = (%v, %v), want midpoint", cx, cy)
	}
}
