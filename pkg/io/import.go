package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/kolam"
)

// DefaultGridSize is assumed when a document omits grid_size.
const DefaultGridSize = 7

// Dropped counts entries discarded during import.
type Dropped struct {
	Dots        int
	Connections int
}

// Any reports whether anything was dropped.
func (d Dropped) Any() bool { return d.Dots > 0 || d.Connections > 0 }

type rawDocument struct {
	GridSize     *int              `json:"grid_size"`
	Archetype    string            `json:"archetype"`
	Symmetry     string            `json:"symmetry"`
	Complexity   int               `json:"complexity"`
	Description  string            `json:"description"`
	CulturalNote string            `json:"cultural_note"`
	Fallback     bool              `json:"fallback"`
	Requested    string            `json:"requested"`
	Dots         []json.RawMessage `json:"dots"`
	Connections  []json.RawMessage `json:"connections"`
}

// editorConnection is the {"start", "end", "type"} form.
type editorConnection struct {
	Start json.RawMessage `json:"start"`
	End   json.RawMessage `json:"end"`
}

// ReadJSON decodes a pattern document from r.
//
// ReadJSON returns an error if the JSON is malformed or grid_size is outside
// the accepted range. Individual dots or connections that are malformed or
// off the grid are dropped and counted instead. Connection endpoints need
// not appear in the dots list; they are checked against the grid only.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (kolam.Pattern, Dropped, error) {
	var doc rawDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return kolam.Pattern{}, Dropped{}, kerrors.Wrap(kerrors.ErrCodeInvalidPattern, err, "decode pattern")
	}

	size := DefaultGridSize
	if doc.GridSize != nil {
		size = *doc.GridSize
	}
	if size < kerrors.MinGridSize || size > kerrors.MaxGridSize {
		return kolam.Pattern{}, Dropped{}, kerrors.New(kerrors.ErrCodeInvalidPattern,
			"grid_size must be between %d and %d, got %d", kerrors.MinGridSize, kerrors.MaxGridSize, size)
	}

	p := kolam.Pattern{
		GridSize:     size,
		Archetype:    kolam.Archetype(doc.Archetype),
		Symmetry:     kolam.Symmetry(doc.Symmetry),
		Complexity:   doc.Complexity,
		Description:  doc.Description,
		CulturalNote: doc.CulturalNote,
		Fallback:     doc.Fallback,
		Requested:    kolam.Archetype(doc.Requested),
	}
	var dropped Dropped

	seen := make(map[kolam.Dot]bool, len(doc.Dots))
	for _, raw := range doc.Dots {
		d, ok := decodeDot(raw)
		if !ok || !d.In(size) {
			dropped.Dots++
			continue
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		p.Dots = append(p.Dots, d)
	}

	for _, raw := range doc.Connections {
		c, ok := decodeConnection(raw)
		if !ok || c.A == c.B || !c.A.In(size) || !c.B.In(size) {
			dropped.Connections++
			continue
		}
		p.Connections = append(p.Connections, c)
	}

	return p, dropped, nil
}

// ImportJSON reads a JSON file at path and returns the decoded pattern.
// A missing file is reported with [kerrors.ErrCodeFileNotFound].
func ImportJSON(path string) (kolam.Pattern, Dropped, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return kolam.Pattern{}, Dropped{}, kerrors.Wrap(kerrors.ErrCodeFileNotFound, err, "pattern file %s not found", path)
	}
	if err != nil {
		return kolam.Pattern{}, Dropped{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Decode is ReadJSON over an in-memory document.
func Decode(data []byte) (kolam.Pattern, Dropped, error) {
	return ReadJSON(bytes.NewReader(data))
}

func decodeDot(raw json.RawMessage) (kolam.Dot, bool) {
	var xy []float64
	if err := json.Unmarshal(raw, &xy); err != nil || len(xy) != 2 {
		return kolam.Dot{}, false
	}
	x, okX := integral(xy[0])
	y, okY := integral(xy[1])
	return kolam.Dot{X: x, Y: y}, okX && okY
}

func decodeConnection(raw json.RawMessage) (kolam.Connection, bool) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err == nil {
		if len(pair) != 2 {
			return kolam.Connection{}, false
		}
		a, okA := decodeDot(pair[0])
		b, okB := decodeDot(pair[1])
		return kolam.Connection{A: a, B: b}, okA && okB
	}

	var ec editorConnection
	if err := json.Unmarshal(raw, &ec); err != nil || ec.Start == nil || ec.End == nil {
		return kolam.Connection{}, false
	}
	a, okA := decodeDot(ec.Start)
	b, okB := decodeDot(ec.End)
	return kolam.Connection{A: a, B: b}, okA && okB
}

func integral(f float64) (int, bool) {
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
