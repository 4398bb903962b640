package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kolamstudio/kolam/pkg/kolam"
)

type point [2]int

type document struct {
	GridSize     int        `json:"grid_size"`
	Archetype    string     `json:"archetype"`
	Symmetry     string     `json:"symmetry"`
	Complexity   int        `json:"complexity"`
	Description  string     `json:"description"`
	CulturalNote string     `json:"cultural_note,omitempty"`
	Fallback     bool       `json:"fallback,omitempty"`
	Requested    string     `json:"requested,omitempty"`
	Dots         []point    `json:"dots"`
	Connections  [][2]point `json:"connections"`
}

func toDocument(p kolam.Pattern) document {
	doc := document{
		GridSize:     p.GridSize,
		Archetype:    string(p.Archetype),
		Symmetry:     string(p.Symmetry),
		Complexity:   p.Complexity,
		Description:  p.Description,
		CulturalNote: p.CulturalNote,
		Dots:         make([]point, len(p.Dots)),
		Connections:  make([][2]point, len(p.Connections)),
	}
	if p.Fallback {
		doc.Fallback = true
		doc.Requested = string(p.Requested)
	}
	for i, d := range p.Dots {
		doc.Dots[i] = point{d.X, d.Y}
	}
	for i, c := range p.Connections {
		doc.Connections[i] = [2]point{{c.A.X, c.A.Y}, {c.B.X, c.B.Y}}
	}
	return doc
}

// WriteJSON encodes a pattern as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(p kolam.Pattern, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a pattern to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p kolam.Pattern, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, f)
}

// Encode returns the indented JSON document for p.
func Encode(p kolam.Pattern) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
