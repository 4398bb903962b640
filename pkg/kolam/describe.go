package kolam

import "fmt"

var elementNoun = map[Archetype]string{
	Flower:      "petals",
	Lotus:       "petals",
	Star:        "points",
	Diamond:     "arms",
	Spiral:      "turns",
	Mandala:     "segments",
	Geometric:   "cells",
	Traditional: "petals",
}

var culturalNotes = map[Archetype]string{
	Flower:      "Floral kolams greet guests at the threshold and are drawn fresh each dawn.",
	Lotus:       "The lotus (padmam) stands for purity and is a favoured motif for festival mornings.",
	Star:        "Star kolams are drawn for celebrations such as Margazhi and Christmas in Tamil Nadu.",
	Diamond:     "Diamond lattices echo the pulli grid itself and are a common practice design.",
	Spiral:      "Spirals evoke the continuous line of the sikku kolam, drawn without lifting the hand.",
	Mandala:     "Concentric mandala kolams are drawn for temple festivals and large gatherings.",
	Geometric:   "Geometric grids are the foundation from which larger kolams are composed.",
	Traditional: "A traditional South Indian threshold kolam, drawn with rice flour to welcome prosperity.",
}

// describe fills the descriptive fields for a finished pattern.
// label is the archetype the caller asked for after alias resolution, which
// keeps "traditional" distinguishable from a plain flower.
func describe(req Request, label Archetype, dots, conns int) (string, string) {
	noun := label.Element()
	desc := fmt.Sprintf("A %s kolam with %d %s and %s symmetry at complexity %d/%d on a %dx%d pulli grid (%d dots, %d strokes).",
		label, req.ElementCount, noun, symmetryLabel(req.Symmetry), req.Complexity, MaxComplexity,
		req.GridSize, req.GridSize, dots, conns)
	return desc, label.Note()
}

func symmetryLabel(s Symmetry) string {
	if s == "" {
		return string(None)
	}
	return string(s)
}

// Element names what ElementCount counts for a, such as "petals" or "points".
func (a Archetype) Element() string {
	if n := elementNoun[a]; n != "" {
		return n
	}
	return "elements"
}

// Note returns the cultural note attached to patterns of archetype a.
func (a Archetype) Note() string { return culturalNotes[a] }
