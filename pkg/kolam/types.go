package kolam

import (
	"math"
	"slices"
	"strings"
)

// Archetype names a pattern family. The zero value is not a valid archetype.
type Archetype string

// Supported archetypes. Traditional is an alias rendered with Flower geometry.
const (
	Flower      Archetype = "flower"
	Lotus       Archetype = "lotus"
	Star        Archetype = "star"
	Diamond     Archetype = "diamond"
	Spiral      Archetype = "spiral"
	Mandala     Archetype = "mandala"
	Geometric   Archetype = "geometric"
	Traditional Archetype = "traditional"
)

// Symmetry is a declarative label attached to a pattern. It is not enforced.
type Symmetry string

// Supported symmetry classes.
const (
	Rotational Symmetry = "rotational"
	Bilateral  Symmetry = "bilateral"
	Point      Symmetry = "point"
	Radial     Symmetry = "radial"
	None       Symmetry = "none"
)

// Domain limits for a Request.
const (
	MinComplexity   = 1
	MaxComplexity   = 9
	MidComplexity   = 5
	MinGridSize     = 3
	MinElementCount = 3
)

var archetypes = []Archetype{Flower, Lotus, Star, Diamond, Spiral, Mandala, Geometric, Traditional}

var symmetries = []Symmetry{Rotational, Bilateral, Point, Radial, None}

// Archetypes returns every accepted archetype name, including the traditional alias.
func Archetypes() []Archetype { return slices.Clone(archetypes) }

// Symmetries returns every accepted symmetry class.
func Symmetries() []Symmetry { return slices.Clone(symmetries) }

// ParseArchetype matches s case-insensitively against the archetype set.
func ParseArchetype(s string) (Archetype, bool) {
	a := Archetype(strings.ToLower(strings.TrimSpace(s)))
	return a, a.Valid()
}

// Valid reports whether a is one of the known archetypes.
func (a Archetype) Valid() bool { return slices.Contains(archetypes, a) }

// ParseSymmetry matches s case-insensitively against the symmetry set.
func ParseSymmetry(s string) (Symmetry, bool) {
	sym := Symmetry(strings.ToLower(strings.TrimSpace(s)))
	return sym, sym.Valid()
}

// Valid reports whether s is one of the known symmetry classes.
func (s Symmetry) Valid() bool { return slices.Contains(symmetries, s) }

// Request is the immutable input to Synthesize.
type Request struct {
	Archetype    Archetype `json:"archetype" toml:"archetype"`
	Symmetry     Symmetry  `json:"symmetry" toml:"symmetry"`
	Complexity   int       `json:"complexity" toml:"complexity"`
	ElementCount int       `json:"element_count" toml:"element_count"`
	GridSize     int       `json:"grid_size" toml:"grid_size"`
}

// Normalize returns a copy of r pulled into the synthesizer's input domain.
// Complexity is clamped to [1,9]; element count and grid size are raised to 3.
// Archetype and symmetry are left untouched so unknown values still reach the
// fallback branch.
func (r Request) Normalize() Request {
	r.Complexity = min(max(r.Complexity, MinComplexity), MaxComplexity)
	r.ElementCount = max(r.ElementCount, MinElementCount)
	r.GridSize = max(r.GridSize, MinGridSize)
	return r
}

// Center is the lattice anchor used by every radial generator.
func (r Request) Center() int { return r.GridSize / 2 }

// Dot is a lattice point.
type Dot struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// In reports whether d lies on a gridSize×gridSize lattice.
func (d Dot) In(gridSize int) bool {
	return d.X >= 0 && d.X < gridSize && d.Y >= 0 && d.Y < gridSize
}

// Dist is the Euclidean distance between d and o.
func (d Dot) Dist(o Dot) float64 {
	return math.Hypot(float64(d.X-o.X), float64(d.Y-o.Y))
}

// Connection is an undirected edge between two distinct dots.
type Connection struct {
	A Dot `json:"a"`
	B Dot `json:"b"`
}

// Equal reports whether c and o join the same pair of dots in either orientation.
func (c Connection) Equal(o Connection) bool {
	return (c.A == o.A && c.B == o.B) || (c.A == o.B && c.B == o.A)
}

// Key orders the endpoints by (X, Y) so that both orientations of an
// undirected edge compare equal as map keys.
func (c Connection) Key() Connection {
	if c.B.X < c.A.X || (c.B.X == c.A.X && c.B.Y < c.A.Y) {
		return Connection{A: c.B, B: c.A}
	}
	return c
}

// Pattern is a synthesized design. It is not mutated after Synthesize returns.
type Pattern struct {
	Dots         []Dot
	Connections  []Connection
	Archetype    Archetype
	Symmetry     Symmetry
	Complexity   int
	Description  string
	CulturalNote string
	GridSize     int

	// Fallback is set when Requested was not a known archetype and the
	// geometric generator was used instead.
	Fallback  bool
	Requested Archetype
}

// Clone returns a deep copy for callers that want to edit a pattern.
func (p Pattern) Clone() Pattern {
	p.Dots = slices.Clone(p.Dots)
	p.Connections = slices.Clone(p.Connections)
	return p
}

// Stats summarizes the size of a pattern.
type Stats struct {
	Dots        int `json:"dots"`
	Connections int `json:"connections"`
	UniqueEdges int `json:"unique_edges"`
}

// Stats counts dots, emitted connections and distinct undirected edges.
func (p Pattern) Stats() Stats {
	return Stats{Dots: len(p.Dots), Connections: len(p.Connections), UniqueEdges: len(p.EdgeCounts())}
}

// EdgeCounts reports how often each undirected edge was emitted, keyed by
// [Connection.Key].
func (p Pattern) EdgeCounts() map[Connection]int {
	counts := make(map[Connection]int, len(p.Connections))
	for _, c := range p.Connections {
		counts[c.Key()]++
	}
	return counts
}

// UniqueConnections returns the connections with repeated undirected edges
// dropped. The first occurrence of each edge is kept, in emission order and
// orientation.
func (p Pattern) UniqueConnections() []Connection {
	seen := make(map[Connection]bool, len(p.Connections))
	out := make([]Connection, 0, len(p.Connections))
	for _, c := range p.Connections {
		k := c.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}
