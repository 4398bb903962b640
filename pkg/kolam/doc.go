// Package kolam synthesizes kolam dot-art patterns from a handful of
// parameters.
//
// # Overview
//
// A [Request] names an archetype, a symmetry label, a complexity level in
// [1, 9], an element count (petals, points, segments) and an odd grid size.
// [Synthesize] turns it into a [Pattern]: a set of lattice [Dot] values and a
// sequence of [Connection] edges between them, plus descriptive metadata.
//
//	p := kolam.Synthesize(kolam.Request{
//	    Archetype:    kolam.Flower,
//	    Symmetry:     kolam.Rotational,
//	    Complexity:   6,
//	    ElementCount: 8,
//	    GridSize:     9,
//	})
//	fmt.Println(len(p.Dots), len(p.Connections))
//
// # Discretization
//
// Radial archetypes anchor on the lattice center gridSize/2. A polar candidate
// (center + r·cos θ, center + r·sin θ) is truncated toward zero on each axis
// and discarded when it leaves [0, gridSize). Candidates are never clamped,
// so large radii or awkward angles can yield fewer dots than the geometry
// suggests. Callers must tolerate that.
//
// # Complexity
//
// Complexity adds structure through thresholds rather than continuous
// scaling: flower mids above 5 and an inner ring above 7, lotus outer ring
// above 4, star spokes above 6, diamond diagonals above 6. Diamond and mandala
// sample their ring radii with r % (10 - complexity).
//
// # Connections
//
// Dots are deduplicated; connections are not. The same undirected edge can be
// emitted more than once when two generation passes produce it. Use
// [Pattern.Stats] to count distinct edges.
//
// [Connect] exposes the shared proximity and ring rules, and [AutoConnect]
// links dots that arrive without edges (for example from an image extractor).
//
// # Concurrency
//
// Synthesize has no shared state and may be called from any number of
// goroutines.
package kolam
