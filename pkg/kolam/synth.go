package kolam

// Synthesize turns req into a concrete pattern. It is total and deterministic:
// out-of-domain numbers are normalized first, unknown archetypes fall back to
// the geometric generator (reported through Pattern.Fallback), and no input
// causes a panic.
func Synthesize(req Request) Pattern {
	req = req.Normalize()
	if !req.Symmetry.Valid() {
		req.Symmetry = None
	}

	requested := req.Archetype
	label := requested
	fallback := false

	var l *lattice
	switch requested {
	case Flower:
		l = flower(req)
	case Traditional:
		req.Archetype = Flower
		l = flower(req)
	case Lotus:
		l = lotus(req)
	case Star:
		l = star(req)
	case Diamond:
		l = diamond(req)
	case Spiral:
		l = spiral(req)
	case Mandala:
		l = mandala(req)
	case Geometric:
		l = geometric(req)
	default:
		req.Archetype = Geometric
		label = Geometric
		fallback = true
		l = geometric(req)
	}

	desc, note := describe(req, label, len(l.dots), len(l.conns))
	return Pattern{
		Dots:         l.dots,
		Connections:  l.conns,
		Archetype:    req.Archetype,
		Symmetry:     req.Symmetry,
		Complexity:   req.Complexity,
		Description:  desc,
		CulturalNote: note,
		GridSize:     req.GridSize,
		Fallback:     fallback,
		Requested:    requested,
	}
}
