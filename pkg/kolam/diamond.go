package kolam

const (
	diamondDiagonalThreshold = 6
	diamondLinkDistance      = 2.5
)

// diamond stacks axis-aligned rings (N, S, E, W) at radii sampled by
// complexity. Above complexity 6 each ring of radius >= 2 gains diagonal
// points at half its radius. Dots are joined by proximity.
func diamond(req Request) *lattice {
	l := newLattice(req.GridSize)
	c := l.center
	l.add(c)

	diagonals := req.Complexity > diamondDiagonalThreshold
	for _, r := range radii(outerRadius(req.GridSize), req.Complexity) {
		l.add(Dot{X: c.X + r, Y: c.Y})
		l.add(Dot{X: c.X - r, Y: c.Y})
		l.add(Dot{X: c.X, Y: c.Y + r})
		l.add(Dot{X: c.X, Y: c.Y - r})

		if d := r / 2; diagonals && d > 0 {
			l.add(Dot{X: c.X + d, Y: c.Y + d})
			l.add(Dot{X: c.X + d, Y: c.Y - d})
			l.add(Dot{X: c.X - d, Y: c.Y + d})
			l.add(Dot{X: c.X - d, Y: c.Y - d})
		}
	}

	l.conns = append(l.conns, Connect(l.dots, MaxDistance(diamondLinkDistance))...)
	return l
}
