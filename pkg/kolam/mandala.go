package kolam

// mandala lays concentric rings at the same radii diamond samples. Ring k
// (1-based) carries elementCount×k points chained around the circle; the
// first ring is also spoked to the center.
func mandala(req Request) *lattice {
	l := newLattice(req.GridSize)
	l.add(l.center)

	for k, r := range radii(outerRadius(req.GridSize), req.Complexity) {
		ring := k + 1
		pts, ok := l.ring(req.ElementCount*ring, float64(r), 0)
		for j := range pts {
			next := (j + 1) % len(pts)
			if ok[j] && ok[next] {
				l.link(pts[j], pts[next])
			}
			if ring == 1 && ok[j] {
				l.link(l.center, pts[j])
			}
		}
	}
	return l
}
