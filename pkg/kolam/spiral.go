package kolam

import "math"

// spiral walks a single Archimedean arm out from the center until the radius
// reaches center-1. Consecutive distinct points are chained into a path.
func spiral(req Request) *lattice {
	l := newLattice(req.GridSize)

	c := float64(req.Complexity)
	maxR := float64(outerRadius(req.GridSize))
	dTheta := 2 * math.Pi / (8 + c)
	dR := 0.3 + c/20

	var prev Dot
	havePrev := false
	for theta, r := 0.0, 0.0; r < maxR; theta, r = theta+dTheta, r+dR {
		d, ok := l.addPolar(r, theta)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			l.link(prev, d)
		}
		prev, havePrev = d, true
	}
	return l
}
