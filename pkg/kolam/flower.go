package kolam

import "math"

// Complexity thresholds for flower detail.
const (
	flowerMidThreshold  = 5
	flowerRingThreshold = 7
)

// flowerRadius grows with complexity and is capped by the grid.
func flowerRadius(gridSize, complexity int) int {
	return max(1, min(gridSize/2-1, 1+complexity/2))
}

// flower places elementCount petals around the center. Above complexity 5 each
// spoke bends through a mid dot at 0.6 of the petal radius; above 7 an inner
// ring of 2×elementCount points is chained around the flower.
func flower(req Request) *lattice {
	l := newLattice(req.GridSize)
	l.add(l.center)

	n := req.ElementCount
	r := float64(flowerRadius(req.GridSize, req.Complexity))
	step := 2 * math.Pi / float64(n)

	for i := range n {
		theta := float64(i) * step
		petal, ok := l.addPolar(r, theta)
		if !ok {
			continue
		}
		if req.Complexity > flowerMidThreshold {
			mid, ok := l.addPolar(0.6*r, theta)
			if ok && mid != l.center && mid != petal {
				l.link(l.center, mid)
				l.link(mid, petal)
				continue
			}
		}
		l.link(l.center, petal)
	}

	if req.Complexity > flowerRingThreshold {
		pts, ok := l.ring(2*n, 0.8*r, 0)
		for j := range pts {
			k := (j + 1) % len(pts)
			if ok[j] && ok[k] {
				l.link(pts[j], pts[k])
			}
		}
	}
	return l
}
