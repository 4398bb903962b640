package kolam

// geometricStep is the lattice sampling stride for a complexity level.
func geometricStep(complexity int) int { return max(1, (10-complexity)/3) }

// geometric samples the lattice every step cells and joins points within
// 1.5 steps, which links orthogonal and diagonal neighbours.
func geometric(req Request) *lattice {
	l := newLattice(req.GridSize)
	step := geometricStep(req.Complexity)
	for x := 0; x < req.GridSize; x += step {
		for y := 0; y < req.GridSize; y += step {
			l.add(Dot{X: x, Y: y})
		}
	}
	l.conns = append(l.conns, Connect(l.dots, MaxDistance(float64(step)*1.5))...)
	return l
}
