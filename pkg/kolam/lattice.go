package kolam

import "math"

// lattice accumulates the dots and connections of one synthesis call.
// Dots are kept unique in insertion order; connections are appended as given.
type lattice struct {
	size   int
	center Dot
	dots   []Dot
	seen   map[Dot]struct{}
	conns  []Connection
}

func newLattice(gridSize int) *lattice {
	c := gridSize / 2
	return &lattice{
		size:   gridSize,
		center: Dot{X: c, Y: c},
		seen:   make(map[Dot]struct{}),
	}
}

// polar converts a polar offset around the center to a lattice dot.
// Each axis is truncated toward zero; the candidate is discarded, not clamped,
// when it falls outside the grid.
func (l *lattice) polar(r, theta float64) (Dot, bool) {
	cx, cy := float64(l.center.X), float64(l.center.Y)
	d := Dot{
		X: int(cx + r*math.Cos(theta)),
		Y: int(cy + r*math.Sin(theta)),
	}
	return d, d.In(l.size)
}

// add records d if it is on the grid and not yet present.
func (l *lattice) add(d Dot) bool {
	if !d.In(l.size) {
		return false
	}
	if _, ok := l.seen[d]; ok {
		return true
	}
	l.seen[d] = struct{}{}
	l.dots = append(l.dots, d)
	return true
}

// addPolar discretizes and records a polar candidate. ok is false when the
// candidate was discarded.
func (l *lattice) addPolar(r, theta float64) (Dot, bool) {
	d, ok := l.polar(r, theta)
	if !ok {
		return Dot{}, false
	}
	l.add(d)
	return d, true
}

// link appends an edge between a and b unless they coincide or leave the grid.
func (l *lattice) link(a, b Dot) {
	if a == b || !a.In(l.size) || !b.In(l.size) {
		return
	}
	l.conns = append(l.conns, Connection{A: a, B: b})
}

// ring places n points at radius r starting at angle offset. Discarded
// candidates are reported through the parallel ok slice so callers can keep
// angular indexing.
func (l *lattice) ring(n int, r, offset float64) ([]Dot, []bool) {
	pts := make([]Dot, n)
	ok := make([]bool, n)
	step := 2 * math.Pi / float64(n)
	for i := range n {
		pts[i], ok[i] = l.addPolar(r, offset+float64(i)*step)
	}
	return pts, ok
}

// radii selects ring radii in 1..maxR with r % max(1, 10-complexity) == 0,
// always including maxR.
func radii(maxR, complexity int) []int {
	mod := max(1, 10-complexity)
	var out []int
	for r := 1; r <= maxR; r++ {
		if r%mod == 0 || r == maxR {
			out = append(out, r)
		}
	}
	return out
}

// outerRadius is the largest radius a radial generator uses on the grid.
func outerRadius(gridSize int) int { return max(1, gridSize/2-1) }
