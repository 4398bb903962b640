package kolam

import "math"

const starSpokeThreshold = 6

// star alternates elementCount outer points at center-1 with inner points at
// half that radius, offset by half a step, and zig-zags between them. Above
// complexity 6 the center is spoked to every outer point.
func star(req Request) *lattice {
	l := newLattice(req.GridSize)
	l.add(l.center)

	n := req.ElementCount
	r := float64(outerRadius(req.GridSize))
	step := 2 * math.Pi / float64(n)

	out, outOK := l.ring(n, r, 0)
	in, inOK := l.ring(n, r/2, step/2)

	for i := range n {
		if !outOK[i] {
			continue
		}
		prev := (i - 1 + n) % n
		if inOK[prev] {
			l.link(in[prev], out[i])
		}
		if inOK[i] {
			l.link(out[i], in[i])
		}
	}

	if req.Complexity > starSpokeThreshold {
		for i := range out {
			if outOK[i] {
				l.link(l.center, out[i])
			}
		}
	}
	return l
}
