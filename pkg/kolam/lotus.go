package kolam

import "math"

const lotusOuterThreshold = 4

// lotus is a center with an inner petal ring at center-2. Above complexity 4 an
// outer ring, offset by half a step, is joined to the inner petal that
// precedes it angularly.
func lotus(req Request) *lattice {
	l := newLattice(req.GridSize)
	l.add(l.center)

	n := req.ElementCount
	inner := max(1, req.Center()-2)
	step := 2 * math.Pi / float64(n)

	in, inOK := l.ring(n, float64(inner), 0)
	for i := range in {
		if inOK[i] {
			l.link(l.center, in[i])
		}
	}

	if req.Complexity <= lotusOuterThreshold {
		return l
	}

	outer := max(inner+1, req.Center()-1)
	out, outOK := l.ring(n, float64(outer), step/2)
	for i := range out {
		// Outer i sits halfway between inner i and inner i+1; ties go to i.
		if outOK[i] && inOK[i] {
			l.link(in[i], out[i])
		}
	}
	return l
}
