package kolam

type ruleKind int

const (
	ruleMaxDistance ruleKind = iota
	ruleCenterLinked
	ruleRingCycle
)

// Rule selects how Connect derives edges between already-placed dots.
// Construct one with MaxDistance, CenterLinked or RingCycle.
type Rule struct {
	kind    ruleKind
	maxDist float64
	center  Dot
}

// MaxDistance joins every pair of dots at most d apart.
func MaxDistance(d float64) Rule { return Rule{kind: ruleMaxDistance, maxDist: d} }

// CenterLinked joins center to every other dot at most d away.
func CenterLinked(center Dot, d float64) Rule {
	return Rule{kind: ruleCenterLinked, maxDist: d, center: center}
}

// RingCycle joins each dot to its successor in slice order and closes the loop.
func RingCycle() Rule { return Rule{kind: ruleRingCycle} }

// NearbyDistance is the threshold used when no better rule is known.
const NearbyDistance = 2.0

// Connect derives connections for dots under rule. Pairs are visited in slice
// order (i < j) so the output is deterministic. Coincident dots are never
// joined.
func Connect(dots []Dot, rule Rule) []Connection {
	var out []Connection
	switch rule.kind {
	case ruleMaxDistance:
		for i := range dots {
			for j := i + 1; j < len(dots); j++ {
				if dots[i] != dots[j] && dots[i].Dist(dots[j]) <= rule.maxDist {
					out = append(out, Connection{A: dots[i], B: dots[j]})
				}
			}
		}
	case ruleCenterLinked:
		for _, d := range dots {
			if d != rule.center && rule.center.Dist(d) <= rule.maxDist {
				out = append(out, Connection{A: rule.center, B: d})
			}
		}
	case ruleRingCycle:
		if len(dots) < 2 {
			return nil
		}
		n := len(dots)
		if n == 2 {
			n = 1 // a two-dot "ring" is one edge, not the same edge twice
		}
		for i := range n {
			a, b := dots[i], dots[(i+1)%len(dots)]
			if a != b {
				out = append(out, Connection{A: a, B: b})
			}
		}
	}
	return out
}

// ConnectNearby is the generic fallback: any two dots within distance 2.
func ConnectNearby(dots []Dot) []Connection {
	return Connect(dots, MaxDistance(NearbyDistance))
}

// AutoConnect joins pre-placed dots using the threshold associated with a
// pattern hint. It serves dots that arrive without edges, such as those from a
// prompt fallback or a vision extractor. Unknown hints use ConnectNearby.
func AutoConnect(dots []Dot, gridSize int, hint Archetype) []Connection {
	c := gridSize / 2
	switch hint {
	case Flower, Lotus, Traditional:
		return Connect(dots, CenterLinked(Dot{X: c, Y: c}, 3))
	case Geometric, Diamond:
		return Connect(dots, MaxDistance(1.5))
	case Spiral:
		return Connect(dots, MaxDistance(2))
	default:
		return ConnectNearby(dots)
	}
}
