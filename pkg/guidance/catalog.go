package guidance

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Prompt categories.
const (
	CategoryFloral      = "floral"
	CategoryGeometric   = "geometric"
	CategoryTraditional = "traditional"
	CategoryArtistic    = "artistic"
	CategorySimple      = "simple"
	CategoryComplex     = "complex"
)

var catalog = map[string][]string{
	CategoryFloral: {
		"an 8-petal lotus with rotational symmetry",
		"a sunflower kolam with 12 petals",
		"a rose blossom with 6 petals and mirror symmetry",
		"a jasmine flower ring for the doorstep",
	},
	CategoryGeometric: {
		"a diamond lattice with bilateral symmetry",
		"a square grid of interlocking loops",
		"a hexagon grid with radial symmetry",
		"a simple triangle lattice",
	},
	CategoryTraditional: {
		"a traditional pongal kolam with 8 petals",
		"a temple festival kolam with concentric rings",
		"a margazhi morning kolam for the threshold",
		"a diwali kolam with a lotus at the center",
	},
	CategoryArtistic: {
		"a swirling spiral like a sikku line",
		"a 6-pointed star with radiating arms",
		"a mandala of 5 rings with rotational symmetry",
		"a peacock-inspired flower with 10 petals",
	},
	CategorySimple: {
		"a simple 4-petal flower",
		"a basic square with a dot in the middle",
		"an easy 5-point star",
		"a minimal spiral for beginners",
	},
	CategoryComplex: {
		"an intricate mandala with 12-fold symmetry",
		"an elaborate lotus with complexity 9",
		"a detailed 8-pointed star with spokes",
		"a master-level diamond kolam",
	},
}

var categoryOrder = []string{
	CategoryFloral, CategoryGeometric, CategoryTraditional,
	CategoryArtistic, CategorySimple, CategoryComplex,
}

// Categories lists the prompt categories in display order.
func Categories() []string { return slices.Clone(categoryOrder) }

// Prompts returns the example prompts for category (case-insensitive), or nil
// when the category is unknown.
func Prompts(category string) []string {
	return slices.Clone(catalog[strings.ToLower(strings.TrimSpace(category))])
}

// Random picks an example prompt. An empty category draws from every
// category. ok is false for an unknown category.
func Random(rng *rand.Rand, category string) (prompt string, ok bool) {
	var pool []string
	if category == "" {
		for _, c := range categoryOrder {
			pool = append(pool, catalog[c]...)
		}
	} else {
		pool = Prompts(category)
	}
	if len(pool) == 0 {
		return "", false
	}
	return pool[rng.IntN(len(pool))], true
}
