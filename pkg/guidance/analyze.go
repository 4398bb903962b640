package guidance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kolamstudio/kolam/pkg/kolam"
)

// archetypeWords is checked in order; the first archetype with a matching
// word wins, so more specific motifs are listed before generic ones.
var archetypeWords = []struct {
	archetype kolam.Archetype
	words     []string
}{
	{kolam.Lotus, []string{"lotus", "padma", "padmam"}},
	{kolam.Mandala, []string{"mandala", "concentric", "rangoli"}},
	{kolam.Star, []string{"star", "nakshatra"}},
	{kolam.Spiral, []string{"spiral", "swirl", "coil", "vortex"}},
	{kolam.Diamond, []string{"diamond", "square", "rhombus"}},
	{kolam.Flower, []string{"flower", "floral", "petal", "rose", "sunflower", "blossom", "bloom"}},
	{kolam.Traditional, []string{"traditional", "festival", "temple", "diwali", "pongal", "tamil", "margazhi"}},
	{kolam.Geometric, []string{"geometric", "grid", "hexagon", "triangle", "lattice"}},
}

var symmetryWords = []struct {
	symmetry kolam.Symmetry
	words    []string
}{
	{kolam.Rotational, []string{"rotational", "rotating", "pinwheel"}},
	{kolam.Bilateral, []string{"bilateral", "mirror", "mirrored"}},
	{kolam.Radial, []string{"radial", "radiating"}},
	{kolam.Point, []string{"point symmetry", "point-symmetric", "central symmetry"}},
}

var (
	simpleWords    = []string{"simple", "basic", "easy", "minimal", "beginner"}
	intricateWords = []string{"intricate", "complex", "elaborate", "master", "detailed"}
)

const (
	simpleComplexity    = 3
	intricateComplexity = 8
)

var (
	wordRe       = regexp.MustCompile(`[a-z]+(?:-[a-z]+)?`)
	complexityRe = regexp.MustCompile(`complexity\s*(?:of\s*|=\s*|:\s*)?(\d+)`)
	countRe      = regexp.MustCompile(`(\d+)(?:\s*|-)(?:petal(?:ed|s)?|point(?:ed|s)?|fold|dots?|arms?|rings?)\b`)
)

// Analyze extracts a raw guidance record from a free-text prompt. Only hints
// actually found are emitted, so the result can be passed to Validate and
// merged with Apply without overriding caller defaults.
func Analyze(prompt string) Raw {
	text := strings.ToLower(prompt)
	words := make(map[string]bool)
	for _, w := range wordRe.FindAllString(text, -1) {
		words[w] = true
		for _, part := range strings.Split(w, "-") {
			words[part] = true
		}
	}
	has := func(candidates []string) bool {
		for _, c := range candidates {
			if strings.Contains(c, " ") || strings.Contains(c, "-") {
				if strings.Contains(text, c) {
					return true
				}
				continue
			}
			if words[c] || words[c+"s"] {
				return true
			}
		}
		return false
	}

	raw := Raw{}
	for _, aw := range archetypeWords {
		if has(aw.words) {
			raw[FieldPatternType] = string(aw.archetype)
			break
		}
	}
	for _, sw := range symmetryWords {
		if has(sw.words) {
			raw[FieldSymmetryType] = string(sw.symmetry)
			break
		}
	}

	switch {
	case complexityRe.MatchString(text):
		n, _ := strconv.Atoi(complexityRe.FindStringSubmatch(text)[1])
		raw[FieldComplexity] = n
	case has(intricateWords):
		raw[FieldComplexity] = intricateComplexity
	case has(simpleWords):
		raw[FieldComplexity] = simpleComplexity
	}

	if m := countRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		raw[FieldSuggestedCount] = n
	}

	if strings.TrimSpace(prompt) != "" {
		raw[FieldDescription] = strings.TrimSpace(prompt)
	}
	return raw
}

// FromPrompt analyzes prompt and validates the extracted hints.
func FromPrompt(prompt string) Result { return Validate(Analyze(prompt)) }
