package guidance

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/kolamstudio/kolam/pkg/kolam"
)

// Defaults applied when a hint is missing or unusable.
const (
	DefaultArchetype  = kolam.Geometric
	DefaultSymmetry   = kolam.Bilateral
	DefaultComplexity = kolam.MidComplexity
	DefaultCount      = 8

	MinCount = kolam.MinElementCount
	MaxCount = 16
)

// Field names accepted in a raw guidance record.
const (
	FieldPatternType          = "pattern_type"
	FieldSymmetryType         = "symmetry_type"
	FieldComplexity           = "complexity"
	FieldSuggestedCount       = "suggested_count"
	FieldDesignElements       = "design_elements"
	FieldDrawingSteps         = "drawing_steps"
	FieldColorSuggestions     = "color_suggestions"
	FieldDescription          = "description"
	FieldCulturalSignificance = "cultural_significance"
)

// aliases maps alternate spellings seen in model output to canonical fields.
var aliases = map[string]string{
	"symmetry":     FieldSymmetryType,
	"elementCount": FieldSuggestedCount,
	"patternType":  FieldPatternType,
}

var (
	defaultDesignElements   = []string{"central dot", "outer ring", "connecting loops"}
	defaultDrawingSteps     = []string{"Place the pulli grid", "Draw the central motif", "Extend lines outward", "Close every loop"}
	defaultColorSuggestions = []string{"white", "red", "yellow"}
)

const (
	defaultDescription          = "A balanced kolam drawn around a dot grid."
	defaultCulturalSignificance = "Kolams are drawn at the threshold each morning to welcome prosperity."
)

// Raw is an untrusted guidance record, typically decoded JSON.
type Raw map[string]any

// Guidance is a fully validated hint record. Every field holds a usable value.
type Guidance struct {
	PatternType          kolam.Archetype `json:"pattern_type"`
	SymmetryType         kolam.Symmetry  `json:"symmetry_type"`
	Complexity           int             `json:"complexity"`
	SuggestedCount       int             `json:"suggested_count"`
	DesignElements       []string        `json:"design_elements"`
	DrawingSteps         []string        `json:"drawing_steps"`
	ColorSuggestions     []string        `json:"color_suggestions"`
	Description          string          `json:"description"`
	CulturalSignificance string          `json:"cultural_significance"`
}

// Coercion records a field that was replaced with its default.
type Coercion struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (c Coercion) String() string { return c.Field + ": " + c.Reason }

// Result is the outcome of validation: the coerced record plus an explicit
// list of every replacement made.
type Result struct {
	Guidance Guidance
	Coerced  []Coercion

	// accepted holds the core fields that were present and valid.
	accepted map[string]bool
}

// Accepted reports whether field was present in the raw record and kept.
func (r Result) Accepted(field string) bool { return r.accepted[field] }

// Defaults returns a guidance record made entirely of defaults.
func Defaults() Guidance {
	return Guidance{
		PatternType:          DefaultArchetype,
		SymmetryType:         DefaultSymmetry,
		Complexity:           DefaultComplexity,
		SuggestedCount:       DefaultCount,
		DesignElements:       append([]string(nil), defaultDesignElements...),
		DrawingSteps:         append([]string(nil), defaultDrawingSteps...),
		ColorSuggestions:     append([]string(nil), defaultColorSuggestions...),
		Description:          defaultDescription,
		CulturalSignificance: defaultCulturalSignificance,
	}
}

// Validate coerces raw into a Guidance. It never fails: each missing or
// unusable field is replaced by its default and listed in Result.Coerced.
// Absent optional fields (lists and text) are defaulted silently.
func Validate(raw Raw) Result {
	raw = canonicalize(raw)
	res := Result{Guidance: Defaults(), accepted: make(map[string]bool)}
	g := &res.Guidance

	if v, ok := raw[FieldPatternType]; ok {
		s, isStr := v.(string)
		if a, valid := kolam.ParseArchetype(s); isStr && valid {
			g.PatternType = a
			res.accepted[FieldPatternType] = true
		} else {
			res.coerce(FieldPatternType, "unknown archetype %v", v)
		}
	}

	if v, ok := raw[FieldSymmetryType]; ok {
		s, isStr := v.(string)
		if sym, valid := kolam.ParseSymmetry(s); isStr && valid {
			g.SymmetryType = sym
			res.accepted[FieldSymmetryType] = true
		} else {
			res.coerce(FieldSymmetryType, "unknown symmetry %v", v)
		}
	}

	if v, ok := raw[FieldComplexity]; ok {
		if n, isInt := integer(v); isInt && n >= kolam.MinComplexity && n <= kolam.MaxComplexity {
			g.Complexity = n
			res.accepted[FieldComplexity] = true
		} else {
			res.coerce(FieldComplexity, "%v is not an integer in [%d,%d]", v, kolam.MinComplexity, kolam.MaxComplexity)
		}
	}

	if v, ok := raw[FieldSuggestedCount]; ok {
		if n, isInt := integer(v); isInt && n >= MinCount && n <= MaxCount {
			g.SuggestedCount = n
			res.accepted[FieldSuggestedCount] = true
		} else {
			res.coerce(FieldSuggestedCount, "%v is not an integer in [%d,%d]", v, MinCount, MaxCount)
		}
	}

	res.list(raw, FieldDesignElements, &g.DesignElements)
	res.list(raw, FieldDrawingSteps, &g.DrawingSteps)
	res.list(raw, FieldColorSuggestions, &g.ColorSuggestions)
	res.text(raw, FieldDescription, &g.Description)
	res.text(raw, FieldCulturalSignificance, &g.CulturalSignificance)
	return res
}

// Apply merges the accepted hints into req. Hints that were absent or coerced
// leave the caller's values untouched.
func (r Result) Apply(req kolam.Request) kolam.Request {
	if r.accepted[FieldPatternType] {
		req.Archetype = r.Guidance.PatternType
	}
	if r.accepted[FieldSymmetryType] {
		req.Symmetry = r.Guidance.SymmetryType
	}
	if r.accepted[FieldComplexity] {
		req.Complexity = r.Guidance.Complexity
	}
	if r.accepted[FieldSuggestedCount] {
		req.ElementCount = r.Guidance.SuggestedCount
	}
	return req
}

// Request builds a synthesis request from the validated guidance alone.
func (r Result) Request(gridSize int) kolam.Request {
	g := r.Guidance
	return kolam.Request{
		Archetype:    g.PatternType,
		Symmetry:     g.SymmetryType,
		Complexity:   g.Complexity,
		ElementCount: g.SuggestedCount,
		GridSize:     gridSize,
	}
}

// ParseJSON extracts the first JSON object embedded in text (model replies
// often wrap it in prose or code fences) and validates it. Unparsable input
// yields an all-defaults result with a single coercion entry.
func ParseJSON(text []byte) Result {
	raw, err := ExtractRaw(text)
	if err != nil {
		return invalid(err.Error())
	}
	return Validate(raw)
}

// ExtractRaw returns the JSON object spanning the first '{' to the last '}'
// of text, without validating its fields.
func ExtractRaw(text []byte) (Raw, error) {
	s := string(text)
	start, end := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return nil, errors.New("no JSON object found")
	}
	var raw Raw
	if err := json.Unmarshal([]byte(s[start:end+1]), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func invalid(reason string) Result {
	res := Result{Guidance: Defaults(), accepted: map[string]bool{}}
	res.Coerced = append(res.Coerced, Coercion{Field: "*", Reason: reason})
	return res
}

func canonicalize(raw Raw) Raw {
	out := make(Raw, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	for alias, field := range aliases {
		if v, ok := raw[alias]; ok {
			if _, has := out[field]; !has {
				out[field] = v
			}
			delete(out, alias)
		}
	}
	return out
}

func (r *Result) coerce(field, format string, args ...any) {
	r.Coerced = append(r.Coerced, Coercion{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (r *Result) list(raw Raw, field string, dst *[]string) {
	v, ok := raw[field]
	if !ok {
		return
	}
	items, isList := v.([]any)
	if !isList || len(items) == 0 {
		r.coerce(field, "expected a non-empty list of strings")
		return
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, isStr := it.(string)
		if !isStr {
			r.coerce(field, "expected a non-empty list of strings")
			return
		}
		out = append(out, s)
	}
	*dst = out
}

func (r *Result) text(raw Raw, field string, dst *string) {
	v, ok := raw[field]
	if !ok {
		return
	}
	s, isStr := v.(string)
	if !isStr || strings.TrimSpace(s) == "" {
		r.coerce(field, "expected a non-empty string")
		return
	}
	*dst = s
}

// integer accepts Go integers and integral float64 values (as produced by
// encoding/json). Strings and booleans are rejected.
func integer(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}
