package guidance

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/kolamstudio/kolam/pkg/kolam"
)

func TestValidateCoercesInvalidHints(t *testing.T) {
	res := Validate(Raw{
		"pattern_type":    "not-a-type",
		"complexity":      float64(99),
		"suggested_count": float64(-5),
	})

	g := res.Guidance
	if !g.PatternType.Valid() {
		t.Errorf("PatternType = %q, want a valid archetype", g.PatternType)
	}
	if g.Complexity != 5 {
		t.Errorf("Complexity = %d, want 5", g.Complexity)
	}
	if g.SuggestedCount != 8 {
		t.Errorf("SuggestedCount = %d, want 8", g.SuggestedCount)
	}

	var fields []string
	for _, c := range res.Coerced {
		fields = append(fields, c.Field)
	}
	for _, want := range []string{FieldPatternType, FieldComplexity, FieldSuggestedCount} {
		if !slices.Contains(fields, want) {
			t.Errorf("Coerced = %v, missing %s", fields, want)
		}
	}
}

func TestValidateAcceptsValidHints(t *testing.T) {
	res := Validate(Raw{
		"pattern_type":      "Lotus",
		"symmetry":          "radial",
		"complexity":        float64(7),
		"elementCount":      float64(12),
		"design_elements":   []any{"petal", "ring"},
		"description":       "a lotus",
		"color_suggestions": []any{"white"},
	})
	if len(res.Coerced) != 0 {
		t.Fatalf("Coerced = %v, want none", res.Coerced)
	}
	g := res.Guidance
	if g.PatternType != kolam.Lotus || g.SymmetryType != kolam.Radial || g.Complexity != 7 || g.SuggestedCount != 12 {
		t.Errorf("Guidance = %+v", g)
	}
	if !slices.Equal(g.DesignElements, []string{"petal", "ring"}) {
		t.Errorf("DesignElements = %v", g.DesignElements)
	}
	if g.Description != "a lotus" {
		t.Errorf("Description = %q", g.Description)
	}
	if len(g.DrawingSteps) == 0 {
		t.Error("DrawingSteps should fall back to defaults")
	}
}

func TestValidateFieldTypes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		ok    bool
	}{
		{"integral float", FieldComplexity, float64(3), true},
		{"int", FieldComplexity, 4, true},
		{"fractional", FieldComplexity, 4.5, false},
		{"string number", FieldComplexity, "4", false},
		{"bool", FieldComplexity, true, false},
		{"zero", FieldComplexity, float64(0), false},
		{"count max", FieldSuggestedCount, float64(MaxCount), true},
		{"count above max", FieldSuggestedCount, float64(MaxCount + 1), false},
		{"count below min", FieldSuggestedCount, float64(2), false},
		{"symmetry number", FieldSymmetryType, float64(1), false},
		{"symmetry label", FieldSymmetryType, "point", true},
		{"archetype nil", FieldPatternType, nil, false},
		{"list of numbers", FieldDrawingSteps, []any{1.0, 2.0}, false},
		{"empty list", FieldDrawingSteps, []any{}, false},
		{"list as string", FieldColorSuggestions, "red", false},
		{"blank text", FieldDescription, "   ", false},
		{"text", FieldCulturalSignificance, "festival", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(Raw{tt.field: tt.value})
			coerced := len(res.Coerced) > 0
			if coerced == tt.ok {
				t.Errorf("Validate(%s=%v): coerced = %v, want %v", tt.field, tt.value, coerced, !tt.ok)
			}
		})
	}
}

func TestValidateEmptyRecord(t *testing.T) {
	res := Validate(nil)
	if len(res.Coerced) != 0 {
		t.Errorf("Coerced = %v, want none for an absent record", res.Coerced)
	}
	if res.Guidance.PatternType != DefaultArchetype || res.Guidance.SymmetryType != DefaultSymmetry {
		t.Errorf("Guidance = %+v, want defaults", res.Guidance)
	}
}

func TestApplyKeepsCallerValues(t *testing.T) {
	base := kolam.Request{Archetype: kolam.Star, Symmetry: kolam.Point, Complexity: 2, ElementCount: 5, GridSize: 9}

	got := Validate(Raw{"pattern_type": "blorp", "complexity": float64(8)}).Apply(base)
	want := base
	want.Complexity = 8
	if got != want {
		t.Errorf("Apply() = %+v, want %+v", got, want)
	}

	if got := Validate(nil).Apply(base); got != base {
		t.Errorf("Apply() with no hints = %+v, want %+v", got, base)
	}
}

func TestParseJSON(t *testing.T) {
	reply := "Here is your design:\n```json\n{\"pattern_type\": \"spiral\", \"complexity\": 6}\n```\n"
	res := ParseJSON([]byte(reply))
	if len(res.Coerced) != 0 {
		t.Fatalf("Coerced = %v", res.Coerced)
	}
	if res.Guidance.PatternType != kolam.Spiral || res.Guidance.Complexity != 6 {
		t.Errorf("Guidance = %+v", res.Guidance)
	}

	for _, bad := range []string{"no json here", "{not json}", ""} {
		res := ParseJSON([]byte(bad))
		if len(res.Coerced) != 1 || res.Guidance.PatternType != DefaultArchetype {
			t.Errorf("ParseJSON(%q) = %+v, want defaults with one coercion", bad, res)
		}
	}
}

func TestExtractRaw(t *testing.T) {
	raw, err := ExtractRaw([]byte(`Sure! {"pattern_type": "lotus", "extra": {"nested": true}} Enjoy.`))
	if err != nil {
		t.Fatalf("ExtractRaw: %v", err)
	}
	if raw["pattern_type"] != "lotus" {
		t.Errorf("pattern_type = %v, want lotus", raw["pattern_type"])
	}
	if _, err := ExtractRaw([]byte("}{")); err == nil {
		t.Error("reversed braces should fail")
	}
}

func TestGuidanceJSON(t *testing.T) {
	data, err := json.Marshal(Defaults())
	if err != nil {
		t.Fatal(err)
	}
	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if res := Validate(raw); len(res.Coerced) != 0 {
		t.Errorf("defaults do not validate cleanly: %v", res.Coerced)
	}
}
