package errors

import (
	"testing"
)

func TestValidateGridSize(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"min", 3, false},
		{"typical", 11, false},
		{"max", 99, false},

		{"too small", 1, true},
		{"zero", 0, true},
		{"even", 8, true},
		{"too large", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGridSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGridSize(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidGrid) {
				t.Errorf("ValidateGridSize(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidGrid)
			}
		})
	}
}

func TestValidateComplexity(t *testing.T) {
	for _, n := range []int{1, 5, 9} {
		if err := ValidateComplexity(n); err != nil {
			t.Errorf("ValidateComplexity(%d) = %v", n, err)
		}
	}
	for _, n := range []int{0, 10, -1} {
		if err := ValidateComplexity(n); !Is(err, ErrCodeInvalidComplexity) {
			t.Errorf("ValidateComplexity(%d) = %v, want %v", n, err, ErrCodeInvalidComplexity)
		}
	}
}

func TestValidateCount(t *testing.T) {
	for _, n := range []int{3, 8, 64} {
		if err := ValidateCount(n); err != nil {
			t.Errorf("ValidateCount(%d) = %v", n, err)
		}
	}
	for _, n := range []int{2, 65} {
		if err := ValidateCount(n); !Is(err, ErrCodeInvalidCount) {
			t.Errorf("ValidateCount(%d) = %v, want %v", n, err, ErrCodeInvalidCount)
		}
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "out/lotus.svg", false},
		{"absolute", "/tmp/lotus.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCacheKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"pattern key", "kolam:pattern:3f2a", false},
		{"artifact key", "kolam:artifact:svg:9c1b", false},

		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"space", "a b", true},
		{"backslash", "a\\b", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCacheKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCacheKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
