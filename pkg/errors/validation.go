package errors

import (
	"strings"
	"unicode"
)

// Request limits enforced at the CLI and API boundary. The synthesizer
// clamps instead of rejecting.
const (
	MinGridSize   = 3
	MaxGridSize   = 99
	MinComplexity = 1
	MaxComplexity = 9
	MinCount      = 3
	MaxCount      = 64
)

// ValidateGridSize requires an odd size in [MinGridSize, MaxGridSize] so the
// lattice has a single center dot.
func ValidateGridSize(n int) error {
	if n < MinGridSize || n > MaxGridSize {
		return New(ErrCodeInvalidGrid, "grid size must be between %d and %d, got %d", MinGridSize, MaxGridSize, n)
	}
	if n%2 == 0 {
		return New(ErrCodeInvalidGrid, "grid size must be odd, got %d", n)
	}
	return nil
}

// ValidateComplexity requires complexity in [MinComplexity, MaxComplexity].
func ValidateComplexity(n int) error {
	if n < MinComplexity || n > MaxComplexity {
		return New(ErrCodeInvalidComplexity, "complexity must be between %d and %d, got %d", MinComplexity, MaxComplexity, n)
	}
	return nil
}

// ValidateCount requires an element count in [MinCount, MaxCount].
func ValidateCount(n int) error {
	if n < MinCount || n > MaxCount {
		return New(ErrCodeInvalidCount, "element count must be between %d and %d, got %d", MinCount, MaxCount, n)
	}
	return nil
}

// ValidatePath validates a user supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateCacheKey rejects keys that could escape a cache directory or break
// a redis key namespace.
func ValidateCacheKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "cache key cannot be empty")
	}
	if len(key) > 256 {
		return New(ErrCodeInvalidInput, "cache key too long (max 256 characters)")
	}
	for _, pattern := range []string{"..", "\x00", "\\", " "} {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidInput, "cache key contains invalid characters: %q", pattern)
		}
	}
	return nil
}
