package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateRegionName validates a region name for safety and correctness.
// Names end up in SVG element ids, cache keys and file paths, so the rules
// are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path traversal sequences (.., //) or backslashes
//   - Maximum length of 256 characters
func ValidateRegionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "region name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "region name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "region name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "region name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a hex color string.
func ValidateHexColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
	}
	return nil
}

// ValidateThresholds checks that a threshold list is strictly descending
// with every entry in [0,1].
func ValidateThresholds(thresholds []float64) error {
	for i, t := range thresholds {
		if t < 0 || t > 1 {
			return New(ErrCodeInvalidConfig, "threshold %g out of range [0,1]", t)
		}
		if i > 0 && t >= thresholds[i-1] {
			return New(ErrCodeInvalidConfig, "thresholds must be strictly descending (got %g after %g)", t, thresholds[i-1])
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
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

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
