package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxStyleNameLen bounds style names coming from remote catalogs.
const maxStyleNameLen = 128

// ValidateStyleName checks a catalog style name before it reaches the blend
// core. Names must be non-empty, printable and must not collide with the
// implicit "Default" entry.
func ValidateStyleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidStyle, "style name cannot be empty")
	}
	if len(name) > maxStyleNameLen {
		return New(ErrCodeInvalidStyle, "style name too long (max %d characters)", maxStyleNameLen)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidStyle, "style name contains control characters")
		}
	}
	if name == "Default" {
		return New(ErrCodeInvalidStyle, "style name %q is reserved", name)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values for the named field.
func ValidateFinite(code Code, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(code, "%s must be a finite number, got %v", field, v)
	}
	return nil
}

// ValidatePositive rejects values that are not finite and strictly positive.
func ValidatePositive(code Code, field string, v float64) error {
	if err := ValidateFinite(code, field, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(code, "%s must be positive, got %g", field, v)
	}
	return nil
}

// ValidateURL accepts only http and https catalog endpoints.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	return nil
}
