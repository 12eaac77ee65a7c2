package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxCategoryLength bounds category keys coming from configuration or data files.
const maxCategoryLength = 64

// ValidateCategory validates a category key for use as a band name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No leading or trailing whitespace
//   - Maximum length of 64 characters
func ValidateCategory(name string) error {
	if name == "" {
		return New(ErrCodeInvalidCategory, "category name cannot be empty")
	}

	if len(name) > maxCategoryLength {
		return New(ErrCodeInvalidCategory, "category name too long (max %d characters)", maxCategoryLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCategory, "category name contains invalid control characters")
		}
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidCategory, "category name %q has surrounding whitespace", name)
	}

	return nil
}

// ValidateCategoryOrder validates an ordered list of category keys.
// The list must be non-empty, every entry must pass [ValidateCategory],
// and no key may appear twice.
func ValidateCategoryOrder(order []string) error {
	if len(order) == 0 {
		return New(ErrCodeInvalidCategory, "category order cannot be empty")
	}
	seen := make(map[string]bool, len(order))
	for _, c := range order {
		if err := ValidateCategory(c); err != nil {
			return err
		}
		if seen[c] {
			return New(ErrCodeInvalidCategory, "duplicate category %q", c)
		}
		seen[c] = true
	}
	return nil
}

// colorTokenRegex matches #rgb and #rrggbb hex colors.
var colorTokenRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a palette color token.
// Only hex colors are accepted since tokens are written verbatim into SVG and HTML.
func ValidateColor(token string) error {
	if !colorTokenRegex.MatchString(token) {
		return New(ErrCodeInvalidInput, "invalid color %q (want #rgb or #rrggbb)", token)
	}
	return nil
}

// ValidatePath validates a data file path for safety.
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
