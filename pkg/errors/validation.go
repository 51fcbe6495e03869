package errors

import (
	"strings"
	"unicode"
)

const maxFieldLen = 256

// ValidateCoordinate checks one component of an artifact coordinate
// (groupId, artifactId or version) decoded from an input document.
//
// Rejected values:
//   - empty or whitespace-only strings
//   - control characters (including null bytes)
//   - the CSV delimiter ',' and the coordinate separator ':'
//   - values longer than 256 bytes
//
// The returned error carries [ErrCodeParse] and names field.
func ValidateCoordinate(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeParse, "%s is missing or empty", field)
	}
	if len(value) > maxFieldLen {
		return New(ErrCodeParse, "%s too long (max %d characters)", field, maxFieldLen)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeParse, "%s contains control characters", field)
		}
	}
	if strings.ContainsAny(value, ",:") {
		return New(ErrCodeParse, "%s %q contains a reserved character", field, value)
	}
	return nil
}
