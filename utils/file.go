package utils

import "strings"

// SanitizeFilename replaces characters that are unsafe as object-store keys.
// The sanitized name is used verbatim as the key, so two uploads with the
// same name land on the same object.
func SanitizeFilename(filename string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, filename)
}
