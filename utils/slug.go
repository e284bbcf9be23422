package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateSlug builds a URL-safe slug from a restaurant name: lowercase,
// non-alphanumeric runs collapsed to a single dash, plus a random suffix so
// two restaurants with the same name never collide.
func GenerateSlug(name string) string {
	var b strings.Builder
	lastDash := true // swallow leading dashes
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
