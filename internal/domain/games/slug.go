package games

import (
	"regexp"
	"strings"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug derives a URL-safe, lowercase, hyphenated identifier from a title.
// Example: "Chrono Trigger" -> "chrono-trigger"
func MakeSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = nonSlug.ReplaceAllString(slug, "")
	slug = multiDash.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
