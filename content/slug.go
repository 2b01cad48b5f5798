package content

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
//
//	Slugify("Hello, World! 2024") // "hello-world-2024"
//
// Slugify(Slugify(s)) == Slugify(s) for every s.
func Slugify(s string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// ResolveSlug picks the slug source: the explicit slug when it is not blank, the title otherwise.
func ResolveSlug(explicit, title string) string {
	if strings.TrimSpace(explicit) != "" {
		return Slugify(explicit)
	}
	return Slugify(title)
}
