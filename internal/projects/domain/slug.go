package domain

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\-_]`)
	hyphenRun      = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe identifier from a title.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "project"
	}
	return s
}

// Matches reports whether p's title or summary contains the already
// lowercased filter.
func (p Project) Matches(lowerFilter string) bool {
	if lowerFilter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), lowerFilter) ||
		strings.Contains(strings.ToLower(p.Summary), lowerFilter)
}
