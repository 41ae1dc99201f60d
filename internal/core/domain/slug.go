package domain

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug lowercases s and joins its alphanumeric runs with hyphens
func GenerateSlug(s string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	return slugHyphens.ReplaceAllString(slug, "-")
}
