package core

import (
	"errors"
	"regexp"
	"strings"
)

var (
	tagSpaces  = regexp.MustCompile(`\s+`)
	tagInvalid = regexp.MustCompile(`[^a-z0-9-]`)
)

// NormalizeTags lowercases, kebab-cases and dedupes vendor library tags,
// dropping anything that normalizes to empty. Input order is preserved.
func NormalizeTags(tags []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		tag = tagSpaces.ReplaceAllString(tag, "-")
		tag = tagInvalid.ReplaceAllString(tag, "")
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ValidateTag rejects empty tags and tags over 30 characters.
func ValidateTag(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return errors.New("tag cannot be empty")
	}
	if len(tag) > 30 {
		return errors.New("tag must be 30 characters or less")
	}
	return nil
}
