package core

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// ShareSlug derives a readable share-link id from couple names, e.g.
// "Alice & Bob" becomes "alice-and-bob-a1b2". The random suffix keeps
// slugs unique across couples with identical names.
func ShareSlug(coupleNames string) string {
	s := strings.ToLower(strings.TrimSpace(coupleNames))
	s = strings.ReplaceAll(s, "&", "and")
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugCollapse.ReplaceAllString(s, "-")
	suffix := uuid.NewString()[:4]
	if s == "" {
		return suffix
	}
	return s + "-" + suffix
}
