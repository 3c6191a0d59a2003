package slugify

import (
	"regexp"
	"strings"

	gosimple "github.com/gosimple/slug"
	"github.com/google/uuid"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// Make derives a URL-safe slug from a title. The base slug comes from the
// gosimple slugify utility; a sanitation pass then guarantees the result
// contains only lowercase letters, digits, and single hyphens, with no
// leading or trailing hyphen. A title like "Into the Glade, Uninvited."
// becomes "into-the-glade-uninvited", never "into-the-glade,-uninvited.".
//
// Deterministic and pure: the same title always yields the same slug.
// May return an empty string when the title retains no slug-safe characters.
func Make(title string) string {
	raw := strings.ToLower(gosimple.Make(title))

	raw = invalidChars.ReplaceAllString(raw, "") // keep only a-z, 0-9, hyphens
	raw = multiHyphen.ReplaceAllString(raw, "-") // collapse consecutive hyphens
	return strings.Trim(raw, "-")
}

// MakeUnique returns Make(title) with a random 6-char suffix appended so
// duplicate titles never collide on the slug's unique index. An empty base
// slug (title with no retainable characters) falls back to "post" so the
// result is never empty.
func MakeUnique(title string) string {
	base := Make(title)
	if base == "" {
		base = "post"
	}
	return base + "-" + randomSuffix()
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}
