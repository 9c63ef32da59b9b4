package catalog

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// Slugify derives the URL slug for a title using the shared normalizer
// rules (lowercase, hyphen-separated, ascii-safe). Titles that the
// normalizer rejects fall back to a conservative manual pass so a slug
// is always produced for well-formed headings.
func Slugify(title string) string {
	if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
		return normalized
	}
	return fallbackSlug(title)
}

// IsValidSlug reports whether the value matches the slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

func fallbackSlug(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
