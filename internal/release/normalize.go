package release

import (
	"regexp"
	"strings"
)

var collapseSpacesRegex = regexp.MustCompile(`\s+`)

// Normalize canonicalizes separators in a raw release title: dots and
// underscores become spaces, runs of whitespace collapse, and the result
// is trimmed. This is the only structural transform applied to a title;
// the original string is kept separately because custom format conditions
// deliberately match punctuation-sensitive patterns like "DD+".
func Normalize(title string) string {
	title = strings.ReplaceAll(title, ".", " ")
	title = strings.ReplaceAll(title, "_", " ")
	title = collapseSpacesRegex.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}
