package release

import "regexp"

type resolutionRule struct {
	re    *regexp.Regexp
	value Resolution
}

// resolutionRules is an ordered first-match-wins list. 2160p aliases come
// first so "4K UHD" never falls through to a lower class.
var resolutionRules = []resolutionRule{
	{regexp.MustCompile(`(?i)\b(2160p|4k|uhd|ultra\s?hd)\b`), Resolution2160p},
	{regexp.MustCompile(`(?i)\b(1080[pi]|full\s?hd|fhd)\b`), Resolution1080p},
	{regexp.MustCompile(`(?i)\b720p\b`), Resolution720p},
	{regexp.MustCompile(`(?i)\b(480[pi]|576[pi])\b`), Resolution480p},
}

// ExtractResolution scans a normalized title for a resolution marker.
// It returns the resolution, the character offset of the match, and
// whether anything matched.
func ExtractResolution(title string) (Resolution, int, bool) {
	for _, rule := range resolutionRules {
		if loc := rule.re.FindStringIndex(title); loc != nil {
			return rule.value, loc[0], true
		}
	}
	return ResolutionUnknown, -1, false
}
