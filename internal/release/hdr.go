package release

import "regexp"

var (
	dvRegex        = regexp.MustCompile(`(?i)\b(dolby\s?vision|dovi|dv)\b`)
	hdr10PlusRegex = regexp.MustCompile(`(?i)(\bhdr10\+|\bhdr10\s?plus\b|\bhdr10p\b)`)
	hdr10Regex     = regexp.MustCompile(`(?i)\bhdr10\b`)
	hdrRegex       = regexp.MustCompile(`(?i)\bhdr\b`)
	hlgRegex       = regexp.MustCompile(`(?i)\bhlg\b`)
	pqRegex        = regexp.MustCompile(`(?i)\bpq\b`)
	sdrRegex       = regexp.MustCompile(`(?i)\bsdr\b`)
)

// ExtractHDR scans a normalized title for HDR markers. Combination forms
// are resolved first: a Dolby Vision token plus a fallback layer token
// yields the combined format, with a generic HDR token treated as an
// HDR10 fallback. A Dolby Vision token with no fallback layer anywhere in
// the title is a compatibility risk and is reported via dvNoFallback so
// scoring can penalize it.
func ExtractHDR(title string) (format HDRFormat, dvNoFallback bool) {
	if dvRegex.MatchString(title) {
		switch {
		case hdr10PlusRegex.MatchString(title):
			return HDRDolbyVisionHDR10Plus, false
		case hdr10Regex.MatchString(title):
			return HDRDolbyVisionHDR10, false
		case hdrRegex.MatchString(title):
			return HDRDolbyVisionHDR10, false
		case hlgRegex.MatchString(title):
			return HDRDolbyVisionHLG, false
		case sdrRegex.MatchString(title):
			return HDRDolbyVisionSDR, false
		}
		return HDRDolbyVision, true
	}

	switch {
	case hdr10PlusRegex.MatchString(title):
		return HDR10Plus, false
	case hdr10Regex.MatchString(title):
		return HDR10, false
	case hdrRegex.MatchString(title):
		return HDRGeneric, false
	case hlgRegex.MatchString(title):
		return HDRHLG, false
	case pqRegex.MatchString(title):
		return HDRPQ, false
	case sdrRegex.MatchString(title):
		return HDRSDR, false
	}
	return HDRNone, false
}
