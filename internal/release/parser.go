package release

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	yearRegex          = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	properRegex        = regexp.MustCompile(`(?i)\bproper\b`)
	repackRegex        = regexp.MustCompile(`(?i)\b(repack|rerip)\b`)
	remuxRegex         = regexp.MustCompile(`(?i)\bremux\b`)
	threeDRegex        = regexp.MustCompile(`(?i)\b3d\b`)
	hardcodedSubsRegex = regexp.MustCompile(`(?i)\b(hc|hardcoded|hardsubs?|hardsubbed|korsub)\b`)
	bracketPrefixRegex = regexp.MustCompile(`^\s*(\[[^\]]*\]\s*)+`)
)

type editionRule struct {
	re    *regexp.Regexp
	value string
}

// editionRules is an ordered first-match-wins list.
var editionRules = []editionRule{
	{regexp.MustCompile(`(?i)\bdirector'?s\s?cut\b`), "Director's Cut"},
	{regexp.MustCompile(`(?i)\bfinal\s?cut\b`), "Final Cut"},
	{regexp.MustCompile(`(?i)\bextended(\s?(cut|edition))?\b`), "Extended"},
	{regexp.MustCompile(`(?i)\btheatrical(\s?(cut|edition))?\b`), "Theatrical"},
	{regexp.MustCompile(`(?i)\bunrated\b`), "Unrated"},
	{regexp.MustCompile(`(?i)\buncut\b`), "Uncut"},
	{regexp.MustCompile(`(?i)\bremastered\b`), "Remastered"},
	{regexp.MustCompile(`(?i)\bimax(\s?enhanced)?\b`), "IMAX"},
	{regexp.MustCompile(`(?i)\bcriterion(\s?(collection|edition))?\b`), "Criterion"},
	{regexp.MustCompile(`(?i)\bspecial\s?edition\b`), "Special Edition"},
	{regexp.MustCompile(`(?i)\banniversary(\s?edition)?\b`), "Anniversary Edition"},
	{regexp.MustCompile(`(?i)\bopen\s?matte\b`), "Open Matte"},
	{regexp.MustCompile(`(?i)\bultimate(\s?(cut|edition))?\b`), "Ultimate"},
}

// smallWords stay lowercase when title-casing, except as the first word.
var smallWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "in": true, "nor": true,
	"of": true, "on": true, "or": true, "so": true, "the": true,
	"to": true, "up": true, "yet": true,
}

// Confidence weights. The sum of all weights plus the base is 1.0, so
// the clamp only matters for pathological inputs.
const (
	confidenceBase        = 0.1
	confidenceResolution  = 0.2
	confidenceSource      = 0.2
	confidenceCodec       = 0.15
	confidenceYear        = 0.15
	confidenceGroup       = 0.1
	confidenceTitleLength = 0.1
)

// Parse extracts structured quality and episode metadata from a raw
// release title. It is a total function: malformed input never fails,
// unresolved fields come back as unknown/defaults with a lower
// confidence. Parse holds no state and is safe for concurrent use.
func Parse(title string) ParsedRelease {
	normalized := Normalize(title)

	resolution, resOffset, resFound := ExtractResolution(normalized)
	source, srcOffset, srcFound := ExtractSource(normalized)
	codec, _, codecFound := ExtractCodec(normalized)
	audioCodec, audioChannels, hasAtmos := ExtractAudio(normalized)
	hdr, dvNoFallback := ExtractHDR(normalized)
	languages := ExtractLanguages(normalized)
	episode, epOffset, epFound := ExtractEpisode(normalized)
	group, groupFound := ExtractReleaseGroup(title)
	year, yearOffset := extractYear(normalized)

	parsed := ParsedRelease{
		OriginalTitle:        title,
		Year:                 year,
		Resolution:           resolution,
		Source:               source,
		Codec:                codec,
		HDR:                  hdr,
		AudioCodec:           audioCodec,
		AudioChannels:        audioChannels,
		HasAtmos:             hasAtmos,
		Episode:              episode,
		Languages:            languages,
		ReleaseGroup:         group,
		Edition:              extractEdition(normalized),
		IsProper:             properRegex.MatchString(normalized),
		IsRepack:             repackRegex.MatchString(normalized),
		IsRemux:              source == SourceRemux || remuxRegex.MatchString(normalized),
		Is3D:                 threeDRegex.MatchString(normalized),
		HasHardcodedSubs:     hardcodedSubsRegex.MatchString(normalized),
		HasDVWithoutFallback: dvNoFallback,
	}

	parsed.CleanTitle = cleanTitle(normalized, epOffset, epFound, resOffset, resFound, srcOffset, srcFound, yearOffset)

	confidence := confidenceBase
	if resFound {
		confidence += confidenceResolution
	}
	if srcFound {
		confidence += confidenceSource
	}
	if codecFound {
		confidence += confidenceCodec
	}
	if year > 0 {
		confidence += confidenceYear
	}
	if groupFound {
		confidence += confidenceGroup
	}
	if n := len(parsed.CleanTitle); n >= 2 && n <= 100 {
		confidence += confidenceTitleLength
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	parsed.Confidence = confidence

	return parsed
}

// extractYear finds the release year: a 4-digit 19xx/20xx token bounded
// to 1900..currentYear+2. When a title contains several candidates (a
// year inside the name plus the release year) the last one wins, which
// also keeps "Blade Runner 2049 2017" parsing as the 2017 release.
func extractYear(title string) (year, offset int) {
	maxYear := time.Now().Year() + 2
	for _, m := range yearRegex.FindAllStringSubmatchIndex(title, -1) {
		y := atoi(title[m[2]:m[3]])
		if y >= 1900 && y <= maxYear {
			year = y
			offset = m[0]
		}
	}
	if year == 0 {
		return 0, -1
	}
	return year, offset
}

func extractEdition(title string) string {
	for _, rule := range editionRules {
		if rule.re.MatchString(title) {
			return rule.value
		}
	}
	return ""
}

// cleanTitle derives the display title from the normalized string. TV
// releases start from the substring before the episode token; then the
// cutoff moves left to the earliest of the resolution and source match
// offsets and, for movies only, the offset just before the detected year.
func cleanTitle(normalized string, epOffset int, epFound bool, resOffset int, resFound bool, srcOffset int, srcFound bool, yearOffset int) string {
	base := normalized
	if epFound && epOffset >= 0 && epOffset <= len(base) {
		base = base[:epOffset]
	}

	cutoff := len(base)
	if resFound && resOffset < cutoff {
		cutoff = resOffset
	}
	if srcFound && srcOffset < cutoff {
		cutoff = srcOffset
	}
	if !epFound && yearOffset >= 0 && yearOffset < cutoff {
		cutoff = yearOffset
	}

	title := base[:cutoff]
	title = bracketPrefixRegex.ReplaceAllString(title, "")
	title = strings.Trim(title, " -_()[]")
	title = collapseSpacesRegex.ReplaceAllString(title, " ")
	return titleCase(title)
}

// titleCase title-cases a cleaned name, keeping small connective words
// lowercase except in first position.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	caser := cases.Title(language.English)
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && smallWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = caser.String(lower)
	}
	return strings.Join(words, " ")
}
