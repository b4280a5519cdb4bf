package release

import "regexp"

type languageRule struct {
	re  *regexp.Regexp
	iso string
}

// languageRules maps language family markers to ISO 639-1 codes. Every
// rule is evaluated (a release can legitimately carry several language
// tags); rule order only fixes the output ordering.
var languageRules = []languageRule{
	{regexp.MustCompile(`(?i)\b(english|eng)\b`), "en"},
	{regexp.MustCompile(`(?i)\b(french|francais|fre|vostfr|truefrench|vff?)\b`), "fr"},
	{regexp.MustCompile(`(?i)\b(german|deutsch|ger)\b`), "de"},
	{regexp.MustCompile(`(?i)\b(spanish|espanol|castellano|latino|spa|esp)\b`), "es"},
	{regexp.MustCompile(`(?i)\b(italian|ita)\b`), "it"},
	{regexp.MustCompile(`(?i)\b(portuguese|brazilian|por)\b`), "pt"},
	{regexp.MustCompile(`(?i)\b(russian|rus)\b`), "ru"},
	{regexp.MustCompile(`(?i)\b(japanese|jpn|jap)\b`), "ja"},
	{regexp.MustCompile(`(?i)\b(korean|kor)\b`), "ko"},
	{regexp.MustCompile(`(?i)\b(chinese|mandarin|cantonese|chi|chs|cht)\b`), "zh"},
	{regexp.MustCompile(`(?i)\b(hindi|hin)\b`), "hi"},
	{regexp.MustCompile(`(?i)\b(arabic|ara)\b`), "ar"},
	{regexp.MustCompile(`(?i)\b(dutch|flemish|dut|nld?)\b`), "nl"},
	{regexp.MustCompile(`(?i)\b(swedish|swe)\b`), "sv"},
	{regexp.MustCompile(`(?i)\b(norwegian|nor)\b`), "no"},
	{regexp.MustCompile(`(?i)\b(danish|dan)\b`), "da"},
	{regexp.MustCompile(`(?i)\b(finnish|fin)\b`), "fi"},
	{regexp.MustCompile(`(?i)\b(polish|pol)\b`), "pl"},
	{regexp.MustCompile(`(?i)\b(czech|cze)\b`), "cs"},
	{regexp.MustCompile(`(?i)\b(hungarian|hun)\b`), "hu"},
	{regexp.MustCompile(`(?i)\b(turkish|tur)\b`), "tr"},
	{regexp.MustCompile(`(?i)\b(greek|gre)\b`), "el"},
	{regexp.MustCompile(`(?i)\b(hebrew|heb)\b`), "he"},
	{regexp.MustCompile(`(?i)\b(thai|tha)\b`), "th"},
	{regexp.MustCompile(`(?i)\b(vietnamese|vie)\b`), "vi"},
	{regexp.MustCompile(`(?i)\b(ukrainian|ukr)\b`), "uk"},
	{regexp.MustCompile(`(?i)\b(romanian|rum|ron)\b`), "ro"},
}

// A MULTi or dual-audio marker means an English track ships alongside
// whatever languages are named.
var multiAudioRegex = regexp.MustCompile(`(?i)\b(multi|dual[\s.-]?audio)\b`)

// ExtractLanguages returns the ISO 639-1 codes detected in a normalized
// title. Titles with no language marker at all default to English.
func ExtractLanguages(title string) []string {
	var langs []string
	seen := map[string]bool{}
	add := func(iso string) {
		if !seen[iso] {
			seen[iso] = true
			langs = append(langs, iso)
		}
	}

	if multiAudioRegex.MatchString(title) {
		add("en")
	}
	for _, rule := range languageRules {
		if rule.re.MatchString(title) {
			add(rule.iso)
		}
	}

	if len(langs) == 0 {
		return []string{"en"}
	}
	return langs
}
