package release

import "regexp"

type codecRule struct {
	re    *regexp.Regexp
	value Codec
}

// codecRules is an ordered first-match-wins list. HEVC/x265/H.265 all
// collapse to h265 and AVC/x264/H.264 to h264; newer codecs are checked
// before the legacy ones.
var codecRules = []codecRule{
	{regexp.MustCompile(`(?i)\bav1\b`), CodecAV1},
	{regexp.MustCompile(`(?i)\b(vvc|x266|h[\s.]?266)\b`), CodecVVC},
	{regexp.MustCompile(`(?i)\b(hevc|x265|h[\s.]?265)\b`), CodecH265},
	{regexp.MustCompile(`(?i)\b(avc|x264|h[\s.]?264)\b`), CodecH264},
	{regexp.MustCompile(`(?i)\bvp9\b`), CodecVP9},
	{regexp.MustCompile(`(?i)\bvc-?1\b`), CodecVC1},
	{regexp.MustCompile(`(?i)\bxvid\b`), CodecXviD},
	{regexp.MustCompile(`(?i)\bdivx\b`), CodecDivX},
	{regexp.MustCompile(`(?i)\bmpeg-?2\b`), CodecMPEG2},
}

// ExtractCodec scans a normalized title for a video codec marker. It
// returns the codec, the character offset of the match, and whether
// anything matched.
func ExtractCodec(title string) (Codec, int, bool) {
	for _, rule := range codecRules {
		if loc := rule.re.FindStringIndex(title); loc != nil {
			return rule.value, loc[0], true
		}
	}
	return CodecUnknown, -1, false
}
