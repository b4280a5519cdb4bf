package release

import "regexp"

type audioRule struct {
	re    *regexp.Regexp
	value AudioCodec
}

// audioRules is an ordered first-match-wins list. Lossless codecs are
// tested before their lossy supersets so the most specific codec wins:
// DTS-HD HRA before generic DTS-HD, DTS-ES before plain DTS, DD+/E-AC3
// before plain DD/AC3.
var audioRules = []audioRule{
	{regexp.MustCompile(`(?i)\btrue-?hd\b`), AudioTrueHD},
	{regexp.MustCompile(`(?i)\bdts[\s.:-]?x\b`), AudioDTSX},
	{regexp.MustCompile(`(?i)\bdts-?hd[\s.]?ma\b`), AudioDTSHDMA},
	{regexp.MustCompile(`(?i)\bdts-?hd[\s.]?hra?\b`), AudioDTSHDHRA},
	{regexp.MustCompile(`(?i)\bdts-?hd\b`), AudioDTSHD},
	{regexp.MustCompile(`(?i)\bdts-?es\b`), AudioDTSES},
	{regexp.MustCompile(`(?i)\bdts\b`), AudioDTS},
	{regexp.MustCompile(`(?i)\bflac\b`), AudioFLAC},
	{regexp.MustCompile(`(?i)\bl?pcm\b`), AudioPCM},
	{regexp.MustCompile(`(?i)(\bddp|\bdd\+|\be-?ac-?3\b)`), AudioEAC3},
	{regexp.MustCompile(`(?i)\b(dd|ac-?3)\b`), AudioAC3},
	{regexp.MustCompile(`(?i)\baac\b`), AudioAAC},
	{regexp.MustCompile(`(?i)\bopus\b`), AudioOpus},
	{regexp.MustCompile(`(?i)\bmp3\b`), AudioMP3},
}

// Atmos is an object-audio overlay, detected independently of the base
// codec so a release can be truehd + Atmos at the same time.
var atmosRegex = regexp.MustCompile(`(?i)\batmos\b`)

type channelRule struct {
	re    *regexp.Regexp
	value string
}

// Channel layouts are matched both dotted and space-separated because
// the normalizer turns "5.1" into "5 1". No leading boundary: in "DDP5 1"
// the digit follows a letter, which \b would reject.
var channelRules = []channelRule{
	{regexp.MustCompile(`7[\s.]1\b`), "7.1"},
	{regexp.MustCompile(`5[\s.]1\b`), "5.1"},
	{regexp.MustCompile(`2[\s.]0\b`), "2.0"},
	{regexp.MustCompile(`1[\s.]0\b`), "1.0"},
}

// ExtractAudio scans a normalized title for the audio codec, channel
// layout and Atmos modifier. The three pattern sets are independent.
func ExtractAudio(title string) (codec AudioCodec, channels string, atmos bool) {
	codec = AudioUnknown
	for _, rule := range audioRules {
		if rule.re.MatchString(title) {
			codec = rule.value
			break
		}
	}
	for _, rule := range channelRules {
		if rule.re.MatchString(title) {
			channels = rule.value
			break
		}
	}
	return codec, channels, atmosRegex.MatchString(title)
}
