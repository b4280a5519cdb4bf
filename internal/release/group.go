package release

import (
	"regexp"
	"strings"
)

// Group extraction runs against the raw title (not the normalized form)
// because the fallback rule needs the original dot/dash separators.
var (
	groupDashRegex    = regexp.MustCompile(`-\s?([A-Za-z0-9]+)\s*$`)
	groupBracketRegex = regexp.MustCompile(`\[([A-Za-z0-9]+)\]\s*$`)
	groupAtRegex      = regexp.MustCompile(`@([A-Za-z0-9]+)`)
	groupCandidateRegex = regexp.MustCompile(`^[A-Za-z0-9]{2,20}$`)
	yearTokenRegex      = regexp.MustCompile(`^\d{4}$`)
)

// groupBlacklist rejects tokens that sit where a release group would but
// are really quality markers, codecs, file extensions, indexer suffixes
// or edition words.
var groupBlacklist = map[string]bool{
	// resolution and quality tokens
	"480p": true, "576p": true, "720p": true, "1080p": true, "1080i": true,
	"2160p": true, "4k": true, "uhd": true, "hd": true, "sd": true,
	"bluray": true, "bdrip": true, "brrip": true, "remux": true,
	"webdl": true, "webrip": true, "web": true, "dl": true, "rip": true,
	"hdtv": true, "pdtv": true, "sdtv": true, "dvdrip": true, "dvd": true,
	"cam": true, "ts": true, "tc": true, "scr": true, "screener": true,
	"proper": true, "repack": true, "rerip": true, "internal": true,
	"limited": true, "unrated": true, "extended": true, "complete": true,
	"multi": true, "dual": true, "subbed": true, "dubbed": true,
	// codec and audio tokens
	"x264": true, "x265": true, "x266": true, "h264": true, "h265": true,
	"hevc": true, "avc": true, "av1": true, "xvid": true, "divx": true,
	"vp9": true, "10bit": true, "8bit": true, "12bit": true,
	"aac": true, "ac3": true, "eac3": true, "dts": true, "dd": true,
	"ddp": true, "dd5": true, "dd7": true, "truehd": true, "atmos": true,
	"flac": true, "opus": true, "mp3": true, "pcm": true,
	// HDR tokens
	"hdr": true, "hdr10": true, "hdr10plus": true, "dv": true, "dovi": true,
	"sdr": true, "hlg": true, "pq": true, "3d": true,
	// file extensions
	"mkv": true, "mp4": true, "avi": true, "m4v": true, "wmv": true,
	"mov": true, "m2ts": true, "srt": true, "nfo": true,
	// indexer suffixes commonly appended after the real group
	"rartv": true, "rarbg": true, "eztv": true, "ettv": true, "tgx": true,
	// generic edition words
	"edition": true, "remastered": true, "directors": true, "theatrical": true,
	"imax": true, "criterion": true, "uncut": true,
}

// ExtractReleaseGroup attempts, in order: a trailing -GROUP suffix, a
// trailing [GROUP] tag, an @GROUP marker, and finally the last dash or
// dot separated token. Candidates must be 2-20 alphanumeric characters
// and survive the blacklist.
func ExtractReleaseGroup(rawTitle string) (string, bool) {
	title := strings.TrimSpace(rawTitle)

	if m := groupDashRegex.FindStringSubmatch(title); m != nil {
		if validGroup(m[1]) {
			return m[1], true
		}
	}
	if m := groupBracketRegex.FindStringSubmatch(title); m != nil {
		if validGroup(m[1]) {
			return m[1], true
		}
	}
	if m := groupAtRegex.FindStringSubmatch(title); m != nil {
		if validGroup(m[1]) {
			return m[1], true
		}
	}

	// Fallback: last dash/dot separated token.
	tokens := strings.FieldsFunc(title, func(r rune) bool {
		return r == '.' || r == '-' || r == ' '
	})
	if len(tokens) > 1 {
		last := tokens[len(tokens)-1]
		if validGroup(last) {
			return last, true
		}
	}

	return "", false
}

func validGroup(candidate string) bool {
	if !groupCandidateRegex.MatchString(candidate) {
		return false
	}
	if yearTokenRegex.MatchString(candidate) {
		return false
	}
	return !groupBlacklist[strings.ToLower(candidate)]
}
