package release

import "regexp"

type sourceRule struct {
	re    *regexp.Regexp
	value Source
}

// sourceRules is an ordered first-match-wins list. Order is load-bearing:
// REMUX is tested before BluRay (a remux always carries a BluRay token but
// must win), WEB-DL before the generic WEB token, and screener variants
// before DVD and the bare SCR token so DVD-SCR never reads as a DVD.
var sourceRules = []sourceRule{
	{regexp.MustCompile(`(?i)\b(remux|bdremux)\b`), SourceRemux},
	{regexp.MustCompile(`(?i)\b(blu-?ray|bd-?rip|br-?rip|bdmv|bd25|bd50|bd66|bd100)\b`), SourceBluRay},
	{regexp.MustCompile(`(?i)\bweb[\s-]?dl\b`), SourceWEBDL},
	{regexp.MustCompile(`(?i)\bweb[\s-]?rip\b`), SourceWEBRip},
	{regexp.MustCompile(`(?i)\bweb\b`), SourceWEBDL},
	{regexp.MustCompile(`(?i)\b(hdtv|pdtv|sdtv|dsr|dvb)\b`), SourceHDTV},
	{regexp.MustCompile(`(?i)\b(dvd[\s-]?scr|bd[\s-]?scr|screener)\b`), SourceScreener},
	{regexp.MustCompile(`(?i)\b(dvd-?rip|dvd[r59]?|ntsc|pal)\b`), SourceDVD},
	{regexp.MustCompile(`(?i)\bscr\b`), SourceScreener},
	{regexp.MustCompile(`(?i)\b(telesync|hd-?ts|ts)\b`), SourceTelesync},
	{regexp.MustCompile(`(?i)\b(telecine|hd-?tc|tc)\b`), SourceTelecine},
	{regexp.MustCompile(`(?i)\b(cam-?rip|hd-?cam|cam)\b`), SourceCAM},
}

// ExtractSource scans a normalized title for a source marker. It returns
// the source, the character offset of the match, and whether anything
// matched.
func ExtractSource(title string) (Source, int, bool) {
	for _, rule := range sourceRules {
		if loc := rule.re.FindStringIndex(title); loc != nil {
			return rule.value, loc[0], true
		}
	}
	return SourceUnknown, -1, false
}
