package release

import (
	"fmt"
	"regexp"
	"strconv"
)

// Episode patterns, attempted strictly in this order. The order encodes
// priority: a complete-series range must win over the single season pack
// its first token would otherwise match as.
var (
	seasonRangeRegex  = regexp.MustCompile(`(?i)\bs(\d{1,2})\s?-\s?s?(\d{1,2})\b`)
	seasonsWordRegex  = regexp.MustCompile(`(?i)\bseasons?\s(\d{1,2})\s?(?:-|to)\s?(\d{1,2})\b`)
	seasonPackRegex   = regexp.MustCompile(`(?i)\bs(\d{1,2})\b`)
	seasonWordRegex   = regexp.MustCompile(`(?i)\bseason\s(\d{1,2})\b`)
	episodeRegex      = regexp.MustCompile(`(?i)\bs(\d{1,2})e(\d{1,3})((?:-?e\d{1,3})*)`)
	episodeExtraRegex = regexp.MustCompile(`(?i)e(\d{1,3})`)
	crossRegex        = regexp.MustCompile(`\b(\d{1,2})x(\d{2,3})\b`)
	dailyRegex        = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s(\d{2})\s(\d{2})\b`)
	absoluteRegex     = regexp.MustCompile(`\s-\s(\d{2,4})(?:\s|$)`)
)

// ExtractEpisode recognizes the episode structure of a normalized title.
// It returns the info, the character offset of the episode token (used as
// the title/quality boundary), and whether anything matched. The walk is
// a single left-to-right pattern attempt per category, no backtracking.
func ExtractEpisode(title string) (*EpisodeInfo, int, bool) {
	// Complete-series and multi-season ranges: S01-S10, Seasons 1-9.
	for _, re := range []*regexp.Regexp{seasonRangeRegex, seasonsWordRegex} {
		if m := re.FindStringSubmatchIndex(title); m != nil {
			start := atoi(title[m[2]:m[3]])
			end := atoi(title[m[4]:m[5]])
			if start >= 1 && end >= start {
				info := &EpisodeInfo{
					Season:           start,
					Seasons:          seasonSpan(start, end),
					IsSeasonPack:     true,
					IsCompleteSeries: start == 1,
				}
				return info, m[0], true
			}
		}
	}

	// Single season packs: S01, Season 4. S01E01 never matches the pack
	// pattern because there is no word boundary between the digits and
	// the E, so the episode forms below still get their turn.
	for _, re := range []*regexp.Regexp{seasonPackRegex, seasonWordRegex} {
		if m := re.FindStringSubmatchIndex(title); m != nil {
			season := atoi(title[m[2]:m[3]])
			info := &EpisodeInfo{
				Season:       season,
				Seasons:      []int{season},
				IsSeasonPack: true,
			}
			return info, m[0], true
		}
	}

	// Standard S##E## forms, including multi-episode S08E01E02 and
	// S08E01-E02.
	if m := episodeRegex.FindStringSubmatchIndex(title); m != nil {
		season := atoi(title[m[2]:m[3]])
		episodes := []int{atoi(title[m[4]:m[5]])}
		if m[6] != -1 {
			for _, em := range episodeExtraRegex.FindAllStringSubmatch(title[m[6]:m[7]], -1) {
				episodes = append(episodes, atoi(em[1]))
			}
		}
		info := &EpisodeInfo{
			Season:   season,
			Seasons:  []int{season},
			Episodes: episodes,
		}
		return info, m[0], true
	}

	// 1x05 style.
	if m := crossRegex.FindStringSubmatchIndex(title); m != nil {
		season := atoi(title[m[2]:m[3]])
		episode := atoi(title[m[4]:m[5]])
		info := &EpisodeInfo{
			Season:   season,
			Seasons:  []int{season},
			Episodes: []int{episode},
		}
		return info, m[0], true
	}

	// Daily shows: YYYY.MM.DD (dots already normalized to spaces).
	if m := dailyRegex.FindStringSubmatchIndex(title); m != nil {
		year := atoi(title[m[2]:m[3]])
		month := atoi(title[m[4]:m[5]])
		day := atoi(title[m[6]:m[7]])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			info := &EpisodeInfo{
				IsDaily: true,
				AirDate: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			}
			return info, m[0], true
		}
	}

	// Anime absolute numbering: a bare " - NNN " token. Plausible years
	// are skipped so "Show - 1999" stays a title, not episode 1999.
	if m := absoluteRegex.FindStringSubmatchIndex(title); m != nil {
		abs := atoi(title[m[2]:m[3]])
		if abs < 1900 || abs > 2100 {
			info := &EpisodeInfo{
				AbsoluteEpisode: abs,
			}
			return info, m[0], true
		}
	}

	return nil, -1, false
}

func seasonSpan(start, end int) []int {
	seasons := make([]int, 0, end-start+1)
	for s := start; s <= end; s++ {
		seasons = append(seasons, s)
	}
	return seasons
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
