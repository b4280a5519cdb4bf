package ui

import (
	"fmt"
	"strings"

	"github.com/jontstaz/cinephage/internal/release"
	"github.com/jontstaz/cinephage/internal/scoring"
)

// RenderParsed renders a parsed release as styled key/value lines for
// terminal output.
func RenderParsed(rel release.ParsedRelease) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("PARSED RELEASE") + "\n")
	writeField(&b, "Title", rel.CleanTitle)
	if rel.Year > 0 {
		writeField(&b, "Year", fmt.Sprintf("%d", rel.Year))
	}
	if rel.Episode != nil {
		writeField(&b, "Episode", describeEpisode(rel.Episode))
	}
	writeField(&b, "Resolution", string(rel.Resolution))
	writeField(&b, "Source", string(rel.Source))
	writeField(&b, "Codec", string(rel.Codec))
	if rel.HDR != release.HDRNone {
		writeField(&b, "HDR", string(rel.HDR))
	}
	if rel.AudioCodec != release.AudioUnknown {
		audio := string(rel.AudioCodec)
		if rel.AudioChannels != "" {
			audio += " " + rel.AudioChannels
		}
		if rel.HasAtmos {
			audio += " Atmos"
		}
		writeField(&b, "Audio", audio)
	}
	if len(rel.Languages) > 0 {
		writeField(&b, "Languages", strings.Join(rel.Languages, ", "))
	}
	if rel.ReleaseGroup != "" {
		writeField(&b, "Group", rel.ReleaseGroup)
	}
	if rel.Edition != "" {
		writeField(&b, "Edition", rel.Edition)
	}

	var flags []string
	if rel.IsProper {
		flags = append(flags, "proper")
	}
	if rel.IsRepack {
		flags = append(flags, "repack")
	}
	if rel.IsRemux {
		flags = append(flags, "remux")
	}
	if rel.Is3D {
		flags = append(flags, "3d")
	}
	if rel.HasHardcodedSubs {
		flags = append(flags, "hardcoded-subs")
	}
	if rel.HasDVWithoutFallback {
		flags = append(flags, "dv-no-fallback")
	}
	if len(flags) > 0 {
		writeField(&b, "Flags", strings.Join(flags, ", "))
	}
	writeField(&b, "Confidence", fmt.Sprintf("%.2f", rel.Confidence))

	return b.String()
}

// RenderResult renders a scoring result with the matched format
// breakdown and any rejection reasons.
func RenderResult(res scoring.Result) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("SCORE") + "\n")
	norm := scoring.Normalize(res.TotalScore)
	b.WriteString(fmt.Sprintf("  %s raw, %s normalized\n",
		StatStyle.Render(fmt.Sprintf("%d", res.TotalScore)),
		StatStyle.Render(fmt.Sprintf("%.0f/1000", norm))))

	if len(res.MatchedFormats) > 0 {
		b.WriteString("\n")
		for _, mf := range res.MatchedFormats {
			score := fmt.Sprintf("%+d", mf.Score)
			if mf.Score >= 0 {
				b.WriteString(fmt.Sprintf("  %s %s\n", SuccessStyle.Render(score), mf.Name))
			} else {
				b.WriteString(fmt.Sprintf("  %s %s\n", WarningStyle.Render(score), mf.Name))
			}
		}
	}

	b.WriteString("\n")
	switch {
	case res.IsBanned:
		b.WriteString(FormatStatusFail("banned: "+strings.Join(res.BannedReasons, ", ")) + "\n")
	case res.SizeRejected:
		b.WriteString(FormatStatusFail("size rejected: "+res.SizeRejectionReason) + "\n")
	case res.ResolutionRejected:
		b.WriteString(FormatStatusFail("resolution not allowed by profile") + "\n")
	case res.ProtocolRejected:
		b.WriteString(FormatStatusFail("protocol not allowed by profile") + "\n")
	case !res.MeetsMinimum:
		b.WriteString(FormatStatusWarn("below profile minimum score") + "\n")
	default:
		b.WriteString(FormatStatusOK("accepted") + "\n")
	}

	return b.String()
}

// RenderUpgrade renders an upgrade decision for two compared releases.
func RenderUpgrade(dec scoring.UpgradeDecision) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("UPGRADE CHECK") + "\n")
	writeField(&b, "Existing", fmt.Sprintf("%d (%s)", dec.Existing.TotalScore, dec.Existing.Release.OriginalTitle))
	writeField(&b, "Candidate", fmt.Sprintf("%d (%s)", dec.Candidate.TotalScore, dec.Candidate.Release.OriginalTitle))
	writeField(&b, "Improvement", fmt.Sprintf("%+d", dec.Improvement))
	b.WriteString("\n")

	if dec.IsUpgrade {
		b.WriteString(FormatStatusOK("candidate is an upgrade") + "\n")
	} else {
		b.WriteString(FormatStatusInfo("candidate is not an upgrade") + "\n")
	}

	return b.String()
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		value = MutedStyle.Render("unknown")
	} else {
		value = ContentStyle.Render(value)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", MutedStyle.Render(name+":"), value))
}

func describeEpisode(ep *release.EpisodeInfo) string {
	switch {
	case ep.IsCompleteSeries:
		return fmt.Sprintf("complete series (S%02d-S%02d)", ep.Seasons[0], ep.Seasons[len(ep.Seasons)-1])
	case ep.IsDaily:
		return fmt.Sprintf("daily %s", ep.AirDate)
	case ep.IsSeasonPack:
		return fmt.Sprintf("season %d pack", ep.Season)
	case ep.AbsoluteEpisode > 0:
		return fmt.Sprintf("absolute episode %d", ep.AbsoluteEpisode)
	case len(ep.Episodes) > 1:
		return fmt.Sprintf("S%02dE%02d-E%02d", ep.Season, ep.Episodes[0], ep.Episodes[len(ep.Episodes)-1])
	case len(ep.Episodes) == 1:
		return fmt.Sprintf("S%02dE%02d", ep.Season, ep.Episodes[0])
	default:
		return fmt.Sprintf("season %d", ep.Season)
	}
}
