package format

// DefaultFormats returns the built-in custom format set. Scores are
// calibrated so a well-tagged release accumulates a raw total in the
// thousands, matching the normalization tier table in internal/scoring.
// User format files extend or shadow these via the registry.
func DefaultFormats() []*CustomFormat {
	return []*CustomFormat{
		{
			ID: "remux-tier", Name: "Remux", Category: "source-tier",
			Tags: []string{"source", "lossless"}, DefaultScore: 5000,
			Conditions: []Condition{
				{Name: "Remux source", Type: ConditionSource, Value: "remux", Required: true},
			},
		},
		{
			ID: "bluray-tier", Name: "BluRay Encode", Category: "source-tier",
			Tags: []string{"source"}, DefaultScore: 3500,
			Conditions: []Condition{
				{Name: "BluRay source", Type: ConditionSource, Value: "bluray", Required: true},
				{Name: "Not remux", Type: ConditionReleaseTitle, Value: `\bremux\b`, Required: true, Negate: true},
			},
		},
		{
			ID: "web-tier-1", Name: "WEB Tier 1", Category: "source-tier",
			Tags: []string{"source", "web"}, DefaultScore: 3000,
			Conditions: []Condition{
				{Name: "WEB-DL source", Type: ConditionSource, Value: "webdl", Required: true},
				{Name: "NTb", Type: ConditionReleaseGroup, Value: `^NTb$`},
				{Name: "FLUX", Type: ConditionReleaseGroup, Value: `^FLUX$`},
				{Name: "CasStudio", Type: ConditionReleaseGroup, Value: `^CasStudio$`},
				{Name: "KiNGS", Type: ConditionReleaseGroup, Value: `^KiNGS$`},
				{Name: "monkee", Type: ConditionReleaseGroup, Value: `^monkee$`},
			},
		},
		{
			ID: "web-tier-2", Name: "WEB Tier 2", Category: "source-tier",
			Tags: []string{"source", "web"}, DefaultScore: 2600,
			Conditions: []Condition{
				{Name: "WEB-DL source", Type: ConditionSource, Value: "webdl", Required: true},
				{Name: "CAKES", Type: ConditionReleaseGroup, Value: `^CAKES$`},
				{Name: "GGEZ", Type: ConditionReleaseGroup, Value: `^GGEZ$`},
				{Name: "GGWP", Type: ConditionReleaseGroup, Value: `^GGWP$`},
				{Name: "GLHF", Type: ConditionReleaseGroup, Value: `^GLHF$`},
				{Name: "GOSSIP", Type: ConditionReleaseGroup, Value: `^GOSSIP$`},
			},
		},
		{
			ID: "webdl", Name: "WEB-DL", Category: "source-tier",
			Tags: []string{"source", "web"}, DefaultScore: 2000,
			Conditions: []Condition{
				{Name: "WEB-DL source", Type: ConditionSource, Value: "webdl", Required: true},
			},
		},
		{
			ID: "webrip", Name: "WEBRip", Category: "source-tier",
			Tags: []string{"source", "web"}, DefaultScore: 1200,
			Conditions: []Condition{
				{Name: "WEBRip source", Type: ConditionSource, Value: "webrip", Required: true},
			},
		},
		{
			ID: "hdtv", Name: "HDTV", Category: "source-tier",
			Tags: []string{"source"}, DefaultScore: 600,
			Conditions: []Condition{
				{Name: "HDTV source", Type: ConditionSource, Value: "hdtv", Required: true},
			},
		},
		{
			ID: "res-2160p", Name: "2160p", Category: "resolution",
			DefaultScore: 2000,
			Conditions: []Condition{
				{Name: "2160p", Type: ConditionResolution, Value: "2160p", Required: true},
			},
		},
		{
			ID: "res-1080p", Name: "1080p", Category: "resolution",
			DefaultScore: 1500,
			Conditions: []Condition{
				{Name: "1080p", Type: ConditionResolution, Value: "1080p", Required: true},
			},
		},
		{
			ID: "res-720p", Name: "720p", Category: "resolution",
			DefaultScore: 500,
			Conditions: []Condition{
				{Name: "720p", Type: ConditionResolution, Value: "720p", Required: true},
			},
		},
		{
			ID: "hdr-dv-hdr10plus", Name: "DV HDR10+", Category: "hdr",
			DefaultScore: 1200,
			Conditions: []Condition{
				{Name: "DV with HDR10+ fallback", Type: ConditionHDR, Value: "dolby-vision-hdr10+", Required: true},
			},
		},
		{
			ID: "hdr-dv-hdr10", Name: "DV HDR10", Category: "hdr",
			DefaultScore: 1000,
			Conditions: []Condition{
				{Name: "DV with HDR10 fallback", Type: ConditionHDR, Value: "dolby-vision-hdr10", Required: true},
			},
		},
		{
			ID: "hdr10plus", Name: "HDR10+", Category: "hdr",
			DefaultScore: 800,
			Conditions: []Condition{
				{Name: "HDR10+", Type: ConditionHDR, Value: "hdr10+", Required: true},
			},
		},
		{
			ID: "hdr10", Name: "HDR10", Category: "hdr",
			DefaultScore: 600,
			Conditions: []Condition{
				{Name: "HDR10", Type: ConditionHDR, Value: "hdr10", Required: true},
			},
		},
		{
			ID: "hlg", Name: "HLG", Category: "hdr",
			DefaultScore: 300,
			Conditions: []Condition{
				{Name: "HLG", Type: ConditionHDR, Value: "hlg", Required: true},
			},
		},
		{
			// Dolby Vision with no HDR10/HLG/SDR layer plays back wrong
			// on non-DV displays.
			ID: "dv-no-fallback", Name: "DV (no fallback)", Category: "hdr",
			DefaultScore: -1000,
			Conditions: []Condition{
				{Name: "Dolby Vision", Type: ConditionReleaseTitle, Value: `\b(dv|dovi|dolby[ ._-]?vision)\b`, Required: true},
				{Name: "No fallback layer", Type: ConditionReleaseTitle, Value: `\b(hdr10\+?|hdr|hlg|sdr)\b`, Required: true, Negate: true},
			},
		},
		{
			ID: "atmos", Name: "Atmos", Category: "audio",
			DefaultScore: 400,
			Conditions: []Condition{
				{Name: "Atmos", Type: ConditionReleaseTitle, Value: `\batmos\b`, Required: true},
			},
		},
		{
			ID: "truehd", Name: "TrueHD", Category: "audio",
			DefaultScore: 400,
			Conditions: []Condition{
				{Name: "TrueHD", Type: ConditionReleaseTitle, Value: `\btrue[ ._-]?hd\b`, Required: true},
			},
		},
		{
			ID: "dts-x", Name: "DTS:X", Category: "audio",
			DefaultScore: 350,
			Conditions: []Condition{
				{Name: "DTS:X", Type: ConditionReleaseTitle, Value: `\bdts[ ._:-]?x\b`, Required: true},
			},
		},
		{
			// The classic HD x265 trap: fine at 2160p, re-encode bait at
			// 1080p and below.
			ID: "x265-hd", Name: "x265 (HD)", Category: "codec",
			DefaultScore: -800,
			Conditions: []Condition{
				{Name: "h265 codec", Type: ConditionCodec, Value: "h265", Required: true},
				{Name: "Not 2160p", Type: ConditionResolution, Value: "2160p", Required: true, Negate: true},
				{Name: "Not remux", Type: ConditionSource, Value: "remux", Required: true, Negate: true},
			},
		},
		{
			ID: "proper-repack", Name: "Proper/Repack", Category: "flag",
			DefaultScore: 100,
			Conditions: []Condition{
				{Name: "Proper or repack", Type: ConditionReleaseTitle, Value: `\b(proper|repack|rerip)\b`, Required: true},
			},
		},
		{
			ID: "banned-groups", Name: "Low-effort groups", Category: CategoryBanned,
			Tags: []string{"ban"},
			Conditions: []Condition{
				{Name: "aXXo", Type: ConditionReleaseGroup, Value: `^aXXo$`},
				{Name: "CrEwSaDe", Type: ConditionReleaseGroup, Value: `^CrEwSaDe$`},
				{Name: "FaNGDiNG0", Type: ConditionReleaseGroup, Value: `^FaNGDiNG0$`},
				{Name: "HDTime", Type: ConditionReleaseGroup, Value: `^HDTime$`},
				{Name: "iPlanet", Type: ConditionReleaseGroup, Value: `^iPlanet$`},
				{Name: "KiNGDOM", Type: ConditionReleaseGroup, Value: `^KiNGDOM$`},
				{Name: "mHD", Type: ConditionReleaseGroup, Value: `^m(HD|SD)$`},
				{Name: "nikt0", Type: ConditionReleaseGroup, Value: `^nikt0$`},
				{Name: "PRODJi", Type: ConditionReleaseGroup, Value: `^PRODJi$`},
				{Name: "SANTi", Type: ConditionReleaseGroup, Value: `^SANTi$`},
				{Name: "STUTTERSHIT", Type: ConditionReleaseGroup, Value: `^STUTTERSHIT$`},
				{Name: "YIFY", Type: ConditionReleaseGroup, Value: `^(YIFY|YTS)$`},
			},
		},
		{
			ID: "banned-fake", Name: "Fake release markers", Category: CategoryBanned,
			Tags: []string{"ban"},
			Conditions: []Condition{
				{Name: "Fake markers", Type: ConditionReleaseTitle, Value: `\b(fake|virus|password[ ._-]?protected)\b`, Required: true},
			},
		},
	}
}
