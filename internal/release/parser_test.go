package release

import "testing"

func TestParseMovie(t *testing.T) {
	rel := Parse("The.Matrix.1999.1080p.BluRay.x264-GROUP")

	if rel.CleanTitle != "The Matrix" {
		t.Errorf("expected clean title 'The Matrix', got %q", rel.CleanTitle)
	}
	if rel.Year != 1999 {
		t.Errorf("expected year 1999, got %d", rel.Year)
	}
	if rel.Resolution != Resolution1080p {
		t.Errorf("expected 1080p, got %q", rel.Resolution)
	}
	if rel.Source != SourceBluRay {
		t.Errorf("expected bluray, got %q", rel.Source)
	}
	if rel.Codec != CodecH264 {
		t.Errorf("expected h264, got %q", rel.Codec)
	}
	if rel.ReleaseGroup != "GROUP" {
		t.Errorf("expected group 'GROUP', got %q", rel.ReleaseGroup)
	}
	if rel.IsTV() {
		t.Error("expected movie, got TV")
	}
	if rel.Confidence < 0.99 || rel.Confidence > 1.0 {
		t.Errorf("expected full confidence, got %.2f", rel.Confidence)
	}
}

func TestParseUHDRemux(t *testing.T) {
	rel := Parse("Dune.Part.Two.2024.2160p.UHD.BluRay.REMUX.DV.HDR10.HEVC.TrueHD.7.1.Atmos-FraMeSToR")

	if rel.CleanTitle != "Dune Part Two" {
		t.Errorf("expected clean title 'Dune Part Two', got %q", rel.CleanTitle)
	}
	if rel.Year != 2024 {
		t.Errorf("expected year 2024, got %d", rel.Year)
	}
	if rel.Resolution != Resolution2160p {
		t.Errorf("expected 2160p, got %q", rel.Resolution)
	}
	if rel.Source != SourceRemux {
		t.Errorf("expected remux to win over bluray, got %q", rel.Source)
	}
	if !rel.IsRemux {
		t.Error("expected IsRemux")
	}
	if rel.Codec != CodecH265 {
		t.Errorf("expected h265, got %q", rel.Codec)
	}
	if rel.HDR != HDRDolbyVisionHDR10 {
		t.Errorf("expected dolby-vision-hdr10, got %q", rel.HDR)
	}
	if rel.HasDVWithoutFallback {
		t.Error("HDR10 fallback present, HasDVWithoutFallback must be false")
	}
	if rel.AudioCodec != AudioTrueHD {
		t.Errorf("expected truehd, got %q", rel.AudioCodec)
	}
	if rel.AudioChannels != "7.1" {
		t.Errorf("expected 7.1 channels, got %q", rel.AudioChannels)
	}
	if !rel.HasAtmos {
		t.Error("expected Atmos")
	}
	if rel.ReleaseGroup != "FraMeSToR" {
		t.Errorf("expected group 'FraMeSToR', got %q", rel.ReleaseGroup)
	}
}

func TestParseGenericHDRRemux(t *testing.T) {
	rel := Parse("Dune.2021.2160p.UHD.BluRay.REMUX.HDR.HEVC.Atmos-FGT")

	if rel.Source != SourceRemux {
		t.Errorf("expected remux to win over the bluray token, got %q", rel.Source)
	}
	if !rel.IsRemux {
		t.Error("expected IsRemux")
	}
	if rel.HDR != HDRGeneric {
		t.Errorf("expected generic hdr, got %q", rel.HDR)
	}
	if !rel.HasAtmos {
		t.Error("expected Atmos")
	}
	if rel.Codec != CodecH265 {
		t.Errorf("expected h265 from HEVC token, got %q", rel.Codec)
	}
}

func TestParseConfidenceOrdering(t *testing.T) {
	rich := Parse("The.Matrix.1999.1080p.BluRay.x264-GROUP")
	bare := Parse("The Matrix")

	for _, rel := range []ParsedRelease{rich, bare} {
		if rel.Confidence < 0 || rel.Confidence > 1 {
			t.Errorf("confidence %.2f outside [0,1] for %q", rel.Confidence, rel.OriginalTitle)
		}
	}
	if rich.Confidence <= bare.Confidence {
		t.Errorf("expected fully-tagged title (%.2f) to dominate bare title (%.2f)",
			rich.Confidence, bare.Confidence)
	}
}

func TestParseTVEpisode(t *testing.T) {
	rel := Parse("Breaking.Bad.S05E14.720p.HDTV.x264-ASAP")

	if rel.CleanTitle != "Breaking Bad" {
		t.Errorf("expected clean title 'Breaking Bad', got %q", rel.CleanTitle)
	}
	if !rel.IsTV() {
		t.Fatal("expected TV release")
	}
	if rel.Episode.Season != 5 {
		t.Errorf("expected season 5, got %d", rel.Episode.Season)
	}
	if len(rel.Episode.Episodes) != 1 || rel.Episode.Episodes[0] != 14 {
		t.Errorf("expected episode 14, got %v", rel.Episode.Episodes)
	}
	if rel.Year != 0 {
		t.Errorf("expected no year, got %d", rel.Year)
	}
	if rel.Source != SourceHDTV {
		t.Errorf("expected hdtv, got %q", rel.Source)
	}
}

func TestParseCompleteSeries(t *testing.T) {
	rel := Parse("The.Wire.S01-S05.COMPLETE.1080p.BluRay.x265-WhoCares")

	if !rel.IsTV() {
		t.Fatal("expected TV release")
	}
	if !rel.Episode.IsCompleteSeries {
		t.Error("expected complete series")
	}
	if len(rel.Episode.Seasons) != 5 {
		t.Errorf("expected 5 seasons, got %v", rel.Episode.Seasons)
	}
	if rel.CleanTitle != "The Wire" {
		t.Errorf("expected clean title 'The Wire', got %q", rel.CleanTitle)
	}
}

func TestParseWEBDL(t *testing.T) {
	rel := Parse("Dune.Part.Two.2024.1080p.WEB-DL.DDP5.1.Atmos.H.264-FLUX")

	if rel.Source != SourceWEBDL {
		t.Errorf("expected webdl, got %q", rel.Source)
	}
	if rel.AudioCodec != AudioEAC3 {
		t.Errorf("expected eac3 from DDP token, got %q", rel.AudioCodec)
	}
	if rel.AudioChannels != "5.1" {
		t.Errorf("expected 5.1 channels, got %q", rel.AudioChannels)
	}
	if !rel.HasAtmos {
		t.Error("expected Atmos")
	}
	if rel.Codec != CodecH264 {
		t.Errorf("expected h264, got %q", rel.Codec)
	}
	if rel.ReleaseGroup != "FLUX" {
		t.Errorf("expected group 'FLUX', got %q", rel.ReleaseGroup)
	}
}

func TestParseYearSelection(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		expectedYear  int
		expectedTitle string
	}{
		{
			// A year inside the name plus the release year: the last
			// valid candidate wins and the clean title keeps the first.
			name:          "year in title",
			title:         "Blade.Runner.2049.2017.1080p.BluRay.x264",
			expectedYear:  2017,
			expectedTitle: "Blade Runner 2049",
		},
		{
			name:          "year-first classic",
			title:         "2001.A.Space.Odyssey.1968.1080p.BluRay.x264",
			expectedYear:  1968,
			expectedTitle: "2001 a Space Odyssey",
		},
		{
			name:          "no year",
			title:         "Some.Movie.1080p.WEB.x264",
			expectedYear:  0,
			expectedTitle: "Some Movie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel := Parse(tt.title)
			if rel.Year != tt.expectedYear {
				t.Errorf("expected year %d, got %d", tt.expectedYear, rel.Year)
			}
			if rel.CleanTitle != tt.expectedTitle {
				t.Errorf("expected clean title %q, got %q", tt.expectedTitle, rel.CleanTitle)
			}
		})
	}
}

func TestParseEditionAndFlags(t *testing.T) {
	rel := Parse("Movie.2020.Directors.Cut.PROPER.REPACK.3D.HC.1080p.BluRay.x264-GRP")

	if rel.Edition != "Director's Cut" {
		t.Errorf("expected Director's Cut, got %q", rel.Edition)
	}
	if !rel.IsProper {
		t.Error("expected proper flag")
	}
	if !rel.IsRepack {
		t.Error("expected repack flag")
	}
	if !rel.Is3D {
		t.Error("expected 3d flag")
	}
	if !rel.HasHardcodedSubs {
		t.Error("expected hardcoded subs flag")
	}
	if rel.IsRemux {
		t.Error("did not expect remux flag")
	}
}

func TestParseBracketPrefix(t *testing.T) {
	rel := Parse("[SubsPlease].Frieren.S01E01.1080p.WEB.x264")

	if rel.CleanTitle != "Frieren" {
		t.Errorf("expected clean title 'Frieren', got %q", rel.CleanTitle)
	}
}

func TestParseSmallWordCasing(t *testing.T) {
	rel := Parse("lord.of.the.rings.2001.1080p.BluRay.x264")

	if rel.CleanTitle != "Lord of the Rings" {
		t.Errorf("expected 'Lord of the Rings', got %q", rel.CleanTitle)
	}
}

func TestParseGarbageInput(t *testing.T) {
	// Parse is total: nonsense still yields a result, just low confidence
	rel := Parse("asdfgh")

	if rel.Resolution != ResolutionUnknown {
		t.Errorf("expected unknown resolution, got %q", rel.Resolution)
	}
	if rel.Source != SourceUnknown {
		t.Errorf("expected unknown source, got %q", rel.Source)
	}
	if rel.Confidence >= 0.5 {
		t.Errorf("expected low confidence, got %.2f", rel.Confidence)
	}
	if rel.CleanTitle == "" {
		t.Error("expected non-empty clean title")
	}
}

func TestParseEmptyInput(t *testing.T) {
	rel := Parse("")

	if rel.CleanTitle != "" {
		t.Errorf("expected empty clean title, got %q", rel.CleanTitle)
	}
	if rel.Confidence > 0.2 {
		t.Errorf("expected minimal confidence, got %.2f", rel.Confidence)
	}
}

func TestParseDVNoFallback(t *testing.T) {
	rel := Parse("Movie.2023.2160p.WEB-DL.DV.HEVC-GRP")

	if rel.HDR != HDRDolbyVision {
		t.Errorf("expected bare dolby-vision, got %q", rel.HDR)
	}
	if !rel.HasDVWithoutFallback {
		t.Error("expected HasDVWithoutFallback")
	}
}

func TestParseLanguages(t *testing.T) {
	rel := Parse("Movie.2020.MULTI.FRENCH.1080p.BluRay.x264-GRP")

	if len(rel.Languages) != 2 || rel.Languages[0] != "en" || rel.Languages[1] != "fr" {
		t.Errorf("expected [en fr], got %v", rel.Languages)
	}
}
