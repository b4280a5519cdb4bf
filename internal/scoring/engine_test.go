package scoring

import (
	"testing"

	"github.com/jontstaz/cinephage/internal/format"
	"github.com/jontstaz/cinephage/internal/release"
)

func newTestEngine() *Engine {
	return NewEngine(format.NewRegistry(format.DefaultFormats()...))
}

func TestScoreDeterminism(t *testing.T) {
	engine := newTestEngine()
	profile := DefaultProfile()
	title := "Dune.Part.Two.2024.2160p.WEB-DL.DV.HDR10.DDP5.1.Atmos.H.265-FLUX"

	first := engine.Score(title, profile, Attributes{}, 0, nil)
	second := engine.Score(title, profile, Attributes{}, 0, nil)

	if first.TotalScore != second.TotalScore {
		t.Errorf("expected deterministic score, got %d then %d", first.TotalScore, second.TotalScore)
	}
	if len(first.MatchedFormats) != len(second.MatchedFormats) {
		t.Errorf("expected deterministic matches, got %d then %d",
			len(first.MatchedFormats), len(second.MatchedFormats))
	}
}

func TestScoreQualityOrdering(t *testing.T) {
	engine := newTestEngine()
	profile := DefaultProfile()

	remux := engine.Score("Movie.2024.2160p.BluRay.REMUX.DV.HDR10.TrueHD.Atmos-GRP", profile, Attributes{}, 0, nil)
	webdl := engine.Score("Movie.2024.1080p.WEB-DL.DDP5.1.H.264-GRP", profile, Attributes{}, 0, nil)
	hdtv := engine.Score("Movie.2024.720p.HDTV.x264-GRP", profile, Attributes{}, 0, nil)

	if remux.TotalScore <= webdl.TotalScore {
		t.Errorf("expected remux (%d) to outscore webdl (%d)", remux.TotalScore, webdl.TotalScore)
	}
	if webdl.TotalScore <= hdtv.TotalScore {
		t.Errorf("expected webdl (%d) to outscore hdtv (%d)", webdl.TotalScore, hdtv.TotalScore)
	}
}

func TestScoreBannedRelease(t *testing.T) {
	engine := newTestEngine()
	profile := DefaultProfile()

	result := engine.Score("Movie.2019.1080p.BluRay.x264-YIFY", profile, Attributes{}, 0, nil)

	if !result.IsBanned {
		t.Fatal("expected YIFY release to be banned")
	}
	if len(result.BannedReasons) == 0 {
		t.Error("expected banned reasons to be recorded")
	}
	if result.Accepted() {
		t.Error("banned release must not be accepted")
	}
	// Ban formats contribute reasons, never points
	for _, mf := range result.MatchedFormats {
		if mf.ID == "banned-groups" {
			t.Error("ban format must not appear in matched scoring formats")
		}
	}
}

func TestScoreProfileOverrides(t *testing.T) {
	engine := newTestEngine()
	title := "Movie.2024.1080p.WEB-DL.H.264-GRP"

	base := engine.Score(title, DefaultProfile(), Attributes{}, 0, nil)

	boosted := DefaultProfile()
	boosted.FormatScores = map[string]int{"webdl": 9000}
	override := engine.Score(title, boosted, Attributes{}, 0, nil)

	if override.TotalScore <= base.TotalScore {
		t.Errorf("expected override (%d) to beat default (%d)", override.TotalScore, base.TotalScore)
	}
}

func TestScoreResolutionGate(t *testing.T) {
	engine := newTestEngine()

	profile := DefaultProfile()
	profile.ResolutionOrder = []release.Resolution{release.Resolution1080p}

	allowed := engine.Score("Movie.2024.1080p.WEB-DL.H.264-GRP", profile, Attributes{}, 0, nil)
	if allowed.ResolutionRejected {
		t.Error("1080p must pass a 1080p-only profile")
	}

	rejected := engine.Score("Movie.2024.2160p.WEB-DL.H.265-GRP", profile, Attributes{}, 0, nil)
	if !rejected.ResolutionRejected {
		t.Error("2160p must be rejected by a 1080p-only profile")
	}
	if rejected.Accepted() {
		t.Error("resolution-rejected release must not be accepted")
	}
}

func TestScoreProtocolGate(t *testing.T) {
	engine := newTestEngine()

	profile := DefaultProfile()
	profile.AllowedProtocols = []Protocol{ProtocolUsenet}

	torrent := engine.Score("Movie.2024.1080p.WEB-DL.H.264-GRP", profile, Attributes{Protocol: ProtocolTorrent}, 0, nil)
	if !torrent.ProtocolRejected {
		t.Error("torrent must be rejected by a usenet-only profile")
	}

	usenet := engine.Score("Movie.2024.1080p.WEB-DL.H.264-GRP", profile, Attributes{Protocol: ProtocolUsenet}, 0, nil)
	if usenet.ProtocolRejected {
		t.Error("usenet must pass a usenet-only profile")
	}

	// Unknown protocol is not gated
	unknown := engine.Score("Movie.2024.1080p.WEB-DL.H.264-GRP", profile, Attributes{}, 0, nil)
	if unknown.ProtocolRejected {
		t.Error("unknown protocol must not be rejected")
	}
}

func TestScoreMinimum(t *testing.T) {
	engine := newTestEngine()

	profile := DefaultProfile()
	profile.MinScore = 100000

	result := engine.Score("Movie.2024.1080p.WEB-DL.H.264-GRP", profile, Attributes{}, 0, nil)
	if result.MeetsMinimum {
		t.Error("expected release below an absurd minimum to fail")
	}
	if result.Accepted() {
		t.Error("release below minimum must not be accepted")
	}
}

func TestScoreSizeValidation(t *testing.T) {
	engine := newTestEngine()
	profile := DefaultProfile() // movies 1-80 GB, episodes 100-10240 MB

	const gb = int64(1024 * 1024 * 1024)
	const mb = int64(1024 * 1024)

	tests := []struct {
		name     string
		title    string
		size     int64
		ctx      SizeContext
		rejected bool
	}{
		{"movie in range", "Movie.2024.1080p.WEB-DL.H.264-GRP", 8 * gb, SizeContext{Media: MediaMovie}, false},
		{"movie too small", "Movie.2024.1080p.WEB-DL.H.264-GRP", 300 * mb, SizeContext{Media: MediaMovie}, true},
		{"movie too large", "Movie.2024.2160p.BluRay.REMUX-GRP", 120 * gb, SizeContext{Media: MediaMovie}, true},
		{"episode in range", "Show.S01E01.1080p.WEB-DL.H.264-GRP", 1500 * mb, SizeContext{Media: MediaEpisode, EpisodeCount: 1}, false},
		{"episode too small", "Show.S01E01.720p.WEB.x264-GRP", 40 * mb, SizeContext{Media: MediaEpisode, EpisodeCount: 1}, true},
		{"season pack divides by episodes", "Show.S01.1080p.WEB-DL.H.264-GRP", 20 * gb, SizeContext{Media: MediaEpisode, EpisodeCount: 10}, false},
		{"season pack too large per episode", "Show.S01.1080p.WEB-DL.H.264-GRP", 200 * gb, SizeContext{Media: MediaEpisode, EpisodeCount: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Score(tt.title, profile, Attributes{}, tt.size, &tt.ctx)
			if result.SizeRejected != tt.rejected {
				t.Errorf("expected rejected=%v, got %v (%s)", tt.rejected, result.SizeRejected, result.SizeRejectionReason)
			}
			if tt.rejected && result.SizeRejectionReason == "" {
				t.Error("expected a rejection reason")
			}
		})
	}
}

func TestScoreUnknownSizeSkipsValidation(t *testing.T) {
	engine := newTestEngine()
	profile := DefaultProfile()

	result := engine.Score("Movie.2024.1080p.WEB-DL.H.264-GRP", profile, Attributes{}, 0, &SizeContext{Media: MediaMovie})
	if result.SizeRejected {
		t.Error("unknown size must skip validation")
	}
}
