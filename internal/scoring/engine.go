package scoring

import (
	"fmt"

	"github.com/jontstaz/cinephage/internal/format"
	"github.com/jontstaz/cinephage/internal/release"
)

// MediaType selects which size bounds apply.
type MediaType string

const (
	MediaMovie   MediaType = "movie"
	MediaEpisode MediaType = "episode"
)

// SizeContext tells the engine how to interpret a file size. For season
// packs EpisodeCount spreads the total across episodes.
type SizeContext struct {
	Media        MediaType
	EpisodeCount int
}

// Attributes carries per-release facts that do not live in the title.
type Attributes struct {
	Protocol Protocol
}

// MatchedFormat records one format hit and the score it contributed
// (after any profile override).
type MatchedFormat struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Result is the structured outcome of scoring one release against one
// profile. Rejections are business outcomes, not errors.
type Result struct {
	Release        release.ParsedRelease `json:"release"`
	TotalScore     int                   `json:"totalScore"`
	MatchedFormats []MatchedFormat       `json:"matchedFormats"`

	IsBanned      bool     `json:"isBanned"`
	BannedReasons []string `json:"bannedReasons,omitempty"`

	SizeRejected        bool   `json:"sizeRejected"`
	SizeRejectionReason string `json:"sizeRejectionReason,omitempty"`

	ResolutionRejected bool `json:"resolutionRejected"`
	ProtocolRejected   bool `json:"protocolRejected"`

	MeetsMinimum bool `json:"meetsMinimum"`
}

// Accepted reports whether nothing disqualified the release.
func (r Result) Accepted() bool {
	return !r.IsBanned && !r.SizeRejected && !r.ResolutionRejected &&
		!r.ProtocolRejected && r.MeetsMinimum
}

// Engine scores releases against a fixed format registry. It holds no
// mutable state: identical inputs always produce identical results.
type Engine struct {
	registry *format.Registry
}

// NewEngine wraps a registry. The registry must not be mutated while the
// engine is in use.
func NewEngine(registry *format.Registry) *Engine {
	return &Engine{registry: registry}
}

// Score parses a title and evaluates it against a profile. sizeBytes of
// zero means the size is unknown and size validation is skipped; sizeCtx
// may be nil for the same effect.
func (e *Engine) Score(title string, profile *Profile, attrs Attributes, sizeBytes int64, sizeCtx *SizeContext) Result {
	rel := release.Parse(title)
	return e.ScoreParsed(rel, profile, attrs, sizeBytes, sizeCtx)
}

// ScoreParsed scores an already-parsed release. Useful when the caller
// parses once and scores against several profiles.
func (e *Engine) ScoreParsed(rel release.ParsedRelease, profile *Profile, attrs Attributes, sizeBytes int64, sizeCtx *SizeContext) Result {
	result := Result{Release: rel}

	for _, f := range e.registry.MatchAll(rel, rel.OriginalTitle) {
		if f.IsBan() {
			result.IsBanned = true
			result.BannedReasons = append(result.BannedReasons, f.Name)
			continue
		}
		score := profile.ScoreFor(f.ID, f.DefaultScore)
		result.MatchedFormats = append(result.MatchedFormats, MatchedFormat{
			ID:    f.ID,
			Name:  f.Name,
			Score: score,
		})
		result.TotalScore += score
	}

	if !profile.ResolutionAllowed(rel.Resolution) {
		result.ResolutionRejected = true
	}
	if !profile.ProtocolAllowed(attrs.Protocol) {
		result.ProtocolRejected = true
	}
	if sizeBytes > 0 && sizeCtx != nil {
		result.SizeRejected, result.SizeRejectionReason = validateSize(profile, sizeBytes, *sizeCtx)
	}
	result.MeetsMinimum = result.TotalScore >= profile.MinScore

	return result
}

const (
	bytesPerGB = 1024 * 1024 * 1024
	bytesPerMB = 1024 * 1024
)

func validateSize(profile *Profile, sizeBytes int64, ctx SizeContext) (rejected bool, reason string) {
	switch ctx.Media {
	case MediaMovie:
		sizeGB := float64(sizeBytes) / bytesPerGB
		if profile.MinMovieSizeGB > 0 && sizeGB < profile.MinMovieSizeGB {
			return true, fmt.Sprintf("%.2f GB below movie minimum %.2f GB", sizeGB, profile.MinMovieSizeGB)
		}
		if profile.MaxMovieSizeGB > 0 && sizeGB > profile.MaxMovieSizeGB {
			return true, fmt.Sprintf("%.2f GB above movie maximum %.2f GB", sizeGB, profile.MaxMovieSizeGB)
		}
	case MediaEpisode:
		episodes := ctx.EpisodeCount
		if episodes < 1 {
			episodes = 1
		}
		sizeMB := float64(sizeBytes) / bytesPerMB / float64(episodes)
		if profile.MinEpisodeSizeMB > 0 && sizeMB < profile.MinEpisodeSizeMB {
			return true, fmt.Sprintf("%.0f MB/episode below minimum %.0f MB", sizeMB, profile.MinEpisodeSizeMB)
		}
		if profile.MaxEpisodeSizeMB > 0 && sizeMB > profile.MaxEpisodeSizeMB {
			return true, fmt.Sprintf("%.0f MB/episode above maximum %.0f MB", sizeMB, profile.MaxEpisodeSizeMB)
		}
	}
	return false, ""
}
