// Package scoring combines matched custom formats, per-profile
// overrides, resolution ordering, size constraints and ban rules into a
// single raw score, normalizes it onto a bounded display scale, and
// decides acceptance and upgrade eligibility.
package scoring

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/jontstaz/cinephage/internal/release"
)

// Protocol identifies how a release would be acquired.
type Protocol string

const (
	ProtocolTorrent Protocol = "torrent"
	ProtocolUsenet  Protocol = "usenet"
)

// UnlimitedUpgrades disables the upgrade score ceiling.
const UnlimitedUpgrades = -1

// Profile is a user-configurable weighting of formats, resolution
// preferences, size bounds and thresholds. Profiles are loaded once per
// search and treated as read-only.
type Profile struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`

	// FormatScores overrides a format's default score by format id.
	FormatScores map[string]int `toml:"format_scores" yaml:"format_scores"`

	// ResolutionOrder is an ordered preference list, not just a cutoff.
	// A release whose resolution is absent from it is rejected.
	ResolutionOrder []release.Resolution `toml:"resolution_order" yaml:"resolution_order"`

	AllowedProtocols []Protocol `toml:"allowed_protocols" yaml:"allowed_protocols"`

	MinScore          int `toml:"min_score" yaml:"min_score"`
	UpgradeUntilScore int `toml:"upgrade_until_score" yaml:"upgrade_until_score"`
	MinScoreIncrement int `toml:"min_score_increment" yaml:"min_score_increment"`

	MinMovieSizeGB   float64 `toml:"min_movie_size_gb" yaml:"min_movie_size_gb"`
	MaxMovieSizeGB   float64 `toml:"max_movie_size_gb" yaml:"max_movie_size_gb"`
	MinEpisodeSizeMB float64 `toml:"min_episode_size_mb" yaml:"min_episode_size_mb"`
	MaxEpisodeSizeMB float64 `toml:"max_episode_size_mb" yaml:"max_episode_size_mb"`

	UpgradesAllowed bool `toml:"upgrades_allowed" yaml:"upgrades_allowed"`
}

// DefaultProfile returns a balanced 1080p/2160p profile with sane size
// bounds and unlimited upgrades.
func DefaultProfile() *Profile {
	return &Profile{
		ID:   "default",
		Name: "HD / UHD",
		FormatScores: map[string]int{},
		ResolutionOrder: []release.Resolution{
			release.Resolution2160p,
			release.Resolution1080p,
			release.Resolution720p,
		},
		AllowedProtocols:  []Protocol{ProtocolTorrent, ProtocolUsenet},
		MinScore:          0,
		UpgradeUntilScore: UnlimitedUpgrades,
		MinScoreIncrement: 500,
		MinMovieSizeGB:    1,
		MaxMovieSizeGB:    80,
		MinEpisodeSizeMB:  100,
		MaxEpisodeSizeMB:  10240,
		UpgradesAllowed:   true,
	}
}

// ResolutionAllowed reports whether the resolution appears in the
// profile's preference order.
func (p *Profile) ResolutionAllowed(r release.Resolution) bool {
	for _, allowed := range p.ResolutionOrder {
		if allowed == r {
			return true
		}
	}
	return false
}

// ProtocolAllowed reports whether the protocol is acceptable. An empty
// allow-list means any protocol.
func (p *Profile) ProtocolAllowed(proto Protocol) bool {
	if len(p.AllowedProtocols) == 0 || proto == "" {
		return true
	}
	for _, allowed := range p.AllowedProtocols {
		if allowed == proto {
			return true
		}
	}
	return false
}

// ScoreFor returns the profile's score for a format id, falling back to
// the given default.
func (p *Profile) ScoreFor(formatID string, defaultScore int) int {
	if override, ok := p.FormatScores[formatID]; ok {
		return override
	}
	return defaultScore
}

// LoadProfile reads a profile from a TOML or YAML file, picked by
// extension.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile file extension: %s", path)
	}

	if p.ID == "" {
		return nil, fmt.Errorf("profile %s: missing id", path)
	}
	if len(p.ResolutionOrder) == 0 {
		return nil, fmt.Errorf("profile %q: empty resolution order", p.ID)
	}
	return &p, nil
}
