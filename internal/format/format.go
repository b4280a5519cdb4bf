// Package format implements the declarative custom-format matching
// language: named condition sets evaluated against a parsed release and
// its raw title. Formats are loaded once per search and are read-only
// afterwards, so matching is safe for concurrent use.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jontstaz/cinephage/internal/release"
)

// ConditionType selects what a condition inspects.
type ConditionType string

const (
	ConditionReleaseTitle ConditionType = "release_title"
	ConditionReleaseGroup ConditionType = "release_group"
	ConditionResolution   ConditionType = "resolution"
	ConditionSource       ConditionType = "source"
	ConditionCodec        ConditionType = "codec"
	ConditionHDR          ConditionType = "hdr"
	ConditionLanguage     ConditionType = "language"
)

// Condition is a single test inside a custom format. Regex condition
// types (release_title, release_group) match Value as a regular
// expression; enum condition types compare Value against the parsed
// field. Negate flips the result before combination.
type Condition struct {
	Name     string        `toml:"name" yaml:"name"`
	Type     ConditionType `toml:"type" yaml:"type"`
	Value    string        `toml:"value" yaml:"value"`
	Required bool          `toml:"required" yaml:"required"`
	Negate   bool          `toml:"negate" yaml:"negate"`

	re *regexp.Regexp
}

// CustomFormat is a named, declarative rule that tags a release as
// belonging to a category (quality tier, banned group, special edition)
// for scoring.
type CustomFormat struct {
	ID           string      `toml:"id" yaml:"id"`
	Name         string      `toml:"name" yaml:"name"`
	Category     string      `toml:"category" yaml:"category"`
	Tags         []string    `toml:"tags" yaml:"tags"`
	DefaultScore int         `toml:"default_score" yaml:"default_score"`
	Conditions   []Condition `toml:"conditions" yaml:"conditions"`
}

// CategoryBanned marks formats whose match forces rejection regardless
// of score.
const CategoryBanned = "banned"

// IsBan reports whether a match of this format bans the release.
func (f *CustomFormat) IsBan() bool { return f.Category == CategoryBanned }

// compile validates and pre-compiles every regex condition. A format
// that fails compilation or the safety gate is rejected as a whole: a
// partially compiled format would silently change meaning.
func (f *CustomFormat) compile() error {
	if f.ID == "" {
		return fmt.Errorf("format %q: missing id", f.Name)
	}
	for i := range f.Conditions {
		c := &f.Conditions[i]
		switch c.Type {
		case ConditionReleaseTitle, ConditionReleaseGroup:
			if err := ValidatePattern(c.Value); err != nil {
				return fmt.Errorf("format %q condition %q: %w", f.Name, c.Name, err)
			}
			re, err := regexp.Compile(`(?i)` + c.Value)
			if err != nil {
				return fmt.Errorf("format %q condition %q: %w", f.Name, c.Name, err)
			}
			c.re = re
		case ConditionResolution, ConditionSource, ConditionCodec, ConditionHDR, ConditionLanguage:
			if c.Value == "" {
				return fmt.Errorf("format %q condition %q: empty value", f.Name, c.Name)
			}
		default:
			return fmt.Errorf("format %q condition %q: unknown type %q", f.Name, c.Name, c.Type)
		}
	}
	return nil
}

// Match reports whether a format matches a parsed release and its raw
// title. All required conditions must hold (after negate), and if any
// optional conditions exist at least one of them must hold. This lets a
// quality tier share one required gate (resolution, source, "not remux")
// across a list of interchangeable optional group-name alternatives.
func Match(f *CustomFormat, rel release.ParsedRelease, rawTitle string) bool {
	hasOptional := false
	optionalHit := false

	for i := range f.Conditions {
		c := &f.Conditions[i]
		result := c.evaluate(rel, rawTitle)
		if c.Required {
			if !result {
				return false
			}
			continue
		}
		hasOptional = true
		if result {
			optionalHit = true
		}
	}

	return !hasOptional || optionalHit
}

func (c *Condition) evaluate(rel release.ParsedRelease, rawTitle string) bool {
	var matched bool
	switch c.Type {
	case ConditionReleaseTitle:
		matched = c.re != nil && c.re.MatchString(capInput(rawTitle))
	case ConditionReleaseGroup:
		matched = rel.ReleaseGroup != "" && c.re != nil && c.re.MatchString(rel.ReleaseGroup)
	case ConditionResolution:
		matched = strings.EqualFold(c.Value, string(rel.Resolution))
	case ConditionSource:
		matched = strings.EqualFold(c.Value, string(rel.Source))
	case ConditionCodec:
		matched = strings.EqualFold(c.Value, string(rel.Codec))
	case ConditionHDR:
		matched = strings.EqualFold(c.Value, string(rel.HDR))
	case ConditionLanguage:
		for _, lang := range rel.Languages {
			if strings.EqualFold(c.Value, lang) {
				matched = true
				break
			}
		}
	}
	if c.Negate {
		return !matched
	}
	return matched
}
