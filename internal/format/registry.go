package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/jontstaz/cinephage/internal/release"
)

// Registry is the active set of custom formats for a scoring run. It is
// assembled once (defaults plus file overrides), then treated as
// read-only: matching against it from multiple goroutines is safe.
type Registry struct {
	formats []*CustomFormat
	byID    map[string]*CustomFormat
}

// NewRegistry builds a registry from the given formats. A format whose
// pattern fails to compile or is flagged unsafe is skipped with a
// warning and contributes no matches; a bad format is never fatal.
// A later format reusing an id replaces the earlier one in place, so
// user format files shadow the built-ins.
func NewRegistry(formats ...*CustomFormat) *Registry {
	r := &Registry{byID: make(map[string]*CustomFormat)}
	for _, f := range formats {
		if err := f.compile(); err != nil {
			logrus.WithError(err).Warnf("skipping custom format %q", f.Name)
			continue
		}
		if prev, dup := r.byID[f.ID]; dup {
			logrus.Warnf("custom format %q shadows %q: duplicate id %q", f.Name, prev.Name, f.ID)
			for i := range r.formats {
				if r.formats[i].ID == f.ID {
					r.formats[i] = f
					break
				}
			}
			r.byID[f.ID] = f
			continue
		}
		r.formats = append(r.formats, f)
		r.byID[f.ID] = f
	}
	return r
}

// Formats returns the formats in registration order.
func (r *Registry) Formats() []*CustomFormat { return r.formats }

// Lookup returns the format with the given id, if registered.
func (r *Registry) Lookup(id string) (*CustomFormat, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// MatchAll evaluates every registered format against a parsed release
// and returns the matches in registration order. Identical inputs always
// produce identical matches.
func (r *Registry) MatchAll(rel release.ParsedRelease, rawTitle string) []*CustomFormat {
	var matched []*CustomFormat
	for _, f := range r.formats {
		if Match(f, rel, rawTitle) {
			matched = append(matched, f)
		}
	}
	return matched
}

// formatFile is the on-disk shape shared by TOML and YAML format files.
type formatFile struct {
	Formats []*CustomFormat `toml:"formats" yaml:"formats"`
}

// LoadFile reads custom formats from a TOML or YAML file, picked by
// extension. Validation happens later, at registry construction.
func LoadFile(path string) ([]*CustomFormat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read format file: %w", err)
	}

	var file formatFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported format file extension: %s", path)
	}

	return file.Formats, nil
}
