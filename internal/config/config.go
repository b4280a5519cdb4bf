package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all cinephage configuration
type Config struct {
	Formats FormatConfig  `toml:"formats"`
	Scoring ScoringConfig `toml:"scoring"`
	Logging LoggingConfig `toml:"logging"`
}

// FormatConfig points at user custom format files
type FormatConfig struct {
	// Files are TOML or YAML custom format files loaded on top of the
	// built-in set. Later files shadow earlier ones by format id.
	Files []string `toml:"files"`

	// DisableBuiltins skips the built-in format set entirely.
	DisableBuiltins bool `toml:"disable_builtins"`
}

// ScoringConfig selects the quality profile
type ScoringConfig struct {
	// ProfileFile is an optional TOML or YAML profile; empty means the
	// built-in default profile.
	ProfileFile string `toml:"profile_file"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Formats: FormatConfig{
			Files: []string{},
		},
		Scoring: ScoringConfig{
			ProfileFile: "",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	cinephageDir := filepath.Join(configDir, "cinephage")
	configFile := filepath.Join(cinephageDir, "config.toml")

	return configFile, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load reads the config file, creating it with defaults if it doesn't exist
func Load() (*Config, error) {
	configFile, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Create config directory if needed
	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Load existing config
	var cfg Config
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	// Open file for writing
	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	// Format files and the profile file must exist and be regular files
	checkFiles := c.Formats.Files
	if c.Scoring.ProfileFile != "" {
		checkFiles = append(append([]string{}, checkFiles...), c.Scoring.ProfileFile)
	}
	for _, path := range checkFiles {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("config file %s is a directory", path)
		}
	}

	return nil
}

// AddFormatFile adds a custom format file path
func (c *Config) AddFormatFile(path string) error {
	// Check if path exists
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}

	// Check if already exists
	for _, existing := range c.Formats.Files {
		if existing == path {
			return fmt.Errorf("path already configured: %s", path)
		}
	}

	c.Formats.Files = append(c.Formats.Files, path)
	return nil
}

// RemoveFormatFile removes a custom format file path
func (c *Config) RemoveFormatFile(path string) error {
	for i, existing := range c.Formats.Files {
		if existing == path {
			c.Formats.Files = append(c.Formats.Files[:i], c.Formats.Files[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("path not found: %s", path)
}
