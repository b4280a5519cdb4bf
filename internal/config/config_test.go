package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}

	if len(cfg.Formats.Files) != 0 {
		t.Errorf("expected empty format files, got %d", len(cfg.Formats.Files))
	}

	if cfg.Formats.DisableBuiltins {
		t.Error("expected builtins to be enabled by default")
	}

	if cfg.Scoring.ProfileFile != "" {
		t.Errorf("expected empty profile file, got '%s'", cfg.Scoring.ProfileFile)
	}
}

func TestAddFormatFile(t *testing.T) {
	cfg := DefaultConfig()

	// Create temp file for testing
	tmpFile := filepath.Join(t.TempDir(), "formats.toml")
	if err := os.WriteFile(tmpFile, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	// Add valid path
	if err := cfg.AddFormatFile(tmpFile); err != nil {
		t.Fatalf("failed to add format file: %v", err)
	}

	if len(cfg.Formats.Files) != 1 {
		t.Errorf("expected 1 format file, got %d", len(cfg.Formats.Files))
	}

	if cfg.Formats.Files[0] != tmpFile {
		t.Errorf("expected path %s, got %s", tmpFile, cfg.Formats.Files[0])
	}

	// Try to add duplicate
	if err := cfg.AddFormatFile(tmpFile); err == nil {
		t.Error("expected error when adding duplicate path")
	}

	// Try to add non-existent path
	if err := cfg.AddFormatFile("/nonexistent/formats.toml"); err == nil {
		t.Error("expected error when adding non-existent path")
	}

	// Try to add a directory
	if err := cfg.AddFormatFile(t.TempDir()); err == nil {
		t.Error("expected error when adding a directory")
	}
}

func TestRemoveFormatFile(t *testing.T) {
	cfg := DefaultConfig()
	tmpFile := filepath.Join(t.TempDir(), "formats.toml")
	if err := os.WriteFile(tmpFile, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg.AddFormatFile(tmpFile)
	if err := cfg.RemoveFormatFile(tmpFile); err != nil {
		t.Fatalf("failed to remove format file: %v", err)
	}
	if len(cfg.Formats.Files) != 0 {
		t.Error("expected empty format files after removal")
	}

	// Try to remove non-existent path
	if err := cfg.RemoveFormatFile("/nonexistent"); err == nil {
		t.Error("expected error when removing non-existent path")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()

	// Defaults should validate
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation failed with default config: %v", err)
	}

	// Invalid log level
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation to fail with invalid log level")
	}
	cfg.Logging.Level = "debug"
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation failed: %v", err)
	}

	// Missing format file
	cfg.Formats.Files = []string{"/nonexistent/formats.toml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation to fail with missing format file")
	}

	// Existing format file
	tmpFile := filepath.Join(t.TempDir(), "formats.toml")
	if err := os.WriteFile(tmpFile, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Formats.Files = []string{tmpFile}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validation failed with valid format file: %v", err)
	}

	// Missing profile file
	cfg.Scoring.ProfileFile = "/nonexistent/profile.toml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation to fail with missing profile file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Skip this test for now - would require mocking ConfigPath
	// We'll test Save/Load functionality in integration tests
	t.Skip("Skipping Save/Load test - requires mocking")
}
