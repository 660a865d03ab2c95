package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.ContentDir = "content"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.PageSize != 12 {
		t.Errorf("expected default page_size 12, got %d", cfg.PageSize)
	}
	if cfg.SearchDebounce != 300*time.Millisecond {
		t.Errorf("expected default search_debounce 300ms, got %s", cfg.SearchDebounce)
	}
	if cfg.CopyConfirm != 2*time.Second {
		t.Errorf("expected default copy_confirm 2s, got %s", cfg.CopyConfirm)
	}
	if cfg.PayloadPrefix != "ffmpeg_" {
		t.Errorf("expected default payload_prefix ffmpeg_, got %q", cfg.PayloadPrefix)
	}
	if cfg.MaxConcurrency != 8 {
		t.Errorf("expected default max_concurrency 8, got %d", cfg.MaxConcurrency)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ffsite.yml")

	original := validConfig()
	original.ContentDir = ""
	original.ContentURL = "https://example.com/content"
	original.ToolName = "GStreamer"
	original.PageSize = 24
	original.StrictCatalog = true
	original.FetchTimeout = 3 * time.Second
	original.SearchDebounce = 150 * time.Millisecond

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if *loaded != *original {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.PageSize != 12 {
		t.Errorf("expected default page size, got %d", cfg.PageSize)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := validConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FFSITE_PAGE_SIZE", "48")
	t.Setenv("FFSITE_TOOL_NAME", "ffmpeg-next")
	t.Setenv("FFSITE_SEARCH_DEBOUNCE", "1s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.PageSize != 48 {
		t.Errorf("env override failed: got %d, want 48", loaded.PageSize)
	}
	if loaded.ToolName != "ffmpeg-next" {
		t.Errorf("env override failed: got %q", loaded.ToolName)
	}
	if loaded.SearchDebounce != time.Second {
		t.Errorf("env override failed: got %s", loaded.SearchDebounce)
	}
	if loaded.ContentDir != "content" {
		t.Errorf("file value lost: got %q", loaded.ContentDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("page_size: [12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("config should be valid, got: %v", err)
	}
}

func TestValidateNoContentSource(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, ErrNoContentSource) {
		t.Errorf("expected ErrNoContentSource, got %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"both sources", func(c *Config) { c.ContentURL = "https://example.com" }},
		{"bad url scheme", func(c *Config) { c.ContentDir = ""; c.ContentURL = "ftp://example.com" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"empty payload prefix", func(c *Config) { c.PayloadPrefix = "" }},
		{"page size not offered", func(c *Config) { c.PageSize = 10 }},
		{"negative concurrency", func(c *Config) { c.MaxConcurrency = -1 }},
		{"negative timeout", func(c *Config) { c.FetchTimeout = -time.Second }},
		{"negative debounce", func(c *Config) { c.SearchDebounce = -1 }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = LogDebug
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("got %v", cfg.SlogLevel())
	}
	cfg.LogLevel = ""
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("empty level should default to info, got %v", cfg.SlogLevel())
	}
}

func TestDetectContentDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if got := detectContentDir(); got != "" {
		t.Errorf("expected no detection, got %q", got)
	}
	if err := os.MkdirAll(filepath.Join("content", "graphs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("content", "graphs", "general.json"), []byte(`{"graphs":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := detectContentDir(); got != "content" {
		t.Errorf("detectContentDir() = %q, want content", got)
	}
}

func TestValidateURL(t *testing.T) {
	if err := validateURL("https://example.com/x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"", "example.com", "file:///tmp"} {
		if err := validateURL(bad); err == nil {
			t.Errorf("validateURL(%q) should fail", bad)
		}
	}
}
