package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/natefinch/atomic"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/ffsite/internal/pagination"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FFSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FFSITE_PAGE_SIZE -> page_size, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path. The file is
// replaced atomically.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// ErrNoContentSource is returned by Validate when neither content_dir nor
// content_url is set.
var ErrNoContentSource = errors.New("one of content_dir or content_url is required")

var validLogLevels = map[LogLevel]slog.Level{
	LogDebug: slog.LevelDebug,
	LogInfo:  slog.LevelInfo,
	LogWarn:  slog.LevelWarn,
	LogError: slog.LevelError,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	switch {
	case c.ContentDir == "" && c.ContentURL == "":
		return ErrNoContentSource
	case c.ContentDir != "" && c.ContentURL != "":
		return fmt.Errorf("content_dir and content_url are mutually exclusive")
	}
	if c.ContentURL != "" {
		u, err := url.Parse(c.ContentURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid content_url %q: must be an http(s) URL", c.ContentURL)
		}
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.PayloadPrefix == "" {
		return fmt.Errorf("payload_prefix is required")
	}

	if !pagination.ValidPageSize(c.PageSize) {
		return fmt.Errorf("invalid page_size %d: must be one of %v", c.PageSize, pagination.PageSizes)
	}

	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must be non-negative")
	}
	if c.FetchTimeout < 0 || c.SearchDebounce < 0 || c.CopyConfirm < 0 {
		return fmt.Errorf("fetch_timeout, search_debounce and copy_confirm must be non-negative")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, ok := validLogLevels[c.LogLevel]; c.LogLevel != "" && !ok {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// SlogLevel returns the configured level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	if l, ok := validLogLevels[c.LogLevel]; ok {
		return l
	}
	return slog.LevelInfo
}
