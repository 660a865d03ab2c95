package config

import (
	"time"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/clipboard"
	"github.com/ziadkadry99/ffsite/internal/debounce"
	"github.com/ziadkadry99/ffsite/internal/pagination"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = ".ffsite.yml"

// EnvPrefix prefixes environment overrides, e.g. FFSITE_PAGE_SIZE.
const EnvPrefix = "FFSITE_"

// DefaultConfig returns a Config with sensible defaults. No content source
// is set.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:      "site",
		PayloadPrefix:  catalog.DefaultLayout.PayloadPrefix,
		ToolName:       "FFmpeg",
		StrictCatalog:  false,
		MaxConcurrency: 8,
		FetchTimeout:   10 * time.Second,
		PageSize:       pagination.DefaultPageSize,
		SearchDebounce: debounce.DefaultDelay,
		CopyConfirm:    clipboard.ConfirmDuration,
		Port:           8080,
		LogLevel:       LogInfo,
	}
}
