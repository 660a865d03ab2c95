package config

import "time"

// LogLevel names a slog level.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level ffsite configuration, corresponding to .ffsite.yml.
type Config struct {
	// Exactly one content source is set.
	ContentDir string `yaml:"content_dir,omitempty" koanf:"content_dir"`
	ContentURL string `yaml:"content_url,omitempty" koanf:"content_url"`

	OutputDir     string `yaml:"output_dir" koanf:"output_dir"`
	StaticDir     string `yaml:"static_dir,omitempty" koanf:"static_dir"`
	PayloadPrefix string `yaml:"payload_prefix" koanf:"payload_prefix"`
	ToolName      string `yaml:"tool_name" koanf:"tool_name"`

	StrictCatalog  bool          `yaml:"strict_catalog" koanf:"strict_catalog"`
	MaxConcurrency int           `yaml:"max_concurrency" koanf:"max_concurrency"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`

	PageSize       int           `yaml:"page_size" koanf:"page_size"`
	SearchDebounce time.Duration `yaml:"search_debounce" koanf:"search_debounce"`
	CopyConfirm    time.Duration `yaml:"copy_confirm" koanf:"copy_confirm"`

	Port     int      `yaml:"port" koanf:"port"`
	LogLevel LogLevel `yaml:"log_level" koanf:"log_level"`
}
