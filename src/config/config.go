package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/apimgr/cityweather/src/owm"
	"github.com/apimgr/cityweather/src/paths"
)

// DefaultBaseURL is the OpenWeather current-weather endpoint
const DefaultBaseURL = owm.DefaultBaseURL

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 10 * time.Minute
	defaultPadding  = 20
)

// CLIConfig represents the optional cli.yml preferences file
type CLIConfig struct {
	API         APIConfig     `yaml:"api,omitempty"`
	SecretsFile string        `yaml:"secrets_file,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
	Cache       CacheConfig   `yaml:"cache,omitempty"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`

	// Set from CITYWEATHER_API_KEY, never persisted
	APIKey string `yaml:"-"`
}

// APIConfig holds weather service connection settings
type APIConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout string `yaml:"timeout,omitempty"`
}

// OutputConfig holds output preferences
type OutputConfig struct {
	// auto, always, never
	Color   string `yaml:"color,omitempty"`
	Emoji   bool   `yaml:"emoji"`
	Padding int    `yaml:"padding,omitempty"`
}

// CacheConfig holds response cache settings
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	TTL     string `yaml:"ttl,omitempty"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: defaultTimeout.String(),
		},
		Output: OutputConfig{
			Color:   "auto",
			Emoji:   true,
			Padding: defaultPadding,
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     defaultCacheTTL.String(),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads preferences from path, or from the default location when
// path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*CLIConfig, error) {
	if path == "" {
		path = paths.ConfigFile()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv applies CITYWEATHER_* environment overrides
func applyEnv(cfg *CLIConfig) {
	if v := os.Getenv("CITYWEATHER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CITYWEATHER_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CITYWEATHER_SECRETS"); v != "" {
		cfg.SecretsFile = v
	}
	if IsTruthy(os.Getenv("CITYWEATHER_DEBUG")) {
		cfg.Logging.Level = "debug"
	}
	// NO_COLOR: any non-empty value disables color
	if os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = "never"
	}
}

// SaveConfig writes cfg to path, creating the parent directory
func SaveConfig(path string, cfg *CLIConfig) error {
	if path == "" {
		path = paths.ConfigFile()
	}
	if err := paths.EnsureFile(path); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// BaseURL returns the configured endpoint or the OpenWeather default
func (c *CLIConfig) BaseURL() string {
	if c.API.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.API.BaseURL
}

// Timeout returns the request timeout, falling back to 10s on bad input
func (c *CLIConfig) Timeout() time.Duration {
	return parseDuration(c.API.Timeout, defaultTimeout)
}

// CacheTTL returns the cache entry lifetime, falling back to 10m on bad input
func (c *CLIConfig) CacheTTL() time.Duration {
	return parseDuration(c.Cache.TTL, defaultCacheTTL)
}

// Padding returns the display column width
func (c *CLIConfig) Padding() int {
	if c.Output.Padding <= 0 {
		return defaultPadding
	}
	return c.Output.Padding
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// IsTruthy parses a boolean-ish string value
// Supports: true/false, yes/no, 1/0, on/off, enable/disable
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "1", "on", "enable", "enabled":
		return true
	default:
		return false
	}
}
