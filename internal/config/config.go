// Package config holds client configuration for the firstcycling CLI,
// populated from defaults, an optional YAML file and command-line flags.
package config

import (
	"time"

	"github.com/pfrederiksen/firstcycling/internal/client"
	"github.com/pfrederiksen/firstcycling/internal/search"
)

// Default configuration values.
const (
	// DefaultTimeoutSeconds matches the client's default HTTP timeout.
	DefaultTimeoutSeconds = 30

	// DefaultCacheTTLHours keeps cached pages for a day; past editions
	// never change and current-season pages tolerate that staleness.
	DefaultCacheTTLHours = 24

	// DefaultCacheDir is where the page cache lives on disk.
	DefaultCacheDir = "~/.cache/firstcycling"
)

// Config is the flat set of knobs the CLI exposes. A single flat struct
// keeps flag/file merging simple; the option count doesn't justify
// nesting.
type Config struct {
	// BaseURL is the site root requests are issued against.
	BaseURL string `yaml:"base_url"`

	// UserAgent identifies this client in HTTP requests.
	UserAgent string `yaml:"user_agent"`

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// MaxRetries bounds retry attempts on transient fetch failures.
	MaxRetries int `yaml:"max_retries"`

	// MatchThreshold is the minimum similarity ratio for fuzzy race
	// name resolution, in [0,1].
	MatchThreshold float64 `yaml:"match_threshold"`

	// CacheDir is the page-cache directory; empty disables caching.
	CacheDir string `yaml:"cache_dir"`

	// CacheTTLHours is how long cached pages stay valid.
	CacheTTLHours int `yaml:"cache_ttl_hours"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		BaseURL:        client.DefaultBaseURL,
		UserAgent:      client.DefaultUserAgent,
		TimeoutSeconds: DefaultTimeoutSeconds,
		MaxRetries:     client.DefaultMaxRetries,
		MatchThreshold: search.DefaultThreshold,
		CacheDir:       DefaultCacheDir,
		CacheTTLHours:  DefaultCacheTTLHours,
	}
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}
