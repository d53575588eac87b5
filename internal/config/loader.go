package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pfrederiksen/firstcycling/internal/client"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name searched for in the current
// and home directories.
const DefaultConfigFile = ".firstcycling.yml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// Load reads the YAML file at path over the defaults. A missing file
// returns ErrConfigNotFound; callers decide whether that matters based on
// whether the path was explicitly given.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Find locates the config file: the explicit path when given, otherwise
// DefaultConfigFile in the current directory, then the home directory.
// Returns an empty string when nothing is found.
func Find(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// NewClient builds a client.Client from the config, loading the page
// cache when a cache directory is set. Cache load failures degrade to an
// uncached client rather than failing the command.
func (c *Config) NewClient() (*client.Client, *client.PageCache) {
	opts := []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithUserAgent(c.UserAgent),
		client.WithHTTPClient(&http.Client{Timeout: c.Timeout()}),
		client.WithMaxRetries(uint64(c.MaxRetries)),
	}

	var cache *client.PageCache
	if c.CacheDir != "" {
		loaded, err := client.LoadPageCache(c.CacheDir, c.CacheTTL())
		if err == nil {
			cache = loaded
			opts = append(opts, client.WithCache(cache))
		}
	}

	return client.New(opts...), cache
}
