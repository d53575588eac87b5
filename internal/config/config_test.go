package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.BaseURL != "https://firstcycling.com" {
		t.Errorf("unexpected default base URL: %q", cfg.BaseURL)
	}
	if cfg.MatchThreshold != 0.7 {
		t.Errorf("unexpected default threshold: %f", cfg.MatchThreshold)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.Timeout())
	}
	if cfg.CacheTTL() != 24*time.Hour {
		t.Errorf("unexpected default cache TTL: %v", cfg.CacheTTL())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `base_url: https://mirror.example.com
timeout_seconds: 5
match_threshold: 0.85
cache_dir: ""
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BaseURL != "https://mirror.example.com" {
		t.Errorf("expected overridden base URL, got %q", cfg.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Timeout())
	}
	if cfg.MatchThreshold != 0.85 {
		t.Errorf("expected threshold 0.85, got %f", cfg.MatchThreshold)
	}
	if cfg.CacheDir != "" {
		t.Errorf("expected caching disabled, got %q", cfg.CacheDir)
	}

	// Untouched keys keep their defaults
	if cfg.MaxRetries != 3 {
		t.Errorf("expected default max retries, got %d", cfg.MaxRetries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("base_url: [unclosed"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid YAML")
	}
}

func TestFindExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "explicit.yml")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if got := Find(path); got != path {
		t.Errorf("expected %q, got %q", path, got)
	}
	if got := Find(filepath.Join(t.TempDir(), "missing.yml")); got != "" {
		t.Errorf("expected empty result for missing explicit path, got %q", got)
	}
}

func TestNewClientWithoutCache(t *testing.T) {
	cfg := Default()
	cfg.CacheDir = ""

	c, cache := cfg.NewClient()
	if c == nil {
		t.Fatal("expected a client")
	}
	if cache != nil {
		t.Error("expected no cache when cache dir is empty")
	}
}
