package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a cached page stays valid. Race pages for
// past editions effectively never change; a day keeps current-season
// pages reasonably fresh.
const DefaultCacheTTL = 24 * time.Hour

const cacheFileName = "pages.json"

// PageCache caches fetched HTML pages keyed by URL with a TTL.
// Safe for concurrent use.
type PageCache struct {
	mu       sync.Mutex
	Pages    map[string]string    `json:"pages"`
	CachedAt map[string]time.Time `json:"cached_at"`
	TTL      time.Duration        `json:"-"`
}

// NewPageCache creates an empty cache with the default TTL.
func NewPageCache() *PageCache {
	return &PageCache{
		Pages:    make(map[string]string),
		CachedAt: make(map[string]time.Time),
		TTL:      DefaultCacheTTL,
	}
}

// Get returns the cached page for url if present and not expired.
func (c *PageCache) Get(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	html, exists := c.Pages[url]
	if !exists {
		return "", false
	}

	cachedTime, hasTime := c.CachedAt[url]
	if !hasTime || time.Since(cachedTime) > c.TTL {
		delete(c.Pages, url)
		delete(c.CachedAt, url)
		return "", false
	}

	return html, true
}

// Set stores a page in the cache.
func (c *PageCache) Set(url, html string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Pages[url] = html
	c.CachedAt[url] = time.Now()
}

// CleanExpired removes expired entries and reports how many were removed.
func (c *PageCache) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	now := time.Now()
	for url, cachedTime := range c.CachedAt {
		if now.Sub(cachedTime) > c.TTL {
			delete(c.Pages, url)
			delete(c.CachedAt, url)
			removed++
		}
	}
	return removed
}

// Size returns the number of cached pages.
func (c *PageCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.Pages)
}

// LoadPageCache loads a cache from dir, expanding a leading ~/ to the
// user's home directory. A missing cache file yields an empty cache.
func LoadPageCache(dir string, ttl time.Duration) (*PageCache, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}

	cache := NewPageCache()
	if ttl > 0 {
		cache.TTL = ttl
	}

	data, err := os.ReadFile(filepath.Join(dir, cacheFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("parsing cache: %w", err)
	}
	if cache.Pages == nil {
		cache.Pages = make(map[string]string)
	}
	if cache.CachedAt == nil {
		cache.CachedAt = make(map[string]time.Time)
	}
	cache.CleanExpired()
	return cache, nil
}

// Save writes the cache to dir, creating it if needed.
func (c *PageCache) Save(dir string) error {
	dir, err := expandHome(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	c.mu.Lock()
	data, err := json.MarshalIndent(c, "", "  ")
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, cacheFileName), data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}

func expandHome(dir string) (string, error) {
	if !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, dir[2:]), nil
}
