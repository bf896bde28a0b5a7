package owm

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/apimgr/cityweather/src/paths"
)

func init() {
	gob.Register(Report{})
}

// Cache keeps recent reports on disk between invocations
type Cache struct {
	cache *cache.Cache
	path  string
	dirty bool
}

// OpenCache loads the cache file at path. A missing file yields an empty cache.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	c := &Cache{
		cache: cache.New(ttl, 2*ttl),
		path:  path,
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("failed to stat cache: %w", err)
	}
	if err := c.cache.LoadFile(path); err != nil {
		return c, fmt.Errorf("failed to load cache: %w", err)
	}
	c.cache.DeleteExpired()
	return c, nil
}

// Get returns a fresh report for key
func (c *Cache) Get(key string) (*Report, bool) {
	if c == nil {
		return nil, false
	}
	cached, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	report, ok := cached.(Report)
	if !ok {
		return nil, false
	}
	return &report, true
}

// Set stores report under key with the default TTL
func (c *Cache) Set(key string, report *Report) {
	if c == nil || report == nil {
		return
	}
	c.cache.Set(key, *report, cache.DefaultExpiration)
	c.dirty = true
}

// Save writes the cache file if anything changed
func (c *Cache) Save() error {
	if c == nil || !c.dirty {
		return nil
	}
	if err := paths.EnsureFile(c.path); err != nil {
		return err
	}
	if err := c.cache.SaveFile(c.path); err != nil {
		return fmt.Errorf("failed to save cache: %w", err)
	}
	c.dirty = false
	return nil
}
