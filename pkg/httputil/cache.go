package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when an entry exists on disk but
// has outlived its TTL. The stale data stays in place until the caller
// refreshes it with [Cache.Set], so a failed refetch can still fall back
// to it:
//
//	ok, err := cache.Get(url, &doc)
//	if errors.Is(err, httputil.ErrExpired) {
//	    // refetch and Set
//	}
var ErrExpired = errors.New("cache entry expired")

// Cache is a file-backed store for JSON-marshalable values, used to keep
// fetched geometry documents across CLI invocations. Filenames are the
// SHA-256 of the key, so URLs and other unruly strings are safe keys.
//
// A single Cache is not goroutine-safe, but separate instances (even in
// separate processes) can share a directory. Freshness comes from file
// modification time against the TTL; a TTL of zero never expires.
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache opens a cache in dir with the given TTL, creating the
// directory if needed. An empty dir selects ~/.cache/choromap/.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "choromap")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl, prefix: ""}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the entry time-to-live. Zero means entries never expire.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get unmarshals the entry for key into v. It reports (true, nil) on a
// fresh hit, (false, nil) when no entry exists, and (false, ErrExpired)
// when the entry is stale. v must be a pointer. Reads never touch
// modification times, so a Get does not extend an entry's life.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set marshals v to JSON and stores it under key, replacing any existing
// entry and restarting its TTL.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a view of the cache that prefixes every key, keeping
// key spaces for different sources apart:
//
//	geom := cache.Namespace("geometry:")
//	data := cache.Namespace("data:")
//
// Views share the directory and TTL of their parent, and namespaces
// compose: cache.Namespace("remote:").Namespace("geometry:") prefixes
// keys with "remote:geometry:".
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
