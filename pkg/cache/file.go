package cache

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores entries under a directory, one file per key. Artifacts
// are binary (PNG, PDF), so the blob is written raw with a one-line expiry
// header instead of being wrapped in JSON.
type FileCache struct {
	dir string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

const neverExpires = "never"

// Get returns the cached blob for key. Expired or unreadable entries are
// removed and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	sep := bytes.IndexByte(raw, '\n')
	if sep < 0 {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if header := string(raw[:sep]); header != neverExpires {
		expiresAt, err := time.Parse(time.RFC3339Nano, header)
		if err != nil || time.Now().After(expiresAt) {
			_ = os.Remove(path)
			return nil, false, nil
		}
	}
	return raw[sep+1:], true, nil
}

// Set stores data under key. A ttl of zero means the entry never expires.
// The write goes through a temp file and rename, so concurrent renders
// never observe a torn entry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	header := neverExpires
	if ttl != 0 {
		header = time.Now().Add(ttl).Format(time.RFC3339Nano)
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".cache-*")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(tmp, "%s\n", header)
	if err == nil {
		_, err = tmp.Write(data)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the entry for key. Missing entries are not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op for the file cache.
func (c *FileCache) Close() error { return nil }

// path maps a key to a file, sharded by the first byte of its hash so a
// long-lived cache directory stays listable.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".cache")
}

var _ Cache = (*FileCache)(nil)
