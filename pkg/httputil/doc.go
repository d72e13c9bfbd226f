// Package httputil provides HTTP utilities for fetching remote geometry.
//
// # Overview
//
// This package provides infrastructure for loading geometry documents and
// datasets from HTTP sources:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//   - [Fetch]: Cached, retrying GET for geometry URLs
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/choromap/)
// with configurable TTL. This speeds up repeated renders of the same
// remote geometry and keeps the CLI usable offline once a document has
// been fetched.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24 * time.Hour)
//	var body []byte
//	ok, _ := cache.Get("geometry:"+url, &body)  // Check cache
//	if !ok {
//	    body = fetchFromServer()
//	    cache.Set("geometry:"+url, body)        // Store for later
//	}
//
// Cache keys should be namespaced by content kind to avoid collisions.
//
// # Retry
//
// [Retry] wraps operations with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid hammering a recovering server:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchOnce()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/choromap/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `choromap cache clear` or by deleting
// the cache directory.
package httputil
