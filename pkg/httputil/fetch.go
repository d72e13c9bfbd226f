package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultFetchTTL is how long fetched geometry documents stay fresh.
const DefaultFetchTTL = 24 * time.Hour

// maxFetchSize caps response bodies. Geometry documents are small; a larger
// body indicates a misconfigured URL.
const maxFetchSize = 16 << 20

// Fetcher retrieves remote documents with response caching and retry.
type Fetcher struct {
	client *http.Client
	cache  *Cache
}

// NewFetcher creates a Fetcher backed by the given cache. A nil client uses
// http.DefaultClient. A nil cache disables caching.
func NewFetcher(client *http.Client, cache *Cache) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, cache: cache}
}

// Fetch retrieves url, serving cached responses when fresh. Transient
// failures (network errors, 5xx, 429) are retried with backoff.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	key := "geometry:" + url
	if f.cache != nil {
		var body []byte
		if ok, err := f.cache.Get(key, &body); ok && err == nil {
			return body, nil
		}
	}

	var body []byte
	err := RetryWithBackoff(ctx, func() error {
		b, err := f.fetchOnce(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if f.cache != nil {
		_ = f.cache.Set(key, body)
	}
	return body, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &RetryableError{Err: fmt.Errorf("GET %s: %s", url, resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
}
