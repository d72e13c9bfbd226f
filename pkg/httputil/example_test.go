package httputil_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/choromap/pkg/httputil"
)

func ExampleCache() {
	dir := filepath.Join(os.TempDir(), "choromap-example")
	cache, err := httputil.NewCache(dir, 24*time.Hour)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer os.RemoveAll(dir)

	geom := cache.Namespace("geometry:")
	doc := map[string]string{"source": "districts.json", "regions": "6"}
	if err := geom.Set("https://example.com/districts.json", doc); err != nil {
		fmt.Println("Error:", err)
		return
	}

	var cached map[string]string
	if ok, err := geom.Get("https://example.com/districts.json", &cached); ok && err == nil {
		fmt.Println("Source:", cached["source"])
		fmt.Println("Regions:", cached["regions"])
	}
	// Output:
	// Source: districts.json
	// Regions: 6
}

func ExampleCache_miss() {
	dir := filepath.Join(os.TempDir(), "choromap-example-miss")
	cache, _ := httputil.NewCache(dir, time.Hour)
	defer os.RemoveAll(dir)

	var doc string
	ok, err := cache.Get("https://example.com/never-fetched.json", &doc)
	fmt.Println("Found:", ok)
	fmt.Println("Error:", err)
	// Output:
	// Found: false
	// Error: <nil>
}

func ExampleNewCache_defaultDir() {
	// An empty dir selects ~/.cache/choromap/.
	cache, err := httputil.NewCache("", httputil.DefaultFetchTTL)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Cache TTL:", cache.TTL())
	// Output:
	// Cache TTL: 24h0m0s
}
