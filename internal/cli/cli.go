// Package cli implements the choromap command-line interface.
package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/choromap/pkg/buildinfo"
	"github.com/matzehuels/choromap/pkg/cache"
	"github.com/matzehuels/choromap/pkg/httputil"
	chio "github.com/matzehuels/choromap/pkg/io"
	"github.com/matzehuels/choromap/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "choromap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "choromap",
		Short:        "Choromap renders region data as choropleth maps",
		Long:         `Choromap is a CLI tool for rendering per-region statistics as annotated choropleth maps, with labels, ranking bars, or routed callouts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/choromap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// loadGeometry reads a geometry document from a local path or an http(s)
// URL. Remote documents are cached next to the render cache.
func (c *CLI) loadGeometry(ctx context.Context, input string) (*chio.Geometry, error) {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return chio.ImportJSON(input)
	}

	var respCache *httputil.Cache
	if dir, err := cacheDir(); err == nil {
		if fc, err := httputil.NewCache(filepath.Join(dir, "http"), httputil.DefaultFetchTTL); err == nil {
			respCache = fc
		}
	}
	body, err := httputil.NewFetcher(nil, respCache).Fetch(ctx, input)
	if err != nil {
		return nil, err
	}
	return chio.ReadJSON(bytes.NewReader(body))
}
