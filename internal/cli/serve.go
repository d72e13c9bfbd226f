package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/choromap/pkg/cache"
	chio "github.com/matzehuels/choromap/pkg/io"
	"github.com/matzehuels/choromap/pkg/pipeline"
)

const (
	defaultAddr     = ":8080"
	shutdownTimeout = 10 * time.Second
)

// contentTypes maps output formats to HTTP content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// serveCommand creates the serve command that exposes rendered maps over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve [geometry.json]",
		Short: "Serve rendered maps over HTTP",
		Long: `Serve starts an HTTP server that renders the given geometry on demand.

Endpoints:
  GET /map.{format}   rendered map (svg, png, pdf, json)
  GET /healthz        liveness probe

Configuration is read from flags, a TOML config file, and environment
variables (a .env file is loaded when present):
  CHOROMAP_ADDR            listen address (default :8080)
  CHOROMAP_REDIS_ADDR      use Redis instead of the file cache
  CHOROMAP_REDIS_PASSWORD  Redis password
  CHOROMAP_REDIS_DB        Redis database number`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], configPath, addr, noCache)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config with data, thresholds, and annotation sections")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides CHOROMAP_ADDR)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, input, configPath, addr string, noCache bool) error {
	// A missing .env file is not an error; explicit env always wins.
	_ = godotenv.Load()

	if addr == "" {
		addr = os.Getenv("CHOROMAP_ADDR")
	}
	if addr == "" {
		addr = defaultAddr
	}

	geo, err := c.loadGeometry(ctx, input)
	if err != nil {
		return err
	}

	baseOpts, err := loadPipelineOptions(&renderOpts{config: configPath})
	if err != nil {
		return err
	}
	baseOpts.Logger = c.Logger

	store, err := c.serveCache(ctx, noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.serveRouter(geo, baseOpts, runner),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "regions", geo.Set.Len())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		c.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// serveCache selects the cache backend: Redis when configured, otherwise the
// local file cache.
func (c *CLI) serveCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr := os.Getenv("CHOROMAP_REDIS_ADDR"); redisAddr != "" {
		db := 0
		if s := os.Getenv("CHOROMAP_REDIS_DB"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid CHOROMAP_REDIS_DB %q: %w", s, err)
			}
			db = n
		}
		store, err := cache.NewRedisCache(ctx, redisAddr, os.Getenv("CHOROMAP_REDIS_PASSWORD"), db)
		if err != nil {
			printWarning("Redis at %s unavailable, falling back to the file cache", redisAddr)
			c.Logger.Warn("redis unavailable", "addr", redisAddr, "err", err)
			return newCache(false)
		}
		c.Logger.Info("using redis cache", "addr", redisAddr, "db", db)
		return store, nil
	}
	return newCache(false)
}

func (c *CLI) serveRouter(geo *chio.Geometry, baseOpts pipeline.Options, runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/map.{format}", func(w http.ResponseWriter, req *http.Request) {
		format := chi.URLParam(req, "format")
		if err := pipeline.ValidateFormat(format); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		opts := baseOpts
		opts.Formats = []string{format}
		applyQueryOverrides(&opts, req)

		result, err := runner.Execute(req.Context(), geo, opts)
		if err != nil {
			loggerFromContext(req.Context()).Error("render failed", "format", format, "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("X-Render-Id", result.RenderID)
		if result.CacheInfo.RenderHit {
			w.Header().Set("X-Cache", "hit")
		} else {
			w.Header().Set("X-Cache", "miss")
		}
		_, _ = w.Write(result.Artifacts[format])
	})

	return r
}

// requestLogger tags each request with an id and logs its outcome.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		reqLogger := c.Logger.With("request_id", id)
		next.ServeHTTP(ww, req.WithContext(withLogger(req.Context(), reqLogger)))
		c.Logger.Info("request",
			"id", id,
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// applyQueryOverrides lets callers tweak per-request settings without a new
// config file. Structural settings (data, thresholds) stay server-side.
func applyQueryOverrides(opts *pipeline.Options, req *http.Request) {
	q := req.URL.Query()
	if mode := q.Get("mode"); mode != "" {
		opts.Mode = mode
	}
	if legend := q.Get("legend"); legend != "" {
		opts.Legend = legend == "true" || legend == "1"
	}
	if interactive := q.Get("interactive"); interactive != "" {
		opts.Interactive = interactive == "true" || interactive == "1"
	}
	if q.Get("refresh") == "true" || q.Get("refresh") == "1" {
		opts.Refresh = true
	}
}
