package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Its-donkey/multistream/internal/config"
	"github.com/Its-donkey/multistream/internal/ui/layout"
	"github.com/Its-donkey/multistream/internal/ui/security"
	"github.com/Its-donkey/multistream/internal/ui/state"
	"github.com/Its-donkey/multistream/internal/ui/view"
	"github.com/Its-donkey/multistream/logging"
)

// Options configures the UI HTTP server.
type Options struct {
	Listen         string
	AssetsDir      string
	Site           string
	Logger         logging.Logger
	Renderer       *view.Renderer
	Registry       *state.Registry
	Columns        int
	Parents        []string
	RestrictOrigin bool
	Policy         security.Policy
}

type server struct {
	assetsDir      string
	siteName       string
	renderer       *view.Renderer
	registry       *state.Registry
	columns        int
	parents        []string
	restrictOrigin bool
	wasm           bool
	logger         logging.Logger
}

// OptionsFromConfig seeds a registry with the configured roster and maps the
// remaining settings onto Options.
func OptionsFromConfig(cfg config.Config, logger logging.Logger) (Options, error) {
	registry := state.NewRegistry()
	if err := registry.Seed(cfg.Streams); err != nil {
		return Options{}, fmt.Errorf("seed streams: %w", err)
	}
	return Options{
		Listen:         cfg.Server.Listen,
		AssetsDir:      cfg.Server.Assets,
		Site:           cfg.Site,
		Logger:         logger,
		Registry:       registry,
		Columns:        cfg.Grid.Columns,
		Parents:        cfg.Embed.Parents,
		RestrictOrigin: cfg.Embed.RestrictMessageOrigin,
		Policy: security.DefaultPolicy(security.Sources{
			Script:  cfg.Security.ExtraScriptSrc,
			Frame:   cfg.Security.ExtraFrameSrc,
			Connect: cfg.Security.ExtraConnectSrc,
		}),
	}, nil
}

// Run starts the UI HTTP server and blocks until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, opts Options) error {
	opts = applyDefaults(opts)
	handler, err := NewHandler(opts)
	if err != nil {
		return err
	}
	logger := opts.Logger

	server := &http.Server{
		Addr:              opts.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	logging.Category(logger, logging.CategoryGeneral).Infof("Serving %s on http://%s", opts.Site, opts.Listen)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

// NewHandler builds the routed handler with the security and logging
// middleware applied.
func NewHandler(opts Options) (http.Handler, error) {
	opts = applyDefaults(opts)

	assetsPath, err := filepath.Abs(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve assets dir: %w", err)
	}

	renderer := opts.Renderer
	if renderer == nil {
		loaded, err := loadTemplates()
		if err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
		renderer = loaded
	}

	srv := &server{
		assetsDir:      assetsPath,
		siteName:       opts.Site,
		renderer:       renderer,
		registry:       opts.Registry,
		columns:        opts.Columns,
		parents:        opts.Parents,
		restrictOrigin: opts.RestrictOrigin,
		wasm:           fileExists(filepath.Join(assetsPath, "main.wasm")),
		logger:         opts.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleHome)
	mux.HandleFunc("/streams.json", srv.serveStreamsJSON)
	mux.HandleFunc("/api/parse", srv.handleParse)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/styles.css", srv.assetHandler("styles.css", "text/css; charset=utf-8"))
	mux.Handle("/wasm_exec.js", srv.assetHandler("wasm_exec.js", "application/javascript"))
	mux.Handle("/main.wasm", srv.assetHandler("main.wasm", "application/wasm"))
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return security.Middleware(opts.Policy, logging.WithHTTPLogging(mux, srv.logger)), nil
}

func applyDefaults(opts Options) Options {
	defaults := config.Default()
	if opts.Listen == "" {
		opts.Listen = defaults.Server.Listen
	}
	if opts.AssetsDir == "" {
		opts.AssetsDir = defaults.Server.Assets
	}
	if opts.Site == "" {
		opts.Site = defaults.Site
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Registry == nil {
		opts.Registry = state.NewRegistry()
	}
	if !layout.InRange(opts.Columns) {
		opts.Columns = layout.DefaultColumns
	}
	if opts.Parents == nil {
		opts.Parents = defaults.Embed.Parents
	}
	if len(opts.Policy.Directives) == 0 {
		opts.Policy = security.DefaultPolicy(security.Sources{})
	}
	return opts
}

func (s *server) assetHandler(name, contentType string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.assetsDir, name)
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		http.ServeFile(w, r, path)
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
