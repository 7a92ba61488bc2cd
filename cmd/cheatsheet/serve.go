package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	cheatsheet "github.com/alnah/go-cheatsheet"
	"github.com/alnah/go-cheatsheet/internal/config"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// runServe builds the site, serves the output root and rebuilds on changes
// to the cheatsheets or templates directories until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := resolveServe(flags)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	builder, err := cheatsheet.NewBuilder(builderOptions(cfg, logger, env)...)
	if err != nil {
		return err
	}
	defer builder.Close()

	if err := buildOnce(ctx, builder, logger); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Serve.Address(),
		Handler:           newRouter(builder.OutputDir(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	dirs := []string{cfg.CheatsheetsDir}
	if cfg.TemplatesDir != "" {
		dirs = append(dirs, cfg.TemplatesDir)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch(gCtx, dirs, cfg.Serve.Debounce, logger, func(ctx context.Context) error {
			return buildOnce(ctx, builder, logger)
		})
	})

	g.Go(func() error {
		logger.Info("serving", slog.String("url", "http://"+srv.Addr), slog.String("dir", builder.OutputDir()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("preview server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("preview server shutdown", slog.String("error", err.Error()))
		}
		return nil
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		err = nil
	}
	logger.Info("stopped")
	return err
}

// resolveServe resolves the site config with serve-only flag overrides.
func resolveServe(flags *serveFlags) (*config.Config, error) {
	cfg, err := loadSiteConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return nil, err
	}
	if err := mergeSiteFlags(&flags.site, flags.changed, cfg); err != nil {
		return nil, err
	}
	if flags.changed["port"] {
		cfg.Serve.Port = flags.port
	}
	if flags.changed["debounce"] {
		d, err := time.ParseDuration(flags.debounce)
		if err != nil {
			return nil, fmt.Errorf("%w: --debounce: %v", ErrUsage, err)
		}
		cfg.Serve.Debounce = d
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRouter serves the output root without caching.
func newRouter(outputDir string, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(requestLogger(logger))

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/*", http.FileServer(http.Dir(outputDir)))
	return r
}

// requestLogger logs each request at debug level.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
