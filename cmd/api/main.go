// Package main runs the todo JSON API. It wires the SQLite store, the todo
// service and the HTTP adapter with samber/do v2, serves until SIGINT or
// SIGTERM and then drains requests before closing the database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todo-list/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/store/seed"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/go-todo-list/internal/app"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-list/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv(config.ProfileEnv)
	if profile == "" {
		return fmt.Errorf("%s environment variable is required (e.g. local, prod)", config.ProfileEnv)
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry, "api")
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer shutdownTelemetry(otel, logger)

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(ctx, injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	store := do.MustInvoke[*sqlite.Store](injector)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}()

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)

	if cfg.Store.SeedOnEmpty {
		svc := do.MustInvoke[*app.TodoService](injector)
		if _, err := svc.SeedIfEmpty(ctx); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// shutdownTelemetry flushes the exporters. It runs on every return from run
// once Setup succeeded.
func shutdownTelemetry(otel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*sqlite.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		s, err := sqlite.Open(ctx, cfg.Store.Path, sqlite.WithMetrics(metrics))
		if err != nil {
			return nil, fmt.Errorf("opening store %s: %w", cfg.Store.Path, err)
		}
		logger.Info("opened store", slog.String("path", cfg.Store.Path))
		return s, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.SeedSource, error) {
		return seed.New(cfg.Store.SeedOnReset), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TodoService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		src := do.MustInvoke[ports.SeedSource](i)
		return app.NewTodoService(store, src, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[*app.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		pipeline := middleware.Chain(
			middleware.Recovery(logger, nil),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		)

		return adapthttp.NewRouter(todoH, healthH, pipeline), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer("api", cfg.Server, handler, logger), nil
	})
}
