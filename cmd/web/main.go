// Package main runs the browser front-end. Pages are rendered on the server
// from the controller's state; every change is forwarded to the JSON API
// through the resilient gateway client.
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

	"github.com/jsamuelsen11/go-todo-list/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/go-todo-list/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/web"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/web/view"
	"github.com/jsamuelsen11/go-todo-list/internal/app"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/httpclient"
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
	otel, err := telemetry.Setup(ctx, cfg.Telemetry, "web")
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer shutdownTelemetry(otel, logger)

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.TodoClient](injector))

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

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "todo-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.TodoClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewTodoClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*view.Renderer, error) {
		return view.New(logger)
	})

	do.Provide(injector, func(i do.Injector) (*app.Controller, error) {
		gw := do.MustInvoke[*acl.TodoClient](i)
		renderer := do.MustInvoke[*view.Renderer](i)
		return app.NewController(gw, renderer, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*web.Handler, error) {
		ctrl := do.MustInvoke[*app.Controller](i)
		renderer := do.MustInvoke[*view.Renderer](i)
		return web.NewHandler(ctrl, renderer, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[*web.Handler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		pipeline := middleware.Chain(
			middleware.Recovery(logger, nethttp.HandlerFunc(web.ErrorPage)),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Web.RequestTimeout),
		)

		return web.NewRouter(h, healthH, pipeline), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer("web", cfg.Web, handler, logger), nil
	})
}
