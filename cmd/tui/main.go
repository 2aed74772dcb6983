// Package main runs the terminal front-end. It talks to the JSON API through
// the same gateway as the web front-end and logs to a file, since the
// terminal is taken by the UI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-todo-list/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-todo-list/internal/adapters/tui"
	"github.com/jsamuelsen11/go-todo-list/internal/app"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-list/internal/platform/telemetry"
)

const otelShutdownTimeout = 5 * time.Second

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

	logFile, err := logging.OpenFile(cfg.TUI.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The stdout exporters would draw over the UI.
	telemetryCfg := cfg.Telemetry
	if telemetryCfg.Exporter == telemetry.ExporterStdout {
		telemetryCfg.Enabled = false
	}
	otel, err := telemetry.Setup(ctx, telemetryCfg, "tui")
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	model, err := do.Invoke[tui.Model](injector)
	if err != nil {
		return fmt.Errorf("resolving model: %w", err)
	}

	logger.Info("starting terminal view", slog.String("api", cfg.Client.BaseURL))

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running terminal view: %w", err)
	}

	logger.Info("terminal view closed")
	return nil
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

	do.Provide(injector, func(_ do.Injector) (*tui.Screen, error) {
		return tui.NewScreen(), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Controller, error) {
		gw := do.MustInvoke[*acl.TodoClient](i)
		screen := do.MustInvoke[*tui.Screen](i)
		return app.NewController(gw, screen, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (tui.Model, error) {
		ctrl := do.MustInvoke[*app.Controller](i)
		screen := do.MustInvoke[*tui.Screen](i)
		return tui.New(ctrl, screen, logger).WithRequestTimeout(cfg.TUI.RequestTimeout), nil
	})
}
