// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/toocheap/obsidian-cli-mcp/internal/clibridge"
	"github.com/toocheap/obsidian-cli-mcp/internal/frontmatter"
	"github.com/toocheap/obsidian-cli-mcp/internal/httpapi"
	"github.com/toocheap/obsidian-cli-mcp/internal/mcpserver"
	"github.com/toocheap/obsidian-cli-mcp/internal/noteservice"
	"github.com/toocheap/obsidian-cli-mcp/internal/vault"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured JSON logs go to stderr: the stdio transport owns stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("backend", cfg.App.Backend),
		slog.String("transport", cfg.App.Transport),
		slog.String("log_level", cfg.App.LogLevel.String()))

	srv, err := buildServer(cfg, logger)
	if err != nil {
		return err
	}

	switch cfg.App.Transport {
	case TransportHTTP:
		return runHTTP(ctx, cfg, logger, srv)
	default:
		logger.Info("Serving MCP over stdio")
		return srv.ServeStdio()
	}
}

// mcpBackend is the surface entry.go needs from either backend server.
type mcpBackend interface {
	ServeStdio() error
	HTTPHandler() http.Handler
}

func buildServer(cfg *Config, logger *slog.Logger) (mcpBackend, error) {
	switch cfg.App.Backend {
	case BackendCLI:
		runner := clibridge.NewRunner(cfg.CLI.Bin, time.Duration(cfg.CLI.TimeoutSeconds)*time.Second)
		if !runner.Available() {
			logger.Warn("CLI binary not found on PATH; tool calls will fail until it is installed",
				slog.String("bin", cfg.CLI.Bin))
		}
		return mcpserver.NewCLI(runner), nil

	default:
		// Vault-path misconfiguration is fatal here, not a per-call error.
		v, err := vault.New(cfg.Vault.Path)
		if err != nil {
			return nil, fmt.Errorf("init vault: %w", err)
		}
		logger.Info("Vault opened",
			slog.String("path", v.Root()),
			slog.Bool("frontmatter", cfg.Vault.Frontmatter))

		svc := noteservice.New(v,
			frontmatter.New(cfg.Vault.Frontmatter),
			noteservice.WithDailyFolder(cfg.Vault.DailyFolder),
		)
		return mcpserver.NewFS(svc), nil
	}
}

func runHTTP(ctx context.Context, cfg *Config, logger *slog.Logger, srv mcpBackend) error {
	router := httpapi.NewRouter(srv.HTTPHandler(), cfg.Auth.AuthEnabled(), cfg.Auth.Token)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
