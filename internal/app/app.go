// Package app wires together the configuration, the review gateway and the
// web server, and runs them until shutdown.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/code-review-agent/internal/config"
	"github.com/sevigo/code-review-agent/internal/core"
	"github.com/sevigo/code-review-agent/internal/gateway"
	"github.com/sevigo/code-review-agent/internal/server"
)

// App holds the main application components.
type App struct {
	Cfg     *config.Config
	Gateway core.ReviewGateway
	Logger  *slog.Logger

	server *server.Server
}

// NewGateway builds the HTTP client for the configured review service.
func NewGateway(cfg *config.Config, logger *slog.Logger) (*gateway.Client, error) {
	gw, err := gateway.New(cfg.Review.APIURL, logger, gateway.WithTimeout(cfg.Review.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create review gateway: %w", err)
	}
	return gw, nil
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, gw core.ReviewGateway, srv *server.Server, logger *slog.Logger) *App {
	logger.Info("initializing Code Review Agent",
		"review_api_url", cfg.Review.APIURL,
		"review_timeout", cfg.Review.Timeout,
		"server_port", cfg.Server.Port)

	return &App{
		Cfg:     cfg,
		Gateway: gw,
		Logger:  logger,
		server:  srv,
	}
}

// Run serves the web front end until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	if a.server == nil {
		return fmt.Errorf("app has no web server configured")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.server.Start)
	g.Go(func() error {
		<-gctx.Done()
		return a.Stop()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.Logger.Info("Code Review Agent stopped successfully")
	return nil
}

// Stop shuts down the web server.
func (a *App) Stop() error {
	if a.server == nil {
		return nil
	}
	if err := a.server.Stop(); err != nil {
		a.Logger.Error("error during HTTP server shutdown", "error", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return nil
}
