// ABOUTME: Application lifecycle: startup, signal handling, graceful shutdown
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
)

// Run is the main application entry point. It builds all dependencies, starts
// the HTTP server, then waits for a shutdown signal.
func Run(log *slog.Logger) error {
	deps, cleanup, err := BuildDependencies(log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	httpServer := NewHTTPServer(deps)
	StartHTTPServer(httpServer, deps.Config.Server.Port, log)

	log.Info("definex service started",
		"port", deps.Config.Server.Port,
		"cache_ttl", deps.Config.Cache.TTL.String(),
		"default_source", deps.Config.Defaults.PreferredSource)

	waitForShutdown(httpServer, deps, log)
	return nil
}

func waitForShutdown(httpServer *echo.Echo, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down definex service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down HTTP server", "error", err)
	}

	log.Info("definex service stopped")
}
