package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/starbook-app/starbook/internal/infra/config"
	"github.com/starbook-app/starbook/internal/infra/genqueue"
)

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	queue  genqueue.Queue
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, queue genqueue.Queue) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, queue: queue}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	defer a.stopQueue()

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// stopQueue stops the job consumer, if the configured queue has one.
func (a *App) stopQueue() {
	closer, ok := a.queue.(interface{ Close() })
	if !ok {
		return
	}
	a.logger.Info("stopping generation queue")
	closer.Close()
}
