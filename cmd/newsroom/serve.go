package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"newsroom/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the moderation API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext(setupLogger("info"))
	defer cancel()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	logger := a.Logger

	jobs, err := a.Queue()
	if err != nil {
		return err
	}
	locker, err := a.Locker(ctx)
	if err != nil {
		return err
	}

	e := api.NewServer(a.Moderation(jobs), map[string]api.HealthCheck{
		"postgres": a.DB.PingContext,
		"redis":    locker.Ping,
	}, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting api server", "address", a.Config.HTTP.Addr)
		if err := e.Start(a.Config.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return e.Shutdown(shutdownCtx)
}
