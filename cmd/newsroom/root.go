package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"newsroom/internal/app"
	"newsroom/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "newsroom",
	Short:         "Article ingestion, enrichment and moderation pipeline",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	rootCmd.AddCommand(serveCmd, workerCmd, collectCmd, trendsCmd, migrateStatusCmd)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Info("received shutdown signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// bootstrap loads the config and builds the shared components.
func bootstrap(ctx context.Context) (*app.App, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger = setupLogger(cfg.LogLevel)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return a, nil
}
