package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ndelaney/excusegen/internal/config"
	"github.com/ndelaney/excusegen/internal/llm"
	"github.com/ndelaney/excusegen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the excusegen HTTP server: the generate-excuse API, health and
debug endpoints, and the static frontend bundle.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if cfg.APIToken == "" {
		slog.Warn("DATABRICKS_API_TOKEN is not set; generate calls will fail until it is configured")
	}

	client := llm.New(llm.Config{
		EndpointURL: cfg.EndpointURL,
		Token:       cfg.APIToken,
	})
	srv := server.New(cfg, client)

	slog.Info("starting excusegen server",
		"addr", cfg.Addr(),
		"endpoint", cfg.EndpointURL,
		"static_dir", cfg.StaticDir,
	)

	// Run server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(ctx)
	}()

	// Wait for shutdown signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	slog.Info("shutting down...")
	cancel()

	return <-errCh
}
