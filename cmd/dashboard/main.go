package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/datosprovida/dashboard/internal/apiclient"
	"github.com/datosprovida/dashboard/internal/config"
	"github.com/datosprovida/dashboard/internal/logger"
	"github.com/datosprovida/dashboard/internal/ui/server"
	"github.com/datosprovida/dashboard/internal/version"
)

func main() {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Datos Provida dashboard",
		Long: `Serves the Datos Provida dashboard.

Configuration is read from the environment (ENVIRONMENT, HOST, PORT, LOG_LEVEL, PUBLIC_BASE_URL, ALLOWED_ORIGINS...).
The backend API is reached through API_BASE_URL (default ` + apiclient.DefaultBaseURL + `).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	cmd.Version = version.Get().String()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	serverLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
	slog.SetDefault(serverLogger)

	serverLogger.Info("Starting dashboard", slog.String("version", version.Get().Version), slog.String("environment", cfg.Environment))

	api := apiclient.Shared()
	serverLogger.Info("using Datos Provida API", slog.String("base_url", api.BaseURL()), slog.Duration("timeout", api.Timeout()))

	srv, err := server.NewServer(cfg, serverLogger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(ctx); err != nil {
		serverLogger.Error("dashboard server error", slog.String("error", err.Error()))
		return err
	}

	serverLogger.Info("dashboard shutdown complete")
	return nil
}
