package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
	"task-manager.com/task-manager/internal/export"
	httpapi "task-manager.com/task-manager/internal/http"
	"task-manager.com/task-manager/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task manager HTTP API and the export worker pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logger := config.NewLogger(cfg.Env)

		st, err := newStore(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		manager := services.NewManagerService(st, logger)
		if err := manager.Load(ctx); err != nil {
			return err
		}

		exports := services.NewExportService(export.NewWriter(), cfg.ExportWorkers, cfg.ExportQueueSize, logger)

		e := echo.New()
		e.HideBanner = true
		handler := httpapi.NewHandler(manager, exports)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			logger.Info().Str("addr", cfg.AppURL()).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL()); err != nil {
				logger.Info().Err(err).Msg("server stopped")
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)
		exports.Shutdown(shutdownCtx)

		logger.Info().Msg("HTTP server and export pool shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
