package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/notesvc/internal/config"
	"github.com/ferdiebergado/notesvc/internal/middleware"
	"github.com/ferdiebergado/notesvc/internal/note"
	"github.com/ferdiebergado/notesvc/internal/pkg/logging"
	"github.com/ferdiebergado/notesvc/internal/platform/db"
	"github.com/ferdiebergado/notesvc/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	logging.SetupLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"), os.Stdout)

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.NewPostgresDB(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := note.CreateSchema(signalCtx, dbConn); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	provider := newProvider(dbConn)

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.Metrics,
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.CheckContentType,
	}

	api := New(cfg, provider, middlewares)
	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}
