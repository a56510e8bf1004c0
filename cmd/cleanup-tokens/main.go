// Command cleanup-tokens sweeps expired and spent CSRF tokens. Intended to
// run from cron or a Kubernetes CronJob.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/config"
	"github.com/SRHSoulja/pengubook-backend/internal/infrastructure/database"
	"github.com/SRHSoulja/pengubook-backend/internal/usecase"
	"github.com/SRHSoulja/pengubook-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: !cfg.Service.Production(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	repos := database.NewRepositories(db, zapLogger)
	csrfService := usecase.NewCsrfService(zapLogger, usecase.CsrfConfig{
		TokenTTL:      cfg.CSRF.TokenTTL,
		UsedRetention: cfg.CSRF.UsedRetention,
	}, repos.CsrfToken)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := csrfService.CleanupStale(ctx)
	if err != nil {
		zapLogger.Fatal("Token sweep failed", zap.Error(err))
	}

	zapLogger.Info("Token sweep completed", zap.Int64("deleted", deleted))
}
