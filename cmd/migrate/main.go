package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/projects-api/config"
	"github.com/GoSim-25-26J-441/projects-api/internal/bootstrap"
	"github.com/GoSim-25-26J-441/projects-api/internal/logging"
	"github.com/GoSim-25-26J-441/projects-api/internal/migrate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.URL})
	if err != nil {
		logger.Fatal("connect failed", zap.Error(err))
	}
	defer pool.Close()

	dir := cfg.Database.MigrationsDir
	if _, err := os.Stat(dir); err != nil {
		logger.Fatal("migrations dir not found", zap.String("dir", dir), zap.Error(err))
	}

	applied, err := migrate.New(pool, os.DirFS(dir), logger).Up(ctx)
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migrations completed", zap.Int("count", len(applied)))
}
