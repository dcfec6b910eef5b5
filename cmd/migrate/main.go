package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"nowbuy/internal/config"
	"nowbuy/internal/db"
	"nowbuy/internal/logger"
	"nowbuy/internal/migrate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer log.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal("connect to db", zap.Error(err))
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}
	log.Info("migrations applied")
}
