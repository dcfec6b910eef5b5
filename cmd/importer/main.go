package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"nowbuy/internal/config"
	"nowbuy/internal/db"
	"nowbuy/internal/importer"
	"nowbuy/internal/logger"
	productrepo "nowbuy/internal/repository/product"
)

func main() {
	feedPath := flag.String("feed", "", "path to the JSON catalog feed (defaults to catalog.feed_path)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer log.Sync()

	path := *feedPath
	if path == "" {
		path = cfg.Catalog.FeedPath
	}
	if path == "" {
		log.Fatal("no catalog feed given; pass -feed or set catalog.feed_path")
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal("open feed", zap.String("path", path), zap.Error(err))
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal("connect to db", zap.Error(err))
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, log)
	imported, err := importer.NewJSONImporter(f, repo).Run(ctx)
	if err != nil {
		log.Fatal("import feed", zap.Int("imported", imported), zap.Error(err))
	}
	log.Info("catalog imported", zap.Int("products", imported))
}
