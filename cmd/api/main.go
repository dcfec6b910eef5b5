package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"nowbuy/internal/badge"
	"nowbuy/internal/config"
	"nowbuy/internal/db"
	"nowbuy/internal/events"
	"nowbuy/internal/httpserver"
	"nowbuy/internal/importer"
	"nowbuy/internal/logger"
	cartrepo "nowbuy/internal/repository/cart"
	orderrepo "nowbuy/internal/repository/order"
	productrepo "nowbuy/internal/repository/product"
	proxyrepo "nowbuy/internal/repository/proxy"
	"nowbuy/internal/seed"
	cartsvc "nowbuy/internal/service/cart"
	catalogsvc "nowbuy/internal/service/catalog"
	ordersvc "nowbuy/internal/service/order"
	proxysvc "nowbuy/internal/service/proxy"
	"nowbuy/internal/slot"
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

	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		pool, err = db.Connect(ctx, cfg.Database.DSN)
		if err != nil {
			log.Fatal("connect to db", zap.Error(err))
		}
		defer pool.Close()
	}

	slots, err := buildSlotStore(ctx, cfg, pool)
	if err != nil {
		log.Fatal("init slot store", zap.Error(err))
	}

	productRepo, err := buildProductRepo(cfg, pool, log)
	if err != nil {
		log.Fatal("init catalog", zap.Error(err))
	}
	var proxyRepo proxyrepo.Repository
	if pool != nil {
		proxyRepo = proxyrepo.NewPostgres(pool)
	} else {
		proxyRepo = proxyrepo.NewStatic(seed.ProxyBuyers())
	}

	bus := events.NewBus()
	cartRepo := cartrepo.New(slots)
	orderRepo := orderrepo.New(slots)

	cartService := cartsvc.New(cartRepo, productRepo, bus)
	orderService := ordersvc.New(cartRepo, orderRepo, proxyRepo, bus, cfg.Order.SubmitDelay)
	catalogService := catalogsvc.New(productRepo)
	proxyService := proxysvc.New(proxyRepo)
	counter := badge.New(cartRepo, bus)
	defer counter.Close()

	srv, err := httpserver.New(cfg.Server.Addr, log, pool, httpserver.Deps{
		CartSvc:    cartService,
		OrderSvc:   orderService,
		CatalogSvc: catalogService,
		ProxySvc:   proxyService,
		Badge:      counter,
	}, httpserver.Options{
		Mode:        cfg.Server.Mode,
		CORSOrigins: cfg.CORS.AllowOrigins,
	})
	if err != nil {
		log.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	} else {
		log.Info("server stopped")
	}
}

// buildSlotStore picks the snapshot backend: postgres when the database is
// enabled, redis when configured, in-memory otherwise.
func buildSlotStore(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (slot.Store, error) {
	if pool != nil {
		return slot.NewPostgres(pool), nil
	}
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return slot.NewRedis(client, cfg.Redis.Prefix), nil
	}
	return slot.NewMemory(), nil
}

func buildProductRepo(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) (productrepo.Repository, error) {
	if cfg.Catalog.Source == config.CatalogPostgres {
		return productrepo.NewPostgres(pool, log), nil
	}
	products := seed.Products()
	if cfg.Catalog.FeedPath != "" {
		f, err := os.Open(cfg.Catalog.FeedPath)
		if err != nil {
			return nil, fmt.Errorf("open catalog feed: %w", err)
		}
		defer f.Close()
		products, err = importer.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("parse catalog feed: %w", err)
		}
	}
	return productrepo.NewStatic(products), nil
}
