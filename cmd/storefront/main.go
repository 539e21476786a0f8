package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/moldz3d/pkg/cart"
	"github.com/example/moldz3d/pkg/catalog"
	"github.com/example/moldz3d/pkg/checkout"
	"github.com/example/moldz3d/pkg/config"
	"github.com/example/moldz3d/pkg/storage"
	"github.com/example/moldz3d/web"
	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	ctx := context.Background()

	// Pick the cart slot backend. Redis gives a shared slot with
	// cross-process change notifications; when it is unreachable the
	// storefront degrades to a process-local cart rather than refusing
	// to start.
	backend := newBackend(ctx, cfg, logger)
	defer backend.Close()

	cartStore := cart.New(backend, logger.Named("cart"), cart.Options{
		CartKey:       cfg.Storage.CartKey,
		LegacyCartKey: cfg.Storage.LegacyCartKey,
	})
	if err := cartStore.Watch(ctx); err != nil {
		logger.Warn("Cart change watcher unavailable", zap.Error(err))
	}

	cat := catalog.New()

	checkoutSvc, err := checkout.NewService(cartStore, logger.Named("checkout"), cfg.Shipping, cfg.Checkout)
	if err != nil {
		logger.Fatal("Failed to create checkout service", zap.Error(err))
	}
	defer checkoutSvc.Close()

	// Create server
	server := web.NewServer(cfg, logger, cat, cartStore, checkoutSvc)
	server.SetupRoutes()

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			serverErr <- err
		}
	}()

	logger.Info("Storefront started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Storefront stopped")
}

func newBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) storage.Store {
	if cfg.Storage.Backend != "redis" {
		return storage.NewMemory()
	}

	redisStore := storage.NewRedis(&cfg.Redis, cfg.Storage.Channel)
	if err := redisStore.Ping(ctx); err != nil {
		logger.Warn("Redis unreachable, falling back to in-memory cart storage", zap.Error(err))
		redisStore.Close()
		return storage.NewMemory()
	}

	logger.Info("Redis connected successfully", zap.String("addr", cfg.Redis.Addr))
	return redisStore
}
