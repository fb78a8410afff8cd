// cartctl inspects and edits carts in the configured storage backend.
// Usage: go run ./cmd/cartctl show <session-id>
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	product_cache "github.com/mose868/fashionhouse-sub000/cache"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/config"
	"github.com/mose868/fashionhouse-sub000/services"
	"github.com/mose868/fashionhouse-sub000/storage"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	logger := config.InitLogger()
	defer func() { _ = logger.Sync() }()
	cfg := config.LoadAppConfig()

	a := &app{
		cfg:    cfg,
		out:    os.Stdout,
		logger: logger,
		openStorage: func(ctx context.Context) (cart.Storage, error) {
			return storage.ForDriver(ctx, cfg)
		},
		openCatalog: func() productCatalog {
			config.InitCatalogDB()
			return services.NewCatalogService(config.CmsDB, product_cache.New(product_cache.TTL), logger)
		},
	}

	if err := newRootCommand(a).ExecuteContext(context.Background()); err != nil {
		logger.Error("❌ cartctl failed", zap.Error(err))
		config.CloseDB()
		config.CloseRedis()
		os.Exit(1)
	}
	config.CloseDB()
	config.CloseRedis()
}
