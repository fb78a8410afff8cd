package storage

import (
	"context"
	"fmt"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/config"
)

// ForDriver returns the cart backend selected by CART_STORAGE, connecting
// the shared Redis client or GORM database on first use.
func ForDriver(ctx context.Context, cfg config.AppConfig) (cart.Storage, error) {
	switch cfg.CartDriver {
	case config.DriverMemory:
		config.Logger.Warn("⚠️ cart storage is in-memory, carts will not survive a restart")
		return cart.NewMemoryStorage(), nil

	case config.DriverPostgres:
		if config.EcommerceGorm == nil {
			config.InitEcommerceGorm()
		}
		pg := NewPostgresStorage(config.EcommerceGorm)
		if err := pg.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate cart slots: %w", err)
		}
		return pg, nil

	default:
		if config.RedisClient == nil {
			config.ConnectRedis()
		}
		return NewRedisStorage(config.RedisClient, cfg.CartTTL), nil
	}
}
