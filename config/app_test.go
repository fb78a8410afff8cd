package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_ENV", "CART_STORAGE", "CART_KEY_PREFIX", "CART_TTL", "JWT_EXPIRY", "ALLOWED_ORIGINS", "CART_RATE_LIMIT", "CART_RATE_WINDOW"} {
		t.Setenv(k, "")
	}

	cfg := LoadAppConfig()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, DriverRedis, cfg.CartDriver)
	assert.Equal(t, "cart:", cfg.CartKeyPrefix)
	assert.Equal(t, 30*24*time.Hour, cfg.CartTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.AllowedOrigins)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadAppConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CART_STORAGE", "Postgres")
	t.Setenv("CART_TTL", "2h")
	t.Setenv("CART_RATE_LIMIT", "not-a-number")
	t.Setenv("CART_RATE_WINDOW", "bogus")

	cfg := LoadAppConfig()
	assert.Equal(t, DriverPostgres, cfg.CartDriver)
	assert.Equal(t, 2*time.Hour, cfg.CartTTL)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadAppConfig_UnknownDriver(t *testing.T) {
	t.Setenv("CART_STORAGE", "dynamo")
	assert.Equal(t, DriverRedis, LoadAppConfig().CartDriver)
}
