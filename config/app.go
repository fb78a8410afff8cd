package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// AppConfig holds the settings of the cart service read from the environment.
type AppConfig struct {
	Port           string
	Env            string
	CartDriver     string
	CartKeyPrefix  string
	CartTTL        time.Duration
	JWTSecret      string
	JWTExpiry      time.Duration
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	CookieSecure   bool
}

func LoadAppConfig() AppConfig {
	cfg := AppConfig{
		Port:           getEnv("PORT", "8081"),
		Env:            getEnv("APP_ENV", "development"),
		CartDriver:     strings.ToLower(getEnv("CART_STORAGE", DriverRedis)),
		CartKeyPrefix:  getEnv("CART_KEY_PREFIX", "cart:"),
		CartTTL:        getDuration("CART_TTL", 30*24*time.Hour),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      getDuration("JWT_EXPIRY", 24*time.Hour),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001"), ","),
		RateLimit:      getInt("CART_RATE_LIMIT", 100),
		RateWindow:     getDuration("CART_RATE_WINDOW", time.Minute),
	}
	cfg.CookieSecure = cfg.Env == "production"

	switch cfg.CartDriver {
	case DriverRedis, DriverPostgres, DriverMemory:
	default:
		Logger.Warn("⚠️ unknown CART_STORAGE, falling back to redis", zap.String("driver", cfg.CartDriver))
		cfg.CartDriver = DriverRedis
	}
	return cfg
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		Logger.Warn("⚠️ invalid duration, using default", zap.String("key", key), zap.String("value", v))
		return def
	}
	return d
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		Logger.Warn("⚠️ invalid integer, using default", zap.String("key", key), zap.String("value", v))
		return def
	}
	return n
}
