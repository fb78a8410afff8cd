package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// CmsDB reads the product catalog (products live in the CMS database).
	CmsDB *pgxpool.Pool

	// EcommerceGorm holds storefront state, including cart slots when the
	// postgres driver is selected.
	EcommerceGorm *gorm.DB
)

// InitCatalogDB connects the pgx pool used for catalog snapshot reads.
func InitCatalogDB() {
	cmsURL := os.Getenv("CMS_DB_URL")
	if cmsURL == "" {
		cmsURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/modeva_cms_backend?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		Logger.Warn("⚠️ CMS_DB_URL not set, using local default")
	}

	ctx, cancel := WithTimeout()
	defer cancel()

	var err error
	CmsDB, err = pgxpool.New(ctx, cmsURL)
	if err != nil {
		Logger.Fatal("❌ Unable to connect to CMS database", zap.Error(err))
	}
	if err = CmsDB.Ping(ctx); err != nil {
		Logger.Fatal("❌ CMS database ping failed", zap.Error(err))
	}
	Logger.Info("✅ CMS database connected (pgx)")
}

// InitEcommerceGorm connects GORM to the storefront database.
func InitEcommerceGorm() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	dsn := os.Getenv("ECOMMERCE_DB_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=modeva_ecommerce port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		Logger.Warn("⚠️ ECOMMERCE_DB_URL not set, using local GORM default")
	}

	var err error
	EcommerceGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		Logger.Fatal("❌ Failed to connect to Ecommerce database with GORM", zap.Error(err))
	}
	if sqlDB, err := EcommerceGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	Logger.Info("✅ Ecommerce database connected (GORM)")
}

func CloseDB() {
	if CmsDB != nil {
		CmsDB.Close()
		Logger.Info("✅ CMS database connection closed (pgx)")
	}
	if EcommerceGorm != nil {
		sqlDB, _ := EcommerceGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			Logger.Info("✅ Ecommerce database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
