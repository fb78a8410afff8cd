// @title Modeva Cart API
// @version 1.0
// @description Modeva storefront cart: line items per device, quantity merging, checkout preview and PDF quotes
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	product_cache "github.com/mose868/fashionhouse-sub000/cache"
	"github.com/mose868/fashionhouse-sub000/config"
	"github.com/mose868/fashionhouse-sub000/controllers/ecommerce/cart_controller"
	"github.com/mose868/fashionhouse-sub000/controllers/ecommerce/product_controller"
	_ "github.com/mose868/fashionhouse-sub000/docs"
	"github.com/mose868/fashionhouse-sub000/middleware"
	"github.com/mose868/fashionhouse-sub000/routes/ecommerce_routes"
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
	if cfg.JWTSecret == "" {
		logger.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Product catalog (read-only)
	config.InitCatalogDB()
	defer config.CloseDB()

	// Redis backs the rate limiter whenever it is reachable, and the carts
	// themselves with the redis driver.
	if cfg.CartDriver == config.DriverRedis || os.Getenv("REDIS_URL") != "" {
		config.ConnectRedis()
		defer config.CloseRedis()
	}

	ctx, cancel := config.WithTimeout()
	cartStorage, err := storage.ForDriver(ctx, cfg)
	cancel()
	if err != nil {
		logger.Fatal("❌ failed to initialize cart storage", zap.Error(err))
	}
	logger.Info("✅ Cart storage ready", zap.String("driver", cfg.CartDriver))

	jwtService, err := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		logger.Fatal("❌ failed to initialize JWT service", zap.Error(err))
	}
	logger.Info("✅ JWT Service initialized")

	catalog := services.NewCatalogService(config.CmsDB, product_cache.New(product_cache.TTL), logger)

	// ✅ Configure CORS for JSON and PDF downloads
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cart_storage": cfg.CartDriver})
	})

	api := router.Group("/api/v1")

	ecommerce_routes.SetupStorefrontRoutes(api, product_controller.NewProductController(catalog, logger))
	ecommerce_routes.SetupCartRoutes(api, cart_controller.NewCartController(catalog, logger), ecommerce_routes.CartRouteConfig{
		JWT: jwtService,
		Session: middleware.CartSessionConfig{
			Storage:      cartStorage,
			KeyPrefix:    cfg.CartKeyPrefix,
			CookieSecure: cfg.CookieSecure,
			Logger:       logger,
		},
		Redis:      config.RedisClient,
		RateLimit:  cfg.RateLimit,
		RateWindow: cfg.RateWindow,
		Logger:     logger,
	})
	logger.Info("✅ Cart routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server is running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ graceful shutdown failed", zap.Error(err))
	}
}
