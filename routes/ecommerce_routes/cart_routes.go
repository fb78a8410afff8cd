package ecommerce_routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/controllers/ecommerce/cart_controller"
	"github.com/mose868/fashionhouse-sub000/middleware"
	"github.com/mose868/fashionhouse-sub000/services"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CartRouteConfig carries what the cart group's middleware chain needs.
type CartRouteConfig struct {
	JWT        *services.JWTService
	Session    middleware.CartSessionConfig
	Redis      *redis.Client // nil disables rate limiting
	RateLimit  int
	RateWindow time.Duration
	Logger     *zap.Logger
}

// SetupCartRoutes sets up the storefront cart. Every route runs with the
// shopper's cart store in the request context.
func SetupCartRoutes(router *gin.RouterGroup, h *cart_controller.CartController, cfg CartRouteConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := router.Group("/cart")
	c.Use(middleware.RateLimiter(cfg.Redis, cfg.RateLimit, cfg.RateWindow, logger))
	c.Use(middleware.OptionalAuth(cfg.JWT, logger))
	c.Use(middleware.CartSession(cfg.Session))
	{
		c.GET("", h.GetCart)
		c.DELETE("", h.ClearCart)

		c.POST("/items", h.AddCartItem)
		c.GET("/items/lookup", h.LookupCartItem)
		c.PATCH("/items/:id", h.UpdateCartItem)
		c.DELETE("/items/:id", h.RemoveCartItem)

		c.GET("/checkout", h.GetCheckoutPreview)
		c.GET("/quote", h.DownloadCartQuote)
	}
}
