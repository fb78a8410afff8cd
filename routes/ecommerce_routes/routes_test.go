package ecommerce_routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/controllers/ecommerce/cart_controller"
	"github.com/mose868/fashionhouse-sub000/controllers/ecommerce/product_controller"
	"github.com/mose868/fashionhouse-sub000/middleware"
	"github.com/mose868/fashionhouse-sub000/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	jwtService, err := services.NewJWTService("secret", time.Hour)
	require.NoError(t, err)
	catalog := services.NewCatalogService(nil, nil, logger)

	r := gin.New()
	api := r.Group("/api/v1")
	SetupStorefrontRoutes(api, product_controller.NewProductController(catalog, logger))
	SetupCartRoutes(api, cart_controller.NewCartController(catalog, logger), CartRouteConfig{
		JWT:        jwtService,
		Session:    middleware.CartSessionConfig{Storage: cart.NewMemoryStorage(), KeyPrefix: "cart:"},
		RateLimit:  10,
		RateWindow: time.Minute,
	})

	got := map[string]bool{}
	for _, ri := range r.Routes() {
		got[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/store/products/:id",
		"GET /api/v1/cart",
		"DELETE /api/v1/cart",
		"POST /api/v1/cart/items",
		"GET /api/v1/cart/items/lookup",
		"PATCH /api/v1/cart/items/:id",
		"DELETE /api/v1/cart/items/:id",
		"GET /api/v1/cart/checkout",
		"GET /api/v1/cart/quote",
	} {
		assert.True(t, got[want], want)
	}

	// Invalid ids are rejected before the catalog database is touched.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/products/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())
}
