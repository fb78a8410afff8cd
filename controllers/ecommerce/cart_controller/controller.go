package cart_controller

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
	"go.uber.org/zap"
)

// ProductCatalog resolves a product id to an active catalog product.
type ProductCatalog interface {
	Product(ctx context.Context, productID string) (models.CatalogProduct, error)
}

// CartController serves the storefront cart endpoints. The cart itself comes
// from the request context, put there by middleware.CartSession.
type CartController struct {
	catalog ProductCatalog
	logger  *zap.Logger
	now     func() time.Time
}

func NewCartController(catalog ProductCatalog, logger *zap.Logger) *CartController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartController{catalog: catalog, logger: logger, now: time.Now}
}

func storeFrom(c *gin.Context) *cart.Store {
	return cart.FromContext(c.Request.Context())
}

func mutationResponse(outcome cart.Outcome, st cart.State) models.CartMutationResponse {
	return models.CartMutationResponse{Outcome: outcome.String(), Cart: st}
}
