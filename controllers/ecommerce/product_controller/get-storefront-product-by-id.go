package product_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/services"
	"go.uber.org/zap"
)

type ProductCatalog interface {
	Product(ctx context.Context, productID string) (models.CatalogProduct, error)
}

type ProductController struct {
	catalog ProductCatalog
	logger  *zap.Logger
}

func NewProductController(catalog ProductCatalog, logger *zap.Logger) *ProductController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductController{catalog: catalog, logger: logger}
}

// GetStorefrontProductByID godoc
// @Summary Get single product for storefront
// @Description Get the name, price, media and variant options of an active product. These are the values the cart snapshots on add.
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CatalogProduct}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func (h *ProductController) GetStorefrontProductByID(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.catalog.Product(c.Request.Context(), productID)
	switch {
	case errors.Is(err, services.ErrInvalidProductID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	case err != nil:
		h.logger.Error("❌ failed to fetch storefront product", zap.String("product_id", productID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
