package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/services"
	"go.uber.org/zap"
)

// AddCartItem godoc
// @Summary Add item to cart
// @Description Add a product variant to the cart. The product snapshot (name, price, image) is taken from the catalog at this moment. Adding a variant already in the cart increases its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.AddCartItemRequest true "Product and variant"
// @Success 201 {object} models.ApiResponse{data=models.CartMutationResponse} "Item added"
// @Success 200 {object} models.ApiResponse{data=models.CartMutationResponse} "Quantity increased"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Login required"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart/items [post]
func (h *CartController) AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	ctx := c.Request.Context()

	product, err := h.catalog.Product(ctx, req.ProductID)
	switch {
	case errors.Is(err, services.ErrInvalidProductID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	case err != nil:
		h.logger.Error("❌ failed to fetch product for cart", zap.String("product_id", req.ProductID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	for _, check := range []struct{ variantType, value string }{
		{"Size", req.Size},
		{"Color", req.Color},
		{"Fabric", req.Fabric},
	} {
		if !product.Variants.Allows(check.variantType, check.value) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid "+check.variantType+" option: "+check.value))
			return
		}
	}

	store := storeFrom(c)
	outcome, err := store.AddItem(ctx, product.Snapshot(), req.Quantity, req.Variant())
	if errors.Is(err, cart.ErrInvalidProduct) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product cannot be added to cart"))
		return
	}
	if errors.Is(err, cart.ErrInvalidVariant) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Variant options cannot contain \"-\""))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	switch outcome {
	case cart.OutcomeRejected:
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Login required"))
	case cart.OutcomeAdded:
		h.logger.Info("✅ item added to cart", zap.String("product_id", product.ID), zap.String("cart", store.Key()))
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added to cart", mutationResponse(outcome, store.State())))
	default:
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item quantity increased", mutationResponse(outcome, store.State())))
	}
}
