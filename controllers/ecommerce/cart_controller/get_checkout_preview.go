package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/services"
)

// GetCheckoutPreview godoc
// @Summary Checkout payload for the cart
// @Description Cart lines in the order API's item shape, with subtotal, tax (10%), shipping (5%) and total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutPreview}
// @Failure 400 {object} models.ApiResponse "Cart cannot be empty"
// @Router /cart/checkout [get]
func (h *CartController) GetCheckoutPreview(c *gin.Context) {
	preview, err := services.BuildCheckoutPreview(storeFrom(c).State())
	if errors.Is(err, services.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart cannot be empty"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to prepare checkout"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout preview ready", preview))
}
