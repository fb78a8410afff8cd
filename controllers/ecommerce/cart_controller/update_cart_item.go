package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
)

// UpdateCartItem godoc
// @Summary Set cart item quantity
// @Description Set the quantity of a cart line. Zero or a negative quantity removes the line. Unknown lines are left alone.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Line item ID (productId-size-color-fabric)"
// @Param body body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartMutationResponse} "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart/items/{id} [patch]
func (h *CartController) UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	store := storeFrom(c)
	outcome, err := store.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	msg := "Cart item updated"
	switch outcome {
	case cart.OutcomeRemoved:
		msg = "Cart item removed"
	case cart.OutcomeNotFound:
		msg = "Cart item not in cart"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, msg, mutationResponse(outcome, store.State())))
}
