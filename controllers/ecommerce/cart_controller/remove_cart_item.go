package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
)

// RemoveCartItem godoc
// @Summary Remove cart item
// @Description Remove a line from the cart. Removing a line that is not there succeeds and changes nothing.
// @Tags Cart
// @Produce json
// @Param id path string true "Line item ID (productId-size-color-fabric)"
// @Success 200 {object} models.ApiResponse{data=models.CartMutationResponse} "Cart updated"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart/items/{id} [delete]
func (h *CartController) RemoveCartItem(c *gin.Context) {
	store := storeFrom(c)
	removed, err := store.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}

	outcome := cart.OutcomeNotFound
	if removed {
		outcome = cart.OutcomeRemoved
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item removed", mutationResponse(outcome, store.State())))
}
