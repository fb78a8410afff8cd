package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/models"
)

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=cart.State} "Cart cleared"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /cart [delete]
func (h *CartController) ClearCart(c *gin.Context) {
	store := storeFrom(c)
	if err := store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save cart"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", store.State()))
}
