package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/models"
)

// GetCart godoc
// @Summary Get cart
// @Description Get the line items, total and item count of the current cart session
// @Tags Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=cart.State} "Cart fetched successfully"
// @Router /cart [get]
func (h *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", storeFrom(c).State()))
}
