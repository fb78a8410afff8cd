package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
)

// LookupCartItem godoc
// @Summary Look up a product variant in the cart
// @Description How many units of a product variant are in the cart, for product pages
// @Tags Cart
// @Produce json
// @Param product_id query string true "Product ID"
// @Param size query string false "Size"
// @Param color query string false "Color"
// @Param fabric query string false "Fabric"
// @Success 200 {object} models.ApiResponse{data=models.CartItemLookupResponse}
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /cart/items/lookup [get]
func (h *CartController) LookupCartItem(c *gin.Context) {
	var q models.CartItemLookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	store := storeFrom(c)
	v := q.Variant()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item looked up", models.CartItemLookupResponse{
		ID:       cart.Key(q.ProductID, v),
		Quantity: store.ItemQuantity(q.ProductID, v),
		InCart:   store.InCart(q.ProductID, v),
	}))
}
