package ecommerce_routes

import (
	store_product "github.com/mose868/fashionhouse-sub000/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, products *store_product.ProductController) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	store.GET("/products/:id", products.GetStorefrontProductByID) // Single product
}
