package models

// OrderItemInput is one cart line in the shape the order API accepts at
// checkout.
type OrderItemInput struct {
	ProductID     string  `json:"product_id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,min=1"`
	VariantSize   *string `json:"variant_size,omitempty"`
	VariantColor  *string `json:"variant_color,omitempty"`
	VariantFabric *string `json:"variant_fabric,omitempty"`
}

// CheckoutPreview is what the storefront sends on to order creation, with
// the amounts it should expect back.
type CheckoutPreview struct {
	Items        []OrderItemInput `json:"items"`
	ItemCount    int              `json:"item_count"`
	Subtotal     float64          `json:"subtotal"`
	Tax          float64          `json:"tax"`
	ShippingCost float64          `json:"shipping_cost"`
	Discount     float64          `json:"discount"`
	TotalAmount  float64          `json:"total_amount"`
}
