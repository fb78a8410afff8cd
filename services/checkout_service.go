package services

import (
	"errors"
	"math"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
)

// Rates applied by order creation.
const (
	TaxRate      = 0.10
	ShippingRate = 0.05
)

var ErrEmptyCart = errors.New("cart cannot be empty")

// BuildCheckoutPreview maps the cart to order item inputs and computes the
// amounts order creation will charge.
func BuildCheckoutPreview(st cart.State) (models.CheckoutPreview, error) {
	if st.Empty() {
		return models.CheckoutPreview{}, ErrEmptyCart
	}

	items := make([]models.OrderItemInput, 0, len(st.Items))
	for _, it := range st.Items {
		items = append(items, models.OrderItemInput{
			ProductID:     it.Product.ID,
			Quantity:      it.Quantity,
			VariantSize:   optional(it.Size),
			VariantColor:  optional(it.Color),
			VariantFabric: optional(it.Fabric),
		})
	}

	subtotal := roundCents(st.Total)
	tax := roundCents(subtotal * TaxRate)
	shipping := roundCents(subtotal * ShippingRate)
	discount := 0.0

	return models.CheckoutPreview{
		Items:        items,
		ItemCount:    st.ItemCount,
		Subtotal:     subtotal,
		Tax:          tax,
		ShippingCost: shipping,
		Discount:     discount,
		TotalAmount:  roundCents(subtotal + tax + shipping - discount),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
