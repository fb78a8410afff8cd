package cart

import "strings"

// keySeparator joins the parts of a line item identity key.
const keySeparator = "-"

// MaxLineQuantity caps the units a single line can hold.
const MaxLineQuantity = 9999

// Product is the catalog data copied into the cart when an item is added.
// Later catalog changes do not touch it.
type Product struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// Variant selects a configuration of a product. Empty fields are valid and
// still take part in identity.
type Variant struct {
	Size   string `json:"size"`
	Color  string `json:"color"`
	Fabric string `json:"fabric"`
}

// LineItem is one product+variant row in the cart.
type LineItem struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Fabric   string  `json:"fabric"`
}

// Key returns the identity key for a product and variant, e.g. "p1-M-Red-".
func Key(productID string, v Variant) string {
	return strings.Join([]string{productID, v.Size, v.Color, v.Fabric}, keySeparator)
}

// Valid reports whether the selectors can be told apart inside a key. A
// selector containing the key separator could alias another variant.
func (v Variant) Valid() bool {
	return !strings.Contains(v.Size, keySeparator) &&
		!strings.Contains(v.Color, keySeparator) &&
		!strings.Contains(v.Fabric, keySeparator)
}

// Variant returns the variant selectors of the line item.
func (li LineItem) Variant() Variant {
	return Variant{Size: li.Size, Color: li.Color, Fabric: li.Fabric}
}

// Subtotal is price times quantity for the line.
func (li LineItem) Subtotal() float64 {
	return li.Product.Price * float64(li.Quantity)
}

func newLineItem(p Product, quantity int, v Variant) LineItem {
	return LineItem{
		ID:       Key(p.ID, v),
		Product:  p,
		Quantity: quantity,
		Size:     v.Size,
		Color:    v.Color,
		Fabric:   v.Fabric,
	}
}

// addQuantity sums two line quantities, saturating at MaxLineQuantity.
func addQuantity(a, b int) int {
	if a >= MaxLineQuantity || b >= MaxLineQuantity || a+b > MaxLineQuantity {
		return MaxLineQuantity
	}
	return a + b
}

func clampQuantity(q int) int {
	if q > MaxLineQuantity {
		return MaxLineQuantity
	}
	return q
}

func findItem(items []LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
