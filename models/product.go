package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/mose868/fashionhouse-sub000/cart"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions (catalog products table)
// ═══════════════════════════════════════════════════════════

type MediaURL struct {
	URL   string `json:"url" binding:"required"`
	Order *int   `json:"order,omitempty"`
}

type ProductMedia struct {
	Primary MediaURL   `json:"primary" binding:"required"`
	Other   []MediaURL `json:"other,omitempty"`
}

type ProductVariant struct {
	Type    string   `json:"type" binding:"required" example:"Size"`
	Options []string `json:"options" binding:"required" example:"['Small', 'Medium', 'Large']"`
}

type VariantsList []ProductVariant

// Options returns the options declared for a variant type (case-insensitive),
// and whether the type is declared at all.
func (v VariantsList) Options(variantType string) ([]string, bool) {
	for _, pv := range v {
		if strings.EqualFold(pv.Type, variantType) {
			return pv.Options, true
		}
	}
	return nil, false
}

// Allows reports whether value is acceptable for the variant type. Empty
// values and undeclared types are always allowed.
func (v VariantsList) Allows(variantType, value string) bool {
	if value == "" {
		return true
	}
	opts, ok := v.Options(variantType)
	if !ok || len(opts) == 0 {
		return true
	}
	for _, o := range opts {
		if strings.EqualFold(o, value) {
			return true
		}
	}
	return false
}

// CatalogProduct is the slice of an active catalog product the storefront
// cart needs.
type CatalogProduct struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Media    ProductMedia `json:"media"`
	Variants VariantsList `json:"variants"`
}

// Snapshot copies the display data the cart keeps for a line item.
func (p CatalogProduct) Snapshot() cart.Product {
	return cart.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Media.Primary.URL,
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanners
// ═══════════════════════════════════════════════════════════

// VariantsList methods
func (v *VariantsList) Scan(value interface{}) error {
	if value == nil {
		*v = make(VariantsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan VariantsList")
	}
	return json.Unmarshal(bytes, v)
}

// ProductMedia methods
func (m *ProductMedia) Scan(value interface{}) error {
	if value == nil {
		*m = ProductMedia{Other: make([]MediaURL, 0)}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ProductMedia")
	}
	return json.Unmarshal(bytes, m)
}
