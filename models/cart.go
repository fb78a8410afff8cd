package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mose868/fashionhouse-sub000/cart"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Cart slot (GORM)
// ═══════════════════════════════════════════════════════════

// CartSlot is the SQL home of a serialized cart. One row per storage key,
// overwritten on every save.
type CartSlot struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	SlotKey   string         `json:"slot_key" gorm:"not null;uniqueIndex"`
	Items     datatypes.JSON `json:"items" gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *CartSlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (CartSlot) TableName() string {
	return "cart_slots"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=0,max=9999" example:"1"` // max is cart.MaxLineQuantity
	Size      string `json:"size" example:"M"`
	Color     string `json:"color" example:"Red"`
	Fabric    string `json:"fabric" example:"Linen"`
}

func (r AddCartItemRequest) Variant() cart.Variant {
	return cart.Variant{Size: r.Size, Color: r.Color, Fabric: r.Fabric}
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=9999" example:"2"` // max is cart.MaxLineQuantity
}

type CartItemLookupQuery struct {
	ProductID string `form:"product_id" binding:"required"`
	Size      string `form:"size"`
	Color     string `form:"color"`
	Fabric    string `form:"fabric"`
}

func (q CartItemLookupQuery) Variant() cart.Variant {
	return cart.Variant{Size: q.Size, Color: q.Color, Fabric: q.Fabric}
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type CartMutationResponse struct {
	Outcome string     `json:"outcome"`
	Cart    cart.State `json:"cart"`
}

type CartItemLookupResponse struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	InCart   bool   `json:"in_cart"`
}
