package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStorage keeps cart slots in the cart_slots table, one row per key.
type PostgresStorage struct {
	db *gorm.DB
}

func NewPostgresStorage(db *gorm.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Migrate creates or updates the cart_slots table.
func (p *PostgresStorage) Migrate(ctx context.Context) error {
	return p.db.WithContext(ctx).AutoMigrate(&models.CartSlot{})
}

func (p *PostgresStorage) Load(ctx context.Context, key string) ([]byte, error) {
	var slot models.CartSlot
	err := p.db.WithContext(ctx).
		Select("items").
		Where("slot_key = ?", key).
		First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cart.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load cart slot %s: %w", key, err)
	}
	return []byte(slot.Items), nil
}

// Save upserts the slot. Concurrent writers are last-write-wins.
func (p *PostgresStorage) Save(ctx context.Context, key string, data []byte) error {
	slot := models.CartSlot{
		SlotKey: key,
		Items:   datatypes.JSON(data),
	}
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("save cart slot %s: %w", key, err)
	}
	return nil
}
