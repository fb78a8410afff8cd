package storage_test

import (
	"context"
	"testing"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLStorage(t *testing.T) (*storage.PostgresStorage, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := storage.NewPostgresStorage(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s, db
}

func TestPostgresStorage_LoadSave(t *testing.T) {
	ctx := context.Background()
	s, db := newSQLStorage(t)

	_, err := s.Load(ctx, "cart:a")
	assert.ErrorIs(t, err, cart.ErrSlotNotFound)

	require.NoError(t, s.Save(ctx, "cart:a", []byte(`[{"id":"p1---","quantity":1}]`)))
	require.NoError(t, s.Save(ctx, "cart:a", []byte(`[]`)))
	require.NoError(t, s.Save(ctx, "cart:b", []byte(`[{"id":"p2---","quantity":3}]`)))

	got, err := s.Load(ctx, "cart:a")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	got, err = s.Load(ctx, "cart:b")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p2---","quantity":3}]`, string(got))

	var rows int64
	require.NoError(t, db.Model(&models.CartSlot{}).Count(&rows).Error)
	assert.EqualValues(t, 2, rows, "saves must overwrite the slot, not append")
}

func TestPostgresStorage_BackingCartStore(t *testing.T) {
	ctx := context.Background()
	s, _ := newSQLStorage(t)
	allow := cart.WithAuthenticator(cart.AuthFunc(func(context.Context) bool { return true }))

	store := cart.Open(ctx, s, "cart:z", allow)
	_, err := store.AddItem(ctx, cart.Product{ID: "p9", Name: "Coat", Price: 120}, 1, cart.Variant{Color: "Camel", Fabric: "Wool"})
	require.NoError(t, err)
	_, err = store.AddItem(ctx, cart.Product{ID: "p9", Name: "Coat", Price: 120}, 1, cart.Variant{Color: "Camel", Fabric: "Wool"})
	require.NoError(t, err)

	reopened := cart.Open(ctx, s, "cart:z", allow)
	st := reopened.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "p9--Camel-Wool", st.Items[0].ID)
	assert.Equal(t, 240.0, st.Total)
}
