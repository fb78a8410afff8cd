package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	product_cache "github.com/mose868/fashionhouse-sub000/cache"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *float64:
			*p = r.values[i].(float64)
		case *[]byte:
			if r.values[i] != nil {
				*p = r.values[i].([]byte)
			}
		}
	}
	return nil
}

type fakeDB struct {
	row   fakeRow
	calls int
	args  []any
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	f.calls++
	f.args = args
	return f.row
}

func TestCatalogService_Product(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	db := &fakeDB{row: fakeRow{values: []any{
		id.String(),
		"Linen Shirt",
		49.99,
		[]byte(`{"primary":{"url":"https://cdn/shirt.jpg"}}`),
		[]byte(`[{"type":"Size","options":["S","M","L"]}]`),
	}}}
	svc := NewCatalogService(db, product_cache.New(0), zaptest.NewLogger(t))

	p, err := svc.Product(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", p.Name)
	assert.Equal(t, []any{id}, db.args)
	assert.True(t, p.Variants.Allows("size", "m"))
	assert.False(t, p.Variants.Allows("Size", "XXL"))
	assert.Equal(t, cart.Product{ID: id.String(), Name: "Linen Shirt", Price: 49.99, Image: "https://cdn/shirt.jpg"}, p.Snapshot())

	// Second lookup is served from the cache.
	_, err = svc.Product(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, 1, db.calls)
}

func TestCatalogService_NullJSON(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	db := &fakeDB{row: fakeRow{values: []any{id.String(), "Belt", 12.0, nil, nil}}}
	svc := NewCatalogService(db, nil, nil)

	p, err := svc.Product(context.Background(), id.String())
	require.NoError(t, err)
	assert.Empty(t, p.Snapshot().Image)
	assert.Empty(t, p.Variants)
}

func TestCatalogService_Errors(t *testing.T) {
	svc := NewCatalogService(&fakeDB{}, nil, nil)
	_, err := svc.Product(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidProductID)

	svc = NewCatalogService(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}}, nil, nil)
	_, err = svc.Product(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrProductNotFound)

	boom := errors.New("connection reset")
	svc = NewCatalogService(&fakeDB{row: fakeRow{err: boom}}, nil, zaptest.NewLogger(t))
	_, err = svc.Product(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}
