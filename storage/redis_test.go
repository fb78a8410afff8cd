package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/storage"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStorage_LoadSave(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	s := storage.NewRedisStorage(client, time.Hour)

	_, err := s.Load(ctx, "cart:a")
	assert.ErrorIs(t, err, cart.ErrSlotNotFound)

	require.NoError(t, s.Save(ctx, "cart:a", []byte(`[{"id":"p1---"}]`)))
	got, err := s.Load(ctx, "cart:a")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1---"}]`, string(got))

	require.NoError(t, s.Save(ctx, "cart:a", []byte(`[]`)))
	got, err = s.Load(ctx, "cart:a")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	assert.Equal(t, time.Hour, mr.TTL("cart:a"))

	mr.FastForward(2 * time.Hour)
	_, err = s.Load(ctx, "cart:a")
	assert.ErrorIs(t, err, cart.ErrSlotNotFound)
}

func TestRedisStorage_BackingCartStore(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	s := storage.NewRedisStorage(client, 0)
	allow := cart.WithAuthenticator(cart.AuthFunc(func(context.Context) bool { return true }))

	store := cart.Open(ctx, s, "cart:b", allow)
	_, err := store.AddItem(ctx, cart.Product{ID: "p1", Name: "Shirt", Price: 40}, 2, cart.Variant{Size: "L"})
	require.NoError(t, err)

	reopened := cart.Open(ctx, s, "cart:b", allow)
	assert.Equal(t, 2, reopened.ItemQuantity("p1", cart.Variant{Size: "L"}))
	assert.Equal(t, 80.0, reopened.State().Total)
}

func TestRedisStorage_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	s := storage.NewRedisStorage(client, 0)
	mr.Close()

	_, err = s.Load(ctx, "cart:c")
	require.Error(t, err)
	assert.NotErrorIs(t, err, cart.ErrSlotNotFound)
	assert.Error(t, s.Save(ctx, "cart:c", []byte(`[]`)))

	// Opening a store over a dead backend still yields an empty cart.
	store := cart.Open(ctx, s, "cart:c")
	assert.True(t, store.State().Empty())
}
