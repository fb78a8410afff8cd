package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/config"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/services"
)

type stubCatalog map[string]models.CatalogProduct

func (s stubCatalog) Product(_ context.Context, id string) (models.CatalogProduct, error) {
	p, ok := s[id]
	if !ok {
		return models.CatalogProduct{}, services.ErrProductNotFound
	}
	return p, nil
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer, cart.Storage) {
	t.Helper()
	out := &bytes.Buffer{}
	mem := cart.NewMemoryStorage()
	return &app{
		cfg:    config.AppConfig{CartKeyPrefix: "cart:", JWTSecret: "cli-secret", JWTExpiry: time.Hour},
		out:    out,
		logger: zaptest.NewLogger(t),
		openStorage: func(context.Context) (cart.Storage, error) {
			return mem, nil
		},
		openCatalog: func() productCatalog {
			return stubCatalog{"p1": {ID: "p1", Name: "Linen Shirt", Price: 40}}
		},
	}, out, mem
}

func run(t *testing.T, a *app, args ...string) error {
	t.Helper()
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestSeedShowClear(t *testing.T) {
	a, out, mem := newTestApp(t)
	session := uuid.Must(uuid.NewV7()).String()

	require.NoError(t, run(t, a, "seed", session, "--product", "p1", "--qty", "2", "--size", "M"))
	require.NoError(t, run(t, a, "seed", session, "--product", "p1", "--size", "M"))

	raw, err := mem.Load(context.Background(), "cart:"+session)
	require.NoError(t, err)
	items := cart.Decode(raw)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	out.Reset()
	require.NoError(t, run(t, a, "show", session))
	var st cart.State
	require.NoError(t, json.Unmarshal(out.Bytes(), &st))
	assert.Equal(t, 120.0, st.Total)
	assert.Equal(t, 3, st.ItemCount)

	out.Reset()
	require.NoError(t, run(t, a, "clear", session))
	assert.Contains(t, out.String(), "Cart cleared")
	raw, err = mem.Load(context.Background(), "cart:"+session)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestSeed_UnknownProduct(t *testing.T) {
	a, _, _ := newTestApp(t)
	err := run(t, a, "seed", uuid.Must(uuid.NewV7()).String(), "--product", "nope")
	require.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestShow_InvalidSession(t *testing.T) {
	a, _, _ := newTestApp(t)
	err := run(t, a, "show", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session id")
}

func TestToken(t *testing.T) {
	a, out, _ := newTestApp(t)
	require.NoError(t, run(t, a, "token", "--user", "user-9", "--email", "grace@example.com", "--name", "Grace"))

	jwtService, err := services.NewJWTService("cli-secret", time.Hour)
	require.NoError(t, err)
	claims, err := jwtService.VerifyCustomerJWT(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.UserID)
	assert.Equal(t, "Grace", claims.Name)
}
