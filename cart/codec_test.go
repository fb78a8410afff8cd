package cart_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	items := []cart.LineItem{
		{
			ID:       "p1-M-Red-Linen",
			Product:  cart.Product{ID: "p1", Name: "Linen Shirt", Price: 1000, Image: "https://img/p1.jpg"},
			Quantity: 2,
			Size:     "M",
			Color:    "Red",
			Fabric:   "Linen",
		},
		{
			ID:       "p2---",
			Product:  cart.Product{ID: "p2", Name: "Silk Scarf", Price: 250.5},
			Quantity: 1,
		},
	}

	data, err := cart.Encode(items)
	require.NoError(t, err)

	if diff := cmp.Diff(items, cart.Decode(data)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_WireShape(t *testing.T) {
	data, err := cart.Encode([]cart.LineItem{{
		ID:       "p1-M-Red-",
		Product:  cart.Product{ID: "p1", Name: "Linen Shirt", Price: 1000, Image: "a.jpg"},
		Quantity: 2,
		Size:     "M",
		Color:    "Red",
	}})
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": "p1-M-Red-",
		"product": {"_id": "p1", "name": "Linen Shirt", "price": 1000, "image": "a.jpg"},
		"quantity": 2,
		"size": "M",
		"color": "Red",
		"fabric": ""
	}]`, string(data))

	data, err = cart.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecode_FailSoft(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "blank", data: "   "},
		{name: "null", data: "null"},
		{name: "truncated", data: `[{"id":"p1`},
		{name: "object", data: `{"items":[]}`},
		{name: "wrong types", data: `[{"quantity":"two"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cart.Decode([]byte(tt.data))
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestDecode_Normalizes(t *testing.T) {
	data := `[
		{"id":"stale","product":{"_id":"p1","name":"Linen Shirt","price":10},"quantity":2,"size":"M"},
		{"id":"p1-M--","product":{"_id":"p1","name":"Linen Shirt","price":10},"quantity":3,"size":"M"},
		{"id":"x","product":{"_id":"","name":"ghost","price":10},"quantity":1},
		{"id":"p2---","product":{"_id":"p2","name":"Scarf","price":5},"quantity":0},
		{"id":"p3---","product":{"_id":"p3","name":"Belt","price":7},"quantity":1}
	]`

	got := cart.Decode([]byte(data))
	require.Len(t, got, 2)
	assert.Equal(t, "p1-M--", got[0].ID)
	assert.Equal(t, 5, got[0].Quantity)
	assert.Equal(t, "p3---", got[1].ID)
}

func TestDecode_CapsQuantityAndDropsAmbiguousVariants(t *testing.T) {
	data := `[
		{"product":{"_id":"p1","name":"Linen Shirt","price":10},"quantity":9223372036854775807,"size":"M"},
		{"product":{"_id":"p1","name":"Linen Shirt","price":10},"quantity":9223372036854775807,"size":"M"},
		{"product":{"_id":"p2","name":"Scarf","price":5},"quantity":1,"color":"navy-blue"}
	]`

	got := cart.Decode([]byte(data))
	require.Len(t, got, 1)
	assert.Equal(t, "p1-M--", got[0].ID)
	assert.Equal(t, cart.MaxLineQuantity, got[0].Quantity)
}
