package services

import (
	"context"
	"testing"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestNotificationCollector(t *testing.T) {
	c := NewNotificationCollector(zaptest.NewLogger(t))
	c.Notify(context.Background(), cart.Notification{Level: cart.LevelSuccess, Message: "Shirt added to cart"})
	c.Notify(context.Background(), cart.Notification{Level: cart.LevelInfo, Message: "Cart cleared"})

	got := c.Drain()
	assert.Len(t, got, 2)
	assert.Equal(t, "Cart cleared", got[1].Message)
	assert.Empty(t, c.Drain())
}
