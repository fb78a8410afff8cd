package services

import (
	"context"
	"sync"

	"github.com/mose868/fashionhouse-sub000/cart"
	"go.uber.org/zap"
)

// NotificationCollector gathers the notifications emitted while serving one
// request so they can be returned to the storefront as toasts.
type NotificationCollector struct {
	mu     sync.Mutex
	items  []cart.Notification
	logger *zap.Logger
}

func NewNotificationCollector(logger *zap.Logger) *NotificationCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationCollector{logger: logger}
}

func (n *NotificationCollector) Notify(_ context.Context, note cart.Notification) {
	n.mu.Lock()
	n.items = append(n.items, note)
	n.mu.Unlock()

	n.logger.Debug("cart notification",
		zap.String("level", string(note.Level)),
		zap.String("message", note.Message),
	)
}

// Drain returns the collected notifications and resets the collector.
func (n *NotificationCollector) Drain() []cart.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.items
	n.items = nil
	return out
}
