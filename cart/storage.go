package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrSlotNotFound is returned by a Storage when nothing was saved under a key.
var ErrSlotNotFound = errors.New("cart: slot not found")

// Storage is the durable slot holding the serialized line items. A slot is a
// single value per key, overwritten on every save.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// MemoryStorage keeps slots in process memory. Used for tests and the
// "memory" storage driver.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string][]byte)}
}

func (m *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryStorage) Save(_ context.Context, key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = buf
	return nil
}
