// Package storage holds the durable cart slot backends.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps each cart slot as a plain string value. Every save
// refreshes the TTL, so idle carts expire on their own.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage returns a Redis-backed slot store. A zero ttl keeps slots
// forever.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func (r *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cart.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (r *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
