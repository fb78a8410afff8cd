package product_cache

import (
	"sync"
	"time"

	"github.com/mose868/fashionhouse-sub000/models"
)

const TTL = 5 * time.Minute

// ── Catalog product cache ───────────────────────────────────────────────────
// Keyed by product id. Catalog lookups for add-to-cart read from this first.

type entry struct {
	product   models.CatalogProduct
	fetchedAt time.Time
}

type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Cache{ttl: ttl, entries: make(map[string]entry), now: time.Now}
}

func (c *Cache) Get(id string) (models.CatalogProduct, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.product, true
	}
	return models.CatalogProduct{}, false
}

func (c *Cache) Set(p models.CatalogProduct) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[p.ID] = entry{product: p, fetchedAt: c.now()}
}
