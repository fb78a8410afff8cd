package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	product_cache "github.com/mose868/fashionhouse-sub000/cache"
	"github.com/mose868/fashionhouse-sub000/models"
	"go.uber.org/zap"
)

var (
	ErrInvalidProductID = errors.New("invalid product ID")
	ErrProductNotFound  = errors.New("product not found")
)

// RowQuerier is the part of *pgxpool.Pool the catalog reads need.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CatalogService resolves product ids to the snapshot the cart stores. It
// is the one place product identifiers are normalised for the cart.
type CatalogService struct {
	db     RowQuerier
	cache  *product_cache.Cache
	logger *zap.Logger
}

func NewCatalogService(db RowQuerier, cache *product_cache.Cache, logger *zap.Logger) *CatalogService {
	if cache == nil {
		cache = product_cache.New(product_cache.TTL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{db: db, cache: cache, logger: logger}
}

const activeProductQuery = `
	SELECT
		p.id::text AS id,
		p.name,
		p.price::float8 AS price,
		p.media,
		p.variants
	FROM products p
	WHERE p.id = $1 AND p.status = 'Active'
`

// Product returns an active catalog product.
func (s *CatalogService) Product(ctx context.Context, productID string) (models.CatalogProduct, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return models.CatalogProduct{}, fmt.Errorf("%w: %q", ErrInvalidProductID, productID)
	}
	key := id.String()

	if p, ok := s.cache.Get(key); ok {
		return p, nil
	}

	var (
		p           models.CatalogProduct
		mediaRaw    []byte
		variantsRaw []byte
	)
	err = s.db.QueryRow(ctx, activeProductQuery, id).Scan(&p.ID, &p.Name, &p.Price, &mediaRaw, &variantsRaw)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.CatalogProduct{}, fmt.Errorf("%w: %s", ErrProductNotFound, key)
	}
	if err != nil {
		s.logger.Error("❌ catalog lookup failed", zap.String("product_id", key), zap.Error(err))
		return models.CatalogProduct{}, fmt.Errorf("catalog lookup %s: %w", key, err)
	}

	if err := scanJSON(&p.Media, mediaRaw); err != nil {
		return models.CatalogProduct{}, fmt.Errorf("parse media of %s: %w", key, err)
	}
	if err := scanJSON(&p.Variants, variantsRaw); err != nil {
		return models.CatalogProduct{}, fmt.Errorf("parse variants of %s: %w", key, err)
	}

	s.cache.Set(p)
	return p, nil
}

func scanJSON(dst sql.Scanner, raw []byte) error {
	if raw == nil {
		return dst.Scan(nil)
	}
	return dst.Scan(raw)
}
