package product

import (
	"context"

	"nowbuy/internal/domain"
)

// Repository reads the product catalog. It may be backed by the database or
// by a static snapshot; callers get no freshness guarantee beyond "catalog
// state at call time".
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
}

// Writer upserts catalog rows; used by the importer and seeding.
type Writer interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
