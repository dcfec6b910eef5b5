package product

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"nowbuy/internal/domain"
)

// PostgresRepo implements Repository and Writer over the products table.
type PostgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) *PostgresRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresRepo{pool: pool, logger: logger}
}

const productColumns = `id, name, price_cents, COALESCE(image_url, ''), COALESCE(store, ''), available, created_at`

func (r *PostgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("product repo: list", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.ImageURL, &p.Store, &p.Available, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("product repo: get", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE name ILIKE '%' || $1 || '%'
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, strings.TrimSpace(query))
	if err != nil {
		r.logger.Error("product repo: search", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, price_cents, image_url, store, available)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price_cents = EXCLUDED.price_cents,
    image_url = EXCLUDED.image_url,
    store = EXCLUDED.store,
    available = EXCLUDED.available
RETURNING created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.ID,
		product.Name,
		product.PriceCents,
		product.ImageURL,
		product.Store,
		product.Available,
	).Scan(&res.CreatedAt)
	if err != nil {
		r.logger.Error("product repo: upsert", zap.Int64("id", product.ID), zap.Error(err))
		return nil, err
	}
	return &res, nil
}

func collect(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.ImageURL, &p.Store, &p.Available, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
