package proxy

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nowbuy/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const proxyColumns = `id, name, COALESCE(avatar_url, ''), rating, completed_orders, distance_meters, estimated_minutes, commission, verified, COALESCE(description, '')`

func (r *postgresRepo) List(ctx context.Context) ([]domain.ProxyBuyer, error) {
	const q = `
SELECT ` + proxyColumns + `
FROM proxy_buyers
ORDER BY rating DESC, id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ProxyBuyer
	for rows.Next() {
		var p domain.ProxyBuyer
		if err := rows.Scan(&p.ID, &p.Name, &p.AvatarURL, &p.Rating, &p.CompletedOrders, &p.DistanceMeters, &p.EstimatedMinutes, &p.Commission, &p.Verified, &p.Description); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.ProxyBuyer, error) {
	const q = `
SELECT ` + proxyColumns + `
FROM proxy_buyers
WHERE id = $1
`
	var p domain.ProxyBuyer
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.AvatarURL, &p.Rating, &p.CompletedOrders, &p.DistanceMeters, &p.EstimatedMinutes, &p.Commission, &p.Verified, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
