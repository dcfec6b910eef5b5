package proxy

import (
	"context"

	"nowbuy/internal/domain"
)

// Repository lists the proxy buyers offered for selection.
type Repository interface {
	List(ctx context.Context) ([]domain.ProxyBuyer, error)
	GetByID(ctx context.Context, id int64) (*domain.ProxyBuyer, error)
}
