package proxy

import (
	"context"

	"nowbuy/internal/domain"
	proxyrepo "nowbuy/internal/repository/proxy"
)

// Service lists the proxy buyers suggested on the cart and order pages.
type Service struct {
	repo proxyrepo.Repository
}

func New(repo proxyrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.ProxyBuyer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ProxyBuyer, error) {
	return s.repo.GetByID(ctx, id)
}
