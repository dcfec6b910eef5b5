package proxy

import (
	"context"

	"nowbuy/internal/domain"
)

// StaticRepo serves a fixed proxy-buyer roster for database-less runs.
type StaticRepo struct {
	proxies []domain.ProxyBuyer
}

func NewStatic(proxies []domain.ProxyBuyer) *StaticRepo {
	return &StaticRepo{proxies: proxies}
}

func (r *StaticRepo) List(_ context.Context) ([]domain.ProxyBuyer, error) {
	out := make([]domain.ProxyBuyer, len(r.proxies))
	copy(out, r.proxies)
	return out, nil
}

func (r *StaticRepo) GetByID(_ context.Context, id int64) (*domain.ProxyBuyer, error) {
	for _, p := range r.proxies {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}
