package product

import (
	"context"
	"sort"
	"strings"
	"sync"

	"nowbuy/internal/domain"
)

// StaticRepo serves the catalog from an in-memory snapshot, the database-less
// mode backed by the flat JSON feed.
type StaticRepo struct {
	mu       sync.RWMutex
	products map[int64]domain.Product
}

func NewStatic(products []domain.Product) *StaticRepo {
	r := &StaticRepo{products: make(map[int64]domain.Product, len(products))}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *StaticRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *StaticRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *StaticRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return all, nil
	}
	result := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *StaticRepo) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = product
	return &product, nil
}
