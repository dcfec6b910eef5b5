package order

import (
	"context"

	"nowbuy/internal/domain"
)

// Repository persists the most recent order record per session. Saving
// overwrites any prior unconsumed record; there is no history here.
type Repository interface {
	// Load returns the last submitted order, or domain.ErrNotFound when no
	// record exists or the snapshot cannot be decoded.
	Load(ctx context.Context, sessionID string) (*domain.Order, error)
	Save(ctx context.Context, sessionID string, order domain.Order) error
	Clear(ctx context.Context, sessionID string) error
}
