package cart

import (
	"context"

	"nowbuy/internal/domain"
)

// Repository persists the per-session cart snapshot.
type Repository interface {
	// Load returns the current cart. A missing or undecodable snapshot
	// degrades to an empty cart, never an error.
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	// Save replaces the whole snapshot.
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
	// Clear removes the snapshot entirely. Observably equivalent to saving
	// an empty cart for readers.
	Clear(ctx context.Context, sessionID string) error
}
