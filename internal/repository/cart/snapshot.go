package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"nowbuy/internal/domain"
	"nowbuy/internal/slot"
)

type snapshotRepo struct {
	slots slot.Store
}

// New returns a Repository storing one JSON snapshot per session in slots.
func New(slots slot.Store) Repository {
	return &snapshotRepo{slots: slots}
}

func (r *snapshotRepo) Load(ctx context.Context, sessionID string) (domain.Cart, error) {
	raw, err := r.slots.Get(ctx, slotKey(sessionID))
	if err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, err
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// Corrupt snapshots are treated as absent.
		return domain.Cart{}, nil
	}
	return cart, nil
}

func (r *snapshotRepo) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return r.slots.Set(ctx, slotKey(sessionID), raw)
}

func (r *snapshotRepo) Clear(ctx context.Context, sessionID string) error {
	return r.slots.Delete(ctx, slotKey(sessionID))
}

func slotKey(sessionID string) string {
	return "cart:" + sessionID
}
