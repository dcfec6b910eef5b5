package order

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

// New returns a Repository storing one JSON order record per session.
func New(slots slot.Store) Repository {
	return &snapshotRepo{slots: slots}
}

func (r *snapshotRepo) Load(ctx context.Context, sessionID string) (*domain.Order, error) {
	raw, err := r.slots.Get(ctx, slotKey(sessionID))
	if err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var rec domain.Order
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *snapshotRepo) Save(ctx context.Context, sessionID string, order domain.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	return r.slots.Set(ctx, slotKey(sessionID), raw)
}

func (r *snapshotRepo) Clear(ctx context.Context, sessionID string) error {
	return r.slots.Delete(ctx, slotKey(sessionID))
}

func slotKey(sessionID string) string {
	return "lastOrder:" + sessionID
}
