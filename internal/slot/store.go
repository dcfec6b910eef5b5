// Package slot provides keyed whole-document snapshot storage. Every slot is
// written and read as one opaque value; there is no partial update.
package slot

import (
	"context"
	"errors"
)

// ErrNotFound indicates the slot has no persisted value.
var ErrNotFound = errors.New("slot not found")

// Store persists opaque snapshots by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
