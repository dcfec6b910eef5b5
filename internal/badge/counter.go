// Package badge keeps the displayed cart-item count consistent with the
// persisted cart across surfaces that share no in-memory state.
package badge

import (
	"context"
	"sync"

	"nowbuy/internal/domain"
	"nowbuy/internal/events"
)

type cartLoader interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
}

// Counter subscribes to cart-changed signals and recomputes the summed item
// quantity from the persisted snapshot. Recomputation is synchronous and
// idempotent; repeated signals for the same state settle on the same count.
type Counter struct {
	carts       cartLoader
	unsubscribe func()

	mu     sync.RWMutex
	counts map[string]int
}

// New builds a Counter and subscribes it to bus. Callers own the returned
// Counter and must Close it when its surface is torn down.
func New(carts cartLoader, bus *events.Bus) *Counter {
	c := &Counter{
		carts:  carts,
		counts: make(map[string]int),
	}
	c.unsubscribe = bus.Subscribe(func(ev events.CartChanged) {
		c.recompute(context.Background(), ev.SessionID)
	})
	return c
}

// Count returns the badge count for the session, recomputing from the
// persisted cart when no signal has been seen yet.
func (c *Counter) Count(ctx context.Context, sessionID string) int {
	c.mu.RLock()
	count, ok := c.counts[sessionID]
	c.mu.RUnlock()
	if ok {
		return count
	}
	return c.recompute(ctx, sessionID)
}

func (c *Counter) recompute(ctx context.Context, sessionID string) int {
	cart, err := c.carts.Load(ctx, sessionID)
	if err != nil {
		// Unreadable state counts as an empty cart, matching the store's
		// degrade-to-empty contract.
		cart = domain.Cart{}
	}
	count := cart.ItemCount()
	c.mu.Lock()
	c.counts[sessionID] = count
	c.mu.Unlock()
	return count
}

// Close unsubscribes from the bus. A closed Counter still serves Count from
// the persisted snapshot but no longer reacts to signals.
func (c *Counter) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
