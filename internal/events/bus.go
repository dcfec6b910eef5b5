// Package events carries same-process change notifications between
// independently wired components. Delivery is synchronous: Publish returns
// after every subscriber has run.
package events

import "sync"

// CartChanged signals that the persisted cart of a session was rewritten.
// It carries no payload beyond the owner; subscribers re-read the persisted
// snapshot instead of trusting a delta.
type CartChanged struct {
	SessionID string
}

// Bus is an in-process publish/subscribe registry for cart changes.
type Bus struct {
	mu   sync.Mutex
	subs map[int]func(CartChanged)
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(CartChanged))}
}

// Subscribe registers fn and returns its unsubscribe func. Unsubscribing
// twice is harmless.
func (b *Bus) Subscribe(fn func(CartChanged)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish invokes every current subscriber with ev. Subscribers registered or
// removed while Publish runs do not affect the in-flight delivery.
func (b *Bus) Publish(ev CartChanged) {
	b.mu.Lock()
	fns := make([]func(CartChanged), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
