package order

import (
	"strconv"
	"sync"
	"time"
)

const orderIDPrefix = "NOW"

// minter derives order ids from the submission instant in milliseconds. When
// the clock has not advanced past the last issued id it bumps by one, so ids
// within a process are strictly increasing and never collide.
type minter struct {
	mu   sync.Mutex
	last int64
}

func (m *minter) next(t time.Time) string {
	millis := t.UnixMilli()
	m.mu.Lock()
	defer m.mu.Unlock()
	if millis <= m.last {
		millis = m.last + 1
	}
	m.last = millis
	return orderIDPrefix + strconv.FormatInt(millis, 10)
}
