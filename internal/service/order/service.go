package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"nowbuy/internal/domain"
	"nowbuy/internal/events"
	"nowbuy/internal/pricing"
)

var (
	// ErrNoOrderableItems means the cart holds nothing fulfillable; the
	// caller sends the user back to the cart instead of pricing an empty
	// order.
	ErrNoOrderableItems = errors.New("no orderable items")
	// ErrProxyRequired means submission was attempted without a selected
	// proxy buyer.
	ErrProxyRequired = errors.New("proxy buyer selection required")
	// ErrProxyNotFound means the selected proxy buyer does not exist.
	ErrProxyNotFound = errors.New("proxy buyer not found")
	// ErrSubmissionInFlight means a submission for this session is already
	// in progress; the repeated call is rejected without side effects.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

type cartRepo interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type orderRepo interface {
	Load(ctx context.Context, sessionID string) (*domain.Order, error)
	Save(ctx context.Context, sessionID string, order domain.Order) error
}

type proxyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.ProxyBuyer, error)
}

// Service assembles orders from the cart and runs the submission state
// machine: Idle -> Submitting -> Succeeded. While a session is Submitting,
// further submissions for it are rejected, so a cart snapshot is finalized at
// most once.
type Service struct {
	carts   cartRepo
	orders  orderRepo
	proxies proxyRepo
	bus     *events.Bus

	// delay simulates the processing latency of the order-accepting network
	// hop; it honors context cancellation.
	delay time.Duration
	now   func() time.Time
	ids   minter

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(carts cartRepo, orders orderRepo, proxies proxyRepo, bus *events.Bus, delay time.Duration) *Service {
	return &Service{
		carts:    carts,
		orders:   orders,
		proxies:  proxies,
		bus:      bus,
		delay:    delay,
		now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// Draft is the reviewable order: the orderable cart items and their price
// breakdown.
type Draft struct {
	Items []domain.CartItem `json:"items"`
	Quote pricing.Quote     `json:"quote"`
}

// Assemble builds the order review from the session's cart. Only available
// items are orderable; an empty orderable set refuses assembly rather than
// quoting a fee-floor total for nothing.
func (s *Service) Assemble(ctx context.Context, sessionID string) (*Draft, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	items := cart.Available()
	if len(items) == 0 {
		return nil, ErrNoOrderableItems
	}
	return &Draft{Items: items, Quote: pricing.QuoteItems(items)}, nil
}

// SubmitInput carries the user's choices at submission time.
type SubmitInput struct {
	ProxyID         int64  `json:"proxyId"`
	SpecialRequests string `json:"specialRequests"`
}

// Submit finalizes the assembled order: it validates the proxy selection,
// waits out the simulated processing latency, mints an order id, persists the
// order record, and clears the cart. Validation failures happen before any
// state is written. The record write and the cart clear are two separate
// operations; the record is written first so a crash in between leaves a
// resubmittable cart rather than a lost order.
func (s *Service) Submit(ctx context.Context, sessionID string, in SubmitInput) (*domain.Order, error) {
	if in.ProxyID == 0 {
		return nil, ErrProxyRequired
	}

	if !s.begin(sessionID) {
		return nil, ErrSubmissionInFlight
	}
	defer s.end(sessionID)

	proxy, err := s.proxies.GetByID(ctx, in.ProxyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProxyNotFound
		}
		return nil, err
	}

	draft, err := s.Assemble(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	submittedAt := s.now()
	record := domain.Order{
		OrderID:         s.ids.next(submittedAt),
		Items:           draft.Items,
		TotalAmount:     draft.Quote.Total,
		SelectedProxy:   *proxy,
		SpecialRequests: in.SpecialRequests,
		Timestamp:       submittedAt,
	}

	if err := s.orders.Save(ctx, sessionID, record); err != nil {
		return nil, err
	}
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	s.bus.Publish(events.CartChanged{SessionID: sessionID})

	return &record, nil
}

// LastOrder returns the most recently persisted order record for the
// confirmation view, or domain.ErrNotFound when none exists.
func (s *Service) LastOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	return s.orders.Load(ctx, sessionID)
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[sessionID]; busy {
		return false
	}
	s.inflight[sessionID] = struct{}{}
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, sessionID)
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
