package cart

import (
	"context"
	"errors"

	"nowbuy/internal/domain"
	"nowbuy/internal/events"
	"nowbuy/internal/pricing"
)

// ErrProductNotFound means the catalog has no row for the requested product.
var ErrProductNotFound = errors.New("product not found")

type cartRepo interface {
	Load(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// Service orchestrates cart reads and mutations. Mutations are a
// read-modify-write of the whole snapshot followed by a change notification.
type Service struct {
	carts    cartRepo
	products productRepo
	bus      *events.Bus
}

func New(carts cartRepo, products productRepo, bus *events.Bus) *Service {
	return &Service{carts: carts, products: products, bus: bus}
}

// View is the cart page read model: the full cart split by availability plus
// the quote over the orderable items.
type View struct {
	Items       []domain.CartItem `json:"items"`
	Unavailable []domain.CartItem `json:"unavailable"`
	ItemCount   int               `json:"itemCount"`
	Quote       pricing.Quote     `json:"quote"`
}

func (s *Service) Get(ctx context.Context, sessionID string) (*View, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return viewOf(cart), nil
}

// AddItem adds quantity units of the product to the session's cart. An item
// already in the cart has its quantity incremented instead of being
// duplicated. Quantity below one is treated as one.
func (s *Service) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) (*View, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart = cart.Add(*product, quantity)
	if err := s.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	s.bus.Publish(events.CartChanged{SessionID: sessionID})
	return viewOf(cart), nil
}

func viewOf(cart domain.Cart) *View {
	available := cart.Available()
	return &View{
		Items:       available,
		Unavailable: cart.Unavailable(),
		ItemCount:   cart.ItemCount(),
		Quote:       pricing.QuoteItems(available),
	}
}
