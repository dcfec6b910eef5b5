package domain

// CartItem is one line of a cart, keyed by product id. UnitPrice is in whole
// currency units.
type CartItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"imageUrl"`
	Store     string `json:"store"`
	Available bool   `json:"available"`
}

// Cart is the whole-document snapshot persisted per session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add returns a copy of the cart with the product added. If an item with the
// same product id already exists its quantity grows by delta, otherwise a new
// item is appended. Add never persists anything; the caller saves the result
// and publishes the change.
func (c Cart) Add(p Product, delta int) Cart {
	if delta < 1 {
		delta = 1
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity += delta
			return Cart{Items: items}
		}
	}
	store := p.Store
	if store == "" {
		store = PlaceholderStore
	}
	items = append(items, CartItem{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice(),
		Quantity:  delta,
		ImageURL:  p.ImageURL,
		Store:     store,
		Available: true,
	})
	return Cart{Items: items}
}

// ItemCount sums quantities over all items, the number shown on the badge.
func (c Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Available returns the items that can currently be fulfilled.
func (c Cart) Available() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Available {
			items = append(items, item)
		}
	}
	return items
}

// Unavailable returns the items that are out of stock.
func (c Cart) Unavailable() []CartItem {
	items := make([]CartItem, 0)
	for _, item := range c.Items {
		if !item.Available {
			items = append(items, item)
		}
	}
	return items
}
