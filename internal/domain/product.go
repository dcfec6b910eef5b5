package domain

import "time"

// PlaceholderStore labels cart items whose catalog row does not carry an
// origin store yet.
const PlaceholderStore = "store to be confirmed"

type Product struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_in_cents"`
	ImageURL   string    `json:"image_url"`
	Store      string    `json:"store,omitempty"`
	Available  bool      `json:"available"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// UnitPrice converts the catalog cent price into whole currency units, the
// unit carried by cart items and quotes.
func (p Product) UnitPrice() int64 {
	return (p.PriceCents + 50) / 100
}
