// Package seed provides demo catalog and proxy-buyer data for manual testing
// and for database-less runs without a catalog feed.
package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"nowbuy/internal/domain"
)

// Products returns the demo catalog. Prices are in cents.
func Products() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Classic White Sneakers", PriceCents: 298000, ImageURL: "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=400&h=400", Store: "PX Mart", Available: true},
		{ID: 2, Name: "Nordic Ceramic Mug", PriceCents: 35900, ImageURL: "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=400&h=400", Store: "7-Eleven", Available: true},
		{ID: 3, Name: "Handwoven Wool Scarf", PriceCents: 128000, ImageURL: "https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=400&h=400", Store: "Carrefour", Available: false},
		{ID: 4, Name: "Cold Brew Coffee Pack", PriceCents: 45000, ImageURL: "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?w=400&h=400", Store: "PX Mart", Available: true},
	}
}

// ProxyBuyers returns the demo proxy-buyer roster.
func ProxyBuyers() []domain.ProxyBuyer {
	return []domain.ProxyBuyer{
		{ID: 1, Name: "Mei Chen", AvatarURL: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150", Rating: 4.9, CompletedOrders: 156, DistanceMeters: 300, EstimatedMinutes: 20, Commission: 50, Verified: true, Description: "Experienced proxy buyer, knows the supermarket aisles by heart."},
		{ID: 2, Name: "Wang Dage", AvatarURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150", Rating: 4.8, CompletedOrders: 203, DistanceMeters: 500, EstimatedMinutes: 25, Commission: 45, Verified: true, Description: "Retired teacher with a flexible schedule and a careful eye."},
		{ID: 3, Name: "Li Tongxue", AvatarURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150", Rating: 4.7, CompletedOrders: 89, DistanceMeters: 400, EstimatedMinutes: 30, Commission: 40, Verified: false, Description: "Student proxy buyer, budget-friendly and reliable."},
	}
}

// Apply inserts the demo data. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, p := range Products() {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
	}
	for _, b := range ProxyBuyers() {
		if err := upsertProxyBuyer(ctx, pool, b); err != nil {
			return fmt.Errorf("upsert proxy buyer %d: %w", b.ID, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (id, name, price_cents, image_url, store, available)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price_cents = EXCLUDED.price_cents,
    image_url = EXCLUDED.image_url,
    store = EXCLUDED.store,
    available = EXCLUDED.available
`
	_, err := pool.Exec(ctx, q, p.ID, p.Name, p.PriceCents, p.ImageURL, p.Store, p.Available)
	return err
}

func upsertProxyBuyer(ctx context.Context, pool *pgxpool.Pool, b domain.ProxyBuyer) error {
	const q = `
INSERT INTO proxy_buyers (id, name, avatar_url, rating, completed_orders, distance_meters, estimated_minutes, commission, verified, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    avatar_url = EXCLUDED.avatar_url,
    rating = EXCLUDED.rating,
    completed_orders = EXCLUDED.completed_orders,
    distance_meters = EXCLUDED.distance_meters,
    estimated_minutes = EXCLUDED.estimated_minutes,
    commission = EXCLUDED.commission,
    verified = EXCLUDED.verified,
    description = EXCLUDED.description
`
	_, err := pool.Exec(ctx, q, b.ID, b.Name, b.AvatarURL, b.Rating, b.CompletedOrders, b.DistanceMeters, b.EstimatedMinutes, b.Commission, b.Verified, b.Description)
	return err
}
