// Package importer ingests the flat JSON catalog feed into a product writer.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nowbuy/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// feedRow is one entry of the catalog feed: {id, name, price_in_cents,
// image_url} plus optional store/availability columns.
type feedRow struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_in_cents"`
	ImageURL   string `json:"image_url"`
	Store      string `json:"store"`
	Available  *bool  `json:"available"`
}

// Parse decodes a catalog feed. Rows without an id or name are skipped, not
// fatal; a feed that fails to decode is.
func Parse(r io.Reader) ([]domain.Product, error) {
	var rows []feedRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		if row.ID == 0 || strings.TrimSpace(row.Name) == "" {
			continue
		}
		available := true
		if row.Available != nil {
			available = *row.Available
		}
		products = append(products, domain.Product{
			ID:         row.ID,
			Name:       strings.TrimSpace(row.Name),
			PriceCents: row.PriceCents,
			ImageURL:   row.ImageURL,
			Store:      strings.TrimSpace(row.Store),
			Available:  available,
		})
	}
	return products, nil
}

// JSONImporter reads a catalog feed and upserts its products.
type JSONImporter struct {
	reader      io.Reader
	productRepo ProductWriter
}

func NewJSONImporter(r io.Reader, repo ProductWriter) *JSONImporter {
	return &JSONImporter{reader: r, productRepo: repo}
}

// Run parses the feed and upserts each product.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	products, err := Parse(i.reader)
	if err != nil {
		return 0, err
	}
	for n, p := range products {
		if _, err := i.productRepo.Upsert(ctx, p); err != nil {
			return n, fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
	}
	return len(products), nil
}
