package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nowbuy/internal/domain"
)

const sampleFeed = `[
	{"id": 1, "name": "Classic White Sneakers", "price_in_cents": 298000, "image_url": "http://img/1", "store": "PX Mart"},
	{"id": 3, "name": "  Handwoven Wool Scarf ", "price_in_cents": 128000, "available": false},
	{"id": 0, "name": "No ID"},
	{"id": 9, "name": "   "}
]`

func TestParse(t *testing.T) {
	products, err := Parse(strings.NewReader(sampleFeed))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	first := products[0]
	if first.ID != 1 || first.Name != "Classic White Sneakers" || first.PriceCents != 298000 {
		t.Fatalf("unexpected product %+v", first)
	}
	if !first.Available {
		t.Fatalf("availability must default to true")
	}
	if first.Store != "PX Mart" {
		t.Fatalf("store = %q", first.Store)
	}

	second := products[1]
	if second.Name != "Handwoven Wool Scarf" {
		t.Fatalf("name not trimmed: %q", second.Name)
	}
	if second.Available {
		t.Fatalf("explicit availability must be honored")
	}
}

func TestParse_BadFeed(t *testing.T) {
	if _, err := Parse(strings.NewReader("{oops")); err == nil {
		t.Fatal("expected decode error")
	}
}

type captureWriter struct {
	upserted []domain.Product
	failAt   int64
}

func (w *captureWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if w.failAt != 0 && p.ID == w.failAt {
		return nil, errors.New("constraint violation")
	}
	w.upserted = append(w.upserted, p)
	return &p, nil
}

func TestRun_UpsertsEveryRow(t *testing.T) {
	writer := &captureWriter{}
	n, err := NewJSONImporter(strings.NewReader(sampleFeed), writer).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 || len(writer.upserted) != 2 {
		t.Fatalf("expected 2 upserts, got n=%d len=%d", n, len(writer.upserted))
	}
}

func TestRun_StopsOnWriteFailure(t *testing.T) {
	writer := &captureWriter{failAt: 3}
	n, err := NewJSONImporter(strings.NewReader(sampleFeed), writer).Run(context.Background())
	if err == nil {
		t.Fatal("expected upsert error")
	}
	if n != 1 {
		t.Fatalf("expected 1 successful upsert before the failure, got %d", n)
	}
}
