package domain

import "testing"

func TestCartAdd_NewItem(t *testing.T) {
	p := Product{ID: 7, Name: "Mug", PriceCents: 35900, ImageURL: "http://img/mug", Store: "7-Eleven"}
	cart := Cart{}.Add(p, 2)
	if len(cart.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(cart.Items))
	}
	item := cart.Items[0]
	if item.ID != 7 || item.Quantity != 2 || item.UnitPrice != 359 {
		t.Fatalf("unexpected item %+v", item)
	}
	if !item.Available {
		t.Fatalf("new items must be available")
	}
	if item.Store != "7-Eleven" {
		t.Fatalf("expected catalog store label, got %q", item.Store)
	}
}

func TestCartAdd_SameIDIncrementsQuantity(t *testing.T) {
	p := Product{ID: 1, Name: "Sneakers", PriceCents: 298000}
	cart := Cart{}.Add(p, 1).Add(p, 1)
	if len(cart.Items) != 1 {
		t.Fatalf("expected a single entry after adding the same id twice, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestCartAdd_DoesNotMutateReceiver(t *testing.T) {
	p := Product{ID: 1, Name: "Sneakers", PriceCents: 298000}
	original := Cart{}.Add(p, 1)
	_ = original.Add(p, 3)
	if original.Items[0].Quantity != 1 {
		t.Fatalf("Add mutated its receiver: %+v", original.Items[0])
	}
}

func TestCartAdd_PlaceholderStoreAndMinimumDelta(t *testing.T) {
	p := Product{ID: 2, Name: "Scarf", PriceCents: 128000}
	cart := Cart{}.Add(p, 0)
	if cart.Items[0].Store != PlaceholderStore {
		t.Fatalf("expected placeholder store, got %q", cart.Items[0].Store)
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("delta below one must add one, got %d", cart.Items[0].Quantity)
	}
}

func TestCartItemCountAndAvailability(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ID: 1, Quantity: 1, Available: true},
		{ID: 2, Quantity: 2, Available: true},
		{ID: 3, Quantity: 1, Available: false},
	}}
	if got := cart.ItemCount(); got != 4 {
		t.Fatalf("expected count 4, got %d", got)
	}
	if got := len(cart.Available()); got != 2 {
		t.Fatalf("expected 2 available items, got %d", got)
	}
	if got := len(cart.Unavailable()); got != 1 {
		t.Fatalf("expected 1 unavailable item, got %d", got)
	}
}

func TestProductUnitPrice_RoundsCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  int64
	}{
		{298000, 2980},
		{35900, 359},
		{49, 0},
		{50, 1},
		{151, 2},
	}
	for _, tc := range cases {
		if got := (Product{PriceCents: tc.cents}).UnitPrice(); got != tc.want {
			t.Fatalf("UnitPrice(%d) = %d, want %d", tc.cents, got, tc.want)
		}
	}
}
