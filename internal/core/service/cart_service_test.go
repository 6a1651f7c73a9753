package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub cart store
// ---------------------------------------------------------------------------

type stubCartStore struct {
	carts   map[string]*domain.Cart
	saveErr error
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[string]*domain.Cart)}
}

func (s *stubCartStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, nil
	}
	clone := *cart
	clone.Items = append([]domain.CartItem(nil), cart.Items...)
	return &clone, nil
}

func (s *stubCartStore) Save(_ context.Context, cart *domain.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *cart
	clone.Items = append([]domain.CartItem(nil), cart.Items...)
	s.carts[cart.SessionID] = &clone
	return nil
}

func (s *stubCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

func addInput(id int64, price float64, qty int) ports.AddItemInput {
	return ports.AddItemInput{ProductID: id, ProductName: "P", Price: price, Quantity: qty}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCart_GetMissingIsEmpty(t *testing.T) {
	svc := NewCartService(newStubCartStore(), nopLog)

	cart, err := svc.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 0 || cart.SessionID != "s1" {
		t.Fatalf("missing cart must read back empty: %+v", cart)
	}
}

func TestCart_AddAndMerge(t *testing.T) {
	svc := NewCartService(newStubCartStore(), nopLog)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "s1", addInput(1, 24.99, 1)); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.AddItem(ctx, "s1", addInput(1, 19.99, 2))
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("same product must merge into one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Price != 24.99 {
		t.Fatalf("price snapshot from first add must be kept, got %v", cart.Items[0].Price)
	}
}

func TestCart_AddRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewCartService(newStubCartStore(), nopLog)
	for _, qty := range []int{0, -1} {
		if _, err := svc.AddItem(context.Background(), "s1", addInput(1, 10, qty)); !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("qty %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	svc := NewCartService(newStubCartStore(), nopLog)
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, "s1", addInput(1, 10, 1))

	cart, err := svc.UpdateQuantity(ctx, "s1", 1, 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
	}

	cart, err = svc.UpdateQuantity(ctx, "s1", 1, 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("quantity zero must remove the line")
	}

	if _, err := svc.UpdateQuantity(ctx, "s1", 42, 1); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCart_RemoveItem(t *testing.T) {
	svc := NewCartService(newStubCartStore(), nopLog)
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, "s1", addInput(1, 10, 1))
	_, _ = svc.AddItem(ctx, "s1", addInput(2, 20, 1))

	cart, err := svc.RemoveItem(ctx, "s1", 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != 2 {
		t.Fatalf("unexpected cart after remove: %+v", cart.Items)
	}

	if _, err := svc.RemoveItem(ctx, "s1", 1); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCart_Clear(t *testing.T) {
	store := newStubCartStore()
	svc := NewCartService(store, nopLog)
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, "s1", addInput(1, 10, 1))

	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, _ := svc.Get(ctx, "s1")
	if len(cart.Items) != 0 {
		t.Fatalf("cart not cleared: %+v", cart.Items)
	}
}

func TestCartTotals(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{
		{ProductID: 1, Price: 24.99, Quantity: 2},
		{ProductID: 2, Price: 10.00, Quantity: 1},
	}}

	totals := cart.Totals()
	if totals.Subtotal != 59.98 {
		t.Fatalf("subtotal = %v, want 59.98", totals.Subtotal)
	}
	if totals.Shipping != domain.FlatShippingRate {
		t.Fatalf("shipping = %v, want %v", totals.Shipping, domain.FlatShippingRate)
	}
	wantTax := math.Round(59.98*domain.TaxRate*100) / 100
	if totals.Tax != wantTax {
		t.Fatalf("tax = %v, want %v", totals.Tax, wantTax)
	}
	if math.Abs(totals.Total-(totals.Subtotal+totals.Shipping+totals.Tax)) > 0.005 {
		t.Fatalf("total = %v, want %v", totals.Total, totals.Subtotal+totals.Shipping+totals.Tax)
	}
}

func TestCartTotals_EmptyCartHasNoShipping(t *testing.T) {
	totals := domain.Cart{}.Totals()
	if totals.Subtotal != 0 || totals.Shipping != 0 || totals.Tax != 0 || totals.Total != 0 {
		t.Fatalf("empty cart must total zero: %+v", totals)
	}
}
