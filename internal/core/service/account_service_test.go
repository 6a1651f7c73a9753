package service

import (
	"context"
	"errors"
	"testing"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub commerce gateway
// ---------------------------------------------------------------------------

type stubGateway struct {
	createOrderErr error
	lastOrder      *domain.Order
	lastToken      string
}

func (g *stubGateway) Login(context.Context, ports.Credentials) (string, error) { return "", nil }
func (g *stubGateway) Register(context.Context, ports.Registration) error      { return nil }

func (g *stubGateway) CreateProduct(context.Context, string, ports.ProductInput) (*domain.Product, error) {
	return nil, nil
}
func (g *stubGateway) UpdateProduct(context.Context, string, int64, ports.ProductInput) (*domain.Product, error) {
	return nil, nil
}
func (g *stubGateway) DeleteProduct(context.Context, string, int64) error { return nil }

func (g *stubGateway) CreateOrder(_ context.Context, token string, order domain.Order) (*domain.Order, error) {
	if g.createOrderErr != nil {
		return nil, g.createOrderErr
	}
	g.lastToken = token
	placed := order
	placed.ID = 101
	placed.Status = "PLACED"
	g.lastOrder = &placed
	return &placed, nil
}

func (g *stubGateway) OrdersByCustomer(context.Context, string) ([]domain.Order, error) {
	return nil, nil
}
func (g *stubGateway) OrderByID(context.Context, string, int64) (*domain.Order, error) {
	return nil, nil
}
func (g *stubGateway) Profile(context.Context, string) (*domain.Profile, error) { return nil, nil }
func (g *stubGateway) UpdateProfile(context.Context, string, domain.Profile) (*domain.Profile, error) {
	return nil, nil
}
func (g *stubGateway) AddAddress(context.Context, string, domain.Address) (*domain.Address, error) {
	return nil, nil
}

// ---------------------------------------------------------------------------
// Checkout tests
// ---------------------------------------------------------------------------

func TestCheckout_SubmitsCartAndClears(t *testing.T) {
	store := newStubCartStore()
	carts := NewCartService(store, nopLog)
	gateway := &stubGateway{}
	svc := NewAccountService(gateway, carts, nopLog)
	ctx := context.Background()

	_, _ = carts.AddItem(ctx, "s1", addInput(1, 24.99, 2))
	_, _ = carts.AddItem(ctx, "s1", addInput(2, 10, 1))

	order, err := svc.Checkout(ctx, "tok", "s1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.ID != 101 {
		t.Fatalf("expected backend order id, got %+v", order)
	}
	if gateway.lastToken != "tok" {
		t.Fatalf("bearer token not forwarded")
	}
	if len(gateway.lastOrder.Items) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(gateway.lastOrder.Items))
	}
	if gateway.lastOrder.Subtotal != 59.98 {
		t.Fatalf("subtotal = %v, want 59.98", gateway.lastOrder.Subtotal)
	}

	cart, _ := carts.Get(ctx, "s1")
	if len(cart.Items) != 0 {
		t.Fatalf("cart must be cleared after checkout")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := NewAccountService(&stubGateway{}, NewCartService(newStubCartStore(), nopLog), nopLog)

	if _, err := svc.Checkout(context.Background(), "tok", "s1"); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_BackendFailureKeepsCart(t *testing.T) {
	store := newStubCartStore()
	carts := NewCartService(store, nopLog)
	gateway := &stubGateway{createOrderErr: domain.ErrBackendUnavailable}
	svc := NewAccountService(gateway, carts, nopLog)
	ctx := context.Background()

	_, _ = carts.AddItem(ctx, "s1", addInput(1, 10, 1))

	if _, err := svc.Checkout(ctx, "tok", "s1"); !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected backend error to surface, got %v", err)
	}
	cart, _ := carts.Get(ctx, "s1")
	if len(cart.Items) != 1 {
		t.Fatalf("failed checkout must not clear the cart")
	}
}
