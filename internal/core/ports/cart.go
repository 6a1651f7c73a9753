package ports

import (
	"context"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

// CartStore persists carts keyed by session id. Absence is not an error: a
// missing cart reads back as an empty one.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// AddItemInput captures a product being added to a cart. Price is the
// snapshot taken at add time.
type AddItemInput struct {
	ProductID   int64
	ProductName string
	Brand       string
	Color       string
	Size        string
	Price       float64
	ImageURL    string
	Quantity    int
}

// CartService owns the cart lifecycle of one storefront session.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, in AddItemInput) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}
