package ports

import (
	"context"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

// AccountService covers checkout and the customer account proxies.
type AccountService interface {
	Checkout(ctx context.Context, token, sessionID string) (*domain.Order, error)
	Orders(ctx context.Context, token string) ([]domain.Order, error)
	Order(ctx context.Context, token string, id int64) (*domain.Order, error)
	Profile(ctx context.Context, token string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, token string, p domain.Profile) (*domain.Profile, error)
	AddAddress(ctx context.Context, token string, a domain.Address) (*domain.Address, error)
}
