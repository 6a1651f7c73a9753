package ports

import (
	"context"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

// Credentials are forwarded to the backend's login endpoint verbatim; the
// gateway never stores or hashes passwords.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration mirrors the backend's register contract.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// ProductInput is the admin create/update payload proxied to the backend.
type ProductInput struct {
	ProductName string  `json:"productName"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
	IsActive    bool    `json:"isActive"`
}

// CommerceGateway is the write-and-account side of the remote backend
// contract. Every call forwards the caller's bearer token; failures surface
// to the caller, unlike catalog reads.
type CommerceGateway interface {
	Login(ctx context.Context, creds Credentials) (token string, err error)
	Register(ctx context.Context, reg Registration) error

	CreateProduct(ctx context.Context, token string, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token string, id int64, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token string, id int64) error

	CreateOrder(ctx context.Context, token string, order domain.Order) (*domain.Order, error)
	OrdersByCustomer(ctx context.Context, token string) ([]domain.Order, error)
	OrderByID(ctx context.Context, token string, id int64) (*domain.Order, error)

	Profile(ctx context.Context, token string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, token string, p domain.Profile) (*domain.Profile, error)
	AddAddress(ctx context.Context, token string, a domain.Address) (*domain.Address, error)
}
