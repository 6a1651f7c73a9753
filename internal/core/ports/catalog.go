package ports

import (
	"context"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

// CatalogSource supplies products and categories. The live backend and the
// embedded sample dataset both implement it, so the two-tier fallback is a
// composition detail of the service rather than something handlers see.
type CatalogSource interface {
	Products(ctx context.Context, q domain.CatalogQuery) ([]domain.Product, error)
	ProductByID(ctx context.Context, id int64) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CatalogService loads catalog data and applies storefront filters.
type CatalogService interface {
	// Load never fails: any backend error degrades to the sample dataset.
	Load(ctx context.Context, q domain.CatalogQuery) domain.Catalog
	ProductByID(ctx context.Context, id int64) (*domain.Product, error)
	// ApplyFilters is pure; the input slice is never mutated.
	ApplyFilters(products []domain.Product, f domain.FilterState) []domain.Product
	// Featured returns up to n products for the storefront landing page.
	Featured(ctx context.Context, n int) ([]domain.Product, bool)
}
