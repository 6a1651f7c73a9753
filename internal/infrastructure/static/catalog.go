// Package static serves the embedded sample catalog used whenever the live
// backend is unreachable or returns nothing. The dataset is a fixed constant;
// the storefront must always have something to show.
package static

import (
	"context"
	"strings"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

// Source implements ports.CatalogSource over the embedded dataset. It never
// fails and never touches the network.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

// Products applies the fallback narrowing rules: search takes precedence over
// category, and a search with zero hits degrades to the full dataset rather
// than an empty page.
func (s *Source) Products(_ context.Context, q domain.CatalogQuery) ([]domain.Product, error) {
	switch {
	case q.Search != "":
		matched := searchProducts(q.Search)
		if len(matched) == 0 {
			return copyProducts(sampleProducts), nil
		}
		return matched, nil
	case q.CategoryName != "":
		return filterByCategoryName(q.CategoryName), nil
	case q.CategoryID != 0:
		return filterByCategoryName(categoryNameByID(q.CategoryID)), nil
	default:
		return copyProducts(sampleProducts), nil
	}
}

func (s *Source) ProductByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range sampleProducts {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *Source) Categories(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(sampleCategories))
	copy(out, sampleCategories)
	return out, nil
}

func filterByCategoryName(name string) []domain.Product {
	if name == "" {
		return copyProducts(sampleProducts)
	}
	var out []domain.Product
	for _, p := range sampleProducts {
		if domain.MatchesSampleCategory(p, name) {
			out = append(out, p)
		}
	}
	return out
}

func searchProducts(query string) []domain.Product {
	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range sampleProducts {
		if strings.Contains(strings.ToLower(p.ProductName), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out
}

func categoryNameByID(id int64) string {
	for _, c := range sampleCategories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func copyProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}
