package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// CatalogService composes a live catalog source with the embedded fallback.
// Reads never fail: any remote error or empty result degrades to the sample
// dataset, so the storefront always has something to show. Degradation is
// logged but never surfaced as a user-facing error.
type CatalogService struct {
	remote   ports.CatalogSource
	fallback ports.CatalogSource
	log      zerolog.Logger
}

func NewCatalogService(remote, fallback ports.CatalogSource, log zerolog.Logger) *CatalogService {
	return &CatalogService{remote: remote, fallback: fallback, log: log}
}

// Load fetches products and categories for the given query. The two loads
// degrade independently; the returned Catalog carries the query it answered
// so callers can discard a response that has been superseded.
func (s *CatalogService) Load(ctx context.Context, q domain.CatalogQuery) domain.Catalog {
	products, usedFallback := s.loadProducts(ctx, q)
	return domain.Catalog{
		Products:   products,
		Categories: s.loadCategories(ctx),
		Query:      q,
		Fallback:   usedFallback,
	}
}

func (s *CatalogService) loadProducts(ctx context.Context, q domain.CatalogQuery) ([]domain.Product, bool) {
	products, err := s.remote.Products(ctx, q)
	if err == nil && len(products) > 0 {
		return products, false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("search", q.Search).Int64("category_id", q.CategoryID).
			Msg("live product fetch failed, serving sample data")
	} else {
		s.log.Debug().Str("search", q.Search).Int64("category_id", q.CategoryID).
			Msg("live product fetch empty, serving sample data")
	}

	products, _ = s.fallback.Products(ctx, q)
	return products, true
}

func (s *CatalogService) loadCategories(ctx context.Context) []domain.Category {
	categories, err := s.remote.Categories(ctx)
	if err == nil && len(categories) > 0 {
		return categories
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("live category fetch failed, serving sample data")
	}
	categories, _ = s.fallback.Categories(ctx)
	return categories
}

// ProductByID prefers the live backend and falls back to the sample dataset,
// returning domain.ErrProductNotFound when neither side knows the id.
func (s *CatalogService) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.remote.ProductByID(ctx, id)
	if err == nil {
		return p, nil
	}
	s.log.Debug().Err(err).Int64("product_id", id).Msg("live product lookup failed, trying sample data")
	return s.fallback.ProductByID(ctx, id)
}

// Featured returns up to n products for the landing page and whether they
// came from the fallback dataset.
func (s *CatalogService) Featured(ctx context.Context, n int) ([]domain.Product, bool) {
	cat := s.Load(ctx, domain.CatalogQuery{})
	if n > len(cat.Products) {
		n = len(cat.Products)
	}
	out := make([]domain.Product, n)
	copy(out, cat.Products[:n])
	return out, cat.Fallback
}

// ApplyFilters narrows and orders a product collection. Predicates are
// conjunctive and each one is open when its field is unset. The input slice
// is never mutated and the sort is stable.
func (s *CatalogService) ApplyFilters(products []domain.Product, f domain.FilterState) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}
	sortProducts(out, f.Sort)
	return out
}

func matchesFilter(p domain.Product, f domain.FilterState) bool {
	if f.CategoryID != 0 && !matchesCategory(p, f) {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.Color != "" && p.Color != f.Color {
		return false
	}
	if f.Size != "" && p.Size != f.Size {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// matchesCategory uses real category associations when the product has them.
// Sample products carry none, so fallback membership is decided by the
// keyword heuristic against the selected category's name.
func matchesCategory(p domain.Product, f domain.FilterState) bool {
	if len(p.Categories) > 0 {
		return p.InCategory(f.CategoryID)
	}
	if name := categoryNameFor(f); name != "" {
		return domain.MatchesSampleCategory(p, name)
	}
	return false
}

// categoryNameFor prefers the name resolved by the caller; sample category
// ids are a fixed constant, so they map directly when no name was supplied.
func categoryNameFor(f domain.FilterState) string {
	if f.CategoryName != "" {
		return f.CategoryName
	}
	switch f.CategoryID {
	case 1:
		return "Men"
	case 2:
		return "Women"
	case 3:
		return "Accessories"
	default:
		return ""
	}
}

func sortProducts(products []domain.Product, opt domain.SortOption) {
	switch opt {
	case domain.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case domain.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case domain.SortLatest:
		// Descending id: the id is the recency surrogate.
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	default:
		// Unrecognised option: keep the incoming order.
	}
}
