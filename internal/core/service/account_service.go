package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// AccountService fronts the customer-facing backend operations: checkout,
// order history, profile and addresses. Unlike catalog reads, failures here
// are surfaced to the caller.
type AccountService struct {
	gateway ports.CommerceGateway
	carts   ports.CartService
	log     zerolog.Logger
}

func NewAccountService(gateway ports.CommerceGateway, carts ports.CartService, log zerolog.Logger) *AccountService {
	return &AccountService{gateway: gateway, carts: carts, log: log}
}

// Checkout submits the session's cart as a customer order and clears the
// cart on success. The order carries the storefront's totals so the backend
// records what the shopper was shown.
func (s *AccountService) Checkout(ctx context.Context, token, sessionID string) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	totals := cart.Totals()
	order := domain.Order{
		Items:    make([]domain.OrderItem, 0, len(cart.Items)),
		Subtotal: totals.Subtotal,
		Shipping: totals.Shipping,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}
	for _, it := range cart.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	placed, err := s.gateway.CreateOrder(ctx, token, order)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order went through; a stale cart is an annoyance, not a failure.
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("cart not cleared after checkout")
	}

	s.log.Info().Int64("order_id", placed.ID).Int("lines", len(placed.Items)).Msg("order placed")
	return placed, nil
}

func (s *AccountService) Orders(ctx context.Context, token string) ([]domain.Order, error) {
	return s.gateway.OrdersByCustomer(ctx, token)
}

func (s *AccountService) Order(ctx context.Context, token string, id int64) (*domain.Order, error) {
	return s.gateway.OrderByID(ctx, token, id)
}

func (s *AccountService) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	return s.gateway.Profile(ctx, token)
}

func (s *AccountService) UpdateProfile(ctx context.Context, token string, p domain.Profile) (*domain.Profile, error) {
	return s.gateway.UpdateProfile(ctx, token, p)
}

func (s *AccountService) AddAddress(ctx context.Context, token string, a domain.Address) (*domain.Address, error) {
	return s.gateway.AddAddress(ctx, token, a)
}
