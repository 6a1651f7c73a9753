package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// CartService owns cart mutations for one storefront session. The store is
// the session-scoped key-value layer; a missing cart reads back as empty.
type CartService struct {
	store ports.CartStore
	log   zerolog.Logger
}

func NewCartService(store ports.CartStore, log zerolog.Logger) *CartService {
	return &CartService{store: store, log: log}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &domain.Cart{SessionID: sessionID}
	}
	return cart, nil
}

// AddItem appends a line with the price snapshotted at add time. Adding a
// product already in the cart bumps its quantity; the original snapshot
// price is kept.
func (s *CartService) AddItem(ctx context.Context, sessionID string, in ports.AddItemInput) (*domain.Cart, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if line := cart.Find(in.ProductID); line != nil {
		line.Quantity += in.Quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Brand:       in.Brand,
			Color:       in.Color,
			Size:        in.Size,
			Price:       in.Price,
			ImageURL:    in.ImageURL,
			Quantity:    in.Quantity,
		})
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.log.Debug().Str("session_id", sessionID).Int64("product_id", in.ProductID).Msg("cart item added")
	return cart, nil
}

// UpdateQuantity sets the quantity of an existing line. A target of zero or
// less removes the line, which is what the storefront's decrement control
// reaches when a line is at quantity one.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	line := cart.Find(productID)
	if line == nil {
		return nil, domain.ErrCartItemNotFound
	}
	if quantity <= 0 {
		cart.Remove(productID)
	} else {
		line.Quantity = quantity
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(productID) {
		return nil, domain.ErrCartItemNotFound
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
