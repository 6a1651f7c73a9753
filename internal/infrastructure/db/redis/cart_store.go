package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
)

const defaultCartTTL = 7 * 24 * time.Hour

// CartStore persists session carts as JSON blobs keyed by session id.
// Each write refreshes the TTL, so active carts stay alive and abandoned
// ones expire on their own.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a CartStore wrapping the given Redis client.
// A non-positive ttl falls back to a one-week default.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &CartStore{client: client, ttl: ttl}
}

// Get loads the cart for a session. A missing key yields (nil, nil) so
// callers can treat it as an empty cart.
func (s *CartStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart get: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	return &cart, nil
}

// Save writes the cart and refreshes its expiry.
func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(cart.SessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return nil
}

// Delete drops the cart for a session. Deleting a missing cart is not an error.
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart delete: %w", err)
	}
	return nil
}

func (s *CartStore) key(sessionID string) string {
	return "cart:" + sessionID
}
