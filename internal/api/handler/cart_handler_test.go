package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clothingstore/storefront-gateway/internal/api/middleware"
	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

// stubCartService serves one in-memory cart regardless of session id.
type stubCartService struct {
	cart        *domain.Cart
	lastSession string
	err         error
}

func (s *stubCartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	s.lastSession = sessionID
	return s.cart, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, sessionID string, in ports.AddItemInput) (*domain.Cart, error) {
	s.lastSession = sessionID
	if s.err != nil {
		return nil, s.err
	}
	s.cart.Items = append(s.cart.Items, domain.CartItem{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Price:       in.Price,
		Quantity:    in.Quantity,
	})
	return s.cart, nil
}

func (s *stubCartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	s.lastSession = sessionID
	if s.err != nil {
		return nil, s.err
	}
	if it := s.cart.Find(productID); it != nil {
		it.Quantity = quantity
		return s.cart, nil
	}
	return nil, domain.ErrCartItemNotFound
}

func (s *stubCartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	s.lastSession = sessionID
	if !s.cart.Remove(productID) {
		return nil, domain.ErrCartItemNotFound
	}
	return s.cart, nil
}

func (s *stubCartService) Clear(ctx context.Context, sessionID string) error {
	s.lastSession = sessionID
	s.cart.Items = nil
	return s.err
}

func cartContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newContext(t, method, target, body)
	c.Set(middleware.CtxCartSession, "sess-1")
	return c, rec
}

func TestCartHandler_Get_ComputesTotals(t *testing.T) {
	stub := &stubCartService{cart: &domain.Cart{
		SessionID: "sess-1",
		Items: []domain.CartItem{
			{ProductID: 1, ProductName: "Shirt", Price: 24.99, Quantity: 2},
		},
	}}
	h := NewCartHandler(stub)

	c, rec := cartContext(t, http.MethodGet, "/api/cart", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastSession != "sess-1" {
		t.Fatalf("session id not forwarded: %q", stub.lastSession)
	}

	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", resp.ItemCount)
	}
	if math.Abs(resp.Totals.Subtotal-49.98) > 0.005 {
		t.Fatalf("unexpected subtotal: %v", resp.Totals.Subtotal)
	}
	if resp.Totals.Shipping != domain.FlatShippingRate {
		t.Fatalf("unexpected shipping: %v", resp.Totals.Shipping)
	}
}

func TestCartHandler_Get_EmptyCartSerializesItems(t *testing.T) {
	h := NewCartHandler(&stubCartService{cart: &domain.Cart{SessionID: "sess-1"}})

	c, rec := cartContext(t, http.MethodGet, "/api/cart", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["items"].([]any); !ok {
		t.Fatalf("items should serialize as an array, got %T", resp["items"])
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	stub := &stubCartService{cart: &domain.Cart{SessionID: "sess-1"}}
	h := NewCartHandler(stub)

	c, rec := cartContext(t, http.MethodPost, "/api/cart/items",
		`{"productId":3,"productName":"Belt","price":19.99,"quantity":1}`)

	if err := h.AddItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(stub.cart.Items) != 1 || stub.cart.Items[0].ProductID != 3 {
		t.Fatalf("item not forwarded: %+v", stub.cart.Items)
	}
}

func TestCartHandler_AddItem_RejectsBadQuantity(t *testing.T) {
	h := NewCartHandler(&stubCartService{cart: &domain.Cart{}})

	cases := []string{
		`{"productId":3,"productName":"Belt","price":19.99,"quantity":0}`,
		`{"productId":3,"productName":"Belt","price":19.99,"quantity":-2}`,
		`{"productId":3,"price":19.99,"quantity":1}`,
	}
	for _, body := range cases {
		c, _ := cartContext(t, http.MethodPost, "/api/cart/items", body)
		err := h.AddItem(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("body %s: expected 422, got %v", body, err)
		}
	}
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	stub := &stubCartService{cart: &domain.Cart{
		SessionID: "sess-1",
		Items:     []domain.CartItem{{ProductID: 5, Quantity: 1, Price: 10}},
	}}
	h := NewCartHandler(stub)

	c, rec := cartContext(t, http.MethodPut, "/api/cart/items/5", `{"quantity":4}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.UpdateQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.cart.Items[0].Quantity != 4 {
		t.Fatalf("quantity not updated: %+v", stub.cart.Items)
	}
}

func TestCartHandler_UpdateQuantity_MissingItem(t *testing.T) {
	h := NewCartHandler(&stubCartService{cart: &domain.Cart{}})

	c, _ := cartContext(t, http.MethodPut, "/api/cart/items/5", `{"quantity":4}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.UpdateQuantity(c); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestCartHandler_UpdateQuantity_BadID(t *testing.T) {
	h := NewCartHandler(&stubCartService{cart: &domain.Cart{}})

	c, _ := cartContext(t, http.MethodPut, "/api/cart/items/abc", `{"quantity":4}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.UpdateQuantity(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCartHandler_RemoveItem(t *testing.T) {
	stub := &stubCartService{cart: &domain.Cart{
		Items: []domain.CartItem{{ProductID: 5, Quantity: 1}},
	}}
	h := NewCartHandler(stub)

	c, rec := cartContext(t, http.MethodDelete, "/api/cart/items/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.RemoveItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(stub.cart.Items) != 0 {
		t.Fatalf("item not removed: %+v", stub.cart.Items)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	stub := &stubCartService{cart: &domain.Cart{
		Items: []domain.CartItem{{ProductID: 5, Quantity: 1}},
	}}
	h := NewCartHandler(stub)

	c, rec := cartContext(t, http.MethodDelete, "/api/cart", "")
	if err := h.Clear(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(stub.cart.Items) != 0 {
		t.Fatalf("cart not cleared: %+v", stub.cart.Items)
	}
}
