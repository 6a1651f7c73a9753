package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

var nopLog = zerolog.Nop()

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/api"}, nopLog), srv
}

func TestProducts_PathSelection(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"productName":"Shirt","price":10}]`))
	})
	ctx := context.Background()

	cases := []struct {
		query domain.CatalogQuery
		want  string
	}{
		{domain.CatalogQuery{}, "/api/products"},
		{domain.CatalogQuery{CategoryID: 3}, "/api/products/category/3"},
		{domain.CatalogQuery{Search: "wool coat"}, "/api/products/search?query=wool+coat"},
		// Search takes precedence over category.
		{domain.CatalogQuery{Search: "hat", CategoryID: 3}, "/api/products/search?query=hat"},
	}
	for _, tc := range cases {
		products, err := client.Products(ctx, tc.query)
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", tc.query, err)
		}
		if gotPath != tc.want {
			t.Fatalf("%+v: path = %q, want %q", tc.query, gotPath, tc.want)
		}
		if len(products) != 1 || products[0].ProductName != "Shirt" {
			t.Fatalf("unexpected products: %+v", products)
		}
	}
}

func TestProducts_NetworkFailure(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1/api"}, nopLog)

	_, err := client.Products(context.Background(), domain.CatalogQuery{})
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestProductByID_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})

	_, err := client.ProductByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestLogin_TokenShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"raw json string", `"tok-raw"`, "tok-raw"},
		{"token field", `{"token":"tok-field"}`, "tok-field"},
		{"accessToken field", `{"accessToken":"tok-access"}`, "tok-access"},
		{"token wins over accessToken", `{"token":"a","accessToken":"b"}`, "a"},
		{"plain text body", "tok-plain", "tok-plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/auth/login" {
					t.Fatalf("unexpected path %s", r.URL.Path)
				}
				_, _ = w.Write([]byte(tc.body))
			})

			token, err := client.Login(context.Background(), ports.Credentials{Email: "a@b.c", Password: "pw"})
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if token != tc.want {
				t.Fatalf("token = %q, want %q", token, tc.want)
			}
		})
	}
}

func TestLogin_NoTokenInResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"email":"a@b.c"}}`))
	})

	_, err := client.Login(context.Background(), ports.Credentials{})
	if !errors.Is(err, domain.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestLogin_BackendRejects(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
	})

	_, err := client.Login(context.Background(), ports.Credentials{})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusUnauthorized || se.Message != "bad credentials" {
		t.Fatalf("unexpected status error: %+v", se)
	}
}

func TestWrites_AttachBearerToken(t *testing.T) {
	var gotAuth, gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"id":7,"productName":"New"}`))
	})
	ctx := context.Background()

	p, err := client.CreateProduct(ctx, "tok-1", ports.ProductInput{ProductName: "New", Price: 9.99})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotAuth != "Bearer tok-1" || gotMethod != http.MethodPost {
		t.Fatalf("auth=%q method=%q", gotAuth, gotMethod)
	}
	if p.ID != 7 {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := client.UpdateProduct(ctx, "tok-2", 7, ports.ProductInput{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotAuth != "Bearer tok-2" || gotMethod != http.MethodPut {
		t.Fatalf("auth=%q method=%q", gotAuth, gotMethod)
	}

	if err := client.DeleteProduct(ctx, "tok-3", 7); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotAuth != "Bearer tok-3" || gotMethod != http.MethodDelete {
		t.Fatalf("auth=%q method=%q", gotAuth, gotMethod)
	}
}

func TestOrdersAndProfile_Paths(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	if _, err := client.OrderByID(ctx, "tok", 12); err != nil {
		t.Fatalf("order by id: %v", err)
	}
	if gotPath != "/api/customer-orders/12" {
		t.Fatalf("path = %q", gotPath)
	}

	if _, err := client.Profile(ctx, "tok"); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if gotPath != "/api/customers/profile" {
		t.Fatalf("path = %q", gotPath)
	}

	if _, err := client.AddAddress(ctx, "tok", domain.Address{City: "Oslo"}); err != nil {
		t.Fatalf("address: %v", err)
	}
	if gotPath != "/api/addresses" {
		t.Fatalf("path = %q", gotPath)
	}
}
