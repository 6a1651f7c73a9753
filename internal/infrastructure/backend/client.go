// Package backend implements the HTTP contract of the remote commerce
// backend. It is the live tier of the catalog and the write path for auth,
// admin product management and customer accounts.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clothingstore/storefront-gateway/internal/core/domain"
	"github.com/clothingstore/storefront-gateway/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for reaching the backend.
type Config struct {
	// BaseURL includes the /api prefix, e.g. "http://backend:8080/api".
	BaseURL string
	Timeout time.Duration
}

// Client talks to the remote backend. Every authenticated call attaches the
// caller's credential as a bearer header; the client itself holds no state.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// StatusError is a non-2xx backend response. Write handlers surface its
// message; catalog reads absorb it into the fallback like any other failure.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.StatusCode, e.Message)
}

// --- Catalog source (read path) ---

// Products fetches the listing matching the query. Precedence follows the
// storefront rules: search > category > unfiltered.
func (c *Client) Products(ctx context.Context, q domain.CatalogQuery) ([]domain.Product, error) {
	var path string
	switch {
	case q.Search != "":
		path = "/products/search?query=" + url.QueryEscape(q.Search)
	case q.CategoryID != 0:
		path = "/products/category/" + strconv.FormatInt(q.CategoryID, 10)
	default:
		path = "/products"
	}

	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), "", nil, &p)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Ping probes backend reachability for the readiness endpoint. The category
// list is the cheapest read the contract offers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.doRaw(ctx, http.MethodGet, "/categories", "", nil)
	return err
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// --- Commerce gateway (auth, writes, account) ---

// Login forwards credentials and extracts the issued token. Backends differ
// in where they put it, so three shapes are accepted in order: a raw string
// body, a "token" field, an "accessToken" field.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (string, error) {
	body, err := c.doRaw(ctx, http.MethodPost, "/auth/login", "", creds)
	if err != nil {
		return "", err
	}
	token := extractToken(body)
	if token == "" {
		return "", domain.ErrTokenMissing
	}
	return token, nil
}

func (c *Client) Register(ctx context.Context, reg ports.Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register", "", reg, nil)
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ports.ProductInput) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in ports.ProductInput) (*domain.Product, error) {
	var p domain.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+strconv.FormatInt(id, 10), token, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/products/"+strconv.FormatInt(id, 10), token, nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, token string, order domain.Order) (*domain.Order, error) {
	var placed domain.Order
	if err := c.do(ctx, http.MethodPost, "/customer-orders", token, order, &placed); err != nil {
		return nil, err
	}
	return &placed, nil
}

func (c *Client) OrdersByCustomer(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/customer-orders/customer", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OrderByID(ctx context.Context, token string, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, "/customer-orders/"+strconv.FormatInt(id, 10), token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.do(ctx, http.MethodGet, "/customers/profile", token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, profile domain.Profile) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.do(ctx, http.MethodPut, "/customers/profile", token, profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) AddAddress(ctx context.Context, token string, address domain.Address) (*domain.Address, error) {
	var a domain.Address
	if err := c.do(ctx, http.MethodPost, "/addresses", token, address, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// --- Plumbing ---

// do performs a JSON round trip. Transport failures wrap
// domain.ErrBackendUnavailable; non-2xx responses become *StatusError.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	body, err := c.doRaw(ctx, method, path, token, in)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path, token string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("path", path).
			Msg("backend rejected request")
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(body, resp.StatusCode)}
	}
	return body, nil
}

// extractToken tolerates the three known login response shapes.
func extractToken(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var raw string
	if err := json.Unmarshal(body, &raw); err == nil {
		return raw
	}

	var envelope struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Token != "" {
			return envelope.Token
		}
		if envelope.AccessToken != "" {
			return envelope.AccessToken
		}
		return ""
	}

	// Not JSON at all: a plain-text token body.
	return trimmed
}

// errorMessage pulls a human-readable message out of a backend error body,
// tolerating the "message"/"error" envelopes and plain-text responses.
func errorMessage(body []byte, statusCode int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
		return trimmed
	}
	return http.StatusText(statusCode)
}

